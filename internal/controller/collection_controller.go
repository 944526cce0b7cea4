package controller

import (
	"wine-club-be/internal/dto"
	"wine-club-be/internal/pkg/serverutils"
	"wine-club-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICollectionController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	List(ctx *fiber.Ctx) error
	Add(ctx *fiber.Ctx) error
	AddFromScan(ctx *fiber.Ctx) error
	Remove(ctx *fiber.Ctx) error
}

type collectionController struct {
	service service.ICollectionService
}

func NewCollectionController(service service.ICollectionService) ICollectionController {
	return &collectionController{service: service}
}

func (c *collectionController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/collection/v1")
	h.Use(auth)
	h.Get("", c.List)
	h.Post("", c.Add)
	h.Post("scans/:scanId", c.AddFromScan)
	h.Delete(":id", c.Remove)
}

func (c *collectionController) List(ctx *fiber.Ctx) error {
	s, _ := serverutils.SessionFrom(ctx)

	res, err := c.service.List(ctx.UserContext(), s)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get collection", res))
}

func (c *collectionController) Add(ctx *fiber.Ctx) error {
	s, _ := serverutils.SessionFrom(ctx)

	var req dto.AddCollectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Add(ctx.UserContext(), s, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.BaseResponse[*dto.CollectionMutationResponse]{
		Success: true,
		Code:    fiber.StatusCreated,
		Message: "Wine added to your collection!",
		Data:    res,
	})
}

func (c *collectionController) AddFromScan(ctx *fiber.Ctx) error {
	s, _ := serverutils.SessionFrom(ctx)
	scanId, err := uuid.Parse(ctx.Params("scanId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid scan id")
	}

	res, err := c.service.AddFromScan(ctx.UserContext(), s, scanId)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.BaseResponse[*dto.CollectionMutationResponse]{
		Success: true,
		Code:    fiber.StatusCreated,
		Message: "Wine added to your collection!",
		Data:    res,
	})
}

func (c *collectionController) Remove(ctx *fiber.Ctx) error {
	s, _ := serverutils.SessionFrom(ctx)
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid entry id")
	}

	res, err := c.service.Remove(ctx.UserContext(), s, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success remove wine", res))
}
