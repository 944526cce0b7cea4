package controller

import (
	"io"

	"wine-club-be/internal/dto"
	"wine-club-be/internal/pkg/serverutils"
	"wine-club-be/internal/service"
	"wine-club-be/pkg/session"
	"wine-club-be/pkg/wine"

	"github.com/gofiber/fiber/v2"
)

const imageFormField = "image"

type IWineController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	RegisterLegacyRoutes(r fiber.Router, optionalAuth fiber.Handler)
	Analyze(ctx *fiber.Ctx) error
	AnalyzeLegacy(ctx *fiber.Ctx) error
	ListScans(ctx *fiber.Ctx) error
}

type wineController struct {
	service service.IWineService
}

func NewWineController(service service.IWineService) IWineController {
	return &wineController{service: service}
}

func (c *wineController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/wine/v1")
	h.Use(auth)
	h.Post("analyze", c.Analyze)
	h.Get("scans", c.ListScans)
}

// RegisterLegacyRoutes mounts the endpoint older clients post label photos to.
func (c *wineController) RegisterLegacyRoutes(r fiber.Router, optionalAuth fiber.Handler) {
	r.Post("/analyze-wine", optionalAuth, c.AnalyzeLegacy)
}

func (c *wineController) Analyze(ctx *fiber.Ctx) error {
	s, _ := serverutils.SessionFrom(ctx)

	res, err := c.analyze(ctx, s)
	if err != nil {
		return err
	}

	message := "Success analyze wine"
	if res.Result.Failed {
		message = "Wine could not be identified"
	}
	return ctx.JSON(serverutils.SuccessResponse(message, res))
}

// AnalyzeLegacy answers with the bare result object.
func (c *wineController) AnalyzeLegacy(ctx *fiber.Ctx) error {
	s, _ := serverutils.SessionFrom(ctx)

	res, err := c.analyze(ctx, s)
	if err != nil {
		return err
	}
	return ctx.JSON(res.Result)
}

func (c *wineController) analyze(ctx *fiber.Ctx, s *session.Session) (*dto.AnalyzeWineResponse, error) {
	image, mimeType, err := readImage(ctx)
	if err != nil {
		return nil, err
	}
	return c.service.Analyze(ctx.UserContext(), s, image, mimeType)
}

func (c *wineController) ListScans(ctx *fiber.Ctx) error {
	s, _ := serverutils.SessionFrom(ctx)

	var req dto.ListScansRequest
	if err := ctx.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.ListScans(ctx.UserContext(), s, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get scans", res))
}

func readImage(ctx *fiber.Ctx) ([]byte, string, error) {
	fh, err := ctx.FormFile(imageFormField)
	if err != nil {
		return nil, "", wine.ErrNoImageProvided
	}

	f, err := fh.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}
	return data, fh.Header.Get("Content-Type"), nil
}
