package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorMapping binds a sentinel error to the HTTP status returned for it.
type ErrorMapping struct {
	Err    error
	Status int
}

// ErrorHandlerMiddleware turns errors returned by handlers into ErrorResponse bodies.
// Unmapped errors become 500 without leaking their text.
func ErrorHandlerMiddleware(mappings ...ErrorMapping) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var verr *ValidationError
		if errors.As(err, &verr) {
			return ctx.Status(fiber.StatusBadRequest).JSON(BaseResponse[map[string]string]{
				Success: false,
				Code:    fiber.StatusBadRequest,
				Message: "Validation failed",
				Data:    verr.Fields,
			})
		}

		var ferr *fiber.Error
		if errors.As(err, &ferr) {
			return ctx.Status(ferr.Code).JSON(ErrorResponse(ferr.Code, ferr.Message))
		}

		for _, m := range mappings {
			if errors.Is(err, m.Err) {
				return ctx.Status(m.Status).JSON(ErrorResponse(m.Status, m.Err.Error()))
			}
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, "Internal server error"))
	}
}
