package util

import (
	"log"

	"github.com/fadilmartias/interview-simulator/internal/config"
	"github.com/fadilmartias/interview-simulator/internal/dto"
	"github.com/gofiber/fiber/v2"
)

type errorBody struct {
	Error      string           `json:"error"`
	Details    []dto.FieldError `json:"details,omitempty"`
	DevMessage string           `json:"devMessage,omitempty"`
}

// ErrorResponse sends an error payload with the given status. The optional
// cause is logged and, outside production, echoed as devMessage; the client
// otherwise only sees the operation-specific message.
func ErrorResponse(c *fiber.Ctx, status int, message string, errs ...error) error {
	body := errorBody{Error: message}
	if len(errs) > 0 && errs[0] != nil {
		log.Printf("%s: %v", message, errs[0])
		if config.LoadAppConfig().Env != "production" {
			body.DevMessage = errs[0].Error()
		}
	}
	return c.Status(status).JSON(body)
}

// ValidationErrorResponse reports every failed field at once.
func ValidationErrorResponse(c *fiber.Ctx, details []dto.FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(errorBody{
		Error:   "Validation failed",
		Details: details,
	})
}
