// Package common holds the response helpers shared by the HTTP handlers.
package common

import (
	"errors"
	"sync"

	"github.com/amirasaad/banking/pkg/domain"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error" example:"source account is closed"`
}

const internalErrorMessage = "internal server error"

var validate = sync.OnceValue(func() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
})

// ErrorJSON writes {"error": message} with the given status.
func ErrorJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{Error: message})
}

// ErrorToStatusCode maps domain error kinds to HTTP status codes.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvalidArgument),
		errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrLimitExceeded),
		errors.Is(err, domain.ErrConflict):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// ProblemJSON writes the response for a service error. Business failures
// carry their own message; anything else becomes a generic 500.
func ProblemJSON(c *fiber.Ctx, err error) error {
	status := ErrorToStatusCode(err)
	message := domain.Message(err)
	if status == fiber.StatusInternalServerError || message == "" {
		log.Errorf("%s %s failed: %v", c.Method(), c.Path(), err)
		return ErrorJSON(c, fiber.StatusInternalServerError, internalErrorMessage)
	}
	return ErrorJSON(c, status, message)
}

// BindAndValidate parses the request body and validates it using go-playground/validator.
// On failure the 400 response is already written and the returned pointer is nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ErrorJSON(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate().Struct(input); err != nil {
		return nil, ErrorJSON(c, fiber.StatusBadRequest, validationMessage(err))
	}
	return &input, nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return "invalid value for field " + fe.Field() + ": " + fe.Tag()
	}
	return "validation failed"
}
