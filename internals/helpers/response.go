package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Success response without custom code (default 200)
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return SuccessWithCode(c, fiber.StatusOK, message, data)
}

// Success response with custom code (e.g. 201 for created)
func SuccessWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
	})
}

// Error response with per-field details
func ErrorWithDetails(c *fiber.Ctx, code int, message string, errors interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
		"errors":  errors,
	})
}

// For validator.v10 failures: map field → failing tag
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return Error(c, fiber.StatusBadRequest, "Invalid input")
	}

	errorsMap := make(map[string]string)
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = fieldErr.Tag()
	}

	return ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errorsMap)
}
