package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/contentops/internal/models"
	"github.com/maheshrc27/contentops/internal/service"
)

// Locals keys set by the auth middleware. LocalAutomation holds true for
// callers that presented the automation secret.
const (
	LocalUserID     = "user_id"
	LocalEmail      = "email"
	LocalRole       = "role"
	LocalAutomation = "automation"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func GetUserID(c *fiber.Ctx) string {
	userID, _ := c.Locals(LocalUserID).(string)
	return userID
}

func IsAutomation(c *fiber.Ctx) bool {
	automation, _ := c.Locals(LocalAutomation).(bool)
	return automation
}

func GetActor(c *fiber.Ctx) models.Actor {
	email, _ := c.Locals(LocalEmail).(string)
	role, _ := c.Locals(LocalRole).(string)
	return models.Actor{UserID: GetUserID(c), Email: email, Role: role}
}

// parseBody decodes and validates the JSON body into dst. On failure it has
// already written the 400 response and returns false.
func parseBody(c *fiber.Ctx, dst interface{}) (bool, error) {
	if err := c.BodyParser(dst); err != nil {
		slog.Info(err.Error())
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := validate.Struct(dst); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": validationMessage(err),
		})
	}
	return true, nil
}

func validationMessage(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err.Error()
	}
	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		parts = append(parts, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

// respondError maps service errors onto status codes.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, service.ErrInvalidInput):
		status = fiber.StatusBadRequest
	case errors.Is(err, service.ErrForbidden):
		status = fiber.StatusForbidden
	default:
		slog.Error(err.Error(), "path", c.Path())
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func accepted(c *fiber.Ctx) error {
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"message": "accepted",
	})
}

func deleted(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "deleted",
	})
}

// queryTime reads an RFC 3339 timestamp or a YYYY-MM-DD date.
func queryTime(c *fiber.Ctx, key string) (time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be RFC 3339 or YYYY-MM-DD", key)
	}
	return t, nil
}
