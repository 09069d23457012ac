package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/contentops/internal/models"
	"github.com/maheshrc27/contentops/internal/service"
)

type ActivityHandler struct {
	s service.ActivityService
}

func NewActivityHandler(service service.ActivityService) *ActivityHandler {
	return &ActivityHandler{s: service}
}

func (h *ActivityHandler) List(c *fiber.Ctx) error {
	logs, err := h.s.List(c.Context(), models.ActivityFilter{
		EntityType: c.Query("entityType"),
		EntityID:   c.Query("entityId"),
		UserID:     c.Query("userId"),
		Limit:      c.QueryInt("limit", 0),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(logs)
}
