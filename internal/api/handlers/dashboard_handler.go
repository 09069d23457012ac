package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/contentops/internal/service"
)

type DashboardHandler struct {
	s service.DashboardService
}

func NewDashboardHandler(service service.DashboardService) *DashboardHandler {
	return &DashboardHandler{s: service}
}

func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.s.Stats(c.Context(), c.Query("projectId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}
