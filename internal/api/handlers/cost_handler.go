package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/contentops/internal/models"
	"github.com/maheshrc27/contentops/internal/service"
	"github.com/maheshrc27/contentops/internal/transfer"
)

type CostHandler struct {
	s service.CostService
}

func NewCostHandler(service service.CostService) *CostHandler {
	return &CostHandler{s: service}
}

func (h *CostHandler) Register(r fiber.Router) {
	r.Get("/", h.Report)
	r.Post("/", h.Record)
}

func (h *CostHandler) Report(c *fiber.Ctx) error {
	from, err := queryTime(c, "from")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	to, err := queryTime(c, "to")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	report, err := h.s.Report(c.Context(), models.CostFilter{
		ProjectID: c.Query("projectId"),
		From:      from,
		To:        to,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

// Record is called by the automation system after each generation job.
func (h *CostHandler) Record(c *fiber.Ctx) error {
	var in transfer.CostLogInput
	if ok, err := parseBody(c, &in); !ok {
		return err
	}

	entry, err := h.s.Record(c.Context(), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}
