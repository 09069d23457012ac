package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/contentops/internal/service"
	"github.com/maheshrc27/contentops/internal/transfer"
)

type ScheduleHandler struct {
	s   service.ScheduleService
	now func() time.Time
}

func NewScheduleHandler(service service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{s: service, now: time.Now}
}

func (h *ScheduleHandler) Register(r fiber.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/:id", h.Get)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Remove)
}

func (h *ScheduleHandler) List(c *fiber.Ctx) error {
	schedules, err := h.s.List(c.Context(), c.Query("projectId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(schedules)
}

func (h *ScheduleHandler) Get(c *fiber.Ctx) error {
	schedule, err := h.s.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(schedule)
}

func (h *ScheduleHandler) Create(c *fiber.Ctx) error {
	var in transfer.ScheduleInput
	if ok, err := parseBody(c, &in); !ok {
		return err
	}

	schedule, err := h.s.Create(c.Context(), GetActor(c), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(schedule)
}

func (h *ScheduleHandler) Update(c *fiber.Ctx) error {
	var in transfer.ScheduleInput
	if ok, err := parseBody(c, &in); !ok {
		return err
	}

	schedule, err := h.s.Update(c.Context(), GetActor(c), c.Params("id"), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(schedule)
}

func (h *ScheduleHandler) Remove(c *fiber.Ctx) error {
	if err := h.s.Remove(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return deleted(c)
}

// Calendar defaults to the current year and month.
func (h *ScheduleHandler) Calendar(c *fiber.Ctx) error {
	now := h.now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))

	days, err := h.s.Calendar(c.Context(), year, time.Month(month), c.Query("projectId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"year":  year,
		"month": month,
		"days":  days,
	})
}
