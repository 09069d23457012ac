package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/contentops/internal/models"
	"github.com/maheshrc27/contentops/internal/service"
	"github.com/maheshrc27/contentops/internal/transfer"
)

type VideoHandler struct {
	s service.VideoService
}

func NewVideoHandler(service service.VideoService) *VideoHandler {
	return &VideoHandler{s: service}
}

func (h *VideoHandler) Register(r fiber.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/:id", h.Get)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Remove)
	r.Get("/:id/form", h.Form)
	r.Post("/:id/approve-idea", h.ApproveIdea)
	r.Post("/:id/approve-content", h.ApproveContent)
	r.Post("/:id/schedule", h.SchedulePost)
	r.Post("/:id/remove", h.RemovePost)
	r.Post("/:id/engagement", h.RefreshEngagement)
	r.Post("/:id/edit-ai", h.EditAI)
}

func (h *VideoHandler) List(c *fiber.Ctx) error {
	items, err := h.s.List(c.Context(), models.ItemFilter{
		ProjectID: c.Query("projectId"),
		Status:    c.Query("status"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

func (h *VideoHandler) Get(c *fiber.Ctx) error {
	item, err := h.s.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

func (h *VideoHandler) Create(c *fiber.Ctx) error {
	var in transfer.VideoInput
	if ok, err := parseBody(c, &in); !ok {
		return err
	}

	item, err := h.s.Create(c.Context(), GetActor(c), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *VideoHandler) Update(c *fiber.Ctx) error {
	var in transfer.VideoInput
	if ok, err := parseBody(c, &in); !ok {
		return err
	}

	item, err := h.s.Update(c.Context(), GetActor(c), c.Params("id"), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

func (h *VideoHandler) Remove(c *fiber.Ctx) error {
	if err := h.s.Remove(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return deleted(c)
}

func (h *VideoHandler) Form(c *fiber.Ctx) error {
	form, err := h.s.Form(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(form)
}

func (h *VideoHandler) ApproveIdea(c *fiber.Ctx) error {
	item, err := h.s.ApproveIdea(c.Context(), GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

func (h *VideoHandler) ApproveContent(c *fiber.Ctx) error {
	item, err := h.s.ApproveContent(c.Context(), GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

func (h *VideoHandler) SchedulePost(c *fiber.Ctx) error {
	if err := h.s.SchedulePost(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return accepted(c)
}

func (h *VideoHandler) RemovePost(c *fiber.Ctx) error {
	if err := h.s.RemovePost(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return accepted(c)
}

func (h *VideoHandler) RefreshEngagement(c *fiber.Ctx) error {
	if err := h.s.RefreshEngagement(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return accepted(c)
}

func (h *VideoHandler) EditAI(c *fiber.Ctx) error {
	var in transfer.EditRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}

	if err := h.s.EditAI(c.Context(), GetActor(c), c.Params("id"), in.Require); err != nil {
		return respondError(c, err)
	}
	return accepted(c)
}
