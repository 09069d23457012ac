package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/contentops/internal/service"
	"github.com/maheshrc27/contentops/internal/transfer"
)

type PromptHandler struct {
	s service.PromptService
}

func NewPromptHandler(service service.PromptService) *PromptHandler {
	return &PromptHandler{s: service}
}

func (h *PromptHandler) Register(r fiber.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/:id", h.Get)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Remove)
}

func (h *PromptHandler) List(c *fiber.Ctx) error {
	prompts, err := h.s.List(c.Context(), c.Query("projectId"), c.Query("type"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(prompts)
}

func (h *PromptHandler) Get(c *fiber.Ctx) error {
	prompt, err := h.s.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(prompt)
}

func (h *PromptHandler) Create(c *fiber.Ctx) error {
	var in transfer.PromptInput
	if ok, err := parseBody(c, &in); !ok {
		return err
	}

	prompt, err := h.s.Create(c.Context(), GetActor(c), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(prompt)
}

func (h *PromptHandler) Update(c *fiber.Ctx) error {
	var in transfer.PromptInput
	if ok, err := parseBody(c, &in); !ok {
		return err
	}

	prompt, err := h.s.Update(c.Context(), GetActor(c), c.Params("id"), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(prompt)
}

func (h *PromptHandler) Remove(c *fiber.Ctx) error {
	if err := h.s.Remove(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return deleted(c)
}
