package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/contentops/internal/service"
	"github.com/maheshrc27/contentops/internal/transfer"
)

type AIModelHandler struct {
	s service.AIModelService
}

func NewAIModelHandler(service service.AIModelService) *AIModelHandler {
	return &AIModelHandler{s: service}
}

// RegisterModels mounts the model registry.
func (h *AIModelHandler) RegisterModels(r fiber.Router) {
	r.Get("/", h.ListModels)
	r.Post("/", h.CreateModel)
	r.Get("/:id", h.GetModel)
	r.Put("/:id", h.UpdateModel)
	r.Delete("/:id", h.RemoveModel)
}

// RegisterConfigs mounts per-project model selections.
func (h *AIModelHandler) RegisterConfigs(r fiber.Router) {
	r.Get("/", h.ListConfigs)
	r.Post("/", h.CreateConfig)
	r.Get("/:id", h.GetConfig)
	r.Put("/:id", h.UpdateConfig)
	r.Delete("/:id", h.RemoveConfig)
}

func (h *AIModelHandler) ListModels(c *fiber.Ctx) error {
	list, err := h.s.ListModels(c.Context(), c.Query("mediaType"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

func (h *AIModelHandler) GetModel(c *fiber.Ctx) error {
	m, err := h.s.GetModel(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(m)
}

func (h *AIModelHandler) CreateModel(c *fiber.Ctx) error {
	var in transfer.AIModelInput
	if ok, err := parseBody(c, &in); !ok {
		return err
	}

	m, err := h.s.CreateModel(c.Context(), GetActor(c), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(m)
}

func (h *AIModelHandler) UpdateModel(c *fiber.Ctx) error {
	var in transfer.AIModelInput
	if ok, err := parseBody(c, &in); !ok {
		return err
	}

	m, err := h.s.UpdateModel(c.Context(), GetActor(c), c.Params("id"), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(m)
}

func (h *AIModelHandler) RemoveModel(c *fiber.Ctx) error {
	if err := h.s.RemoveModel(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return deleted(c)
}

func (h *AIModelHandler) ListConfigs(c *fiber.Ctx) error {
	list, err := h.s.ListConfigs(c.Context(), c.Query("projectId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

func (h *AIModelHandler) GetConfig(c *fiber.Ctx) error {
	cfg, err := h.s.GetConfig(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cfg)
}

func (h *AIModelHandler) CreateConfig(c *fiber.Ctx) error {
	var in transfer.ModelConfigInput
	if ok, err := parseBody(c, &in); !ok {
		return err
	}

	cfg, err := h.s.CreateConfig(c.Context(), GetActor(c), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cfg)
}

func (h *AIModelHandler) UpdateConfig(c *fiber.Ctx) error {
	var in transfer.ModelConfigInput
	if ok, err := parseBody(c, &in); !ok {
		return err
	}

	cfg, err := h.s.UpdateConfig(c.Context(), GetActor(c), c.Params("id"), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cfg)
}

func (h *AIModelHandler) RemoveConfig(c *fiber.Ctx) error {
	if err := h.s.RemoveConfig(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return deleted(c)
}
