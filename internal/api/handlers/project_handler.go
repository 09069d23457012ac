package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/contentops/internal/service"
	"github.com/maheshrc27/contentops/internal/transfer"
)

type ProjectHandler struct {
	s service.ProjectService
}

func NewProjectHandler(service service.ProjectService) *ProjectHandler {
	return &ProjectHandler{s: service}
}

func (h *ProjectHandler) Register(r fiber.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/:id", h.Get)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Remove)
}

func (h *ProjectHandler) List(c *fiber.Ctx) error {
	projects, err := h.s.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(projects)
}

func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	project, err := h.s.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(project)
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var in transfer.ProjectInput
	if ok, err := parseBody(c, &in); !ok {
		return err
	}

	project, err := h.s.Create(c.Context(), GetActor(c), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	var in transfer.ProjectInput
	if ok, err := parseBody(c, &in); !ok {
		return err
	}

	project, err := h.s.Update(c.Context(), GetActor(c), c.Params("id"), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(project)
}

func (h *ProjectHandler) Remove(c *fiber.Ctx) error {
	if err := h.s.Remove(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return deleted(c)
}
