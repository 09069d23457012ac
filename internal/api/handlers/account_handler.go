package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/contentops/internal/service"
	"github.com/maheshrc27/contentops/internal/transfer"
)

type AccountHandler struct {
	s service.AccountService
}

func NewAccountHandler(service service.AccountService) *AccountHandler {
	return &AccountHandler{s: service}
}

func (h *AccountHandler) Register(r fiber.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/:id", h.Get)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Remove)
}

func (h *AccountHandler) List(c *fiber.Ctx) error {
	accounts, err := h.s.List(c.Context(), c.Query("projectId"), c.Query("platform"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(accounts)
}

func (h *AccountHandler) Get(c *fiber.Ctx) error {
	account, err := h.s.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(account)
}

func (h *AccountHandler) Create(c *fiber.Ctx) error {
	var in transfer.AccountInput
	if ok, err := parseBody(c, &in); !ok {
		return err
	}

	account, err := h.s.Create(c.Context(), GetActor(c), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(account)
}

func (h *AccountHandler) Update(c *fiber.Ctx) error {
	var in transfer.AccountInput
	if ok, err := parseBody(c, &in); !ok {
		return err
	}

	account, err := h.s.Update(c.Context(), GetActor(c), c.Params("id"), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(account)
}

func (h *AccountHandler) Remove(c *fiber.Ctx) error {
	if err := h.s.Remove(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return deleted(c)
}

// AccessToken returns the decrypted channel token for the posting system.
func (h *AccountHandler) AccessToken(c *fiber.Ctx) error {
	token, err := h.s.AccessToken(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"accessToken": token,
	})
}
