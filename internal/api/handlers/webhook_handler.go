package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/contentops/internal/service"
	"github.com/maheshrc27/contentops/internal/transfer"
	"github.com/maheshrc27/contentops/internal/webhook"
)

// WebhookHandler proxies dashboard actions to the automation system.
type WebhookHandler struct {
	s service.WebhookService
}

func NewWebhookHandler(service service.WebhookService) *WebhookHandler {
	return &WebhookHandler{s: service}
}

func (h *WebhookHandler) Register(r fiber.Router) {
	r.Post("/"+webhook.PathSchedulePost, h.SchedulePost)
	r.Post("/"+webhook.PathRemovePost, h.RemovePost)
	r.Post("/"+webhook.PathEngagementTracker, h.Engagement)
	r.Post("/"+webhook.PathSearchIdeas, h.SearchIdeas)
	r.Post("/"+webhook.PathEditContentText, h.EditContentText)
}

func (h *WebhookHandler) SchedulePost(c *fiber.Ctx) error {
	var req transfer.SchedulePostRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	if err := h.s.SchedulePost(c.Context(), GetActor(c), &req); err != nil {
		return respondError(c, err)
	}
	return accepted(c)
}

func (h *WebhookHandler) RemovePost(c *fiber.Ctx) error {
	var req transfer.RemovePostRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	if err := h.s.RemovePost(c.Context(), GetActor(c), &req); err != nil {
		return respondError(c, err)
	}
	return accepted(c)
}

func (h *WebhookHandler) Engagement(c *fiber.Ctx) error {
	var req transfer.EngagementRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	if err := h.s.Engagement(c.Context(), GetActor(c), &req); err != nil {
		return respondError(c, err)
	}
	return accepted(c)
}

func (h *WebhookHandler) SearchIdeas(c *fiber.Ctx) error {
	var req transfer.SearchIdeasRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	if err := h.s.SearchIdeas(c.Context(), GetActor(c), &req); err != nil {
		return respondError(c, err)
	}
	return accepted(c)
}

func (h *WebhookHandler) EditContentText(c *fiber.Ctx) error {
	var req transfer.EditContentTextRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	if err := h.s.EditContentText(c.Context(), GetActor(c), &req); err != nil {
		return respondError(c, err)
	}
	return accepted(c)
}
