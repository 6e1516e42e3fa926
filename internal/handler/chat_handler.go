package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/ahmednasr/product-compare/internal/models"
	"github.com/ahmednasr/product-compare/internal/service"
)

// ChatHandler wires HTTP → ChatService.
type ChatHandler struct {
	svc service.ChatService
}

// NewChatHandler returns a struct pointer so you can call Register on it.
func NewChatHandler(svc service.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// Register mounts the /messages endpoints on the supplied router group.
func (h *ChatHandler) Register(r fiber.Router) {
	r.Get("/messages", h.transcript)
	r.Post("/messages", h.submit)
	r.Delete("/messages", h.reset)
}

// transcript handles GET /messages
func (h *ChatHandler) transcript(c *fiber.Ctx) error {
	return c.JSON(h.svc.Transcript())
}

// submit handles POST /messages  { "message": "..." }
func (h *ChatHandler) submit(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid JSON body")
	}

	reply, err := h.svc.Submit(c.UserContext(), req.Message)
	switch {
	case errors.Is(err, service.ErrEmptyMessage):
		return fiber.NewError(fiber.StatusBadRequest, "message is required")
	case errors.Is(err, service.ErrTurnInFlight):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case err != nil:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	t := h.svc.Transcript()
	return c.JSON(models.ChatResponse{
		Reply:    reply,
		Messages: t.Messages,
		Loading:  t.Loading,
	})
}

// reset handles DELETE /messages
func (h *ChatHandler) reset(c *fiber.Ctx) error {
	h.svc.Reset()
	return c.SendStatus(fiber.StatusNoContent)
}
