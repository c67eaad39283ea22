package handler

import (
	"github.com/gofiber/fiber/v2"

	"prime-property/internal/domain"
	"prime-property/internal/middleware"
	"prime-property/internal/service/message"
)

type MessageHandler struct {
	messageService message.Service
}

func NewMessageHandler(messageService message.Service) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

func (h *MessageHandler) Send(c *fiber.Ctx) error {
	var input domain.SendMessageInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	msg, err := h.messageService.Send(c.UserContext(), middleware.MustActor(c), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(msg)
}

func (h *MessageHandler) List(c *fiber.Ctx) error {
	messages, err := h.messageService.List(c.UserContext(), middleware.MustActor(c))
	if err != nil {
		return err
	}

	return c.JSON(messages)
}

func (h *MessageHandler) Reply(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var input domain.ReplyInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	msg, err := h.messageService.Reply(c.UserContext(), middleware.MustActor(c), id, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(msg)
}
