package handler

import (
	"github.com/gofiber/fiber/v2"

	"prime-property/internal/domain"
	"prime-property/internal/middleware"
	"prime-property/internal/service/payment"
)

type PaymentHandler struct {
	paymentService payment.Service
}

func NewPaymentHandler(paymentService payment.Service) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

func (h *PaymentHandler) ListMine(c *fiber.Ctx) error {
	payments, err := h.paymentService.ListMine(c.UserContext(), middleware.MustActor(c))
	if err != nil {
		return err
	}

	return c.JSON(payments)
}

func (h *PaymentHandler) Subscribe(c *fiber.Ctx) error {
	var input domain.SubscribeInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	p, err := h.paymentService.Subscribe(c.UserContext(), middleware.MustActor(c), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(p)
}
