package handlers

import (
	"kbbq/internal/models"
	"kbbq/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	paymentService *services.PaymentService
	validate       *validator.Validate
}

func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		validate:       validator.New(),
	}
}

func (h *PaymentHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	paymentRoutes := router.Group("/payment", authRequired)
	paymentRoutes.Post("/create", h.HandleCreatePayment)
}

// HandleCreatePayment opens a mock payment session.
func (h *PaymentHandler) HandleCreatePayment(c *fiber.Ctx) error {
	var req models.CreatePaymentRequest
	if ok, err := bind(c, h.validate, &req); !ok {
		return err
	}
	return c.JSON(h.paymentService.CreateSession(req.OrderID, req.Amount))
}
