package handlers

import (
	"log"

	"kbbq/internal/models"
	"kbbq/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	orderService *services.OrderService
	validate     *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		validate:     validator.New(),
	}
}

// RegisterRoutes registers the order routes behind authRequired.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	orderRoutes := router.Group("/order", authRequired)
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Get("/user/:uid", h.HandleGetOrdersByUser)
	orderRoutes.Get("/:id", h.HandleGetOrder)
}

// HandleCreateOrder prices the cart and returns an order confirmation.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req models.CreateOrderRequest
	if ok, err := bind(c, h.validate, &req); !ok {
		return err
	}

	order, err := h.orderService.CreateOrder(req)
	if err != nil {
		log.Printf("Error creating order for %s: %v", req.Customer.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create order",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleGetOrder reports an order as confirmed. Orders are not stored.
func (h *OrderHandler) HandleGetOrder(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"orderId": c.Params("id"),
		"status":  services.OrderStatusConfirmed,
	})
}

func (h *OrderHandler) HandleGetOrdersByUser(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"userId": c.Params("uid"),
		"orders": []models.OrderConfirmation{},
	})
}
