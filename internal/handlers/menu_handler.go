package handlers

import (
	"log"
	"strconv"

	"kbbq/internal/models"
	"kbbq/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// MenuHandler handles the public menu endpoints.
type MenuHandler struct {
	menuService *services.MenuService
	validate    *validator.Validate
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(menuService *services.MenuService) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
		validate:    validator.New(),
	}
}

// RegisterRoutes mounts the menu under router. It is mounted twice: once
// under /api and once at the root for older clients.
func (h *MenuHandler) RegisterRoutes(router fiber.Router) {
	menuRoutes := router.Group("/menu")
	menuRoutes.Get("/", h.HandleListMenu)
	menuRoutes.Get("/:id", h.HandleGetMenuItem)
}

// HandleListMenu lists the menu, optionally filtered by category, price
// range and availability.
func (h *MenuHandler) HandleListMenu(c *fiber.Ctx) error {
	filter, err := parseMenuFilter(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.validate.Struct(filter); err != nil {
		return validationFailed(c, err)
	}

	items, err := h.menuService.ListMenu(filter)
	if err != nil {
		log.Printf("Error listing menu: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to retrieve menu",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"menu": items,
	})
}

// HandleGetMenuItem returns a single menu item.
func (h *MenuHandler) HandleGetMenuItem(c *fiber.Ctx) error {
	item, err := h.menuService.GetMenuItem(c.Params("id"))
	if err != nil {
		return storeFailed(c, err, "Menu item not found")
	}
	return c.JSON(item)
}

func parseMenuFilter(c *fiber.Ctx) (models.MenuFilter, error) {
	filter := models.MenuFilter{Category: c.Query("category")}

	var err error
	if filter.MinPrice, err = queryFloat(c, "min_price"); err != nil {
		return filter, err
	}
	if filter.MaxPrice, err = queryFloat(c, "max_price"); err != nil {
		return filter, err
	}
	if raw := c.Query("available"); raw != "" {
		available, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, fiber.NewError(fiber.StatusBadRequest, "available must be a boolean")
		}
		filter.Available = &available
	}
	return filter, nil
}

func queryFloat(c *fiber.Ctx, key string) (*float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, key+" must be a number")
	}
	return &v, nil
}
