package handlers

import (
	"log"

	"kbbq/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler serves the public category and shop listings.
type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/categories", h.HandleListCategories)
	router.Get("/shops", h.HandleListShops)
}

func (h *CatalogHandler) HandleListCategories(c *fiber.Ctx) error {
	categories, err := h.catalogService.Categories()
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to retrieve categories",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"categories": categories,
	})
}

func (h *CatalogHandler) HandleListShops(c *fiber.Ctx) error {
	shops, err := h.catalogService.Shops()
	if err != nil {
		log.Printf("Error listing shops: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to retrieve shops",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"shops": shops,
	})
}
