package repositories

import "kbbq/internal/models"

// CategoryRepository defines the interface for menu category data access.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	Create(name string) error
	Delete(name string) error
}

// ShopRepository defines the interface for branch data access.
type ShopRepository interface {
	GetAll() ([]models.Shop, error)
	SetOpen(id string, open bool) error
}
