package repositories

import (
	"kbbq/internal/models"
)

// MenuRepository defines the interface for menu data access.
type MenuRepository interface {
	GetAll() ([]models.MenuItem, error)
	GetByID(id string) (*models.MenuItem, error)
	Create(item *models.MenuItem) error
	Update(item *models.MenuItem) error
	Delete(id string) error
}
