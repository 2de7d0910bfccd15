package repositories

import (
	"errors"
	"fmt"
	"strings"

	"kbbq/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMMenuRepository is a GORM implementation of MenuRepository.
type GORMMenuRepository struct {
	db *gorm.DB
}

// NewGORMMenuRepository creates a new instance of GORMMenuRepository.
func NewGORMMenuRepository(db *gorm.DB) *GORMMenuRepository {
	return &GORMMenuRepository{
		db: db,
	}
}

// GetAll retrieves all menu items in catalog order.
func (r *GORMMenuRepository) GetAll() ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := r.db.Order("position asc").Order("id asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get menu items: %w", err)
	}
	return items, nil
}

// GetByID retrieves a single menu item by its ID.
func (r *GORMMenuRepository) GetByID(id string) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("menu item with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get menu item by ID %s: %w", id, err)
	}
	return &item, nil
}

// Create inserts a new menu item, appending it to the end of the catalog
// when no position is given.
func (r *GORMMenuRepository) Create(item *models.MenuItem) error {
	if item.ID == "" {
		item.ID = "KBQ-" + strings.ToUpper(uuid.NewString()[:8])
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.MenuItem{}).Where("id = ?", item.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check menu item %s: %w", item.ID, err)
		}
		if count > 0 {
			return fmt.Errorf("menu item with ID %s: %w", item.ID, ErrConflict)
		}
		if item.Position == 0 {
			var last int
			if err := tx.Model(&models.MenuItem{}).Select("COALESCE(MAX(position), 0)").Scan(&last).Error; err != nil {
				return fmt.Errorf("failed to find last menu position: %w", err)
			}
			item.Position = last + 1
		}
		if err := tx.Create(item).Error; err != nil {
			return fmt.Errorf("failed to create menu item: %w", err)
		}
		return nil
	})
}

// Update replaces every field of an existing menu item.
func (r *GORMMenuRepository) Update(item *models.MenuItem) error {
	res := r.db.Model(&models.MenuItem{}).Where("id = ?", item.ID).Select("*").Updates(item)
	if res.Error != nil {
		return fmt.Errorf("failed to update menu item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("menu item with ID %s: %w", item.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a menu item by its ID.
func (r *GORMMenuRepository) Delete(id string) error {
	res := r.db.Delete(&models.MenuItem{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete menu item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("menu item with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
