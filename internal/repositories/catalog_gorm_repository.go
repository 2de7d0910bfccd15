package repositories

import (
	"fmt"

	"kbbq/internal/models"

	"gorm.io/gorm"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{db: db}
}

// GetAll retrieves all categories in display order.
func (r *GORMCategoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("position asc").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

// Create appends a category after the existing ones.
func (r *GORMCategoryRepository) Create(name string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Category{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check category %s: %w", name, err)
		}
		if count > 0 {
			return fmt.Errorf("category %s: %w", name, ErrConflict)
		}
		var last int
		if err := tx.Model(&models.Category{}).Select("COALESCE(MAX(position), 0)").Scan(&last).Error; err != nil {
			return fmt.Errorf("failed to find last category position: %w", err)
		}
		if err := tx.Create(&models.Category{Name: name, Position: last + 1}).Error; err != nil {
			return fmt.Errorf("failed to create category: %w", err)
		}
		return nil
	})
}

// Delete removes a category by name.
func (r *GORMCategoryRepository) Delete(name string) error {
	res := r.db.Delete(&models.Category{}, "name = ?", name)
	if res.Error != nil {
		return fmt.Errorf("failed to delete category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("category %s: %w", name, ErrNotFound)
	}
	return nil
}

// GORMShopRepository is a GORM implementation of ShopRepository.
type GORMShopRepository struct {
	db *gorm.DB
}

// NewGORMShopRepository creates a new instance of GORMShopRepository.
func NewGORMShopRepository(db *gorm.DB) *GORMShopRepository {
	return &GORMShopRepository{db: db}
}

// GetAll retrieves every shop ordered by ID.
func (r *GORMShopRepository) GetAll() ([]models.Shop, error) {
	var shops []models.Shop
	if err := r.db.Order("id asc").Find(&shops).Error; err != nil {
		return nil, fmt.Errorf("failed to get shops: %w", err)
	}
	return shops, nil
}

// SetOpen opens or closes a shop.
func (r *GORMShopRepository) SetOpen(id string, open bool) error {
	res := r.db.Model(&models.Shop{}).Where("id = ?", id).Update("is_open", open)
	if res.Error != nil {
		return fmt.Errorf("failed to update shop %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("shop with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
