package services

import (
	"kbbq/internal/models"
	"kbbq/internal/repositories"
)

// CatalogService serves categories and shops.
type CatalogService struct {
	categories repositories.CategoryRepository
	shops      repositories.ShopRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(categories repositories.CategoryRepository, shops repositories.ShopRepository) *CatalogService {
	return &CatalogService{
		categories: categories,
		shops:      shops,
	}
}

// Categories returns category names in display order.
func (s *CatalogService) Categories() ([]string, error) {
	categories, err := s.categories.GetAll()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	return names, nil
}

func (s *CatalogService) AddCategory(name string) error {
	return s.categories.Create(name)
}

func (s *CatalogService) DeleteCategory(name string) error {
	return s.categories.Delete(name)
}

// Shops returns every branch.
func (s *CatalogService) Shops() ([]models.Shop, error) {
	shops, err := s.shops.GetAll()
	if err != nil {
		return nil, err
	}
	if shops == nil {
		shops = []models.Shop{}
	}
	return shops, nil
}

// SetShopOpen opens or closes the branch with the given ID.
func (s *CatalogService) SetShopOpen(id string, open bool) error {
	return s.shops.SetOpen(id, open)
}
