package services

import (
	"kbbq/internal/models"
	"kbbq/internal/repositories"
)

// MenuService handles business logic related to the menu.
type MenuService struct {
	repo repositories.MenuRepository
}

// NewMenuService creates a new MenuService.
func NewMenuService(repo repositories.MenuRepository) *MenuService {
	return &MenuService{
		repo: repo,
	}
}

// ListMenu returns the items matching every set field of filter, in catalog order.
func (s *MenuService) ListMenu(filter models.MenuFilter) ([]models.MenuItem, error) {
	items, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	matched := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if filter.Matches(item) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

// GetMenuItem retrieves a single menu item by its ID.
func (s *MenuService) GetMenuItem(id string) (*models.MenuItem, error) {
	return s.repo.GetByID(id)
}

// CreateMenuItem adds a new item at the end of the catalog. Items are
// available unless the input says otherwise.
func (s *MenuService) CreateMenuItem(in models.MenuItemInput) (*models.MenuItem, error) {
	item := &models.MenuItem{IsAvailable: true}
	apply(item, in)
	if err := s.repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateMenuItem replaces the editable fields of an existing item, keeping
// its place in the catalog.
func (s *MenuService) UpdateMenuItem(id string, in models.MenuItemInput) (*models.MenuItem, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	apply(item, in)
	if err := s.repo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteMenuItem deletes a menu item by its ID.
func (s *MenuService) DeleteMenuItem(id string) error {
	return s.repo.Delete(id)
}

func apply(item *models.MenuItem, in models.MenuItemInput) {
	item.Name = in.Name
	item.Price = in.Price
	item.Category = in.Category
	item.Description = in.Description
	item.Unit = in.Unit
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}
}
