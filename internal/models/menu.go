package models

// MenuItem is a dish on the restaurant menu.
type MenuItem struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string  `json:"name" gorm:"type:varchar(200)"`
	Category    string  `json:"category" gorm:"index;type:varchar(100)"`
	Price       float64 `json:"price"`
	Unit        string  `json:"unit,omitempty" gorm:"type:varchar(50)"`
	Description string  `json:"description" gorm:"type:varchar(500)"`
	IsAvailable bool    `json:"isAvailable"`
	Position    int     `json:"-" gorm:"index"` // Catalog order
}

// MenuItemInput is the admin payload for adding or replacing a menu item.
type MenuItemInput struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Price       float64 `json:"price" validate:"gte=0"`
	Category    string  `json:"category" validate:"required,max=100"`
	Description string  `json:"description" validate:"required,max=500"`
	Unit        string  `json:"unit" validate:"omitempty,max=50"`
	IsAvailable *bool   `json:"isAvailable"`
}

// MenuFilter narrows a menu listing. Nil fields are ignored.
type MenuFilter struct {
	Category  string
	MinPrice  *float64 `validate:"omitempty,gte=0"`
	MaxPrice  *float64 `validate:"omitempty,gte=0"`
	Available *bool
}

// Matches reports whether the item passes every set condition of the filter.
func (f MenuFilter) Matches(item MenuItem) bool {
	if f.Category != "" && item.Category != f.Category {
		return false
	}
	if f.MinPrice != nil && item.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && item.Price > *f.MaxPrice {
		return false
	}
	if f.Available != nil && item.IsAvailable != *f.Available {
		return false
	}
	return true
}
