package models

// Category is a menu grouping shown in the ordering app.
type Category struct {
	Name     string `json:"name" gorm:"primaryKey;type:varchar(100)"`
	Position int    `json:"-" gorm:"index"`
}

// Shop is a restaurant branch.
type Shop struct {
	ID     string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name   string `json:"name" gorm:"type:varchar(200)"`
	IsOpen bool   `json:"isOpen"`
}
