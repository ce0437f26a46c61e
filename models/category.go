package models

import "github.com/jinzhu/gorm"

// Category groups products across businesses.
type Category struct {
	gorm.Model
	Name     string    `json:"name" gorm:"not null;unique"`
	Products []Product `json:"products" gorm:"foreignKey:CategoryID"`
}
