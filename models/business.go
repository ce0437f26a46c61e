package models

import "github.com/jinzhu/gorm"

const DefaultBusinessLogo = "defaultBusiness.png"

// Business belongs to exactly one User and is auto-provisioned on
// registration.
type Business struct {
	gorm.Model
	Name        string     `json:"name" gorm:"not null;unique"`
	City        string     `json:"city" gorm:"not null"`
	Region      string     `json:"region" gorm:"not null"`
	Description string     `json:"description"`
	Logo        string     `json:"logo" gorm:"not null"`
	OwnerID     uint       `json:"owner_id" gorm:"not null;index"`
	Products    []*Product `json:"-" gorm:"foreignKey:BusinessID"`
}
