package models

import (
	"math"
	"time"

	"github.com/jinzhu/gorm"
)

const DefaultProductImage = "defaultProduct.png"

// Product is owned transitively by exactly one User through its Business.
// PercentageDiscount is derived from the two prices, never set directly.
type Product struct {
	gorm.Model
	Name                string    `json:"name" gorm:"not null;index"`
	Image               string    `json:"image" gorm:"not null"`
	OriginalPrice       float64   `json:"original_price" gorm:"not null"`
	NewPrice            float64   `json:"new_price" gorm:"not null"`
	PercentageDiscount  int       `json:"percentage_discount"`
	OfferExpirationDate time.Time `json:"offer_expiration_date"`
	DatePublished       time.Time `json:"date_published"`
	BusinessID          uint      `json:"business_id" gorm:"not null;index"`
	CategoryID          uint      `json:"category_id" gorm:"index"`
}

// ComputeDiscount returns the rounded discount percentage. Callers must
// guarantee originalPrice > 0.
func ComputeDiscount(originalPrice, newPrice float64) int {
	return int(math.Round((originalPrice - newPrice) / originalPrice * 100))
}
