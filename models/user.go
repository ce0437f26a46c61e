package models

import (
	"time"

	"github.com/jinzhu/gorm"
)

// User is a registered account. The password column holds a bcrypt hash and
// never serializes to JSON.
type User struct {
	gorm.Model
	Username   string    `json:"username" gorm:"not null;unique"`
	Email      string    `json:"email" gorm:"not null;unique"`
	Password   string    `json:"-" gorm:"not null"`
	IsVerified bool      `json:"is_verified" gorm:"not null;default:false"`
	JoinDate   time.Time `json:"join_date"`
	Business   *Business `json:"-" gorm:"foreignKey:OwnerID"`
}
