package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"github.com/thegera4/ecommerce-api/auth"
	"github.com/thegera4/ecommerce-api/config"
	"github.com/thegera4/ecommerce-api/database"
	"github.com/thegera4/ecommerce-api/models"
)

// VerificationSender delivers the account verification email.
type VerificationSender interface {
	SendVerification(user *models.User) error
}

// Controller carries the dependencies shared by every handler.
type Controller struct {
	db     *gorm.DB
	cfg    *config.Config
	tokens *auth.TokenService
	mailer VerificationSender
}

func New(db *gorm.DB, cfg *config.Config, tokens *auth.TokenService, mailer VerificationSender) *Controller {
	return &Controller{db: db, cfg: cfg, tokens: tokens, mailer: mailer}
}

// currentUser returns the user resolved by the auth middleware.
func currentUser(c *gin.Context) (models.User, bool) {
	v, exists := c.Get("current_user")
	if !exists {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}

// abortUnauthorized rejects an ownership mismatch. Same status code as a bad
// token, distinct message.
func abortUnauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": "You are not authorized to perform this action"})
}

func (ctl *Controller) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "E-commerce API"})
}

func (ctl *Controller) Health(c *gin.Context) {
	if err := database.Ping(ctl.db); err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": "Database connection error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Database connection is ok"})
}
