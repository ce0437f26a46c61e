package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/rs/zerolog/log"

	"github.com/thegera4/ecommerce-api/auth"
	"github.com/thegera4/ecommerce-api/models"
)

type registrationInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type credentials struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// Register creates a user, auto-provisions their business in the same
// transaction, and sends the verification email.
func (ctl *Controller) Register(c *gin.Context) {
	var input registrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.User
	err := ctl.db.Where("username = ? OR email = ?", input.Username, input.Email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "User with this username or email already exists"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	hashed, err := auth.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hashed,
		JoinDate: time.Now(),
	}

	tx := ctl.db.Begin()
	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusConflict, gin.H{"error": "Invalid data. User not created"})
		return
	}

	business := models.Business{
		Name:    user.Username,
		City:    "Unspecified",
		Region:  "Unspecified",
		Logo:    models.DefaultBusinessLogo,
		OwnerID: user.ID,
	}
	if err := tx.Create(&business).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusConflict, gin.H{"error": "Invalid data. User not created"})
		return
	}
	tx.Commit()

	// A failed send must not undo the registration; the link can be reissued.
	if err := ctl.mailer.SendVerification(&user); err != nil {
		log.Error().Err(err).Uint("user_id", user.ID).Msg("failed to send verification email")
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "ok",
		"message": fmt.Sprintf("Hello %s, thanks for choosing our services. "+
			"Please check your email inbox to verify your account", user.Username),
	})
}

// Token exchanges form credentials for a bearer token.
func (ctl *Controller) Token(c *gin.Context) {
	var creds credentials
	if err := c.ShouldBind(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	var user models.User
	if err := ctl.db.Where("username = ?", creds.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}
	if !auth.CheckPasswordHash(creds.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	token, err := ctl.tokens.Issue(user.ID, user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}

// VerifyEmail flips is_verified exactly once. A spent or invalid link fails
// without touching the record.
func (ctl *Controller) VerifyEmail(c *gin.Context) {
	userID, err := ctl.tokens.Verify(c.Query("token"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	var user models.User
	if err := ctl.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}
	if user.IsVerified {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	user.IsVerified = true
	if err := ctl.db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.HTML(http.StatusOK, "verification.html", gin.H{"username": user.Username})
}

func (ctl *Controller) GetUsers(c *gin.Context) {
	var users []models.User
	if err := ctl.db.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "users": users})
}

// Me returns the logged-in user's profile with their business logo URL.
func (ctl *Controller) Me(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var business models.Business
	if err := ctl.db.Where("owner_id = ?", user.ID).First(&business).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"data": gin.H{
			"username":    user.Username,
			"email":       user.Email,
			"verified":    user.IsVerified,
			"joined_date": user.JoinDate.Format("Jan 02 2006"),
			"logo":        ctl.cfg.ServerURL + "/static/images/" + business.Logo,
		},
	})
}
