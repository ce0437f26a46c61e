package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"github.com/thegera4/ecommerce-api/models"
)

type productInput struct {
	Name                string    `json:"name" binding:"required"`
	OriginalPrice       float64   `json:"original_price"`
	NewPrice            float64   `json:"new_price"`
	OfferExpirationDate time.Time `json:"offer_expiration_date"`
	CategoryID          uint      `json:"category_id"`
}

func handleProductError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	} else {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// ownerOf resolves a product to its owning user through the business.
func (ctl *Controller) ownerOf(product *models.Product) (models.Business, models.User, error) {
	var business models.Business
	if err := ctl.db.First(&business, product.BusinessID).Error; err != nil {
		return business, models.User{}, err
	}
	var owner models.User
	if err := ctl.db.First(&owner, business.OwnerID).Error; err != nil {
		return business, owner, err
	}
	return business, owner, nil
}

func (ctl *Controller) GetProducts(c *gin.Context) {
	var products []models.Product
	if err := ctl.db.Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "products": products})
}

// GetProduct returns a product joined with its owning business details.
func (ctl *Controller) GetProduct(c *gin.Context) {
	var product models.Product
	if err := ctl.db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
		handleProductError(c, err)
		return
	}

	business, owner, err := ctl.ownerOf(&product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"data": gin.H{
			"product_details": product,
			"business_details": gin.H{
				"name":              business.Name,
				"city":              business.City,
				"region":            business.Region,
				"description":       business.Description,
				"logo":              business.Logo,
				"owner":             owner.Username,
				"owner_email":       owner.Email,
				"owner_id":          owner.ID,
				"owner_joined_date": owner.JoinDate.Format("Jan 02 2006"),
			},
		},
	})
}

// CreateProduct adds a product under the requester's own business.
func (ctl *Controller) CreateProduct(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.OriginalPrice <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data. Original price must be > 0"})
		return
	}

	var business models.Business
	if err := ctl.db.Where("owner_id = ?", user.ID).First(&business).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}

	product := models.Product{
		Name:                input.Name,
		Image:               models.DefaultProductImage,
		OriginalPrice:       input.OriginalPrice,
		NewPrice:            input.NewPrice,
		PercentageDiscount:  models.ComputeDiscount(input.OriginalPrice, input.NewPrice),
		OfferExpirationDate: input.OfferExpirationDate,
		DatePublished:       time.Now(),
		BusinessID:          business.ID,
		CategoryID:          input.CategoryID,
	}

	if err := ctl.db.Create(&product).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Invalid data. Product not created"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "ok",
		"message": "Product created successfully",
		"product": product,
	})
}

// UpdateProduct recomputes the discount and refreshes the publish timestamp.
// Only the transitive owner may update.
func (ctl *Controller) UpdateProduct(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var product models.Product
	if err := ctl.db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
		handleProductError(c, err)
		return
	}

	_, owner, err := ctl.ownerOf(&product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if owner.ID != user.ID {
		abortUnauthorized(c)
		return
	}

	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.OriginalPrice <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data. Original price must be > 0"})
		return
	}

	updates := map[string]interface{}{
		"name":                  input.Name,
		"original_price":        input.OriginalPrice,
		"new_price":             input.NewPrice,
		"percentage_discount":   models.ComputeDiscount(input.OriginalPrice, input.NewPrice),
		"offer_expiration_date": input.OfferExpirationDate,
		"category_id":           input.CategoryID,
		"date_published":        time.Now(),
	}
	if err := ctl.db.Model(&product).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "data": product})
}

// DeleteProduct hard-deletes, gated by ownership.
func (ctl *Controller) DeleteProduct(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var product models.Product
	if err := ctl.db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
		handleProductError(c, err)
		return
	}

	_, owner, err := ctl.ownerOf(&product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if owner.ID != user.ID {
		abortUnauthorized(c)
		return
	}

	if err := ctl.db.Unscoped().Delete(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Product deleted successfully"})
}
