package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"github.com/thegera4/ecommerce-api/models"
)

type businessInput struct {
	Name        string `json:"name" binding:"required"`
	City        string `json:"city"`
	Region      string `json:"region"`
	Description string `json:"description"`
}

func handleBusinessError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
	} else {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (ctl *Controller) GetBusinesses(c *gin.Context) {
	var businesses []models.Business
	if err := ctl.db.Find(&businesses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "businesses": businesses})
}

func (ctl *Controller) GetBusiness(c *gin.Context) {
	var business models.Business
	if err := ctl.db.First(&business, "id = ?", c.Param("id")).Error; err != nil {
		handleBusinessError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "data": business})
}

// UpdateBusiness lets the owner change the public details of their business.
func (ctl *Controller) UpdateBusiness(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var business models.Business
	if err := ctl.db.First(&business, "id = ?", c.Param("id")).Error; err != nil {
		handleBusinessError(c, err)
		return
	}
	if business.OwnerID != user.ID {
		abortUnauthorized(c)
		return
	}

	var input businessInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"name":        input.Name,
		"city":        input.City,
		"region":      input.Region,
		"description": input.Description,
	}
	if err := ctl.db.Model(&business).Updates(updates).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Invalid data. Business not updated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "data": business})
}

// DeleteBusiness removes a business and its products, gated by ownership.
func (ctl *Controller) DeleteBusiness(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var business models.Business
	if err := ctl.db.First(&business, "id = ?", c.Param("id")).Error; err != nil {
		handleBusinessError(c, err)
		return
	}
	if business.OwnerID != user.ID {
		abortUnauthorized(c)
		return
	}

	tx := ctl.db.Begin()
	if err := tx.Unscoped().Where("business_id = ?", business.ID).Delete(&models.Product{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := tx.Unscoped().Delete(&business).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Business deleted successfully"})
}
