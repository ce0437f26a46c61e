package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"github.com/thegera4/ecommerce-api/models"
)

type categoryInput struct {
	Name string `json:"name" binding:"required"`
}

func (ctl *Controller) CreateCategory(c *gin.Context) {
	var input categoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.Category
	err := ctl.db.Where("name = ?", input.Name).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Invalid data. Category not created"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	category := models.Category{Name: input.Name}
	if err := ctl.db.Create(&category).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Invalid data. Category not created"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":   "ok",
		"message":  "Category created successfully",
		"category": category,
	})
}

func (ctl *Controller) GetCategories(c *gin.Context) {
	var categories []models.Category
	if err := ctl.db.Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "categories": categories})
}

// GetCategory returns a category with its products.
func (ctl *Controller) GetCategory(c *gin.Context) {
	var category models.Category
	if err := ctl.db.Preload("Products").First(&category, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "category": category})
}
