package controllers

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/thegera4/ecommerce-api/models"
)

var allowedExtensions = map[string]bool{"png": true, "jpg": true, "jpeg": true}

// randomFileName returns an unguessable hex name, keeping the extension.
func randomFileName(extension string) (string, error) {
	buf := make([]byte, 10)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf) + "." + extension, nil
}

// saveImage stores the uploaded file under a random name and resizes it to
// the canonical 200x200. Returns the stored filename, or false after having
// written the error response.
func (ctl *Controller) saveImage(c *gin.Context) (string, bool) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return "", false
	}

	extension := strings.ToLower(strings.TrimPrefix(filepath.Ext(file.Filename), "."))
	if !allowedExtensions[extension] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file format"})
		return "", false
	}

	name, err := randomFileName(extension)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate file name"})
		return "", false
	}

	destination := filepath.Join(ctl.cfg.StaticDir, "images", name)
	if err := c.SaveUploadedFile(file, destination); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save file"})
		return "", false
	}

	img, err := imaging.Open(destination)
	if err != nil {
		if removeErr := os.Remove(destination); removeErr != nil {
			log.Error().Err(removeErr).Str("file", destination).Msg("failed to remove rejected upload")
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file format"})
		return "", false
	}
	resized := imaging.Resize(img, 200, 200, imaging.Lanczos)
	if err := imaging.Save(resized, destination); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save file"})
		return "", false
	}

	return name, true
}

func (ctl *Controller) imageURL(name string) string {
	return ctl.cfg.ServerURL + "/static/images/" + name
}

// UploadProfilePicture sets the requester's business logo.
func (ctl *Controller) UploadProfilePicture(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var business models.Business
	if err := ctl.db.Where("owner_id = ?", user.ID).First(&business).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}

	name, ok := ctl.saveImage(c)
	if !ok {
		return
	}

	if err := ctl.db.Model(&business).Update("logo", name).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Image uploaded successfully",
		"url":     ctl.imageURL(name),
	})
}

// UploadProductPicture sets a product image, gated by transitive ownership.
func (ctl *Controller) UploadProductPicture(c *gin.Context) {
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

	name, ok := ctl.saveImage(c)
	if !ok {
		return
	}

	if err := ctl.db.Model(&product).Update("image", name).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Image uploaded successfully",
		"url":     ctl.imageURL(name),
	})
}
