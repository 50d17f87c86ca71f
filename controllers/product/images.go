package productcontroller

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yacine4098/EXPORTCOUPOLE/models"
)

// uploadDir is where product image files land; the same directory is served
// under /uploads.
func uploadDir() string {
	if v := os.Getenv("UPLOAD_DIR"); v != "" {
		return v
	}
	return "./uploads"
}

// UploadProductImage replaces the entire image set of a product with the one
// uploaded file, which becomes the primary image. Old rows are removed in the
// transaction; old files are removed best-effort, so a failed unlink is
// logged and the upload still succeeds.
func UploadProductImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
			return
		}

		displayOrder := 0
		if v := c.PostForm("display_order"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				displayOrder = n
			}
		}

		if err := os.MkdirAll(uploadDir(), os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
			return
		}

		ext := filepath.Ext(file.Filename)
		filename := fmt.Sprintf("%s%s", uuid.NewString(), ext)
		savePath := filepath.Join(uploadDir(), filename)

		if err := c.SaveUploadedFile(file, savePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
			return
		}

		imageURL := fmt.Sprintf("/uploads/%s", filename)

		var oldImages []models.ProductImage
		if err := db.Where("product_id = ?", product.ID).Find(&oldImages).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
			return
		}

		tx := db.Begin()
		if tx.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
			return
		}

		if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
			return
		}

		image := models.ProductImage{
			ProductID:    product.ID,
			ImageURL:     imageURL,
			IsPrimary:    true,
			DisplayOrder: displayOrder,
		}
		if err := tx.Create(&image).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
			return
		}

		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
			return
		}

		for _, old := range oldImages {
			path := filepath.Join(uploadDir(), filepath.Base(old.ImageURL))
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				log.Printf("⚠️ Failed to delete old image file %s: %v", path, err)
			}
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":         image.ID,
			"image_url":  absoluteImageURL(image.ImageURL),
			"is_primary": image.IsPrimary,
		})
	}
}

// DeleteProductImage removes one image row scoped to its product. If the
// deleted image was primary no other image is promoted; the next upload
// establishes a new primary.
func DeleteProductImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("id")
		imageID := c.Param("imageId")

		var image models.ProductImage
		if err := db.Where("id = ? AND product_id = ?", imageID, productID).First(&image).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
			return
		}

		if err := db.Delete(&image).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
			return
		}

		path := filepath.Join(uploadDir(), filepath.Base(image.ImageURL))
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("⚠️ Failed to delete image file %s: %v", path, err)
		}

		c.JSON(http.StatusOK, gin.H{"message": "Image deleted"})
	}
}
