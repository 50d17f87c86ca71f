package productcontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yacine4098/EXPORTCOUPOLE/models"
)

// UpdateProduct replaces a product aggregate. The supplied child lists are the
// complete desired state: existing rows are deleted and the new lists inserted
// in order, all inside one transaction.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var payload productPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}
		if err := payload.validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var conflict models.Product
		if err := db.Where("slug = ? AND id <> ?", payload.Slug, product.ID).First(&conflict).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Slug already in use"})
			return
		}

		tx := db.Begin()
		if tx.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
			return
		}

		payload.apply(&product)

		if err := tx.Save(&product).Error; err != nil {
			tx.Rollback()
			log.Printf("❌ Update product %d failed: %v", product.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		if err := replaceChildren(tx, product.ID, &payload); err != nil {
			tx.Rollback()
			log.Printf("❌ Update product %d children failed: %v", product.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product updated"})
	}
}
