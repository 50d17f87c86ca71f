package productcontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yacine4098/EXPORTCOUPOLE/models"
)

// CreateProduct inserts a product aggregate in a single transaction: the
// product row, its ordered specification and packaging lists, and its
// certification links.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload productPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}
		if err := payload.validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var existing models.Product
		if err := db.Where("slug = ?", payload.Slug).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Slug already in use"})
			return
		}

		tx := db.Begin()
		if tx.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
			return
		}

		var product models.Product
		payload.apply(&product)

		if err := tx.Create(&product).Error; err != nil {
			tx.Rollback()
			log.Printf("❌ Create product failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		if err := replaceChildren(tx, product.ID, &payload); err != nil {
			tx.Rollback()
			log.Printf("❌ Create product children failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Product created", "id": product.ID})
	}
}
