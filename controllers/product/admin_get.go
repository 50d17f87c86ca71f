package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yacine4098/EXPORTCOUPOLE/models"
)

// AdminGetProducts lists every product, inactive ones included, newest first,
// with the full image set on each row.
func AdminGetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		err := db.Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_primary DESC, display_order ASC")
		}).Order("created_at DESC").Find(&products).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		for i := range products {
			for j := range products[i].Images {
				products[i].Images[j].ImageURL = absoluteImageURL(products[i].Images[j].ImageURL)
			}
		}

		c.JSON(http.StatusOK, products)
	}
}

// AdminGetProductByID returns one product with every child collection, with
// no active filter. URL param: /admin/products/:id
func AdminGetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		err := db.
			Preload("Images", func(db *gorm.DB) *gorm.DB {
				return db.Order("is_primary DESC, display_order ASC")
			}).
			Preload("Specifications", func(db *gorm.DB) *gorm.DB {
				return db.Order("spec_order ASC")
			}).
			Preload("Packaging", func(db *gorm.DB) *gorm.DB {
				return db.Order("pack_order ASC")
			}).
			Preload("Certifications").
			First(&product, id).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		for i := range product.Images {
			product.Images[i].ImageURL = absoluteImageURL(product.Images[i].ImageURL)
		}

		c.JSON(http.StatusOK, product)
	}
}
