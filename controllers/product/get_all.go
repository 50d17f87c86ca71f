package productcontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yacine4098/EXPORTCOUPOLE/models"
)

// productListItem is the locale-resolved public shape: one language only,
// plus the primary image as an absolute URL (null when no image exists).
type productListItem struct {
	ID          uint      `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Image       *string   `json:"image"`
	Featured    bool      `json:"featured"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GetProducts lists products for the public site. Inactive products are
// excluded unless the caller explicitly filters on active.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := models.ParseLocale(c.Query("lang"))

		query := db.Model(&models.Product{})

		if category := c.Query("category"); category != "" {
			query = query.Where("category_en = ?", category)
		}
		if featured := c.Query("featured"); featured != "" {
			query = query.Where("featured = ?", featured == "true")
		}
		if active := c.Query("active"); active != "" {
			query = query.Where("active = ?", active == "true")
		} else {
			query = query.Where("active = ?", true)
		}

		var products []models.Product
		if err := query.Order("featured DESC, created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		items := make([]productListItem, 0, len(products))
		for i := range products {
			p := &products[i]

			item := productListItem{
				ID:          p.ID,
				Slug:        p.Slug,
				Title:       p.Title(locale),
				Category:    p.Category(locale),
				Description: p.Description(locale),
				Featured:    p.Featured,
				Active:      p.Active,
				CreatedAt:   p.CreatedAt,
				UpdatedAt:   p.UpdatedAt,
			}

			var primary models.ProductImage
			err := db.Where("product_id = ? AND is_primary = ?", p.ID, true).First(&primary).Error
			if err == nil {
				url := absoluteImageURL(primary.ImageURL)
				item.Image = &url
			}

			items = append(items, item)
		}

		c.JSON(http.StatusOK, items)
	}
}
