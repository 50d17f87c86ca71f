package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yacine4098/EXPORTCOUPOLE/models"
)

// GetCategories returns the distinct category names of active products in the
// requested locale, sorted alphabetically.
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := models.ParseLocale(c.Query("lang"))

		var column string
		switch locale {
		case models.LocaleFR:
			column = "category_fr"
		case models.LocaleAR:
			column = "category_ar"
		default:
			column = "category_en"
		}

		var categories []string
		err := db.Model(&models.Product{}).
			Distinct(column).
			Where("active = ?", true).
			Where(column+" <> ''").
			Order(column).
			Pluck(column, &categories).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		c.JSON(http.StatusOK, categories)
	}
}
