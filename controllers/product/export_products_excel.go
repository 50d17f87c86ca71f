package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/yacine4098/EXPORTCOUPOLE/models"
)

// ExportProductsToExcel streams the whole catalog as an xlsx download for the
// back-office.
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Certifications").Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Slug", "TitleEN", "TitleFR", "TitleAR",
			"CategoryEN", "CategoryFR", "CategoryAR",
			"Featured", "Active", "Certifications", "CreatedAt", "UpdatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()

			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Slug)
			row.AddCell().SetValue(p.TitleEN)
			row.AddCell().SetValue(p.TitleFR)
			row.AddCell().SetValue(p.TitleAR)
			row.AddCell().SetValue(p.CategoryEN)
			row.AddCell().SetValue(p.CategoryFR)
			row.AddCell().SetValue(p.CategoryAR)
			row.AddCell().SetValue(strconv.FormatBool(p.Featured))
			row.AddCell().SetValue(strconv.FormatBool(p.Active))

			var certNames []string
			for _, cert := range p.Certifications {
				certNames = append(certNames, cert.Name)
			}
			row.AddCell().SetValue(strings.Join(certNames, ","))

			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(p.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
