package inquirycontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/yacine4098/EXPORTCOUPOLE/models"
)

// ExportInquiriesToExcel streams all inquiries as an xlsx download, newest
// first, honoring the same status filter as the list endpoint.
func ExportInquiriesToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Inquiry{})
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}

		var inquiries []models.Inquiry
		if err := query.Order("created_at DESC").Find(&inquiries).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inquiries"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Inquiries")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Name", "Company", "Email", "Phone", "Country",
			"Message", "ProductsInterested", "Status", "Notes", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, inquiry := range inquiries {
			row := sheet.AddRow()

			row.AddCell().SetValue(inquiry.ID)
			row.AddCell().SetValue(inquiry.Name)
			row.AddCell().SetValue(inquiry.Company)
			row.AddCell().SetValue(inquiry.Email)
			row.AddCell().SetValue(inquiry.Phone)
			row.AddCell().SetValue(inquiry.Country)
			row.AddCell().SetValue(inquiry.Message)
			row.AddCell().SetValue(inquiry.ProductsInterested)
			row.AddCell().SetValue(inquiry.Status)
			row.AddCell().SetValue(inquiry.Notes)
			row.AddCell().SetValue(inquiry.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=inquiries.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
