package inquirycontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yacine4098/EXPORTCOUPOLE/mailer"
	"github.com/yacine4098/EXPORTCOUPOLE/models"
)

// CreateInquiry handles the public contact form. The row is written first;
// the operator notification runs in the background and its failure is only
// logged.
func CreateInquiry(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Name               string `json:"name"`
			Company            string `json:"company"`
			Email              string `json:"email"`
			Phone              string `json:"phone"`
			Country            string `json:"country"`
			Message            string `json:"message"`
			ProductsInterested string `json:"products_interested"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		if req.Name == "" || req.Company == "" || req.Email == "" || req.Country == "" || req.Message == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Required fields missing"})
			return
		}

		inquiry := models.Inquiry{
			Name:               req.Name,
			Company:            req.Company,
			Email:              req.Email,
			Phone:              req.Phone,
			Country:            req.Country,
			Message:            req.Message,
			ProductsInterested: req.ProductsInterested,
			Status:             models.InquiryStatusNew,
		}

		if err := db.Create(&inquiry).Error; err != nil {
			log.Printf("❌ Create inquiry failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit inquiry"})
			return
		}

		go func(i models.Inquiry) {
			if err := mailer.NotifyInquiry(&i); err != nil {
				log.Printf("⚠️ Inquiry notification failed: %v", err)
			}
		}(inquiry)

		c.JSON(http.StatusCreated, gin.H{
			"message": "Inquiry submitted successfully",
			"id":      inquiry.ID,
		})
	}
}
