package inquirycontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yacine4098/EXPORTCOUPOLE/models"
)

// GetInquiries lists inquiries newest first, optionally filtered by status.
func GetInquiries(db *gorm.DB) gin.HandlerFunc {
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

		c.JSON(http.StatusOK, inquiries)
	}
}

func GetInquiryByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var inquiry models.Inquiry
		if err := db.First(&inquiry, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
			return
		}
		c.JSON(http.StatusOK, inquiry)
	}
}

// UpdateInquiry accepts any subset of status and notes; at least one must be
// present.
func UpdateInquiry(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var inquiry models.Inquiry
		if err := db.First(&inquiry, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
			return
		}

		var req struct {
			Status *string `json:"status"`
			Notes  *string `json:"notes"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		if req.Status == nil && req.Notes == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
			return
		}

		updates := map[string]interface{}{}
		if req.Status != nil {
			switch *req.Status {
			case models.InquiryStatusNew, models.InquiryStatusInProgress, models.InquiryStatusResolved:
				updates["status"] = *req.Status
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
				return
			}
		}
		if req.Notes != nil {
			updates["notes"] = *req.Notes
		}

		if err := db.Model(&inquiry).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update inquiry"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Inquiry updated"})
	}
}

func DeleteInquiry(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var inquiry models.Inquiry
		if err := db.First(&inquiry, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
			return
		}

		if err := db.Delete(&inquiry).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete inquiry"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Inquiry deleted"})
	}
}
