package certcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yacine4098/EXPORTCOUPOLE/models"
)

// GetCertifications returns the certification catalog sorted by name.
func GetCertifications(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var certifications []models.Certification
		if err := db.Order("name").Find(&certifications).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch certifications"})
			return
		}
		c.JSON(http.StatusOK, certifications)
	}
}

func CreateCertification(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Name          string `json:"name"`
			LogoURL       string `json:"logo_url"`
			DescriptionEN string `json:"description_en"`
			DescriptionFR string `json:"description_fr"`
			DescriptionAR string `json:"description_ar"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
			return
		}

		certification := models.Certification{
			Name:          req.Name,
			LogoURL:       req.LogoURL,
			DescriptionEN: req.DescriptionEN,
			DescriptionFR: req.DescriptionFR,
			DescriptionAR: req.DescriptionAR,
		}

		if err := db.Create(&certification).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create certification"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Certification created", "id": certification.ID})
	}
}

func UpdateCertification(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var certification models.Certification
		if err := db.First(&certification, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Certification not found"})
			return
		}

		var req struct {
			Name          string `json:"name"`
			LogoURL       string `json:"logo_url"`
			DescriptionEN string `json:"description_en"`
			DescriptionFR string `json:"description_fr"`
			DescriptionAR string `json:"description_ar"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
			return
		}

		certification.Name = req.Name
		certification.LogoURL = req.LogoURL
		certification.DescriptionEN = req.DescriptionEN
		certification.DescriptionFR = req.DescriptionFR
		certification.DescriptionAR = req.DescriptionAR

		if err := db.Save(&certification).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update certification"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Certification updated"})
	}
}

// DeleteCertification removes a certification and its product links. Products
// themselves are untouched; the certification catalog has its own lifecycle.
func DeleteCertification(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var certification models.Certification
		if err := db.First(&certification, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Certification not found"})
			return
		}

		tx := db.Begin()
		if tx.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
			return
		}

		if err := tx.Exec("DELETE FROM product_certifications WHERE certification_id = ?", certification.ID).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete certification"})
			return
		}
		if err := tx.Delete(&certification).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete certification"})
			return
		}

		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Certification deleted"})
	}
}
