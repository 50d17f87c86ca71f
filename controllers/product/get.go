package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yacine4098/EXPORTCOUPOLE/models"
)

type imageDetail struct {
	ID           uint   `json:"id"`
	ImageURL     string `json:"image_url"`
	IsPrimary    bool   `json:"is_primary"`
	DisplayOrder int    `json:"display_order"`
}

type localizedPair struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// GetProductBySlug returns the full multilingual record for the public detail
// page: all three locales on the product itself, locale-resolved ordered
// specification and packaging pairs, images primary-first, and linked
// certifications. Inactive products are invisible here.
func GetProductBySlug(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		locale := models.ParseLocale(c.Query("lang"))

		var product models.Product
		err := db.Where("slug = ? AND active = ?", slug, true).First(&product).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		var images []models.ProductImage
		if err := db.Where("product_id = ?", product.ID).
			Order("is_primary DESC, display_order ASC").
			Find(&images).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			return
		}
		imageList := make([]imageDetail, 0, len(images))
		for _, img := range images {
			imageList = append(imageList, imageDetail{
				ID:           img.ID,
				ImageURL:     absoluteImageURL(img.ImageURL),
				IsPrimary:    img.IsPrimary,
				DisplayOrder: img.DisplayOrder,
			})
		}

		var specs []models.ProductSpecification
		if err := db.Where("product_id = ?", product.ID).
			Order("spec_order ASC").Find(&specs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			return
		}
		specList := make([]localizedPair, 0, len(specs))
		for i := range specs {
			specList = append(specList, localizedPair{
				Label: specs[i].Label(locale),
				Value: specs[i].Value(locale),
			})
		}

		var packaging []models.ProductPackaging
		if err := db.Where("product_id = ?", product.ID).
			Order("pack_order ASC").Find(&packaging).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			return
		}
		packList := make([]localizedPair, 0, len(packaging))
		for i := range packaging {
			packList = append(packList, localizedPair{
				Label: packaging[i].Label(locale),
				Value: packaging[i].Value(locale),
			})
		}

		var certs []models.Certification
		if err := db.Model(&product).Association("Certifications").Find(&certs); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			return
		}
		certList := make([]gin.H, 0, len(certs))
		for _, cert := range certs {
			certList = append(certList, gin.H{
				"id":             cert.ID,
				"name":           cert.Name,
				"logo_url":       cert.LogoURL,
				"description_en": cert.DescriptionEN,
				"description_fr": cert.DescriptionFR,
				"description_ar": cert.DescriptionAR,
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"id":             product.ID,
			"slug":           product.Slug,
			"title_en":       product.TitleEN,
			"title_fr":       product.TitleFR,
			"title_ar":       product.TitleAR,
			"category_en":    product.CategoryEN,
			"category_fr":    product.CategoryFR,
			"category_ar":    product.CategoryAR,
			"description_en": product.DescriptionEN,
			"description_fr": product.DescriptionFR,
			"description_ar": product.DescriptionAR,
			"featured":       product.Featured,
			"active":         product.Active,
			"created_at":     product.CreatedAt,
			"updated_at":     product.UpdatedAt,
			"images":         imageList,
			"specifications": specList,
			"packaging":      packList,
			"certifications": certList,
		})
	}
}
