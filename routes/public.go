package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	inquirycontroller "github.com/yacine4098/EXPORTCOUPOLE/controllers/inquiry"
	productcontroller "github.com/yacine4098/EXPORTCOUPOLE/controllers/product"
)

// SetupPublicRoutes registers the unauthenticated catalog and inquiry
// endpoints.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "ok",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
		})

		products := api.Group("/products")
		{
			products.GET("", productcontroller.GetProducts(db))
			products.GET("/meta/categories", productcontroller.GetCategories(db))
			products.GET("/:slug", productcontroller.GetProductBySlug(db))
		}

		api.POST("/inquiries", inquirycontroller.CreateInquiry(db))
	}
}
