package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	certcontroller "github.com/yacine4098/EXPORTCOUPOLE/controllers/certification"
	inquirycontroller "github.com/yacine4098/EXPORTCOUPOLE/controllers/inquiry"
	productcontroller "github.com/yacine4098/EXPORTCOUPOLE/controllers/product"
	"github.com/yacine4098/EXPORTCOUPOLE/middleware"
)

// SetupAdminRoutes registers all "/api/admin/*" endpoints behind the JWT
// admin middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.RequireAdmin)
	{
		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productcontroller.AdminGetProducts(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
			productAdmin.GET("/:id", productcontroller.AdminGetProductByID(db))
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.POST("/:id/images", productcontroller.UploadProductImage(db))
			productAdmin.DELETE("/:id/images/:imageId", productcontroller.DeleteProductImage(db))
		}

		// ─────────── Certification Management ───────────
		certAdmin := adminGroup.Group("/certifications")
		{
			certAdmin.GET("", certcontroller.GetCertifications(db))
			certAdmin.POST("", certcontroller.CreateCertification(db))
			certAdmin.PUT("/:id", certcontroller.UpdateCertification(db))
			certAdmin.DELETE("/:id", certcontroller.DeleteCertification(db))
		}

		// ─────────── Inquiry Management ───────────
		inquiryAdmin := adminGroup.Group("/inquiries")
		{
			inquiryAdmin.GET("", inquirycontroller.GetInquiries(db))
			inquiryAdmin.GET("/export-excel", inquirycontroller.ExportInquiriesToExcel(db))
			inquiryAdmin.GET("/:id", inquirycontroller.GetInquiryByID(db))
			inquiryAdmin.PATCH("/:id", inquirycontroller.UpdateInquiry(db))
			inquiryAdmin.DELETE("/:id", inquirycontroller.DeleteInquiry(db))
		}
	}
}
