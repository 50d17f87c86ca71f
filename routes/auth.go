package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yacine4098/EXPORTCOUPOLE/auth"
)

// SetupAuthRoutes registers login and token verification (no middleware).
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/login", auth.LoginHandler(db))
		authGroup.GET("/verify", auth.VerifyHandler())
	}
}
