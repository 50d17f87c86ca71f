package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the public, auth, and
// admin route groups under /api.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	SetupPublicRoutes(r, db)

	SetupAuthRoutes(r, db)

	SetupAdminRoutes(r, db)
}
