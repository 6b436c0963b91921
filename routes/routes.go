package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	healthController "github.com/abdullinilgiz/shop-api/controllers/health"
)

// SetupRoutes is the single entry-point that wires up the item and cart
// route groups plus the liveness endpoint.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/health", healthController.Healthcheck())

	SetupItemRoutes(r, db)

	SetupCartRoutes(r, db)
}
