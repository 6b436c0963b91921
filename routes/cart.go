package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartController "github.com/abdullinilgiz/shop-api/controllers/cart"
)

// SetupCartRoutes registers all "/cart*" endpoints.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cartGroup := r.Group("/cart")
	{
		cartGroup.POST("", cartController.CreateCart(db))                          // POST /cart
		cartGroup.GET("", cartController.GetCarts(db))                             // GET /cart
		cartGroup.GET("/:cart_id", cartController.GetCartByID(db))                 // GET /cart/:cart_id
		cartGroup.POST("/:cart_id/add/:item_id", cartController.AddItemToCart(db)) // POST /cart/:cart_id/add/:item_id
	}
}
