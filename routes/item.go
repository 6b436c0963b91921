package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	itemController "github.com/abdullinilgiz/shop-api/controllers/item"
)

// SetupItemRoutes registers all "/item*" endpoints.
func SetupItemRoutes(r *gin.Engine, db *gorm.DB) {
	itemGroup := r.Group("/item")
	{
		itemGroup.POST("", itemController.CreateItem(db))       // POST /item
		itemGroup.GET("", itemController.GetItems(db))          // GET /item
		itemGroup.GET("/:id", itemController.GetItemByID(db))   // GET /item/:id
		itemGroup.PUT("/:id", itemController.ReplaceItem(db))   // PUT /item/:id
		itemGroup.PATCH("/:id", itemController.PatchItem(db))   // PATCH /item/:id
		itemGroup.DELETE("/:id", itemController.DeleteItem(db)) // DELETE /item/:id
	}
}
