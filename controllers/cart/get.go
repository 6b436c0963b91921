package cartcontroller

import (
	"net/http"
	"strconv"

	"github.com/abdullinilgiz/shop-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetCartByID returns the cart-with-items view.
// URL param: /cart/:cart_id
func GetCartByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("cart_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart ID"})
			return
		}

		var cart models.Cart
		if err := db.First(&cart, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cart"})
			}
			return
		}

		view, err := buildCartView(db, &cart)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart items"})
			return
		}

		c.JSON(http.StatusOK, view)
	}
}
