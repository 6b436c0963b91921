package cartcontroller

import (
	"fmt"
	"net/http"

	"github.com/abdullinilgiz/shop-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateCart handles POST /cart. A new cart always starts empty with zero
// totals; the Location header points at the created resource.
func CreateCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cart models.Cart
		if err := db.Create(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cart"})
			return
		}

		c.Header("Location", fmt.Sprintf("/cart/%d", cart.ID))
		c.JSON(http.StatusCreated, cart)
	}
}
