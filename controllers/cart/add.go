package cartcontroller

import (
	"net/http"
	"strconv"

	"github.com/abdullinilgiz/shop-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AddItemToCart handles POST /cart/:cart_id/add/:item_id. The association is
// upserted: a repeated add increments the existing row's quantity instead of
// inserting a second row. Cart totals accumulate the item's price as of this
// call; later price edits do not rewrite them.
func AddItemToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, err := strconv.ParseUint(c.Param("cart_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart ID"})
			return
		}
		itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
			return
		}
		quantity, err := strconv.Atoi(c.DefaultQuery("quantity", "1"))
		if err != nil || quantity < 1 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid quantity"})
			return
		}

		// One unit of work: association upsert and aggregate update commit
		// together or not at all.
		tx := db.Begin()
		if tx.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
			return
		}

		var cart models.Cart
		if err := tx.First(&cart, cartID).Error; err != nil {
			tx.Rollback()
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cart"})
			}
			return
		}

		var item models.Item
		if err := tx.First(&item, itemID).Error; err != nil {
			tx.Rollback()
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve item"})
			}
			return
		}
		if item.Deleted {
			tx.Rollback()
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}

		var association models.CartItem
		err = tx.Where("cart_id = ? AND item_id = ?", cart.ID, item.ID).First(&association).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			association = models.CartItem{
				CartID:   cart.ID,
				ItemID:   item.ID,
				Quantity: quantity,
			}
			if err := tx.Create(&association).Error; err != nil {
				tx.Rollback()
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
				return
			}
		case err != nil:
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		default:
			association.Quantity += quantity
			if err := tx.Save(&association).Error; err != nil {
				tx.Rollback()
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
				return
			}
		}

		cart.Price += item.Price * float64(quantity)
		cart.Quantity += quantity
		if err := tx.Save(&cart).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit cart update"})
			return
		}

		c.JSON(http.StatusOK, cart)
	}
}
