package itemcontroller

import (
	"net/http"
	"strconv"

	"github.com/abdullinilgiz/shop-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReplaceItemInput struct {
	Name    *string  `json:"name"`
	Price   *float64 `json:"price"`
	Deleted *bool    `json:"deleted"`
}

// ReplaceItem handles PUT /item/:id. Provided fields overwrite the stored
// ones unconditionally; setting deleted=false resurrects a soft-deleted item.
func ReplaceItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
			return
		}

		var input ReplaceItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var item models.Item
		if err := db.First(&item, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve item"})
			}
			return
		}

		if input.Name != nil {
			item.Name = *input.Name
		}
		if input.Price != nil {
			item.Price = *input.Price
		}
		if input.Deleted != nil {
			item.Deleted = *input.Deleted
		}

		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
			return
		}

		c.JSON(http.StatusOK, item)
	}
}
