package itemcontroller

import (
	"net/http"
	"strconv"

	"github.com/abdullinilgiz/shop-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DeleteItem handles DELETE /item/:id. Deletion is soft: the row stays and
// only the deleted flag flips. Deleting an already-deleted item is a no-op
// that still succeeds.
func DeleteItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
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

		if !item.Deleted {
			item.Deleted = true
			if err := db.Save(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
				return
			}
		}

		c.JSON(http.StatusOK, item)
	}
}
