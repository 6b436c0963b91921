package itemcontroller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/abdullinilgiz/shop-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PatchItemInput struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}

// PatchItem handles PATCH /item/:id. Unlike PUT it cannot touch the deleted
// flag, rejects unknown body fields, and answers 304 for an already
// soft-deleted item without mutating anything.
func PatchItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
			return
		}

		// gin's binding cannot reject unknown fields, so decode by hand.
		decoder := json.NewDecoder(c.Request.Body)
		decoder.DisallowUnknownFields()
		var input PatchItemInput
		if err := decoder.Decode(&input); err != nil {
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
		if item.Deleted {
			c.Status(http.StatusNotModified)
			return
		}

		if input.Name != nil {
			item.Name = *input.Name
		}
		if input.Price != nil {
			item.Price = *input.Price
		}

		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
			return
		}

		c.JSON(http.StatusOK, item)
	}
}
