package itemcontroller

import (
	"net/http"
	"strconv"

	"github.com/abdullinilgiz/shop-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetItems handles GET /item with pagination and price-range filters.
// Validation happens before any query; violations return 422 rather than
// being clamped.
func GetItems(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
		if err != nil || offset < 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid offset"})
			return
		}
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
		if err != nil || limit < 1 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid limit"})
			return
		}

		query := db.Model(&models.Item{})

		if minPriceStr := c.Query("min_price"); minPriceStr != "" {
			mp, err := strconv.ParseFloat(minPriceStr, 64)
			if err != nil || mp < 0 {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid min_price"})
				return
			}
			query = query.Where("price >= ?", mp)
		}
		if maxPriceStr := c.Query("max_price"); maxPriceStr != "" {
			mp, err := strconv.ParseFloat(maxPriceStr, 64)
			if err != nil || mp < 0 {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid max_price"})
				return
			}
			query = query.Where("price <= ?", mp)
		}

		showDeleted := false
		if showDeletedStr := c.Query("show_deleted"); showDeletedStr != "" {
			showDeleted, err = strconv.ParseBool(showDeletedStr)
			if err != nil {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid show_deleted"})
				return
			}
		}
		if !showDeleted {
			query = query.Where("deleted = ?", false)
		}

		var items []models.Item
		if err := query.Order("id ASC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch items"})
			return
		}

		c.JSON(http.StatusOK, items)
	}
}
