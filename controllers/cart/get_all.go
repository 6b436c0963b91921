package cartcontroller

import (
	"net/http"
	"strconv"

	"github.com/abdullinilgiz/shop-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetCarts handles GET /cart with pagination and range filters over the
// cached price/quantity aggregates. Each returned cart carries the same item
// view as GET /cart/:id.
func GetCarts(db *gorm.DB) gin.HandlerFunc {
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

		query := db.Model(&models.Cart{})

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
		if minQuantityStr := c.Query("min_quantity"); minQuantityStr != "" {
			mq, err := strconv.Atoi(minQuantityStr)
			if err != nil || mq < 0 {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid min_quantity"})
				return
			}
			query = query.Where("quantity >= ?", mq)
		}
		if maxQuantityStr := c.Query("max_quantity"); maxQuantityStr != "" {
			mq, err := strconv.Atoi(maxQuantityStr)
			if err != nil || mq < 0 {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid max_quantity"})
				return
			}
			query = query.Where("quantity <= ?", mq)
		}

		var carts []models.Cart
		if err := query.Order("id ASC").Offset(offset).Limit(limit).Find(&carts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch carts"})
			return
		}

		views := make([]models.CartView, 0, len(carts))
		for i := range carts {
			view, err := buildCartView(db, &carts[i])
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart items"})
				return
			}
			views = append(views, view)
		}

		c.JSON(http.StatusOK, views)
	}
}
