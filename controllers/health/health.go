package healthcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Healthcheck reports process liveness.
func Healthcheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
