package handlers

import (
	"net/http"

	"meetslot/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// NewHealthHandler reports liveness and the suggestion cache status.
func NewHealthHandler(cacheClient *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.CheckHealth(c.Request.Context(), cacheClient))
	}
}
