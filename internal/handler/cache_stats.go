package handler

import (
	"net/http"

	"github.com/Carlos-148/App-Economia-CB/internal/cache"

	"github.com/gin-gonic/gin"
)

// CacheStats exposes the in-process cache counters for diagnostics.
func CacheStats(c *cache.Cache) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, c.GetStats())
	}
}
