package suggest

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/fanboy/api/types"
)

// RegisterRoutes registers suggest routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", Get(deps))
}
