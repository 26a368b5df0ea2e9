package version

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/fanboy/api/types"
)

// RegisterRoutes registers the gateway info route
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies) {
	engine.GET("/", Get(deps))
}

// RegisterUpstreamRoutes registers GET /version on an /api/v1 group
func RegisterUpstreamRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/version", GetUpstream(deps))
}
