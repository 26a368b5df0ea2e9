package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/fanboy/api/types"
)

// Get handles gateway info requests
// @Summary      Gateway information
// @Description  Name and build version of the gateway
// @Tags         system
// @Produce      json
// @Success      200 {object} types.GatewayInfoResponse
// @Router       / [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		version := "dev"
		if deps != nil && deps.BuildVersion != "" {
			version = deps.BuildVersion
		}

		c.JSON(http.StatusOK, types.GatewayInfoResponse{
			Name:        "Fanboy Gateway",
			Version:     version,
			Description: "REST gateway for the fanboy podcast search service",
			Status:      "running",
		})
	}
}

// GetUpstream handles upstream version requests
// @Summary      Upstream version
// @Description  Version string reported by the fanboy service
// @Tags         system
// @Produce      json
// @Success      200 {object} types.VersionResponse
// @Failure      502 {object} types.ErrorResponse "Upstream failure or unexpected result"
// @Failure      504 {object} types.ErrorResponse "Upstream timed out"
// @Router       /api/v1/version [get]
func GetUpstream(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !types.RequireService(c, deps) {
			return
		}

		ctx, cancel := types.UpstreamContext(c, deps)
		defer cancel()

		v, err := deps.Fanboy.Version(ctx, nil).Wait()
		if err != nil {
			deps.Log().Warn("upstream version failed", "error", err)
			types.SendUpstreamError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.VersionResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Upstream version retrieved successfully",
			},
			Host:    deps.Fanboy.Host(),
			Version: v,
		})
	}
}
