package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/fanboy/api/types"
)

// Get handles health check requests
// @Summary      Health check
// @Description  Gateway health and the outcome of the most recent upstream call
// @Tags         system
// @Produce      json
// @Success      200 {object} types.HealthResponse
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		upstream := getUpstreamStatus(deps)

		status := types.StatusOK
		message := "Gateway is healthy"
		if upstream.Seen && !isSuccess(upstream.Code) {
			status = types.StatusDegraded
			message = "Last upstream call failed"
		}

		c.JSON(http.StatusOK, types.HealthResponse{
			BaseResponse: types.BaseResponse{
				Status:  status,
				Message: message,
			},
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Upstream:  upstream,
		})
	}
}

// getUpstreamStatus returns the upstream host and its last known status
func getUpstreamStatus(deps *types.Dependencies) types.UpstreamStatus {
	if deps == nil || deps.Fanboy == nil {
		return types.UpstreamStatus{Host: "not configured"}
	}

	upstream := types.UpstreamStatus{Host: deps.Fanboy.Host()}
	if st, ok := deps.Fanboy.Status(); ok {
		upstream.Seen = true
		upstream.Code = st.Code
		upstream.LatencyMs = st.Latency.Milliseconds()
	}
	return upstream
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}
