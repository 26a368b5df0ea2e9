package suggest

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/fanboy/api/types"
)

// Limits for the max parameter
const (
	DefaultMax = 10
	MaxMax     = 100
)

// Get handles search term suggestion requests
// @Summary      Suggest search terms
// @Description  Search terms previously used on the fanboy service starting with a prefix
// @Tags         suggest
// @Produce      json
// @Param        q    query     string  true   "Prefix"
// @Param        max  query     int     false  "Maximum number of suggestions (1-100)"  default(10)
// @Success      200 {object} types.SuggestionsResponse "Suggested terms"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid parameters"
// @Failure      502 {object} types.ErrorResponse "Upstream failure or unexpected result"
// @Failure      504 {object} types.ErrorResponse "Gateway timeout"
// @Router       /api/v1/suggest [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("q")
		if strings.TrimSpace(query) == "" {
			types.SendBadRequest(c, "Suggest query is required")
			return
		}

		limit := DefaultMax
		if raw := c.Query("max"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 || n > MaxMax {
				types.SendBadRequest(c, "max must be between 1 and 100")
				return
			}
			limit = n
		}

		if !types.RequireService(c, deps) {
			return
		}

		ctx, cancel := types.UpstreamContext(c, deps)
		defer cancel()

		req, err := deps.Fanboy.Suggest(ctx, query, limit, nil)
		if err != nil {
			types.SendUpstreamError(c, err)
			return
		}

		terms, err := req.Wait()
		if err != nil {
			deps.Log().Warn("suggest failed", "query", query, "request_id", req.ID(), "error", err)
			types.SendUpstreamError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.SuggestionsResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Suggestions retrieved successfully",
			},
			Query:       query,
			Suggestions: terms,
			Count:       len(terms),
		})
	}
}
