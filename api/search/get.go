package search

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/fanboy/api/types"
)

// Get handles podcast search requests
// @Summary      Search for podcasts
// @Description  Search the fanboy service for podcasts matching a term
// @Tags         search
// @Produce      json
// @Param        q   query     string  true  "Search term"
// @Success      200 {object} types.PodcastsResponse "Podcast search results"
// @Failure      400 {object} types.ErrorResponse "Bad request - blank term"
// @Failure      502 {object} types.ErrorResponse "Upstream failure or unexpected result"
// @Failure      504 {object} types.ErrorResponse "Gateway timeout - search request timed out"
// @Router       /api/v1/search [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("q")
		if strings.TrimSpace(query) == "" {
			types.SendBadRequest(c, "Search query is required")
			return
		}

		if !types.RequireService(c, deps) {
			return
		}

		ctx, cancel := types.UpstreamContext(c, deps)
		defer cancel()

		req, err := deps.Fanboy.Search(ctx, query, nil)
		if err != nil {
			types.SendUpstreamError(c, err)
			return
		}

		podcasts, err := req.Wait()
		if err != nil {
			deps.Log().Warn("search failed", "query", query, "request_id", req.ID(), "error", err)
			types.SendUpstreamError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.PodcastsResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Search results retrieved successfully",
			},
			Podcasts: podcasts,
			Query:    query,
			Count:    len(podcasts),
		})
	}
}
