package lookup

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/fanboy/api/types"
)

// MaxIDs caps the number of guids accepted in one lookup
const MaxIDs = 100

// Get handles podcast lookup requests
// @Summary      Look up podcasts
// @Description  Fetch podcasts by guid in a single upstream request
// @Tags         lookup
// @Produce      json
// @Param        ids  query     string  false  "Comma separated guids"
// @Param        id   query     []string  false  "Guid, may be repeated"  collectionFormat(multi)
// @Success      200 {object} types.PodcastsResponse "Podcasts found"
// @Failure      400 {object} types.ErrorResponse "Bad request - no guids"
// @Failure      502 {object} types.ErrorResponse "Upstream failure or unexpected result"
// @Failure      504 {object} types.ErrorResponse "Gateway timeout"
// @Router       /api/v1/lookup [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		ids := parseIDs(c.QueryArray("ids"), c.QueryArray("id"))
		if len(ids) == 0 {
			types.SendBadRequest(c, "At least one id is required")
			return
		}
		if len(ids) > MaxIDs {
			types.SendBadRequest(c, "Too many ids")
			return
		}

		if !types.RequireService(c, deps) {
			return
		}

		ctx, cancel := types.UpstreamContext(c, deps)
		defer cancel()

		req := deps.Fanboy.Lookup(ctx, ids, nil)
		podcasts, err := req.Wait()
		if err != nil {
			deps.Log().Warn("lookup failed", "ids", ids, "request_id", req.ID(), "error", err)
			types.SendUpstreamError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.PodcastsResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Podcasts retrieved successfully",
			},
			Podcasts: podcasts,
			IDs:      ids,
			Count:    len(podcasts),
		})
	}
}

// parseIDs flattens comma separated and repeated id parameters, dropping blanks
func parseIDs(lists ...[]string) []string {
	var ids []string
	for _, list := range lists {
		for _, raw := range list {
			for _, id := range strings.Split(raw, ",") {
				if id = strings.TrimSpace(id); id != "" {
					ids = append(ids, id)
				}
			}
		}
	}
	return ids
}
