package suggest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/fanboy/api/types"
	"github.com/killallgit/fanboy/internal/fanboytest"
	"github.com/killallgit/fanboy/pkg/fanboy"
)

func TestGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name                string
		target              string
		expectedStatus      int
		expectedPath        string
		expectedSuggestions []string
	}{
		{
			name:                "default max",
			target:              "/api/v1/suggest?q=f",
			expectedStatus:      http.StatusOK,
			expectedPath:        "/suggest/f?max=10",
			expectedSuggestions: []string{"fireball", "fresh air"},
		},
		{
			name:                "explicit max",
			target:              "/api/v1/suggest?q=f&max=1",
			expectedStatus:      http.StatusOK,
			expectedPath:        "/suggest/f?max=1",
			expectedSuggestions: []string{"fireball"},
		},
		{
			name:           "max out of range",
			target:         "/api/v1/suggest?q=f&max=0",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "max not a number",
			target:         "/api/v1/suggest?q=f&max=lots",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing query",
			target:         "/api/v1/suggest?max=5",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := fanboytest.NewTransport().
				On("/suggest/f?max=10", fanboytest.Response{Value: []any{"fireball", "fresh air"}}).
				On("/suggest/f?max=1", fanboytest.Response{Value: []any{"fireball"}})

			w := httptest.NewRecorder()
			_, router := gin.CreateTestContext(w)
			RegisterRoutes(router.Group("/api/v1/suggest"), &types.Dependencies{Fanboy: fanboy.New(transport)})

			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response types.SuggestionsResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

			if tt.expectedPath == "" {
				assert.Empty(t, transport.Calls())
				return
			}
			assert.Equal(t, []string{tt.expectedPath}, transport.Calls())
			assert.Equal(t, tt.expectedSuggestions, response.Suggestions)
			assert.Equal(t, len(tt.expectedSuggestions), response.Count)
		})
	}
}
