package types

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/killallgit/fanboy/pkg/errors"
	"github.com/killallgit/fanboy/pkg/fanboy"
	"github.com/killallgit/fanboy/pkg/jsonhttp"
)

func TestSendUpstreamError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    apperrors.ErrorCode
		wantDetails bool
	}{
		{
			name:       "invalid term",
			err:        fanboy.ErrInvalidTerm,
			wantStatus: http.StatusBadRequest,
			wantCode:   apperrors.ErrCodeInvalidInput,
		},
		{
			name:        "unexpected result",
			err:         &fanboy.UnexpectedResultError{Result: "3.0.1"},
			wantStatus:  http.StatusBadGateway,
			wantCode:    apperrors.ErrCodeUnexpectedResult,
			wantDetails: true,
		},
		{
			name:       "cancelled",
			err:        fanboy.ErrCancelledByUser,
			wantStatus: apperrors.StatusClientClosedRequest,
			wantCode:   apperrors.ErrCodeCancelled,
		},
		{
			name:        "connection refused",
			err:         jsonhttp.NewError(jsonhttp.CodeCannotConnectToHost, "GET", "http://localhost:8384/", errors.New("connection refused")),
			wantStatus:  http.StatusBadGateway,
			wantCode:    apperrors.ErrCodeUpstream,
			wantDetails: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			SendUpstreamError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, StatusError, resp.Status)
			assert.Equal(t, string(tt.wantCode), resp.Error)
			assert.NotEmpty(t, resp.Message)
			if tt.wantDetails {
				assert.NotNil(t, resp.Details)
			} else {
				assert.Nil(t, resp.Details)
			}
		})
	}
}

func TestSendBadRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SendBadRequest(c, "Search query is required")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"status":"error","message":"Search query is required","error":"INVALID_INPUT"}`, w.Body.String())
}

func TestRequireService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	assert.False(t, RequireService(c, &Dependencies{}))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestDependencies_Defaults(t *testing.T) {
	var nilDeps *Dependencies
	assert.NotNil(t, nilDeps.Log())
	assert.Equal(t, DefaultUpstreamTimeout, nilDeps.Timeout())

	deps := &Dependencies{UpstreamTimeout: 2 * time.Second}
	assert.Equal(t, 2*time.Second, deps.Timeout())
}
