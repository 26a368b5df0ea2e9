package types

import (
	"context"

	"github.com/gin-gonic/gin"

	apperrors "github.com/killallgit/fanboy/pkg/errors"
)

// Handler utility functions to reduce duplication across handlers

// UpstreamContext derives the context for an upstream call from the request
func UpstreamContext(c *gin.Context, deps *Dependencies) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), deps.Timeout())
}

// RequireService sends a 503 and returns false when no upstream client is configured
func RequireService(c *gin.Context, deps *Dependencies) bool {
	if deps == nil || deps.Fanboy == nil {
		SendError(c, apperrors.ServiceDown("fanboy service"))
		return false
	}
	return true
}

// SendBadRequest sends a standardized bad request response
func SendBadRequest(c *gin.Context, message string) {
	SendError(c, apperrors.New(apperrors.ErrCodeInvalidInput, message))
}

// SendUpstreamError maps an error delivered by the fanboy client to a response
func SendUpstreamError(c *gin.Context, err error) {
	SendError(c, apperrors.FromUpstream(err))
}

// SendError writes an AppError as an ErrorResponse
func SendError(c *gin.Context, err *apperrors.AppError) {
	resp := ErrorResponse{
		Status:  StatusError,
		Message: err.Message,
		Error:   string(err.Code),
	}
	if len(err.Details) > 0 {
		resp.Details = err.Details
	}
	c.JSON(err.GetHTTPCode(), resp)
}
