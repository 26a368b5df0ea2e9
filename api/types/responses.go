package types

import "github.com/killallgit/fanboy/pkg/fanboy"

// Status constants for API responses
const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"
	StatusError    = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`  // One of the Status constants above
	Message string `json:"message"` // Human-readable message
}

// GatewayInfoResponse describes the gateway itself
type GatewayInfoResponse struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// UpstreamStatus reports the upstream host and its most recent call
type UpstreamStatus struct {
	Host      string `json:"host"`
	Seen      bool   `json:"seen"`           // False until the first upstream call completes
	Code      int    `json:"code,omitempty"` // HTTP status or transport error code
	LatencyMs int64  `json:"latencyMs,omitempty"`
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	BaseResponse
	Timestamp string         `json:"timestamp"`
	Upstream  UpstreamStatus `json:"upstream"`
}

// VersionResponse for the upstream version endpoint
type VersionResponse struct {
	BaseResponse
	Host    string `json:"host"`
	Version string `json:"version"`
}

// PodcastsResponse for search and lookup results
type PodcastsResponse struct {
	BaseResponse
	Podcasts []fanboy.Podcast `json:"podcasts"`
	Query    string           `json:"query,omitempty"`
	IDs      []string         `json:"ids,omitempty"`
	Count    int              `json:"count"` // Number of results in this response
}

// SuggestionsResponse for the suggest endpoint
type SuggestionsResponse struct {
	BaseResponse
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
	Count       int      `json:"count"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`   // Error code/type
	Details any    `json:"details,omitempty"` // Additional error details
}
