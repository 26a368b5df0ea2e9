package types

import (
	"log/slog"
	"time"

	"github.com/killallgit/fanboy/pkg/fanboy"
)

// DefaultUpstreamTimeout bounds a single upstream call made by a handler.
const DefaultUpstreamTimeout = 30 * time.Second

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	Fanboy          fanboy.Service
	Logger          *slog.Logger
	BuildVersion    string
	UpstreamTimeout time.Duration
}

// Log returns the handler logger, falling back to slog.Default.
func (d *Dependencies) Log() *slog.Logger {
	if d == nil || d.Logger == nil {
		return slog.Default()
	}
	return d.Logger
}

// Timeout returns the upstream timeout, falling back to DefaultUpstreamTimeout.
func (d *Dependencies) Timeout() time.Duration {
	if d == nil || d.UpstreamTimeout <= 0 {
		return DefaultUpstreamTimeout
	}
	return d.UpstreamTimeout
}
