package fanboy

import (
	"context"
	"net/http"
	"time"
)

// Meta describes the HTTP response behind a completed transport call.
type Meta struct {
	StatusCode int
	Header     http.Header
	Latency    time.Duration
}

// Status is the outcome of the most recent transport call. Code holds the
// HTTP status code, or the transport error code when the call failed.
type Status struct {
	Code    int
	Latency time.Duration
}

// Completion receives the decoded JSON value, response metadata and error
// of a single transport call.
type Completion func(v any, meta *Meta, err error)

// Transport performs GET requests against the service and decodes JSON
// responses into generic values (maps, slices, strings, numbers).
//
// Get must return without blocking on the network and must call done
// exactly once, also when ctx is cancelled. Errors caused by cancellation
// should carry CodeCancelled or wrap context.Canceled.
type Transport interface {
	Get(ctx context.Context, path string, done Completion)
	Host() string
	Status() (Status, bool)
}
