package fanboytest

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/killallgit/fanboy/pkg/fanboy"
	"github.com/killallgit/fanboy/pkg/jsonhttp"
)

// Response is what the scripted transport returns for a path.
type Response struct {
	Value any
	Err   error
	// Delay holds the completion back, giving callers time to cancel.
	Delay time.Duration
}

// Transport is an in-memory fanboy.Transport returning scripted responses.
// Paths without a script fail with a 404 transport error.
type Transport struct {
	HostName string

	mu        sync.Mutex
	responses map[string]Response
	fallback  *Response
	calls     []string
	status    fanboy.Status
	hasStatus bool
}

var _ fanboy.Transport = (*Transport)(nil)

// NewTransport returns an empty scripted transport.
func NewTransport() *Transport {
	return &Transport{
		HostName:  "fanboy.test",
		responses: make(map[string]Response),
	}
}

// On scripts the response for path.
func (t *Transport) On(path string, r Response) *Transport {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.responses[path] = r
	return t
}

// OnAny scripts the response for every path without its own script.
func (t *Transport) OnAny(r Response) *Transport {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.fallback = &r
	return t
}

// Calls returns the paths requested so far.
func (t *Transport) Calls() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.calls...)
}

// Host returns HostName.
func (t *Transport) Host() string {
	return t.HostName
}

// Status returns the outcome of the last completed call.
func (t *Transport) Status() (fanboy.Status, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status, t.hasStatus
}

// Get completes asynchronously with the scripted response for path.
func (t *Transport) Get(ctx context.Context, path string, done fanboy.Completion) {
	t.mu.Lock()
	t.calls = append(t.calls, path)
	r, ok := t.responses[path]
	if !ok {
		if t.fallback != nil {
			r = *t.fallback
		} else {
			r = Response{Err: jsonhttp.NewError(http.StatusNotFound, http.MethodGet, path, errors.New("no script for path"))}
		}
	}
	t.mu.Unlock()

	go func() {
		timer := time.NewTimer(r.Delay)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			code := jsonhttp.CodeCancelled
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				code = jsonhttp.CodeTimedOut
			}
			t.complete(nil, jsonhttp.NewError(code, http.MethodGet, path, ctx.Err()), done)
			return
		}
		t.complete(r.Value, r.Err, done)
	}()
}

func (t *Transport) complete(v any, err error, done fanboy.Completion) {
	code := http.StatusOK
	if err != nil {
		code = jsonhttp.CodeOf(err)
	}

	t.mu.Lock()
	t.status = fanboy.Status{Code: code}
	t.hasStatus = true
	t.mu.Unlock()

	if err != nil {
		done(nil, nil, err)
		return
	}
	done(v, &fanboy.Meta{StatusCode: code}, nil)
}
