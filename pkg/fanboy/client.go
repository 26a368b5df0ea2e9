// Package fanboy is a client for the fanboy podcast search service.
//
// Every operation returns a *Request right away and delivers its result
// exactly once, to the callback passed in and to Request.Wait. Search and
// Suggest validate their term first and fail synchronously with
// ErrInvalidTerm before any network activity.
package fanboy

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
)

// Podcast is a feed record as returned by the service. Its fields are owned
// by the service and passed through untouched.
type Podcast map[string]any

// Service is the interface implemented by Client.
type Service interface {
	Version(ctx context.Context, cb func(string, error)) *Request[string]
	Search(ctx context.Context, term string, cb func([]Podcast, error)) (*Request[[]Podcast], error)
	Lookup(ctx context.Context, guids []string, cb func([]Podcast, error)) *Request[[]Podcast]
	Suggest(ctx context.Context, term string, limit int, cb func([]string, error)) (*Request[[]string], error)
	Host() string
	Status() (Status, bool)
}

var _ Service = (*Client)(nil)

// Client talks to the service through an injected Transport. It keeps no
// state of its own and is safe for concurrent use.
type Client struct {
	transport Transport
	logger    *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a client on top of transport.
func New(transport Transport, opts ...Option) *Client {
	c := &Client{
		transport: transport,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Host returns the host name of the transport.
func (c *Client) Host() string {
	return c.transport.Host()
}

// Status returns the status of the transport's most recent call.
func (c *Client) Status() (Status, bool) {
	return c.transport.Status()
}

// Version fetches the version string of the service.
func (c *Client) Version(ctx context.Context, cb func(string, error)) *Request[string] {
	return get(ctx, c, "version", "/", decodeVersion, cb)
}

// Search looks up podcasts matching term.
func (c *Client) Search(ctx context.Context, term string, cb func([]Podcast, error)) (*Request[[]Podcast], error) {
	t, err := EncodeTerm(term)
	if err != nil {
		return nil, err
	}
	return get(ctx, c, "search", "/search/"+t, decodePodcasts, cb), nil
}

// Lookup fetches the podcasts identified by guids, in a single request.
func (c *Client) Lookup(ctx context.Context, guids []string, cb func([]Podcast, error)) *Request[[]Podcast] {
	escaped := make([]string, len(guids))
	for i, guid := range guids {
		escaped[i] = url.PathEscape(guid)
	}
	return get(ctx, c, "lookup", "/lookup/"+strings.Join(escaped, ","), decodePodcasts, cb)
}

// Suggest fetches search terms starting with term. A limit of zero or less
// leaves the number of suggestions to the service.
func (c *Client) Suggest(ctx context.Context, term string, limit int, cb func([]string, error)) (*Request[[]string], error) {
	t, err := EncodeTerm(term)
	if err != nil {
		return nil, err
	}
	path := "/suggest/" + t
	if limit > 0 {
		path += "?max=" + strconv.Itoa(limit)
	}
	return get(ctx, c, "suggest", path, decodeSuggestions, cb), nil
}

// get issues path through the transport and adapts the completion to a
// typed delivery on the returned request.
func get[T any](ctx context.Context, c *Client, op, path string, decode func(any) (T, bool), cb func(T, error)) *Request[T] {
	ctx, cancel := context.WithCancel(ctx)
	req := newRequest(cancel, cb)

	logger := c.logger.With("op", op, "request_id", req.ID())
	logger.Debug("dispatching request", "path", path)

	c.transport.Get(ctx, path, func(v any, meta *Meta, err error) {
		if err != nil {
			err = classify(err)
			logger.Debug("request failed", "error", err)
			var zero T
			req.deliver(zero, err)
			return
		}

		result, ok := decode(v)
		if !ok {
			logger.Warn("unexpected result", "type", typeName(v))
			var zero T
			req.deliver(zero, &UnexpectedResultError{Result: v})
			return
		}

		if meta != nil {
			logger.Debug("request completed", "status", meta.StatusCode, "latency", meta.Latency)
		}
		req.deliver(result, nil)
	})

	return req
}
