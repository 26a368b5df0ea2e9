// Package jsonhttp is the HTTP transport used by the fanboy client. It
// issues paced GET requests and decodes JSON responses into generic values.
package jsonhttp

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/killallgit/fanboy/internal/metrics"
	"github.com/killallgit/fanboy/pkg/fanboy"
)

// DefaultUserAgent is sent when Config.UserAgent is empty.
const DefaultUserAgent = "fanboy-go/1.0 (+https://github.com/killallgit/fanboy)"

// Config holds configuration for the transport
type Config struct {
	// BaseURL of the service, e.g. http://localhost:8383
	BaseURL string

	// HTTP configuration
	Timeout    time.Duration // Default: 10s
	HTTPClient *http.Client  // Optional, Timeout is ignored when set

	// Rate limiting
	RequestsPerMinute int // Default: 600
	BurstSize         int // Default: 10

	UserAgent string

	// Dispatch runs completions. Default: inline on the request goroutine.
	Dispatch func(func())

	Logger *slog.Logger
}

// Transport implements fanboy.Transport over net/http.
type Transport struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	baseURL     *url.URL
	userAgent   string
	dispatch    func(func())
	logger      *slog.Logger

	mu        sync.RWMutex
	status    fanboy.Status
	hasStatus bool
}

var _ fanboy.Transport = (*Transport)(nil)

// New creates a transport for the service at cfg.BaseURL.
func New(cfg Config) (*Transport, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", cfg.BaseURL)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("base url %q: missing host", cfg.BaseURL)
	}

	// Apply defaults
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.RequestsPerMinute == 0 {
		cfg.RequestsPerMinute = 600
	}
	if cfg.BurstSize == 0 {
		cfg.BurstSize = 10
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Dispatch == nil {
		cfg.Dispatch = func(f func()) { f() }
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	limiter := rate.NewLimiter(
		rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)),
		cfg.BurstSize,
	)

	return &Transport{
		httpClient:  httpClient,
		rateLimiter: limiter,
		baseURL:     base,
		userAgent:   cfg.UserAgent,
		dispatch:    cfg.Dispatch,
		logger:      cfg.Logger.With("component", "jsonhttp", "host", base.Hostname()),
	}, nil
}

// Host returns the host name of the service.
func (t *Transport) Host() string {
	return t.baseURL.Hostname()
}

// Status returns the code and latency of the last completed request. ok is
// false until a request has completed.
func (t *Transport) Status() (fanboy.Status, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.status, t.hasStatus
}

// Get fetches path in the background and passes the decoded body to done.
func (t *Transport) Get(ctx context.Context, path string, done fanboy.Completion) {
	go func() {
		v, meta, err := t.do(ctx, path)
		t.dispatch(func() {
			done(v, meta, err)
		})
	}()
}

// do performs a single request
func (t *Transport) do(ctx context.Context, path string) (any, *fanboy.Meta, error) {
	target := strings.TrimRight(t.baseURL.String(), "/") + path

	// Wait for rate limiter
	if t.rateLimiter.Tokens() < 1 {
		metrics.UpstreamRateLimitWaits.WithLabelValues(t.Host()).Inc()
	}
	if err := t.rateLimiter.Wait(ctx); err != nil {
		return nil, nil, t.fail(ctx, target, 0, fmt.Errorf("rate limiter wait: %w", err))
	}

	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, nil, t.failWithCode(CodeBadURL, target, time.Since(start), fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("User-Agent", t.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "gzip")

	t.logger.Debug("sending request", "url", target)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, nil, t.fail(ctx, target, time.Since(start), fmt.Errorf("http request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, nil, t.failWithCode(resp.StatusCode, target, time.Since(start), ErrRateLimited)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, nil, t.failWithCode(resp.StatusCode, target, time.Since(start),
			fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode))
	}

	// Handle gzip encoding
	var reader io.Reader = resp.Body
	if strings.Contains(resp.Header.Get("Content-Encoding"), "gzip") {
		gzReader, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, nil, t.failWithCode(CodeCannotDecodeContentData, target, time.Since(start),
				fmt.Errorf("create gzip reader: %w", err))
		}
		defer gzReader.Close()
		reader = gzReader
	}

	var v any
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()
	if err := decoder.Decode(&v); err != nil && !errors.Is(err, io.EOF) {
		if ctx.Err() != nil {
			return nil, nil, t.fail(ctx, target, time.Since(start), fmt.Errorf("read response: %w", err))
		}
		return nil, nil, t.failWithCode(CodeCannotDecodeContentData, target, time.Since(start),
			fmt.Errorf("decode response: %w", err))
	}

	latency := time.Since(start)
	t.record(resp.StatusCode, latency)

	return v, &fanboy.Meta{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Latency:    latency,
	}, nil
}

// fail derives the error code from ctx and err.
func (t *Transport) fail(ctx context.Context, target string, latency time.Duration, err error) error {
	return t.failWithCode(codeFor(ctx, err), target, latency, err)
}

func (t *Transport) failWithCode(code int, target string, latency time.Duration, err error) error {
	t.record(code, latency)
	t.logger.Debug("request failed", "url", target, "code", code, "error", err)
	return NewError(code, http.MethodGet, target, err)
}

func (t *Transport) record(code int, latency time.Duration) {
	t.mu.Lock()
	t.status = fanboy.Status{Code: code, Latency: latency}
	t.hasStatus = true
	t.mu.Unlock()

	metrics.RecordUpstream(t.Host(), code, latency)
}
