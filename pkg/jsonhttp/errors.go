package jsonhttp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"syscall"

	"github.com/killallgit/fanboy/pkg/fanboy"
)

// Transport error codes. Failures below the HTTP layer use these negative
// codes; an HTTP error response uses its status code instead.
const (
	CodeUnknown                 = -1
	CodeCancelled               = fanboy.CodeCancelled
	CodeBadURL                  = -1000
	CodeTimedOut                = -1001
	CodeCannotFindHost          = -1003
	CodeCannotConnectToHost     = -1004
	CodeNetworkConnectionLost   = -1005
	CodeBadServerResponse       = -1011
	CodeCannotDecodeContentData = -1016
)

var (
	// ErrRateLimited indicates the service answered 429 Too Many Requests
	ErrRateLimited = errors.New("fanboy service rate limit exceeded")

	// ErrUnexpectedStatus indicates a non-2xx HTTP response
	ErrUnexpectedStatus = errors.New("unexpected status")
)

// Error is a failed transport call.
type Error struct {
	code int
	Op   string
	URL  string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v (code %d)", e.Op, e.URL, e.Err, e.code)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Code returns the transport error code.
func (e *Error) Code() int {
	return e.code
}

// NewError returns an Error with the given code.
func NewError(code int, op, url string, err error) *Error {
	return &Error{code: code, Op: op, URL: url, Err: err}
}

// CodeOf returns the transport code of err, or CodeUnknown.
func CodeOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return CodeUnknown
}

// codeFor picks the code for a failure of a request made with ctx. The
// context is checked first: a cancelled request often surfaces as some
// unrelated network error.
func codeFor(ctx context.Context, err error) int {
	if ctxErr := ctx.Err(); ctxErr != nil {
		err = ctxErr
	}

	var dnsErr *net.DNSError
	var netErr net.Error

	switch {
	case errors.Is(err, context.Canceled):
		return CodeCancelled
	case errors.Is(err, context.DeadlineExceeded):
		return CodeTimedOut
	case errors.Is(err, syscall.ECONNREFUSED):
		return CodeCannotConnectToHost
	case errors.As(err, &dnsErr):
		return CodeCannotFindHost
	case errors.As(err, &netErr) && netErr.Timeout():
		return CodeTimedOut
	case errors.Is(err, syscall.ECONNRESET), errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, io.EOF):
		return CodeNetworkConnectionLost
	default:
		return CodeUnknown
	}
}
