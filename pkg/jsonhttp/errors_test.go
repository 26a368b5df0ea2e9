package jsonhttp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeFor(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name string
		ctx  context.Context
		err  error
		want int
	}{
		{name: "context canceled", ctx: context.Background(), err: fmt.Errorf("http request: %w", context.Canceled), want: CodeCancelled},
		{name: "cancelled context wins", ctx: cancelled, err: errors.New("read: connection reset"), want: CodeCancelled},
		{name: "deadline", ctx: context.Background(), err: context.DeadlineExceeded, want: CodeTimedOut},
		{
			name: "connection refused",
			ctx:  context.Background(),
			err: &net.OpError{Op: "dial", Net: "tcp",
				Err: os.NewSyscallError("connect", syscall.ECONNREFUSED)},
			want: CodeCannotConnectToHost,
		},
		{name: "dns", ctx: context.Background(), err: &net.DNSError{Err: "no such host", Name: "fanboy.invalid"}, want: CodeCannotFindHost},
		{name: "connection reset", ctx: context.Background(), err: syscall.ECONNRESET, want: CodeNetworkConnectionLost},
		{name: "unknown", ctx: context.Background(), err: errors.New("boom"), want: CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, codeFor(tt.ctx, tt.err))
		})
	}
}

func TestError(t *testing.T) {
	cause := errors.New("connection refused")
	err := error(NewError(CodeCannotConnectToHost, "GET", "http://localhost:8385/", cause))

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, CodeCannotConnectToHost, CodeOf(err))
	assert.Equal(t, CodeCannotConnectToHost, CodeOf(fmt.Errorf("wrapped: %w", err)))
	assert.Equal(t, CodeUnknown, CodeOf(cause))
	assert.Contains(t, err.Error(), "code -1004")
}
