package cmd

import (
	"context"
	"encoding/json"
	"net"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/fanboy/internal/fanboytest"
	"github.com/killallgit/fanboy/pkg/config"
)

func TestUpstreamCommand(t *testing.T) {
	srv := fanboytest.NewServer()
	defer srv.Close()

	stdout, _, err := run(t, "upstream", "--base-url", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Host:      127.0.0.1")
	assert.Contains(t, stdout, "Status:    200")
	assert.Contains(t, stdout, "Version:   "+fanboytest.Version)
}

func TestUpstreamCommand_ConnectionRefused(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	stdout, _, err := run(t, "upstream", "--base-url", "http://"+addr)
	require.Error(t, err)
	assert.Contains(t, stdout, "Status:    -1004")
}

func TestSearchCommand(t *testing.T) {
	srv := fanboytest.NewServer()
	defer srv.Close()

	stdout, _, err := run(t, "search", "--base-url", srv.URL, "fireball")
	require.NoError(t, err)
	assert.Contains(t, stdout, "GUID")
	assert.Contains(t, stdout, "974240842")
	assert.Contains(t, stdout, "Fireball Media")
	assert.Equal(t, []string{"/search/fireball"}, srv.Requests())
}

func TestSearchCommand_JoinsArgs(t *testing.T) {
	srv := fanboytest.NewServer()
	defer srv.Close()

	stdout, _, err := run(t, "search", "--base-url", srv.URL, "--json", "fresh", "air")
	require.NoError(t, err)

	var podcasts []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &podcasts))
	require.Len(t, podcasts, 1)
	assert.Equal(t, "Fresh Air", podcasts[0]["title"])
	assert.Equal(t, []string{"/search/fresh%20air"}, srv.Requests())
}

func TestSearchCommand_BlankTerm(t *testing.T) {
	srv := fanboytest.NewServer()
	defer srv.Close()

	_, _, err := run(t, "search", "--base-url", srv.URL, "   ")
	require.Error(t, err)
	assert.Empty(t, srv.Requests())
}

func TestSearchCommand_NoResults(t *testing.T) {
	srv := fanboytest.NewServer()
	defer srv.Close()

	stdout, _, err := run(t, "search", "--base-url", srv.URL, "zzz")
	require.NoError(t, err)
	assert.Equal(t, "no podcasts found\n", stdout)
}

func TestLookupCommand(t *testing.T) {
	srv := fanboytest.NewServer()
	defer srv.Close()

	stdout, _, err := run(t, "lookup", "--base-url", srv.URL, "--json", "528458508", "974240842")
	require.NoError(t, err)

	var podcasts []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &podcasts))
	require.Len(t, podcasts, 2)
	for _, p := range podcasts {
		for _, f := range fanboytest.RecordFields {
			assert.Contains(t, p, f)
		}
	}
	assert.Equal(t, []string{"/lookup/528458508,974240842"}, srv.Requests())
}

func TestSuggestCommand(t *testing.T) {
	srv := fanboytest.NewServer()
	defer srv.Close()

	_, _, err := run(t, "search", "--base-url", srv.URL, "fireball")
	require.NoError(t, err)

	stdout, _, err := run(t, "suggest", "--base-url", srv.URL, "--limit", "5", "f")
	require.NoError(t, err)
	assert.Equal(t, "fireball\n", stdout)

	requests := srv.Requests()
	assert.Equal(t, "/suggest/f?max=5", requests[len(requests)-1])
}

func TestSuggestCommand_NegativeLimit(t *testing.T) {
	_, _, err := run(t, "suggest", "--limit", "-1", "f")
	assert.Error(t, err)
}

func TestSearchCommand_UpstreamTimeout(t *testing.T) {
	srv := fanboytest.NewServer()
	defer srv.Close()
	srv.SetDelay(2 * time.Second)
	t.Cleanup(func() { config.Set("fanboy.timeout", 10*time.Second) })

	_, _, err := run(t, "search", "--base-url", srv.URL, "--timeout", "100ms", "fireball")
	require.Error(t, err)
}

type fakeHandle struct {
	once      sync.Once
	done      chan struct{}
	cancelled bool
}

func (h *fakeHandle) Cancel() {
	h.once.Do(func() {
		h.cancelled = true
		close(h.done)
	})
}

func (h *fakeHandle) Done() <-chan struct{} { return h.done }

func TestCancelOnInterrupt(t *testing.T) {
	t.Run("context ends first", func(t *testing.T) {
		h := &fakeHandle{done: make(chan struct{})}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		cancelOnInterrupt(ctx, h)
		assert.True(t, h.cancelled)
	})

	t.Run("request finishes first", func(t *testing.T) {
		h := &fakeHandle{done: make(chan struct{})}
		close(h.done)

		cancelOnInterrupt(context.Background(), h)
		assert.False(t, h.cancelled)
	})
}

func TestServeCommand(t *testing.T) {
	srv := fanboytest.NewServer()
	defer srv.Close()

	cmd := NewRootCmd()
	var out strings.Builder
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"serve", "--base-url", srv.URL, "--host", "127.0.0.1", "--port", "0"})

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	require.NoError(t, cmd.ExecuteContext(ctx))
	assert.Contains(t, out.String(), "Fanboy gateway listening on 127.0.0.1:")
	assert.Contains(t, out.String(), "Gateway stopped")
}

func TestServeCommand_PortInUse(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	port := l.Addr().(*net.TCPAddr).Port

	_, _, err = run(t, "serve", "--host", "127.0.0.1", "--port", strconv.Itoa(port))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}
