package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/killallgit/fanboy/pkg/config"
	"github.com/killallgit/fanboy/pkg/fanboy"
	"github.com/killallgit/fanboy/pkg/jsonhttp"
	"github.com/spf13/cobra"
)

// newClient builds a fanboy client from the loaded configuration
func newClient() (*fanboy.Client, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, err
	}

	transport, err := jsonhttp.New(jsonhttp.Config{
		BaseURL:           cfg.Fanboy.BaseURL,
		Timeout:           cfg.Fanboy.Timeout,
		RequestsPerMinute: cfg.Fanboy.RequestsPerMinute,
		BurstSize:         cfg.Fanboy.BurstSize,
		UserAgent:         cfg.Fanboy.UserAgent,
		Logger:            logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create transport: %w", err)
	}

	return fanboy.New(transport, fanboy.WithLogger(logger)), nil
}

// handle is the part of a fanboy.Request the commands need
type handle interface {
	Cancel()
	Done() <-chan struct{}
}

// cancelOnInterrupt cancels req when the process receives SIGINT or SIGTERM
// or ctx ends, whichever comes first. It returns once req is done.
func cancelOnInterrupt(ctx context.Context, req handle) {
	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-sigCtx.Done():
		req.Cancel()
		<-req.Done()
	case <-req.Done():
	}
}

// await waits for req, cancelling it on interrupt
func await[T any](cmd *cobra.Command, req *fanboy.Request[T]) (T, error) {
	cancelOnInterrupt(cmd.Context(), req)
	v, err := req.Wait()
	if errors.Is(err, fanboy.ErrCancelledByUser) {
		fmt.Fprintln(cmd.ErrOrStderr(), "request cancelled")
	}
	return v, err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writePodcasts(w io.Writer, podcasts []fanboy.Podcast) error {
	if len(podcasts) == 0 {
		_, err := fmt.Fprintln(w, "no podcasts found")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "GUID\tTITLE\tAUTHOR")
	for _, p := range podcasts {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", field(p, "guid"), field(p, "title"), field(p, "author"))
	}
	return tw.Flush()
}

func field(p fanboy.Podcast, key string) string {
	switch v := p[key].(type) {
	case nil:
		return "-"
	case string:
		return strings.TrimSpace(v)
	default:
		return fmt.Sprint(v)
	}
}

func addJSONFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "print results as JSON")
}
