package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUpstreamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upstream",
		Short: "Show the fanboy service version",
		Long:  `Query the configured fanboy service for its version and report how the call went.`,
		Args:  cobra.NoArgs,
		RunE:  runUpstream,
	}
}

func runUpstream(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	v, err := await(cmd, client.Version(cmd.Context(), nil))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Host:      %s\n", client.Host())
	if st, ok := client.Status(); ok {
		fmt.Fprintf(out, "Status:    %d (%s)\n", st.Code, st.Latency)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Version:   %s\n", v)
	return nil
}
