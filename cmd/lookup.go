package cmd

import (
	"github.com/spf13/cobra"
)

func newLookupCmd() *cobra.Command {
	lookupCmd := &cobra.Command{
		Use:     "lookup GUID...",
		Short:   "Look up podcasts by guid",
		Long:    `Fetch the podcasts identified by one or more guids in a single request.`,
		Example: `  fanboy lookup 528458508 974240842`,
		Args:    cobra.MinimumNArgs(1),
		RunE:    runLookup,
	}
	addJSONFlag(lookupCmd)
	return lookupCmd
}

func runLookup(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	podcasts, err := await(cmd, client.Lookup(cmd.Context(), args, nil))
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return writeJSON(cmd.OutOrStdout(), podcasts)
	}
	return writePodcasts(cmd.OutOrStdout(), podcasts)
}
