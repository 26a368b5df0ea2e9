package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	searchCmd := &cobra.Command{
		Use:   "search TERM...",
		Short: "Search for podcasts",
		Long: `Search the fanboy service for podcasts matching a term.

Multiple arguments are joined with spaces into a single term.`,
		Example: `  fanboy search fireball
  fanboy search "the talk show" --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSearch,
	}
	addJSONFlag(searchCmd)
	return searchCmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	req, err := client.Search(cmd.Context(), strings.Join(args, " "), nil)
	if err != nil {
		return err
	}

	podcasts, err := await(cmd, req)
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return writeJSON(cmd.OutOrStdout(), podcasts)
	}
	return writePodcasts(cmd.OutOrStdout(), podcasts)
}
