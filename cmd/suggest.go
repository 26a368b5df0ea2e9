package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newSuggestCmd() *cobra.Command {
	suggestCmd := &cobra.Command{
		Use:   "suggest TERM...",
		Short: "Suggest search terms",
		Long: `List search terms previously used on the fanboy service that start
with the given prefix.`,
		Example: `  fanboy suggest f --limit 5`,
		Args:    cobra.MinimumNArgs(1),
		RunE:    runSuggest,
	}
	suggestCmd.Flags().IntP("limit", "n", 0, "maximum number of suggestions (0 lets the service decide)")
	addJSONFlag(suggestCmd)
	return suggestCmd
}

func runSuggest(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	if limit < 0 {
		return fmt.Errorf("invalid limit: %d", limit)
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	req, err := client.Suggest(cmd.Context(), strings.Join(args, " "), limit, nil)
	if err != nil {
		return err
	}

	terms, err := await(cmd, req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return writeJSON(out, terms)
	}
	for _, term := range terms {
		fmt.Fprintln(out, term)
	}
	return nil
}
