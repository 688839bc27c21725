package terminal

import (
	"fmt"
	"strings"

	"demoqa_automation/application/scenario"

	"github.com/spf13/cobra"
)

// NewListCmd creates the list subcommand printing the scenario catalogue.
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the scenarios, optionally filtered by tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tags, _ := cmd.Flags().GetStringSlice("tag")

			suite := ""
			for _, sc := range scenario.Filter(scenario.Catalogue(), tags...) {
				if sc.Suite != suite {
					suite = sc.Suite
					fmt.Fprintln(cmd.OutOrStdout(), suite)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %s  [%s]\n", sc.Title(), strings.Join(sc.AllTags(), " "))
			}
			return nil
		},
	}
	cmd.Flags().StringSlice("tag", nil, "only scenarios carrying any of these tags (e.g. @webtables,@TC21)")
	return cmd
}
