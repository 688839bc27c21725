package terminal

import (
	"encoding/json"
	"fmt"

	"demoqa_automation/application/steps"

	"github.com/spf13/cobra"
)

// NewLabelCmd creates the label subcommand rendering a step label offline.
// Each argument is parsed as JSON; anything that is not JSON is taken as a string.
func NewLabelCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "label <pattern> [json-args...]",
		Short:   "Render a step label pattern with arguments",
		Example: `  demoqa label 'User searches for {0}' '"a@test.com"'`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]any, 0, len(args)-1)
			for _, raw := range args[1:] {
				values = append(values, parseArg(raw))
			}
			fmt.Fprintln(cmd.OutOrStdout(), steps.Render(args[0], values...))
			return nil
		},
	}
}

func parseArg(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}
