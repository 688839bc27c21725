package terminal

import (
	"fmt"

	"demoqa_automation/infrastructure/browser"
	"demoqa_automation/infrastructure/config"

	"github.com/spf13/cobra"
)

// NewInstallCmd creates the install subcommand downloading the Playwright driver and browser.
func NewInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Install the Playwright driver and the configured browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := browser.Install(cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "installed %s\n", cfg.Browser)
			return nil
		},
	}
}
