// Package terminal implements the demoqa CLI commands.
package terminal

import (
	"demoqa_automation/domain/interfaces"
	"demoqa_automation/infrastructure/browser"
	"demoqa_automation/infrastructure/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Launcher starts the browser a run drives
type Launcher func(cfg *config.Config, logger *logrus.Logger) (interfaces.Browser, error)

// NewRootCmd creates the root demoqa command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	return newRootCmd(browser.NewBrowserController)
}

func newRootCmd(launch Launcher) *cobra.Command {
	root := &cobra.Command{
		Use:           "demoqa",
		Short:         "demoqa - end-to-end UI suite for demoqa.com",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(NewListCmd())
	root.AddCommand(NewRunCmd(launch))
	root.AddCommand(NewLabelCmd())
	root.AddCommand(NewInstallCmd())
	return root
}
