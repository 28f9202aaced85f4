package cli

import (
	"github.com/spf13/cobra"

	"github.com/cloudkeeper/azureingest/internal/app"
)

func NewCommand(appInstance app.Runner) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "azureingest",
		Short: "Ingest Azure virtual machine inventory into NetBox",
	}

	var debug bool
	var quiet bool

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Collect Azure VMs and push them to the Diode endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			return appInstance.Run(cmd.Context(), debug, quiet)
		},
	}

	runCmd.Flags().BoolVar(&debug, "debug", false, "dump the full collected record tree before submission")
	runCmd.Flags().BoolVar(&quiet, "quiet", false, "suppress all non-error progress output")

	rootCmd.AddCommand(runCmd)
	return rootCmd
}
