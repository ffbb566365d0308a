// Command gatrack builds a single hit and sends it, or prints it when run
// with --dry-run.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var g globalFlags
	root := &cobra.Command{
		Use:          "gatrack",
		Short:        "Send measurement protocol hits from the command line",
		SilenceUsage: true,
	}
	g.register(root)

	root.AddCommand(newPageviewCmd(&g), newEventCmd(&g), newExceptionCmd(&g))
	root.SetErr(os.Stderr)
	root.SetOut(os.Stdout)
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if g.accountID == "" && g.configPath == "" {
			return fmt.Errorf("either --account or --config is required")
		}
		return nil
	}
	return root
}
