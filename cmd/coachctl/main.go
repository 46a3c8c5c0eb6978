// Command coachctl runs the coach pipeline offline: parse a saved model
// reply, ask the configured generator for suggestions, or print the hall
// of fame.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zeromicro/go-zero/core/logx"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "coachctl",
		Short: "Operator tools for the strategy coach",
		Long: `coachctl exercises the strategy coach without the HTTP server.

Available subcommands:
  parse      - Parse a model reply into strategy records
  suggest    - Ask the configured generator for strategies
  halloffame - Print the athlete quote table`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !verbose {
				logx.Disable()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "emit service logs")

	root.AddCommand(newParseCmd(), newSuggestCmd(), newHallOfFameCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
