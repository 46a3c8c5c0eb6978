package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"strategycoach/pkg/halloffame"
)

func newHallOfFameCmd() *cobra.Command {
	var (
		sport  string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "halloffame",
		Short: "Print the athlete quote table",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := halloffame.Default()
			if err != nil {
				return err
			}
			athletes := table.Filter(sport)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), athletes)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tSPORT\tQUOTE")
			for _, a := range athletes {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", a.Name, a.Sport, a.Quote)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&sport, "sport", halloffame.AllSports, "filter by sport")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}
