package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/phanxgames/motion"
	"github.com/spf13/cobra"
)

func newRatesCmd() *cobra.Command {
	var samples int
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "List the named timing curves",
		RunE: func(cmd *cobra.Command, args []string) error {
			if samples < 2 {
				return fmt.Errorf("samples must be at least 2, got %d", samples)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tANCHORED\tVALUES")
			for _, info := range motion.RateFuncs() {
				fmt.Fprintf(tw, "%s\t%v\t", info.Name, info.Anchored)
				for i := 0; i < samples; i++ {
					t := float64(i) / float64(samples-1)
					fmt.Fprintf(tw, "%.3f ", info.Func(t))
				}
				fmt.Fprintln(tw)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&samples, "samples", 5, "Number of evenly spaced samples per curve")
	return cmd
}
