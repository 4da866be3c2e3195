// SPDX-License-Identifier: MIT
// Package: lvtree/cmd/lvtree/commands

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newClassifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "classify",
		Short: "Print the category set and counts of the graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph(cmd.InOrStdin())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "directed:   %t\n", g.Directed())
			fmt.Fprintf(out, "nodes:      %d\n", g.NodeCount())
			fmt.Fprintf(out, "arcs:       %d\n", g.ArcCount())
			fmt.Fprintf(out, "categories: %s\n", g.Categories())

			return nil
		},
	}
}
