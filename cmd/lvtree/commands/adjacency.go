// SPDX-License-Identifier: MIT
// Package: lvtree/cmd/lvtree/commands

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newNeighborsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors <node>",
		Short: "Print the adjacency of a node as <neighbor> <weight> lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd.InOrStdin())
			if err != nil {
				return err
			}
			seq, err := g.Neighbors(args[0])
			if err != nil {
				return err
			}
			for n, w := range seq {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%g\n", n, w)
			}

			return nil
		},
	}
}

func newHopsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hops <source>",
		Short: "Print BFS hop counts from a node, in node order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd.InOrStdin())
			if err != nil {
				return err
			}
			hops, err := g.HopDistances(args[0])
			if err != nil {
				return err
			}
			for _, n := range g.Nodes() {
				if d, ok := hops[n]; ok {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", n, d)
				}
			}

			return nil
		},
	}
}

func newTopoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "topo",
		Short: "Print a topological order of a directed acyclic graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph(cmd.InOrStdin())
			if err != nil {
				return err
			}
			order, err := g.TopologicalOrder()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(order, " "))

			return nil
		},
	}
}
