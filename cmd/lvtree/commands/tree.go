// SPDX-License-Identifier: MIT
// Package: lvtree/cmd/lvtree/commands

package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtree/core"
)

var errEmptyGraph = errors.New("lvtree: graph has no nodes to root")

// indexed loads the graph and indexes it at root, or at the first node when
// root is empty.
func (a *app) indexed(ctx context.Context, cmd *cobra.Command, root string, opts ...core.IndexOption) (*core.Graph[string, float64], error) {
	g, err := a.loadGraph(cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	if root == "" {
		nodes := g.Nodes()
		if len(nodes) == 0 {
			return nil, errEmptyGraph
		}
		root = nodes[0]
	}
	if err := g.IndexRootedTree(ctx, root, opts...); err != nil {
		return nil, err
	}

	return g, nil
}

func newLCACmd(a *app) *cobra.Command {
	var root string
	cmd := &cobra.Command{
		Use:   "lca <a> <b>",
		Short: "Print the lowest common ancestor and tree distance of two nodes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.indexed(cmd.Context(), cmd, root, core.WithAncestorTable())
			if err != nil {
				return err
			}
			lca, err := g.CommonAncestor(args[0], args[1])
			if err != nil {
				return err
			}
			dist, err := g.Distance(args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "lca:      %s\n", lca)
			fmt.Fprintf(cmd.OutOrStdout(), "distance: %d\n", dist)

			return nil
		},
	}
	cmd.Flags().StringVarP(&root, "root", "r", "", "root node (default: first node)")

	return cmd
}

func newBridgesCmd(a *app) *cobra.Command {
	var root string
	cmd := &cobra.Command{
		Use:   "bridges",
		Short: "Print every cut edge as <child> <parent> lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.indexed(cmd.Context(), cmd, root)
			if err != nil {
				return err
			}
			bridges, err := g.Bridges()
			if err != nil {
				return err
			}
			for _, b := range bridges {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", b.Child, b.Parent)
			}
			a.logger.Debug("bridges listed", "count", len(bridges))

			return nil
		},
	}
	cmd.Flags().StringVarP(&root, "root", "r", "", "root node (default: first node)")

	return cmd
}
