// SPDX-License-Identifier: MIT
// Package: lvtree/cmd/lvtree/commands

package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtree/builder"
)

var idSchemes = map[string]builder.IDFn{
	"decimal": builder.DefaultIDFn,
	"symbol":  builder.SymbolIDFn,
	"excel":   builder.ExcelColumnIDFn,
}

func newGenerateCmd(_ *app) *cobra.Command {
	var (
		seed     int64
		directed bool
		ids      string
		output   string
	)
	cmd := &cobra.Command{
		Use:   "generate <kind> <n>",
		Short: "Write a generated graph document (" + strings.Join(builder.Kinds(), "|") + ")",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("lvtree: size %q: %w", args[1], err)
			}
			ctor, err := builder.ByKind(args[0], n)
			if err != nil {
				return err
			}
			idFn, ok := idSchemes[ids]
			if !ok {
				return fmt.Errorf("lvtree: unknown id scheme %q (decimal|symbol|excel)", ids)
			}
			if ids == "symbol" && n > 26 {
				return fmt.Errorf("lvtree: symbol ids support at most 26 nodes, got %d", n)
			}

			bp, err := builder.Build(directed, []builder.BuilderOption{
				builder.WithSeed(seed),
				builder.WithIDScheme(idFn),
			}, ctor)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("lvtree: create %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}

			return encodeDocument(w, bp)
		},
	}
	f := cmd.Flags()
	f.Int64Var(&seed, "seed", 1, "RNG seed for random kinds")
	f.BoolVar(&directed, "directed", false, "emit a directed graph document")
	f.StringVar(&ids, "ids", "decimal", "node label scheme: decimal|symbol|excel")
	f.StringVarP(&output, "output", "o", "", "output path (default stdout)")

	return cmd
}
