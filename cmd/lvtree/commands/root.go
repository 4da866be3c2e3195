// SPDX-License-Identifier: MIT
// Package: lvtree/cmd/lvtree/commands

// Package commands wires the lvtree cobra command tree.
package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/trace"
)

// Config keys shared by flags, environment (LVTREE_*) and the config file.
const (
	keyGraph   = "graph"
	keyVerbose = "verbose"
	keyTrace   = "trace"
	envPrefix  = "LVTREE"
)

// app carries per-invocation state: resolved configuration plus the logger
// and tracer handed to core.
type app struct {
	cfgFile string
	v       *viper.Viper

	logger   *slog.Logger
	tracer   trace.Tracer
	shutdown func() error
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd builds a fresh command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "lvtree",
		Short: "Graph shape classification and rooted-tree queries",
		Long: `lvtree reads a YAML graph document, classifies its shape
(Bidirectional, Tree, Connected, Forest, DAG) and answers rooted-tree
queries: lowest common ancestors, distances and bridges.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.initConfig(); err != nil {
				return err
			}
			return a.initTelemetry(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.shutdown != nil {
				return a.shutdown()
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default $HOME/.lvtree.yaml)")
	pf.StringP(keyGraph, "g", "", "graph document path, - for stdin")
	pf.BoolP(keyVerbose, "v", false, "debug logging on stderr")
	pf.Bool(keyTrace, false, "print otel spans on stderr")
	for _, key := range []string{keyGraph, keyVerbose, keyTrace} {
		_ = a.v.BindPFlag(key, pf.Lookup(key))
	}

	root.AddCommand(
		newClassifyCmd(a),
		newNeighborsCmd(a),
		newHopsCmd(a),
		newTopoCmd(a),
		newLCACmd(a),
		newBridgesCmd(a),
		newGenerateCmd(a),
	)

	return root
}

// initConfig resolves the config file and LVTREE_* environment. A missing
// default config file is not an error; a missing explicit one is.
func (a *app) initConfig() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		a.v.SetConfigFile(filepath.Join(home, ".lvtree.yaml"))
		a.v.SetConfigType("yaml")
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !(errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)) {
			return fmt.Errorf("lvtree: read config: %w", err)
		}
	}

	return nil
}
