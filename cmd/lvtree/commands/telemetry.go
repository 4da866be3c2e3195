// SPDX-License-Identifier: MIT
// Package: lvtree/cmd/lvtree/commands

package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const tracerName = "lvtree/cli"

// initTelemetry installs the slog logger and, with --trace, a synchronous
// stdout span exporter writing to the command's stderr.
func (a *app) initTelemetry(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if a.v.GetBool(keyVerbose) {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if !a.v.GetBool(keyTrace) {
		a.tracer = otel.Tracer(tracerName)
		return nil
	}

	exporter, err := stdouttrace.New(
		stdouttrace.WithWriter(cmd.ErrOrStderr()),
		stdouttrace.WithPrettyPrint(),
	)
	if err != nil {
		return fmt.Errorf("lvtree: create span exporter: %w", err)
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	a.tracer = tp.Tracer(tracerName)
	a.shutdown = func() error { return tp.Shutdown(context.Background()) }

	return nil
}
