// SPDX-License-Identifier: MIT
// Package: lvtree/core

package core

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "lvtree/core"

var meter = otel.Meter(instrumentationName)

// Instruments are created on first use.
var (
	indexTotal   metric.Int64Counter
	indexLatency metric.Float64Histogram
	queryLatency metric.Float64Histogram
	metricsOnce  sync.Once
	metricsErr   error
)

func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		indexTotal, err = meter.Int64Counter(
			"lvtree_index_total",
			metric.WithDescription("Total number of rooted-tree indexing calls"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		indexLatency, err = meter.Float64Histogram(
			"lvtree_index_duration_seconds",
			metric.WithDescription("Duration of rooted-tree indexing"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		queryLatency, err = meter.Float64Histogram(
			"lvtree_query_duration_seconds",
			metric.WithDescription("Duration of rooted-tree queries"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})

	return metricsErr
}

func recordIndexMetrics(ctx context.Context, took time.Duration, ancestors, success bool) {
	if err := initMetrics(); err != nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.Bool("success", success),
		attribute.Bool("ancestor_table", ancestors),
	)
	indexTotal.Add(ctx, 1, attrs)
	indexLatency.Record(ctx, took.Seconds(), attrs)
}

func recordQueryMetrics(ctx context.Context, queryType string, took time.Duration, resultCount int) {
	if err := initMetrics(); err != nil {
		return
	}
	queryLatency.Record(ctx, took.Seconds(), metric.WithAttributes(
		attribute.String("query_type", queryType),
		attribute.Int("result_count", resultCount),
	))
}
