package retry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/opentds/lib-sqlclient/sqlclient/retry"

var (
	waitCount    metric.Int64Counter
	waitDuration metric.Float64Histogram
)

func init() {
	meter := otel.Meter(instrumentationName)

	// The noop instruments returned on error keep recording safe.
	waitCount, _ = meter.Int64Counter(
		"sqlclient.retry.waits",
		metric.WithDescription("Number of waits performed between connection retry attempts"),
	)
	waitDuration, _ = meter.Float64Histogram(
		"sqlclient.retry.wait.duration",
		metric.WithDescription("Duration of waits between connection retry attempts"),
		metric.WithUnit("s"),
	)
}

func recordWait(ctx context.Context, strategy string, d time.Duration) {
	attrs := metric.WithAttributes(attribute.String("strategy", strategy))

	waitCount.Add(ctx, 1, attrs)
	waitDuration.Record(ctx, d.Seconds(), attrs)
}
