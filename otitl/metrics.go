// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package otitl

import (
	"context"
	"time"

	"github.com/petenewcomb/itl-go"
	"go.opentelemetry.io/otel"
)

// MetricsFuture adds metrics collection to a future's lifecycle. It records
// one count per future, one poll count per poll, the duration from first
// poll to completion, and an error count for failed completions.
func MetricsFuture[T any](metricName string, inner itl.Future[T]) itl.Future[T] {
	var startTime time.Time
	started := false
	return itl.FutureFunc[T](func(ctx context.Context) (T, bool, error) {
		meter := otel.GetMeterProvider().Meter("otitl")

		if !started {
			started = true
			startTime = time.Now()
			counter, _ := meter.Int64Counter(metricName + ".count")
			counter.Add(ctx, 1)
		}
		pollCounter, _ := meter.Int64Counter(metricName + ".polls")
		pollCounter.Add(ctx, 1)

		result, done, err := inner.Poll(ctx)
		if !done {
			return result, false, err
		}

		// Record duration
		taskDuration, _ := meter.Float64Histogram(metricName + ".duration")
		taskDuration.Record(ctx, time.Since(startTime).Seconds())

		// Record error if any
		if err != nil {
			errorCounter, _ := meter.Int64Counter(metricName + ".errors")
			errorCounter.Add(ctx, 1)
		}
		return result, true, err
	})
}

// MetricsTask adds metrics collection to a task function: one count and one
// duration sample per call, and an error count for failed calls. It is the
// single-call form of [MetricsFuture], without the poll counter.
func MetricsTask[T any](
	metricName string,
	taskFunc itl.TaskFunc[T],
) itl.TaskFunc[T] {
	return func(ctx context.Context) (T, error) {
		meter := otel.GetMeterProvider().Meter("otitl")
		counter, _ := meter.Int64Counter(metricName + ".count")
		counter.Add(ctx, 1)

		startTime := time.Now()
		result, err := taskFunc(ctx)

		taskDuration, _ := meter.Float64Histogram(metricName + ".duration")
		taskDuration.Record(ctx, time.Since(startTime).Seconds())
		if err != nil {
			errorCounter, _ := meter.Int64Counter(metricName + ".errors")
			errorCounter.Add(ctx, 1)
		}
		return result, err
	}
}
