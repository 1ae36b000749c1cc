// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package otitl

import (
	"context"

	"github.com/petenewcomb/itl-go"
)

// InstrumentedFuture combines tracing, metrics, and logging for futures into
// a single wrapper. This provides a convenient way to apply all
// instrumentation at once.
func InstrumentedFuture[T any](operationName string, inner itl.Future[T]) itl.Future[T] {
	// Apply wrappers inside-out:
	// 1. First add logging
	logged := LoggedFuture(operationName, inner)

	// 2. Then add metrics
	measured := MetricsFuture(operationName, logged)

	// 3. Finally add tracing (which reattaches the inherited span context)
	return TracedFuture(operationName, measured)
}

// InstrumentedTask combines tracing, metrics, and logging for task functions
// into a single wrapper, applied inside-out in the same order as
// [InstrumentedFuture]: logging, then metrics, then tracing so that the
// inherited span context is reattached before the instruments run.
func InstrumentedTask[T any](
	operationName string,
	taskFunc itl.TaskFunc[T],
) itl.TaskFunc[T] {
	logged := LoggedTask(operationName, taskFunc)
	measured := MetricsTask(operationName, logged)
	return TracedTask(operationName, measured)
}

// InstrumentedInherit wraps inner with full instrumentation and then with
// [itl.Inherit]. The inheritance wrapper must be outermost so that the
// captured values, including [SpanContextValue], are installed before the
// instruments run.
//
// Example:
//
//	work := otitl.InstrumentedInherit(ctx, "process-data", processFuture)
//	handle := host.Spawn(work)
func InstrumentedInherit[T any](
	ctx context.Context,
	operationName string,
	inner itl.Future[T],
) itl.Future[T] {
	return itl.Inherit(ctx, InstrumentedFuture(operationName, inner))
}
