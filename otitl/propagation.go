// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package otitl provides OpenTelemetry integration for the itl inheritable
// task-local library. It carries the active span context through spawned
// tasks as an inheritable value, so that spans created inside a task are
// parented correctly no matter which worker polls it.
package otitl

import (
	"context"

	"github.com/petenewcomb/itl-go"
	"go.opentelemetry.io/otel/trace"
)

// SpanContextValue is the inheritable task-local variable that carries the
// propagated span context. It is scoped by [PropagateFuture] and read back
// by [ContextWithInheritedSpan]; futures wrapped with [itl.Inherit] while it
// is in scope carry it to their own workers.
var SpanContextValue = itl.New[trace.SpanContext]("otitl.span-context")

// PropagateFuture makes the span context active in ctx inheritable by tasks
// spawned during inner's polls. It captures the span once, at the time of
// the call, and scopes [SpanContextValue] to it around inner.
func PropagateFuture[T any](ctx context.Context, inner itl.Future[T]) itl.Future[T] {
	return itl.Scope(SpanContextValue, trace.SpanFromContext(ctx).SpanContext(), inner)
}

// PropagateTask wraps a task function so that it runs with any inherited
// span context reattached to its context. Spans created by the task are then
// parented to the propagated span even though the task was spawned on a
// different worker.
func PropagateTask[T any](taskFunc itl.TaskFunc[T]) itl.TaskFunc[T] {
	return func(ctx context.Context) (T, error) {
		return taskFunc(ContextWithInheritedSpan(ctx))
	}
}

// ContextWithInheritedSpan returns ctx with the span context inherited
// through [SpanContextValue] attached as a remote parent. It returns ctx
// unchanged when ctx already carries a span, when nothing valid was
// inherited, or when ctx has no bound worker at all.
func ContextWithInheritedSpan(ctx context.Context) context.Context {
	if trace.SpanContextFromContext(ctx).IsValid() {
		return ctx
	}
	sc, err := SpanContextValue.Get(ctx)
	if err != nil || !sc.IsValid() {
		return ctx
	}
	return trace.ContextWithRemoteSpanContext(ctx, sc)
}
