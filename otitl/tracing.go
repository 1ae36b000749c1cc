// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package otitl

import (
	"context"

	"github.com/petenewcomb/itl-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracedFuture wraps a future in a span covering its whole lifetime: the
// span starts at the first poll and ends at the poll that completes the
// future. Every poll of inner runs with the span attached to its context,
// parented to any span context inherited through [SpanContextValue].
func TracedFuture[T any](operationName string, inner itl.Future[T]) itl.Future[T] {
	return &tracedFuture[T]{name: operationName, inner: inner}
}

type tracedFuture[T any] struct {
	name  string
	inner itl.Future[T]
	span  trace.Span
}

func (f *tracedFuture[T]) Poll(ctx context.Context) (T, bool, error) {
	// Reattach the inherited span context before starting the span, so the
	// span parents to the propagated context rather than floating free.
	ctx = ContextWithInheritedSpan(ctx)
	if f.span == nil {
		ctx, f.span = otel.Tracer("otitl").Start(ctx, f.name)
	} else {
		ctx = trace.ContextWithSpan(ctx, f.span)
	}

	result, done, err := f.inner.Poll(ctx)

	if done {
		if err != nil {
			f.span.RecordError(err)
			f.span.SetStatus(codes.Error, err.Error())
		}
		f.span.End()
	}
	return result, done, err
}

// TracedTask adds a span with the given operation name to a task function.
// The span covers the single call and is parented to any inherited span
// context.
func TracedTask[T any](
	operationName string,
	taskFunc itl.TaskFunc[T],
) itl.TaskFunc[T] {
	return func(ctx context.Context) (T, error) {
		// Reattach inherited context first so the new span parents to it
		ctx = ContextWithInheritedSpan(ctx)

		// Create span with meaningful name
		tracer := otel.Tracer("otitl")
		ctx, span := tracer.Start(ctx, operationName)
		defer span.End()

		// Execute original task with traced context
		result, err := taskFunc(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return result, err
	}
}
