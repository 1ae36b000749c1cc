// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package itl

import (
	"context"

	"github.com/petenewcomb/itl-go/internal/cell"
)

// Worker holds the task-local variable storage for one scheduler worker. A
// host scheduler creates one Worker per worker goroutine or thread and binds
// it into the context passed to each [Future.Poll] call via [WithWorker].
//
// A Worker is not safe for concurrent use. The host must guarantee that at
// most one poll executes against a given Worker at a time; this is the same
// guarantee cooperative schedulers already provide for the tasks themselves.
// Tasks may freely migrate between Workers from one poll to the next.
//
// The zero Worker is ready to use.
type Worker struct {
	cells cell.Table
}

// NewWorker creates an empty Worker.
func NewWorker() *Worker {
	return &Worker{}
}

type workerContextValueType struct{}

var workerContextValueKey any = workerContextValueType{}

// WithWorker returns a copy of ctx with the given Worker bound. Host
// schedulers must bind a Worker into the context they poll with; all scoped
// storage reads and writes resolve against the bound Worker.
func WithWorker(ctx context.Context, w *Worker) context.Context {
	if w == nil {
		panic("nil worker")
	}
	return context.WithValue(ctx, workerContextValueKey, w)
}

// workerFrom returns the Worker bound to ctx, or nil if there is none.
func workerFrom(ctx context.Context) *Worker {
	w, _ := ctx.Value(workerContextValueKey).(*Worker)
	return w
}

func mustWorkerFrom(ctx context.Context) *Worker {
	w := workerFrom(ctx)
	if w == nil {
		panic("no itl worker bound to context")
	}
	return w
}
