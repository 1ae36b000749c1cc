// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package itl

import (
	"context"

	"github.com/petenewcomb/itl-go/internal/cell"
)

// Scope returns a future that makes value active for v during every poll of
// inner. The value is boxed once, when Scope is called; each poll pushes the
// same shared handle onto the polling worker's stack before polling inner
// and pops it on every exit path, including error returns and panics. The
// returned future yields exactly what inner yields.
//
// Nested scopes for the same variable shadow in LIFO order: reads during the
// inner scope's polls see the inner value, and the outer value becomes
// visible again once the inner scope exits.
//
// The returned future panics if polled on a context with no bound [Worker].
func Scope[T, R any](v *Var[T], value T, inner Future[R]) Future[R] {
	return &scopeFuture[T, R]{
		v:      v,
		handle: cell.NewHandle(value),
		inner:  inner,
	}
}

type scopeFuture[T, R any] struct {
	v      *Var[T]
	handle *cell.Handle
	inner  Future[R]
}

func (f *scopeFuture[T, R]) Poll(ctx context.Context) (R, bool, error) {
	w := mustWorkerFrom(ctx)
	f.v.e.install(w, f.handle)
	defer f.v.e.remove(w, f.handle)
	return f.inner.Poll(ctx)
}

// SyncScope makes value active for v for the duration of body, popping it on
// every exit path including panics, and returns body's result. Unlike
// [Scope] it runs body immediately and synchronously on the calling
// goroutine.
//
// If ctx has no bound [Worker], SyncScope binds a fresh one for the extent
// of body so that reads and [Inherit] captures within body still work. This
// allows values to be staged for inheritance from outside the task system,
// for example from main before the host scheduler starts. Body must use the
// context it is passed for this to take effect.
func SyncScope[T, R any](ctx context.Context, v *Var[T], value T, body TaskFunc[R]) (R, error) {
	w := workerFrom(ctx)
	if w == nil {
		w = NewWorker()
		ctx = WithWorker(ctx, w)
	}
	h := cell.NewHandle(value)
	v.e.install(w, h)
	defer v.e.remove(w, h)
	return body(ctx)
}
