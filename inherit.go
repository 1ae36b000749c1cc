// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package itl

import (
	"context"
	"fmt"
)

// Inherit wraps inner so that the inheritable task-local values active in
// ctx at the moment of the call become visible to inner on every poll,
// regardless of which worker performs the poll. It is the adapter handed to
// a host scheduler's spawn function in place of the unwrapped future.
//
// The snapshot is captured here, once: values entering scope after the call
// are not propagated, values are shared by handle rather than copied, and
// the capture is ordered before any concurrent mutation of the parent's
// scopes because both happen on the worker bound to ctx. If ctx has no bound
// [Worker] the snapshot is empty and the wrapper degrades to a pass-through.
//
// Each poll of the returned future installs the snapshot on the polling
// worker, polls inner exactly once, and unconditionally restores the prior
// state, even when inner fails or panics. The snapshot is spliced above the
// worker's active values rather than substituted for them: captured
// variables shadow for the poll's duration, but variables the snapshot does
// not carry are left visible, so a wrapper polled inline beneath an active
// scope still sees that scope's values. Results and errors pass through
// unmodified. The returned future panics if polled on a context with no
// bound [Worker].
func Inherit[T any](ctx context.Context, inner Future[T]) Future[T] {
	snap := emptySnapshot
	if w := workerFrom(ctx); w != nil {
		snap = captureSnapshot(w)
	}
	return &inheritFuture[T]{snap: snap, inner: inner}
}

type inheritFuture[T any] struct {
	snap   *snapshot
	inner  Future[T]
	polled bool
}

func (f *inheritFuture[T]) Poll(ctx context.Context) (T, bool, error) {
	w := mustWorkerFrom(ctx)
	f.polled = true
	f.snap.install(w)
	defer f.snap.restore(w)
	return f.inner.Poll(ctx)
}

// String reports the wrapper state and the names of the captured variables.
// Values are deliberately omitted.
func (f *inheritFuture[T]) String() string {
	state := "unpolled"
	if f.polled {
		state = "polling"
	}
	return fmt.Sprintf("Inherit{%s %s}", state, f.snap)
}
