// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package itl

import (
	"context"

	"github.com/petenewcomb/itl-go/internal/cell"
)

// Var is a declared inheritable task-local variable with values of type T.
// Identity is the *Var itself: every call to [New] yields a distinct
// variable, and declarations are expected to be package-level so that each
// declaration site names exactly one variable for the life of the process.
//
// A Var holds no value of its own. Values become active only within scopes
// (see [Scope] and [SyncScope]) and within polls of futures wrapped by
// [Inherit], and are always read through the [Worker] bound to the calling
// context.
type Var[T any] struct {
	name string
	slot int
	e    *entry
}

// New declares an inheritable task-local variable. The name is used only for
// diagnostics and need not be unique.
//
// New is intended to be called from package-level variable initializers,
// which run before main and therefore before any task executes:
//
//	var RequestID = itl.New[string]("request-id")
//
// Declaring a variable later works but comes with the same caveat as
// dynamically loaded code: futures wrapped by [Inherit] before the
// declaration ran can never propagate it. The gap is silent; it is not
// detected or reported at runtime.
func New[T any](name string) *Var[T] {
	v := &Var[T]{name: name}
	v.e = &entry{
		name: name,
		probe: func(w *Worker) bool {
			_, ok := w.cells.Peek(v.slot)
			return ok
		},
		capture: func(w *Worker) *cell.Handle {
			h, _ := w.cells.Peek(v.slot)
			return h
		},
		install: func(w *Worker, h *cell.Handle) {
			w.cells.Stack(v.slot).Push(h)
		},
		remove: func(w *Worker, h *cell.Handle) {
			top, ok := w.cells.Stack(v.slot).Pop()
			if !ok || top != h {
				panic("scope already exited")
			}
		},
	}
	v.slot = globalRegistry.add(v.e)
	return v
}

// Name returns the diagnostic name given to [New].
func (v *Var[T]) Name() string {
	return v.name
}

// Get returns the innermost value active for v in the calling context. It
// returns [ErrNotSet] if no scope for v encloses the caller and nothing was
// inherited, or [ErrNoWorker] if ctx has no bound [Worker] at all.
func (v *Var[T]) Get(ctx context.Context) (T, error) {
	w := workerFrom(ctx)
	if w == nil {
		var zero T
		return zero, ErrNoWorker
	}
	h, ok := w.cells.Peek(v.slot)
	if !ok {
		var zero T
		return zero, ErrNotSet
	}
	return h.Value().(T), nil
}

// With invokes fn with the innermost value active for v in the calling
// context. It returns the same errors as [Var.Get], in which case fn is not
// invoked. Closures that produce a value can use the package-level [With],
// which returns the closure's result; a method cannot, since Go methods do
// not introduce type parameters of their own.
func (v *Var[T]) With(ctx context.Context, fn func(T)) error {
	value, err := v.Get(ctx)
	if err != nil {
		return err
	}
	fn(value)
	return nil
}

// With invokes fn with the innermost value active for v in the calling
// context and returns fn's result. It fails with the same errors as
// [Var.Get], in which case fn is not invoked.
func With[T, R any](ctx context.Context, v *Var[T], fn func(T) R) (R, error) {
	value, err := v.Get(ctx)
	if err != nil {
		var zero R
		return zero, err
	}
	return fn(value), nil
}

// MustGet is like [Var.Get] but panics with the error when no value is
// available. Intended for values the caller knows to be set.
func (v *Var[T]) MustGet(ctx context.Context) T {
	value, err := v.Get(ctx)
	if err != nil {
		panic(err)
	}
	return value
}
