// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package exec

import (
	"context"

	"github.com/petenewcomb/itl-go"
)

// task is the executor's bookkeeping for one spawned future. The poll
// closure erases the future's result type; results land in the [Handle].
// All flags are guarded by the executor mutex.
type task struct {
	poll     func(ctx context.Context) bool
	queued   bool // in the ready queue
	running  bool // mid-poll on some worker
	parked   bool // waiting for a timer or another task
	notified bool // woken mid-poll; requeue when the poll returns
	done     bool
	waiters  []*task
}

// Spawn schedules f on e and returns a handle to its eventual result. It may
// be called before [Executor.Run] or from within a running task; in the
// latter case the child starts with no inherited values unless f was wrapped
// with [itl.Inherit].
func Spawn[T any](e *Executor, f itl.Future[T]) *Handle[T] {
	h := &Handle[T]{e: e, t: &task{}}
	h.t.poll = func(ctx context.Context) bool {
		result, done, err := f.Poll(ctx)
		if done {
			h.result = result
			h.err = err
		}
		return done
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.live++
	e.enqueueLocked(h.t)
	return h
}

// Handle provides access to a spawned task's result. It also implements
// [itl.Future], so a task can await another task by polling its handle.
type Handle[T any] struct {
	e      *Executor
	t      *task
	result T
	err    error
}

// Poll implements [itl.Future]. While the task is incomplete the polling
// task parks until it completes; polling from outside the executor simply
// reports pending.
func (h *Handle[T]) Poll(ctx context.Context) (T, bool, error) {
	h.e.mu.Lock()
	if h.t.done {
		h.e.mu.Unlock()
		return h.result, true, h.err
	}
	if waiter := taskFrom(ctx); waiter != nil {
		h.t.waiters = append(h.t.waiters, waiter)
		waiter.parked = true
	}
	h.e.mu.Unlock()
	var zero T
	return zero, false, nil
}

// Done reports whether the task has completed.
func (h *Handle[T]) Done() bool {
	h.e.mu.Lock()
	defer h.e.mu.Unlock()
	return h.t.done
}

// Result returns the task's result and error. It panics if the task has not
// completed; call it after [Executor.Run] returns or after awaiting the
// handle from another task.
func (h *Handle[T]) Result() (T, error) {
	h.e.mu.Lock()
	defer h.e.mu.Unlock()
	if !h.t.done {
		panic("task not complete")
	}
	return h.result, h.err
}
