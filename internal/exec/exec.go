// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package exec

import (
	"context"
	"sync"
	"time"

	"github.com/addrummond/heap"
	"github.com/gammazero/deque"
	"github.com/petenewcomb/itl-go"
)

type config struct {
	workerCount int
	pickReady   func(n int) int
	pickWorker  func(n int) int
}

type Option func(*config)

// WithWorkers sets the number of workers. The default is one.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("worker count is less than one")
	}
	return func(c *config) {
		c.workerCount = n
	}
}

// WithReadyPick overrides the choice of the next task to poll. f receives
// the current ready count and must return an index less than it. The default
// is FIFO.
func WithReadyPick(f func(n int) int) Option {
	return func(c *config) {
		c.pickReady = f
	}
}

// WithWorkerPick overrides the choice of worker for the next poll. f
// receives the worker count and must return an index less than it. The
// default is round-robin, which guarantees that multi-poll tasks migrate.
func WithWorkerPick(f func(n int) int) Option {
	return func(c *config) {
		c.pickWorker = f
	}
}

// Executor drives spawned futures to completion by repeated polling.
type Executor struct {
	mu      sync.Mutex
	cond    *sync.Cond
	cfg     config
	workers []*itl.Worker
	ready   deque.Deque[*task]
	timers  heap.Heap[wakeEvent, heap.Min]
	now     time.Duration
	live    int
	idle    int
	rr      int
}

func New(opts ...Option) *Executor {
	cfg := config{workerCount: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	e := &Executor{cfg: cfg}
	e.cond = sync.NewCond(&e.mu)
	e.workers = make([]*itl.Worker, cfg.workerCount)
	for i := range e.workers {
		e.workers[i] = itl.NewWorker()
	}
	return e
}

// Now returns the current virtual time.
func (e *Executor) Now() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.now
}

// Run polls spawned tasks on the calling goroutine until none remain live,
// advancing the virtual clock whenever every live task is parked on a timer.
// With the default FIFO ready order, identical spawn sequences produce
// identical schedules. Cancellation is observed between polls. Run panics if
// every live task is parked and no timer is pending.
func (e *Executor) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		e.mu.Lock()
		if e.live == 0 {
			e.mu.Unlock()
			return nil
		}
		if e.ready.Len() == 0 {
			event, ok := heap.PopOrderable(&e.timers)
			if !ok {
				e.mu.Unlock()
				panic("deadlock: tasks parked with no pending timer")
			}
			e.now = event.Time
			e.enqueueLocked(event.Task)
			e.mu.Unlock()
			continue
		}
		i := 0
		if n := e.ready.Len(); n > 1 && e.cfg.pickReady != nil {
			i = e.cfg.pickReady(n)
		}
		t := e.ready.Remove(i)
		t.queued = false
		t.running = true
		wi := e.rr % len(e.workers)
		e.rr++
		if n := len(e.workers); n > 1 && e.cfg.pickWorker != nil {
			wi = e.cfg.pickWorker(n)
		}
		w := e.workers[wi]
		e.mu.Unlock()

		e.poll(ctx, t, w)
	}
}

// RunParallel is like [Run] but drives the tasks with one goroutine per
// worker, so each worker is owned by exactly one goroutine. Scheduling is
// nondeterministic; the virtual clock advances only when every worker is
// idle. Intended for race coverage rather than reproducible schedules.
func (e *Executor) RunParallel(ctx context.Context) error {
	var wg sync.WaitGroup
	wg.Add(len(e.workers))
	for _, w := range e.workers {
		go func() {
			defer wg.Done()
			e.workerLoop(ctx, w)
		}()
	}
	wg.Wait()
	return ctx.Err()
}

func (e *Executor) workerLoop(ctx context.Context, w *itl.Worker) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for {
		if e.live == 0 || ctx.Err() != nil {
			e.cond.Broadcast()
			return
		}
		if e.ready.Len() == 0 {
			if e.idle == len(e.workers)-1 {
				// Every other worker is waiting and nothing is mid-poll, so
				// it is safe to advance the clock.
				event, ok := heap.PopOrderable(&e.timers)
				if !ok {
					panic("deadlock: tasks parked with no pending timer")
				}
				e.now = event.Time
				e.enqueueLocked(event.Task)
				continue
			}
			e.idle++
			e.cond.Wait()
			e.idle--
			continue
		}
		t := e.ready.PopFront()
		t.queued = false
		t.running = true
		e.mu.Unlock()
		e.poll(ctx, t, w)
		e.mu.Lock()
	}
}

func (e *Executor) poll(ctx context.Context, t *task, w *itl.Worker) {
	pollCtx := itl.WithWorker(withTask(withExecutor(ctx, e), t), w)
	done := t.poll(pollCtx)
	e.mu.Lock()
	defer e.mu.Unlock()
	t.running = false
	if done {
		t.done = true
		e.live--
		for _, waiter := range t.waiters {
			e.enqueueLocked(waiter)
		}
		t.waiters = nil
		if e.live == 0 {
			e.cond.Broadcast()
		}
	} else if t.notified || !t.parked {
		t.notified = false
		t.parked = false
		e.enqueueLocked(t)
	}
}

// enqueueLocked makes t runnable, deduplicating against tasks already queued
// or complete. A task that is mid-poll on another worker is never requeued
// directly, since that would let two workers poll the same future at once;
// the wakeup is recorded instead and applied when the poll returns. Must be
// called with e.mu held.
func (e *Executor) enqueueLocked(t *task) {
	if t.done || t.queued {
		return
	}
	if t.running {
		t.notified = true
		return
	}
	t.parked = false
	t.queued = true
	e.ready.PushBack(t)
	e.cond.Signal()
}

type executorContextValueType struct{}

var executorContextValueKey any = executorContextValueType{}

func withExecutor(ctx context.Context, e *Executor) context.Context {
	return context.WithValue(ctx, executorContextValueKey, e)
}

func executorFrom(ctx context.Context) *Executor {
	e, _ := ctx.Value(executorContextValueKey).(*Executor)
	return e
}

type taskContextValueType struct{}

var taskContextValueKey any = taskContextValueType{}

func withTask(ctx context.Context, t *task) context.Context {
	return context.WithValue(ctx, taskContextValueKey, t)
}

func taskFrom(ctx context.Context) *task {
	t, _ := ctx.Value(taskContextValueKey).(*task)
	return t
}
