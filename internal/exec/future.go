// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package exec

import (
	"cmp"
	"context"
	"time"

	"github.com/addrummond/heap"
	"github.com/petenewcomb/itl-go"
	"pgregory.net/rapid"
)

type wakeEvent struct {
	Time time.Duration
	Task *task
}

func (a *wakeEvent) Cmp(b *wakeEvent) int {
	return cmp.Compare(a.Time, b.Time)
}

// Sleep returns a future that completes once the executor's virtual clock
// has advanced d past the first poll. It panics if polled outside an
// [Executor].
func Sleep(d time.Duration) itl.Future[struct{}] {
	return &sleepFuture{d: d}
}

type sleepFuture struct {
	d        time.Duration
	deadline time.Duration
	armed    bool
}

func (f *sleepFuture) Poll(ctx context.Context) (struct{}, bool, error) {
	e := executorFrom(ctx)
	if e == nil {
		panic("no executor bound to context")
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if !f.armed {
		f.armed = true
		f.deadline = e.now + f.d
	}
	if e.now >= f.deadline {
		return struct{}{}, true, nil
	}
	t := taskFrom(ctx)
	heap.PushOrderable(&e.timers, wakeEvent{Time: f.deadline, Task: t})
	t.parked = true
	return struct{}{}, false, nil
}

// Yield returns a future that reports pending exactly once, giving the rest
// of the ready queue a turn before completing on the next poll.
func Yield() itl.Future[struct{}] {
	yielded := false
	return itl.FutureFunc[struct{}](func(ctx context.Context) (struct{}, bool, error) {
		if yielded {
			return struct{}{}, true, nil
		}
		yielded = true
		return struct{}{}, false, nil
	})
}

// RapidPicks draws ready-task and worker choices from t so that rapid
// explores schedules a fixed policy would never produce.
func RapidPicks(t *rapid.T) Option {
	return func(c *config) {
		c.pickReady = func(n int) int {
			return rapid.IntRange(0, n-1).Draw(t, "readyIndex")
		}
		c.pickWorker = func(n int) int {
			return rapid.IntRange(0, n-1).Draw(t, "workerIndex")
		}
	}
}
