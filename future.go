// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package itl

import (
	"context"
)

// A Future represents a unit of cooperative work driven by repeated polling.
// Until the work completes, Poll returns done=false and the host scheduler is
// expected to poll again later, possibly from a different worker. Once the
// work completes, Poll returns done=true along with the result or error; the
// behavior of polling again after that is owned by the implementation.
//
// Poll must never block the calling goroutine. Work that cannot make
// progress should return done=false and arrange with its host to be polled
// again when it can. The provided context carries the polling [Worker] (see
// [WithWorker]) and should be respected for cancellation.
//
// A Future need not be safe for concurrent use: the host guarantees that at
// most one goroutine polls a given future at a time, though successive polls
// may occur on different workers.
type Future[T any] interface {
	Poll(ctx context.Context) (result T, done bool, err error)
}

// FutureFunc adapts an ordinary function to the [Future] interface.
type FutureFunc[T any] func(ctx context.Context) (T, bool, error)

func (f FutureFunc[T]) Poll(ctx context.Context) (T, bool, error) {
	return f(ctx)
}

// A TaskFunc represents a single-step task body: it runs to completion within
// one poll and returns a result of type T and an error value. The provided
// context should be respected for cancellation. Any other inputs are expected
// to be provided by specifying the TaskFunc as a [function literal] that
// references and therefore captures local variables via [lexical closure].
//
// [function literal]: https://go.dev/ref/spec#Function_literals
// [lexical closure]: https://en.wikipedia.org/wiki/Closure_(computer_programming)
type TaskFunc[T any] = func(context.Context) (T, error)

// Ready lifts a [TaskFunc] into a [Future] that completes on its first poll.
func Ready[T any](fn TaskFunc[T]) Future[T] {
	return FutureFunc[T](func(ctx context.Context) (T, bool, error) {
		result, err := fn(ctx)
		return result, true, err
	})
}
