// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package itl_test

import (
	"context"
	"fmt"

	// Superfluous alias needed to work around
	// https://github.com/golang/go/issues/12794
	itl "github.com/petenewcomb/itl-go"
)

var requestID = itl.New[string]("request-id")

// runAll drives futures to completion on a single worker. It is the minimal
// form of the host contract: bind a worker to the context, poll, and poll
// again until done.
func runAll(ctx context.Context, futures []itl.Future[string]) []string {
	ctx = itl.WithWorker(ctx, itl.NewWorker())
	results := make([]string, len(futures))
	done := make([]bool, len(futures))
	for remaining := len(futures); remaining > 0; {
		for i, f := range futures {
			if done[i] {
				continue
			}
			r, ok, err := f.Poll(ctx)
			if err != nil {
				r = err.Error()
				ok = true
			}
			if ok {
				results[i] = r
				done[i] = true
				remaining--
			}
		}
	}
	return results
}

// "Hello world" example that stages a request ID from outside the task
// system and shows that only the future wrapped while the value was in scope
// can see it.
func Example_hello() {
	ctx := context.Background()

	newReader := func() itl.Future[string] {
		return itl.Ready(func(ctx context.Context) (string, error) {
			id, err := requestID.Get(ctx)
			if err != nil {
				return "", err
			}
			return "handling request " + id, nil
		})
	}

	var wrapped itl.Future[string]
	_, _ = itl.SyncScope(ctx, requestID, "r-42", func(ctx context.Context) (struct{}, error) {
		wrapped = itl.Inherit(ctx, newReader())
		return struct{}{}, nil
	})
	unwrapped := newReader()

	for _, line := range runAll(ctx, []itl.Future[string]{wrapped, unwrapped}) {
		fmt.Println(line)
	}

	// Output:
	// handling request r-42
	// task-local value not set
}
