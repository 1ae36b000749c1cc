// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package itl

type constError string

func (e constError) Error() string {
	return string(e)
}

// ErrNotSet is returned by [Var.Get] and [Var.With] when no value is active
// for the variable in the calling context.
const ErrNotSet = constError("task-local value not set")

// ErrNoWorker is returned by [Var.Get] and [Var.With] when the calling
// context has no bound [Worker], meaning the caller is not running under a
// task system at all.
const ErrNoWorker = constError("no worker bound to context")
