// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package exec is a minimal poll-loop host used to test the itl package
// against the integration contract it documents: a spawn function that
// accepts any pollable unit of work and a loop that repeatedly polls
// not-yet-completed tasks, binding an [itl.Worker] into each poll's context
// and freely migrating tasks between workers from one poll to the next.
//
// [Executor.Run] drives everything on the calling goroutine over a virtual
// clock, so schedules are deterministic and tests involving time complete
// immediately. Ready-task and worker choices can be overridden to explore
// alternative schedules, including rapid-driven exploration via [RapidPicks].
// [Executor.RunParallel] instead polls with one goroutine per worker for
// race coverage.
package exec
