// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package itl provides inheritable task-local values for cooperatively
// scheduled, poll-driven task systems. A task normally owns private scoped
// storage that is invisible to the tasks it spawns; itl adds a declarative
// mechanism that lets specific variables propagate automatically from a
// parent task to any child task it spawns, without copying the value and
// without the spawn call site knowing which variables exist. Typical uses
// are trace identifiers, request-scoped configuration, and tenant
// identifiers that must follow work across task boundaries the scheduler
// itself does not bridge.
//
// Variables are declared once, at package initialization time, with [New].
// Entering a scope ([Scope] or [SyncScope]) makes a value active for the
// duration of that scope on the worker executing it. Wrapping a future with
// [Inherit] captures a snapshot of the values active at that moment; every
// subsequent poll of the wrapper splices the snapshot into the polling
// worker's storage, polls the inner future exactly once, and restores the
// prior state before returning. Values are shared by handle, never copied,
// so inheritance cost is proportional to the number of active variables
// rather than to value size.
//
// The itl package does not include a scheduler. It attaches to any host that
// polls [Future] values and binds a [Worker] into the context it polls with;
// see [WithWorker] for the integration contract. Propagation is in-process
// only.
package itl
