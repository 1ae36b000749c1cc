// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package itl

import (
	"sync"
	"sync/atomic"

	"github.com/petenewcomb/itl-go/internal/cell"
)

// entry is the type-erased capability record for one declared variable. The
// operations are closures constructed by [New] and therefore bound to the
// declaration's slot and value type.
type entry struct {
	name    string
	probe   func(*Worker) bool
	capture func(*Worker) *cell.Handle
	install func(*Worker, *cell.Handle)
	remove  func(*Worker, *cell.Handle)
}

// registry is the process-wide set of declared inheritable variables. The
// entry list is copy-on-write: reads are plain atomic loads and appends
// clone the list under the mutex. The zero registry is ready to use, which
// makes package initialization order irrelevant.
type registry struct {
	mu      sync.Mutex
	entries atomic.Pointer[[]*entry]
}

var globalRegistry registry

// add appends e and returns its slot index.
func (r *registry) add(e *entry) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	var old []*entry
	if p := r.entries.Load(); p != nil {
		old = *p
	}
	slot := len(old)
	grown := make([]*entry, slot+1)
	copy(grown, old)
	grown[slot] = e
	r.entries.Store(&grown)
	return slot
}

// all returns the entry list as of the call. Entries added later are not
// included; see the late-declaration caveat on [New].
func (r *registry) all() []*entry {
	if p := r.entries.Load(); p != nil {
		return *p
	}
	return nil
}
