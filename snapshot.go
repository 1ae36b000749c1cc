// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package itl

import (
	"strings"

	"github.com/petenewcomb/itl-go/internal/cell"
)

// snapshot records the variables that were active at wrap time, each paired
// with the shared handle that was innermost on the capturing worker.
// Immutable once built; owned exclusively by the wrapper that captured it.
type snapshot struct {
	pairs []snapshotPair
}

type snapshotPair struct {
	entry  *entry
	handle *cell.Handle
}

var emptySnapshot = &snapshot{}

// captureSnapshot walks the registered declarations in slot order and
// records a shared handle for each one active on w.
func captureSnapshot(w *Worker) *snapshot {
	var pairs []snapshotPair
	for _, e := range globalRegistry.all() {
		if !e.probe(w) {
			continue
		}
		pairs = append(pairs, snapshotPair{entry: e, handle: e.capture(w)})
	}
	if len(pairs) == 0 {
		return emptySnapshot
	}
	return &snapshot{pairs: pairs}
}

// install pushes each captured handle as the active value on w. Every
// install must be paired with exactly one restore on the same worker before
// the poll that performed it returns.
func (s *snapshot) install(w *Worker) {
	for _, p := range s.pairs {
		p.entry.install(w, p.handle)
	}
}

// restore pops the handles pushed by the matching install, innermost first.
// Restoring without a matching install panics.
func (s *snapshot) restore(w *Worker) {
	for i := len(s.pairs) - 1; i >= 0; i-- {
		p := s.pairs[i]
		p.entry.remove(w, p.handle)
	}
}

// String lists the captured variable names. Values are deliberately omitted.
func (s *snapshot) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, p := range s.pairs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.entry.name)
	}
	b.WriteByte(']')
	return b.String()
}
