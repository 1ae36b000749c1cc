// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.
package cell

// Table maps variable slots to their stacks for one worker. Slots are dense
// indexes handed out by the declaration registry. The zero Table is ready to
// use; it grows on demand and never shrinks.
type Table struct {
	stacks []*Stack
}

// Stack returns the stack for the given slot, growing the table as needed.
func (t *Table) Stack(slot int) *Stack {
	if slot >= len(t.stacks) {
		grown := make([]*Stack, slot+1)
		copy(grown, t.stacks)
		t.stacks = grown
	}
	s := t.stacks[slot]
	if s == nil {
		s = &Stack{}
		t.stacks[slot] = s
	}
	return s
}

// Peek returns the innermost handle for the given slot without growing the
// table. The second result is false if the slot has no active value.
func (t *Table) Peek(slot int) (*Handle, bool) {
	if slot >= len(t.stacks) || t.stacks[slot] == nil {
		return nil, false
	}
	return t.stacks[slot].Top()
}
