// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.
package cell_test

import (
	"testing"

	"github.com/petenewcomb/itl-go/internal/cell"
	"github.com/stretchr/testify/require"
)

func TestHandleIdentity(t *testing.T) {
	chk := require.New(t)

	v := []int{1, 2, 3}
	h := cell.NewHandle(v)
	chk.Equal(v, h.Value())

	// Two handles boxing equal values are still distinct handles.
	h2 := cell.NewHandle(v)
	chk.NotSame(h, h2)
	chk.Equal(h.Value(), h2.Value())
}

func TestStackLIFO(t *testing.T) {
	chk := require.New(t)

	var s cell.Stack
	_, ok := s.Pop()
	chk.False(ok)
	_, ok = s.Top()
	chk.False(ok)
	chk.Zero(s.Len())

	a := cell.NewHandle(1)
	b := cell.NewHandle(2)
	s.Push(a)
	s.Push(b)
	chk.Equal(2, s.Len())

	top, ok := s.Top()
	chk.True(ok)
	chk.Same(b, top)
	chk.Equal(2, s.Len())

	h, ok := s.Pop()
	chk.True(ok)
	chk.Same(b, h)
	h, ok = s.Pop()
	chk.True(ok)
	chk.Same(a, h)
	_, ok = s.Pop()
	chk.False(ok)
}

func TestTableGrowth(t *testing.T) {
	chk := require.New(t)

	var tab cell.Table
	_, ok := tab.Peek(0)
	chk.False(ok)

	h := cell.NewHandle("x")
	tab.Stack(3).Push(h)

	got, ok := tab.Peek(3)
	chk.True(ok)
	chk.Same(h, got)

	// Slots below the grown one exist but are empty.
	_, ok = tab.Peek(2)
	chk.False(ok)
	// Peek beyond the table never grows it and never panics.
	_, ok = tab.Peek(1000)
	chk.False(ok)

	// The same slot yields the same stack across calls.
	chk.Same(tab.Stack(3), tab.Stack(3))
}

func TestTableSlotIsolation(t *testing.T) {
	chk := require.New(t)

	var tab cell.Table
	a := cell.NewHandle(1)
	b := cell.NewHandle(2)
	tab.Stack(0).Push(a)
	tab.Stack(1).Push(b)

	got, ok := tab.Peek(0)
	chk.True(ok)
	chk.Same(a, got)
	got, ok = tab.Peek(1)
	chk.True(ok)
	chk.Same(b, got)

	tab.Stack(0).Pop()
	_, ok = tab.Peek(0)
	chk.False(ok)
	got, ok = tab.Peek(1)
	chk.True(ok)
	chk.Same(b, got)
}
