// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.
package cell

import "github.com/gammazero/deque"

// Stack holds the handles active for one variable on one worker, innermost
// scope last. Not safe for concurrent use; a worker is driven by at most one
// goroutine at a time.
type Stack struct {
	handles deque.Deque[*Handle]
}

func (s *Stack) Push(h *Handle) {
	s.handles.PushBack(h)
}

// Pop removes and returns the innermost handle, or false if the stack is
// empty.
func (s *Stack) Pop() (*Handle, bool) {
	if s.handles.Len() == 0 {
		return nil, false
	}
	return s.handles.PopBack(), true
}

// Top returns the innermost handle without removing it, or false if the
// stack is empty.
func (s *Stack) Top() (*Handle, bool) {
	if s.handles.Len() == 0 {
		return nil, false
	}
	return s.handles.Back(), true
}

func (s *Stack) Len() int {
	return s.handles.Len()
}
