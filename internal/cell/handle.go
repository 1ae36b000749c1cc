// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.
package cell

// Handle boxes a scoped value so that multiple tasks can observe the same
// value without copying it. The boxed value is immutable for the life of the
// handle; sharing is by pointer and lifetime is managed by the garbage
// collector.
type Handle struct {
	value any
}

func NewHandle(value any) *Handle {
	return &Handle{value: value}
}

func (h *Handle) Value() any {
	return h.value
}
