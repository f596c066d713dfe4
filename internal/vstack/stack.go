// Package vstack implements the language's singly linked Value stacks: the
// two operand stacks (primary and stash) and the parse-time build
// sequences the lexer assembles, which share the exact same structure
// (push at head, pop from head, pushTail to build in source order, and an
// optional outer link used only while a sequence is open).
package vstack

import "github.com/wmalkin/rgbforth/internal/value"

// Stack is a singly linked list of *value.Value, used both as an operand
// stack (head-only) and as a Sequence under construction (head and tail,
// plus an Outer link to the sequence it is nested in while open).
//
// A closed Stack (one that has been handed off as a finished Sequence) has
// a nil Outer, per data-model invariant 2.
type Stack struct {
	head, tail *value.Value
	Outer      *Stack
}

// New returns an empty Stack, optionally nested inside outer (outer is nil
// for a top-level stack or either operand stack).
func New(outer *Stack) *Stack { return &Stack{Outer: outer} }

// Push prepends v, making it the new top of stack.
func (s *Stack) Push(v *value.Value) {
	v.Next = s.head
	s.head = v
	if s.tail == nil {
		s.tail = v
	}
}

// PushTail appends v after the current tail, preserving source order; used
// by the compiler while building a Sequence.
func (s *Stack) PushTail(v *value.Value) {
	v.Next = nil
	if s.tail != nil {
		s.tail.Next = v
		s.tail = v
	} else {
		s.head, s.tail = v, v
	}
}

// Pop removes and returns the top of stack, or nil if empty. Per the
// "stack underflow" error policy, callers read a nil Pop as zero/empty
// rather than treating it as an error.
func (s *Stack) Pop() *value.Value {
	v := s.head
	if v == nil {
		return nil
	}
	s.head = v.Next
	if s.head == nil {
		s.tail = nil
	}
	v.Next = nil
	return v
}

// Top returns the top of stack without popping it, or nil if empty.
func (s *Stack) Top() *value.Value { return s.head }

// Back returns the tail (bottom, or most recently pushTail-ed) element.
func (s *Stack) Back() *value.Value { return s.tail }

// Size walks the stack and counts its elements.
func (s *Stack) Size() int {
	n := 0
	for v := s.head; v != nil; v = v.Next {
		n++
	}
	return n
}

// At returns the n-th element from the top (0 = top), or nil if n is out
// of range.
func (s *Stack) At(n int) *value.Value {
	for v := s.head; v != nil; v = v.Next {
		if n == 0 {
			return v
		}
		n--
	}
	return nil
}

// Reverse reverses the stack in place.
func (s *Stack) Reverse() {
	var prev *value.Value
	cur := s.head
	s.tail = s.head
	for cur != nil {
		next := cur.Next
		cur.Next = prev
		prev = cur
		cur = next
	}
	s.head = prev
}

// Clear releases every Value on the stack back into arena.
func (s *Stack) Clear(arena *value.Arena) {
	v := s.head
	for v != nil {
		next := v.Next
		arena.Free(v)
		v = next
	}
	s.head, s.tail = nil, nil
}

// Walk visits every element from head to tail in order, satisfying
// value.Sequence so a Stack can be captured as a SEQ or FUNC payload.
func (s *Stack) Walk(fn func(*value.Value)) {
	for v := s.head; v != nil; v = v.Next {
		fn(v)
	}
}

// CloseSequence closes s (clearing its Outer link per invariant 2). If
// s was nested inside an outer sequence, s is appended to that outer
// sequence's tail as a SEQ value (wrapped via arena) and the outer
// sequence is returned; a top-level s (no Outer) is returned unchanged,
// matching ValueStack::closeSequence's behaviour on an unmatched `]`.
func (s *Stack) CloseSequence(arena *value.Arena) *Stack {
	if s.Outer == nil {
		return s
	}
	outer := s.Outer
	s.Outer = nil
	outer.PushTail(arena.Seq(s))
	return outer
}

// Clone returns a deep copy of s: every element is cloned via arena, and
// any nested SEQ elements are themselves deep-cloned (recursively), so
// that a dictionary-bound SEQ never aliases the top-level sequence it was
// parsed from. This backs the "deep copy taken when a SEQ is bound into
// the dictionary" ownership rule.
func (s *Stack) Clone(arena *value.Arena) *Stack {
	clone := New(nil)
	for v := s.head; v != nil; v = v.Next {
		cv := arena.Clone(v)
		if v.Kind == value.SEQ {
			if inner, ok := v.AsSeq().(*Stack); ok {
				innerClone := inner.Clone(arena)
				cv = arena.Seq(innerClone)
			}
		}
		clone.PushTail(cv)
	}
	return clone
}
