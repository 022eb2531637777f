// Package stack provides the object stack that rules read their current
// target from while a document is being walked.
package stack

import "errors"

var ErrEmptyStack = errors.New("object stack is empty")

// Stack is a LIFO of in-construction objects. The zero value is ready to use.
// It is not safe for concurrent use; the digester drives it from a single
// goroutine.
type Stack struct {
	items []any
}

func (s *Stack) Push(obj any) {
	s.items = append(s.items, obj)
}

// Pop removes and returns the top object.
func (s *Stack) Pop() (any, error) {
	if len(s.items) == 0 {
		return nil, ErrEmptyStack
	}

	top := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return top, nil
}

// Peek returns the top object without removing it.
func (s *Stack) Peek() (any, error) {
	if len(s.items) == 0 {
		return nil, ErrEmptyStack
	}

	return s.items[len(s.items)-1], nil
}

func (s *Stack) Len() int { return len(s.items) }

// Clear drops all objects, readying the stack for another parse run.
func (s *Stack) Clear() { s.items = s.items[:0] }
