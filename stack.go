package containers

import (
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/npillmayer/containers/vector"
)

// Stack is a last-in, first-out adaptor over a vector. The zero value is an
// empty stack.
type Stack[T any] struct {
	v vector.Vector[T]
}

// NewStack creates an empty stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push puts value on top of the stack.
func (s *Stack[T]) Push(value T) {
	s.v.PushBack(value)
}

// Pop removes and returns the top element. Popping an empty stack fails with
// ErrEmptyContainer.
func (s *Stack[T]) Pop() (T, error) {
	top, err := s.Top()
	if err != nil {
		return top, err
	}
	s.v.PopBack()
	return top, nil
}

// Top returns the top element without removing it.
func (s *Stack[T]) Top() (T, error) {
	if s.v.Empty() {
		var zero T
		return zero, fmt.Errorf("%w: stack has no top element", ErrEmptyContainer)
	}
	return *s.v.Back(), nil
}

func (s *Stack[T]) Len() int {
	return s.v.Len()
}

func (s *Stack[T]) Empty() bool {
	return s.v.Empty()
}

// Reserve makes room for n elements without further allocation.
func (s *Stack[T]) Reserve(n int) error {
	return s.v.Reserve(n)
}

// All iterates over the elements from bottom to top.
func (s *Stack[T]) All() iter.Seq[T] {
	return s.v.Values()
}

// StackEqual reports whether a and b hold equal elements in equal order.
func StackEqual[T comparable](a, b *Stack[T]) bool {
	return vector.Equal(&a.v, &b.v)
}

// StackLess reports whether a orders lexicographically before b, comparing
// from bottom to top.
func StackLess[T constraints.Ordered](a, b *Stack[T]) bool {
	return vector.Less(&a.v, &b.v)
}
