package iterator

// Reverse adapts a bidirectional iterator to traverse in reverse order.
//
// Reverse keeps the base iterator one position after the element it denotes,
// so that the reverse range of [first, last) is [Reverse(last), Reverse(first)).
type Reverse[I Bidirectional[I, T], T any] struct {
	current I
}

// MakeReverse wraps base.
func MakeReverse[I Bidirectional[I, T], T any](base I) Reverse[I, T] {
	return Reverse[I, T]{current: base}
}

// Base returns the underlying iterator, which is positioned one after the
// element r denotes.
func (r Reverse[I, T]) Base() I {
	return r.current
}

// Value returns the element preceding the base position.
func (r Reverse[I, T]) Value() T {
	return r.current.Prev().Value()
}

// Next steps towards the front of the underlying sequence.
func (r Reverse[I, T]) Next() Reverse[I, T] {
	return Reverse[I, T]{current: r.current.Prev()}
}

// Prev steps towards the back of the underlying sequence.
func (r Reverse[I, T]) Prev() Reverse[I, T] {
	return Reverse[I, T]{current: r.current.Next()}
}

// Equal compares base positions.
func (r Reverse[I, T]) Equal(other Reverse[I, T]) bool {
	return r.current.Equal(other.current)
}

// ReverseRandom adapts a random access iterator to traverse in reverse order.
// Offsets and distances are mirrored.
type ReverseRandom[I RandomAccess[I, T], T any] struct {
	current I
}

// MakeReverseRandom wraps base.
func MakeReverseRandom[I RandomAccess[I, T], T any](base I) ReverseRandom[I, T] {
	return ReverseRandom[I, T]{current: base}
}

// Base returns the underlying iterator.
func (r ReverseRandom[I, T]) Base() I {
	return r.current
}

func (r ReverseRandom[I, T]) Value() T {
	return r.current.Prev().Value()
}

func (r ReverseRandom[I, T]) Next() ReverseRandom[I, T] {
	return ReverseRandom[I, T]{current: r.current.Prev()}
}

func (r ReverseRandom[I, T]) Prev() ReverseRandom[I, T] {
	return ReverseRandom[I, T]{current: r.current.Next()}
}

func (r ReverseRandom[I, T]) Equal(other ReverseRandom[I, T]) bool {
	return r.current.Equal(other.current)
}

// Add moves n positions towards the front of the underlying sequence.
func (r ReverseRandom[I, T]) Add(n int) ReverseRandom[I, T] {
	return ReverseRandom[I, T]{current: r.current.Add(-n)}
}

// Diff returns the distance from other to r in reverse order.
func (r ReverseRandom[I, T]) Diff(other ReverseRandom[I, T]) int {
	return other.current.Diff(r.current)
}

// At returns the element n positions after r in reverse order.
func (r ReverseRandom[I, T]) At(n int) T {
	return r.Add(n).Value()
}

// Less reports whether r comes before other in reverse order.
func (r ReverseRandom[I, T]) Less(other ReverseRandom[I, T]) bool {
	return other.current.Less(r.current)
}
