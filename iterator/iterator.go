package iterator

// Forward is an iterator which can step forward over a sequence of T.
//
// I is the concrete iterator type itself, which lets Next return the
// implementing type without boxing.
type Forward[I any, T any] interface {
	// Value returns the element the iterator denotes.
	Value() T
	// Next returns an iterator to the following position.
	Next() I
	// Equal reports whether both iterators denote the same position.
	Equal(other I) bool
}

// Bidirectional is a Forward iterator which may step backwards as well.
type Bidirectional[I any, T any] interface {
	Forward[I, T]
	// Prev returns an iterator to the preceding position.
	Prev() I
}

// RandomAccess is a Bidirectional iterator with constant time offsets.
type RandomAccess[I any, T any] interface {
	Bidirectional[I, T]
	// Add returns an iterator n positions away. n may be negative.
	Add(n int) I
	// Diff returns the signed distance from other to the receiver.
	Diff(other I) int
	// At returns the element n positions away from the receiver.
	At(n int) T
	// Less reports whether the receiver is positioned before other.
	Less(other I) bool
}
