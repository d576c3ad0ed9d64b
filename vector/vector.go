package vector

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"unsafe"
)

// Vector is a contiguous, growable sequence of T.
//
// A Vector created by
//
//	Vector[T]{}
//
// is a valid, empty vector without capacity.
//
// The backing slice always satisfies len(buf) == Len() and cap(buf) == Cap().
// Growth is managed explicitly by the vector and never left to append.
type Vector[T any] struct {
	buf []T
}

// New creates an empty vector.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// Make creates a vector holding n copies of value, with capacity exactly n.
func Make[T any](n int, value T) (*Vector[T], error) {
	v := &Vector[T]{}
	if err := v.AssignN(n, value); err != nil {
		return nil, err
	}
	return v, nil
}

// FromSlice creates a vector holding a copy of values, with capacity exactly
// len(values).
func FromSlice[T any](values []T) *Vector[T] {
	v := &Vector[T]{}
	v.Assign(values...)
	return v
}

// Collect creates a vector from all values of seq.
func Collect[T any](seq iter.Seq[T]) *Vector[T] {
	v := &Vector[T]{}
	for x := range seq {
		v.PushBack(x)
	}
	return v
}

// Clone returns an independent copy of v. The copy's capacity equals v.Len().
func (v *Vector[T]) Clone() *Vector[T] {
	if v == nil {
		return nil
	}
	return FromSlice(v.buf)
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}
	return len(v.buf)
}

// Cap returns the number of elements the vector can hold without reallocating.
func (v *Vector[T]) Cap() int {
	if v == nil {
		return 0
	}
	return cap(v.buf)
}

// Empty reports whether the vector has no live elements.
func (v *Vector[T]) Empty() bool {
	return v.Len() == 0
}

// MaxSize returns the maximum number of elements a vector of T may be asked to
// hold, derived from the addressable range and the element size.
func (v *Vector[T]) MaxSize() int {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		size = 1
	}
	return math.MaxInt / size
}

// --- Element access --------------------------------------------------------

// At returns the element at index n, or ErrOutOfRange if n is not a live
// position.
func (v *Vector[T]) At(n int) (T, error) {
	if n < 0 || n >= v.Len() {
		var zero T
		return zero, fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, n, v.Len())
	}
	return v.buf[n], nil
}

// Index returns the element at index n without a range check beyond Go's
// own bounds checking.
func (v *Vector[T]) Index(n int) T {
	return v.buf[n]
}

// Ptr returns a pointer to the element at index n. The pointer is valid until
// the next reallocation.
func (v *Vector[T]) Ptr(n int) *T {
	return &v.buf[n]
}

// Set replaces the element at index n.
func (v *Vector[T]) Set(n int, value T) {
	v.buf[n] = value
}

// Front returns a pointer to the first element. v must not be empty.
func (v *Vector[T]) Front() *T {
	assert(v.Len() > 0, "vector.Front called on empty vector")
	return &v.buf[0]
}

// Back returns a pointer to the last element. v must not be empty.
func (v *Vector[T]) Back() *T {
	assert(v.Len() > 0, "vector.Back called on empty vector")
	return &v.buf[len(v.buf)-1]
}

// Data returns the live elements as a slice sharing the vector's buffer.
func (v *Vector[T]) Data() []T {
	if v == nil {
		return nil
	}
	return v.buf
}

// --- Capacity --------------------------------------------------------------

// Reserve ensures a capacity of at least n. If n exceeds the current capacity,
// a new buffer of exactly n elements is allocated and the live elements are
// copied over. Requests beyond MaxSize fail with ErrLength.
func (v *Vector[T]) Reserve(n int) error {
	if n < 0 || n > v.MaxSize() {
		return fmt.Errorf("%w: reserve %d exceeds max size %d", ErrLength, n, v.MaxSize())
	}
	if n <= cap(v.buf) {
		return nil
	}
	v.realloc(n)
	return nil
}

// realloc moves the live elements into a fresh buffer with capacity c.
func (v *Vector[T]) realloc(c int) {
	assert(c >= len(v.buf), "vector.realloc would drop live elements")
	tracer().Debugf("vector: reallocate %d -> %d elements", cap(v.buf), c)
	buf := make([]T, len(v.buf), c)
	copy(buf, v.buf)
	clear(v.buf)
	v.buf = buf
}

// Resize changes the number of live elements to n. Surplus elements are
// dropped, new elements are zero values.
func (v *Vector[T]) Resize(n int) error {
	var zero T
	return v.ResizeWith(n, zero)
}

// ResizeWith changes the number of live elements to n. New elements are
// copies of value.
func (v *Vector[T]) ResizeWith(n int, value T) error {
	if n < 0 {
		return fmt.Errorf("%w: negative size %d", ErrLength, n)
	}
	size := len(v.buf)
	if n < size {
		clear(v.buf[n:])
		v.buf = v.buf[:n]
		return nil
	}
	if err := v.Reserve(n); err != nil {
		return err
	}
	v.buf = v.buf[:n]
	fill(v.buf[size:], value)
	return nil
}

// --- Modifiers -------------------------------------------------------------

// Assign replaces the contents with a copy of values. If the capacity does not
// suffice, a buffer of exactly len(values) is allocated.
func (v *Vector[T]) Assign(values ...T) {
	n := len(values)
	if cap(v.buf) < n {
		buf := make([]T, n)
		copy(buf, values)
		clear(v.buf)
		v.buf = buf
		return
	}
	size := len(v.buf)
	v.buf = v.buf[:n]
	copy(v.buf, values) // values may alias the buffer
	if size > n {
		clear(v.buf[n:size])
	}
}

// AssignN replaces the contents with n copies of value.
func (v *Vector[T]) AssignN(n int, value T) error {
	if n < 0 || n > v.MaxSize() {
		return fmt.Errorf("%w: assign %d elements", ErrLength, n)
	}
	v.Clear()
	if cap(v.buf) < n {
		v.buf = make([]T, n)
	} else {
		v.buf = v.buf[:n]
	}
	fill(v.buf, value)
	return nil
}

// PushBack appends value. A full vector doubles its capacity first, an empty
// one grows to exactly 1.
func (v *Vector[T]) PushBack(value T) {
	if len(v.buf) == cap(v.buf) {
		c := 2 * cap(v.buf)
		if c == 0 {
			c = 1
		}
		v.realloc(c)
	}
	v.buf = append(v.buf, value)
}

// PopBack removes the last element. v must not be empty.
func (v *Vector[T]) PopBack() {
	assert(v.Len() > 0, "vector.PopBack called on empty vector")
	last := len(v.buf) - 1
	var zero T
	v.buf[last] = zero
	v.buf = v.buf[:last]
}

// Insert inserts values before position pos and returns the position of the
// first inserted element. pos must be in [0, Len()].
func (v *Vector[T]) Insert(pos int, values ...T) (int, error) {
	n := len(values)
	if overlaps(v.buf[:cap(v.buf)], values) {
		values = slices.Clone(values)
	}
	if err := v.makeGap(pos, n); err != nil {
		return pos, err
	}
	copy(v.buf[pos:pos+n], values)
	return pos, nil
}

// InsertN inserts n copies of value before position pos and returns the
// position of the first inserted element.
func (v *Vector[T]) InsertN(pos int, n int, value T) (int, error) {
	if err := v.makeGap(pos, n); err != nil {
		return pos, err
	}
	fill(v.buf[pos:pos+n], value)
	return pos, nil
}

// makeGap opens n slots at pos. With sufficient capacity the tail is shifted
// in place, otherwise a buffer of exactly Len()+n is allocated, taking the
// prefix and the suffix on either side of the gap.
func (v *Vector[T]) makeGap(pos int, n int) error {
	size := len(v.buf)
	if pos < 0 || pos > size {
		return fmt.Errorf("%w: insert position %d, size %d", ErrOutOfRange, pos, size)
	}
	if n < 0 || n > v.MaxSize()-size {
		return fmt.Errorf("%w: cannot insert %d elements", ErrLength, n)
	}
	if n == 0 {
		return nil
	}
	if size+n <= cap(v.buf) {
		v.buf = v.buf[:size+n]
		copy(v.buf[pos+n:], v.buf[pos:size])
		return nil
	}
	tracer().Debugf("vector: insert reallocates %d -> %d elements", cap(v.buf), size+n)
	buf := make([]T, size+n)
	copy(buf, v.buf[:pos])
	copy(buf[pos+n:], v.buf[pos:])
	clear(v.buf)
	v.buf = buf
	return nil
}

// Erase removes the element at pos and returns the position of the element
// which followed it.
func (v *Vector[T]) Erase(pos int) (int, error) {
	if pos < 0 || pos >= len(v.buf) {
		return pos, fmt.Errorf("%w: erase position %d, size %d", ErrOutOfRange, pos, len(v.buf))
	}
	return v.EraseRange(pos, pos+1)
}

// EraseRange removes the elements in [first, last) and returns the position
// of the element which followed them.
func (v *Vector[T]) EraseRange(first, last int) (int, error) {
	size := len(v.buf)
	if first < 0 || first > last || last > size {
		return first, fmt.Errorf("%w: erase range [%d, %d), size %d", ErrOutOfRange, first, last, size)
	}
	if first == last {
		return first, nil
	}
	n := copy(v.buf[first:], v.buf[last:])
	clear(v.buf[first+n:])
	v.buf = v.buf[:first+n]
	return first, nil
}

// Clear removes all elements and keeps the capacity.
func (v *Vector[T]) Clear() {
	clear(v.buf)
	v.buf = v.buf[:0]
}

// Swap exchanges the contents of v and other without copying elements.
func (v *Vector[T]) Swap(other *Vector[T]) {
	if v == other {
		return
	}
	v.buf, other.buf = other.buf, v.buf
}

// --- Iteration -------------------------------------------------------------

// All iterates over index/element pairs in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Values iterates over the elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}

// Backward iterates over the elements in reverse order.
func (v *Vector[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := v.Len() - 1; i >= 0; i-- {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}

func fill[T any](s []T, value T) {
	for i := range s {
		s[i] = value
	}
}

// overlaps reports whether a and b share memory.
func overlaps[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	size := unsafe.Sizeof(a[0])
	if size == 0 {
		return false
	}
	a0 := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return a0 < b0+uintptr(len(b))*size && b0 < a0+uintptr(len(a))*size
}
