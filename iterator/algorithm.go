package iterator

import "golang.org/x/exp/constraints"

// Distance counts the steps from first to last. last must be reachable from
// first.
func Distance[I Forward[I, T], T any](first, last I) int {
	n := 0
	for ; !first.Equal(last); first = first.Next() {
		n++
	}
	return n
}

// Equal reports whether the range [first1, last1) is element-wise equal to the
// range of the same length starting at first2.
func Equal[I1 Forward[I1, T], I2 Forward[I2, T], T comparable](first1, last1 I1, first2 I2) bool {
	return EqualFunc(first1, last1, first2, func(a, b T) bool { return a == b })
}

// EqualFunc is like Equal, but compares elements with eq.
func EqualFunc[I1 Forward[I1, T], I2 Forward[I2, T], T any](first1, last1 I1, first2 I2, eq func(a, b T) bool) bool {
	for ; !first1.Equal(last1); first1, first2 = first1.Next(), first2.Next() {
		if !eq(first1.Value(), first2.Value()) {
			return false
		}
	}
	return true
}

// LexicographicalLess reports whether [first1, last1) orders before
// [first2, last2). A proper prefix orders before the longer range.
func LexicographicalLess[I1 Forward[I1, T], I2 Forward[I2, T], T constraints.Ordered](first1, last1 I1, first2, last2 I2) bool {
	return LexicographicalLessFunc(first1, last1, first2, last2, func(a, b T) bool { return a < b })
}

// LexicographicalLessFunc is like LexicographicalLess with a custom strict
// weak ordering.
func LexicographicalLessFunc[I1 Forward[I1, T], I2 Forward[I2, T], T any](first1, last1 I1, first2, last2 I2, less func(a, b T) bool) bool {
	for ; !first1.Equal(last1) && !first2.Equal(last2); first1, first2 = first1.Next(), first2.Next() {
		a, b := first1.Value(), first2.Value()
		if less(a, b) {
			return true
		}
		if less(b, a) {
			return false
		}
	}
	return first1.Equal(last1) && !first2.Equal(last2)
}
