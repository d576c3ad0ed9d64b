package vector

import "errors"

var (
	// ErrOutOfRange signals an index or position outside of the live elements.
	ErrOutOfRange = errors.New("vector: index out of range")
	// ErrLength signals a requested length beyond MaxSize, or a negative count.
	ErrLength = errors.New("vector: length error")
)
