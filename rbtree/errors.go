package rbtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("rbtree: invalid configuration")
	// ErrOutOfRange signals access to a key or position which is not present.
	ErrOutOfRange = errors.New("rbtree: out of range")
	// ErrLength signals that the tree cannot hold any more nodes.
	ErrLength = errors.New("rbtree: length error")
	// ErrInvalidTree is returned by Check for a violated tree invariant.
	ErrInvalidTree = errors.New("rbtree: invalid tree")
)
