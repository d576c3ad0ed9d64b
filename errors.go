package containers

import (
	"github.com/npillmayer/containers/rbtree"
	"github.com/npillmayer/containers/vector"
)

// ContainerError is an error type for the containers module
type ContainerError string

func (e ContainerError) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = ContainerError("illegal arguments")

// ErrEmptyContainer is flagged when accessing the top of an empty stack.
const ErrEmptyContainer = ContainerError("container is empty")

// ErrOutOfRange is flagged by Map.At for absent keys.
var ErrOutOfRange = rbtree.ErrOutOfRange

// ErrLength is flagged by Stack.Reserve for requests beyond the maximum size.
var ErrLength = vector.ErrLength
