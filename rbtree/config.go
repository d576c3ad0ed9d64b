package rbtree

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// KeyExtractor maps a stored value to the key it is ordered by.
type KeyExtractor[K, V any] interface {
	ExtractKey(value V) K
}

// Identity is the key extractor for trees storing bare keys.
type Identity[K any] struct{}

// ExtractKey returns key unchanged.
func (Identity[K]) ExtractKey(key K) K {
	return key
}

// Pair is a key/value pair, ordered by First when stored with SelectFirst.
type Pair[K, V any] struct {
	First  K
	Second V
}

// MakePair creates a pair.
func MakePair[K, V any](first K, second V) Pair[K, V] {
	return Pair[K, V]{First: first, Second: second}
}

func (p Pair[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// SelectFirst is the key extractor for trees storing pairs.
type SelectFirst[K, V any] struct{}

// ExtractKey returns the first component of p.
func (SelectFirst[K, V]) ExtractKey(p Pair[K, V]) K {
	return p.First
}

// OrderedLess is the natural ordering for ordered key types.
func OrderedLess[K constraints.Ordered](a, b K) bool {
	return a < b
}

// Config configures a red-black tree.
type Config[K, V any] struct {
	// Less is a strict weak ordering on keys.
	Less func(a, b K) bool
	// KeyOf extracts the ordering key from a stored value.
	KeyOf KeyExtractor[K, V]
}

// SetConfig returns the configuration for a tree of bare ordered keys.
func SetConfig[K constraints.Ordered]() Config[K, K] {
	return Config[K, K]{Less: OrderedLess[K], KeyOf: Identity[K]{}}
}

// MapConfig returns the configuration for a tree of pairs with ordered keys.
func MapConfig[K constraints.Ordered, V any]() Config[K, Pair[K, V]] {
	return Config[K, Pair[K, V]]{Less: OrderedLess[K], KeyOf: SelectFirst[K, V]{}}
}

func (cfg Config[K, V]) validate() error {
	if cfg.Less == nil {
		return fmt.Errorf("%w: key comparator is required", ErrInvalidConfig)
	}
	if cfg.KeyOf == nil {
		return fmt.Errorf("%w: key extractor is required", ErrInvalidConfig)
	}
	return nil
}
