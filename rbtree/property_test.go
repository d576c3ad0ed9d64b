package rbtree

import (
	"maps"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// runOps applies a sequence of encoded operations to a tree and to a map
// oracle, checking the invariants after every step.
func runOps(t *testing.T, tree *Tree[int, int], ops []int, keyRange int) {
	t.Helper()
	oracle := make(map[int]struct{})
	for step, op := range ops {
		key := (op >> 1) % keyRange
		_, present := oracle[key]
		if op&1 == 0 {
			it, inserted := tree.Insert(key)
			require.Equal(t, !present, inserted, "step %d: insert %d", step, key)
			require.Equal(t, key, it.Value())
			oracle[key] = struct{}{}
		} else {
			n := tree.Erase(key)
			if present {
				require.Equal(t, 1, n, "step %d: erase %d", step, key)
			} else {
				require.Equal(t, 0, n, "step %d: erase absent %d", step, key)
			}
			delete(oracle, key)
		}
		require.NoError(t, tree.Check(), "step %d", step)
		require.Equal(t, len(oracle), tree.Len(), "step %d", step)
	}
	require.Equal(t, slices.Sorted(maps.Keys(oracle)), slices.Collect(tree.All()))
}

func TestRandomOperationsAgainstOracle(t *testing.T) {
	tree, err := New(SetConfig[int]())
	require.NoError(t, err)
	rnd := rand.New(rand.NewSource(4711))
	ops := make([]int, 10000)
	for i := range ops {
		ops[i] = rnd.Intn(1 << 20)
	}
	runOps(t, tree, ops, 1000)

	for k := 0; k < 1000; k++ {
		it := tree.Find(k)
		lb := tree.LowerBound(k)
		if tree.Contains(k) {
			require.Equal(t, k, it.Value())
			require.True(t, it.Equal(lb))
			require.True(t, tree.UpperBound(k).Equal(it.Next()))
		} else {
			require.True(t, it.IsEnd())
			require.True(t, lb.Equal(tree.UpperBound(k)))
		}
	}
}

func TestRandomCloneAndSwap(t *testing.T) {
	rnd := rand.New(rand.NewSource(99))
	a, err := New(SetConfig[int]())
	require.NoError(t, err)
	for i := 0; i < 2000; i++ {
		a.Insert(rnd.Intn(5000))
	}
	b := a.Clone()
	require.NoError(t, b.Check())
	require.True(t, Equal(a, b))
	for i := 0; i < 500; i++ {
		b.Erase(rnd.Intn(5000))
	}
	require.NoError(t, b.Check())
	want := slices.Collect(b.All())
	wantLen := a.Len()
	a.Swap(b)
	require.Equal(t, want, slices.Collect(a.All()))
	require.Equal(t, wantLen, b.Len())
	require.NoError(t, a.Check())
	require.NoError(t, b.Check())
}

func TestSequentialInsertStaysBalanced(t *testing.T) {
	tree, err := New(SetConfig[int]())
	require.NoError(t, err)
	for i := 0; i < 5000; i++ {
		tree.Insert(i)
	}
	require.NoError(t, tree.Check())
	for i := 4999; i >= 0; i -= 3 {
		require.Equal(t, 1, tree.Erase(i))
	}
	require.NoError(t, tree.Check())
}

func FuzzInsertErase(f *testing.F) {
	f.Add([]byte{5, 3, 8, 1, 4, 7, 9})
	f.Add([]byte{2, 4, 6, 8, 3, 5, 7, 9, 2, 4})
	f.Add([]byte{})
	f.Fuzz(func(t *testing.T, data []byte) {
		tree, err := New(SetConfig[int]())
		require.NoError(t, err)
		ops := make([]int, len(data))
		for i, b := range data {
			ops[i] = int(b)
		}
		runOps(t, tree, ops, 64)
	})
}
