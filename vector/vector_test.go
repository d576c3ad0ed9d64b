package vector

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func assertContents[T comparable](t *testing.T, v *Vector[T], want ...T) {
	t.Helper()
	if v.Len() != len(want) {
		t.Fatalf("length mismatch: got %v (len %d), want %v", v.Data(), v.Len(), want)
	}
	for i := range want {
		if v.Index(i) != want[i] {
			t.Fatalf("mismatch at %d: got %v, want %v", i, v.Data(), want)
		}
	}
}

func TestPushBackCapacityDoubles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()

	v := New[int]()
	if v.Cap() != 0 || v.Len() != 0 {
		t.Fatalf("expected fresh vector without capacity, got len=%d cap=%d", v.Len(), v.Cap())
	}
	var caps []int
	for i := 0; i < 3; i++ {
		v.PushBack(i)
		caps = append(caps, v.Cap())
	}
	if !slices.Equal(caps, []int{1, 2, 4}) {
		t.Fatalf("expected capacities 1,2,4; got %v", caps)
	}
	prev := v.Cap()
	for i := 3; i < 1000; i++ {
		full := v.Len() == v.Cap()
		v.PushBack(i)
		if full {
			if v.Cap() != 2*prev {
				t.Fatalf("push %d: expected capacity %d after growth, got %d", i, 2*prev, v.Cap())
			}
		} else if v.Cap() != prev {
			t.Fatalf("push %d: capacity changed without need (%d -> %d)", i, prev, v.Cap())
		}
		prev = v.Cap()
	}
	if v.Len() != 1000 {
		t.Fatalf("expected 1000 elements, got %d", v.Len())
	}
	for i := 0; i < 1000; i++ {
		if v.Index(i) != i {
			t.Fatalf("element %d = %d", i, v.Index(i))
		}
	}
}

func TestZeroValueVectorIsUsable(t *testing.T) {
	var v Vector[string]
	if !v.Empty() {
		t.Fatalf("zero vector should be empty")
	}
	v.PushBack("a")
	assertContents(t, &v, "a")
}

func TestMakeAndFromSlice(t *testing.T) {
	v, err := Make(3, "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContents(t, v, "x", "x", "x")
	if v.Cap() != 3 {
		t.Fatalf("expected exact capacity 3, got %d", v.Cap())
	}
	if _, err = Make(-1, "x"); !errors.Is(err, ErrLength) {
		t.Fatalf("expected ErrLength for negative count, got %v", err)
	}
	src := []int{1, 2, 3}
	w := FromSlice(src)
	src[0] = 99
	assertContents(t, w, 1, 2, 3)
	c := Collect(slices.Values([]int{4, 5}))
	assertContents(t, c, 4, 5)
}

func TestAtChecksBounds(t *testing.T) {
	v := FromSlice([]int{10, 20})
	if x, err := v.At(1); err != nil || x != 20 {
		t.Fatalf("At(1) = %d, %v", x, err)
	}
	for _, n := range []int{-1, 2, 100} {
		if _, err := v.At(n); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("At(%d): expected ErrOutOfRange, got %v", n, err)
		}
	}
}

func TestFrontBackData(t *testing.T) {
	v := FromSlice([]int{1, 2, 3})
	*v.Front() = 7
	*v.Back() = 9
	assertContents(t, v, 7, 2, 9)
	v.Data()[1] = 8
	assertContents(t, v, 7, 8, 9)
}

func TestPopBack(t *testing.T) {
	v := FromSlice([]int{1, 2, 3})
	v.PopBack()
	assertContents(t, v, 1, 2)
	if v.Cap() != 3 {
		t.Fatalf("PopBack must keep capacity, got %d", v.Cap())
	}
	v.PopBack()
	v.PopBack()
	defer func() {
		if recover() == nil {
			t.Errorf("expected PopBack on empty vector to panic")
		}
	}()
	v.PopBack()
}

func TestInsertWithinCapacity(t *testing.T) {
	v := FromSlice([]int{1, 2, 5})
	if err := v.Reserve(10); err != nil {
		t.Fatal(err)
	}
	pos, err := v.Insert(2, 3, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pos != 2 {
		t.Fatalf("expected position of first inserted element = 2, got %d", pos)
	}
	assertContents(t, v, 1, 2, 3, 4, 5)
	if v.Cap() != 10 {
		t.Fatalf("insert within capacity must not reallocate, cap=%d", v.Cap())
	}
	w := FromSlice([]int{1, 2, 3})
	if err := w.Reserve(10); err != nil {
		t.Fatal(err)
	}
	if _, err = w.Insert(0, w.Data()[1:3]...); err != nil {
		t.Fatal(err)
	}
	assertContents(t, w, 2, 3, 1, 2, 3)
	if _, err = w.Insert(4, w.Data()[:2]...); err != nil {
		t.Fatal(err)
	}
	assertContents(t, w, 2, 3, 1, 2, 2, 3, 3)
}

func TestInsertReallocatesExactly(t *testing.T) {
	v := FromSlice([]int{1, 4})
	pos, err := v.InsertN(1, 2, 0)
	if err != nil || pos != 1 {
		t.Fatalf("InsertN = %d, %v", pos, err)
	}
	assertContents(t, v, 1, 0, 0, 4)
	if v.Cap() != 4 {
		t.Fatalf("expected capacity of exactly size+n = 4, got %d", v.Cap())
	}
	if _, err = v.Insert(v.Len(), 5); err != nil {
		t.Fatal(err)
	}
	assertContents(t, v, 1, 0, 0, 4, 5)
	if _, err = v.Insert(0); err != nil {
		t.Fatalf("empty insert should be a no-op, got %v", err)
	}
	w := FromSlice([]int{1, 2, 3})
	if _, err = w.Insert(0, w.Data()...); err != nil {
		t.Fatal(err)
	}
	assertContents(t, w, 1, 2, 3, 1, 2, 3)
	if w.Cap() != 6 {
		t.Fatalf("expected capacity of exactly size+n = 6, got %d", w.Cap())
	}
	if _, err = v.Insert(7, 1); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange for position past end, got %v", err)
	}
	if _, err = v.InsertN(0, -2, 1); !errors.Is(err, ErrLength) {
		t.Fatalf("expected ErrLength for negative count, got %v", err)
	}
}

func TestEraseKeepsOrder(t *testing.T) {
	v := FromSlice([]int{0, 1, 2, 3, 4, 5, 6})
	pos, err := v.Erase(3)
	if err != nil || pos != 3 {
		t.Fatalf("Erase = %d, %v", pos, err)
	}
	assertContents(t, v, 0, 1, 2, 4, 5, 6)
	if v.Index(pos) != 4 {
		t.Fatalf("expected returned position to denote the following element")
	}
	pos, err = v.EraseRange(1, 4)
	if err != nil || pos != 1 {
		t.Fatalf("EraseRange = %d, %v", pos, err)
	}
	assertContents(t, v, 0, 5, 6)
	if v.Cap() != 7 {
		t.Fatalf("erase must keep capacity, got %d", v.Cap())
	}
	if _, err = v.Erase(3); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if _, err = v.EraseRange(2, 1); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange for inverted range, got %v", err)
	}
	if _, err = v.EraseRange(0, v.Len()); err != nil {
		t.Fatal(err)
	}
	if !v.Empty() {
		t.Fatalf("expected empty vector after erasing everything")
	}
}

func TestEraseReleasesReferences(t *testing.T) {
	a, b := new(int), new(int)
	v := FromSlice([]*int{a, b})
	if _, err := v.Erase(0); err != nil {
		t.Fatal(err)
	}
	if tail := v.Data()[:v.Cap()]; tail[1] != nil {
		t.Fatalf("erased slot must not retain a reference")
	}
}

func TestReserve(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()

	v := FromSlice([]int{1, 2, 3})
	if err := v.Reserve(2); err != nil || v.Cap() != 3 {
		t.Fatalf("Reserve below capacity must be a no-op: cap=%d err=%v", v.Cap(), err)
	}
	if err := v.Reserve(17); err != nil || v.Cap() != 17 {
		t.Fatalf("Reserve(17): cap=%d err=%v", v.Cap(), err)
	}
	assertContents(t, v, 1, 2, 3)
	if err := v.Reserve(v.MaxSize() + 1); !errors.Is(err, ErrLength) {
		t.Fatalf("expected ErrLength beyond MaxSize, got %v", err)
	}
	if v.Cap() != 17 {
		t.Fatalf("failed Reserve must leave capacity unchanged")
	}
}

func TestResize(t *testing.T) {
	v := FromSlice([]int{1, 2, 3, 4})
	if err := v.Resize(2); err != nil {
		t.Fatal(err)
	}
	assertContents(t, v, 1, 2)
	if err := v.ResizeWith(5, 7); err != nil {
		t.Fatal(err)
	}
	assertContents(t, v, 1, 2, 7, 7, 7)
	if err := v.Resize(6); err != nil {
		t.Fatal(err)
	}
	assertContents(t, v, 1, 2, 7, 7, 7, 0)
	if err := v.Resize(-1); !errors.Is(err, ErrLength) {
		t.Fatalf("expected ErrLength, got %v", err)
	}
}

func TestAssign(t *testing.T) {
	v := FromSlice([]int{1, 2, 3, 4})
	v.Assign(9, 8)
	assertContents(t, v, 9, 8)
	if v.Cap() != 4 {
		t.Fatalf("assign within capacity must keep buffer, cap=%d", v.Cap())
	}
	v.Assign(1, 2, 3, 4, 5, 6)
	assertContents(t, v, 1, 2, 3, 4, 5, 6)
	if v.Cap() != 6 {
		t.Fatalf("expected exact capacity 6, got %d", v.Cap())
	}
	v.Assign(v.Data()[2:4]...)
	assertContents(t, v, 3, 4)
	if err := v.AssignN(3, 0); err != nil {
		t.Fatal(err)
	}
	assertContents(t, v, 0, 0, 0)
}

func TestClearKeepsCapacity(t *testing.T) {
	v := FromSlice([]int{1, 2, 3})
	v.Clear()
	if !v.Empty() || v.Cap() != 3 {
		t.Fatalf("Clear: len=%d cap=%d", v.Len(), v.Cap())
	}
}

func TestSwap(t *testing.T) {
	a := FromSlice([]int{1, 2, 3})
	b := New[int]()
	b.Reserve(10)
	data := a.Data()
	a.Swap(b)
	assertContents(t, a)
	assertContents(t, b, 1, 2, 3)
	if a.Cap() != 10 || b.Cap() != 3 {
		t.Fatalf("swap must exchange capacities, got %d and %d", a.Cap(), b.Cap())
	}
	if &b.Data()[0] != &data[0] {
		t.Fatalf("swap must exchange buffers, not copy elements")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a := FromSlice([]int{1, 2, 3})
	b := a.Clone()
	if !Equal(a, b) {
		t.Fatalf("clone must compare equal to original")
	}
	b.PushBack(4)
	b.Set(0, 100)
	assertContents(t, a, 1, 2, 3)
	if Equal(a, b) {
		t.Fatalf("mutated clone must differ")
	}
}

func TestCompare(t *testing.T) {
	a := FromSlice([]int{1, 2, 3})
	b := FromSlice([]int{1, 2, 4})
	c := FromSlice([]int{1, 2})
	if !Less(a, b) || Less(b, a) {
		t.Errorf("expected [1 2 3] < [1 2 4]")
	}
	if !Less(c, a) || Less(a, c) {
		t.Errorf("expected prefix to order first")
	}
	if Less(a, a) {
		t.Errorf("ordering must be irreflexive")
	}
	if Equal(a, c) || !Equal(New[int](), New[int]()) {
		t.Errorf("unexpected equality result")
	}
	rev := func(x, y int) bool { return x > y }
	if !LessFunc(b, a, rev) {
		t.Errorf("expected [1 2 4] before [1 2 3] in reversed element order")
	}
}

func TestIterators(t *testing.T) {
	v := FromSlice([]int{1, 2, 3, 4})
	var fwd []int
	for it := v.Begin(); !it.Equal(v.End()); it = it.Next() {
		fwd = append(fwd, it.Value())
	}
	if !slices.Equal(fwd, []int{1, 2, 3, 4}) {
		t.Fatalf("forward iteration: %v", fwd)
	}
	var bwd []int
	for it := v.RBegin(); !it.Equal(v.REnd()); it = it.Next() {
		bwd = append(bwd, it.Value())
	}
	if !slices.Equal(bwd, []int{4, 3, 2, 1}) {
		t.Fatalf("reverse iteration: %v", bwd)
	}
	if d := v.End().Diff(v.Begin()); d != 4 {
		t.Fatalf("End-Begin = %d", d)
	}
	it := v.Begin().Add(2)
	if it.Value() != 3 || it.At(-1) != 2 || it.Prev().Value() != 2 {
		t.Fatalf("random access mismatch")
	}
	*it.Ptr() = 30
	if v.Index(2) != 30 {
		t.Fatalf("write through iterator failed")
	}
	if !v.Begin().Less(it) || it.Less(v.Begin()) {
		t.Fatalf("iterator ordering mismatch")
	}
	if got := slices.Collect(v.Backward()); !slices.Equal(got, []int{4, 30, 2, 1}) {
		t.Fatalf("Backward: %v", got)
	}
	for i, x := range v.All() {
		if v.Index(i) != x {
			t.Fatalf("All yields (%d, %d)", i, x)
		}
	}
}

func TestIteratorsOfDifferentVectorsPanic(t *testing.T) {
	a, b := FromSlice([]int{1}), FromSlice([]int{1})
	defer func() {
		if recover() == nil {
			t.Errorf("expected ordering iterators of different vectors to panic")
		}
	}()
	a.Begin().Less(b.End())
}

func TestInsertEraseRandomizedAgainstSlice(t *testing.T) {
	v := New[int]()
	var model []int
	for i := 0; i < 500; i++ {
		switch {
		case i%7 == 3 && len(model) > 0:
			pos := (i * 31) % len(model)
			if _, err := v.Erase(pos); err != nil {
				t.Fatal(err)
			}
			model = slices.Delete(model, pos, pos+1)
		case i%5 == 0:
			pos := (i * 17) % (len(model) + 1)
			if _, err := v.InsertN(pos, 2, i); err != nil {
				t.Fatal(err)
			}
			model = slices.Insert(model, pos, i, i)
		default:
			v.PushBack(i)
			model = append(model, i)
		}
		if !slices.Equal(v.Data(), model) {
			t.Fatalf("step %d: vector %v diverged from model %v", i, v.Data(), model)
		}
		if v.Len() > v.Cap() {
			t.Fatalf("size exceeds capacity")
		}
	}
}
