package heap_test

import (
	"cmp"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.llib.dev/datastruct/heap"
	"go.llib.dev/testcase/random"
)

func ExampleNewOrdered() {
	h := heap.NewOrdered[int]()
	h.Push(42, 7, 13)

	h.Pop() // 7, true
	h.Pop() // 13, true
	h.Pop() // 42, true
	h.Pop() // 0, false
}

func drain[T any](h *heap.Heap[T]) []T {
	vs := make([]T, 0, h.Len())
	for {
		v, ok := h.Pop()
		if !ok {
			return vs
		}
		vs = append(vs, v)
	}
}

func TestHeap_pushThenDrain(t *testing.T) {
	h := heap.NewOrdered[int]()
	h.Push(5, 3, 8, 1, 9, 2)

	require.Equal(t, 6, h.Len())
	assert.Equal(t, []int{1, 2, 3, 5, 8, 9}, drain(h))
	assert.True(t, h.IsEmpty())
}

func TestHeap_drainYieldsSortedOrder(t *testing.T) {
	rnd := random.New(random.CryptoSeed{})
	// duplicates are intentional here, a heap must cope with them
	vs := random.Slice(rnd.IntBetween(10, 100), func() int {
		return rnd.IntN(10)
	})

	h := heap.NewOrdered[int]()
	h.Push(vs...)

	assert.Equal(t, slices.Sorted(slices.Values(vs)), drain(h))
}

func TestHeap_FromSlice(t *testing.T) {
	rnd := random.New(random.CryptoSeed{})
	vs := random.Slice(rnd.IntBetween(10, 100), rnd.Int)

	h := heap.FromSlice(cmp.Compare[int], slices.Clone(vs))

	require.Equal(t, len(vs), h.Len())

	t.Run("the storage is arranged into heap order", func(t *testing.T) {
		storage := h.ToSlice()
		for i := 1; i < len(storage); i++ {
			require.LessOrEqual(t, storage[(i-1)/2], storage[i],
				"every value must sort at or after its parent")
		}
	})

	t.Run("the top is the smallest value", func(t *testing.T) {
		top, ok := h.Peek()
		require.True(t, ok)
		require.Equal(t, slices.Min(vs), top)
	})

	t.Run("draining yields the sorted order", func(t *testing.T) {
		assert.Equal(t, slices.Sorted(slices.Values(vs)), drain(h))
	})
}

func TestHeap_Peek(t *testing.T) {
	h := heap.NewOrdered[string]()

	_, ok := h.Peek()
	require.False(t, ok)

	h.Push("foo", "bar", "baz")

	for range 3 {
		v, ok := h.Peek()
		require.True(t, ok, "peek must not consume the top")
		require.Equal(t, "bar", v)
	}
	require.Equal(t, 3, h.Len())
}

func TestHeap_RemoveAt(t *testing.T) {
	t.Run("indexes outside the storage report false", func(t *testing.T) {
		h := heap.NewOrdered[int]()
		h.Push(1, 2, 3)

		_, ok := h.RemoveAt(-1)
		assert.False(t, ok)
		_, ok = h.RemoveAt(3)
		assert.False(t, ok)
		assert.Equal(t, 3, h.Len())
	})

	t.Run("removal from the middle keeps the heap ordered", func(t *testing.T) {
		rnd := random.New(random.CryptoSeed{})
		vs := random.Slice(rnd.IntBetween(10, 100), rnd.Int, random.UniqueValues)

		h := heap.NewOrdered[int]()
		h.Push(vs...)

		i := rnd.IntN(h.Len())
		removed, ok := h.RemoveAt(i)
		require.True(t, ok)
		require.Equal(t, len(vs)-1, h.Len())

		remaining := slices.DeleteFunc(slices.Sorted(slices.Values(vs)), func(v int) bool {
			return v == removed
		})
		assert.Equal(t, remaining, drain(h))
	})
}

func TestHeap_IsEmpty(t *testing.T) {
	h := heap.NewOrdered[int]()
	assert.True(t, h.IsEmpty())

	h.Push(42)
	assert.False(t, h.IsEmpty())

	_, _ = h.Pop()
	assert.True(t, h.IsEmpty())
}

func TestHeap_customOrdering(t *testing.T) {
	h := heap.New[int](func(a, b int) int { return b - a })
	h.Push(5, 3, 8, 1, 9, 2)

	top, ok := h.Peek()
	require.True(t, ok)
	require.Equal(t, 9, top, "a reversed comparison must turn the heap into a max-heap")

	assert.Equal(t, []int{9, 8, 5, 3, 2, 1}, drain(h))
}

func TestHeap_ToSlice(t *testing.T) {
	h := heap.NewOrdered[int]()
	assert.Empty(t, h.ToSlice())

	h.Push(3, 1, 2)

	storage := h.ToSlice()
	storage[0] = -1

	top, _ := h.Peek()
	assert.Equal(t, 1, top, "ToSlice must hand out a copy, not the storage itself")
}
