package datastructcontract

import (
	"testing"

	"go.llib.dev/datastruct"
	"go.llib.dev/datastruct/contract"
	"go.llib.dev/datastruct/internal/iterkit"
	"go.llib.dev/datastruct/internal/slicekit"
	"go.llib.dev/datastruct/internal/spechelper"
	"go.llib.dev/datastruct/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

// List is the contract of the datastruct.List role.
// It makes no assumption about element ordering;
// implementations with a defined order should also run OrderedList.
func List[T any](mk contract.Make[datastruct.List[T]], opts ...ListOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[ListConfig[T]](opts)

	subject := let.Var(s, func(t *testcase.T) datastruct.List[T] {
		return mk(t)
	})

	s.Test("a fresh instance starts empty", func(t *testcase.T) {
		assert.Equal(t, 0, subject.Get(t).Len())
		assert.Empty(t, subject.Get(t).ToSlice())
		assert.Empty(t, iterkit.Collect(subject.Get(t).Iter()))
	})

	s.Test("appended values become elements of the list", func(t *testcase.T) {
		vs := uniqueValues(t, c.MakeT, 3, 7)

		subject.Get(t).Append(vs...)

		assert.Equal(t, len(vs), subject.Get(t).Len())
		assert.ContainExactly(t, vs, subject.Get(t).ToSlice())
	})

	s.Test("appending one value at a time accumulates the same elements", func(t *testcase.T) {
		vs := uniqueValues(t, c.MakeT, 3, 7)

		for _, v := range vs {
			subject.Get(t).Append(v)
		}

		assert.Equal(t, len(vs), subject.Get(t).Len())
		assert.ContainExactly(t, vs, subject.Get(t).ToSlice())
	})

	s.Test("appending nothing changes nothing", func(t *testcase.T) {
		vs := uniqueValues(t, c.MakeT, 1, 3)
		subject.Get(t).Append(vs...)

		subject.Get(t).Append()

		assert.Equal(t, len(vs), subject.Get(t).Len())
	})

	s.Test("iteration yields the same elements as ToSlice", func(t *testcase.T) {
		subject.Get(t).Append(uniqueValues(t, c.MakeT, 3, 7)...)

		assert.ContainExactly(t,
			subject.Get(t).ToSlice(),
			iterkit.Collect(subject.Get(t).Iter()))
	})

	s.Test("iteration is nondestructive and restartable", func(t *testcase.T) {
		vs := uniqueValues(t, c.MakeT, 3, 7)
		subject.Get(t).Append(vs...)

		i := subject.Get(t).Iter()
		for range i {
			break
		}

		assert.Equal(t, len(vs), iterkit.Count(i))
		assert.Equal(t, len(vs), subject.Get(t).Len())
		assert.ContainExactly(t, vs, iterkit.Collect(i))
	})

	return s.AsSuite("List")
}

// OrderedList is the contract of datastruct.List implementations
// that keep their elements in the order the values were appended.
func OrderedList[T any](mk contract.Make[datastruct.List[T]], opts ...ListOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[ListConfig[T]](opts)

	testcase.RunSuite(s, List(mk, opts...))

	s.Context("ordering", func(s *testcase.Spec) {
		subject := let.Var(s, func(t *testcase.T) datastruct.List[T] {
			return mk(t)
		})

		s.Test("Append preserves the received value order", func(t *testcase.T) {
			vs := uniqueValues(t, c.MakeT, 3, 7)

			subject.Get(t).Append(vs...)

			assert.Equal(t, vs, subject.Get(t).ToSlice())
		})

		s.Test("consecutive Append calls concatenate", func(t *testcase.T) {
			first := uniqueValues(t, c.MakeT, 1, 3)
			second := uniqueValues(t, c.MakeT, 1, 3)

			subject.Get(t).Append(first...)
			subject.Get(t).Append(second...)

			assert.Equal(t, slicekit.Merge(first, second), subject.Get(t).ToSlice())
		})

		s.Test("iteration walks in the same order as ToSlice", func(t *testcase.T) {
			subject.Get(t).Append(uniqueValues(t, c.MakeT, 3, 7)...)

			assert.Equal(t,
				subject.Get(t).ToSlice(),
				iterkit.Collect(subject.Get(t).Iter()))
		})
	})

	return s.AsSuite("OrderedList")
}

// Sequence is the contract of the datastruct.Sequence role,
// where elements are also addressable by their index.
func Sequence[T any](mk contract.Make[datastruct.Sequence[T]], opts ...ListOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[ListConfig[T]](opts)

	testcase.RunSuite(s, OrderedList(func(tb testing.TB) datastruct.List[T] {
		return mk(tb)
	}, opts...))

	s.Context("index addressing", func(s *testcase.Spec) {
		var (
			values = let.Var(s, func(t *testcase.T) []T {
				return uniqueValues(t, c.MakeT, 3, 7)
			})
			subject = let.Var(s, func(t *testcase.T) datastruct.Sequence[T] {
				seq := mk(t)
				seq.Append(values.Get(t)...)
				return seq
			})
		)

		s.Test("Lookup matches the iteration order", func(t *testcase.T) {
			for i, v := range subject.Get(t).ToSlice() {
				got, ok := subject.Get(t).Lookup(i)
				assert.True(t, ok)
				assert.Equal(t, v, got)
			}
		})

		s.Test("Lookup reports false outside the range", func(t *testcase.T) {
			_, ok := subject.Get(t).Lookup(subject.Get(t).Len())
			assert.False(t, ok)

			_, ok = subject.Get(t).Lookup(subject.Get(t).Len() + t.Random.IntN(42))
			assert.False(t, ok)

			_, ok = subject.Get(t).Lookup(-1 * t.Random.IntBetween(1, 42))
			assert.False(t, ok)
		})
	})

	return s.AsSuite("Sequence")
}

// ListOption configures the List, OrderedList and Sequence contracts.
type ListOption[T any] interface {
	option.Option[ListConfig[T]]
}

// ListConfig holds the configuration of the List, OrderedList and Sequence
// contracts. A ListConfig value can be passed directly as a contract option.
type ListConfig[T any] struct {
	// MakeT creates an element value for the contract's test cases.
	MakeT func(tb testing.TB) T
}

func (c *ListConfig[T]) Init() {
	c.MakeT = spechelper.MakeValue[T]
}

func (c ListConfig[T]) Configure(oth *ListConfig[T]) {
	if c.MakeT != nil {
		oth.MakeT = c.MakeT
	}
}
