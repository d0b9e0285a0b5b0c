package datastructcontract

import (
	"testing"

	"go.llib.dev/datastruct"
	"go.llib.dev/datastruct/contract"
	"go.llib.dev/datastruct/internal/slicekit"
	"go.llib.dev/datastruct/internal/spechelper"
	"go.llib.dev/datastruct/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

// Deque is the contract of the datastruct.Deque role.
func Deque[T any](mk contract.Make[datastruct.Deque[T]], opts ...DequeOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[DequeConfig[T]](opts)

	subject := let.Var(s, func(t *testcase.T) datastruct.Deque[T] {
		return mk(t)
	})

	s.Test("a fresh instance starts empty", func(t *testcase.T) {
		assert.Equal(t, 0, subject.Get(t).Len())

		_, ok := subject.Get(t).Shift()
		assert.False(t, ok)

		_, ok = subject.Get(t).Pop()
		assert.False(t, ok)
	})

	s.Test("Shift consumes appended values from the front", func(t *testcase.T) {
		vs := uniqueValues(t, c.MakeT, 3, 7)
		subject.Get(t).Append(vs...)

		for _, expected := range vs {
			got, ok := subject.Get(t).Shift()
			assert.True(t, ok)
			assert.Equal(t, expected, got)
		}
		assert.Equal(t, 0, subject.Get(t).Len())
	})

	s.Test("Pop consumes appended values from the back", func(t *testcase.T) {
		vs := uniqueValues(t, c.MakeT, 3, 7)
		subject.Get(t).Append(vs...)

		for _, expected := range slicekit.IterReverse(vs) {
			got, ok := subject.Get(t).Pop()
			assert.True(t, ok)
			assert.Equal(t, expected, got)
		}
		assert.Equal(t, 0, subject.Get(t).Len())
	})

	s.Test("Prepend keeps the received value order", func(t *testcase.T) {
		vs := uniqueValues(t, c.MakeT, 3, 7)
		subject.Get(t).Prepend(vs...)

		for _, expected := range vs {
			got, ok := subject.Get(t).Shift()
			assert.True(t, ok)
			assert.Equal(t, expected, got)
		}
	})

	s.Test("Prepend places values before the existing ones", func(t *testcase.T) {
		tail := uniqueValues(t, c.MakeT, 1, 3)
		head := uniqueValues(t, c.MakeT, 1, 3)
		subject.Get(t).Append(tail...)
		subject.Get(t).Prepend(head...)

		for _, expected := range slicekit.Merge(head, tail) {
			got, ok := subject.Get(t).Shift()
			assert.True(t, ok)
			assert.Equal(t, expected, got)
		}
	})

	s.Test("use from both ends agrees with a reference deque", func(t *testcase.T) {
		var pending []T
		t.Random.Repeat(10, 20, func() {
			switch t.Random.IntN(4) {
			case 0:
				v := random.Unique(func() T { return c.MakeT(t) }, pending...)
				subject.Get(t).Append(v)
				pending = append(pending, v)
			case 1:
				v := random.Unique(func() T { return c.MakeT(t) }, pending...)
				subject.Get(t).Prepend(v)
				pending = append([]T{v}, pending...)
			case 2:
				v, ok := subject.Get(t).Shift()
				if len(pending) == 0 {
					assert.False(t, ok)
				} else {
					assert.True(t, ok)
					assert.Equal(t, pending[0], v)
					pending = pending[1:]
				}
			case 3:
				v, ok := subject.Get(t).Pop()
				if len(pending) == 0 {
					assert.False(t, ok)
				} else {
					assert.True(t, ok)
					assert.Equal(t, pending[len(pending)-1], v)
					pending = pending[:len(pending)-1]
				}
			}
			assert.Equal(t, len(pending), subject.Get(t).Len())
		})
	})

	return s.AsSuite("Deque")
}

// DequeOption configures the Deque contract.
type DequeOption[T any] interface {
	option.Option[DequeConfig[T]]
}

// DequeConfig holds the configuration of the Deque contract.
// A DequeConfig value can be passed directly as a contract option.
type DequeConfig[T any] struct {
	// MakeT creates an element value for the contract's test cases.
	MakeT func(tb testing.TB) T
}

func (c *DequeConfig[T]) Init() {
	c.MakeT = spechelper.MakeValue[T]
}

func (c DequeConfig[T]) Configure(oth *DequeConfig[T]) {
	if c.MakeT != nil {
		oth.MakeT = c.MakeT
	}
}
