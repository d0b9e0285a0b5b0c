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

// Stack is the contract of the datastruct.Stack role.
func Stack[T any](mk contract.Make[datastruct.Stack[T]], opts ...StackOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[StackConfig[T]](opts)

	subject := let.Var(s, func(t *testcase.T) datastruct.Stack[T] {
		return mk(t)
	})

	s.Test("a fresh instance starts empty", func(t *testcase.T) {
		assert.Equal(t, 0, subject.Get(t).Len())

		_, ok := subject.Get(t).Pop()
		assert.False(t, ok)

		_, ok = subject.Get(t).Last()
		assert.False(t, ok)
	})

	s.Test("values come out in the reverse of the order they went in", func(t *testcase.T) {
		vs := uniqueValues(t, c.MakeT, 3, 7)
		for _, v := range vs {
			subject.Get(t).Push(v)
		}
		assert.Equal(t, len(vs), subject.Get(t).Len())

		for _, expected := range slicekit.IterReverse(vs) {
			got, ok := subject.Get(t).Pop()
			assert.True(t, ok)
			assert.Equal(t, expected, got)
		}
		assert.Equal(t, 0, subject.Get(t).Len())
	})

	s.Test("Last shows the top value without removing it", func(t *testcase.T) {
		below := c.MakeT(t)
		top := random.Unique(func() T { return c.MakeT(t) }, below)
		subject.Get(t).Push(below)
		subject.Get(t).Push(top)

		t.Random.Repeat(2, 5, func() {
			got, ok := subject.Get(t).Last()
			assert.True(t, ok)
			assert.Equal(t, top, got)
		})
		assert.Equal(t, 2, subject.Get(t).Len())

		_, _ = subject.Get(t).Pop()

		got, ok := subject.Get(t).Last()
		assert.True(t, ok)
		assert.Equal(t, below, got)
	})

	s.Test("interleaved use agrees with a reference stack", func(t *testcase.T) {
		var pending []T
		t.Random.Repeat(7, 15, func() {
			if t.Random.Bool() {
				v := random.Unique(func() T { return c.MakeT(t) }, pending...)
				subject.Get(t).Push(v)
				pending = append(pending, v)
			} else {
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

	return s.AsSuite("Stack")
}

// StackOption configures the Stack contract.
type StackOption[T any] interface {
	option.Option[StackConfig[T]]
}

// StackConfig holds the configuration of the Stack contract.
// A StackConfig value can be passed directly as a contract option.
type StackConfig[T any] struct {
	// MakeT creates an element value for the contract's test cases.
	MakeT func(tb testing.TB) T
}

func (c *StackConfig[T]) Init() {
	c.MakeT = spechelper.MakeValue[T]
}

func (c StackConfig[T]) Configure(oth *StackConfig[T]) {
	if c.MakeT != nil {
		oth.MakeT = c.MakeT
	}
}
