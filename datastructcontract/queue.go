package datastructcontract

import (
	"testing"

	"go.llib.dev/datastruct"
	"go.llib.dev/datastruct/contract"
	"go.llib.dev/datastruct/internal/spechelper"
	"go.llib.dev/datastruct/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

// Queue is the contract of the datastruct.Queue role.
//
// The subject must accept at least one value;
// capacity bounded implementations may reject further ones,
// and the contract then expects the rejection to leave the queue unchanged.
func Queue[T any](mk contract.Make[datastruct.Queue[T]], opts ...QueueOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[QueueConfig[T]](opts)

	subject := let.Var(s, func(t *testcase.T) datastruct.Queue[T] {
		return mk(t)
	})

	s.Test("a fresh instance starts empty", func(t *testcase.T) {
		assert.Equal(t, 0, subject.Get(t).Len())

		_, ok := subject.Get(t).Dequeue()
		assert.False(t, ok)

		_, ok = subject.Get(t).Peek()
		assert.False(t, ok)
	})

	s.Test("values come out in the order they were accepted", func(t *testcase.T) {
		var accepted []T
		for _, v := range uniqueValues(t, c.MakeT, 3, 7) {
			if !subject.Get(t).Enqueue(v) {
				assert.Equal(t, len(accepted), subject.Get(t).Len())
				break
			}
			accepted = append(accepted, v)
		}
		assert.NotEmpty(t, accepted)
		assert.Equal(t, len(accepted), subject.Get(t).Len())

		var got []T
		for {
			v, ok := subject.Get(t).Dequeue()
			if !ok {
				break
			}
			got = append(got, v)
		}
		assert.Equal(t, accepted, got)
		assert.Equal(t, 0, subject.Get(t).Len())
	})

	s.Test("Peek shows the next value without removing it", func(t *testcase.T) {
		v := c.MakeT(t)
		assert.True(t, subject.Get(t).Enqueue(v))

		t.Random.Repeat(2, 5, func() {
			got, ok := subject.Get(t).Peek()
			assert.True(t, ok)
			assert.Equal(t, v, got)
		})
		assert.Equal(t, 1, subject.Get(t).Len())

		got, ok := subject.Get(t).Dequeue()
		assert.True(t, ok)
		assert.Equal(t, v, got)
	})

	s.Test("a drained queue is usable again", func(t *testcase.T) {
		first := c.MakeT(t)
		assert.True(t, subject.Get(t).Enqueue(first))
		_, _ = subject.Get(t).Dequeue()

		second := c.MakeT(t)
		assert.True(t, subject.Get(t).Enqueue(second))

		got, ok := subject.Get(t).Dequeue()
		assert.True(t, ok)
		assert.Equal(t, second, got)
	})

	s.Test("interleaved use agrees with a reference queue", func(t *testcase.T) {
		var pending []T
		t.Random.Repeat(7, 15, func() {
			if t.Random.Bool() {
				v := random.Unique(func() T { return c.MakeT(t) }, pending...)
				if subject.Get(t).Enqueue(v) {
					pending = append(pending, v)
				}
			} else {
				v, ok := subject.Get(t).Dequeue()
				if len(pending) == 0 {
					assert.False(t, ok)
				} else {
					assert.True(t, ok)
					assert.Equal(t, pending[0], v)
					pending = pending[1:]
				}
			}
			assert.Equal(t, len(pending), subject.Get(t).Len())
		})
	})

	return s.AsSuite("Queue")
}

// QueueOption configures the Queue contract.
type QueueOption[T any] interface {
	option.Option[QueueConfig[T]]
}

// QueueConfig holds the configuration of the Queue contract.
// A QueueConfig value can be passed directly as a contract option.
type QueueConfig[T any] struct {
	// MakeT creates an element value for the contract's test cases.
	MakeT func(tb testing.TB) T
}

func (c *QueueConfig[T]) Init() {
	c.MakeT = spechelper.MakeValue[T]
}

func (c QueueConfig[T]) Configure(oth *QueueConfig[T]) {
	if c.MakeT != nil {
		oth.MakeT = c.MakeT
	}
}
