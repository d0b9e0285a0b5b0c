package linkedlist_test

import (
	"fmt"
	"testing"

	"go.uber.org/goleak"

	"go.llib.dev/datastruct"
	"go.llib.dev/datastruct/datastructcontract"
	"go.llib.dev/datastruct/linkedlist"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestList(t *testing.T) {
	s := testcase.NewSpec(t)

	subject := let.Var(s, func(t *testcase.T) *linkedlist.List[int] {
		return &linkedlist.List[int]{}
	})

	s.Test("the zero value is an empty list, ready to be used", func(t *testcase.T) {
		var l linkedlist.List[int]
		assert.True(t, l.IsEmpty())
		assert.Equal(t, 0, l.Len())
		assert.Nil(t, l.Head())
		assert.Nil(t, l.Tail())
		assert.Empty(t, l.ToSlice())
	})

	s.Test("a freshly made list holds the received values in order", func(t *testcase.T) {
		values := random.Slice(t.Random.IntBetween(1, 7), t.Random.Int)
		l := linkedlist.New(values...)
		assert.Equal(t, values, l.ToSlice())
		assert.Equal(t, len(values), l.Len())
	})

	s.Describe("#Push", func(s *testcase.Spec) {
		var (
			value = let.Var(s, func(t *testcase.T) int {
				return t.Random.Int()
			})
		)
		act := let.Act0(func(t *testcase.T) {
			subject.Get(t).Push(value.Get(t))
		})

		s.Then("the pushed value becomes the head of the list", func(t *testcase.T) {
			act(t)

			assert.Equal(t, value.Get(t), subject.Get(t).Head().Value())
		})

		s.Then("the list is no longer empty", func(t *testcase.T) {
			act(t)

			assert.False(t, subject.Get(t).IsEmpty())
			assert.Equal(t, 1, subject.Get(t).Len())
		})

		s.Then("on an empty list the value is both head and tail", func(t *testcase.T) {
			act(t)

			assert.True(t, subject.Get(t).Head() == subject.Get(t).Tail())
		})

		s.When("the list already has values", func(s *testcase.Spec) {
			others := let.Var(s, func(t *testcase.T) []int {
				return random.Slice(t.Random.IntBetween(1, 5), t.Random.Int)
			})

			s.Before(func(t *testcase.T) {
				subject.Get(t).Append(others.Get(t)...)
			})

			s.Then("the value is prepended before the previous values", func(t *testcase.T) {
				act(t)

				expected := append([]int{value.Get(t)}, others.Get(t)...)
				assert.Equal(t, expected, subject.Get(t).ToSlice())
			})

			s.Then("the tail is left in place", func(t *testcase.T) {
				tail := subject.Get(t).Tail()

				act(t)

				assert.True(t, tail == subject.Get(t).Tail())
			})

			s.Then("repeated pushes stack up in reverse order", func(t *testcase.T) {
				subject.Set(t, &linkedlist.List[int]{})
				var expected []int
				t.Random.Repeat(3, 7, func() {
					v := t.Random.Int()
					expected = append([]int{v}, expected...)
					subject.Get(t).Push(v)
				})

				assert.Equal(t, expected, subject.Get(t).ToSlice())
			})
		})
	})

	s.Describe("#Append", func(s *testcase.Spec) {
		var (
			values = let.Var(s, func(t *testcase.T) []int {
				return random.Slice(t.Random.IntBetween(1, 5), t.Random.Int)
			})
		)
		act := let.Act0(func(t *testcase.T) {
			subject.Get(t).Append(values.Get(t)...)
		})

		s.Then("the values are added in the received order", func(t *testcase.T) {
			act(t)

			assert.Equal(t, values.Get(t), subject.Get(t).ToSlice())
		})

		s.Then("the last appended value becomes the tail", func(t *testcase.T) {
			act(t)

			vs := values.Get(t)
			assert.Equal(t, vs[len(vs)-1], subject.Get(t).Tail().Value())
		})

		s.Then("appending nothing is a no-op", func(t *testcase.T) {
			act(t)
			before := subject.Get(t).ToSlice()

			subject.Get(t).Append()

			assert.Equal(t, before, subject.Get(t).ToSlice())
		})

		s.When("the list already has values", func(s *testcase.Spec) {
			others := let.Var(s, func(t *testcase.T) []int {
				return random.Slice(t.Random.IntBetween(1, 5), t.Random.Int)
			})

			s.Before(func(t *testcase.T) {
				subject.Get(t).Append(others.Get(t)...)
			})

			s.Then("the values follow the previous values", func(t *testcase.T) {
				act(t)

				expected := append(append([]int{}, others.Get(t)...), values.Get(t)...)
				assert.Equal(t, expected, subject.Get(t).ToSlice())
			})

			s.Then("the head is left in place", func(t *testcase.T) {
				head := subject.Get(t).Head()

				act(t)

				assert.True(t, head == subject.Get(t).Head())
			})
		})
	})

	s.Describe("#Pop", func(s *testcase.Spec) {
		act := let.Act2(func(t *testcase.T) (int, bool) {
			return subject.Get(t).Pop()
		})

		s.Then("on an empty list it reports no value", func(t *testcase.T) {
			_, ok := act(t)

			assert.False(t, ok)
		})

		s.When("the list has values", func(s *testcase.Spec) {
			values := let.Var(s, func(t *testcase.T) []int {
				return random.Slice(t.Random.IntBetween(2, 7), t.Random.Int)
			})

			s.Before(func(t *testcase.T) {
				subject.Get(t).Append(values.Get(t)...)
			})

			s.Then("the head value is returned", func(t *testcase.T) {
				v, ok := act(t)

				assert.True(t, ok)
				assert.Equal(t, values.Get(t)[0], v)
			})

			s.Then("the head is removed from the list", func(t *testcase.T) {
				act(t)

				assert.Equal(t, values.Get(t)[1:], subject.Get(t).ToSlice())
				assert.Equal(t, len(values.Get(t))-1, subject.Get(t).Len())
			})

			s.Then("popping everything empties the list out", func(t *testcase.T) {
				for range values.Get(t) {
					_, ok := act(t)
					assert.True(t, ok)
				}

				assert.True(t, subject.Get(t).IsEmpty())
				assert.Nil(t, subject.Get(t).Head())
				assert.Nil(t, subject.Get(t).Tail())
			})
		})

		s.When("the list has a single value", func(s *testcase.Spec) {
			value := let.Var(s, func(t *testcase.T) int {
				return t.Random.Int()
			})

			s.Before(func(t *testcase.T) {
				subject.Get(t).Push(value.Get(t))
			})

			s.Then("the list becomes empty, with no dangling tail", func(t *testcase.T) {
				v, ok := act(t)

				assert.True(t, ok)
				assert.Equal(t, value.Get(t), v)
				assert.True(t, subject.Get(t).IsEmpty())
				assert.Nil(t, subject.Get(t).Tail())
			})
		})
	})

	s.Describe("#RemoveLast", func(s *testcase.Spec) {
		act := let.Act2(func(t *testcase.T) (int, bool) {
			return subject.Get(t).RemoveLast()
		})

		s.Then("on an empty list it reports no value", func(t *testcase.T) {
			_, ok := act(t)

			assert.False(t, ok)
		})

		s.When("the list has values", func(s *testcase.Spec) {
			values := let.Var(s, func(t *testcase.T) []int {
				return random.Slice(t.Random.IntBetween(2, 7), t.Random.Int)
			})

			s.Before(func(t *testcase.T) {
				subject.Get(t).Append(values.Get(t)...)
			})

			s.Then("the tail value is returned", func(t *testcase.T) {
				v, ok := act(t)

				assert.True(t, ok)
				assert.Equal(t, values.Get(t)[len(values.Get(t))-1], v)
			})

			s.Then("the tail is removed and the node before it becomes the tail", func(t *testcase.T) {
				act(t)

				vs := values.Get(t)
				assert.Equal(t, vs[:len(vs)-1], subject.Get(t).ToSlice())
				assert.Equal(t, vs[len(vs)-2], subject.Get(t).Tail().Value())
				assert.Nil(t, subject.Get(t).Tail().Next())
			})

			s.Then("removing everything empties the list out", func(t *testcase.T) {
				for range values.Get(t) {
					_, ok := act(t)
					assert.True(t, ok)
				}

				assert.True(t, subject.Get(t).IsEmpty())
				assert.Nil(t, subject.Get(t).Head())
				assert.Nil(t, subject.Get(t).Tail())
			})
		})

		s.When("the list has a single value", func(s *testcase.Spec) {
			value := let.Var(s, func(t *testcase.T) int {
				return t.Random.Int()
			})

			s.Before(func(t *testcase.T) {
				subject.Get(t).Push(value.Get(t))
			})

			s.Then("the list becomes empty, with no dangling head", func(t *testcase.T) {
				v, ok := act(t)

				assert.True(t, ok)
				assert.Equal(t, value.Get(t), v)
				assert.True(t, subject.Get(t).IsEmpty())
				assert.Nil(t, subject.Get(t).Head())
			})
		})
	})

	s.Describe("#NodeAt", func(s *testcase.Spec) {
		values := let.Var(s, func(t *testcase.T) []int {
			return random.Slice(t.Random.IntBetween(3, 7), t.Random.Int)
		})

		s.Before(func(t *testcase.T) {
			subject.Get(t).Append(values.Get(t)...)
		})

		s.Then("each index yields the node holding the value at that index", func(t *testcase.T) {
			for i, v := range values.Get(t) {
				node := subject.Get(t).NodeAt(i)
				assert.NotNil(t, node)
				assert.Equal(t, v, node.Value())
			}
		})

		s.Then("index zero is the head", func(t *testcase.T) {
			assert.True(t, subject.Get(t).Head() == subject.Get(t).NodeAt(0))
		})

		s.Then("the last index is the tail", func(t *testcase.T) {
			assert.True(t, subject.Get(t).Tail() == subject.Get(t).NodeAt(subject.Get(t).Len()-1))
		})

		s.Then("an index past the list's range yields no node", func(t *testcase.T) {
			assert.Nil(t, subject.Get(t).NodeAt(subject.Get(t).Len()))
			assert.Nil(t, subject.Get(t).NodeAt(subject.Get(t).Len()+t.Random.IntN(42)))
		})

		s.Then("a negative index yields no node", func(t *testcase.T) {
			assert.Nil(t, subject.Get(t).NodeAt(-1*t.Random.IntBetween(1, 42)))
		})
	})

	s.Describe("#Lookup", func(s *testcase.Spec) {
		values := let.Var(s, func(t *testcase.T) []int {
			return random.Slice(t.Random.IntBetween(3, 7), t.Random.Int)
		})

		s.Before(func(t *testcase.T) {
			subject.Get(t).Append(values.Get(t)...)
		})

		s.Then("each index yields the value at that index", func(t *testcase.T) {
			for i, v := range values.Get(t) {
				got, ok := subject.Get(t).Lookup(i)
				assert.True(t, ok)
				assert.Equal(t, v, got)
			}
		})

		s.Then("an index outside the list's range reports no value", func(t *testcase.T) {
			_, ok := subject.Get(t).Lookup(subject.Get(t).Len())
			assert.False(t, ok)

			_, ok = subject.Get(t).Lookup(-1)
			assert.False(t, ok)
		})
	})

	s.Describe("#InsertAfter", func(s *testcase.Spec) {
		var (
			values = let.Var(s, func(t *testcase.T) []int {
				return random.Slice(t.Random.IntBetween(3, 7), t.Random.Int)
			})
			value = let.Var(s, func(t *testcase.T) int {
				return t.Random.Int()
			})
		)

		s.Before(func(t *testcase.T) {
			subject.Get(t).Append(values.Get(t)...)
		})

		s.Then("inserting after a node links the value right after it", func(t *testcase.T) {
			index := t.Random.IntN(subject.Get(t).Len())
			node := subject.Get(t).NodeAt(index)

			got := subject.Get(t).InsertAfter(value.Get(t), node)

			vs := values.Get(t)
			expected := append(append(append([]int{}, vs[:index+1]...), value.Get(t)), vs[index+1:]...)
			assert.Equal(t, expected, subject.Get(t).ToSlice())
			assert.Equal(t, len(vs)+1, subject.Get(t).Len())
			assert.Equal(t, value.Get(t), got.Value())
			assert.True(t, got == node.Next())
		})

		s.Then("inserting after the tail is equivalent to appending", func(t *testcase.T) {
			got := subject.Get(t).InsertAfter(value.Get(t), subject.Get(t).Tail())

			expected := append(append([]int{}, values.Get(t)...), value.Get(t))
			assert.Equal(t, expected, subject.Get(t).ToSlice())
			assert.True(t, subject.Get(t).Tail() == got)
			assert.Nil(t, got.Next())
		})
	})

	s.Describe("#RemoveAfter", func(s *testcase.Spec) {
		values := let.Var(s, func(t *testcase.T) []int {
			return random.Slice(t.Random.IntBetween(3, 7), t.Random.Int)
		})

		s.Before(func(t *testcase.T) {
			subject.Get(t).Append(values.Get(t)...)
		})

		s.Then("the node after the given node is unlinked and its value returned", func(t *testcase.T) {
			index := t.Random.IntN(subject.Get(t).Len() - 1)
			node := subject.Get(t).NodeAt(index)

			v, ok := subject.Get(t).RemoveAfter(node)

			vs := values.Get(t)
			assert.True(t, ok)
			assert.Equal(t, vs[index+1], v)
			expected := append(append([]int{}, vs[:index+1]...), vs[index+2:]...)
			assert.Equal(t, expected, subject.Get(t).ToSlice())
			assert.Equal(t, len(vs)-1, subject.Get(t).Len())
		})

		s.Then("removing after the node before the tail retargets the tail", func(t *testcase.T) {
			node := subject.Get(t).NodeAt(subject.Get(t).Len() - 2)

			v, ok := subject.Get(t).RemoveAfter(node)

			vs := values.Get(t)
			assert.True(t, ok)
			assert.Equal(t, vs[len(vs)-1], v)
			assert.True(t, node == subject.Get(t).Tail())
			assert.Nil(t, subject.Get(t).Tail().Next())
		})

		s.Then("nothing follows the tail, so removing after it reports no value", func(t *testcase.T) {
			before := subject.Get(t).ToSlice()

			_, ok := subject.Get(t).RemoveAfter(subject.Get(t).Tail())

			assert.False(t, ok)
			assert.Equal(t, before, subject.Get(t).ToSlice())
		})
	})

	s.Describe("#Clone", func(s *testcase.Spec) {
		values := let.Var(s, func(t *testcase.T) []int {
			return random.Slice(t.Random.IntBetween(3, 7), t.Random.Int)
		})

		origin := let.Var(s, func(t *testcase.T) *linkedlist.List[int] {
			return linkedlist.New(values.Get(t)...)
		})

		act := let.Act(func(t *testcase.T) *linkedlist.List[int] {
			return origin.Get(t).Clone()
		})

		s.Then("the clone holds the same values", func(t *testcase.T) {
			clone := act(t)

			assert.Equal(t, origin.Get(t).ToSlice(), clone.ToSlice())
			assert.Equal(t, origin.Get(t).Len(), clone.Len())
		})

		s.Then("the clone initially shares the physical chain with its origin", func(t *testcase.T) {
			clone := act(t)

			assert.True(t, origin.Get(t).Head() == clone.Head())
			assert.True(t, origin.Get(t).Tail() == clone.Tail())
		})

		s.Then("cloning an empty list yields an independent empty list", func(t *testcase.T) {
			empty := &linkedlist.List[int]{}

			clone := empty.Clone()
			clone.Push(t.Random.Int())

			assert.True(t, empty.IsEmpty())
			assert.False(t, clone.IsEmpty())
		})

		s.Then("reading through either handle copies nothing", func(t *testcase.T) {
			clone := act(t)

			_ = origin.Get(t).ToSlice()
			_ = clone.ToSlice()
			_, _ = clone.Lookup(0)

			assert.True(t, origin.Get(t).Head() == clone.Head())
		})

		s.Then("the chain is copied at most once per divergence", func(t *testcase.T) {
			clone := act(t)

			clone.Append(t.Random.Int())
			head := clone.Head()
			clone.Append(t.Random.Int())
			clone.Push(t.Random.Int())

			assert.True(t, clone.Head().Next() == head)
			assert.True(t, origin.Get(t).Head() != head)
		})

		s.Then("clones of clones all share the chain until one of them mutates", func(t *testcase.T) {
			b := act(t)
			c := b.Clone()

			assert.True(t, origin.Get(t).Head() == b.Head())
			assert.True(t, b.Head() == c.Head())

			b.Push(t.Random.Int())

			assert.True(t, origin.Get(t).Head() == c.Head())
			assert.True(t, b.Head().Next() != origin.Get(t).Head())
		})

		mutations := map[string]func(t *testcase.T, l *linkedlist.List[int]){
			"Push": func(t *testcase.T, l *linkedlist.List[int]) {
				l.Push(t.Random.Int())
			},
			"Append": func(t *testcase.T, l *linkedlist.List[int]) {
				l.Append(t.Random.Int())
			},
			"Pop": func(t *testcase.T, l *linkedlist.List[int]) {
				_, _ = l.Pop()
			},
			"RemoveLast": func(t *testcase.T, l *linkedlist.List[int]) {
				_, _ = l.RemoveLast()
			},
			"InsertAfter": func(t *testcase.T, l *linkedlist.List[int]) {
				l.InsertAfter(t.Random.Int(), l.Head())
			},
			"RemoveAfter": func(t *testcase.T, l *linkedlist.List[int]) {
				_, _ = l.RemoveAfter(l.Head())
			},
		}

		for desc, mutate := range mutations {
			s.Test(fmt.Sprintf("mutating the clone with %s is not observable through the origin", desc), func(t *testcase.T) {
				clone := act(t)
				expected := origin.Get(t).ToSlice()

				mutate(t, clone)

				assert.Equal(t, expected, origin.Get(t).ToSlice())
				assert.True(t, origin.Get(t).Head() != clone.Head())
			})

			s.Test(fmt.Sprintf("mutating the origin with %s is not observable through the clone", desc), func(t *testcase.T) {
				clone := act(t)
				expected := clone.ToSlice()

				mutate(t, origin.Get(t))

				assert.Equal(t, expected, clone.ToSlice())
				assert.True(t, origin.Get(t).Head() != clone.Head())
			})
		}

		s.Test("mutating through a node reference keeps the handles independent", func(t *testcase.T) {
			clone := act(t)
			expected := origin.Get(t).ToSlice()

			node := clone.Head()
			inserted := clone.InsertAfter(t.Random.Int(), node)

			assert.Equal(t, expected, origin.Get(t).ToSlice())
			assert.Equal(t, inserted.Value(), clone.NodeAt(1).Value())
			assert.True(t, clone.NodeAt(1) == clone.Head().Next())
		})
	})

	s.Describe("#String", func(s *testcase.Spec) {
		s.Test("an empty list renders as the end marker alone", func(t *testcase.T) {
			assert.Equal(t, "end", subject.Get(t).String())
		})

		s.Test("values are joined by arrows and closed by the end marker", func(t *testcase.T) {
			subject.Get(t).Append(1, 2, 3)

			assert.Equal(t, "1 -> 2 -> 3 -> end", subject.Get(t).String())
		})

		s.Test("a node renders the chain from itself onwards", func(t *testcase.T) {
			subject.Get(t).Append(1, 2, 3)

			assert.Equal(t, "2 -> 3 -> end", subject.Get(t).Head().Next().String())
		})
	})

	s.Describe("#Iter", func(s *testcase.Spec) {
		values := let.Var(s, func(t *testcase.T) []int {
			return random.Slice(t.Random.IntBetween(3, 7), t.Random.Int)
		})

		s.Before(func(t *testcase.T) {
			subject.Get(t).Append(values.Get(t)...)
		})

		s.Then("it yields the values in list order", func(t *testcase.T) {
			var got []int
			for v := range subject.Get(t).Iter() {
				got = append(got, v)
			}

			assert.Equal(t, values.Get(t), got)
		})

		s.Then("the iterator can be restarted", func(t *testcase.T) {
			iter := subject.Get(t).Iter()

			var first, second []int
			for v := range iter {
				first = append(first, v)
			}
			for v := range iter {
				second = append(second, v)
			}

			assert.Equal(t, first, second)
		})

		s.Then("breaking out early is supported", func(t *testcase.T) {
			var got []int
			for v := range subject.Get(t).Iter() {
				got = append(got, v)
				break
			}

			assert.Equal(t, []int{values.Get(t)[0]}, got)
		})

		s.Then("iterating does not mutate the list", func(t *testcase.T) {
			head := subject.Get(t).Head()

			for range subject.Get(t).Iter() {
			}

			assert.Equal(t, values.Get(t), subject.Get(t).ToSlice())
			assert.True(t, head == subject.Get(t).Head())
		})
	})

	s.Describe("#All", func(s *testcase.Spec) {
		values := let.Var(s, func(t *testcase.T) []int {
			return random.Slice(t.Random.IntBetween(3, 7), t.Random.Int)
		})

		s.Before(func(t *testcase.T) {
			subject.Get(t).Append(values.Get(t)...)
		})

		s.Then("it yields index-value pairs in list order", func(t *testcase.T) {
			got := map[int]int{}
			for i, v := range subject.Get(t).All() {
				got[i] = v
			}

			expected := map[int]int{}
			for i, v := range values.Get(t) {
				expected[i] = v
			}
			assert.Equal(t, expected, got)
		})

		s.Then("the indexes match NodeAt addressing", func(t *testcase.T) {
			for i, v := range subject.Get(t).All() {
				assert.Equal(t, v, subject.Get(t).NodeAt(i).Value())
			}
		})
	})

	s.Test("push and pop mirror each other through interleaved clones", func(t *testcase.T) {
		var (
			list     = &linkedlist.List[int]{}
			expected []int
			clones   []*linkedlist.List[int]
			snaps    [][]int
		)
		t.Random.Repeat(3, 7, func() {
			v := t.Random.Int()
			list.Push(v)
			expected = append([]int{v}, expected...)
			if t.Random.Bool() {
				clones = append(clones, list.Clone())
				snaps = append(snaps, list.ToSlice())
			}
		})

		assert.Equal(t, expected, list.ToSlice())

		for i := len(expected) - 1; 0 <= i; i-- {
			v, ok := list.Pop()
			assert.True(t, ok)
			assert.Equal(t, expected[len(expected)-1-i], v)
		}
		assert.True(t, list.IsEmpty())

		for i, clone := range clones {
			assert.Equal(t, snaps[i], clone.ToSlice())
		}
	})

	s.Test("a small chain behaves as drawn on paper", func(t *testcase.T) {
		list := &linkedlist.List[int]{}
		list.Push(3)
		list.Push(2)
		list.Push(1)
		list.Push(0)

		assert.Equal(t, "0 -> 1 -> 2 -> 3 -> end", list.String())

		list.Append(99, 100)
		assert.Equal(t, "0 -> 1 -> 2 -> 3 -> 99 -> 100 -> end", list.String())

		middle := list.NodeAt(1)
		assert.Equal(t, 1, middle.Value())
		list.InsertAfter(42, middle)
		assert.Equal(t, "0 -> 1 -> 42 -> 2 -> 3 -> 99 -> 100 -> end", list.String())

		v, ok := list.RemoveAfter(middle)
		assert.True(t, ok)
		assert.Equal(t, 42, v)
		assert.Equal(t, "0 -> 1 -> 2 -> 3 -> 99 -> 100 -> end", list.String())

		v, ok = list.Pop()
		assert.True(t, ok)
		assert.Equal(t, 0, v)

		v, ok = list.RemoveLast()
		assert.True(t, ok)
		assert.Equal(t, 100, v)

		assert.Equal(t, "1 -> 2 -> 3 -> 99 -> end", list.String())
		assert.Equal(t, 4, list.Len())
	})
}

func TestList_implements(t *testing.T) {
	t.Run("List", datastructcontract.List(func(tb testing.TB) datastruct.List[int] {
		return &linkedlist.List[int]{}
	}).Test)

	t.Run("ordered List", datastructcontract.OrderedList(func(tb testing.TB) datastruct.List[int] {
		return &linkedlist.List[int]{}
	}).Test)

	t.Run("Sequence", datastructcontract.Sequence(func(tb testing.TB) datastruct.Sequence[int] {
		return &linkedlist.List[int]{}
	}).Test)
}

func BenchmarkList(b *testing.B) {
	rnd := random.New(random.CryptoSeed{})

	b.Run("Push", func(b *testing.B) {
		var l linkedlist.List[int]
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.Push(i)
		}
	})

	b.Run("Append", func(b *testing.B) {
		var l linkedlist.List[int]
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.Append(i)
		}
	})

	b.Run("Pop", func(b *testing.B) {
		var l linkedlist.List[int]
		for i := 0; i < b.N; i++ {
			l.Push(i)
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = l.Pop()
		}
	})

	b.Run("Clone then mutate", func(b *testing.B) {
		l := linkedlist.New(random.Slice(100, rnd.Int)...)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			c := l.Clone()
			c.Push(i)
		}
	})
}
