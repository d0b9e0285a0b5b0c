package datastructcontract

import (
	"cmp"
	"maps"
	"slices"
	"testing"

	"go.llib.dev/datastruct"
	"go.llib.dev/datastruct/contract"
	"go.llib.dev/datastruct/internal/iterkit"
	"go.llib.dev/datastruct/internal/spechelper"
	"go.llib.dev/datastruct/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

// SearchTree is the contract of the datastruct.SearchTree role.
// It expects set semantics: inserting an already present value is a no-op.
func SearchTree[T cmp.Ordered](mk contract.Make[datastruct.SearchTree[T]], opts ...SearchTreeOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[SearchTreeConfig[T]](opts)

	subject := let.Var(s, func(t *testcase.T) datastruct.SearchTree[T] {
		return mk(t)
	})

	s.Test("a fresh instance starts empty", func(t *testcase.T) {
		assert.Equal(t, 0, subject.Get(t).Len())
		assert.False(t, subject.Get(t).Contains(c.MakeT(t)))
		assert.False(t, subject.Get(t).Remove(c.MakeT(t)))
		assert.Empty(t, iterkit.Collect(subject.Get(t).Iter()))
	})

	s.Test("inserted values can be found", func(t *testcase.T) {
		vs := uniqueValues(t, c.MakeT, 3, 7)

		subject.Get(t).Insert(vs...)

		assert.Equal(t, len(vs), subject.Get(t).Len())
		for _, v := range vs {
			assert.True(t, subject.Get(t).Contains(v))
		}
	})

	s.Test("absent values are not found", func(t *testcase.T) {
		vs := uniqueValues(t, c.MakeT, 3, 7)
		subject.Get(t).Insert(vs...)

		probe := random.Unique(func() T { return c.MakeT(t) }, vs...)

		assert.False(t, subject.Get(t).Contains(probe))
	})

	s.Test("inserting an already present value changes nothing", func(t *testcase.T) {
		vs := uniqueValues(t, c.MakeT, 3, 7)
		subject.Get(t).Insert(vs...)

		subject.Get(t).Insert(vs[t.Random.IntN(len(vs))])

		assert.Equal(t, len(vs), subject.Get(t).Len())
		assert.ContainExactly(t, vs, iterkit.Collect(subject.Get(t).Iter()))
	})

	s.Test("removed values are no longer found", func(t *testcase.T) {
		vs := uniqueValues(t, c.MakeT, 3, 7)
		subject.Get(t).Insert(vs...)
		v := vs[t.Random.IntN(len(vs))]

		assert.True(t, subject.Get(t).Remove(v))

		assert.False(t, subject.Get(t).Contains(v))
		assert.Equal(t, len(vs)-1, subject.Get(t).Len())
		assert.False(t, subject.Get(t).Remove(v))
	})

	s.Test("iteration yields the values in nondecreasing order", func(t *testcase.T) {
		vs := uniqueValues(t, c.MakeT, 3, 7)

		subject.Get(t).Insert(vs...)

		assert.Equal(t,
			slices.Sorted(slices.Values(vs)),
			iterkit.Collect(subject.Get(t).Iter()))
	})

	s.Test("random operations agree with a reference set", func(t *testcase.T) {
		reference := map[T]struct{}{}
		var known []T

		t.Random.Repeat(10, 25, func() {
			switch t.Random.IntN(3) {
			case 0:
				v := random.Unique(func() T { return c.MakeT(t) }, known...)
				known = append(known, v)
				reference[v] = struct{}{}
				subject.Get(t).Insert(v)
			case 1:
				if len(known) == 0 {
					return
				}
				v := known[t.Random.IntN(len(known))]
				_, expected := reference[v]
				delete(reference, v)
				assert.Equal(t, expected, subject.Get(t).Remove(v))
			case 2:
				if len(known) == 0 {
					return
				}
				v := known[t.Random.IntN(len(known))]
				_, expected := reference[v]
				assert.Equal(t, expected, subject.Get(t).Contains(v))
			}
			assert.Equal(t, len(reference), subject.Get(t).Len())
		})

		got := iterkit.Collect(subject.Get(t).Iter())
		if len(reference) == 0 {
			assert.Empty(t, got)
			return
		}
		assert.Equal(t, slices.Sorted(maps.Keys(reference)), got)
	})

	return s.AsSuite("SearchTree")
}

// SearchTreeOption configures the SearchTree contract.
type SearchTreeOption[T cmp.Ordered] interface {
	option.Option[SearchTreeConfig[T]]
}

// SearchTreeConfig holds the configuration of the SearchTree contract.
// A SearchTreeConfig value can be passed directly as a contract option.
type SearchTreeConfig[T cmp.Ordered] struct {
	// MakeT creates an element value for the contract's test cases.
	MakeT func(tb testing.TB) T
}

func (c *SearchTreeConfig[T]) Init() {
	c.MakeT = spechelper.MakeValue[T]
}

func (c SearchTreeConfig[T]) Configure(oth *SearchTreeConfig[T]) {
	if c.MakeT != nil {
		oth.MakeT = c.MakeT
	}
}
