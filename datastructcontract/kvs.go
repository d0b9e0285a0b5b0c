package datastructcontract

import (
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

// KVS is the contract of the datastruct.KVS role.
func KVS[K comparable, V any](mk contract.Make[datastruct.KVS[K, V]], opts ...KVSOption[K, V]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[KVSConfig[K, V]](opts)

	subject := let.Var(s, func(t *testcase.T) datastruct.KVS[K, V] {
		return mk(t)
	})

	s.Test("a fresh instance starts empty", func(t *testcase.T) {
		assert.Equal(t, 0, subject.Get(t).Len())
		assert.Empty(t, subject.Get(t).Keys())
		assert.Empty(t, subject.Get(t).ToMap())

		_, ok := subject.Get(t).Lookup(c.MakeK(t))
		assert.False(t, ok)
	})

	s.Test("Get on an absent key returns the zero value", func(t *testcase.T) {
		assert.Equal(t, *new(V), subject.Get(t).Get(c.MakeK(t)))
	})

	s.Test("a set key-value pair can be looked up", func(t *testcase.T) {
		var (
			key = c.MakeK(t)
			val = c.MakeV(t)
		)

		subject.Get(t).Set(key, val)

		got, ok := subject.Get(t).Lookup(key)
		assert.True(t, ok)
		assert.Equal(t, val, got)
		assert.Equal(t, val, subject.Get(t).Get(key))
		assert.Equal(t, 1, subject.Get(t).Len())
	})

	s.Test("setting an existing key overwrites its value", func(t *testcase.T) {
		var (
			key     = c.MakeK(t)
			initial = c.MakeV(t)
			updated = c.MakeV(t)
		)
		subject.Get(t).Set(key, initial)

		subject.Get(t).Set(key, updated)

		assert.Equal(t, updated, subject.Get(t).Get(key))
		assert.Equal(t, 1, subject.Get(t).Len())
	})

	s.Test("a deleted key is no longer present", func(t *testcase.T) {
		key := c.MakeK(t)
		subject.Get(t).Set(key, c.MakeV(t))

		subject.Get(t).Delete(key)

		_, ok := subject.Get(t).Lookup(key)
		assert.False(t, ok)
		assert.Equal(t, 0, subject.Get(t).Len())
	})

	s.Test("deleting an absent key is a no-op", func(t *testcase.T) {
		key := c.MakeK(t)
		subject.Get(t).Set(key, c.MakeV(t))

		subject.Get(t).Delete(random.Unique(func() K { return c.MakeK(t) }, key))

		assert.Equal(t, 1, subject.Get(t).Len())
		_, ok := subject.Get(t).Lookup(key)
		assert.True(t, ok)
	})

	s.Test("Keys, ToMap and Iter describe the same content", func(t *testcase.T) {
		expected := map[K]V{}
		for _, key := range uniqueValues(t, c.MakeK, 3, 7) {
			val := c.MakeV(t)
			expected[key] = val
			subject.Get(t).Set(key, val)
		}

		assert.Equal(t, len(expected), subject.Get(t).Len())
		assert.Equal(t, expected, subject.Get(t).ToMap())
		assert.Equal(t, expected, iterkit.Collect2Map(subject.Get(t).Iter()))

		keys := subject.Get(t).Keys()
		assert.Equal(t, len(expected), len(keys))
		for _, key := range keys {
			_, ok := expected[key]
			assert.True(t, ok)
		}
	})

	s.Test("random operations agree with a reference map", func(t *testcase.T) {
		reference := map[K]V{}
		var known []K

		t.Random.Repeat(10, 25, func() {
			switch t.Random.IntN(3) {
			case 0:
				key := random.Unique(func() K { return c.MakeK(t) }, known...)
				val := c.MakeV(t)
				known = append(known, key)
				reference[key] = val
				subject.Get(t).Set(key, val)
			case 1:
				if len(known) == 0 {
					return
				}
				key := known[t.Random.IntN(len(known))]
				delete(reference, key)
				subject.Get(t).Delete(key)
			case 2:
				if len(known) == 0 {
					return
				}
				key := known[t.Random.IntN(len(known))]
				expectedVal, expectedOK := reference[key]
				gotVal, gotOK := subject.Get(t).Lookup(key)
				assert.Equal(t, expectedOK, gotOK)
				assert.Equal(t, expectedVal, gotVal)
			}
			assert.Equal(t, len(reference), subject.Get(t).Len())
		})

		assert.Equal(t, reference, subject.Get(t).ToMap())
	})

	return s.AsSuite("KVS")
}

// KVSOption configures the KVS contract.
type KVSOption[K comparable, V any] interface {
	option.Option[KVSConfig[K, V]]
}

// KVSConfig holds the configuration of the KVS contract.
// A KVSConfig value can be passed directly as a contract option.
type KVSConfig[K comparable, V any] struct {
	// MakeK creates a key value for the contract's test cases.
	MakeK func(tb testing.TB) K
	// MakeV creates a stored value for the contract's test cases.
	MakeV func(tb testing.TB) V
}

func (c *KVSConfig[K, V]) Init() {
	c.MakeK = spechelper.MakeValue[K]
	c.MakeV = spechelper.MakeValue[V]
}

func (c KVSConfig[K, V]) Configure(oth *KVSConfig[K, V]) {
	if c.MakeK != nil {
		oth.MakeK = c.MakeK
	}
	if c.MakeV != nil {
		oth.MakeV = c.MakeV
	}
}
