// Package datastructcontract defines the behavioural contracts of the
// datastruct role interfaces.
//
// A contract receives a Make function that supplies fresh instances of an
// implementation, and returns a testing suite that asserts every behavioural
// requirement a consumer of the role may rely on. Implementation packages run
// these suites from their own tests.
package datastructcontract

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/random"
)

// uniqueValues makes a list of distinct element values,
// so the contracts hold for deduplicating implementations as well.
func uniqueValues[T any](t *testcase.T, mk func(tb testing.TB) T, min, max int) []T {
	return random.Slice(t.Random.IntBetween(min, max), func() T {
		return mk(t)
	}, random.UniqueValues)
}
