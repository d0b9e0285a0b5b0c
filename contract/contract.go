// Package contract defines how behaviour specifications of the datastruct
// role interfaces are expressed as reusable testing suites.
package contract

import (
	"testing"

	"go.llib.dev/testcase"
)

// Make func meant to create a new instance of the testing subject.
// A contract calls it once per test case to acquire a fresh, empty subject.
type Make[Subject any] = func(tb testing.TB) Subject

// Contract represents the behavioural specification of a role interface.
//
// Any expectation a consumer has towards a datastruct role interface
// (List, Queue, Stack, ...) is defined in a contract, so every supplier
// implementation can be verified against the same set of behavioural
// requirements, regardless of its backing representation.
type Contract interface {
	testcase.Suite
	// Test asserts the expected behavioural requirements on a supplier implementation.
	Test(*testing.T)
	// Benchmark helps measure the aspects that matter for the role's consumers,
	// so supplier implementations can be A/B tested with the same workload.
	Benchmark(*testing.B)
}
