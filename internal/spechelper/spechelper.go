// Package spechelper supplies shared helpers for the datastruct contracts.
package spechelper

import (
	"fmt"
	"testing"

	"go.llib.dev/testcase"
)

// MakeValue creates a fixture value for the most common element types.
// Contracts use it as the default element generator;
// for any other type the contract user must supply their own Make func.
func MakeValue[T any](tb testing.TB) T {
	t := testcase.ToT(&tb)
	var v any
	switch any(*new(T)).(type) {
	case int:
		v = t.Random.Int()
	case int32:
		v = int32(t.Random.Int())
	case int64:
		v = int64(t.Random.Int())
	case float32:
		v = float32(t.Random.Float32())
	case float64:
		v = t.Random.Float64()
	case string:
		v = t.Random.String()
	case bool:
		v = t.Random.Bool()
	default:
		panic(fmt.Sprintf("spechelper.MakeValue has no default generator for %T, configure a Make func", *new(T)))
	}
	return v.(T)
}
