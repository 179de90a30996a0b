package predicate

import (
	"reflect"

	"github.com/ib-77/fnop/pkg/fnop"
)

type Predicate[T any] func(T) bool

// Test evaluates p. A nil predicate panics with fnop.ErrMissingOperation.
func (p Predicate[T]) Test(in T) bool {
	if p == nil {
		panic(fnop.Missing("predicate.Test"))
	}
	return p(in)
}

// And skips other when p is false.
func (p Predicate[T]) And(other Predicate[T]) Predicate[T] {
	fnop.MustOperand("predicate.And", p)
	fnop.MustOperand("predicate.And", other)
	return func(in T) bool {
		return p(in) && other(in)
	}
}

// Or skips other when p is true.
func (p Predicate[T]) Or(other Predicate[T]) Predicate[T] {
	fnop.MustOperand("predicate.Or", p)
	fnop.MustOperand("predicate.Or", other)
	return func(in T) bool {
		return p(in) || other(in)
	}
}

func (p Predicate[T]) Negate() Predicate[T] {
	fnop.MustOperand("predicate.Negate", p)
	return func(in T) bool {
		return !p(in)
	}
}

func Not[T any](p Predicate[T]) Predicate[T] {
	return p.Negate()
}

// All is true when every predicate holds, true for none.
func All[T any](ps ...Predicate[T]) Predicate[T] {
	for _, p := range ps {
		fnop.MustOperand("predicate.All", p)
	}
	return func(in T) bool {
		for _, p := range ps {
			if !p(in) {
				return false
			}
		}
		return true
	}
}

// Any is true when some predicate holds, false for none.
func Any[T any](ps ...Predicate[T]) Predicate[T] {
	for _, p := range ps {
		fnop.MustOperand("predicate.Any", p)
	}
	return func(in T) bool {
		for _, p := range ps {
			if p(in) {
				return true
			}
		}
		return false
	}
}

// IsEqual tests values for equality with ref. A nil ref matches nil values
// only. Types with an Equal(T) bool method are compared with it, everything
// else with reflect.DeepEqual.
func IsEqual[T any](ref T) Predicate[T] {
	if fnop.IsNil(ref) {
		return func(in T) bool {
			return fnop.IsNil(in)
		}
	}
	if eq, ok := any(ref).(interface{ Equal(T) bool }); ok {
		return func(in T) bool {
			return !fnop.IsNil(in) && eq.Equal(in)
		}
	}
	return func(in T) bool {
		return reflect.DeepEqual(ref, in)
	}
}

// NonNil drops nil pointers, slices, maps, funcs and interfaces.
func NonNil[T any]() Predicate[T] {
	return func(in T) bool {
		return !fnop.IsNil(in)
	}
}
