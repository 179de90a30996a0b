package supply

import (
	"sync"

	"github.com/ib-77/fnop/pkg/fnop"
)

type Supplier[T any] func() T

// Get invokes s. A nil supplier panics with fnop.ErrMissingOperation.
func (s Supplier[T]) Get() T {
	if s == nil {
		panic(fnop.Missing("supply.Get"))
	}
	return s()
}

// Of always supplies v.
func Of[T any](v T) Supplier[T] {
	return func() T {
		return v
	}
}

// Map derives a supplier that transforms each value produced by s.
func Map[T, R any](s Supplier[T], fn func(T) R) Supplier[R] {
	fnop.MustOperand("supply.Map", s)
	fnop.MustOperand("supply.Map", fn)
	return func() R {
		return fn(s())
	}
}

// Memoize calls s on the first Get only and returns that value afterwards.
func Memoize[T any](s Supplier[T]) Supplier[T] {
	fnop.MustOperand("supply.Memoize", s)
	var (
		once  sync.Once
		value T
	)
	return func() T {
		once.Do(func() { value = s() })
		return value
	}
}
