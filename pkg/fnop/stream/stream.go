package stream

import (
	"slices"

	"github.com/ib-77/fnop/pkg/fnop"
	"github.com/ib-77/fnop/pkg/fnop/action"
	"github.com/ib-77/fnop/pkg/fnop/compare"
	"github.com/ib-77/fnop/pkg/fnop/function"
	"github.com/ib-77/fnop/pkg/fnop/predicate"
	"github.com/samber/lo"
)

type Stream[T any] struct {
	values []T
	err    error
}

// Of starts a stream over a copy of values.
func Of[T any](values []T) Stream[T] {
	owned := make([]T, len(values))
	copy(owned, values)
	return Stream[T]{values: owned}
}

func (s Stream[T]) Err() error {
	return s.err
}

func (s Stream[T]) Filter(keep predicate.Predicate[T]) Stream[T] {
	fnop.MustOperand("stream.Filter", keep)
	if s.err != nil {
		return s
	}
	return Stream[T]{values: lo.Filter(s.values, func(v T, _ int) bool {
		return keep(v)
	})}
}

// Sorted orders the stream stably.
func (s Stream[T]) Sorted(by *compare.Comparer[T]) Stream[T] {
	fnop.MustOperand("stream.Sorted", by)
	if s.err != nil {
		return s
	}
	return Stream[T]{values: by.Sort(s.values)}
}

func (s Stream[T]) Limit(n int) Stream[T] {
	if s.err != nil {
		return s
	}
	return Stream[T]{values: slices.Clone(lo.Subset(s.values, 0, uint(max(n, 0))))}
}

// Peek runs do on every element and passes the elements on unchanged.
func (s Stream[T]) Peek(do action.Action[T]) Stream[T] {
	fnop.MustOperand("stream.Peek", do)
	if s.err != nil {
		return s
	}
	if err := s.each(do); err != nil {
		return Stream[T]{err: err}
	}
	return s
}

func (s Stream[T]) ForEach(do action.Action[T]) error {
	fnop.MustOperand("stream.ForEach", do)
	if s.err != nil {
		return s.err
	}
	return s.each(do)
}

func (s Stream[T]) each(do action.Action[T]) error {
	for _, v := range s.values {
		if err := do(v); err != nil {
			return err
		}
	}
	return nil
}

// Collect returns the stream elements in a slice the caller owns.
func (s Stream[T]) Collect() ([]T, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]T, len(s.values))
	copy(out, s.values)
	return out, nil
}

func (s Stream[T]) Count() int {
	return len(s.values)
}

// Map switches the element type.
func Map[T, R any](s Stream[T], fn function.Transformer[T, R]) Stream[R] {
	fnop.MustOperand("stream.Map", fn)
	if s.err != nil {
		return Stream[R]{err: s.err}
	}
	return Stream[R]{values: lo.Map(s.values, func(v T, _ int) R {
		return fn(v)
	})}
}
