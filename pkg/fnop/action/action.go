package action

import (
	"github.com/ib-77/fnop/pkg/fnop"
)

type Action[T any] func(T) error

// FromFunc lifts a consumer that cannot fail.
func FromFunc[T any](fn func(T)) Action[T] {
	fnop.MustOperand("action.FromFunc", fn)
	return func(in T) error {
		fn(in)
		return nil
	}
}

// Noop does nothing and never fails.
func Noop[T any]() Action[T] {
	return func(T) error { return nil }
}

// Accept applies a to in. A nil action fails with fnop.ErrMissingOperation.
func (a Action[T]) Accept(in T) error {
	if a == nil {
		return fnop.Missing("action.Accept")
	}
	return a(in)
}

// AndThen runs a and then after on the same input. after is skipped when a
// fails and a's error is returned.
func (a Action[T]) AndThen(after Action[T]) Action[T] {
	fnop.MustOperand("action.AndThen", a)
	fnop.MustOperand("action.AndThen", after)
	return func(in T) error {
		if err := a(in); err != nil {
			return err
		}
		return after(in)
	}
}

// Chain folds actions with AndThen. With no actions it returns Noop.
func Chain[T any](actions ...Action[T]) Action[T] {
	chained := Noop[T]()
	for _, next := range actions {
		chained = chained.AndThen(next)
	}
	return chained
}
