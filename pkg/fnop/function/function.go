package function

import (
	"github.com/ib-77/fnop/pkg/fnop"
)

type Transformer[T, R any] func(T) R

// Apply evaluates f. A nil transformer panics with fnop.ErrMissingOperation.
func (f Transformer[T, R]) Apply(in T) R {
	if f == nil {
		panic(fnop.Missing("function.Apply"))
	}
	return f(in)
}

// AndThen applies first and then after.
func AndThen[T, M, R any](first Transformer[T, M], after Transformer[M, R]) Transformer[T, R] {
	fnop.MustOperand("function.AndThen", first)
	fnop.MustOperand("function.AndThen", after)
	return func(in T) R {
		return after(first(in))
	}
}

// Compose applies before and then f.
func Compose[T, M, R any](f Transformer[M, R], before Transformer[T, M]) Transformer[T, R] {
	fnop.MustOperand("function.Compose", f)
	fnop.MustOperand("function.Compose", before)
	return AndThen(before, f)
}

func (f Transformer[T, R]) AndThen(after Transformer[R, R]) Transformer[T, R] {
	return AndThen(f, after)
}

func (f Transformer[T, R]) Compose(before Transformer[T, T]) Transformer[T, R] {
	return Compose(f, before)
}

func Identity[T any]() Transformer[T, T] {
	return func(in T) T {
		return in
	}
}

// Pipe chains same-type transformers left to right; with none it is Identity.
func Pipe[T any](fns ...Transformer[T, T]) Transformer[T, T] {
	piped := Identity[T]()
	for _, fn := range fns {
		piped = AndThen(piped, fn)
	}
	return piped
}
