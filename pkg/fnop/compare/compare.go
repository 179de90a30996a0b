package compare

import (
	"cmp"
	"slices"

	"github.com/google/uuid"
	"github.com/ib-77/fnop/pkg/fnop"
	"github.com/samber/mo"
)

// Comparer orders values of T. Compare returns a negative number when a sorts
// before b, zero when they are equivalent and a positive number otherwise.
type Comparer[T any] struct {
	id  uuid.UUID
	cmp func(a, b T) int
}

// Comparable is implemented by types with an intrinsic order.
type Comparable[T any] interface {
	CompareTo(other T) int
}

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

func New[T any](fn func(a, b T) int) *Comparer[T] {
	fnop.MustOperand("compare.New", fn)
	return &Comparer[T]{id: uuid.New(), cmp: fn}
}

// ID identifies this comparer instance.
func (c *Comparer[T]) ID() uuid.UUID {
	if c == nil {
		return uuid.Nil
	}
	return c.id
}

func (c *Comparer[T]) Compare(a, b T) int {
	if c == nil {
		panic(fnop.Missing("compare.Compare"))
	}
	return c.cmp(a, b)
}

// Less reports whether a sorts strictly before b.
func (c *Comparer[T]) Less(a, b T) bool {
	return c.Compare(a, b) < 0
}

// Equal reports whether other is this very comparer.
func (c *Comparer[T]) Equal(other *Comparer[T]) bool {
	return c == other
}

func (c *Comparer[T]) Reverse() *Comparer[T] {
	if c == nil {
		panic(fnop.MissingOperand("compare.Reverse"))
	}
	return New(func(a, b T) int {
		return c.cmp(b, a)
	})
}

// ThenBy consults next only when c considers a and b equivalent.
func (c *Comparer[T]) ThenBy(next *Comparer[T]) *Comparer[T] {
	if c == nil {
		panic(fnop.MissingOperand("compare.ThenBy"))
	}
	fnop.MustOperand("compare.ThenBy", next)
	return New(func(a, b T) int {
		if r := c.cmp(a, b); r != 0 {
			return r
		}
		return next.cmp(a, b)
	})
}

// ThenComparing is ThenBy(ByKey(key)).
func ThenComparing[T any, K cmp.Ordered](c *Comparer[T], key func(T) K) *Comparer[T] {
	if c == nil {
		panic(fnop.MissingOperand("compare.ThenComparing"))
	}
	return c.ThenBy(ByKey(key))
}

func ByKey[T any, K cmp.Ordered](key func(T) K) *Comparer[T] {
	fnop.MustOperand("compare.ByKey", key)
	return New(func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
}

// ByOptionKey orders by an optional key, absent keys first.
func ByOptionKey[T any, K cmp.Ordered](key func(T) mo.Option[K]) *Comparer[T] {
	fnop.MustOperand("compare.ByOptionKey", key)
	return New(func(a, b T) int {
		ka, okA := key(a).Get()
		kb, okB := key(b).Get()
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return -1
		case !okB:
			return 1
		}
		return cmp.Compare(ka, kb)
	})
}

func NaturalOrder[T cmp.Ordered]() *Comparer[T] {
	return New(cmp.Compare[T])
}

func ReverseOrder[T cmp.Ordered]() *Comparer[T] {
	return New(func(a, b T) int {
		return cmp.Compare(b, a)
	})
}

// Natural orders by T's own CompareTo.
func Natural[T Comparable[T]]() *Comparer[T] {
	return New(func(a, b T) int {
		return a.CompareTo(b)
	})
}

func ReverseNatural[T Comparable[T]]() *Comparer[T] {
	return New(func(a, b T) int {
		return b.CompareTo(a)
	})
}

// Difference compares by subtraction, so Compare(1, 10) is -9. Results can
// overflow for operands far apart.
func Difference[T integer]() *Comparer[T] {
	return New(func(a, b T) int {
		return int(a - b)
	})
}

// NullsFirst orders nil before every non-nil pointer. A nil inner treats all
// non-nil values as equal.
func NullsFirst[T any](inner *Comparer[T]) *Comparer[*T] {
	return nulls(inner, true)
}

// NullsLast orders nil after every non-nil pointer. A nil inner treats all
// non-nil values as equal.
func NullsLast[T any](inner *Comparer[T]) *Comparer[*T] {
	return nulls(inner, false)
}

// NilsFirst orders nil pointers first and hands the rest to inner unchanged.
// Use it when inner already compares pointers, such as ByKey over *Record.
func NilsFirst[T any](inner *Comparer[*T]) *Comparer[*T] {
	return nils(inner, true)
}

// NilsLast orders nil pointers last and hands the rest to inner unchanged.
func NilsLast[T any](inner *Comparer[*T]) *Comparer[*T] {
	return nils(inner, false)
}

func nils[T any](inner *Comparer[*T], first bool) *Comparer[*T] {
	nullSide := 1
	if first {
		nullSide = -1
	}
	return New(func(a, b *T) int {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return nullSide
		case b == nil:
			return -nullSide
		case inner == nil:
			return 0
		}
		return inner.cmp(a, b)
	})
}

func nulls[T any](inner *Comparer[T], first bool) *Comparer[*T] {
	var deref *Comparer[*T]
	if inner != nil {
		deref = New(func(a, b *T) int {
			return inner.cmp(*a, *b)
		})
	}
	return nils(deref, first)
}

// Sort returns a stably sorted copy of values.
func (c *Comparer[T]) Sort(values []T) []T {
	if c == nil {
		panic(fnop.Missing("compare.Sort"))
	}
	sorted := slices.Clone(values)
	if sorted == nil {
		sorted = []T{}
	}
	slices.SortStableFunc(sorted, c.cmp)
	return sorted
}
