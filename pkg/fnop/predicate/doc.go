// Package predicate provides Predicate[T], a boolean test over T.
//
// And and Or short-circuit left to right. Composing with a nil predicate
// panics at composition time with fnop.ErrMissingOperand.
package predicate
