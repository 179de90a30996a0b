// Package compare provides Comparer[T], a composable ordering over T.
//
// Comparers are objects with identity: two comparers are Equal only when they
// are the same instance, even if they order values identically. Every
// combinator returns a fresh instance.
//
// Key operations:
// - New/NaturalOrder/ReverseOrder/Natural/Difference: build a comparer
// - ByKey/ByOptionKey: order by an extracted key
// - Reverse/ThenBy/ThenComparing: derive a comparer
// - NullsFirst/NullsLast: lift a Comparer[T] to Comparer[*T]
// - NilsFirst/NilsLast: nil-safe Comparer[*T] from one that already takes
//   pointers, e.g. NilsLast(ByKey(record.Phone))
// - Sort: stable sort into a new slice
package compare
