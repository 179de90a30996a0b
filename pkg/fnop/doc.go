// Package fnop holds what the operation packages share: the missing-operation
// errors, the panic-to-error bridge and a nil check that sees through typed
// nil pointers.
//
// The operation kinds live in sub-packages:
// - compare: Comparer[T], identity-equal comparison objects
// - predicate: Predicate[T] with And/Or/Negate
// - function: Transformer[T, R] with AndThen/Compose/Identity
// - action: Action[T] side effects chained with AndThen
// - supply: Supplier[T] lazy value producers
// - stream: Filter/Map/Sorted pipelines over slices
package fnop
