// Package stream provides a small fluent pipeline over a slice.
//
// A Stream never changes the slice it was built from: Filter, Sorted, Limit
// and Map each produce a new backing slice.
//
// Key operations:
// - Of: start a stream from values
// - Filter/Sorted/Limit/Peek: derive a stream of the same type
// - Map: switch the element type through a Transformer
// - ForEach/Collect/Count: terminate the stream
//
// The first failing action stops the stream; its error is kept and returned
// by the terminal operation.
package stream
