// Package function provides Transformer[T, R], a pure mapping from T to R.
//
// Go methods cannot introduce type parameters, so composition across types is
// offered as package functions (AndThen, Compose). Transformers from T to T
// also have the method forms.
package function
