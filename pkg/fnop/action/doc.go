// Package action provides Action[T], a side effect applied to a value.
//
// Actions report failure through their error result. AndThen chains actions
// over the same input and stops at the first failure.
package action
