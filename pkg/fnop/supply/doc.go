// Package supply provides Supplier[T], a zero-argument producer invoked
// lazily. Each Get may produce a new value; nothing is cached unless the
// supplier is wrapped with Memoize.
package supply
