// Package pipeline provides lazy transform and truncate stages over iter.Seq.
package pipeline

import (
	"iter"
	"slices"
)

// Of yields the elements of values in order.
func Of[T any](values []T) iter.Seq[T] {
	return slices.Values(values)
}

// Map yields fn applied to each element of seq.
func Map[T, U any](seq iter.Seq[T], fn func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// Take yields at most n elements of seq and stops pulling from seq once n
// have been produced.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		count := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			count++
			if count == n {
				return
			}
		}
	}
}

// Each calls fn for every element of seq.
func Each[T any](seq iter.Seq[T], fn func(T)) {
	for v := range seq {
		fn(v)
	}
}

// Collect drains seq into a slice.
func Collect[T any](seq iter.Seq[T]) []T {
	return slices.Collect(seq)
}
