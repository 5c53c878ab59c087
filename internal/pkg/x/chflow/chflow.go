// Package chflow holds channel helpers that give up when a context ends.
package chflow

import "context"

// Receive reads the next value from ch. ok is false when ctx ended first or
// ch was closed.
func Receive[T any](ctx context.Context, ch <-chan T) (v T, ok bool) {
	select {
	case <-ctx.Done():
		return v, false
	case v, ok = <-ch:
		return v, ok
	}
}

// Send delivers v to ch. It reports false if ctx ended before a receiver
// took the value.
func Send[T any](ctx context.Context, ch chan<- T, v T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- v:
		return true
	}
}

// TrySend delivers v only if ch can take it right away.
func TrySend[T any](ch chan<- T, v T) bool {
	select {
	case ch <- v:
		return true
	default:
		return false
	}
}
