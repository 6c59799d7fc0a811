// Package chflow provides context-aware helpers for receiving from and
// sending to Go channels, and for draining a channel with a fixed pool of
// workers. Every helper respects cancellation via context.Context.
package chflow

import (
	"context"
	"sync"
)

// Receive waits to receive a value from the provided channel or for the context to be canceled.
// It returns the value (zero value if canceled) and a boolean indicating if the receive was successful.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var zero T
	select {
	case <-ctx.Done():
		return zero, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Send attempts to send a value to the provided channel unless the context is canceled first.
// It returns true if the send was successful, false if the context was done before sent.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}

// Consume starts n workers that call fn for every value received from ch.
// Workers exit when ch is closed or ctx is done. The returned function
// blocks until all of them have returned.
//
// n lower than one is treated as one.
func Consume[T any](ctx context.Context, n int, ch <-chan T, fn func(context.Context, T)) (wait func()) {
	n = max(n, 1)

	var wg sync.WaitGroup
	wg.Add(n)
	for range n {
		go func() {
			defer wg.Done()
			for {
				data, ok := Receive(ctx, ch)
				if !ok {
					return
				}
				fn(ctx, data)
			}
		}()
	}

	return wg.Wait
}
