// Copyright (c) 2026 thepacketgeek <thepacketgeek@gmail.com>.
// SPDX-License-Identifier: MIT

package tote

import "context"

// Fetcher produces a fresh artifact when the cached one is unusable. The
// cache invokes it with no arguments beyond the caller's context, at most
// once per Get, and never retries it.
type Fetcher[T any] interface {
	Fetch(ctx context.Context) (T, error)
}

// FetcherFunc adapts a plain function to the Fetcher interface.
type FetcherFunc[T any] func(ctx context.Context) (T, error)

func (f FetcherFunc[T]) Fetch(ctx context.Context) (T, error) {
	return f(ctx)
}

// Result carries the outcome of a GetAsync call. Exactly one Result is
// delivered per call.
type Result[T any] struct {
	Value T
	Err   error
}
