// Copyright (c) 2026 thepacketgeek <thepacketgeek@gmail.com>.
// SPDX-License-Identifier: MIT

// Package tote caches a single fetched artifact in a local file with a
// freshness window.
//
// A Tote pairs one file path with one maximum age. Get returns the decoded
// file contents while they are younger than the window; otherwise it invokes
// the caller's Fetcher once, writes the result back to the file, and returns
// it. Missing, expired, and undecodable files are all handled the same way:
// refetch and overwrite. Only fetch and persistence failures surface to the
// caller, so a damaged cache file can never permanently wedge a tool.
//
// The file's modification time is the sole freshness signal. No timestamps
// or headers are stored inside the file; the payload is exactly the encoded
// artifact, so it can be inspected or deleted with ordinary shell tools.
//
// Typical use from a CLI that needs a slow-to-build lookup table:
//
//	colors := tote.New[[]string](path, time.Hour)
//	got, err := colors.Get(ctx, tote.FetcherFunc[[]string](
//		func(ctx context.Context) ([]string, error) {
//			return []string{"blue", "green"}, nil
//		}))
//
// The asynchronous variant runs the same logic on its own goroutine and
// delivers a single Result:
//
//	ch := ip.GetAsync(ctx, fetcher)
//	res := <-ch
//	if res.Err != nil { ... }
//
// Tote issues no retries, takes no locks, and performs no atomic renames.
// Concurrent writers to the same path follow last-writer-wins; tools that
// need stronger guarantees should coordinate externally.
package tote
