// Copyright (c) 2026 thepacketgeek <thepacketgeek@gmail.com>.
// SPDX-License-Identifier: MIT

package tote

import (
	"context"
	"os"
	"time"
)

// Tote is a handle to one cached artifact: a file path plus the window
// within which its contents are considered fresh. A Tote holds no open
// resources and keeps no state between calls; it is cheap to construct
// on every run.
type Tote[T any] struct {
	path   string
	maxAge time.Duration
	codec  Codec[T]
}

// Option configures a Tote at construction.
type Option[T any] func(*Tote[T])

// WithCodec replaces the default JSON codec.
func WithCodec[T any](c Codec[T]) Option[T] {
	return func(t *Tote[T]) { t.codec = c }
}

// New returns a handle for the artifact cached at path. It performs no I/O
// and cannot fail; the file need not exist yet. A non-positive maxAge means
// every run refetches.
func New[T any](path string, maxAge time.Duration, opts ...Option[T]) *Tote[T] {
	t := &Tote[T]{
		path:   path,
		maxAge: maxAge,
		codec:  JSONCodec[T]{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Path returns the cache file path.
func (t *Tote[T]) Path() string { return t.path }

// MaxAge returns the freshness window.
func (t *Tote[T]) MaxAge() time.Duration { return t.maxAge }

// Get returns the cached artifact if the file is fresh. Otherwise it calls f
// exactly once, overwrites the file with the encoded result, and returns the
// fetched value. Missing, expired, and corrupt files all take the fetch
// path; no error from those conditions reaches the caller. A fetch failure
// comes back as *FetchError with nothing written. A failure to encode or
// write the fetched value comes back as *PersistError.
//
// ctx is consulted before the fetch and again before the write; once it is
// done, Get returns ctx.Err() without touching the file.
func (t *Tote[T]) Get(ctx context.Context, f Fetcher[T]) (T, error) {
	if v, verdict := t.load(); verdict == Fresh {
		return v, nil
	}

	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	v, err := f.Fetch(ctx)
	if err != nil {
		return zero, &FetchError{Err: err}
	}

	if err := ctx.Err(); err != nil {
		return zero, err
	}

	if err := t.put(v); err != nil {
		return zero, err
	}
	return v, nil
}

// GetAsync runs the same logic as Get on its own goroutine and delivers a
// single Result on the returned channel, which is buffered and closed after
// the send, so the caller may receive at leisure or not at all.
func (t *Tote[T]) GetAsync(ctx context.Context, f Fetcher[T]) <-chan Result[T] {
	out := make(chan Result[T], 1)
	go func() {
		defer close(out)
		v, err := t.Get(ctx, f)
		out <- Result[T]{Value: v, Err: err}
	}()
	return out
}

// Inspect classifies the cache file without fetching or writing anything.
func (t *Tote[T]) Inspect() Verdict {
	_, verdict := t.load()
	return verdict
}

// load examines the cache file and decodes it when usable. The verdict
// explains the miss otherwise; the value is meaningful only when the
// verdict is Fresh.
func (t *Tote[T]) load() (T, Verdict) {
	var zero T

	// A stat failure beyond not-found classifies as Missing too; the age
	// is unknowable without metadata.
	info, err := os.Stat(t.path)
	if err != nil {
		return zero, Missing
	}

	if time.Since(info.ModTime()) > t.maxAge {
		return zero, Expired
	}

	data, err := os.ReadFile(t.path)
	if err != nil {
		return zero, Corrupt
	}
	v, err := t.codec.Decode(data)
	if err != nil {
		return zero, Corrupt
	}
	return v, Fresh
}

// put encodes v and fully overwrites the cache file, refreshing its
// modification time. The write is not atomic and takes no lock.
func (t *Tote[T]) put(v T) error {
	data, err := t.codec.Encode(v)
	if err != nil {
		return &PersistError{Path: t.path, Err: err}
	}
	if err := os.WriteFile(t.path, data, os.FileMode(0o600)); err != nil { //nolint:mnd
		return &PersistError{Path: t.path, Err: err}
	}
	return nil
}
