// Copyright (c) 2026 thepacketgeek <thepacketgeek@gmail.com>.
// SPDX-License-Identifier: MIT

package tote

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAsync_DeliversExactlyOneResult(t *testing.T) {
	path := cachePath(t)
	f := &countingFetcher{value: []string{"async"}}

	ch := New[[]string](path, time.Hour).GetAsync(context.Background(), f)

	res, ok := <-ch
	require.True(t, ok)
	require.NoError(t, res.Err)
	assert.Equal(t, []string{"async"}, res.Value)
	assert.Equal(t, 1, f.calls)

	// After the single delivery the channel is closed.
	_, ok = <-ch
	assert.False(t, ok)
}

func TestGetAsync_FreshHitMatchesGet(t *testing.T) {
	path := cachePath(t)
	tt := New[[]string](path, time.Hour)

	want, err := tt.Get(context.Background(), &countingFetcher{value: []string{"same"}})
	require.NoError(t, err)

	f := &countingFetcher{value: []string{"different"}}
	res := <-tt.GetAsync(context.Background(), f)
	require.NoError(t, res.Err)
	assert.Equal(t, want, res.Value)
	assert.Equal(t, 0, f.calls)
}

func TestGetAsync_FetchErrorInResult(t *testing.T) {
	path := cachePath(t)
	boom := errors.New("socket chewed by raccoon")

	res := <-New[[]string](path, time.Hour).GetAsync(context.Background(), &countingFetcher{err: boom})
	require.Error(t, res.Err)

	var fe *FetchError
	assert.ErrorAs(t, res.Err, &fe)
	assert.ErrorIs(t, res.Err, boom)
}

func TestGetAsync_HonorsCancellation(t *testing.T) {
	path := cachePath(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := &countingFetcher{value: []string{"x"}}
	res := <-New[[]string](path, time.Hour).GetAsync(ctx, f)
	assert.ErrorIs(t, res.Err, context.Canceled)
	assert.Equal(t, 0, f.calls)
}

func TestGetAsync_CallerNeedNotReceive(t *testing.T) {
	path := cachePath(t)
	f := &countingFetcher{value: []string{"fire-and-forget"}}

	// Dropping the channel must not leak or block the worker; the buffer
	// absorbs the single send. Poll until the write lands.
	New[[]string](path, time.Hour).GetAsync(context.Background(), f)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if New[[]string](path, time.Hour).Inspect() == Fresh {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("async get never persisted the artifact")
}
