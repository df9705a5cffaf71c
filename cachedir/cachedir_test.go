// Copyright (c) 2026 thepacketgeek <thepacketgeek@gmail.com>.
// SPDX-License-Identifier: MIT

package cachedir

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDir_EnvOverrideWins(t *testing.T) {
	t.Setenv("MYAPP_CACHE_DIR", "/var/cache/custom")

	dir, ok := Dir("myapp")
	assert.True(t, ok)
	assert.Equal(t, "/var/cache/custom", dir)
}

func TestDir_FallsBackToUserCacheDir(t *testing.T) {
	t.Setenv("MYAPP_CACHE_DIR", "")

	dir, ok := Dir("myapp")
	if !ok {
		t.Skip("no user cache dir on this platform")
	}
	assert.Equal(t, "myapp", filepath.Base(dir))
}

func TestDir_HyphenatedAppName(t *testing.T) {
	t.Setenv("MY_TOOL_CACHE_DIR", "/tmp/my-tool-cache")

	dir, ok := Dir("my-tool")
	assert.True(t, ok)
	assert.Equal(t, "/tmp/my-tool-cache", dir)
}

func TestEnabled(t *testing.T) {
	tests := []struct {
		name  string
		value string
		set   bool
		want  bool
	}{
		{name: "unset", want: true},
		{name: "empty", value: "", set: true, want: true},
		{name: "zero", value: "0", set: true, want: false},
		{name: "false", value: "false", set: true, want: false},
		{name: "anything else", value: "yes", set: true, want: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.set {
				t.Setenv("MYAPP_CACHE", tc.value)
			}
			assert.Equal(t, tc.want, Enabled("myapp"))
		})
	}
}

func TestEnsure_CreatesBase(t *testing.T) {
	base := filepath.Join(t.TempDir(), "deep", "cache")
	t.Setenv("MYAPP_CACHE_DIR", base)

	got, ok, err := Ensure("myapp")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, base, got)

	info, err := os.Stat(base)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsure_DisabledIsNoop(t *testing.T) {
	t.Setenv("MYAPP_CACHE", "0")

	_, ok, err := Ensure("myapp")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPurge_RemovesOnlyStaleFiles(t *testing.T) {
	dir := t.TempDir()

	stale := filepath.Join(dir, "stale.json")
	fresh := filepath.Join(dir, "fresh.json")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o600))
	require.NoError(t, os.WriteFile(fresh, []byte("new"), 0o600))

	old := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))

	require.NoError(t, Purge(dir, 24*time.Hour))

	_, err := os.Stat(stale)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(fresh)
	assert.NoError(t, err)
}

func TestPurge_NonPositiveAgeIsNoop(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keep.json")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	old := time.Now().Add(-240 * time.Hour)
	require.NoError(t, os.Chtimes(path, old, old))

	require.NoError(t, Purge(dir, 0))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestPurge_MissingDirIsNoop(t *testing.T) {
	assert.NoError(t, Purge(filepath.Join(t.TempDir(), "nope"), time.Hour))
}

func TestPurge_SurvivesConcurrentRemoval(t *testing.T) {
	dir := t.TempDir()

	old := time.Now().Add(-48 * time.Hour)
	paths := make([]string, 0, 2000)
	for i := 0; i < 2000; i++ {
		p := filepath.Join(dir, fmt.Sprintf("entry-%04d.json", i))
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o600))
		require.NoError(t, os.Chtimes(p, old, old))
		paths = append(paths, p)
	}

	// Remove entries from the tail while the sweep walks from the head, so
	// some vanish between the walk's readdir and its per-entry lstat.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := len(paths) - 1; i >= 0; i-- {
			_ = os.Remove(paths[i])
		}
	}()

	assert.NotPanics(t, func() {
		assert.NoError(t, Purge(dir, 24*time.Hour))
	})
	<-done
}
