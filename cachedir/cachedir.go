// Copyright (c) 2026 thepacketgeek <thepacketgeek@gmail.com>.
// SPDX-License-Identifier: MIT

package cachedir

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/apex/log"
)

// Dir resolves the base cache directory for app.
// Precedence:
//  1. $<APP>_CACHE_DIR, if set and non-empty
//  2. os.UserCacheDir()/<app>
//
// Returns ("", false) if a base cannot be resolved (treat as disabled).
func Dir(app string) (string, bool) {
	if c, ok := os.LookupEnv(envName(app, "_CACHE_DIR")); ok && c != "" {
		return c, true
	}
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return filepath.Join(dir, app), true
	}
	return "", false
}

// Enabled returns true unless $<APP>_CACHE explicitly disables caching
// ("0"/"false").
func Enabled(app string) bool {
	enabled, _ := os.LookupEnv(envName(app, "_CACHE"))
	return enabled == "" || (enabled != "0" && enabled != "false")
}

// Ensure creates the base cache directory for app if caching is enabled and
// a base path can be resolved. Returns the path, whether it is usable, and
// an error if creation failed.
func Ensure(app string) (string, bool, error) {
	if !Enabled(app) {
		return "", false, nil
	}
	base, ok := Dir(app)
	if !ok {
		return "", false, nil
	}
	if err := os.MkdirAll(base, 0o755); err != nil { //nolint:mnd
		return base, false, fmt.Errorf("failed to create cache base directory: %w", err)
	}
	return base, true, nil
}

// Purge removes files under dir older than maxAge. If maxAge <= 0 it is a
// no-op, as is a dir that does not exist.
func Purge(dir string, maxAge time.Duration) error {
	if maxAge <= 0 {
		log.Debug("cache cleaning disabled")
		return nil
	}
	if _, err := os.Stat(dir); err != nil {
		return nil
	}
	if err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// A failed lstat leaves info nil, e.g. when another process
			// removes the entry mid-walk. Skip it rather than abort the sweep.
			return nil
		}
		if !info.IsDir() && time.Since(info.ModTime()) > maxAge {
			if err := os.Remove(path); err == nil {
				log.Debugf("removed cache file %s", path)
			} else {
				log.WithError(err).Warnf("failed to remove cache file %s", path)
			}
		}
		return nil
	}); err != nil {
		return fmt.Errorf("failed to purge cache: %w", err)
	}
	return nil
}

// envName derives an env var name like TOTE_CACHE_DIR from an app name like
// "tote". Hyphens map to underscores.
func envName(app, suffix string) string {
	return strings.ToUpper(strings.ReplaceAll(app, "-", "_")) + suffix
}
