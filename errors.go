// Copyright (c) 2026 thepacketgeek <thepacketgeek@gmail.com>.
// SPDX-License-Identifier: MIT

package tote

import "fmt"

// FetchError reports that the caller's Fetcher failed while the cache held
// no usable value. The cache file is left untouched. Unwrap exposes the
// fetcher's error verbatim.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch failed: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// PersistError reports that a freshly fetched value could not be written
// back to the cache file. The fetched value is lost to later runs even
// though this one had it in hand.
type PersistError struct {
	Path string
	Err  error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("failed to persist cache file %s: %v", e.Path, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}
