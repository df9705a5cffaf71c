// Copyright (c) 2026 thepacketgeek <thepacketgeek@gmail.com>.
// SPDX-License-Identifier: MIT

package tote

// Verdict classifies the cache file at the moment it was examined. It is
// computed on every call and never stored.
type Verdict int

const (
	// Fresh means the file exists, is within the freshness window, and
	// decoded cleanly.
	Fresh Verdict = iota
	// Missing means no file exists at the path, or its metadata could
	// not be read.
	Missing
	// Expired means the file's age exceeds the freshness window.
	Expired
	// Corrupt means the file was unreadable or its contents failed to
	// decode.
	Corrupt
)

func (v Verdict) String() string {
	switch v {
	case Fresh:
		return "fresh"
	case Missing:
		return "missing"
	case Expired:
		return "expired"
	case Corrupt:
		return "corrupt"
	default:
		return "unknown"
	}
}
