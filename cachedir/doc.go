// Copyright (c) 2026 thepacketgeek <thepacketgeek@gmail.com>.
// SPDX-License-Identifier: MIT

// Package cachedir resolves and maintains per-application cache directories
// for tools that keep tote files under the platform cache root. It covers
// the path policy the cache handle itself stays out of: where files live,
// whether caching is enabled at all, and sweeping out old entries.
package cachedir
