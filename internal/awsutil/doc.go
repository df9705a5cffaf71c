// Copyright (c) 2026 thepacketgeek <thepacketgeek@gmail.com>.
// SPDX-License-Identifier: MIT

// Package awsutil contains AWS SDK helpers used by the example tools that
// cache answers from AWS services.
package awsutil
