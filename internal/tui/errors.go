// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The CipherShare Authors

package tui

import "strings"

// humanizeServerUnavailableError collapses the zoo of transport errors into
// one message the user can act on; everything else passes through verbatim.
func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network connection or the server is unavailable"
	}

	return err.Error()
}
