// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net"
	"net/http"
	"strings"
)

const ForwardedHostHeader = "X-Forwarded-Host"

// NormalizeHost trims whitespace, strips any port and lower-cases host.
func NormalizeHost(host string) string {
	host = strings.TrimSpace(host)
	if host == "" {
		return ""
	}

	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}

	host = strings.TrimSuffix(strings.Trim(host, "[]"), ".")

	return strings.ToLower(host)
}

// RequestHost returns the normalised host of r. X-Forwarded-Host is only honoured
// when trustForwarded is set, and only its first value is used.
func RequestHost(r *http.Request, trustForwarded bool) string {
	if trustForwarded {
		if fwd := r.Header.Get(ForwardedHostHeader); fwd != "" {
			first, _, _ := strings.Cut(fwd, ",")
			return NormalizeHost(first)
		}
	}

	return NormalizeHost(r.Host)
}
