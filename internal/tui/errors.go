// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-wallet-admin/internal/adapter"
	"github.com/MKhiriev/go-wallet-admin/internal/app"
	"github.com/MKhiriev/go-wallet-admin/internal/service"
)

var upstreamErrors = []error{
	adapter.ErrUnauthorized,
	adapter.ErrForbidden,
	adapter.ErrInternalServerError,
	adapter.ErrBadGateway,
	adapter.ErrServiceUnavailable,
	context.DeadlineExceeded,
}

// errorKey maps err to the message key shown to the operator.
func errorKey(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, adapter.ErrNotFound):
		return app.MsgClientNotFound
	case errors.Is(err, service.ErrEmptyClientID):
		return app.MsgEmptyClientID
	}

	for _, target := range upstreamErrors {
		if errors.Is(err, target) {
			return app.MsgUpstreamUnavailable
		}
	}
	if isNetworkError(err) {
		return app.MsgUpstreamUnavailable
	}

	return "error occurred"
}

// isNetworkError recognizes transport failures that reach us unwrapped.
func isNetworkError(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout")
}
