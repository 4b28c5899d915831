package http

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/MKhiriev/go-wallet-admin/internal/adapter"
	"github.com/MKhiriev/go-wallet-admin/internal/app"
	"github.com/MKhiriev/go-wallet-admin/internal/service"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// errorMappings is checked in order; the first match wins.
var errorMappings = []errorMapping{
	{service.ErrEmptyClientID, http.StatusBadRequest, app.MsgEmptyClientID},
	{service.ErrInvalidRegistration, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrEmptyCredentials, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpired, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrInvalidToken, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{ErrNoSession, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{ErrInvalidCSRFToken, http.StatusForbidden, app.MsgInvalidCSRFToken},

	{adapter.ErrNotFound, http.StatusNotFound, app.MsgClientNotFound},
	{adapter.ErrConflict, http.StatusConflict, app.MsgAlreadyRegistered},
	{adapter.ErrBadRequest, http.StatusBadRequest, app.MsgInvalidDataProvided},
	// upstream credentials are ours, not the operator's
	{adapter.ErrUnauthorized, http.StatusBadGateway, app.MsgUpstreamUnavailable},
	{adapter.ErrForbidden, http.StatusBadGateway, app.MsgUpstreamUnavailable},
	{adapter.ErrInternalServerError, http.StatusBadGateway, app.MsgUpstreamUnavailable},
	{adapter.ErrBadGateway, http.StatusBadGateway, app.MsgUpstreamUnavailable},
	{adapter.ErrMalformedRate, http.StatusBadGateway, app.MsgUpstreamUnavailable},
	{adapter.ErrServiceUnavailable, http.StatusServiceUnavailable, app.MsgUpstreamUnavailable},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, app.MsgUpstreamUnavailable},
}

// transportFailure is returned for upstream calls that never got an HTTP
// answer: refused dials, DNS failures, resets.
var transportFailure = errorMapping{status: http.StatusBadGateway, message: app.MsgUpstreamUnavailable}

func lookupError(err error) (errorMapping, bool) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m, true
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return transportFailure, true
	}
	return errorMapping{}, false
}

func statusFromError(err error) int {
	if m, ok := lookupError(err); ok {
		return m.status
	}
	return http.StatusInternalServerError
}

// messageFromError returns the user-facing message of err. The messages are
// also the i18n keys of the translated texts.
func messageFromError(err error) string {
	if m, ok := lookupError(err); ok {
		return m.message
	}
	return app.MsgInternalServerError
}
