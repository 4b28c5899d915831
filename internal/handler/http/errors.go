// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the session middleware and form handlers.
var (
	// ErrNoSession is returned when a request carries neither a session
	// cookie nor an "Authorization" header.
	ErrNoSession = errors.New("no session cookie or `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidCSRFToken is returned when a session form is posted without
	// the token derived from its session.
	ErrInvalidCSRFToken = errors.New("invalid csrf token")
)
