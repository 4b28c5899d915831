// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-wallet-admin handlers, services and the console.
//
// All Msg* constants are human-readable message strings that are written into
// JSON response bodies or log entries to describe the outcome of an
// operation. Page templates show translated strings instead.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match any operator.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a session token is either
	// expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgInvalidCSRFToken is returned when a form post carries no valid
	// anti-forgery token.
	MsgInvalidCSRFToken = "invalid csrf token"

	// MsgEmptyClientID is returned when a client route has no id.
	MsgEmptyClientID = "client id is required"

	// MsgClientNotFound is returned when the Clients API does not know the
	// requested client.
	MsgClientNotFound = "client not found"

	// MsgAlreadyRegistered is returned when a registration email is taken.
	MsgAlreadyRegistered = "already registered"

	// MsgUpstreamUnavailable is returned when an upstream API fails.
	MsgUpstreamUnavailable = "upstream service unavailable"

	// MsgPageNotFound is returned for unknown routes.
	MsgPageNotFound = "page not found"

	// MsgFailedToFetchBTCRate is shown on the balance card when the rate
	// could not be fetched.
	MsgFailedToFetchBTCRate = "Failed to fetch BTC rate"
)
