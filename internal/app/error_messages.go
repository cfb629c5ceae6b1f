// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-auth-keeper server handlers and middleware.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. Internal error details never reach the client; handlers
// pick one of these instead.
package app

const (
	// MsgInvalidDataProvided is returned when the request body fails basic
	// validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgIncorrectCredentials is returned when the password does not match.
	// It deliberately does not say which field was wrong.
	MsgIncorrectCredentials = "incorrect username or password"

	// MsgUserNotFound is returned when the login handle or user ID does not
	// match any user record.
	MsgUserNotFound = "user not found"

	// MsgPermissionDenied is returned when the user exists but lacks the role
	// required for the operation.
	MsgPermissionDenied = "permission denied"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is either
	// expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgServiceUnavailable is returned when a transient storage failure
	// prevents the request from being served. The client may retry.
	MsgServiceUnavailable = "service temporarily unavailable"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal Server Error"

	// MsgLogEntryCreated confirms that an event-log row was stored.
	MsgLogEntryCreated = "Log entry successfully created."
)
