// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// [App] parses a sub-command and its arguments, calls the server through an
// [adapter.ServerAdapter] and prints the JSON result to its output writer.
//
// Supported commands:
//
//	login    <username> <password>
//	api-key  [-token T | -username U -password P] <user_id> [permission ...]
//	convert  <timestamp> <source_tz> <target_tz>
//	health
//	log      [-description D] [-conversion-request-id ID] <action>
package client
