// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoTransports means no handler was supplied for a configured address.
	errNoTransports = errors.New("no transports to serve")
)
