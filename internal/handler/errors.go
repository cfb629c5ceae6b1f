// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoTransportHandlers is returned by NewHandlers when the server config
// names neither an HTTP nor a gRPC address. The process cannot serve any
// request in that state, so startup fails.
var errNoTransportHandlers = errors.New("no transport handlers: set an HTTP or gRPC address")
