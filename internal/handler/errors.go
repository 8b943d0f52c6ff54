// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when both SERVER_ADDRESS
// and SERVER_GRPC_ADDRESS are empty.
var errNoHandlersAreCreated = errors.New("no handlers are created")
