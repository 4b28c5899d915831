// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated is returned by NewServer when neither the dashboard
// nor the health endpoint has both an address and a handler.
var errNoServersAreCreated = errors.New("neither http nor grpc server is configured")
