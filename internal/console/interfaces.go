// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package console

import "context"

// UI is the interactive front end the console runs.
type UI interface {
	// Run takes over the terminal and blocks until the operator quits.
	Run(ctx context.Context) error
}
