// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package console implements the terminal console runtime.
//
// It opens the local audit database, wires the upstream adapters and the
// console services, and hands the terminal over to the TUI until the operator
// quits.
package console
