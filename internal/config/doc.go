// Package config loads, merges and validates configuration.
//
// Sources are applied in this order, later ones overriding non-zero fields:
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// [GetStructuredConfig] serves the dashboard server and [GetConsoleConfig]
// the terminal console.
package config
