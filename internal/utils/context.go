// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and password hashing.
package utils

import (
	"context"

	"github.com/google/uuid"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AdminIDCtxKey is the key used to store the signed-in operator identifier
// in the context.
var AdminIDCtxKey = contextKey("adminID")

// AdminLoginCtxKey is the key used to store the signed-in operator login
// in the context.
var AdminLoginCtxKey = contextKey("adminLogin")

// WithAdmin returns a copy of ctx carrying the operator identity.
func WithAdmin(ctx context.Context, adminID uuid.UUID, login string) context.Context {
	ctx = context.WithValue(ctx, AdminIDCtxKey, adminID)
	return context.WithValue(ctx, AdminLoginCtxKey, login)
}

// GetAdminIDFromContext retrieves the operator identifier from the context.
//
// Returns ok == false when the value is missing or has an unexpected type.
func GetAdminIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	adminID, ok := ctx.Value(AdminIDCtxKey).(uuid.UUID)
	return adminID, ok
}

// GetAdminLoginFromContext retrieves the operator login from the context.
func GetAdminLoginFromContext(ctx context.Context) (string, bool) {
	login, ok := ctx.Value(AdminLoginCtxKey).(string)
	return login, ok && login != ""
}
