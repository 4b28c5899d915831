package models

import (
	"time"

	"github.com/google/uuid"
)

// Admin is an operator allowed to sign in to the dashboard.
type Admin struct {
	// AdminID is the unique identifier of the operator.
	AdminID uuid.UUID `json:"admin_id"`

	// Login is the unique sign-in name.
	Login string `json:"login"`

	// PasswordHash is the bcrypt hash of the operator's password.
	// Never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table associated with Admin.
func (a Admin) TableName() string {
	return "admins"
}
