package service

import "errors"

var (
	ErrEmptyClientID       = errors.New("client id is empty")
	ErrInvalidRate         = errors.New("BTC rate must be positive")
	ErrInvalidRegistration = errors.New("invalid registration")
	ErrInvalidCredentials  = errors.New("invalid login or password")
	ErrEmptyCredentials    = errors.New("login and password are required")

	ErrTokenIsExpired = errors.New("token is expired")
	ErrInvalidToken   = errors.New("token is invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
