package web

import "errors"

var (
	ErrNoTemplates = errors.New("no page templates found")
	ErrUnknownPage = errors.New("unknown page")
)
