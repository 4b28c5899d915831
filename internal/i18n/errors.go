package i18n

import "errors"

var (
	ErrNoCatalogs        = errors.New("no locale catalogs found")
	ErrMissingBaseLocale = errors.New("base locale is not defined")
	ErrUnsupportedLocale = errors.New("unsupported locale")
)
