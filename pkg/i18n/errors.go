package i18n

import "errors"

var (
	ErrEmptyLocale = errors.New("i18n: locale cannot be empty")
	ErrNilLoader   = errors.New("i18n: loader cannot be nil")
	ErrInvalidFile = errors.New("i18n: invalid translation file")
	ErrLoadFailed  = errors.New("i18n: failed to load locale")
	ErrNilResolver = errors.New("i18n: resolver cannot be nil")
)
