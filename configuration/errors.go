package configuration

import "errors"

// ErrBadDigit indicates Parse was given a non-digit character.
var ErrBadDigit = errors.New("configuration: label string must contain only digits")
