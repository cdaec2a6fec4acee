package apperr

import "errors"

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrConflict indicates a uniqueness or state conflict (HTTP 409).
var ErrConflict = errors.New("conflict")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrConfigMissing indicates that a required external credential or
// configuration value is absent. There is no fallback.
var ErrConfigMissing = errors.New("configuration missing")

// ErrTransient indicates a network or database failure with no automatic
// retry; the caller decides whether to try again.
var ErrTransient = errors.New("transient io error")
