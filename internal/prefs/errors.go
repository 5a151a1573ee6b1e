package prefs

import "errors"

var (
	// ErrContextUnavailable is returned when a controller is looked up outside
	// a provider scope.
	ErrContextUnavailable = errors.New("prefs: no preference controller in scope")

	// ErrStorageUnavailable wraps failures of the persistence medium.
	ErrStorageUnavailable = errors.New("prefs: storage unavailable")

	// ErrUnrecognizedValue is returned for theme or mode values outside the
	// catalog.
	ErrUnrecognizedValue = errors.New("prefs: unrecognized preference value")
)
