package service

import "errors"

var (
	// ErrInvalidCredentials is returned on login failure without
	// revealing whether the username existed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotLoggedIn covers a missing session marker.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrUnauthorized covers role and identity mismatches on booking
	// operations.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnknownExpertise is returned for search input outside the
	// fixed tag set.
	ErrUnknownExpertise = errors.New("unknown expertise")

	// ErrTransitionNotAllowed is returned in strict mode when the
	// requested status may not follow the current one.
	ErrTransitionNotAllowed = errors.New("status transition not allowed")
)
