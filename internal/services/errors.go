package services

import "errors"

// Local validation errors. These short-circuit before any network call;
// the CLI maps them to their user-facing wording.
var (
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrPasswordTooShort = errors.New("password too short")
)
