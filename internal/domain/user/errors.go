package user

import "errors"

// User domain errors
var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("user email already registered")
)
