package errors

import (
	"errors"
	"fmt"
)

// Common error types for the client
var (
	// Storage errors
	ErrNotFound = errors.New("not found")

	// Session errors
	ErrNoSession      = errors.New("no session")
	ErrNoRefreshToken = errors.New("no refresh token")
	ErrNoDeviceID     = errors.New("no device id")

	// API errors
	ErrUnexpectedStatus = errors.New("unexpected http status")

	// General errors
	ErrInternal    = errors.New("internal error")
	ErrUnsupported = errors.New("unsupported operation")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
