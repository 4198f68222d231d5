// Package errors provides error types and helpers shared by urlfeat packages.
// It extends the standard errors package with context wrapping and
// classification of filesystem failures.
package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// Sentinel errors for common failure scenarios
var (
	// ErrNotFound indicates a file or artifact does not exist
	ErrNotFound = errors.New("not found")

	// ErrPermission indicates the process may not read or write a path
	ErrPermission = errors.New("permission denied")
)

// wrappedError wraps an error with additional context
type wrappedError struct {
	msg   string
	cause error
}

func (e *wrappedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

func (e *wrappedError) Unwrap() error {
	return e.cause
}

// Wrap wraps an error with additional context message.
// If err is nil, Wrap returns nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{msg: msg, cause: err}
}

// Wrapf wraps an error with a formatted context message.
// If err is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &wrappedError{msg: fmt.Sprintf(format, args...), cause: err}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Join returns an error that wraps the given errors, discarding nils.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// IsNotFound reports whether err means a missing file or artifact.
func IsNotFound(err error) bool {
	return Is(err, ErrNotFound) || Is(err, fs.ErrNotExist)
}

// IsPermission reports whether err means the path is not accessible.
func IsPermission(err error) bool {
	return Is(err, ErrPermission) || Is(err, fs.ErrPermission)
}

// Classify joins a filesystem error with the matching sentinel so callers
// can test it with Is without importing io/fs. Other errors pass through.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case Is(err, fs.ErrNotExist):
		return Join(ErrNotFound, err)
	case Is(err, fs.ErrPermission):
		return Join(ErrPermission, err)
	default:
		return err
	}
}
