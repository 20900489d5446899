package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNoRoot      = errors.New("no pictures root configured")
	ErrNotFound    = errors.New("not found")
	ErrNotAbsolute = errors.New("path is not absolute")
	ErrNoPrefs     = errors.New("preference store unavailable")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// RootError represents a failure to change the configured pictures root
type RootError struct {
	Path   string
	Reason string
}

func (e *RootError) Error() string {
	return fmt.Sprintf("cannot use %s as pictures root: %s", e.Path, e.Reason)
}

func (e *RootError) Is(target error) bool {
	return target == ErrNotAbsolute
}
