// Package common defines shared sentinel errors and error types used across
// the client layers. Callers should use errors.Is / errors.As to match them.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// ErrStorage marks failures of the client-side key-value store.
	// Unavailability of the store is fatal to the running operation.
	ErrStorage = errors.New("storage error")

	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("validation error")

	// ErrInvalidCredentials is the single login failure reported to callers.
	// It does not tell an unknown identifier apart from a wrong password.
	ErrInvalidCredentials = errors.New("Invalid credentials")

	// Token errors.
	ErrInvalidToken = errors.New("invalid token")
)

// ValidationError reports the first user-input rule that failed.
// Message is human readable and is shown to the user as is.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// StorageError wraps a failed read or write of a store key.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func NewStorageError(op, key string, err error) *StorageError {
	return &StorageError{Op: op, Key: key, Err: err}
}

func (e *StorageError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage %s[%s]: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}
