/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrUnsupportedType is returned when a value's runtime type maps to no value type
	ErrUnsupportedType = errors.New("unsupported value type")

	// ErrInvalidKey is returned when a name contains the key separator
	ErrInvalidKey = errors.New("invalid key")

	// ErrUnregisterableNode is reported when an existing node cannot be adopted
	ErrUnregisterableNode = errors.New("unregisterable node")

	// ErrNotFound is returned when a node or entry is not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when attempting to register something twice
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// UnsupportedTypeError carries the offending key and a description of the value's type.
type UnsupportedTypeError struct {
	Key  string
	Type string
}

func (e *UnsupportedTypeError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("unsupported value type %s", e.Type)
	}
	return fmt.Sprintf("unsupported value type %s for key %q", e.Type, e.Key)
}

func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}

// InvalidKeyError represents a name that cannot be encoded into a key
type InvalidKeyError struct {
	Name      string
	Separator string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid key %q: name must not contain %q", e.Name, e.Separator)
}

func (e *InvalidKeyError) Is(target error) bool {
	return target == ErrInvalidKey
}

// UnregisterableNodeError describes an existing node that was skipped during adoption.
type UnregisterableNodeError struct {
	Path   string
	Type   string
	Reason string
}

func (e *UnregisterableNodeError) Error() string {
	return fmt.Sprintf("cannot register node %s holding %s: %s", e.Path, e.Type, e.Reason)
}

func (e *UnregisterableNodeError) Is(target error) bool {
	return target == ErrUnregisterableNode
}

// NotFoundError represents an error when a node or entry is not found
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyExistsError represents an error when a registration already exists
type AlreadyExistsError struct {
	Type string
	Key  string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s with key %q already exists", e.Type, e.Key)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Helper functions for creating errors

// NewUnsupportedTypeError creates a new UnsupportedTypeError
func NewUnsupportedTypeError(key, typeName string) error {
	return &UnsupportedTypeError{Key: key, Type: typeName}
}

// NewInvalidKeyError creates a new InvalidKeyError
func NewInvalidKeyError(name, separator string) error {
	return &InvalidKeyError{Name: name, Separator: separator}
}

// NewUnregisterableNodeError creates a new UnregisterableNodeError
func NewUnregisterableNodeError(path, typeName, reason string) error {
	return &UnregisterableNodeError{Path: path, Type: typeName, Reason: reason}
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(kind, key string) error {
	return &NotFoundError{Type: kind, Key: key}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(kind, key string) error {
	return &AlreadyExistsError{Type: kind, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsUnsupportedType checks if an error is an unsupported type error
func IsUnsupportedType(err error) bool {
	return errors.Is(err, ErrUnsupportedType)
}

// IsInvalidKey checks if an error is an invalid key error
func IsInvalidKey(err error) bool {
	return errors.Is(err, ErrInvalidKey)
}

// IsUnregisterableNode checks if an error is an unregisterable node error
func IsUnregisterableNode(err error) bool {
	return errors.Is(err, ErrUnregisterableNode)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
