/*
Package errors provides semantic error types for the nodeconf library.

The package defines the failure modes of the store with specific types that
can be checked using the standard errors.Is() function or the provided helper
functions.

Common Errors:

	var (
	    ErrUnsupportedType    = errors.New("unsupported value type")
	    ErrInvalidKey         = errors.New("invalid key")
	    ErrUnregisterableNode = errors.New("unregisterable node")
	    ErrNotFound           = errors.New("not found")
	    ErrAlreadyExists      = errors.New("already exists")
	    ErrInvalidInput       = errors.New("invalid input")
	)

Usage:

	// Check error type
	err := store.Set("spawn", struct{}{})
	if err != nil {
	    if errors.IsUnsupportedType(err) {
	        // The value has no node kind that can hold it
	    }
	    return err
	}

	// Create typed errors
	err := errors.NewUnsupportedTypeError("spawn", "struct {}")
	err := errors.NewInvalidKeyError("x:__conf:y", ":__conf:")
	err := errors.NewUnregisterableNodeError("Conf.broken", "chan int", "no value type")

UnregisterableNode is never returned by adoption or sync; those paths log it
as a warning and continue. It is returned to direct RegisterExisting callers.

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
