package services

import (
	"errors"
	"fmt"
)

// ErrRecipeNotFound means the requested recipe id does not exist.
var ErrRecipeNotFound = errors.New("recipe not found")

// GenerationError wraps a failure of the external recipe generator. Nothing
// has been written when it is returned, so the whole operation is safe to
// retry.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("recipe generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// PersistenceError wraps a failed variant write. The write runs in one
// transaction, so no partial rows are left behind.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("variant persistence failed: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
