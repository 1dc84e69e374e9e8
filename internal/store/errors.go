package store

import "errors"

var (
	// ErrNotFound is wrapped by every lookup failure, so callers can test for
	// "target missing" without caring which kind of entity it was.
	ErrNotFound = errors.New("not found")

	ErrProjectNotFound  = &notFoundError{"project"}
	ErrDocumentNotFound = &notFoundError{"document"}
	ErrContactNotFound  = &notFoundError{"contact"}
	ErrTaskNotFound     = &notFoundError{"task"}

	ErrInvalidInput       = errors.New("invalid input")
	ErrCorruptState       = errors.New("corrupt persisted state")
	ErrUnsupportedVersion = errors.New("unsupported state version")
)

type notFoundError struct {
	kind string
}

func (e *notFoundError) Error() string {
	return e.kind + " not found"
}

func (e *notFoundError) Unwrap() error {
	return ErrNotFound
}
