package inventory

import "errors"

var (
	// ErrProjectNotFound indicates the project doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrInvalidInput indicates invalid project input.
	ErrInvalidInput = errors.New("invalid project input")
	// ErrProjectLocked indicates a baseline import on an already-locked project.
	ErrProjectLocked = errors.New("project baseline already imported")
)
