package errs

import (
	"errors"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateID       = errors.New("book with this id already exists")
	ErrEmptyCatalog      = errors.New("no books in catalog")
	ErrIllegalTransition = errors.New("illegal availability transition")
	ErrUnknownField      = errors.New("unknown search field")
	ErrValidation        = errors.New("validation failed")
	// ErrAvailabilityUpdate is returned in strict mode only.
	ErrAvailabilityUpdate = errors.New("availability can only change through checkout or return")
)
