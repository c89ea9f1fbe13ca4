package model

import (
	"github.com/Astemirdum/book-catalog/catalog/internal/errs"
	"github.com/pkg/errors"
)

type Status string

const (
	StatusAvailable  Status = "available"
	StatusCheckedOut Status = "checked out"
)

func (s Status) Valid() bool {
	return s == StatusAvailable || s == StatusCheckedOut
}

// Availability is Available (no payload) or CheckedOut with an optional DueDate.
type Availability struct {
	Status  Status `json:"availability" validate:"status"`
	DueDate string `json:"dueDate,omitempty"`
}

func Available() Availability {
	return Availability{Status: StatusAvailable}
}

func CheckedOut(dueDate string) Availability {
	return Availability{Status: StatusCheckedOut, DueDate: dueDate}
}

func (a Availability) IsAvailable() bool {
	return a.Status == StatusAvailable
}

// Consistent reports whether the payload matches the variant: Available never
// carries a due date.
func (a Availability) Consistent() bool {
	return !a.IsAvailable() || a.DueDate == ""
}

func (a Availability) IsCheckedOut() bool {
	return a.Status == StatusCheckedOut
}

// Checkout is the Available -> CheckedOut transition.
func (a Availability) Checkout(dueDate string) (Availability, error) {
	if !a.IsAvailable() {
		return a, errors.Wrapf(errs.ErrIllegalTransition, "checkout from %q", a.Status)
	}
	return CheckedOut(dueDate), nil
}

// Return is the CheckedOut -> Available transition.
func (a Availability) Return() (Availability, error) {
	if !a.IsCheckedOut() {
		return a, errors.Wrapf(errs.ErrIllegalTransition, "return from %q", a.Status)
	}
	return Available(), nil
}
