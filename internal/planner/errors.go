package planner

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidProfile is wrapped by every ProfileError.
	ErrInvalidProfile = errors.New("invalid profile")

	// ErrUnknownActivityLevel is returned when the activity key is not in the
	// multiplier table. No energy figures are computed in that case.
	ErrUnknownActivityLevel = errors.New("unknown activity level")

	// ErrInsufficientCatalog is wrapped by InsufficientCatalogError.
	ErrInsufficientCatalog = errors.New("insufficient catalog")
)

// ProfileError names the profile field that failed validation.
type ProfileError struct {
	Field  string
	Reason string
}

func (e *ProfileError) Error() string {
	return fmt.Sprintf("invalid profile: %s %s", e.Field, e.Reason)
}

func (e *ProfileError) Unwrap() error { return ErrInvalidProfile }

func invalid(field, reason string) error {
	return &ProfileError{Field: field, Reason: reason}
}

// InsufficientCatalogError reports that the filtered meal pool ran out before
// the requested number of meals could be picked.
type InsufficientCatalogError struct {
	Requested int
	Available int
}

func (e *InsufficientCatalogError) Error() string {
	return fmt.Sprintf("insufficient catalog: %d meals requested, %d available after filtering",
		e.Requested, e.Available)
}

func (e *InsufficientCatalogError) Unwrap() error { return ErrInsufficientCatalog }
