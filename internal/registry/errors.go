package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports an update or remove against an absent id.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateNumber reports a manuscript number already held by another record.
	ErrDuplicateNumber = errors.New("manuscript number already exists")
	// ErrEmptyNumber reports a missing manuscript number.
	ErrEmptyNumber = errors.New("manuscript number is required")
	// ErrNegativeSLA reports an SLA allowance below zero.
	ErrNegativeSLA = errors.New("sla days must not be negative")
	// ErrLocked reports that another session holds the registry lock.
	ErrLocked = errors.New("registry is locked by another session")
)

// VocabularyError reports a stage or department outside the fixed vocabulary.
type VocabularyError struct {
	Field string
	Value string
}

func (e *VocabularyError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Field, e.Value)
}

// DateError reports a stage-entry date that does not parse as YYYY-MM-DD.
type DateError struct {
	Value string
}

func (e *DateError) Error() string {
	return fmt.Sprintf("invalid entered-stage date %q (expected YYYY-MM-DD)", e.Value)
}
