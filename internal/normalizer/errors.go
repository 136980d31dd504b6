package normalizer

import (
	"errors"
	"fmt"
)

// ErrMalformedRecord matches every *MalformedRecordError via errors.Is.
var ErrMalformedRecord = errors.New("malformed record")

// ErrUnknownPolarity is returned by ParsePolarity for unrecognized names.
var ErrUnknownPolarity = errors.New("unknown polarity")

// MalformedRecordError describes a raw record rejected at the normalization boundary.
type MalformedRecordError struct {
	Index int
	ID    string
	Field string
	Value string
	Err   error
}

func (e *MalformedRecordError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("malformed record %d (id %s): invalid %s %q", e.Index, e.ID, e.Field, e.Value)
	}
	return fmt.Sprintf("malformed record %d: invalid %s %q", e.Index, e.Field, e.Value)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}

func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}
