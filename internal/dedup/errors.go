package dedup

import (
	"errors"
	"fmt"

	"fadedup/internal/record"
)

// ErrMalformedInput is returned (wrapped in *record.MalformedInputError) when
// the lines do not follow the header/sequence layout.
var ErrMalformedInput = record.ErrMalformedInput

// ErrInvalidParameter is matched by every *InvalidParameterError.
var ErrInvalidParameter = errors.New("invalid parameter")

// InvalidParameterError names the offending option and its value.
type InvalidParameterError struct {
	Name  string
	Value any
	Want  string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s %v: must be %s", e.Name, e.Value, e.Want)
}

func (e *InvalidParameterError) Is(target error) bool { return target == ErrInvalidParameter }
