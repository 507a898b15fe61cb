package enums

import (
	"errors"
	"fmt"
)

// Sentinel errors for the conversion failure classes.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrOutOfRange indicates an enum value whose ordinal has no entry in
	// its type's string table.
	ErrOutOfRange = errors.New("enum value out of range")

	// ErrUnknownLabel indicates a string that is not associated with any
	// value of the requested enum type.
	ErrUnknownLabel = errors.New("unknown enum label")

	// ErrArityMismatch indicates a string table whose length disagrees
	// with the enum's sentinel constant.
	ErrArityMismatch = errors.New("enum string table arity mismatch")
)

// OutOfRangeError reports a conversion attempt for an enum value whose
// ordinal falls outside its type's string table. Negative ordinals,
// possible through raw casts on signed underlying types, fail the same
// way as too-large ones.
type OutOfRangeError struct {
	// Type is the Go name of the enumeration type.
	Type string

	// Ordinal is the numeric value that failed to convert.
	Ordinal int

	// Count is the number of strings associated with the type.
	Count int
}

// Error implements the error interface, naming the type, the rejected
// ordinal, and the valid range.
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("invalid %s value %d: valid range is [0, %d]", e.Type, e.Ordinal, e.Count-1)
}

// Is reports whether target is ErrOutOfRange, allowing errors.Is() checks
// against the sentinel.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// UnknownLabelError reports a string that no value of the enum type is
// associated with. Label carries the rejected input verbatim.
type UnknownLabelError struct {
	// Type is the Go name of the enumeration type.
	Type string

	// Label is the rejected input, unmodified.
	Label string
}

func (e *UnknownLabelError) Error() string {
	return fmt.Sprintf("%q is not a valid string representation of %s", e.Label, e.Type)
}

// Is reports whether target is ErrUnknownLabel.
func (e *UnknownLabelError) Is(target error) bool {
	return target == ErrUnknownLabel
}

// ArityError reports a string table whose length does not match the
// number of enum constants as counted by the sentinel.
type ArityError struct {
	// Type is the Go name of the enumeration type.
	Type string

	// Strings is the number of strings in the table.
	Strings int

	// Constants is the number of enum constants before the sentinel.
	Constants int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: %d strings registered for %d enum values", e.Type, e.Strings, e.Constants)
}

// Is reports whether target is ErrArityMismatch.
func (e *ArityError) Is(target error) bool {
	return target == ErrArityMismatch
}
