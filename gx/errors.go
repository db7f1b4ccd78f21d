package gx

import (
	"errors"
	"fmt"
)

var (
	ErrValueSyntax  = errors.New("invalid syntax")
	ErrIntegerRange = errors.New("value out of range")

	ErrExtruders        = errors.New("extruder count must be 1 or 2")
	ErrNoThumbnail      = errors.New("no thumbnail block")
	ErrMissingInput     = errors.New("missing G-code or thumbnail")
	ErrAlreadyConverted = errors.New("input is already a GX file")
)

// ParseError reports a recognized slicer comment whose value could not be
// parsed.
type ParseError struct {
	Key   string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: value %q: %v", e.Key, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
