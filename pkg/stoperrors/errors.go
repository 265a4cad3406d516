package stoperrors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNoData          = errors.New("no data available")
)

// ValidationError is returned for caller-correctable input such as an empty
// query, an out of range coordinate or an unknown travel mode.
type ValidationError struct {
	Field    string
	Value    any
	Expected string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: expected %s", e.Field, e.Value, e.Expected)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

func NewValidationError(field string, value any, expected string) *ValidationError {
	return &ValidationError{
		Field:    field,
		Value:    value,
		Expected: expected,
	}
}

// ParseError marks a corpus that could not be read. Line is 1-based, 0 when the
// failure is not tied to a particular line.
type ParseError struct {
	Source string
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse %s line %d: %s", e.Source, e.Line, e.Reason)
	}

	return fmt.Sprintf("parse %s: %s", e.Source, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrNoData
}

func NewParseError(source string, line int, reason string) *ParseError {
	return &ParseError{
		Source: source,
		Line:   line,
		Reason: reason,
	}
}

func IsValidation(err error) bool {
	var validationError *ValidationError
	return errors.As(err, &validationError)
}

func IsParse(err error) bool {
	var parseError *ParseError
	return errors.As(err, &parseError)
}
