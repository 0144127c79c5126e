package dna

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSymbol is returned when a sequence has a character outside of A, C, G, T
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrInvalidParameter is returned for out of range k, d, window lengths, etc
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrEmptyInput is returned when a multi-sequence algorithm gets no sequences
	ErrEmptyInput = errors.New("empty input")
)

// SymbolError is an ErrInvalidSymbol with the offending character and where it was found
type SymbolError struct {
	Symbol byte
	Pos    int
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("%v: %q at position %d", ErrInvalidSymbol, e.Symbol, e.Pos)
}

// Unwrap lets errors.Is match ErrInvalidSymbol
func (e *SymbolError) Unwrap() error {
	return ErrInvalidSymbol
}

// ParamError is an ErrInvalidParameter naming the parameter that was rejected
type ParamError struct {
	Name   string
	Value  int
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%v: %s=%d, %s", ErrInvalidParameter, e.Name, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidParameter
func (e *ParamError) Unwrap() error {
	return ErrInvalidParameter
}

// CheckK returns a ParamError unless 0 < k
func CheckK(k int) error {
	if k <= 0 {
		return &ParamError{Name: "k", Value: k, Reason: "must be positive"}
	}
	return nil
}

// CheckDistance returns a ParamError unless 0 <= d
func CheckDistance(d int) error {
	if d < 0 {
		return &ParamError{Name: "d", Value: d, Reason: "must not be negative"}
	}
	return nil
}
