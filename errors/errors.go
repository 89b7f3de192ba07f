// Package errors provides error handling for primelogic.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Sentinel errors for the prime-encoding error taxonomy
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if _, err := c.Divide(a, b); err != nil {
//	    return errors.Wrap(err, "failed to divide encodings")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrNotDivisible) {
//	    // handle exponent underflow
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the prime-encoding domain.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrInvalidEncoding indicates a value with no prime encoding.
	// Zero is the only such integer: it has no unique factorization.
	ErrInvalidEncoding = New("value has no prime encoding")

	// ErrNotDivisible indicates an exponent underflow during division:
	// the divisor carries a prime factor the dividend does not cover.
	ErrNotDivisible = New("encoding is not divisible")

	// ErrInvalidRule indicates a rule that cannot be stored, such as a
	// standard rule with no conditions.
	ErrInvalidRule = New("invalid rule")
)

// IsInvalidEncoding checks if an error is or wraps ErrInvalidEncoding
func IsInvalidEncoding(err error) bool {
	return err != nil && Is(err, ErrInvalidEncoding)
}

// IsNotDivisible checks if an error is or wraps ErrNotDivisible
func IsNotDivisible(err error) bool {
	return err != nil && Is(err, ErrNotDivisible)
}

// NewInvalidRuleError creates an invalid-rule error with a formatted message
func NewInvalidRuleError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidRule, Newf(format, args...).Error())
}
