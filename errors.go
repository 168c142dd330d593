package mpi

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by package operations. Callers should compare
// with errors.Is rather than switching on an error code.
var (
	// ErrBadInput flags an invalid parameter: a radix outside [2,16], a bit
	// value outside {0,1}, an even or non-positive modulus or a negative
	// exponent passed to Exp, or an out-of-range bit count passed to
	// GeneratePrime.
	ErrBadInput = errors.New("mpi: invalid parameter")

	// ErrAllocationFailed is returned when an operation would grow a limb
	// buffer past MaxLimbs.
	ErrAllocationFailed = errors.New("mpi: allocation exceeds configured limit")

	// ErrInvalidCharacter is returned by SetStringErr when a digit is
	// outside the requested radix.
	ErrInvalidCharacter = errors.New("mpi: invalid character in input")

	// ErrNegativeValue is returned when an unsigned subtraction would
	// underflow, or a modulus argument is negative where a positive one is
	// required.
	ErrNegativeValue = errors.New("mpi: negative value")

	// ErrDivisionByZero is returned by division and modulo operations when
	// the divisor is zero.
	ErrDivisionByZero = errors.New("mpi: division by zero")

	// ErrNotAcceptable signals a composite Miller-Rabin witness, a modulus
	// not coprime to the value being inverted, or any other "this input
	// fails the algorithm's acceptance test" condition.
	ErrNotAcceptable = errors.New("mpi: value not acceptable")
)

// BufferTooSmallError is returned by the fixed-buffer write path
// (WriteBinary) when the supplied buffer cannot hold the encoded value. Required
// is the minimum buffer length that would succeed, mirroring the out-parameter
// the C original returns through *slen.
type BufferTooSmallError struct {
	Required int
}

func (e *BufferTooSmallError) Error() string {
	return fmt.Sprintf("mpi: buffer too small, need at least %d bytes", e.Required)
}
