// Package convert provides small deterministic value conversions: alphabet
// and hex-digit character derivation from small integers, and a table-driven
// exact power-of-ten lookup.
package convert

import (
	"fmt"
	"math/big"
)

// MaxPow10Exponent is the largest exponent Pow10 supports.
const MaxPow10Exponent = 28

// pow10Table holds 10^0 through 10^28 exactly. Populated once at package
// init and never mutated afterwards, so unsynchronized concurrent reads are
// safe.
var pow10Table [MaxPow10Exponent + 1]*big.Int

func init() {
	ten := big.NewInt(10)
	next := big.NewInt(1)
	for i := range pow10Table {
		pow10Table[i] = new(big.Int).Set(next)
		next.Mul(next, ten)
	}
}

// OutOfRangeError indicates an argument fell outside the interval a function
// supports. It always signals a programming error at the call site, never a
// transient condition.
type OutOfRangeError struct {
	// Param is the name of the offending parameter.
	Param string

	// Value is the rejected argument.
	Value interface{}

	// Min and Max bound the accepted interval, inclusive on both ends.
	Min, Max interface{}
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s out of range, %v not within [%v, %v]", e.Param, e.Value, e.Min, e.Max)
}

// Letter returns the value-th letter of the Latin alphabet, 1-based: 1
// yields 'a', 26 yields 'z'. With upper set the letter is uppercase.
//
// The input is not validated. Values outside [1, 26] produce an unspecified
// byte; the precondition is the caller's to enforce.
func Letter(value int32, upper bool) byte {
	if upper {
		return byte('A' + value - 1)
	}
	return byte('a' + value - 1)
}

// HexChar returns the lowercase hexadecimal digit for value in [0, 15].
//
// As with Letter, the input is not validated and out-of-range values produce
// an unspecified byte.
func HexChar(value int32) byte {
	if value < 10 {
		return byte('0' + value)
	}
	return byte('a' + value - 10)
}

// Pow10 returns 10^exponent as an exact integer for exponent in
// [0, MaxPow10Exponent]. Any other exponent returns an *OutOfRangeError.
//
// The result is a fresh value the caller may mutate freely.
func Pow10(exponent int32) (*big.Int, error) {
	if exponent < 0 || exponent > MaxPow10Exponent {
		return nil, &OutOfRangeError{
			Param: "exponent",
			Value: exponent,
			Min:   0,
			Max:   MaxPow10Exponent,
		}
	}
	return new(big.Int).Set(pow10Table[exponent]), nil
}
