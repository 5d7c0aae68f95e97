// File: mathx.go
// Title: Floored Integer Division
// Description: Division and modulo rounding toward negative infinity.
// Author: ersinkoc
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package mathx

// Integer is any signed integer type
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// FloorDiv returns a / b rounded toward negative infinity. b must not be
// zero.
func FloorDiv[T Integer](a, b T) T {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// FloorMod returns the remainder of FloorDiv, which has the sign of b
func FloorMod[T Integer](a, b T) T {
	return a - b*FloorDiv(a, b)
}
