// Copyright 2026 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"math"

	"golang.org/x/exp/constraints"

	mu "github.com/avdva/binfixed/internal/mathutil"
)

// Value is a scalar fixed-point quantity: a Format plus one stored integer.
// The stored integer, divided by 2^FracBits(), is the represented number.
// Values are cheap, copyable, and safe to share between goroutines as long
// as nobody mutates them.
type Value struct {
	format Format
	// raw keeps the stored integer zero-extended in the low storage bits;
	// the unused high bits are always zero.
	raw uint64
}

// FromRaw returns a Value whose stored integer is exactly the low storage
// bits of raw, with no scaling applied. The caller asserts the bits already
// mean what the format says. For a value representing an integer n, use
// FromInt instead; conflating the two is the classic fixed-point bug.
func FromRaw(f Format, raw uint64) Value {
	return Value{format: f, raw: raw & f.mask()}
}

// FromInt returns a Value representing the integer n exactly, in a derived
// format with zero fractional bits: the logical width is the bit length of
// |n| plus a sign bit for negative n, and the storage width is rounded up.
// Returns an error if n needs more bits than the configured maximum, so the
// conversion never truncates silently.
func FromInt(n int64) (Value, error) {
	logical := uint(mu.BinaryDigits(uint64(mu.AbsInt64(n))))
	if n < 0 {
		logical++
	}
	if logical == 0 {
		logical = 1
	}
	f, err := New(logical, n < 0, 0)
	if err != nil {
		return Value{}, err
	}
	return FromRaw(f, uint64(n)), nil
}

// MustFromInt is like FromInt, but panics on error.
func MustFromInt(n int64) Value {
	v, err := FromInt(n)
	if err != nil {
		panic(err)
	}
	return v
}

// Format returns the value's format descriptor.
func (v Value) Format() Format {
	return v.format
}

// Raw returns the stored integer zero-extended to 64 bits.
func (v Value) Raw() uint64 {
	return v.raw
}

// Int64 returns the stored integer, sign-extended for signed formats.
// A 64-bit unsigned value with the top bit set wraps; use Raw for those.
func (v Value) Int64() int64 {
	if v.format.signed {
		return mu.SignExtend(v.raw, uint(v.format.storage))
	}
	return int64(v.raw)
}

// Float64 returns the represented number as the nearest float64.
func (v Value) Float64() float64 {
	if v.format.signed {
		return math.Ldexp(float64(v.Int64()), -int(v.format.frac))
	}
	return math.Ldexp(float64(v.raw), -int(v.format.frac))
}

// Float32 returns the represented number as the nearest float32.
func (v Value) Float32() float32 {
	return float32(v.Float64())
}

// Float converts v to any floating-point type.
func Float[T constraints.Float](v Value) T {
	return T(v.Float64())
}
