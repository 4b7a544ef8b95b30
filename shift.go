// Copyright 2026 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"fmt"

	mu "github.com/avdva/binfixed/internal/mathutil"
)

// The shift primitives move stored bits without touching the format: the
// fractional-bit count is left alone, so they change the represented number,
// not its layout. Reformat is the operation that moves the radix point.
//
// Shift amounts at or beyond the storage width, which native shifts handle
// inconsistently across languages, are programmer errors here and panic.

// Lshift shifts the stored integer of v left by k bits. A negative k shifts
// right by -k instead, so callers can pass signed deltas directly.
// Panics if |k| >= the storage width.
func Lshift(v Value, k int) Value {
	if mu.AbsInt(k) >= int(v.format.storage) {
		panic(fmt.Sprintf("fixed: shift amount %d out of range for %v value %d", k, v.format, v.Int64()))
	}
	res := Value{format: v.format, raw: shiftRaw(v.raw, uint(v.format.storage), v.format.signed, k)}
	if k > 0 {
		lshiftCheck(v, k, res)
	}
	return res
}

// Rshift shifts the stored integer of v right by k bits; the shift is
// arithmetic for signed formats. A negative k shifts left by -k instead.
// Panics if |k| >= the storage width.
func Rshift(v Value, k int) Value {
	return Lshift(v, -k)
}

// LshiftRaw shifts the stored integer left by a runtime amount.
// Panics if k >= the storage width.
func LshiftRaw(v Value, k uint) Value {
	checkRawAmount(v, k)
	return Value{format: v.format, raw: v.raw << k & v.format.mask()}
}

// RshiftRaw shifts the stored integer right by a runtime amount; the shift is
// arithmetic for signed formats. Panics if k >= the storage width.
func RshiftRaw(v Value, k uint) Value {
	checkRawAmount(v, k)
	return Value{format: v.format, raw: shiftRaw(v.raw, uint(v.format.storage), v.format.signed, -int(k))}
}

func checkRawAmount(v Value, k uint) {
	if k >= uint(v.format.storage) {
		panic(fmt.Sprintf("fixed: shift amount %d out of range for %v value %d", k, v.format, v.Int64()))
	}
}

// shiftRaw shifts the low 'width' bits of raw by k (left if positive), with
// arithmetic right shifts for signed interpretations, and masks the result
// back to 'width' bits. |k| may not exceed 64.
func shiftRaw(raw uint64, width uint, signed bool, k int) uint64 {
	switch {
	case k > 0:
		raw <<= uint(k)
	case k < 0 && signed:
		raw = uint64(mu.SignExtend(raw, width) >> uint(-k))
	case k < 0:
		raw >>= uint(-k)
	}
	return raw & mu.Mask(width)
}
