// Copyright 2026 Aleksandr Demakin. All rights reserved.

// Package fixed implements parameterized binary fixed-point numbers.
// A Format fixes the bit width, signedness, and radix-point position of a
// value at definition time; arithmetic then runs on plain machine integers
// with the result format derived from the operand formats.
package fixed

import (
	"fmt"
	"strconv"

	mu "github.com/avdva/binfixed/internal/mathutil"
)

// MinStorageBits is the narrowest supported storage width.
const MinStorageBits = 8

var (
	errWidth = fmt.Errorf("storage width out of range")
	errFrac  = fmt.Errorf("fractional bits out of range")
)

// fracBits limits are wide enough for any useful scaling, and keep
// ldexp exponents in the normal float64 range.
const (
	maxFracBits = 1<<15 - 1
	minFracBits = -maxFracBits
)

// RoundStorageBits returns the smallest supported storage width >= n.
// Supported widths are 8, 16, 32 and, unless capped by the fixed32 build tag, 64.
func RoundStorageBits(n uint) (uint, error) {
	c := uint(MinStorageBits)
	for c < n {
		c <<= 1
	}
	if c > MaxStorageBits {
		return 0, fmt.Errorf("%w: %d bits, max is %d", errWidth, n, MaxStorageBits)
	}
	return c, nil
}

// Format describes one fixed-point layout: how many bits a value occupies,
// whether it is signed, and where the radix point sits.
// A stored integer m under format f represents the number m * 2^(-f.FracBits()).
// Fractional bits may be negative (radix point beyond the stored bits) or
// exceed the bit width (radix point before the stored bits); both are legal
// and simply trade range for precision.
// The zero Format is not valid; use New or MustNew.
type Format struct {
	logical uint8
	storage uint8
	signed  bool
	frac    int16
}

// New returns a format with the given logical width, signedness, and
// fractional-bit count. The storage width is the logical width rounded up to
// a supported width. Returns an error if the width exceeds the configured
// maximum or the fractional-bit count is out of range.
func New(logicalBits uint, signed bool, fracBits int) (Format, error) {
	if logicalBits == 0 {
		return Format{}, fmt.Errorf("%w: zero logical bits", errWidth)
	}
	storage, err := RoundStorageBits(logicalBits)
	if err != nil {
		return Format{}, err
	}
	if fracBits > maxFracBits || fracBits < minFracBits {
		return Format{}, fmt.Errorf("%w: %d", errFrac, fracBits)
	}
	return Format{
		logical: uint8(logicalBits),
		storage: uint8(storage),
		signed:  signed,
		frac:    int16(fracBits),
	}, nil
}

// MustNew is like New, but panics on error.
func MustNew(logicalBits uint, signed bool, fracBits int) Format {
	f, err := New(logicalBits, signed, fracBits)
	if err != nil {
		panic(err)
	}
	return f
}

// LogicalBits returns the caller-requested bit width.
func (f Format) LogicalBits() uint {
	return uint(f.logical)
}

// StorageBits returns the physically occupied bit width.
func (f Format) StorageBits() uint {
	return uint(f.storage)
}

// Signed reports whether stored integers are two's complement.
func (f Format) Signed() bool {
	return f.signed
}

// FracBits returns the fractional-bit count R; a stored integer m represents
// m * 2^(-R).
func (f Format) FracBits() int {
	return int(f.frac)
}

// IntegralBits returns the number of bits left of the radix point, excluding
// the sign bit. May be negative, meaning the whole representable range is
// fractional.
func (f Format) IntegralBits() int {
	n := int(f.logical) - int(f.frac)
	if f.signed {
		n--
	}
	return n
}

// IsZero reports whether f is the zero (invalid) format.
func (f Format) IsZero() bool {
	return f == Format{}
}

// String returns a compact descriptor like "u8q3" or "s16q8".
func (f Format) String() string {
	b := make([]byte, 0, 8)
	if f.signed {
		b = append(b, 's')
	} else {
		b = append(b, 'u')
	}
	b = strconv.AppendUint(b, uint64(f.logical), 10)
	b = append(b, 'q')
	b = strconv.AppendInt(b, int64(f.frac), 10)
	return string(b)
}

// mask returns the mask of the low storage bits.
func (f Format) mask() uint64 {
	return mu.Mask(uint(f.storage))
}
