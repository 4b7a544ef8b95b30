// Copyright 2026 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"fmt"

	mu "github.com/avdva/binfixed/internal/mathutil"
)

var errRescale = fmt.Errorf("rescale needs an all-fractional format")

// Add returns a + b in a's format: b is reformatted to a's layout and the
// stored integers are added natively in a's storage width. Overflow wraps
// around silently, as native integer addition does.
func (v Value) Add(other Value) Value {
	other = other.Reformat(v.format)
	return Value{format: v.format, raw: (v.raw + other.raw) & v.format.mask()}
}

// Sub returns a - b in a's format, with the same wraparound contract as Add.
func (v Value) Sub(other Value) Value {
	other = other.Reformat(v.format)
	return Value{format: v.format, raw: (v.raw - other.raw) & v.format.mask()}
}

// AddAssign adds other to v in place, keeping v's format.
func (v *Value) AddAssign(other Value) {
	*v = v.Add(other)
}

// SubAssign subtracts other from v in place, keeping v's format.
func (v *Value) SubAssign(other Value) {
	*v = v.Sub(other)
}

// Mul returns the product of a and b in a derived format wide enough to hold
// it exactly: the logical widths add (minus the shared sign bit when both
// operands are signed), the fractional bits add, and the result is signed if
// either operand is. When the exact product would need more than
// MaxStorageBits, operands are first narrowed from the least significant end
// (see mulNarrow) until it fits; that trades precision for range and is not
// an error.
func (v Value) Mul(other Value) Value {
	a, b := mulNarrow(v, other)
	f := mulFormat(a.format, b.format)
	// the low 64 bits of a two's complement product do not depend on
	// signedness, so one native multiply covers all sign combinations
	pa, pb := a.raw, b.raw
	if a.format.signed {
		pa = uint64(mu.SignExtend(pa, uint(a.format.storage)))
	}
	if b.format.signed {
		pb = uint64(mu.SignExtend(pb, uint(b.format.storage)))
	}
	return Value{format: f, raw: pa * pb & f.mask()}
}

func mulFormat(a, b Format) Format {
	logical := int(a.logical) + int(b.logical)
	if a.signed && b.signed {
		logical--
	}
	return MustNew(uint(logical), a.signed || b.signed, int(a.frac)+int(b.frac))
}

// mulNarrow shrinks the operands until their exact product fits the maximum
// storage width. The strictly wider operand gives up least-significant bits
// first; once the widths are comparable, the remaining excess is split
// between them. Each shrink drops the same number of bits and fractional
// bits, so the represented magnitudes survive. The combined width decreases
// every round, so the loop terminates for any pair of legal formats.
func mulNarrow(a, b Value) (Value, Value) {
	for {
		adj := 0
		if a.format.signed && b.format.signed {
			adj = 1
		}
		excess := int(a.format.logical) + int(b.format.logical) - adj - MaxStorageBits
		if excess <= 0 {
			return a, b
		}
		da := int(a.format.logical) - int(b.format.logical)
		switch {
		case da > 0:
			a = shrinkLSB(a, min(excess, da))
		case da < 0:
			b = shrinkLSB(b, min(excess, -da))
		default:
			ka := (excess + 1) / 2
			a = shrinkLSB(a, ka)
			if kb := excess - ka; kb > 0 {
				b = shrinkLSB(b, kb)
			}
		}
	}
}

// shrinkLSB reformats v to k fewer logical and fractional bits, dropping the
// k least significant stored bits.
func shrinkLSB(v Value, k int) Value {
	f := MustNew(uint(int(v.format.logical)-k), v.format.signed, int(v.format.frac)-k)
	return v.Reformat(f)
}

// Neg returns -a in the signed version of a's format, with the same width and
// fractional bits. Panics if a is unsigned at the maximum width with its top
// bit set: no signed format of that width can hold the negation.
func (v Value) Neg() Value {
	if !v.format.signed && uint(v.format.logical) == MaxStorageBits && mu.TopBit(v.raw, uint(v.format.logical)) {
		panic(fmt.Sprintf("fixed: cannot negate %v value %d: magnitude does not fit signed %d bits",
			v.format, v.Int64(), v.format.logical))
	}
	f := v.format
	f.signed = true
	return Value{format: f, raw: -v.raw & f.mask()}
}

// Inc adds one unit in the last place: a single count of the stored integer,
// not 1.0. The format is unchanged and overflow wraps.
func (v *Value) Inc() {
	v.raw = (v.raw + 1) & v.format.mask()
}

// Rescale maps between the signed range [-1, 1) and the unsigned range
// [0, 1) with a single top-bit flip, flipping signedness and moving the
// fractional-bit count by one. It is only defined for formats whose entire
// width is fractional; anything else returns an error.
func (v Value) Rescale() (Value, error) {
	signBit := 0
	if v.format.signed {
		signBit = 1
	}
	if int(v.format.frac) != int(v.format.logical)-signBit {
		return Value{}, fmt.Errorf("%w: %v", errRescale, v.format)
	}
	frac := int(v.format.frac) - 1
	if v.format.signed {
		frac = int(v.format.frac) + 1
	}
	f, err := New(uint(v.format.logical), !v.format.signed, frac)
	if err != nil {
		return Value{}, err
	}
	return Value{format: f, raw: v.raw ^ 1<<(uint(v.format.logical)-1)}, nil
}
