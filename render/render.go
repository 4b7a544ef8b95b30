// Copyright 2026 Aleksandr Demakin. All rights reserved.

// Package render turns fixed-point values into exact decimal strings and
// human-readable format descriptions. It lives outside the numeric core: the
// core guarantees faithful float conversion and read-only format fields, and
// everything here is built on top of those.
package render

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	fixed "github.com/avdva/binfixed"
	"github.com/avdva/binfixed/tensor"
)

var five = big.NewInt(5)

// Decimal returns the exact decimal representation of v.
// A stored integer n with R fractional bits is n / 2^R; for R >= 0 that is
// n * 5^R * 10^-R, and for R < 0 it is the plain integer n * 2^-R, so every
// legal format has a finite decimal expansion.
func Decimal(v fixed.Value) decimal.Decimal {
	m := storedInt(v)
	r := v.Format().FracBits()
	if r < 0 {
		return decimal.NewFromBigInt(m.Lsh(m, uint(-r)), 0)
	}
	pow := new(big.Int).Exp(five, big.NewInt(int64(r)), nil)
	return decimal.NewFromBigInt(m.Mul(m, pow), int32(-r))
}

// String returns the exact decimal string for v, like "31.875".
func String(v fixed.Value) string {
	return Decimal(v).String()
}

// TensorString renders a tensor as nested braces in declared dimension
// order, like "{{1, 2, 3}, {4, 5, 6}}" for a 2x3 shape.
func TensorString(t *tensor.Tensor) string {
	var b strings.Builder
	writeDim(&b, t, make([]int, 0, len(t.Shape())), t.Shape())
	return b.String()
}

func writeDim(b *strings.Builder, t *tensor.Tensor, indices []int, shape tensor.Shape) {
	if len(indices) == len(shape) {
		b.WriteString(String(t.At(indices...)))
		return
	}
	b.WriteRune('{')
	for i := 0; i < shape[len(indices)]; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		writeDim(b, t, append(indices, i), shape)
	}
	b.WriteRune('}')
}

// Describe returns a diagnostic description of a format, with its exact
// range and step, like
// "u8q3: unsigned, 8 logical bits in 8 storage bits, 3 fractional bits, range [0, 31.875], step 0.125".
func Describe(f fixed.Format) string {
	var b strings.Builder
	b.WriteString(f.String())
	b.WriteString(": ")
	if f.Signed() {
		b.WriteString("signed, ")
	} else {
		b.WriteString("unsigned, ")
	}
	b.WriteString(strconv.Itoa(int(f.LogicalBits())))
	b.WriteString(" logical bits in ")
	b.WriteString(strconv.Itoa(int(f.StorageBits())))
	b.WriteString(" storage bits, ")
	b.WriteString(strconv.Itoa(f.FracBits()))
	b.WriteString(" fractional bits, range [")
	b.WriteString(String(minValue(f)))
	b.WriteString(", ")
	b.WriteString(String(maxValue(f)))
	b.WriteString("], step ")
	b.WriteString(String(fixed.FromRaw(f, 1)))
	return b.String()
}

func storedInt(v fixed.Value) *big.Int {
	if v.Format().Signed() {
		return big.NewInt(v.Int64())
	}
	return new(big.Int).SetUint64(v.Raw())
}

func minValue(f fixed.Format) fixed.Value {
	if !f.Signed() {
		return fixed.FromRaw(f, 0)
	}
	// smallest value: sign bit of the logical width set, sign-extended
	// through the storage width
	return fixed.FromRaw(f, uint64(-(int64(1) << (f.LogicalBits() - 1))))
}

func maxValue(f fixed.Format) fixed.Value {
	bits := f.LogicalBits()
	if f.Signed() {
		bits--
	}
	if bits == 0 {
		return fixed.FromRaw(f, 0)
	}
	return fixed.FromRaw(f, 1<<bits-1)
}
