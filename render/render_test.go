// Copyright 2026 Aleksandr Demakin. All rights reserved.

package render

import (
	"fmt"
	"testing"

	of "github.com/robaho/fixed"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	fixed "github.com/avdva/binfixed"
	"github.com/avdva/binfixed/tensor"
)

func TestString(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f   fixed.Format
		raw uint64
		res string
	}{
		{fixed.MustNew(8, false, 3), 4, "0.5"},
		{fixed.MustNew(8, false, 3), 250, "31.25"},
		{fixed.MustNew(8, false, 3), 255, "31.875"},
		{fixed.MustNew(16, true, 8), negRaw(-640), "-2.5"},
		{fixed.MustNew(16, true, 8), 1, "0.00390625"},
		{fixed.MustNew(8, false, 0), 200, "200"},
		{fixed.MustNew(8, false, -4), 3, "48"}, // negative R scales up
		{fixed.MustNew(8, false, 12), 1, "0.000244140625"},
		{fixed.MustNew(64, false, 0), 1<<64 - 1, "18446744073709551615"},
		{fixed.MustNew(64, true, 0), 1 << 63, "-9223372036854775808"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, String(fixed.FromRaw(test.f, test.raw)))
		})
	}
}

func TestDecimalMatchesFloat(t *testing.T) {
	a := assert.New(t)
	// every value of these formats is exact in a float64, so the shortest
	// round-tripping decimal must coincide with our exact expansion
	for _, f := range []fixed.Format{
		fixed.MustNew(8, false, 3),
		fixed.MustNew(8, true, 3),
		fixed.MustNew(8, true, 7),
		fixed.MustNew(8, false, -2),
	} {
		for raw := uint64(0); raw < 256; raw++ {
			v := fixed.FromRaw(f, raw)
			a.True(decimal.NewFromFloat(v.Float64()).Equal(Decimal(v)),
				"%v raw %d: %s vs %v", f, raw, String(v), v.Float64())
		}
	}
}

func TestDescribe(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f   fixed.Format
		res string
	}{
		{
			fixed.MustNew(8, false, 3),
			"u8q3: unsigned, 8 logical bits in 8 storage bits, 3 fractional bits, range [0, 31.875], step 0.125",
		},
		{
			fixed.MustNew(16, true, 8),
			"s16q8: signed, 16 logical bits in 16 storage bits, 8 fractional bits, range [-128, 127.99609375], step 0.00390625",
		},
		{
			fixed.MustNew(12, true, 0),
			"s12q0: signed, 12 logical bits in 16 storage bits, 0 fractional bits, range [-2048, 2047], step 1",
		},
		{
			fixed.MustNew(8, true, 7),
			"s8q7: signed, 8 logical bits in 8 storage bits, 7 fractional bits, range [-1, 0.9921875], step 0.0078125",
		},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, Describe(test.f))
		})
	}
}

func TestTensorString(t *testing.T) {
	a := assert.New(t)
	s16q8 := fixed.MustNew(16, true, 8)

	tr, err := tensor.FromFloats(s16q8, tensor.Shape{1, 3}, 1.0, -2.5, 0.25)
	if a.NoError(err) {
		a.Equal("{{1, -2.5, 0.25}}", TensorString(tr))
	}

	// flat order is first-dimension-fastest, so (0,1) reads flat index 2
	tr, err = tensor.FromFloats(s16q8, tensor.Shape{2, 2}, 1, 2, 3, 4)
	if a.NoError(err) {
		a.Equal("{{1, 3}, {2, 4}}", TensorString(tr))
	}

	tr, err = tensor.FromFloats(s16q8, tensor.Shape{}, 7.5)
	if a.NoError(err) {
		a.Equal("7.5", TensorString(tr))
	}
}

func BenchmarkString(b *testing.B) {
	v := fixed.FromRaw(fixed.MustNew(32, true, 16), 123456789)
	for i := 0; i < b.N; i++ {
		String(v)
	}
}

func BenchmarkStringOtherFixed(b *testing.B) {
	f := of.NewF(1883.8845672)
	for i := 0; i < b.N; i++ {
		_ = f.String()
	}
}
