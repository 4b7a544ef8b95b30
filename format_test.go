// Copyright 2026 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundStorageBits(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		n   uint
		res uint
		err bool
	}{
		{0, 8, false},
		{1, 8, false},
		{8, 8, false},
		{9, 16, false},
		{16, 16, false},
		{17, 32, false},
		{32, 32, false},
		{33, 64, false},
		{64, 64, false},
		{65, 0, true},
		{1000, 0, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res, err := RoundStorageBits(test.n)
			if test.err {
				a.Error(err)
			} else if a.NoError(err) {
				a.Equal(test.res, res)
			}
		})
	}
}

func TestNew(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		logical uint
		signed  bool
		frac    int
		storage uint
		err     bool
	}{
		{8, false, 3, 8, false},
		{16, true, 8, 16, false},
		{12, true, 8, 16, false},
		{1, false, 0, 8, false},
		{64, true, 63, 64, false},
		{8, false, -5, 8, false},  // radix point beyond the stored bits
		{8, false, 20, 8, false},  // radix point before the stored bits
		{0, false, 0, 0, true},
		{65, false, 0, 0, true},
		{8, false, 1 << 20, 0, true},
		{8, false, -(1 << 20), 0, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			f, err := New(test.logical, test.signed, test.frac)
			if test.err {
				a.Error(err)
				a.True(f.IsZero())
				return
			}
			if a.NoError(err) {
				a.Equal(test.logical, f.LogicalBits())
				a.Equal(test.storage, f.StorageBits())
				a.Equal(test.signed, f.Signed())
				a.Equal(test.frac, f.FracBits())
			}
		})
	}
}

func TestMustNewPanics(t *testing.T) {
	assert.Panics(t, func() { MustNew(0, false, 0) })
	assert.Panics(t, func() { MustNew(128, false, 0) })
	assert.NotPanics(t, func() { MustNew(24, true, 12) })
}

func TestIntegralBits(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f   Format
		res int
	}{
		{MustNew(8, false, 3), 5},
		{MustNew(8, true, 3), 4},
		{MustNew(16, true, 8), 7},
		{MustNew(8, false, 8), 0},
		{MustNew(8, true, 8), -1},
		{MustNew(8, false, 12), -4}, // entirely fractional, and then some
		{MustNew(8, false, -4), 12},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, test.f.IntegralBits())
		})
	}
}

func TestFormatEquality(t *testing.T) {
	a := assert.New(t)
	a.Equal(MustNew(8, false, 3), MustNew(8, false, 3))
	a.NotEqual(MustNew(8, false, 3), MustNew(8, true, 3))
	a.NotEqual(MustNew(8, false, 3), MustNew(8, false, 4))
	a.NotEqual(MustNew(8, false, 3), MustNew(9, false, 3))
	// same storage width, different logical width: still distinct formats
	a.NotEqual(MustNew(12, true, 3), MustNew(16, true, 3))
}

func TestFormatString(t *testing.T) {
	a := assert.New(t)
	a.Equal("u8q3", MustNew(8, false, 3).String())
	a.Equal("s16q8", MustNew(16, true, 8).String())
	a.Equal("u8q-4", MustNew(8, false, -4).String())
	a.Equal("s64q63", MustNew(64, true, 63).String())
}
