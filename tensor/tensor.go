// Copyright 2026 Aleksandr Demakin. All rights reserved.

// Package tensor provides fixed-shape multi-dimensional aggregates of
// fixed-point scalars sharing one format, with the scalar operators lifted
// element-wise over them.
package tensor

import (
	"fmt"
	"math"

	fixed "github.com/avdva/binfixed"
)

var (
	errShape  = fmt.Errorf("shape mismatch")
	errCount  = fmt.Errorf("element count mismatch")
	errFormat = fmt.Errorf("format mismatch")
)

// Tensor is an ordered aggregate of stored integers sharing one Format.
// The shape and the format are fixed for the tensor's lifetime; only element
// values change, and only through Set and the compound-assignment operators.
// Concurrent mutation of one tensor must be serialized by the caller.
type Tensor struct {
	shape   Shape
	strides []int
	format  fixed.Format
	data    []uint64
}

// New returns a zero-filled tensor of the given format and shape.
func New(f fixed.Format, shape Shape) (*Tensor, error) {
	if f.IsZero() {
		return nil, fmt.Errorf("invalid element format")
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	shape = shape.Clone()
	return &Tensor{
		shape:   shape,
		strides: shape.Strides(),
		format:  f,
		data:    make([]uint64, shape.NumElements()),
	}, nil
}

// Splat returns a tensor of the given shape with every element set to v.
func Splat(v fixed.Value, shape Shape) (*Tensor, error) {
	t, err := New(v.Format(), shape)
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = v.Raw()
	}
	return t, nil
}

// Concat builds a tensor from exactly NumElements scalars in flat-index
// order. All scalars must share one format; a count or format mismatch is an
// error before any element is stored.
func Concat(shape Shape, values ...fixed.Value) (*Tensor, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no values", errCount)
	}
	if n := shape.NumElements(); len(values) != n {
		return nil, fmt.Errorf("%w: %d values for %d elements", errCount, len(values), n)
	}
	f := values[0].Format()
	for i, v := range values {
		if v.Format() != f {
			return nil, fmt.Errorf("%w: element 0 is %v, element %d is %v", errFormat, f, i, v.Format())
		}
	}
	t, err := New(f, shape)
	if err != nil {
		return nil, err
	}
	for i, v := range values {
		t.data[i] = v.Raw()
	}
	return t, nil
}

// FromFloats returns a tensor whose elements are the given numbers rounded
// to the nearest representable value of the format.
func FromFloats(f fixed.Format, shape Shape, values ...float64) (*Tensor, error) {
	if n := shape.NumElements(); len(values) != n {
		return nil, fmt.Errorf("%w: %d values for %d elements", errCount, len(values), n)
	}
	t, err := New(f, shape)
	if err != nil {
		return nil, err
	}
	for i, x := range values {
		t.data[i] = rawFromFloat(f, x)
	}
	return t, nil
}

// Format returns the shared element format.
func (t *Tensor) Format() fixed.Format {
	return t.format
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape.Clone()
}

// Size returns the number of elements.
func (t *Tensor) Size() int {
	return len(t.data)
}

// At returns the element at the given indices.
// Panics on an index-count or bounds violation.
func (t *Tensor) At(indices ...int) fixed.Value {
	return fixed.FromRaw(t.format, t.data[t.flatIndex(indices)])
}

// Set stores v at the given indices, reformatted to the tensor's element
// format. Panics on an index-count or bounds violation.
func (t *Tensor) Set(v fixed.Value, indices ...int) {
	t.data[t.flatIndex(indices)] = v.Reformat(t.format).Raw()
}

// item returns the single element of a size-1 tensor.
func (t *Tensor) item() fixed.Value {
	return fixed.FromRaw(t.format, t.data[0])
}

func (t *Tensor) flatIndex(indices []int) int {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("tensor: %d indices for %d dimensions", len(indices), len(t.shape)))
	}
	idx := 0
	for j, i := range indices {
		if i < 0 || i >= t.shape[j] {
			panic(fmt.Sprintf("tensor: index %d out of range for dimension %d of extent %d", i, j, t.shape[j]))
		}
		idx += i * t.strides[j]
	}
	return idx
}

// rawFromFloat rounds x to the nearest stored integer of format f.
func rawFromFloat(f fixed.Format, x float64) uint64 {
	scaled := int64(math.RoundToEven(math.Ldexp(x, f.FracBits())))
	return fixed.FromRaw(f, uint64(scaled)).Raw()
}
