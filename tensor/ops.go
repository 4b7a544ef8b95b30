// Copyright 2026 Aleksandr Demakin. All rights reserved.

package tensor

import (
	"fmt"

	fixed "github.com/avdva/binfixed"
)

// The scalar operators lift to tensors in three tiers, tried in order:
// scalar against tensor applies element-wise; a size-1 tensor unwraps to its
// one scalar and the first tier applies; equal-shape tensors pair elements by
// flat index. Anything else is a shape mismatch error.

// AddScalar returns t + v element-wise. Element formats stay t's, so the
// result shares t's layout and wraps the way scalar Add does.
func (t *Tensor) AddScalar(v fixed.Value) *Tensor {
	return t.mapScalar(v, fixed.Value.Add)
}

// SubScalar returns t - v element-wise in t's element format.
func (t *Tensor) SubScalar(v fixed.Value) *Tensor {
	return t.mapScalar(v, fixed.Value.Sub)
}

// MulScalar returns t * v element-wise. The element format widens per the
// scalar multiplication promotion rule.
func (t *Tensor) MulScalar(v fixed.Value) *Tensor {
	return t.mapScalar(v, fixed.Value.Mul)
}

// ScalarAdd returns v + t element-wise: the scalar is the first operand, so
// every element is reformatted into the scalar's format before the add.
func ScalarAdd(v fixed.Value, t *Tensor) *Tensor {
	return t.mapScalar(v, func(elem, s fixed.Value) fixed.Value { return s.Add(elem) })
}

// ScalarSub returns v - t element-wise in the scalar's format.
func ScalarSub(v fixed.Value, t *Tensor) *Tensor {
	return t.mapScalar(v, func(elem, s fixed.Value) fixed.Value { return s.Sub(elem) })
}

// ScalarMul returns v * t element-wise; multiplication derives the same
// widened format from either operand order.
func ScalarMul(v fixed.Value, t *Tensor) *Tensor {
	return t.MulScalar(v)
}

// Add returns t + other. A size-1 operand is unwrapped to its scalar;
// otherwise the shapes must match exactly.
func (t *Tensor) Add(other *Tensor) (*Tensor, error) {
	return t.zip(other, fixed.Value.Add, (*Tensor).AddScalar, ScalarAdd)
}

// Sub returns t - other under the same shape rules as Add.
func (t *Tensor) Sub(other *Tensor) (*Tensor, error) {
	return t.zip(other, fixed.Value.Sub, (*Tensor).SubScalar, ScalarSub)
}

// Mul returns t * other element-wise in the widened product format.
func (t *Tensor) Mul(other *Tensor) (*Tensor, error) {
	return t.zip(other, fixed.Value.Mul, (*Tensor).MulScalar, ScalarMul)
}

// AddAssign adds other to t in place, keeping t's element format.
func (t *Tensor) AddAssign(other *Tensor) error {
	return t.zipAssign(other, fixed.Value.Add)
}

// SubAssign subtracts other from t in place, keeping t's element format.
func (t *Tensor) SubAssign(other *Tensor) error {
	return t.zipAssign(other, fixed.Value.Sub)
}

// AddAssignScalar adds v to every element in place.
func (t *Tensor) AddAssignScalar(v fixed.Value) {
	for i, raw := range t.data {
		t.data[i] = fixed.FromRaw(t.format, raw).Add(v).Raw()
	}
}

// SubAssignScalar subtracts v from every element in place.
func (t *Tensor) SubAssignScalar(v fixed.Value) {
	for i, raw := range t.data {
		t.data[i] = fixed.FromRaw(t.format, raw).Sub(v).Raw()
	}
}

// mapScalar applies op(element, v) to every element. The result format is
// derived from the first application; every application yields the same
// format because it depends only on the operand formats.
func (t *Tensor) mapScalar(v fixed.Value, op func(fixed.Value, fixed.Value) fixed.Value) *Tensor {
	first := op(fixed.FromRaw(t.format, t.data[0]), v)
	res := &Tensor{
		shape:   t.shape.Clone(),
		strides: t.shape.Strides(),
		format:  first.Format(),
		data:    make([]uint64, len(t.data)),
	}
	res.data[0] = first.Raw()
	for i, raw := range t.data[1:] {
		res.data[i+1] = op(fixed.FromRaw(t.format, raw), v).Raw()
	}
	return res
}

func (t *Tensor) zip(other *Tensor, op func(fixed.Value, fixed.Value) fixed.Value,
	withScalar func(*Tensor, fixed.Value) *Tensor, scalarWith func(fixed.Value, *Tensor) *Tensor) (*Tensor, error) {
	if other.Size() == 1 {
		return withScalar(t, other.item()), nil
	}
	if t.Size() == 1 {
		return scalarWith(t.item(), other), nil
	}
	if !t.shape.Equal(other.shape) {
		return nil, fmt.Errorf("%w: %v vs %v", errShape, t.shape, other.shape)
	}
	first := op(fixed.FromRaw(t.format, t.data[0]), fixed.FromRaw(other.format, other.data[0]))
	res := &Tensor{
		shape:   t.shape.Clone(),
		strides: t.shape.Strides(),
		format:  first.Format(),
		data:    make([]uint64, len(t.data)),
	}
	res.data[0] = first.Raw()
	for i := 1; i < len(t.data); i++ {
		res.data[i] = op(fixed.FromRaw(t.format, t.data[i]), fixed.FromRaw(other.format, other.data[i])).Raw()
	}
	return res, nil
}

func (t *Tensor) zipAssign(other *Tensor, op func(fixed.Value, fixed.Value) fixed.Value) error {
	if other.Size() == 1 {
		v := other.item()
		for i, raw := range t.data {
			t.data[i] = op(fixed.FromRaw(t.format, raw), v).Raw()
		}
		return nil
	}
	if !t.shape.Equal(other.shape) {
		return fmt.Errorf("%w: %v vs %v", errShape, t.shape, other.shape)
	}
	for i, raw := range t.data {
		t.data[i] = op(fixed.FromRaw(t.format, raw), fixed.FromRaw(other.format, other.data[i])).Raw()
	}
	return nil
}
