// Copyright 2026 Aleksandr Demakin. All rights reserved.

package tensor

import "fmt"

// Shape is the ordered tuple of dimension extents. An empty Shape is the
// scalar case with one element.
type Shape []int

// NumElements returns the total number of elements for the shape.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every extent is positive.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid extent %d at dimension %d", dim, i)
		}
	}
	return nil
}

// Equal reports whether both shapes match dimension by dimension.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Strides returns the stride of each dimension: the product of the extents
// before it, so the first index varies fastest and the flat index is
// Σ index_j * stride_j.
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	acc := 1
	for i, dim := range s {
		strides[i] = acc
		acc *= dim
	}
	return strides
}
