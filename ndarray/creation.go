// Copyright 2025 Ndim ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/ndim-ml/ndim/internal/ndarray"
)

// Empty creates an array with no elements and all-ones placeholder shape and
// strides. No buffer is allocated. Panics if rank < 1.
func Empty[T DType](rank int) *NdArray[T] {
	return ndarray.Empty[T](rank)
}

// FromSlice creates an array from a flat slice and a shape. The slice is
// copied. Returns an error wrapping ErrShapeMismatch when the shape does not
// describe exactly len(data) elements.
//
// Example:
//
//	a, err := ndarray.FromSlice([]int32{0, 1, 2, 3, 4, 5}, ndarray.Shape{1, 2, 3})
func FromSlice[T DType](data []T, shape Shape) (*NdArray[T], error) {
	return ndarray.FromSlice(data, shape)
}

// Full creates an array with every element set to value.
//
// Example:
//
//	a := ndarray.Full[float32](3.14, ndarray.Shape{3, 3})
func Full[T DType](value T, shape Shape) *NdArray[T] {
	return ndarray.Full(value, shape)
}

// Zeros creates an array filled with the element type's additive identity.
//
// Example:
//
//	a := ndarray.Zeros[int32](ndarray.Shape{3, 2})
func Zeros[T DType](shape Shape) *NdArray[T] {
	return ndarray.Zeros[T](shape)
}

// Ones creates an array filled with the element type's multiplicative
// identity.
func Ones[T DType](shape Shape) *NdArray[T] {
	return ndarray.Ones[T](shape)
}

// Arange creates a rank-rank array holding the progression 0, 1, … end-1,
// laid out along the last axis.
//
// Example:
//
//	a, err := ndarray.Arange[uint16](3, 65535)
func Arange[T DType](rank, end int) (*NdArray[T], error) {
	return ndarray.Arange[T](rank, end)
}

// ArangeStep creates a rank-rank array holding the progression
// 0, step, 2*step, … strictly less than end. A step of 0 means no skipping.
func ArangeStep[T DType](rank, end, step int) (*NdArray[T], error) {
	return ndarray.ArangeStep[T](rank, end, step)
}

// Range creates a rank-rank array holding the progression start, start+1, …
// strictly less than end. Returns an error wrapping ErrInvalidRange when
// start > end.
func Range[T DType](rank, start, end int) (*NdArray[T], error) {
	return ndarray.Range[T](rank, start, end)
}

// RangeStep creates a rank-rank array holding the progression
// start, start+step, … strictly less than end. A step of 0 means no
// skipping.
//
// Example:
//
//	a, err := ndarray.RangeStep[int8](2, -1, 5, 2) // flat contents [-1, 1, 3]
func RangeStep[T DType](rank, start, end, step int) (*NdArray[T], error) {
	return ndarray.RangeStep[T](rank, start, end, step)
}
