// Copyright 2025 Ndim ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides the public API for the ndim n-dimensional array
// container.
//
// The package defines a fixed-rank, contiguous, row-major array type with
// shape/stride based indexing:
//   - NdArray[T]: generic array container with type-safe element access
//   - Shape, DataType: core type definitions
//   - Construction helpers: Empty, FromSlice, Full, Zeros, Ones and the
//     Arange/Range progression family
//
// Example:
//
//	a, err := ndarray.Arange[uint16](3, 65535)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := a.Reshape(ndarray.Shape{3, 5, 4369}); err != nil {
//		log.Fatal(err)
//	}
//	v := a.At(1, 2, 1234) // 31817
package ndarray

import (
	"github.com/ndim-ml/ndim/internal/ndarray"
)

// DType is a constraint for supported array element types.
// Supported types: float32, float64 and the fixed-width signed and unsigned
// integers.
type DType = ndarray.DType

// DataType represents the runtime element type of an array.
type DataType = ndarray.DataType

// Data type constants.
const (
	Float32 DataType = ndarray.Float32
	Float64 DataType = ndarray.Float64
	Int8    DataType = ndarray.Int8
	Int16   DataType = ndarray.Int16
	Int32   DataType = ndarray.Int32
	Int64   DataType = ndarray.Int64
	Uint8   DataType = ndarray.Uint8
	Uint16  DataType = ndarray.Uint16
	Uint32  DataType = ndarray.Uint32
	Uint64  DataType = ndarray.Uint64
)

// Shape represents the dimensions of an array, outermost axis first.
// Example: Shape{2, 3, 4} describes a rank-3 array with 2×3×4 elements.
type Shape = ndarray.Shape

// NdArray is a fixed-rank n-dimensional array with contiguous row-major
// storage. See the internal package for the full method set: At, Set,
// Reshape, Len, Rank, Shape, Strides, Data, Clone.
type NdArray[T DType] = ndarray.NdArray[T]

// Sentinel errors, matched with errors.Is.
var (
	// ErrShapeMismatch reports a shape whose element count does not
	// reconcile with the available data or the array's current length.
	ErrShapeMismatch = ndarray.ErrShapeMismatch

	// ErrInvalidRange reports a progression whose start exceeds its end.
	ErrInvalidRange = ndarray.ErrInvalidRange

	// ErrConversionFailure reports a progression value that cannot be
	// represented in the target element type.
	ErrConversionFailure = ndarray.ErrConversionFailure
)
