package ndarray

import (
	"fmt"
	"math"
)

// Empty creates an array with no elements. Shape and strides are all-ones
// placeholders: the axes carry no meaning until the array is rebuilt through
// one of the data-bearing constructors. No buffer is allocated.
// Panics if rank < 1.
func Empty[T DType](rank int) *NdArray[T] {
	if rank < 1 {
		panic(fmt.Sprintf("rank must be at least 1, got %d", rank))
	}

	shape := make(Shape, rank)
	strides := make([]int, rank)
	for i := 0; i < rank; i++ {
		shape[i] = 1
		strides[i] = 1
	}

	var dummy T
	return &NdArray[T]{
		data:    nil,
		shape:   shape,
		strides: strides,
		dtype:   inferDataType(dummy),
	}
}

// FromSlice creates an array from a flat slice and a shape. The slice is
// copied into the array's own buffer. Returns an error wrapping
// ErrShapeMismatch when the shape does not describe exactly len(data)
// elements.
//
// Example:
//
//	a, err := ndarray.FromSlice([]int32{0, 1, 2, 3, 4, 5}, ndarray.Shape{1, 2, 3})
func FromSlice[T DType](data []T, shape Shape) (*NdArray[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("from slice: %w", err)
	}
	if n := shape.NumElements(); n != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, got %d: %w",
			shape, n, len(data), ErrShapeMismatch)
	}

	var dummy T
	dtype := inferDataType(dummy)

	buf := make([]T, len(data))
	copy(buf, data)

	return &NdArray[T]{
		data:    buf,
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(dtype.Size()),
		dtype:   dtype,
	}, nil
}

// Full creates an array with every element set to value.
// Panics on a shape with negative dimensions; fill constructors treat an
// invalid shape as a programming error.
func Full[T DType](value T, shape Shape) *NdArray[T] {
	if err := shape.Validate(); err != nil {
		panic(err)
	}

	var dummy T
	dtype := inferDataType(dummy)

	data := make([]T, shape.NumElements())
	for i := range data {
		data[i] = value
	}

	return &NdArray[T]{
		data:    data,
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(dtype.Size()),
		dtype:   dtype,
	}
}

// Zeros creates an array filled with the element type's additive identity.
//
// Example:
//
//	a := ndarray.Zeros[uint16](ndarray.Shape{3, 2})
func Zeros[T DType](shape Shape) *NdArray[T] {
	var zero T
	return Full(zero, shape)
}

// Ones creates an array filled with the element type's multiplicative
// identity.
func Ones[T DType](shape Shape) *NdArray[T] {
	return Full(T(1), shape)
}

// Arange creates a rank-rank array holding the progression 0, 1, … end-1.
// All axes have size 1 except the last, which holds every value.
func Arange[T DType](rank, end int) (*NdArray[T], error) {
	return newRange[T](rank, 0, end, 0)
}

// ArangeStep creates a rank-rank array holding the progression
// 0, step, 2*step, … strictly less than end. A step of 0 means no skipping,
// identical to a step of 1.
func ArangeStep[T DType](rank, end, step int) (*NdArray[T], error) {
	return newRange[T](rank, 0, end, step)
}

// Range creates a rank-rank array holding the progression
// start, start+1, … strictly less than end.
func Range[T DType](rank, start, end int) (*NdArray[T], error) {
	return newRange[T](rank, start, end, 0)
}

// RangeStep creates a rank-rank array holding the progression
// start, start+step, … strictly less than end. A step of 0 means no
// skipping, identical to a step of 1.
//
// Example:
//
//	a, err := ndarray.RangeStep[int8](2, -1, 5, 2) // flat contents [-1, 1, 3]
func RangeStep[T DType](rank, start, end, step int) (*NdArray[T], error) {
	return newRange[T](rank, start, end, step)
}

// newRange builds the progression backing the whole range family. Returns
// an error wrapping ErrInvalidRange when start > end and one wrapping
// ErrConversionFailure when a generated value does not fit T. A failed
// construction yields no array.
func newRange[T DType](rank, start, end, step int) (*NdArray[T], error) {
	if rank < 1 {
		panic(fmt.Sprintf("rank must be at least 1, got %d", rank))
	}
	if start > end {
		return nil, fmt.Errorf("range [%d, %d): %w", start, end, ErrInvalidRange)
	}

	inc := step
	if inc == 0 {
		inc = 1
	}

	data := make([]T, 0, rangeLen(start, end, step))
	for v := start; v < end; v += inc {
		val, err := convertInt[T](v)
		if err != nil {
			return nil, err
		}
		data = append(data, val)
	}

	// Row-wise contiguous: every generated value lands on the last axis.
	shape := make(Shape, rank)
	for i := 0; i < rank-1; i++ {
		shape[i] = 1
	}
	shape[rank-1] = len(data)

	var dummy T
	dtype := inferDataType(dummy)

	return &NdArray[T]{
		data:    data,
		shape:   shape,
		strides: shape.ComputeStrides(dtype.Size()),
		dtype:   dtype,
	}, nil
}

// rangeLen computes the element count of a stepped progression over
// [start, end) from the span and step parities. A step of 0 means no
// skipping, so the count is the whole span.
//
//	span 6 ([-1, 5)), step 2 -> 6/2 + 1 = 4
//	span 6 ([-1, 5)), step 3 -> 6/3     = 2
//	span 7 ([-1, 6)), step 2 -> 7/2     = 3
//	span 7 ([-1, 6)), step 3 -> 7/3 + 1 = 3
func rangeLen(start, end, step int) int {
	span := end - start
	if span < 0 {
		span = -span
	}
	if step == 0 {
		return span
	}

	if span%2 == 0 {
		if step%2 == 0 {
			return span/step + 1
		}
		return span / step
	}
	if step%2 == 0 {
		return span / step
	}
	return span/step + 1
}

// convertInt converts a progression value to the element type, reporting
// ErrConversionFailure when the value is outside the type's range. Float
// targets accept every value.
func convertInt[T DType](v int) (T, error) {
	var dummy T

	var lo, hi int64
	switch any(dummy).(type) {
	case float32, float64, int64:
		return T(v), nil
	case int8:
		lo, hi = math.MinInt8, math.MaxInt8
	case int16:
		lo, hi = math.MinInt16, math.MaxInt16
	case int32:
		lo, hi = math.MinInt32, math.MaxInt32
	case uint8:
		lo, hi = 0, math.MaxUint8
	case uint16:
		lo, hi = 0, math.MaxUint16
	case uint32:
		lo, hi = 0, math.MaxUint32
	case uint64:
		lo, hi = 0, math.MaxInt64
	default:
		panic("unsupported type")
	}

	if int64(v) < lo || int64(v) > hi {
		return dummy, fmt.Errorf("cannot convert %d to %s: %w",
			v, inferDataType(dummy), ErrConversionFailure)
	}
	return T(v), nil
}
