package ndarray

import "fmt"

// NdArray is a fixed-rank n-dimensional array with contiguous row-major
// storage. It exclusively owns its buffer: constructors copy external data
// in, nothing aliases the buffer afterwards, and the garbage collector
// reclaims it with the array value.
//
// The rank is fixed at construction time: Reshape may change the size of
// each axis but never the number of axes.
//
// Example:
//
//	a := ndarray.Zeros[int32](ndarray.Shape{3, 2})
//	a.Set(12, 1, 1)
//	v := a.At(1, 1) // 12
type NdArray[T DType] struct {
	data    []T
	shape   Shape
	strides []int
	dtype   DataType
}

// Len returns the total number of elements.
// It always equals the product of the shape's components.
func (a *NdArray[T]) Len() int {
	return len(a.data)
}

// Rank returns the number of axes, fixed for the array's lifetime.
func (a *NdArray[T]) Rank() int {
	return len(a.shape)
}

// Shape returns the array's shape.
func (a *NdArray[T]) Shape() Shape {
	return a.shape
}

// Strides returns the array's byte strides. The last entry is the element
// size; every outer entry is the next stride times the next axis size.
func (a *NdArray[T]) Strides() []int {
	return a.strides
}

// DType returns the array's element type.
func (a *NdArray[T]) DType() DataType {
	return a.dtype
}

// Data returns the flat element slice in row-major order.
//
// WARNING: the slice is the array's own buffer. Modifications through it
// modify the array.
func (a *NdArray[T]) Data() []T {
	return a.data
}

// flatIndex resolves a multi-index into a flat element position.
//
// Byte strides are accumulated and the sum divided by the last stride, which
// equals one element's size; every other stride is a multiple of it, so the
// division converts the byte-scaled offset back into an element count.
func (a *NdArray[T]) flatIndex(indices []int) int {
	if len(indices) != a.Rank() {
		panic(fmt.Sprintf("expected %d indices, got %d", a.Rank(), len(indices)))
	}

	raw := 0
	for i, idx := range indices {
		if idx < 0 || idx >= a.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for axis %d (size %d)", idx, i, a.shape[i]))
		}
		raw += idx * a.strides[i]
	}

	flat := raw / a.strides[a.Rank()-1]
	if flat >= a.Len() {
		panic(fmt.Sprintf("flat offset %d out of bounds for length %d", flat, a.Len()))
	}
	return flat
}

// At returns the element at the given multi-index.
// Panics if the index count differs from the rank or any index is out of
// bounds.
//
// Example:
//
//	a, _ := ndarray.FromSlice([]int32{0, 1, 2, 3, 4, 5}, ndarray.Shape{1, 2, 3})
//	v := a.At(0, 1, 2) // 5
func (a *NdArray[T]) At(indices ...int) T {
	return a.data[a.flatIndex(indices)]
}

// Set writes the element at the given multi-index.
// Panics if the index count differs from the rank or any index is out of
// bounds.
func (a *NdArray[T]) Set(value T, indices ...int) {
	a.data[a.flatIndex(indices)] = value
}

// Reshape replaces the array's shape and recomputes its strides. The new
// shape must have the array's rank and describe exactly Len() elements;
// otherwise an error wrapping ErrShapeMismatch is returned and the array is
// left unchanged. Element data never moves.
func (a *NdArray[T]) Reshape(newShape Shape) error {
	if len(newShape) != a.Rank() {
		return fmt.Errorf("new shape %v has rank %d, array has fixed rank %d: %w",
			newShape, len(newShape), a.Rank(), ErrShapeMismatch)
	}
	if err := newShape.Validate(); err != nil {
		return fmt.Errorf("new shape %v: %w", newShape, err)
	}
	if n := newShape.NumElements(); n != a.Len() {
		return fmt.Errorf("new shape %v requires %d elements, array has %d: %w",
			newShape, n, a.Len(), ErrShapeMismatch)
	}

	a.shape = newShape.Clone()
	a.strides = a.shape.ComputeStrides(a.dtype.Size())
	return nil
}

// Clone creates a deep copy of the array. The copy owns its own buffer.
func (a *NdArray[T]) Clone() *NdArray[T] {
	var data []T
	if a.data != nil {
		data = make([]T, len(a.data))
		copy(data, a.data)
	}
	return &NdArray[T]{
		data:    data,
		shape:   a.shape.Clone(),
		strides: append([]int(nil), a.strides...),
		dtype:   a.dtype,
	}
}

// String returns a human-readable representation of the array.
func (a *NdArray[T]) String() string {
	return fmt.Sprintf("NdArray[%s]%v", a.dtype, a.shape)
}
