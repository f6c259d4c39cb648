package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	a := Zeros[int32](Shape{2, 3, 4})

	want := int32(0)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 4; k++ {
				a.Set(want, i, j, k)
				require.Equal(t, want, a.At(i, j, k))
				want++
			}
		}
	}

	// Flat order must be row-major.
	for flat, v := range a.Data() {
		require.Equal(t, int32(flat), v)
	}
}

func TestLenMatchesShapeProduct(t *testing.T) {
	arrays := []*NdArray[int32]{
		Zeros[int32](Shape{4}),
		Zeros[int32](Shape{2, 2}),
		Zeros[int32](Shape{3, 0, 2}),
		mustFromSlice(t, []int32{1, 2, 3, 4, 5, 6}, Shape{1, 2, 3}),
	}

	for _, a := range arrays {
		assert.Equal(t, a.Shape().NumElements(), a.Len(), "shape %v", a.Shape())
	}
}

func TestReshape(t *testing.T) {
	const end = 65535

	t.Run("rank 2 chain", func(t *testing.T) {
		a, err := Arange[uint16](2, end)
		require.NoError(t, err)
		assert.Equal(t, Shape{1, end}, a.Shape())

		for _, newShape := range []Shape{
			{end / 5, 5},
			{end / 15, 15},
			{end / 257, 257},
		} {
			require.NoError(t, a.Reshape(newShape))
			assert.Equal(t, newShape, a.Shape())
		}
	})

	t.Run("strides recomputed", func(t *testing.T) {
		a, err := Arange[uint16](3, end)
		require.NoError(t, err)

		require.NoError(t, a.Reshape(Shape{3, 5, 4369}))
		assert.Equal(t, []int{5 * 4369 * 2, 4369 * 2, 2}, a.Strides())

		require.NoError(t, a.Reshape(Shape{1, 17, 3855}))
		assert.Equal(t, []int{17 * 3855 * 2, 3855 * 2, 2}, a.Strides())
	})

	t.Run("preserves flat order", func(t *testing.T) {
		a := mustFromSlice(t, []int32{0, 1, 2, 3, 4, 5}, Shape{1, 2, 3})
		before := append([]int32(nil), a.Data()...)

		require.NoError(t, a.Reshape(Shape{3, 2, 1}))
		assert.Equal(t, before, a.Data())
		assert.Equal(t, int32(4), a.At(2, 0, 0))
	})

	t.Run("indexed read after reshape", func(t *testing.T) {
		a, err := Arange[uint16](3, end)
		require.NoError(t, err)

		require.NoError(t, a.Reshape(Shape{3, 5, 4369}))
		assert.Equal(t, uint16(31817), a.At(1, 2, 1234))
	})
}

func TestReshapeMismatch(t *testing.T) {
	a := mustFromSlice(t, []int32{0, 1, 2, 3, 4, 5}, Shape{2, 3})

	err := a.Reshape(Shape{4, 2})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	// A failed reshape leaves the array untouched.
	assert.Equal(t, Shape{2, 3}, a.Shape())
	assert.Equal(t, []int{12, 4}, a.Strides())
	assert.Equal(t, int32(5), a.At(1, 2))
}

func TestReshapeRankMismatch(t *testing.T) {
	a := mustFromSlice(t, []int32{0, 1, 2, 3, 4, 5}, Shape{2, 3})

	err := a.Reshape(Shape{6})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Equal(t, Shape{2, 3}, a.Shape())

	err = a.Reshape(Shape{1, 2, 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Equal(t, 2, a.Rank())
}

func TestReshapeNegativeDim(t *testing.T) {
	a := mustFromSlice(t, []int32{0, 1, 2, 3, 4, 5}, Shape{2, 3})

	err := a.Reshape(Shape{-2, -3})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Equal(t, Shape{2, 3}, a.Shape())
}

func TestIndexOutOfBounds(t *testing.T) {
	t.Run("flat offset past length", func(t *testing.T) {
		a := mustFromSlice(t, []int32{1, 2, 3, 4}, Shape{4})
		assert.Panics(t, func() { a.At(4) })
		assert.Panics(t, func() { a.Set(0, 7) })
	})

	t.Run("per-axis", func(t *testing.T) {
		a := mustFromSlice(t, []int32{1, 2, 3, 4}, Shape{2, 2})
		// Flat offset 3 would be in bounds, but axis 1 only has size 2.
		assert.Panics(t, func() { a.At(0, 3) })
		assert.Panics(t, func() { a.At(1, 2) })
		assert.Panics(t, func() { a.At(-1, 0) })
	})

	t.Run("wrong index count", func(t *testing.T) {
		a := Zeros[int32](Shape{2, 2})
		assert.Panics(t, func() { a.At(1) })
		assert.Panics(t, func() { a.At(1, 1, 1) })
	})

	t.Run("empty array", func(t *testing.T) {
		a := Empty[int32](2)
		assert.Panics(t, func() { a.At(0, 0) })
	})
}

func TestClone(t *testing.T) {
	a := mustFromSlice(t, []int32{1, 2, 3, 4}, Shape{2, 2})
	b := a.Clone()

	b.Set(99, 0, 0)
	assert.Equal(t, int32(1), a.At(0, 0), "clone must not share the buffer")
	assert.Equal(t, int32(99), b.At(0, 0))

	require.NoError(t, b.Reshape(Shape{4, 1}))
	assert.Equal(t, Shape{2, 2}, a.Shape())
}

func TestString(t *testing.T) {
	a := Zeros[float32](Shape{3, 2})
	assert.Equal(t, "NdArray[float32][3 2]", a.String())
}
