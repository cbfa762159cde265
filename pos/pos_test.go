package pos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArithmetic(t *testing.T) {
	a := New(1, 2, 3)
	b := New(4, -1, 0)

	assert.Equal(t, New(5, 1, 3), a.Add(b))
	assert.Equal(t, New(-3, 3, 3), a.Sub(b))
	assert.Equal(t, New(-1, -2, -3), a.Neg())
}

func TestMinMaxCorner(t *testing.T) {
	a := New(1, 5, 3)
	b := New(4, 2, 3)
	c := New(0, 9, -1)

	assert.Equal(t, New(0, 2, -1), a.MinCorner(b, c))
	assert.Equal(t, New(4, 9, 3), a.MaxCorner(b, c))
}

func TestEqual(t *testing.T) {
	assert.True(t, New(1, 2).Equal(New(1, 2)))
	assert.False(t, New(1, 2).Equal(New(1, 3)))
	assert.False(t, New(1, 2).Equal(New(1, 2, 3)))
}

func TestMixedDimensionalityPanics(t *testing.T) {
	assert.Panics(t, func() {
		New(1, 2).Add(New(1, 2, 3))
	})
}

func TestIsPermutation(t *testing.T) {
	assert.True(t, IsPermutation([]int{1, 0, 2}, 3))
	assert.False(t, IsPermutation([]int{1, 0}, 3))
	assert.False(t, IsPermutation([]int{0, 0, 2}, 3))
	assert.False(t, IsPermutation([]int{0, 1, 3}, 3))
	assert.Equal(t, []int{0, 1, 2}, Identity(3))
}
