package array

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triple is a fixed-size shape descriptor that is not a Shape.
type triple [3]int

func (t triple) Len() int { return len(t) }
func (t triple) At(i int) int { return t[i] }

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  int
	}{
		{"vector", Shape{5}, 5},
		{"matrix", Shape{3, 4}, 12},
		{"3d", Shape{2, 3, 4}, 24},
		{"unit dims", Shape{1, 1, 7, 1}, 7},
		{"empty", Shape{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.shape.NumElements())
		})
	}
}

func TestShapeStrides(t *testing.T) {
	tests := []struct {
		shape Shape
		want  []int
	}{
		{Shape{5}, []int{}},
		{Shape{3, 4}, []int{4}},
		{Shape{2, 3, 4}, []int{12, 4}},
		{Shape{7, 1, 3, 2}, []int{6, 6, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.shape.String(), func(t *testing.T) {
			got := tt.shape.Strides()
			assert.Equal(t, tt.want, got)
			require.Len(t, got, len(tt.shape)-1)

			// strides[k] is the product of all extents after k.
			for k := range got {
				assert.Equal(t, tt.shape[k+1:].NumElements(), got[k], "stride %d", k)
			}
		})
	}
}

func TestShapeValidate(t *testing.T) {
	require.NoError(t, Shape{2, 3, 4}.Validate())

	err := Shape{2, 0, 4}.Validate()
	require.Error(t, err)
	var de *DimensionError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 1, de.Axis)
	assert.Equal(t, 0, de.Extent)
	assert.ErrorIs(t, err, ErrInvalidShape)

	err = Shape{-3}.Validate()
	assert.ErrorIs(t, err, ErrInvalidShape)

	err = Shape{maxInt, 2}.Validate()
	assert.ErrorIs(t, err, ErrSizeOverflow)
}

func TestShapeOf(t *testing.T) {
	s := ShapeOf(triple{2, 3, 4})
	assert.Equal(t, Shape{2, 3, 4}, s)

	orig := Shape{4, 5}
	clone := ShapeOf(orig)
	clone[0] = 9
	assert.Equal(t, 4, orig[0], "ShapeOf must copy")
}

func TestShapeEqualClone(t *testing.T) {
	a := Shape{2, 3}
	b := a.Clone()
	assert.True(t, a.Equal(b))

	b[1] = 4
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(Shape{2}))
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "(2, 3, 4)", Shape{2, 3, 4}.String())
	assert.Equal(t, "(5)", Shape{5}.String())
	assert.Equal(t, "(2, 3, 4)", Shape{2, 3, 4}.LogValue().String())
}

func TestParseShape(t *testing.T) {
	s, err := ParseShape("2, 3,4")
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3, 4}, s)

	_, err = ParseShape("2,x")
	assert.Error(t, err)

	_, err = ParseShape(" , ")
	assert.True(t, errors.Is(err, ErrInvalidShape))
}
