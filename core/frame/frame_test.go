package frame

import (
	"testing"

	"github.com/YuminosukeSato/mlsmote/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNew(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	t.Run("default columns", func(t *testing.T) {
		f, err := New(m, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"0", "1", "2"}, f.Columns())
		r, c := f.Dims()
		assert.Equal(t, 2, r)
		assert.Equal(t, 3, c)
	})

	t.Run("copies input", func(t *testing.T) {
		f, err := New(m, []string{"a", "b", "c"})
		require.NoError(t, err)
		m.Set(0, 0, 100)
		assert.Equal(t, 1.0, f.At(0, 0))
		m.Set(0, 0, 1)
	})

	t.Run("column count mismatch", func(t *testing.T) {
		_, err := New(m, []string{"a"})
		var dimErr *errors.DimensionError
		require.True(t, errors.As(err, &dimErr))
		assert.Equal(t, 1, dimErr.Axis)
	})
}

func TestTake(t *testing.T) {
	f, err := FromRows([][]float64{{0, 0}, {1, 1}, {2, 2}, {3, 3}}, []string{"x", "y"})
	require.NoError(t, err)

	sub, err := f.Take([]int{3, 1})
	require.NoError(t, err)
	assert.Equal(t, 2, sub.Rows())
	assert.Equal(t, []float64{3, 3}, sub.Row(0))
	assert.Equal(t, []float64{1, 1}, sub.Row(1))
	assert.Equal(t, []string{"x", "y"}, sub.Columns())

	empty, err := f.Take(nil)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
	_, c := empty.Dims()
	assert.Equal(t, 2, c)
	assert.Nil(t, empty.Matrix())

	_, err = f.Take([]int{4})
	assert.Error(t, err)
}

func TestConcat(t *testing.T) {
	a, err := FromRows([][]float64{{1, 2}}, []string{"x", "y"})
	require.NoError(t, err)
	b, err := FromRows([][]float64{{3, 4}, {5, 6}}, []string{"x", "y"})
	require.NoError(t, err)

	out, err := Concat(a, Empty([]string{"x", "y"}), b)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Rows())
	assert.Equal(t, []float64{1, 2}, out.Row(0))
	assert.Equal(t, []float64{5, 6}, out.Row(2))
	assert.Equal(t, []string{"x", "y"}, out.Columns())

	// inputs are untouched
	assert.Equal(t, 1, a.Rows())

	allEmpty, err := Concat(Empty([]string{"x"}), Empty([]string{"x"}))
	require.NoError(t, err)
	assert.True(t, allEmpty.IsEmpty())

	renamed, err := FromRows([][]float64{{1, 2}}, []string{"x", "z"})
	require.NoError(t, err)
	_, err = Concat(a, renamed)
	assert.Error(t, err)

	narrow, err := FromRows([][]float64{{1}}, []string{"x"})
	require.NoError(t, err)
	_, err = Concat(a, narrow)
	var dimErr *errors.DimensionError
	assert.True(t, errors.As(err, &dimErr))
}

func TestCloneAndEqual(t *testing.T) {
	a, err := FromRows([][]float64{{1, 2}, {3, 4}}, nil)
	require.NoError(t, err)

	b := a.Clone()
	assert.True(t, a.Equal(b))
	assert.Equal(t, []float64{2, 4}, b.Col(1))

	c, err := FromRows([][]float64{{1, 2}, {3, 5}}, nil)
	require.NoError(t, err)
	assert.False(t, a.Equal(c))

	assert.True(t, Empty([]string{"0"}).Equal(Empty([]string{"0"})))
	assert.False(t, Empty([]string{"0", "1"}).Equal(a))
}

func TestFromRowsRagged(t *testing.T) {
	_, err := FromRows([][]float64{{1, 2}, {3}}, nil)
	assert.Error(t, err)
}
