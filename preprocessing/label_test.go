package preprocessing

import (
	"testing"

	"github.com/YuminosukeSato/mlsmote/core/frame"
	"github.com/YuminosukeSato/mlsmote/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelBinarizer_FitTransform(t *testing.T) {
	lb := NewLabelBinarizerDefault()
	Y, err := lb.FitTransform([]int{2, 0, 4, 2, 0})
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2, 4}, lb.Classes)
	assert.Equal(t, []string{"class_0", "class_2", "class_4"}, Y.Columns())

	want, err := frame.FromRows([][]float64{
		{0, 1, 0},
		{1, 0, 0},
		{0, 0, 1},
		{0, 1, 0},
		{1, 0, 0},
	}, []string{"class_0", "class_2", "class_4"})
	require.NoError(t, err)
	assert.True(t, want.Equal(Y))

	back, err := lb.InverseTransform(Y)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 4, 2, 0}, back)
}

func TestLabelBinarizer_Errors(t *testing.T) {
	t.Run("not fitted", func(t *testing.T) {
		_, err := NewLabelBinarizer("c").Transform([]int{1})
		var nf *errors.NotFittedError
		assert.True(t, errors.As(err, &nf))
	})

	t.Run("empty fit", func(t *testing.T) {
		err := NewLabelBinarizer("c").Fit(nil)
		assert.True(t, errors.Is(err, errors.ErrEmptyData))
	})

	t.Run("unknown class", func(t *testing.T) {
		lb := NewLabelBinarizer("c")
		require.NoError(t, lb.Fit([]int{0, 1}))
		_, err := lb.Transform([]int{0, 3})
		var ve *errors.ValueError
		assert.True(t, errors.As(err, &ve))
	})

	t.Run("inverse of multi-hot row", func(t *testing.T) {
		lb := NewLabelBinarizer("c")
		require.NoError(t, lb.Fit([]int{0, 1}))
		Y, err := frame.FromRows([][]float64{{1, 1}}, nil)
		require.NoError(t, err)
		_, err = lb.InverseTransform(Y)
		var ve *errors.ValueError
		assert.True(t, errors.As(err, &ve))
	})

	t.Run("inverse column mismatch", func(t *testing.T) {
		lb := NewLabelBinarizer("c")
		require.NoError(t, lb.Fit([]int{0, 1}))
		_, err := lb.InverseTransform(frame.Empty([]string{"a", "b", "c"}))
		var de *errors.DimensionError
		assert.True(t, errors.As(err, &de))
	})
}

func TestLabelBinarizer_EmptyTransform(t *testing.T) {
	lb := NewLabelBinarizer("class")
	require.NoError(t, lb.Fit([]int{1, 3}))

	Y, err := lb.Transform(nil)
	require.NoError(t, err)
	assert.True(t, Y.IsEmpty())
	assert.Equal(t, []string{"class_1", "class_3"}, Y.Columns())
}

func TestLabelBinarizer_String(t *testing.T) {
	lb := NewLabelBinarizer("class")
	assert.Equal(t, `LabelBinarizer(prefix="class")`, lb.String())
	require.NoError(t, lb.Fit([]int{0, 1, 1}))
	assert.Equal(t, `LabelBinarizer(prefix="class", n_classes=2)`, lb.String())
	assert.Equal(t, "class", lb.GetParams()["prefix"])
}
