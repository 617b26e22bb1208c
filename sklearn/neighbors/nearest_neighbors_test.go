package neighbors

import (
	"math"
	"math/rand"
	"testing"

	"github.com/YuminosukeSato/mlsmote/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNearestNeighbors_KNeighbors(t *testing.T) {
	X := mat.NewDense(6, 2, []float64{
		0, 0,
		1, 0,
		0, 1,
		1, 1,
		10, 10,
		11, 10,
	})

	nn := NewNearestNeighbors(WithNNeighbors(3))
	require.NoError(t, nn.Fit(X))
	assert.True(t, nn.IsFitted())

	q := mat.NewDense(1, 2, []float64{10.2, 10})
	idx, dist, err := nn.KNeighbors(q)
	require.NoError(t, err)
	require.Len(t, idx, 1)

	assert.Equal(t, []int{4, 5, 3}, idx[0])
	assert.InDelta(t, 0.2, dist[0][0], 1e-12)
	assert.InDelta(t, 0.8, dist[0][1], 1e-12)
	assert.InDelta(t, math.Sqrt(9.2*9.2+81), dist[0][2], 1e-12)
}

func TestNearestNeighbors_TiesOrderedByIndex(t *testing.T) {
	// four corners equidistant from the center query
	X := mat.NewDense(5, 2, []float64{
		1, 1,
		-1, 1,
		1, -1,
		-1, -1,
		5, 5,
	})

	nn := NewNearestNeighbors(WithNNeighbors(4))
	require.NoError(t, nn.Fit(X))

	idx, _, err := nn.KNeighbors(mat.NewDense(1, 2, []float64{0, 0}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, idx[0])
}

func TestNearestNeighbors_Errors(t *testing.T) {
	t.Run("not fitted", func(t *testing.T) {
		nn := NewNearestNeighbors()
		_, _, err := nn.KNeighbors(mat.NewDense(1, 2, nil))
		var nf *errors.NotFittedError
		assert.True(t, errors.As(err, &nf))
	})

	t.Run("too few samples", func(t *testing.T) {
		nn := NewNearestNeighbors()
		err := nn.Fit(mat.NewDense(4, 2, nil))
		var ins *errors.InsufficientSamplesError
		require.True(t, errors.As(err, &ins))
		assert.Equal(t, 5, ins.Required)
		assert.Equal(t, 4, ins.Got)
	})

	t.Run("feature mismatch", func(t *testing.T) {
		nn := NewNearestNeighbors()
		require.NoError(t, nn.Fit(mat.NewDense(5, 2, []float64{0, 0, 1, 1, 2, 2, 3, 3, 4, 4})))
		_, _, err := nn.KNeighbors(mat.NewDense(1, 3, nil))
		var dim *errors.DimensionError
		assert.True(t, errors.As(err, &dim))
	})

	t.Run("nan input", func(t *testing.T) {
		X := mat.NewDense(5, 1, []float64{0, 1, math.NaN(), 3, 4})
		err := NewNearestNeighbors().Fit(X)
		var num *errors.NumericalInstabilityError
		assert.True(t, errors.As(err, &num))
	})

	t.Run("non-positive k", func(t *testing.T) {
		err := NewNearestNeighbors(WithNNeighbors(0)).Fit(mat.NewDense(5, 1, nil))
		var val *errors.ValidationError
		assert.True(t, errors.As(err, &val))
	})
}

func TestSelfNeighbors(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	X := mat.NewDense(40, 3, nil)
	for i := 0; i < 40; i++ {
		for j := 0; j < 3; j++ {
			X.Set(i, j, rng.NormFloat64())
		}
	}

	idx, err := SelfNeighbors(X, DefaultNNeighbors)
	require.NoError(t, err)
	require.Len(t, idx, 40)

	for i, row := range idx {
		require.Len(t, row, DefaultNNeighbors)
		assert.Equal(t, i, row[0], "row %d must list itself first", i)

		seen := map[int]bool{}
		for _, j := range row {
			assert.False(t, seen[j], "row %d repeats neighbor %d", i, j)
			seen[j] = true
		}
	}

	again, err := SelfNeighbors(X, DefaultNNeighbors)
	require.NoError(t, err)
	assert.Equal(t, idx, again)
}

func TestSelfNeighbors_Duplicates(t *testing.T) {
	// six identical rows: every query ties with all of them
	X := mat.NewDense(6, 2, []float64{
		1, 1,
		1, 1,
		1, 1,
		1, 1,
		1, 1,
		1, 1,
	})

	idx, err := SelfNeighbors(X, 5)
	require.NoError(t, err)

	for i, row := range idx {
		require.Len(t, row, 5)
		assert.Equal(t, i, row[0])

		seen := map[int]bool{}
		for _, j := range row {
			assert.False(t, seen[j])
			assert.True(t, j >= 0 && j < 6)
			seen[j] = true
		}
	}
}

func TestSelfNeighbors_TooFewRows(t *testing.T) {
	_, err := SelfNeighbors(mat.NewDense(3, 2, nil), 5)
	var ins *errors.InsufficientSamplesError
	assert.True(t, errors.As(err, &ins))
}

func TestSelfFirst(t *testing.T) {
	assert.Equal(t, []int{2, 0, 1}, selfFirst(2, []int{0, 2, 1}))
	assert.Equal(t, []int{9, 0, 1}, selfFirst(9, []int{0, 1, 3}))
	assert.Equal(t, []int{4, 1, 2}, selfFirst(4, []int{4, 1, 2}))
}

func TestNearestNeighbors_GetParams(t *testing.T) {
	nn := NewNearestNeighbors(WithNNeighbors(7))
	params := nn.GetParams()
	assert.Equal(t, 7, params["n_neighbors"])
	assert.Equal(t, "euclidean", params["metric"])
	assert.Equal(t, 7, nn.NNeighbors())
}

func BenchmarkSelfNeighbors(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	X := mat.NewDense(1000, 10, nil)
	for i := 0; i < 1000; i++ {
		for j := 0; j < 10; j++ {
			X.Set(i, j, rng.Float64())
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := SelfNeighbors(X, DefaultNNeighbors); err != nil {
			b.Fatal(err)
		}
	}
}
