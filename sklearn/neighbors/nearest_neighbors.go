// Package neighbors provides a kd-tree backed k-nearest-neighbor search
// under Euclidean distance, modeled on scikit-learn's NearestNeighbors.
package neighbors

import (
	"math"
	"sort"

	"github.com/YuminosukeSato/mlsmote/core/model"
	"github.com/YuminosukeSato/mlsmote/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// DefaultNNeighbors is the neighborhood size used by MLSMOTE.
const DefaultNNeighbors = 5

// NearestNeighbors は kd-tree による k 近傍探索
type NearestNeighbors struct {
	model.BaseEstimator

	nNeighbors int

	tree       *kdtree.Tree
	nSamples_  int
	nFeatures_ int
}

var (
	_ model.Fitter          = (*NearestNeighbors)(nil)
	_ model.ParameterGetter = (*NearestNeighbors)(nil)
)

// Option configures NearestNeighbors.
type Option func(*NearestNeighbors)

// WithNNeighbors sets the number of neighbors returned per query.
func WithNNeighbors(k int) Option {
	return func(nn *NearestNeighbors) {
		nn.nNeighbors = k
	}
}

// NewNearestNeighbors creates an unfitted NearestNeighbors with k = 5.
func NewNearestNeighbors(options ...Option) *NearestNeighbors {
	nn := &NearestNeighbors{nNeighbors: DefaultNNeighbors}
	for _, opt := range options {
		opt(nn)
	}
	return nn
}

// Fit builds the kd-tree over the rows of X. X must have at least
// nNeighbors rows.
func (nn *NearestNeighbors) Fit(X mat.Matrix) error {
	if nn.nNeighbors < 1 {
		return errors.NewValidationError("n_neighbors", "must be positive", nn.nNeighbors)
	}

	rows, cols := X.Dims()
	if rows < nn.nNeighbors {
		return errors.NewInsufficientSamplesError("NearestNeighbors.Fit", nn.nNeighbors, rows)
	}
	if err := errors.CheckMatrix("NearestNeighbors.Fit", X, rows, cols); err != nil {
		return err
	}

	pts := make(samples, rows)
	for i := range pts {
		pts[i] = sample{index: i, coords: mat.Row(nil, i, X)}
	}

	nn.tree = kdtree.New(pts, false)
	nn.nSamples_ = rows
	nn.nFeatures_ = cols
	nn.SetFitted()
	return nil
}

// KNeighbors returns, for every row of X, the indices of its nNeighbors
// nearest fitted rows and their Euclidean distances, closest first.
// Equal distances are ordered by ascending row index.
func (nn *NearestNeighbors) KNeighbors(X mat.Matrix) ([][]int, [][]float64, error) {
	if !nn.IsFitted() {
		return nil, nil, errors.NewNotFittedError("NearestNeighbors", "KNeighbors")
	}
	rows, cols := X.Dims()
	if cols != nn.nFeatures_ {
		return nil, nil, errors.NewDimensionError("NearestNeighbors.KNeighbors", nn.nFeatures_, cols, 1)
	}

	indices := make([][]int, rows)
	distances := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		q := sample{index: -1, coords: mat.Row(nil, i, X)}
		indices[i], distances[i] = nn.query(q)
	}
	return indices, distances, nil
}

// query returns the nNeighbors nearest samples of q, sorted by
// (distance, index).
func (nn *NearestNeighbors) query(q sample) ([]int, []float64) {
	keeper := kdtree.NewNKeeper(nn.nNeighbors)
	nn.tree.NearestSet(keeper, q)

	found := make([]kdtree.ComparableDist, 0, keeper.Len())
	for _, cd := range keeper.Heap {
		if cd.Comparable == nil {
			continue
		}
		found = append(found, cd)
	}
	sort.SliceStable(found, func(a, b int) bool {
		if found[a].Dist != found[b].Dist {
			return found[a].Dist < found[b].Dist
		}
		return found[a].Comparable.(sample).index < found[b].Comparable.(sample).index
	})

	idx := make([]int, len(found))
	dist := make([]float64, len(found))
	for j, cd := range found {
		idx[j] = cd.Comparable.(sample).index
		dist[j] = math.Sqrt(cd.Dist)
	}
	return idx, dist
}

// SelfNeighbors fits a NearestNeighbors with k neighbors on X and queries
// every row of X against it. Row i of the result starts with i itself; the
// remaining k-1 entries are its closest other rows. Fails with an
// InsufficientSamplesError when X has fewer than k rows.
func SelfNeighbors(X mat.Matrix, k int) ([][]int, error) {
	nn := NewNearestNeighbors(WithNNeighbors(k))
	if err := nn.Fit(X); err != nil {
		return nil, err
	}

	rows, _ := X.Dims()
	out := make([][]int, rows)
	for i := 0; i < rows; i++ {
		idx, _ := nn.query(sample{index: i, coords: mat.Row(nil, i, X)})
		out[i] = selfFirst(i, idx)
	}
	return out, nil
}

// selfFirst moves self to position 0. When more than k rows coincide with
// self, self may have been cut from the neighborhood; it then replaces the
// farthest entry.
func selfFirst(self int, idx []int) []int {
	out := make([]int, 0, len(idx))
	out = append(out, self)
	for _, j := range idx {
		if j != self {
			out = append(out, j)
		}
	}
	return out[:len(idx)]
}

// NNeighbors returns the configured neighborhood size.
func (nn *NearestNeighbors) NNeighbors() int {
	return nn.nNeighbors
}

// GetParams returns the hyperparameters.
func (nn *NearestNeighbors) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"n_neighbors": nn.nNeighbors,
		"metric":      "euclidean",
		"algorithm":   "kd_tree",
	}
}
