package neighbors

import (
	"gonum.org/v1/gonum/spatial/kdtree"
)

// sample is one row of the fitted matrix. It remembers its row index so
// query results can be mapped back after the tree has reordered the points.
type sample struct {
	index  int
	coords []float64
}

// Compare implements kdtree.Comparable.
func (s sample) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	return s.coords[d] - c.(sample).coords[d]
}

// Dims implements kdtree.Comparable.
func (s sample) Dims() int { return len(s.coords) }

// Distance implements kdtree.Comparable. It returns the squared Euclidean
// distance, which orders neighbors identically to the Euclidean one.
func (s sample) Distance(c kdtree.Comparable) float64 {
	q := c.(sample)
	var sum float64
	for i, v := range s.coords {
		d := v - q.coords[i]
		sum += d * d
	}
	return sum
}

// samples implements kdtree.Interface.
type samples []sample

func (p samples) Index(i int) kdtree.Comparable { return p[i] }
func (p samples) Len() int                      { return len(p) }
func (p samples) Pivot(d kdtree.Dim) int        { return plane{samples: p, Dim: d}.Pivot() }
func (p samples) Slice(start, end int) kdtree.Interface {
	return p[start:end]
}

// plane sorts samples along one dimension for median partitioning.
type plane struct {
	kdtree.Dim
	samples
}

func (p plane) Less(i, j int) bool {
	return p.samples[i].coords[p.Dim] < p.samples[j].coords[p.Dim]
}

func (p plane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }

func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.samples = p.samples[start:end]
	return p
}

func (p plane) Swap(i, j int) {
	p.samples[i], p.samples[j] = p.samples[j], p.samples[i]
}
