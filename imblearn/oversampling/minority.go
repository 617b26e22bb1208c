// Package oversampling implements MLSMOTE (Multi-Label Synthetic Minority
// Over-sampling Technique) for binary multi-label datasets.
//
// Samples carrying at least one tail label form the minority subset. New
// samples are built from a reference row of that subset and one of its
// nearest neighbors: the features are blended, the labels are decided by a
// majority vote over the reference's neighborhood.
//
// Two resamplers share the building blocks:
//
//	sm := oversampling.NewMLSMOTE(oversampling.WithNSample(100))
//	Xres, Yres, err := sm.FitResample(X, Y)
//
//	it := oversampling.NewIterativeMLSMOTE(oversampling.WithIterThreshold(2.5))
//	Xres, Yres, err = it.FitResample(X, Y)
package oversampling

import (
	"sort"

	"github.com/YuminosukeSato/mlsmote/core/frame"
	"github.com/YuminosukeSato/mlsmote/metrics"
	"github.com/YuminosukeSato/mlsmote/pkg/errors"
)

// TailLabelIndex returns the ascending, deduplicated positions of the rows
// of Y that carry at least one tail label. Without tail labels the result
// is empty.
func TailLabelIndex(Y *frame.Frame, rule metrics.MinorityRule) ([]int, error) {
	tail, err := metrics.TailLabels(Y, rule)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]struct{})
	for _, j := range tail {
		for i, v := range Y.Col(j) {
			if v == 1 {
				seen[i] = struct{}{}
			}
		}
	}

	index := make([]int, 0, len(seen))
	for i := range seen {
		index = append(index, i)
	}
	sort.Ints(index)
	return index, nil
}

// MinorityInstances returns the rows of X and Y selected by TailLabelIndex,
// in their original relative order and renumbered from 0. Both results
// keep the input columns; they have zero rows when Y has no tail labels.
func MinorityInstances(X, Y *frame.Frame, rule metrics.MinorityRule) (*frame.Frame, *frame.Frame, error) {
	if err := checkAligned("MinorityInstances", X, Y); err != nil {
		return nil, nil, err
	}

	index, err := TailLabelIndex(Y, rule)
	if err != nil {
		return nil, nil, err
	}

	Xsub, err := X.Take(index)
	if err != nil {
		return nil, nil, err
	}
	Ysub, err := Y.Take(index)
	if err != nil {
		return nil, nil, err
	}
	return Xsub, Ysub, nil
}

// checkAligned fails with a DimensionError on axis 0 when X and Y have
// different row counts.
func checkAligned(op string, X, Y *frame.Frame) error {
	if X == nil || Y == nil {
		return errors.NewValueError(op, "feature and label frames must not be nil")
	}
	if X.Rows() != Y.Rows() {
		return errors.NewDimensionError(op, X.Rows(), Y.Rows(), 0)
	}
	return nil
}
