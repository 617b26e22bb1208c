package oversampling

import (
	"fmt"
	"math"
	"testing"

	"github.com/YuminosukeSato/mlsmote/core/frame"
	"github.com/YuminosukeSato/mlsmote/metrics"
	"github.com/YuminosukeSato/mlsmote/pkg/errors"
	"github.com/YuminosukeSato/mlsmote/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mean imbalance ratios of the demo dataset after each copy-only
// iteration. Class counts start at 100, 25, 205, 8 and 662.
const (
	demoInitialMeanIR = (6.62 + 26.48 + 662.0/205 + 82.75 + 1) / 5
	copyIter1MeanIR   = (6.62 + 13.24 + 662.0/205 + 41.375 + 1) / 5 // class_1 50, class_3 16
	copyIter2MeanIR   = (6.62 + 662.0/75 + 662.0/205 + 662.0/24 + 1) / 5
)

func rowKey(row []float64) string {
	return fmt.Sprint(row)
}

func TestIterativeMLSMOTE_CopyOnly(t *testing.T) {
	X, Y := demoDataset(t)
	logger, _ := log.NewTestLogger(log.LevelInfo)

	it := NewIterativeMLSMOTE(WithCopyOnly(true), WithIterLogger(logger))
	Xres, Yres, err := it.FitResample(X, Y)
	require.NoError(t, err)

	// iteration 1 copies 33 tail rows, iteration 2 copies the 66 tail rows
	// of the accumulated set, iteration 3 raises MeanIR again and is dropped
	assert.Equal(t, 1000+66, Xres.Rows())
	assert.Equal(t, 1000+66, Yres.Rows())

	meanIR, err := metrics.MeanImbalanceRatio(Yres, metrics.RuleBothClasses)
	require.NoError(t, err)
	assert.InDelta(t, copyIter2MeanIR, meanIR, 1e-9)

	initial := logger.EntriesWithMessage("initial mean imbalance ratio")
	require.Len(t, initial, 1)
	assert.InDelta(t, demoInitialMeanIR, initial[0][log.MeanIRKey], 1e-9)
	assert.Len(t, logger.EntriesWithMessage("current mean imbalance ratio"), 3)

	// every appended row duplicates an input row
	features := map[string]bool{}
	for i := 0; i < X.Rows(); i++ {
		features[rowKey(X.Row(i))+rowKey(Y.Row(i))] = true
	}
	for i := X.Rows(); i < Xres.Rows(); i++ {
		assert.True(t, features[rowKey(Xres.Row(i))+rowKey(Yres.Row(i))], "row %d is not a copy", i)
	}
}

func TestIterativeMLSMOTE_Threshold(t *testing.T) {
	X, Y := demoDataset(t)
	logger, _ := log.NewTestLogger(log.LevelError)

	tests := []struct {
		name      string
		threshold float64
		wantRows  int
		wantIR    float64
	}{
		{
			// the first candidate already reaches the threshold
			name:      "threshold above initial imbalance",
			threshold: demoInitialMeanIR + 1,
			wantRows:  1000,
			wantIR:    demoInitialMeanIR,
		},
		{
			// the second candidate drops to 9.45 and is discarded
			name:      "stops before the candidate reaching the threshold",
			threshold: 10,
			wantRows:  1000 + demoMinorityRows,
			wantIR:    copyIter1MeanIR,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := NewIterativeMLSMOTE(
				WithCopyOnly(true),
				WithIterThreshold(tt.threshold),
				WithIterLogger(logger),
			)
			Xres, Yres, err := it.FitResample(X, Y)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRows, Xres.Rows())

			meanIR, err := metrics.MeanImbalanceRatio(Yres, metrics.RuleBothClasses)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantIR, meanIR, 1e-9)
		})
	}
}

func TestIterativeMLSMOTE_MaxIter(t *testing.T) {
	warnings := captureWarnings(t)
	X, Y := demoDataset(t)
	logger, _ := log.NewTestLogger(log.LevelError)

	// MeanIR never drops to zero, so every candidate is accepted
	it := NewIterativeMLSMOTE(WithIterThreshold(0), WithMaxIter(3), WithIterLogger(logger))
	Xres, Yres, err := it.FitResample(X, Y)
	require.NoError(t, err)
	assert.Greater(t, Xres.Rows(), 1000)
	assert.Equal(t, Xres.Rows(), Yres.Rows())

	var convergence *errors.ConvergenceWarning
	found := false
	for _, w := range *warnings {
		if errors.As(w, &convergence) {
			found = true
			assert.Equal(t, 3, convergence.Iterations)
		}
	}
	assert.True(t, found, "expected a ConvergenceWarning")
}

func TestIterativeMLSMOTE_Synthesis(t *testing.T) {
	X, Y := demoDataset(t)
	logger, _ := log.NewTestLogger(log.LevelError)

	it := NewIterativeMLSMOTE(WithIterLogger(logger))
	Xres, Yres, err := it.FitResample(X, Y)
	require.NoError(t, err)

	// candidates always extend the original dataset
	assert.True(t, X.Equal(head(t, Xres, 1000)))
	assert.True(t, Y.Equal(head(t, Yres, 1000)))
	assert.Equal(t, X.Columns(), Xres.Columns())
	assert.Equal(t, Y.Columns(), Yres.Columns())

	// only improving candidates are accepted
	meanIR, err := metrics.MeanImbalanceRatio(Yres, metrics.RuleBothClasses)
	require.NoError(t, err)
	assert.LessOrEqual(t, meanIR, demoInitialMeanIR+1e-9)

	// a fresh generator per call replays the same result
	Xagain, Yagain, err := it.FitResample(X, Y)
	require.NoError(t, err)
	assert.True(t, Xres.Equal(Xagain))
	assert.True(t, Yres.Equal(Yagain))

	other, _, err := NewIterativeMLSMOTE(WithIterLogger(logger)).FitResample(X, Y)
	require.NoError(t, err)
	assert.True(t, Xres.Equal(other))
}

func TestIterativeMLSMOTE_NoTail(t *testing.T) {
	warnings := captureWarnings(t)
	logger, _ := log.NewTestLogger(log.LevelError)
	X := indexedFeatures(t, 6)
	Y := labelColumns(t, 6, []string{"a", "b"}, [][]int{{0, 1}, {2, 3}})

	Xres, Yres, err := NewIterativeMLSMOTE(WithIterLogger(logger)).FitResample(X, Y)
	require.NoError(t, err)
	assert.True(t, X.Equal(Xres))
	assert.True(t, Y.Equal(Yres))
	assert.NotSame(t, X, Xres)

	require.Len(t, *warnings, 1)
	var nt *errors.NoTailLabelsWarning
	assert.True(t, errors.As((*warnings)[0], &nt))
}

func TestIterativeMLSMOTE_RowMismatch(t *testing.T) {
	_, _, err := NewIterativeMLSMOTE().FitResample(indexedFeatures(t, 4), frame.Empty([]string{"a"}))
	var dim *errors.DimensionError
	assert.True(t, errors.As(err, &dim))
}

func TestIterativeMLSMOTE_GetParams(t *testing.T) {
	params := NewIterativeMLSMOTE().GetParams()
	assert.True(t, math.IsNaN(params["threshold"].(float64)))
	assert.Equal(t, false, params["cp"])
	assert.Equal(t, int64(42), params["random_state"])
	assert.Equal(t, 100, params["max_iter"])

	params = NewIterativeMLSMOTE(WithIterThreshold(2.5), WithCopyOnly(true)).GetParams()
	assert.Equal(t, 2.5, params["threshold"])
	assert.Equal(t, true, params["cp"])
}
