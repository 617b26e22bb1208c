// Package metrics measures label imbalance of multi-label datasets.
//
// For a binary label matrix the minority class of every column is the value
// 1. IRLbl (imbalance ratio per label) of column j is
//
//	IRLbl_j = max_k(count_k) / max(count_j, 1)
//
// where count_j is the number of rows carrying label j. MeanIR is the
// arithmetic mean of all IRLbl values and tail labels are the columns whose
// IRLbl strictly exceeds MeanIR.
package metrics

import (
	"fmt"

	"github.com/YuminosukeSato/mlsmote/core/frame"
	"github.com/YuminosukeSato/mlsmote/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// MinorityRule selects how the minority-class count of a column is obtained.
type MinorityRule int

const (
	// RuleBothClasses counts the positives of a column only when the column
	// shows both 0 and 1. A column with a single observed value (all 0 or
	// all 1) counts as zero and raises a DegenerateLabelWarning.
	RuleBothClasses MinorityRule = iota

	// RulePositivePresent counts the positives whenever any are present, so
	// an all-1 column keeps its full count. Columns without positives count
	// as zero and raise a DegenerateLabelWarning.
	RulePositivePresent
)

// String returns the rule name.
func (r MinorityRule) String() string {
	switch r {
	case RuleBothClasses:
		return "both_classes"
	case RulePositivePresent:
		return "positive_present"
	default:
		return fmt.Sprintf("MinorityRule(%d)", int(r))
	}
}

// Imbalance holds the per-label measurements of one label matrix.
type Imbalance struct {
	Columns []string
	Counts  []float64
	IRLbl   []float64
	MeanIR  float64
}

// Measure computes label counts, IRLbl and MeanIR of Y. Y must be a
// non-empty binary frame with at least one column.
func Measure(Y *frame.Frame, rule MinorityRule) (*Imbalance, error) {
	counts, err := LabelCounts(Y, rule)
	if err != nil {
		return nil, err
	}

	maxCount := floats.Max(counts)
	irlbl := make([]float64, len(counts))
	for j, c := range counts {
		if c > 0 {
			irlbl[j] = maxCount / c
		} else {
			irlbl[j] = maxCount
		}
	}

	return &Imbalance{
		Columns: Y.Columns(),
		Counts:  counts,
		IRLbl:   irlbl,
		MeanIR:  stat.Mean(irlbl, nil),
	}, nil
}

// LabelCounts returns the minority-class count of every column of Y
// according to rule.
func LabelCounts(Y *frame.Frame, rule MinorityRule) ([]float64, error) {
	r, c := Y.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewValueError("LabelCounts", "empty label matrix")
	}
	if err := errors.CheckBinary("LabelCounts", Y.Matrix(), r, c); err != nil {
		return nil, err
	}

	columns := Y.Columns()
	counts := make([]float64, c)
	for j := 0; j < c; j++ {
		positives := floats.Sum(Y.Col(j))

		switch rule {
		case RuleBothClasses:
			if positives == 0 || positives == float64(r) {
				errors.Warn(errors.NewDegenerateLabelWarning(columns[j], Y.At(0, j)))
				continue
			}
		case RulePositivePresent:
			if positives == 0 {
				errors.Warn(errors.NewDegenerateLabelWarning(columns[j], 0))
				continue
			}
		default:
			return nil, errors.NewValidationError("rule", "unknown minority rule", rule)
		}
		counts[j] = positives
	}
	return counts, nil
}

// ImbalanceRatios returns IRLbl per label and MeanIR.
func ImbalanceRatios(Y *frame.Frame, rule MinorityRule) ([]float64, float64, error) {
	im, err := Measure(Y, rule)
	if err != nil {
		return nil, 0, err
	}
	return im.IRLbl, im.MeanIR, nil
}

// MeanImbalanceRatio returns MeanIR of Y.
func MeanImbalanceRatio(Y *frame.Frame, rule MinorityRule) (float64, error) {
	im, err := Measure(Y, rule)
	if err != nil {
		return 0, err
	}
	return im.MeanIR, nil
}

// TailLabels returns the positions of the columns whose IRLbl strictly
// exceeds MeanIR, in column order. When every label is equally imbalanced
// the result is empty.
func TailLabels(Y *frame.Frame, rule MinorityRule) ([]int, error) {
	im, err := Measure(Y, rule)
	if err != nil {
		return nil, err
	}
	return im.TailLabels(), nil
}

// TailLabels returns the positions of the tail label columns.
func (im *Imbalance) TailLabels() []int {
	var tail []int
	for j, ir := range im.IRLbl {
		if ir > im.MeanIR {
			tail = append(tail, j)
		}
	}
	return tail
}

// TailLabelNames returns the names of the tail label columns.
func (im *Imbalance) TailLabelNames() []string {
	tail := im.TailLabels()
	names := make([]string, len(tail))
	for i, j := range tail {
		names[i] = im.Columns[j]
	}
	return names
}
