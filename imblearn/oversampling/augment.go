package oversampling

import (
	"math/rand"

	"github.com/YuminosukeSato/mlsmote/core/frame"
	"github.com/YuminosukeSato/mlsmote/pkg/errors"
	"github.com/YuminosukeSato/mlsmote/pkg/log"
	"github.com/YuminosukeSato/mlsmote/sklearn/neighbors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SamplesPerLabel is the number of synthetic rows per label column drawn
// when no explicit sample count is requested.
const SamplesPerLabel = 5

// Augment appends nSample synthetic rows to X and Y. A negative nSample
// requests SamplesPerLabel rows per label column.
//
// Each synthetic row is drawn independently:
//   - a reference row uniformly from X,
//   - one of its four nearest other rows,
//   - labels set where more than two of the reference's five-row
//     neighborhood carry the label,
//   - features reference + ratio*(reference - neighbor) with ratio in [0, 1).
//
// The blend moves away from the chosen neighbor, not toward it.
//
// X needs at least five rows unless nSample is zero, in which case copies
// of the inputs are returned without searching neighbors.
func Augment(X, Y *frame.Frame, nSample int, rng *rand.Rand) (Xout, Yout *frame.Frame, err error) {
	defer errors.Recover(&err, "Augment")

	if err := checkAligned("Augment", X, Y); err != nil {
		return nil, nil, err
	}
	n, nFeatures := X.Dims()
	_, nLabels := Y.Dims()

	if nSample < 0 {
		nSample = SamplesPerLabel * nLabels
	}
	if nSample == 0 {
		return X.Clone(), Y.Clone(), nil
	}
	if rng == nil {
		return nil, nil, errors.NewValueError("Augment", "random generator must not be nil")
	}
	if n < neighbors.DefaultNNeighbors {
		return nil, nil, errors.NewInsufficientSamplesError("Augment", neighbors.DefaultNNeighbors, n)
	}
	if err := errors.CheckBinary("Augment", Y.Matrix(), n, nLabels); err != nil {
		return nil, nil, err
	}

	nn, err := neighbors.SelfNeighbors(X.Matrix(), neighbors.DefaultNNeighbors)
	if err != nil {
		return nil, nil, err
	}

	logger := log.GetLoggerWithName("oversampling")
	logger.Debug("augmenting",
		log.OperationKey, log.OperationAugment,
		log.SamplesKey, n,
		log.SyntheticSamplesKey, nSample,
	)

	newX := mat.NewDense(nSample, nFeatures, nil)
	newY := mat.NewDense(nSample, nLabels, nil)
	gap := make([]float64, nFeatures)
	votes := make([]float64, nLabels)

	for s := 0; s < nSample; s++ {
		reference := rng.Intn(n)
		neighborhood := nn[reference]
		neighbor := neighborhood[1+rng.Intn(len(neighborhood)-1)]

		for j := range votes {
			votes[j] = 0
		}
		for _, m := range neighborhood {
			floats.Add(votes, Y.Row(m))
		}
		for j, v := range votes {
			if v > 2 {
				newY.Set(s, j, 1)
			}
		}

		ratio := rng.Float64()
		ref := X.Row(reference)
		floats.SubTo(gap, ref, X.Row(neighbor))
		floats.AddScaled(ref, ratio, gap)
		newX.SetRow(s, ref)
	}

	synthX, err := frame.New(newX, X.Columns())
	if err != nil {
		return nil, nil, err
	}
	synthY, err := frame.New(newY, Y.Columns())
	if err != nil {
		return nil, nil, err
	}

	if Xout, err = frame.Concat(X, synthX); err != nil {
		return nil, nil, err
	}
	if Yout, err = frame.Concat(Y, synthY); err != nil {
		return nil, nil, err
	}
	return Xout, Yout, nil
}
