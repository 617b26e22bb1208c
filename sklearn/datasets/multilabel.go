package datasets

import (
	"github.com/YuminosukeSato/mlsmote/core/frame"
	"github.com/YuminosukeSato/mlsmote/preprocessing"
)

// DemoWeights is the class profile of the demonstration dataset. The
// weights sum above 1, so the last class absorbs whatever rows remain.
var DemoWeights = []float64{0.1, 0.025, 0.205, 0.008, 0.9}

// MakeMultilabelDemo builds the imbalanced demonstration dataset: ten
// continuous features and five one-hot label columns class_0..class_4.
// With 1000 samples the classes hold 100, 25, 205, 8 and 662 rows.
func MakeMultilabelDemo(nSamples int, seed int64) (*frame.Frame, *frame.Frame, error) {
	X, y, err := MakeClassification(
		WithNSamples(nSamples),
		WithNClasses(5),
		WithClassSep(2),
		WithWeights(DemoWeights),
		WithNInformative(3),
		WithNRedundant(1),
		WithNFeatures(10),
		WithNClustersPerClass(1),
		WithRandomState(seed),
	)
	if err != nil {
		return nil, nil, err
	}

	features, err := frame.New(X, nil)
	if err != nil {
		return nil, nil, err
	}
	labels, err := preprocessing.NewLabelBinarizerDefault().FitTransform(y)
	if err != nil {
		return nil, nil, err
	}
	return features, labels, nil
}
