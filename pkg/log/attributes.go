// Standard attribute keys for resampling logs. Keys are dotted so log
// pipelines can group them ("data.*", "imbalance.*", "resample.*").

package log

// Operation context
const (
	// ComponentKey identifies the package emitting the record.
	ComponentKey = "component"

	// OperationKey names the operation, e.g. OperationFitResample.
	OperationKey = "ml.operation"

	// ModelNameKey identifies the resampler type.
	// Examples: "MLSMOTE", "IterativeMLSMOTE", "NearestNeighbors"
	ModelNameKey = "model.name"
)

// Data shape
const (
	// SamplesKey is the number of rows in the dataset being processed.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of feature columns.
	FeaturesKey = "data.features"

	// LabelsKey is the number of label columns.
	LabelsKey = "data.labels"

	// MinoritySamplesKey is the number of rows in the minority subset.
	MinoritySamplesKey = "data.minority_samples"
)

// Imbalance measurements
const (
	// MeanIRKey is the mean imbalance ratio of a label matrix.
	MeanIRKey = "imbalance.mean_ir"

	// PreviousMeanIRKey is the mean imbalance ratio of the last accepted iteration.
	PreviousMeanIRKey = "imbalance.previous_mean_ir"

	// TailLabelsKey lists the tail label column names.
	TailLabelsKey = "imbalance.tail_labels"

	// ThresholdKey is the target mean imbalance ratio of the iterative loop.
	ThresholdKey = "imbalance.threshold"
)

// Resampling progress
const (
	// IterationKey is the iteration number of the iterative controller.
	IterationKey = "resample.iteration"

	// SyntheticSamplesKey is the number of synthesized rows.
	SyntheticSamplesKey = "resample.synthetic"

	// CopyOnlyKey reports whether the minority subset is duplicated instead of synthesized.
	CopyOnlyKey = "resample.copy_only"

	// RandomSeedKey records the seed used for the random generator.
	RandomSeedKey = "config.random_seed"
)

// Error context
const (
	// ErrorCodeKey provides a structured error code.
	ErrorCodeKey = "error.code"
)

// Attribute values
const (
	OperationFitResample = "fit_resample"
	OperationAugment     = "augment"
	OperationKNeighbors  = "kneighbors"
	OperationGenerate    = "generate"

	ErrorDimensionMismatch   = "DIMENSION_MISMATCH"
	ErrorInsufficientSamples = "INSUFFICIENT_SAMPLES"
	ErrorEmptyData           = "EMPTY_DATA"
	ErrorInvalidInput        = "INVALID_INPUT"
	ErrorConvergence         = "CONVERGENCE_FAILURE"
)
