// Package model defines the interfaces shared by the estimators and
// resamplers of this module.
package model

import (
	"github.com/YuminosukeSato/mlsmote/core/frame"
	"gonum.org/v1/gonum/mat"
)

// Resampler は特徴量行列とラベル行列を受け取り、拡張したペアを返すインターフェース
// imbalanced-learnの `fit_resample` に相当する
type Resampler interface {
	// FitResample returns a new (features, labels) pair. Inputs are not modified.
	FitResample(X, Y *frame.Frame) (*frame.Frame, *frame.Frame, error)
}

// Fitter は教師なしで学習可能なモデルのインターフェース
type Fitter interface {
	// Fit はモデルを訓練データで学習させる
	Fit(X mat.Matrix) error
}

// ParameterGetter is the interface for models that expose their parameters.
type ParameterGetter interface {
	// GetParams returns the model's hyperparameters.
	GetParams() map[string]interface{}
}
