// Package mlsmote oversamples imbalanced multi-label datasets with MLSMOTE
// (Multi-Label Synthetic Minority Over-sampling Technique).
//
// Given a feature matrix and a binary label matrix, MLSMOTE measures how
// scarce every label is, selects the samples carrying the scarcest (tail)
// labels and synthesizes new samples from them and their nearest neighbors.
//
// # Installation
//
//	go get github.com/YuminosukeSato/mlsmote
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/mlsmote/imblearn/oversampling"
//	    "github.com/YuminosukeSato/mlsmote/sklearn/datasets"
//	)
//
//	func main() {
//	    X, Y, err := datasets.MakeMultilabelDemo(1000, 10)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    sm := oversampling.NewMLSMOTE(oversampling.WithNSample(100))
//	    Xres, Yres, err := sm.FitResample(X, Y)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(Xres.Rows(), Yres.Rows())
//	}
//
// # Packages
//
//   - imblearn/oversampling: MLSMOTE, IterativeMLSMOTE, Augment, MinorityInstances
//   - metrics: label counts, IRLbl, MeanIR and tail labels
//   - sklearn/neighbors: kd-tree k-nearest-neighbor search
//   - sklearn/datasets: MakeClassification and the demonstration dataset
//   - preprocessing: LabelBinarizer (class vector to one-hot label matrix)
//   - core/frame: Frame, a matrix with named columns
//   - core/model: Resampler and the shared estimator base
//   - pkg/errors, pkg/log: error types, warnings and structured logging
//
// # Reproducibility
//
// MLSMOTE draws from a time-seeded generator unless WithRandomState or
// WithRand is given. IterativeMLSMOTE seeds a fresh generator with 42 on
// every FitResample call, so repeated calls return identical results.
//
// # License
//
// Released under the MIT License.
package mlsmote
