// Package datasets generates synthetic classification data, following
// scikit-learn's sklearn.datasets.make_classification.
package datasets

import (
	"math/rand"
	"time"

	"github.com/YuminosukeSato/mlsmote/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ClassificationConfig はmake_classificationのパラメータ
type ClassificationConfig struct {
	nSamples          int
	nFeatures         int
	nInformative      int
	nRedundant        int
	nClasses          int
	nClustersPerClass int
	weights           []float64
	classSep          float64
	shuffle           bool
	randomState       int64
	rng               *rand.Rand
}

// ClassificationOption はMakeClassificationの設定オプション
type ClassificationOption func(*ClassificationConfig)

// WithNSamples はサンプル数を設定
func WithNSamples(n int) ClassificationOption {
	return func(c *ClassificationConfig) { c.nSamples = n }
}

// WithNFeatures は特徴量の総数を設定
func WithNFeatures(n int) ClassificationOption {
	return func(c *ClassificationConfig) { c.nFeatures = n }
}

// WithNInformative は情報を持つ特徴量の数を設定
func WithNInformative(n int) ClassificationOption {
	return func(c *ClassificationConfig) { c.nInformative = n }
}

// WithNRedundant は情報特徴量の線形結合で作る冗長特徴量の数を設定
func WithNRedundant(n int) ClassificationOption {
	return func(c *ClassificationConfig) { c.nRedundant = n }
}

// WithNClasses はクラス数を設定
func WithNClasses(n int) ClassificationOption {
	return func(c *ClassificationConfig) { c.nClasses = n }
}

// WithNClustersPerClass はクラスごとのクラスタ数を設定
func WithNClustersPerClass(n int) ClassificationOption {
	return func(c *ClassificationConfig) { c.nClustersPerClass = n }
}

// WithWeights はクラスごとのサンプル比率を設定
// nClasses-1 個だけ渡した場合、最後のクラスは残りの比率になる
func WithWeights(w []float64) ClassificationOption {
	return func(c *ClassificationConfig) { c.weights = append([]float64(nil), w...) }
}

// WithClassSep はハイパーキューブの一辺の半分を設定
func WithClassSep(sep float64) ClassificationOption {
	return func(c *ClassificationConfig) { c.classSep = sep }
}

// WithShuffle はサンプルと特徴量をシャッフルするかを設定
func WithShuffle(shuffle bool) ClassificationOption {
	return func(c *ClassificationConfig) { c.shuffle = shuffle }
}

// WithRandomState は乱数シードを設定
func WithRandomState(seed int64) ClassificationOption {
	return func(c *ClassificationConfig) {
		c.randomState = seed
		if seed >= 0 {
			c.rng = rand.New(rand.NewSource(seed))
		}
	}
}

func defaultClassificationConfig() *ClassificationConfig {
	return &ClassificationConfig{
		nSamples:          100,
		nFeatures:         20,
		nInformative:      2,
		nRedundant:        2,
		nClasses:          2,
		nClustersPerClass: 2,
		classSep:          1.0,
		shuffle:           true,
		randomState:       -1,
	}
}

// MakeClassification はクラスタ構造を持つ分類用データを生成する
//
// 各クラスタの中心はnInformative次元ハイパーキューブの頂点（一辺2*classSep）に置かれ、
// 標準正規分布の点をクラスタごとのランダム行列で変形して配置する。
// 続く列は冗長特徴量、残りはノイズ特徴量。
//
// クラスごとのサンプル数は int(nSamples * weight) を先頭のクラスから順に割り当て、
// 重みの合計が1を超える場合は末尾のクラスがnSamplesで打ち切られる。
//
// 戻り値:
//   - *mat.Dense: 特徴量行列 (nSamples × nFeatures)
//   - []int: クラスラベル
//   - error: パラメータが不正な場合
func MakeClassification(options ...ClassificationOption) (*mat.Dense, []int, error) {
	cfg := defaultClassificationConfig()
	for _, opt := range options {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}

	rng := cfg.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	weights := cfg.classWeights()
	nClusters := cfg.nClasses * cfg.nClustersPerClass
	perCluster := make([]int, nClusters)
	for k := range perCluster {
		perCluster[k] = int(float64(cfg.nSamples) * weights[k%cfg.nClasses] / float64(cfg.nClustersPerClass))
	}
	remainder := cfg.nSamples - sumInts(perCluster)
	for i := 0; i < remainder; i++ {
		perCluster[i%nClusters]++
	}

	nInf := cfg.nInformative
	X := mat.NewDense(cfg.nSamples, cfg.nFeatures, nil)
	y := make([]int, cfg.nSamples)

	centroids := hypercube(nClusters, nInf, rng)
	for _, c := range centroids {
		floats.Scale(2*cfg.classSep, c)
		floats.AddConst(-cfg.classSep, c)
	}

	for i := 0; i < cfg.nSamples; i++ {
		for j := 0; j < nInf; j++ {
			X.Set(i, j, rng.NormFloat64())
		}
	}

	stop := 0
	for k, centroid := range centroids {
		start := stop
		stop = min(stop+perCluster[k], cfg.nSamples)
		for i := start; i < stop; i++ {
			y[i] = k % cfg.nClasses
		}

		A := uniformMatrix(nInf, nInf, rng)
		if stop == start {
			continue
		}
		Xk := X.Slice(start, stop, 0, nInf).(*mat.Dense)
		var moved mat.Dense
		moved.Mul(Xk, A)
		for i := 0; i < stop-start; i++ {
			row := moved.RawRowView(i)
			floats.Add(row, centroid)
			Xk.SetRow(i, row)
		}
	}

	if cfg.nRedundant > 0 {
		B := uniformMatrix(nInf, cfg.nRedundant, rng)
		var red mat.Dense
		red.Mul(X.Slice(0, cfg.nSamples, 0, nInf), B)
		X.Slice(0, cfg.nSamples, nInf, nInf+cfg.nRedundant).(*mat.Dense).Copy(&red)
	}

	for i := 0; i < cfg.nSamples; i++ {
		for j := nInf + cfg.nRedundant; j < cfg.nFeatures; j++ {
			X.Set(i, j, rng.NormFloat64())
		}
	}

	if !cfg.shuffle {
		return X, y, nil
	}

	rowPerm := rng.Perm(cfg.nSamples)
	colPerm := rng.Perm(cfg.nFeatures)
	out := mat.NewDense(cfg.nSamples, cfg.nFeatures, nil)
	outY := make([]int, cfg.nSamples)
	for i, src := range rowPerm {
		outY[i] = y[src]
		for j, srcCol := range colPerm {
			out.Set(i, j, X.At(src, srcCol))
		}
	}
	return out, outY, nil
}

func (c *ClassificationConfig) validate() error {
	switch {
	case c.nSamples < 1:
		return errors.NewValidationError("n_samples", "must be positive", c.nSamples)
	case c.nClasses < 1:
		return errors.NewValidationError("n_classes", "must be positive", c.nClasses)
	case c.nClustersPerClass < 1:
		return errors.NewValidationError("n_clusters_per_class", "must be positive", c.nClustersPerClass)
	case c.nInformative < 1:
		return errors.NewValidationError("n_informative", "must be positive", c.nInformative)
	case c.nRedundant < 0:
		return errors.NewValidationError("n_redundant", "must not be negative", c.nRedundant)
	case c.nInformative+c.nRedundant > c.nFeatures:
		return errors.NewValidationError("n_features",
			"must be at least n_informative + n_redundant", c.nFeatures)
	case c.nInformative < 31 && c.nClasses*c.nClustersPerClass > 1<<c.nInformative:
		return errors.NewValidationError("n_informative",
			"n_classes * n_clusters_per_class must not exceed 2**n_informative", c.nInformative)
	}
	if c.weights != nil && len(c.weights) != c.nClasses && len(c.weights) != c.nClasses-1 {
		return errors.NewValidationError("weights", "must have n_classes or n_classes-1 entries", len(c.weights))
	}
	return nil
}

// classWeights returns one weight per class. Without explicit weights the
// classes are balanced.
func (c *ClassificationConfig) classWeights() []float64 {
	if c.weights == nil {
		w := make([]float64, c.nClasses)
		for i := range w {
			w[i] = 1 / float64(c.nClasses)
		}
		return w
	}
	if len(c.weights) == c.nClasses-1 {
		return append(append([]float64(nil), c.weights...), 1-floats.Sum(c.weights))
	}
	return c.weights
}

// hypercube returns n distinct vertices of the unit hypercube in d dimensions.
func hypercube(n, d int, rng *rand.Rand) [][]float64 {
	out := make([][]float64, n)
	if d >= 31 {
		// too many vertices to enumerate; random vertices collide with
		// negligible probability
		for k := range out {
			out[k] = make([]float64, d)
			for j := range out[k] {
				out[k][j] = float64(rng.Intn(2))
			}
		}
		return out
	}

	vertices := rng.Perm(1 << d)[:n]
	for k, v := range vertices {
		out[k] = make([]float64, d)
		for j := 0; j < d; j++ {
			out[k][j] = float64((v >> j) & 1)
		}
	}
	return out
}

// uniformMatrix returns an r×c matrix with entries drawn from [-1, 1).
func uniformMatrix(r, c int, rng *rand.Rand) *mat.Dense {
	m := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Set(i, j, 2*rng.Float64()-1)
		}
	}
	return m
}

func sumInts(xs []int) int {
	s := 0
	for _, x := range xs {
		s += x
	}
	return s
}
