package oversampling

import (
	"math/rand"
	"time"

	"github.com/YuminosukeSato/mlsmote/core/frame"
	"github.com/YuminosukeSato/mlsmote/core/model"
	"github.com/YuminosukeSato/mlsmote/metrics"
	"github.com/YuminosukeSato/mlsmote/pkg/errors"
	"github.com/YuminosukeSato/mlsmote/pkg/log"
	"github.com/YuminosukeSato/mlsmote/sklearn/neighbors"
)

// MLSMOTE は1回だけ合成を行うマルチラベルオーバーサンプラー
//
// 少数派サブセットから nSample 件を合成し、元データの後ろに
// 少数派サブセットと合成サンプルを連結して返す。
// 乱数シードを指定しない場合は実行ごとに異なる結果になる。
type MLSMOTE struct {
	nSample     int
	randomState int64
	rule        metrics.MinorityRule

	rng    *rand.Rand
	logger log.Logger
}

var (
	_ model.Resampler       = (*MLSMOTE)(nil)
	_ model.ParameterGetter = (*MLSMOTE)(nil)
)

// Option はMLSMOTEの設定オプション
type Option func(*MLSMOTE)

// NewMLSMOTE は新しいMLSMOTEを作成する
//
// デフォルト: nSample = -1 (ラベル数 × 5), randomState = -1 (時刻から初期化)
func NewMLSMOTE(options ...Option) *MLSMOTE {
	m := &MLSMOTE{
		nSample:     -1,
		randomState: -1,
		rule:        metrics.RuleBothClasses,
	}
	for _, opt := range options {
		opt(m)
	}

	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(seedOrNow(m.randomState)))
	}
	if m.logger == nil {
		m.logger = log.GetLoggerWithName("MLSMOTE")
	}
	return m
}

// WithNSample は合成するサンプル数を設定。負の値はラベル数 × 5
func WithNSample(n int) Option {
	return func(m *MLSMOTE) {
		m.nSample = n
	}
}

// WithRandomState は乱数シードを設定。負の値は時刻から初期化
func WithRandomState(seed int64) Option {
	return func(m *MLSMOTE) {
		m.randomState = seed
		if seed >= 0 {
			m.rng = rand.New(rand.NewSource(seed))
		}
	}
}

// WithRand は外部の乱数生成器を使う
func WithRand(rng *rand.Rand) Option {
	return func(m *MLSMOTE) {
		m.rng = rng
	}
}

// WithMinorityRule は少数クラス件数の数え方を設定
func WithMinorityRule(rule metrics.MinorityRule) Option {
	return func(m *MLSMOTE) {
		m.rule = rule
	}
}

// WithLogger はロガーを設定
func WithLogger(logger log.Logger) Option {
	return func(m *MLSMOTE) {
		m.logger = logger
	}
}

// FitResample は X, Y の後ろに少数派サブセットと合成サンプルを連結して返す
//
// 行数は 元の行数 + 少数派サブセットの行数 + nSample になる。
// 少数派サブセットが空または近傍数に満たない場合は NoTailLabelsWarning を出し、
// 入力のコピーをそのまま返す。
func (m *MLSMOTE) FitResample(X, Y *frame.Frame) (Xres, Yres *frame.Frame, err error) {
	defer errors.Recover(&err, "MLSMOTE.FitResample")

	if err := checkAligned("MLSMOTE.FitResample", X, Y); err != nil {
		return nil, nil, err
	}

	before, err := metrics.Measure(Y, m.rule)
	if err != nil {
		return nil, nil, err
	}
	m.logger.Info("mean imbalance ratio before resampling",
		log.OperationKey, log.OperationFitResample,
		log.MeanIRKey, before.MeanIR,
		log.SamplesKey, X.Rows(),
		log.LabelsKey, len(before.Columns),
		log.TailLabelsKey, before.TailLabelNames(),
	)

	Xsub, Ysub, err := MinorityInstances(X, Y, m.rule)
	if err != nil {
		return nil, nil, err
	}
	if skip := skipReason(Xsub.Rows(), m.nSample != 0); skip != "" {
		errors.Warn(errors.NewNoTailLabelsWarning("MLSMOTE.FitResample", Xsub.Rows(), skip))
		return X.Clone(), Y.Clone(), nil
	}

	Xaug, Yaug, err := Augment(Xsub, Ysub, m.nSample, m.rng)
	if err != nil {
		return nil, nil, err
	}

	if Xres, err = frame.Concat(X, Xaug); err != nil {
		return nil, nil, err
	}
	if Yres, err = frame.Concat(Y, Yaug); err != nil {
		return nil, nil, err
	}

	after, err := metrics.MeanImbalanceRatio(Yres, m.rule)
	if err != nil {
		return nil, nil, err
	}
	m.logger.Info("mean imbalance ratio after resampling",
		log.OperationKey, log.OperationFitResample,
		log.MeanIRKey, after,
		log.SamplesKey, Xres.Rows(),
		log.MinoritySamplesKey, Xsub.Rows(),
		log.SyntheticSamplesKey, Xaug.Rows()-Xsub.Rows(),
	)
	return Xres, Yres, nil
}

// seedOrNow returns seed, or the current time for a negative seed.
func seedOrNow(seed int64) int64 {
	if seed >= 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// skipReason explains why a minority subset of the given size cannot be
// resampled, or returns "" when it can.
func skipReason(rows int, synthesize bool) string {
	switch {
	case rows == 0:
		return "no tail labels"
	case synthesize && rows < neighbors.DefaultNNeighbors:
		return "fewer rows than nearest neighbors"
	}
	return ""
}

// GetParams はハイパーパラメータを取得する
func (m *MLSMOTE) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"n_sample":      m.nSample,
		"random_state":  m.randomState,
		"minority_rule": m.rule.String(),
	}
}
