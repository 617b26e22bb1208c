package oversampling

import (
	"math"
	"math/rand"

	"github.com/YuminosukeSato/mlsmote/core/frame"
	"github.com/YuminosukeSato/mlsmote/core/model"
	"github.com/YuminosukeSato/mlsmote/metrics"
	"github.com/YuminosukeSato/mlsmote/pkg/errors"
	"github.com/YuminosukeSato/mlsmote/pkg/log"
)

const (
	// DefaultIterRandomState seeds IterativeMLSMOTE unless overridden.
	DefaultIterRandomState = 42

	// DefaultMaxIter caps the accepted iterations of IterativeMLSMOTE.
	DefaultMaxIter = 100
)

// IterativeMLSMOTE は平均不均衡率 (MeanIR) が条件を満たす間、合成を繰り返す
//
// 各反復では蓄積済みデータの少数派サブセットから合成（またはコピー）し、
// 元データに連結した候補の MeanIR を計算する。
//   - 閾値なし: 候補の MeanIR が直前より下がる間は続ける
//   - 閾値あり: 候補の MeanIR が閾値を上回る間は続ける
//
// 条件を満たさなかった候補は捨て、直前に受理したデータを返す。
type IterativeMLSMOTE struct {
	threshold    float64
	hasThreshold bool
	copyOnly     bool
	randomState  int64
	maxIter      int
	rule         metrics.MinorityRule

	rng    *rand.Rand
	logger log.Logger
}

var (
	_ model.Resampler       = (*IterativeMLSMOTE)(nil)
	_ model.ParameterGetter = (*IterativeMLSMOTE)(nil)
)

// IterOption はIterativeMLSMOTEの設定オプション
type IterOption func(*IterativeMLSMOTE)

// NewIterativeMLSMOTE は新しいIterativeMLSMOTEを作成する
//
// デフォルト: 閾値なし, copyOnly = false, randomState = 42, maxIter = 100
func NewIterativeMLSMOTE(options ...IterOption) *IterativeMLSMOTE {
	it := &IterativeMLSMOTE{
		randomState: DefaultIterRandomState,
		maxIter:     DefaultMaxIter,
		rule:        metrics.RuleBothClasses,
	}
	for _, opt := range options {
		opt(it)
	}
	if it.logger == nil {
		it.logger = log.GetLoggerWithName("IterativeMLSMOTE")
	}
	return it
}

// WithIterThreshold は目標とする MeanIR を設定
func WithIterThreshold(threshold float64) IterOption {
	return func(it *IterativeMLSMOTE) {
		it.threshold = threshold
		it.hasThreshold = true
	}
}

// WithCopyOnly は合成せずに少数派サブセットを複製するモードを設定
func WithCopyOnly(copyOnly bool) IterOption {
	return func(it *IterativeMLSMOTE) {
		it.copyOnly = copyOnly
	}
}

// WithIterRandomState は乱数シードを設定。負の値は時刻から初期化
func WithIterRandomState(seed int64) IterOption {
	return func(it *IterativeMLSMOTE) {
		it.randomState = seed
	}
}

// WithIterRand は外部の乱数生成器を使う。設定した場合 randomState は無視される
func WithIterRand(rng *rand.Rand) IterOption {
	return func(it *IterativeMLSMOTE) {
		it.rng = rng
	}
}

// WithMaxIter は受理する反復回数の上限を設定。0以下で上限なし
func WithMaxIter(maxIter int) IterOption {
	return func(it *IterativeMLSMOTE) {
		it.maxIter = maxIter
	}
}

// WithIterMinorityRule は少数クラス件数の数え方を設定
func WithIterMinorityRule(rule metrics.MinorityRule) IterOption {
	return func(it *IterativeMLSMOTE) {
		it.rule = rule
	}
}

// WithIterLogger はロガーを設定
func WithIterLogger(logger log.Logger) IterOption {
	return func(it *IterativeMLSMOTE) {
		it.logger = logger
	}
}

// newRand returns the injected generator, or a fresh one seeded from
// randomState so every FitResample call replays the same stream.
func (it *IterativeMLSMOTE) newRand() *rand.Rand {
	if it.rng != nil {
		return it.rng
	}
	return rand.New(rand.NewSource(seedOrNow(it.randomState)))
}

// FitResample は停止条件を満たすまで合成を繰り返し、最後に受理したデータを返す
//
// 1回目の候補から条件を満たさない場合は入力のコピーを返す。
// maxIter 回受理しても止まらない場合は ConvergenceWarning を出す。
func (it *IterativeMLSMOTE) FitResample(X, Y *frame.Frame) (Xres, Yres *frame.Frame, err error) {
	defer errors.Recover(&err, "IterativeMLSMOTE.FitResample")

	if err := checkAligned("IterativeMLSMOTE.FitResample", X, Y); err != nil {
		return nil, nil, err
	}
	rng := it.newRand()

	last, err := metrics.MeanImbalanceRatio(Y, it.rule)
	if err != nil {
		return nil, nil, err
	}
	logger := it.logger.With(
		log.OperationKey, log.OperationFitResample,
		log.CopyOnlyKey, it.copyOnly,
	)
	if it.hasThreshold {
		logger = logger.With(log.ThresholdKey, it.threshold)
	}
	logger.Info("initial mean imbalance ratio",
		log.MeanIRKey, last,
		log.SamplesKey, X.Rows(),
		log.RandomSeedKey, it.randomState,
	)

	Xi, Yi := X, Y
	for iter := 1; ; iter++ {
		if it.maxIter > 0 && iter > it.maxIter {
			errors.Warn(errors.NewConvergenceWarning("IterativeMLSMOTE", it.maxIter,
				"mean imbalance ratio still satisfies the continue condition"))
			break
		}

		Xsub, Ysub, err := MinorityInstances(Xi, Yi, it.rule)
		if err != nil {
			return nil, nil, err
		}
		if skip := skipReason(Xsub.Rows(), !it.copyOnly); skip != "" {
			errors.Warn(errors.NewNoTailLabelsWarning("IterativeMLSMOTE.FitResample", Xsub.Rows(), skip))
			break
		}

		Xadd, Yadd := Xsub, Ysub
		if !it.copyOnly {
			if Xadd, Yadd, err = Augment(Xsub, Ysub, -1, rng); err != nil {
				return nil, nil, err
			}
		}

		Xcur, err := frame.Concat(X, Xadd)
		if err != nil {
			return nil, nil, err
		}
		Ycur, err := frame.Concat(Y, Yadd)
		if err != nil {
			return nil, nil, err
		}
		cur, err := metrics.MeanImbalanceRatio(Ycur, it.rule)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("current mean imbalance ratio",
			log.IterationKey, iter,
			log.MeanIRKey, cur,
			log.PreviousMeanIRKey, last,
			log.SamplesKey, Xcur.Rows(),
			log.MinoritySamplesKey, Xsub.Rows(),
		)

		if !it.shouldContinue(cur, last) {
			break
		}
		Xi, Yi = Xcur, Ycur
		last = cur
	}

	logger.Info("final mean imbalance ratio",
		log.MeanIRKey, last,
		log.SamplesKey, Xi.Rows(),
	)
	if Xi == X {
		return X.Clone(), Y.Clone(), nil
	}
	return Xi, Yi, nil
}

// shouldContinue reports whether a candidate with MeanIR cur is accepted.
func (it *IterativeMLSMOTE) shouldContinue(cur, last float64) bool {
	if it.hasThreshold {
		return cur > it.threshold
	}
	return cur < last
}

// GetParams はハイパーパラメータを取得する
func (it *IterativeMLSMOTE) GetParams() map[string]interface{} {
	threshold := math.NaN()
	if it.hasThreshold {
		threshold = it.threshold
	}
	return map[string]interface{}{
		"threshold":     threshold,
		"cp":            it.copyOnly,
		"random_state":  it.randomState,
		"max_iter":      it.maxIter,
		"minority_rule": it.rule.String(),
	}
}
