// Package preprocessing turns raw class vectors into the binary label
// matrices consumed by the oversamplers.
package preprocessing

import (
	"fmt"
	"sort"

	"github.com/YuminosukeSato/mlsmote/core/frame"
	"github.com/YuminosukeSato/mlsmote/core/model"
	"github.com/YuminosukeSato/mlsmote/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// DefaultPrefix is the column prefix used by NewLabelBinarizerDefault.
const DefaultPrefix = "class"

// LabelBinarizer はクラスラベルのベクトルを one-hot のラベル行列に変換する
// 列名は "<prefix>_<class>" の形式になる
type LabelBinarizer struct {
	model.BaseEstimator

	// Prefix は列名の接頭辞
	Prefix string

	// Classes は学習時に観測されたクラス（昇順）
	Classes []int

	index map[int]int
}

// NewLabelBinarizer は新しいLabelBinarizerを作成する
//
// 使用例:
//
//	lb := preprocessing.NewLabelBinarizer("class")
//	Y, err := lb.FitTransform(y)
func NewLabelBinarizer(prefix string) *LabelBinarizer {
	return &LabelBinarizer{Prefix: prefix}
}

// NewLabelBinarizerDefault は接頭辞 "class" でLabelBinarizerを作成する
func NewLabelBinarizerDefault() *LabelBinarizer {
	return NewLabelBinarizer(DefaultPrefix)
}

// Fit は観測されたクラスを昇順で記録する
func (lb *LabelBinarizer) Fit(y []int) error {
	if len(y) == 0 {
		return errors.NewModelError("LabelBinarizer.Fit", "empty data", errors.ErrEmptyData)
	}

	seen := make(map[int]struct{})
	for _, c := range y {
		seen[c] = struct{}{}
	}
	classes := make([]int, 0, len(seen))
	for c := range seen {
		classes = append(classes, c)
	}
	sort.Ints(classes)

	lb.Classes = classes
	lb.index = make(map[int]int, len(classes))
	for j, c := range classes {
		lb.index[c] = j
	}
	lb.SetFitted()
	return nil
}

// Transform は各要素を one-hot 行に変換する。未知のクラスはエラー
func (lb *LabelBinarizer) Transform(y []int) (*frame.Frame, error) {
	if !lb.IsFitted() {
		return nil, errors.NewNotFittedError("LabelBinarizer", "Transform")
	}
	if len(y) == 0 {
		return frame.Empty(lb.ColumnNames()), nil
	}

	out := mat.NewDense(len(y), len(lb.Classes), nil)
	for i, c := range y {
		j, ok := lb.index[c]
		if !ok {
			return nil, errors.NewValueError("LabelBinarizer.Transform",
				fmt.Sprintf("unknown class %d at row %d", c, i))
		}
		out.Set(i, j, 1)
	}
	return frame.New(out, lb.ColumnNames())
}

// FitTransform はFitとTransformを続けて実行する
func (lb *LabelBinarizer) FitTransform(y []int) (*frame.Frame, error) {
	if err := lb.Fit(y); err != nil {
		return nil, err
	}
	return lb.Transform(y)
}

// InverseTransform は one-hot 行をクラスに戻す。各行はちょうど1つの1を持つ必要がある
func (lb *LabelBinarizer) InverseTransform(Y *frame.Frame) ([]int, error) {
	if !lb.IsFitted() {
		return nil, errors.NewNotFittedError("LabelBinarizer", "InverseTransform")
	}

	r, c := Y.Dims()
	if c != len(lb.Classes) {
		return nil, errors.NewDimensionError("LabelBinarizer.InverseTransform", len(lb.Classes), c, 1)
	}

	y := make([]int, r)
	for i := 0; i < r; i++ {
		hot := -1
		for j := 0; j < c; j++ {
			if Y.At(i, j) != 1 {
				continue
			}
			if hot >= 0 {
				return nil, errors.NewValueError("LabelBinarizer.InverseTransform",
					fmt.Sprintf("row %d has more than one active class", i))
			}
			hot = j
		}
		if hot < 0 {
			return nil, errors.NewValueError("LabelBinarizer.InverseTransform",
				fmt.Sprintf("row %d has no active class", i))
		}
		y[i] = lb.Classes[hot]
	}
	return y, nil
}

// ColumnNames は出力列の名前を返す
func (lb *LabelBinarizer) ColumnNames() []string {
	names := make([]string, len(lb.Classes))
	for j, c := range lb.Classes {
		names[j] = fmt.Sprintf("%s_%d", lb.Prefix, c)
	}
	return names
}

// GetParams はパラメータを取得する
func (lb *LabelBinarizer) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"prefix": lb.Prefix,
	}
}

// String は文字列表現を返す
func (lb *LabelBinarizer) String() string {
	if !lb.IsFitted() {
		return fmt.Sprintf("LabelBinarizer(prefix=%q)", lb.Prefix)
	}
	return fmt.Sprintf("LabelBinarizer(prefix=%q, n_classes=%d)", lb.Prefix, len(lb.Classes))
}
