// Package frame provides Frame, a row-ordered matrix with named columns.
//
// Feature and label matrices travel through the resampling pipeline as
// Frames so that column identity survives subsetting and concatenation.
// A Frame may have zero rows (an empty minority subset), which a bare
// gonum Dense cannot represent.
package frame

import (
	"fmt"
	"strconv"

	"github.com/YuminosukeSato/mlsmote/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Frame is an immutable view over a dense matrix with named columns.
// Every operation returns a newly allocated Frame.
type Frame struct {
	columns []string
	m       *mat.Dense // nil when the frame has no rows
}

// New copies m into a Frame. With nil columns the names default to the
// column positions ("0", "1", ...).
func New(m mat.Matrix, columns []string) (*Frame, error) {
	r, c := m.Dims()
	if columns == nil {
		columns = DefaultColumns(c)
	}
	if len(columns) != c {
		return nil, errors.NewDimensionError("frame.New", c, len(columns), 1)
	}

	f := &Frame{columns: append([]string(nil), columns...)}
	if r > 0 && c > 0 {
		f.m = mat.DenseCopyOf(m)
	}
	return f, nil
}

// FromRows builds a Frame from row slices.
func FromRows(rows [][]float64, columns []string) (*Frame, error) {
	if len(rows) == 0 {
		return Empty(columns), nil
	}
	c := len(rows[0])
	data := make([]float64, 0, len(rows)*c)
	for _, row := range rows {
		if len(row) != c {
			return nil, errors.NewDimensionError("frame.FromRows", c, len(row), 1)
		}
		data = append(data, row...)
	}
	return New(mat.NewDense(len(rows), c, data), columns)
}

// Empty returns a Frame with the given columns and no rows.
func Empty(columns []string) *Frame {
	return &Frame{columns: append([]string(nil), columns...)}
}

// DefaultColumns returns positional names "0".."n-1".
func DefaultColumns(n int) []string {
	cols := make([]string, n)
	for j := range cols {
		cols[j] = strconv.Itoa(j)
	}
	return cols
}

// Dims returns the number of rows and columns.
func (f *Frame) Dims() (int, int) {
	if f.m == nil {
		return 0, len(f.columns)
	}
	return f.m.Dims()
}

// Rows returns the number of rows.
func (f *Frame) Rows() int {
	r, _ := f.Dims()
	return r
}

// Columns returns a copy of the column names.
func (f *Frame) Columns() []string {
	return append([]string(nil), f.columns...)
}

// IsEmpty reports whether the frame has no rows.
func (f *Frame) IsEmpty() bool {
	return f.m == nil
}

// Matrix returns the underlying data as a read-only mat.Matrix,
// or nil for an empty frame.
func (f *Frame) Matrix() mat.Matrix {
	if f.m == nil {
		return nil
	}
	return f.m
}

// At returns the value at row i, column j.
func (f *Frame) At(i, j int) float64 {
	return f.m.At(i, j)
}

// Row returns a copy of row i.
func (f *Frame) Row(i int) []float64 {
	return mat.Row(nil, i, f.m)
}

// Col returns a copy of column j.
func (f *Frame) Col(j int) []float64 {
	if f.m == nil {
		return nil
	}
	return mat.Col(nil, j, f.m)
}

// Take returns the rows at indices, in the given order, re-indexed from 0.
func (f *Frame) Take(indices []int) (*Frame, error) {
	r, c := f.Dims()
	if len(indices) == 0 {
		return Empty(f.columns), nil
	}

	out := mat.NewDense(len(indices), c, nil)
	for i, idx := range indices {
		if idx < 0 || idx >= r {
			return nil, errors.NewValueError("frame.Take",
				fmt.Sprintf("row index %d out of range [0, %d)", idx, r))
		}
		out.SetRow(i, f.m.RawRowView(idx))
	}
	return &Frame{columns: f.Columns(), m: out}, nil
}

// Concat stacks frames vertically. All frames must share the same column
// names in the same order; the result keeps them.
func Concat(frames ...*Frame) (*Frame, error) {
	if len(frames) == 0 {
		return nil, errors.NewValueError("frame.Concat", "no frames to concatenate")
	}

	columns := frames[0].columns
	var acc *mat.Dense
	for _, f := range frames {
		if err := sameColumns(columns, f.columns); err != nil {
			return nil, err
		}
		if f.m == nil {
			continue
		}
		if acc == nil {
			acc = mat.DenseCopyOf(f.m)
			continue
		}
		var stacked mat.Dense
		stacked.Stack(acc, f.m)
		acc = &stacked
	}
	return &Frame{columns: append([]string(nil), columns...), m: acc}, nil
}

// Clone returns a deep copy.
func (f *Frame) Clone() *Frame {
	out := &Frame{columns: f.Columns()}
	if f.m != nil {
		out.m = mat.DenseCopyOf(f.m)
	}
	return out
}

// Equal reports whether two frames have identical columns and values.
func (f *Frame) Equal(other *Frame) bool {
	if sameColumns(f.columns, other.columns) != nil {
		return false
	}
	if f.m == nil || other.m == nil {
		return f.m == nil && other.m == nil
	}
	return mat.Equal(f.m, other.m)
}

func sameColumns(want, got []string) error {
	if len(want) != len(got) {
		return errors.NewDimensionError("frame.Concat", len(want), len(got), 1)
	}
	for j := range want {
		if want[j] != got[j] {
			return errors.NewValueError("frame.Concat",
				fmt.Sprintf("column %d is named %q, expected %q", j, got[j], want[j]))
		}
	}
	return nil
}
