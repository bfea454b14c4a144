package sparse

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// ErrDimensionMismatch is returned when operand shapes are incompatible.
var ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

// MulVec stores m·x in dst. len(x) must be cols and len(dst) rows.
func (m *CSR) MulVec(dst, x []float64) {
	if len(x) != m.cols || len(dst) != m.rows {
		panic(mat.ErrShape)
	}
	for i := 0; i < m.rows; i++ {
		var s float64
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			s += m.data[k] * x[m.ind[k]]
		}
		dst[i] = s
	}
}

// MulVecTrans stores mᵗ·x (equivalently the row vector x·m) in dst.
// len(x) must be rows and len(dst) cols.
func (m *CSR) MulVecTrans(dst, x []float64) {
	if len(x) != m.rows || len(dst) != m.cols {
		panic(mat.ErrShape)
	}
	for j := range dst {
		dst[j] = 0
	}
	for i := 0; i < m.rows; i++ {
		xi := x[i]
		if xi == 0 {
			continue
		}
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			dst[m.ind[k]] += m.data[k] * xi
		}
	}
}

// ScaleRows returns diag(s)·m.
func (m *CSR) ScaleRows(s []float64) *CSR {
	if len(s) != m.rows {
		panic(mat.ErrShape)
	}
	out := m.clone()
	for i := 0; i < out.rows; i++ {
		for k := out.indptr[i]; k < out.indptr[i+1]; k++ {
			out.data[k] *= s[i]
		}
	}
	return out
}

// ScaleCols returns m·diag(s).
func (m *CSR) ScaleCols(s []float64) *CSR {
	if len(s) != m.cols {
		panic(mat.ErrShape)
	}
	out := m.clone()
	for k, j := range out.ind {
		out.data[k] *= s[j]
	}
	return out
}

// Mul returns the sparse product m·b.
func (m *CSR) Mul(b *CSR) (*CSR, error) {
	if m.cols != b.rows {
		return nil, fmt.Errorf("%dx%d · %dx%d: %w", m.rows, m.cols, b.rows, b.cols, ErrDimensionMismatch)
	}
	out := &CSR{rows: m.rows, cols: b.cols, indptr: make([]int, m.rows+1)}

	// Row-by-row accumulation into a dense scratch row.
	acc := make([]float64, b.cols)
	seen := make([]bool, b.cols)
	var touched []int
	for i := 0; i < m.rows; i++ {
		touched = touched[:0]
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			a, l := m.data[k], m.ind[k]
			for kb := b.indptr[l]; kb < b.indptr[l+1]; kb++ {
				j := b.ind[kb]
				if !seen[j] {
					seen[j] = true
					touched = append(touched, j)
				}
				acc[j] += a * b.data[kb]
			}
		}
		sort.Ints(touched)
		for _, j := range touched {
			out.ind = append(out.ind, j)
			out.data = append(out.data, acc[j])
			acc[j] = 0
			seen[j] = false
		}
		out.indptr[i+1] = len(out.ind)
	}
	return out, nil
}

// ZeroDiag sets every stored diagonal entry to zero in place.
// The entries stay stored until EliminateZeros.
func (m *CSR) ZeroDiag() {
	n := m.rows
	if m.cols < n {
		n = m.cols
	}
	for i := 0; i < n; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			if m.ind[k] == i {
				m.data[k] = 0
			}
		}
	}
}

// EliminateZeros drops explicitly stored zeros in place.
func (m *CSR) EliminateZeros() {
	w := 0
	start := 0
	for i := 0; i < m.rows; i++ {
		end := m.indptr[i+1]
		for k := start; k < end; k++ {
			if m.data[k] == 0 {
				continue
			}
			m.ind[w] = m.ind[k]
			m.data[w] = m.data[k]
			w++
		}
		start = end
		m.indptr[i+1] = w
	}
	m.ind = m.ind[:w]
	m.data = m.data[:w]
}
