// Package sparse stores non-negative adjacency matrices in compressed
// sparse row form and provides the handful of operations the rankers need.
// CSR implements gonum's mat.Matrix, so any matrix can be handed to
// mat.DenseCopyOf or mat.Formatted for inspection.
package sparse

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// CSR is a compressed sparse row matrix.
// Columns inside a row are sorted and unique.
type CSR struct {
	rows, cols int
	indptr     []int // row i spans ind[indptr[i]:indptr[i+1]]
	ind        []int
	data       []float64
}

var _ mat.Matrix = (*CSR)(nil)

// Empty returns a rows×cols matrix with no stored entries.
func Empty(rows, cols int) *CSR {
	if rows < 0 || cols < 0 {
		panic(mat.ErrShape)
	}
	return &CSR{rows: rows, cols: cols, indptr: make([]int, rows+1)}
}

func (m *CSR) Dims() (r, c int) { return m.rows, m.cols }

// NNZ is the number of stored entries, explicit zeros included.
func (m *CSR) NNZ() int { return len(m.data) }

func (m *CSR) At(i, j int) float64 {
	if i < 0 || i >= m.rows {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || j >= m.cols {
		panic(mat.ErrColAccess)
	}
	lo, hi := m.indptr[i], m.indptr[i+1]
	k := lo + sort.SearchInts(m.ind[lo:hi], j)
	if k < hi && m.ind[k] == j {
		return m.data[k]
	}
	return 0
}

// T returns the implicit transpose, as gonum matrices do.
// Use Transpose for a materialised CSR.
func (m *CSR) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// DoNonZero calls fn for every stored entry in row-major order.
func (m *CSR) DoNonZero(fn func(i, j int, v float64)) {
	for i := 0; i < m.rows; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			fn(i, m.ind[k], m.data[k])
		}
	}
}

// RowNNZ is the number of stored entries in row i.
func (m *CSR) RowNNZ(i int) int { return m.indptr[i+1] - m.indptr[i] }

// RowSums returns K[i] = sum_j m[i,j].
func (m *CSR) RowSums() []float64 {
	sums := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			sums[i] += m.data[k]
		}
	}
	return sums
}

// ColSums returns K[j] = sum_i m[i,j].
func (m *CSR) ColSums() []float64 {
	sums := make([]float64, m.cols)
	for k, j := range m.ind {
		sums[j] += m.data[k]
	}
	return sums
}

// Transpose returns mᵗ as a new CSR.
func (m *CSR) Transpose() *CSR {
	t := &CSR{
		rows:   m.cols,
		cols:   m.rows,
		indptr: make([]int, m.cols+1),
		ind:    make([]int, len(m.ind)),
		data:   make([]float64, len(m.data)),
	}
	for _, j := range m.ind {
		t.indptr[j+1]++
	}
	for j := 0; j < m.cols; j++ {
		t.indptr[j+1] += t.indptr[j]
	}
	next := make([]int, m.cols)
	copy(next, t.indptr[:m.cols])
	// Rows are walked in order, so the columns of t come out sorted.
	for i := 0; i < m.rows; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			j := m.ind[k]
			t.ind[next[j]] = i
			t.data[next[j]] = m.data[k]
			next[j]++
		}
	}
	return t
}

func (m *CSR) clone() *CSR {
	return &CSR{
		rows:   m.rows,
		cols:   m.cols,
		indptr: append([]int(nil), m.indptr...),
		ind:    append([]int(nil), m.ind...),
		data:   append([]float64(nil), m.data...),
	}
}
