package sparse

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// COO collects (row, col, value) triplets before compression.
// Repeated coordinates are summed by ToCSR, never overwritten.
type COO struct {
	rows, cols int
	ri, ci     []int
	data       []float64
}

func NewCOO(rows, cols int) *COO {
	if rows < 0 || cols < 0 {
		panic(mat.ErrShape)
	}
	return &COO{rows: rows, cols: cols}
}

func (c *COO) Dims() (r, cols int) { return c.rows, c.cols }

// Add records v at (i, j).
func (c *COO) Add(i, j int, v float64) {
	if i < 0 || i >= c.rows {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || j >= c.cols {
		panic(mat.ErrColAccess)
	}
	c.ri = append(c.ri, i)
	c.ci = append(c.ci, j)
	c.data = append(c.data, v)
}

// ToCSR compresses the triplets, summing duplicates.
func (c *COO) ToCSR() *CSR {
	m := &CSR{rows: c.rows, cols: c.cols, indptr: make([]int, c.rows+1)}

	// Bucket triplets by row.
	for _, i := range c.ri {
		m.indptr[i+1]++
	}
	for i := 0; i < c.rows; i++ {
		m.indptr[i+1] += m.indptr[i]
	}
	ind := make([]int, len(c.ci))
	data := make([]float64, len(c.data))
	next := make([]int, c.rows)
	copy(next, m.indptr[:c.rows])
	for k, i := range c.ri {
		ind[next[i]] = c.ci[k]
		data[next[i]] = c.data[k]
		next[i]++
	}

	// Sort each row by column and merge repeated columns.
	m.ind = make([]int, 0, len(ind))
	m.data = make([]float64, 0, len(data))
	start := 0
	for i := 0; i < c.rows; i++ {
		lo, hi := m.indptr[i], m.indptr[i+1]
		sort.Sort(rowEntries{ind: ind[lo:hi], data: data[lo:hi]})
		for k := lo; k < hi; k++ {
			if n := len(m.ind); n > start && m.ind[n-1] == ind[k] {
				m.data[n-1] += data[k]
				continue
			}
			m.ind = append(m.ind, ind[k])
			m.data = append(m.data, data[k])
		}
		m.indptr[i] = start
		start = len(m.ind)
	}
	m.indptr[c.rows] = start
	return m
}

type rowEntries struct {
	ind  []int
	data []float64
}

func (r rowEntries) Len() int           { return len(r.ind) }
func (r rowEntries) Less(a, b int) bool { return r.ind[a] < r.ind[b] }
func (r rowEntries) Swap(a, b int) {
	r.ind[a], r.ind[b] = r.ind[b], r.ind[a]
	r.data[a], r.data[b] = r.data[b], r.data[a]
}
