package rank

import (
	"fmt"

	"github.com/lioia/birank/pkg/sparse"
	"gonum.org/v1/gonum/floats"
)

// PageRank computes the PageRank of a unipartite graph by power iteration.
//
// x(i+1) = d·(x(i)·M) + (1-d)/n, with M = diag(1/S)·W and S the row sums of W.
// Rows with no out-weight stay zero in M, so their mass is not propagated.
// The result is returned as computed by the last round and is not rescaled
// to sum to one.
func PageRank(w *sparse.CSR, opts Options) ([]float64, error) {
	if err := validateDamping("damping", opts.Damping); err != nil {
		return nil, err
	}
	if err := opts.validateLoop(); err != nil {
		return nil, err
	}
	n, c := w.Dims()
	if n != c {
		return nil, fmt.Errorf("pagerank on %dx%d adjacency: %w", n, c, ErrDimensionMismatch)
	}

	s := w.RowSums()
	for i, v := range s {
		if v != 0 {
			s[i] = 1 / v
		}
	}
	m := w.ScaleRows(s)

	d := opts.Damping
	teleport := uniform(n)
	x := uniform(n)
	next := make([]float64, n)
	iterate("pagerank", opts, func() Iteration {
		m.MulVecTrans(next, x)
		floats.Scale(d, next)
		floats.AddScaled(next, 1-d, teleport)
		err := floats.Distance(next, x, 1)
		x, next = next, x
		return Iteration{Errors: []float64{err}, Vectors: [][]float64{x}}
	})
	return x, nil
}
