package rank

import (
	"fmt"

	"github.com/lioia/birank/pkg/sparse"
	"gonum.org/v1/gonum/floats"
)

// BiRank ranks both sides of a bipartite graph given its D×P adjacency
// matrix W (rows are top nodes, columns bottom nodes).
//
// Each round computes
//
//	p = alpha·(Sp·d_last) + (1-alpha)·p0
//	d = beta·(Sd·p_last) + (1-beta)·d0
//
// where (Sp, Sd) depend on opts.Normalizer. Under HITS both vectors are
// rescaled to sum to one after every round. It stops once both L1 changes
// are below opts.Tol, or after opts.MaxIter rounds.
//
// d holds the top (row) scores and p the bottom (column) scores.
func BiRank(w *sparse.CSR, opts Options) (d, p []float64, err error) {
	if !opts.Normalizer.Valid() {
		return nil, nil, fmt.Errorf("%w: unknown normalizer %d", ErrInvalidConfiguration, int(opts.Normalizer))
	}
	if err := validateDamping("alpha", opts.Alpha); err != nil {
		return nil, nil, err
	}
	if err := validateDamping("beta", opts.Beta); err != nil {
		return nil, nil, err
	}
	if err := opts.validateLoop(); err != nil {
		return nil, nil, err
	}

	kd := w.RowSums()
	kp := w.ColSums()
	// isolated nodes get a unit degree instead of a division by zero
	for i := range kd {
		if kd[i] == 0 {
			kd[i] = 1
		}
	}
	for j := range kp {
		if kp[j] == 0 {
			kp[j] = 1
		}
	}
	sp, sd, err := opts.Normalizer.propagation(w, kd, kp)
	if err != nil {
		return nil, nil, err
	}

	alpha, beta := opts.Alpha, opts.Beta
	d0 := uniform(len(kd))
	p0 := uniform(len(kp))
	dLast := append([]float64(nil), d0...)
	pLast := append([]float64(nil), p0...)
	d = make([]float64, len(kd))
	p = make([]float64, len(kp))
	iterate("birank", opts, func() Iteration {
		sp.MulVec(p, dLast)
		floats.Scale(alpha, p)
		floats.AddScaled(p, 1-alpha, p0)

		sd.MulVec(d, pLast)
		floats.Scale(beta, d)
		floats.AddScaled(d, 1-beta, d0)

		if opts.Normalizer == HITS {
			normalize(p)
			normalize(d)
		}

		errP := floats.Distance(p, pLast, 1)
		errD := floats.Distance(d, dLast, 1)
		// the newest vectors always end up in dLast and pLast
		dLast, d = d, dLast
		pLast, p = p, pLast
		return Iteration{Errors: []float64{errD, errP}, Vectors: [][]float64{dLast, pLast}}
	})
	return dLast, pLast, nil
}

func normalize(v []float64) {
	if s := floats.Sum(v); s != 0 {
		floats.Scale(1/s, v)
	}
}
