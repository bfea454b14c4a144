package rank

import (
	"log"
)

// iterate runs step until every error it reports is below opts.Tol or
// opts.MaxIter rounds have been spent. It returns the number of rounds run.
// Running out of rounds is not an error: the caller keeps its last vectors.
func iterate(name string, opts Options, step func() Iteration) int {
	for round := 1; round <= opts.MaxIter; round++ {
		it := step()
		it.Round = round
		if opts.Verbose {
			log.Printf("INFO Compute %s: round %d errors %v", name, round, it.Errors)
		}
		if opts.OnIteration != nil {
			opts.OnIteration(it)
		}
		if converged(it.Errors, opts.Tol) {
			return round
		}
	}
	return opts.MaxIter
}

func converged(errs []float64, tol float64) bool {
	for _, e := range errs {
		if !(e < tol) {
			return false
		}
	}
	return true
}

func uniform(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1 / float64(n)
	}
	return v
}
