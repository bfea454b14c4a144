package rank

import (
	"fmt"
	"math"
)

// Options configures one ranking call. There is no package level state:
// every call carries its own damping, iteration cap and tolerance.
type Options struct {
	Damping    float64    `json:"damping"`    // PageRank damping factor d
	Alpha      float64    `json:"alpha"`      // BiRank damping of the bottom update
	Beta       float64    `json:"beta"`       // BiRank damping of the top update
	MaxIter    int        `json:"max_iter"`   // hard cap on rounds
	Tol        float64    `json:"tol"`        // L1 convergence threshold
	Normalizer Normalizer `json:"normalizer"` // BiRank only
	Verbose    bool       `json:"verbose"`    // log every round

	// OnIteration, if set, is called after every round. The vectors in
	// Iteration belong to the solver and must not be modified or retained.
	OnIteration func(Iteration) `json:"-"`
}

// Iteration describes one finished round of a solver.
type Iteration struct {
	Round   int         // 1-based
	Errors  []float64   // L1 change of each vector in this round
	Vectors [][]float64 // x for PageRank; d, p for BiRank
}

func DefaultOptions() Options {
	return Options{
		Damping:    0.85,
		Alpha:      0.85,
		Beta:       0.85,
		MaxIter:    200,
		Tol:        1.0e-4,
		Normalizer: HITS,
	}
}

func (o Options) validateLoop() error {
	if o.MaxIter < 0 {
		return fmt.Errorf("%w: max_iter %d is negative", ErrInvalidConfiguration, o.MaxIter)
	}
	if math.IsNaN(o.Tol) || o.Tol < 0 {
		return fmt.Errorf("%w: tol %v", ErrInvalidConfiguration, o.Tol)
	}
	return nil
}

func validateDamping(name string, v float64) error {
	if !(v > 0 && v < 1) {
		return fmt.Errorf("%w: %s %v outside (0,1)", ErrInvalidConfiguration, name, v)
	}
	return nil
}
