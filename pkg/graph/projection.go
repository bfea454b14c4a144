package graph

import (
	"fmt"

	"github.com/lioia/birank/pkg/rank"
)

// Project collapses b onto one side: W·Wᵗ for Top, Wᵗ·W for Bottom.
// Entry (i, j) is the weighted count of neighbors i and j share. Self
// co-occurrence on the diagonal is dropped and no explicit zeros are kept,
// so row sums of the result are true degrees.
func (b *Bipartite) Project(side Side) (*Unipartite, error) {
	wt := b.W.Transpose()
	u := &Unipartite{}
	var err error
	switch side {
	case Top:
		u.Index = b.Top
		u.W, err = b.W.Mul(wt)
	case Bottom:
		u.Index = b.Bottom
		u.W, err = wt.Mul(b.W)
	default:
		return nil, fmt.Errorf("project onto %q: %w", side, rank.ErrDimensionMismatch)
	}
	if err != nil {
		return nil, err
	}
	u.W.ZeroDiag()
	u.W.EliminateZeros()
	return u, nil
}
