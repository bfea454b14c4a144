package graph

import (
	"github.com/lioia/birank/pkg/rank"
)

// Rank scores every node of u with PageRank.
func (u *Unipartite) Rank(opts rank.Options) ([]Score, error) {
	vs, err := rank.PageRanker{}.Rank(u.W, opts)
	if err != nil {
		return nil, err
	}
	return scores(u.Index, vs[0]), nil
}

// Rank scores both sides of b with BiRank.
func (b *Bipartite) Rank(opts rank.Options) (top, bottom []Score, err error) {
	vs, err := rank.BiRanker{}.Rank(b.W, opts)
	if err != nil {
		return nil, nil, err
	}
	return scores(b.Top, vs[0]), scores(b.Bottom, vs[1]), nil
}

func scores(idx *Index, v []float64) []Score {
	out := make([]Score, len(v))
	for i, x := range v {
		out[i] = Score{ID: idx.ID(i), Index: i, Value: x}
	}
	return out
}
