package graph

import (
	"fmt"
	"math"

	"github.com/lioia/birank/pkg/sparse"
)

// Bipartite is a two-mode graph: W has one row per top node and one
// column per bottom node.
type Bipartite struct {
	Top    *Index
	Bottom *Index
	W      *sparse.CSR
	pairs  [][2]int // (top, bottom) of every edge record, for Degrees
}

// Unipartite is a one-mode graph with a square adjacency matrix.
type Unipartite struct {
	Index *Index
	W     *sparse.CSR
}

// BuildBipartite indexes both sides of edges and sums their weights into
// W[top, bottom]. Repeated pairs accumulate.
func BuildBipartite(edges []Edge) (*Bipartite, error) {
	if err := checkWeights(edges); err != nil {
		return nil, err
	}
	b := &Bipartite{
		Top:    NewIndex(),
		Bottom: NewIndex(),
		pairs:  make([][2]int, len(edges)),
	}
	for k, e := range edges {
		b.pairs[k] = [2]int{b.Top.Add(e.Top), b.Bottom.Add(e.Bottom)}
	}
	coo := sparse.NewCOO(b.Top.Len(), b.Bottom.Len())
	for k, e := range edges {
		coo.Add(b.pairs[k][0], b.pairs[k][1], e.weight())
	}
	b.W = coo.ToCSR()
	b.W.EliminateZeros()
	return b, nil
}

// BuildUnipartite reads edges as directed links Top -> Bottom between nodes
// of a single index space.
func BuildUnipartite(edges []Edge) (*Unipartite, error) {
	if err := checkWeights(edges); err != nil {
		return nil, err
	}
	u := &Unipartite{Index: NewIndex()}
	links := make([][2]int, len(edges))
	for k, e := range edges {
		links[k] = [2]int{u.Index.Add(e.Top), u.Index.Add(e.Bottom)}
	}
	n := u.Index.Len()
	coo := sparse.NewCOO(n, n)
	for k, e := range edges {
		coo.Add(links[k][0], links[k][1], e.weight())
	}
	u.W = coo.ToCSR()
	u.W.EliminateZeros()
	return u, nil
}

func checkWeights(edges []Edge) error {
	for k, e := range edges {
		w := e.weight()
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return fmt.Errorf("edge %d (%s, %s) weight %v: %w", k, e.Top, e.Bottom, w, ErrInvalidWeight)
		}
	}
	return nil
}

// Links lists the stored entries of u.W with their identifiers.
func (u *Unipartite) Links() []Link {
	links := make([]Link, 0, u.W.NNZ())
	u.W.DoNonZero(func(i, j int, v float64) {
		links = append(links, Link{From: u.Index.ID(i), To: u.Index.ID(j), Weight: v})
	})
	return links
}
