package rank

import "github.com/lioia/birank/pkg/sparse"

// Ranker is the ranking capability shared by the unipartite and bipartite
// solvers. It returns one score vector per node set of w.
type Ranker interface {
	Rank(w *sparse.CSR, opts Options) ([][]float64, error)
}

// PageRanker ranks a square adjacency matrix with PageRank.
type PageRanker struct{}

func (PageRanker) Rank(w *sparse.CSR, opts Options) ([][]float64, error) {
	x, err := PageRank(w, opts)
	if err != nil {
		return nil, err
	}
	return [][]float64{x}, nil
}

// BiRanker ranks a bipartite adjacency matrix with BiRank.
// The first vector scores the rows, the second the columns.
type BiRanker struct{}

func (BiRanker) Rank(w *sparse.CSR, opts Options) ([][]float64, error) {
	d, p, err := BiRank(w, opts)
	if err != nil {
		return nil, err
	}
	return [][]float64{d, p}, nil
}

var (
	_ Ranker = PageRanker{}
	_ Ranker = BiRanker{}
)
