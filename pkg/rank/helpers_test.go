package rank_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lioia/birank/pkg/sparse"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
)

// linkGraph keeps the same directed graph both as a gonum graph and as a
// sparse adjacency matrix so results can be compared node by node.
type linkGraph struct {
	n     int
	g     *simple.DirectedGraph
	coo   *sparse.COO
	links map[[2]int]bool
}

func newLinkGraph(n int) *linkGraph {
	lg := &linkGraph{
		n:     n,
		g:     simple.NewDirectedGraph(),
		coo:   sparse.NewCOO(n, n),
		links: make(map[[2]int]bool),
	}
	for i := 0; i < n; i++ {
		lg.g.AddNode(simple.Node(i))
	}
	return lg
}

func (lg *linkGraph) link(from, to int) {
	if from == to || lg.links[[2]int{from, to}] {
		return
	}
	lg.links[[2]int{from, to}] = true
	lg.g.SetEdge(lg.g.NewEdge(simple.Node(from), simple.Node(to)))
	lg.coo.Add(from, to, 1)
}

func (lg *linkGraph) both(a, b int) {
	lg.link(a, b)
	lg.link(b, a)
}

func pathGraph(n int) *linkGraph {
	lg := newLinkGraph(n)
	for i := 0; i+1 < n; i++ {
		lg.both(i, i+1)
	}
	return lg
}

// randomGraph links every node to its successor on a ring plus k random
// targets, so no node is left without out-links.
func randomGraph(n, k int, rnd *rand.Rand) *linkGraph {
	lg := newLinkGraph(n)
	for i := 0; i < n; i++ {
		lg.link(i, (i+1)%n)
		for j := 0; j < k; j++ {
			lg.link(i, rnd.Intn(n))
		}
	}
	return lg
}

// preferentialGraph grows a Barabási–Albert style graph: every new node
// attaches to m existing nodes picked proportionally to their degree.
func preferentialGraph(n, m int, rnd *rand.Rand) *linkGraph {
	lg := newLinkGraph(n)
	var ends []int
	for i := 0; i <= m; i++ {
		for j := 0; j < i; j++ {
			lg.both(i, j)
			ends = append(ends, i, j)
		}
	}
	for u := m + 1; u < n; u++ {
		picked := make(map[int]bool)
		for len(picked) < m {
			picked[ends[rnd.Intn(len(ends))]] = true
		}
		for v := range picked {
			lg.both(u, v)
			ends = append(ends, u, v)
		}
	}
	return lg
}

func requireFiniteNonNegative(t *testing.T, v []float64) {
	t.Helper()
	for i, x := range v {
		require.False(t, math.IsNaN(x) || math.IsInf(x, 0), "entry %d is %v", i, x)
		require.GreaterOrEqual(t, x, 0.0, "entry %d", i)
	}
}
