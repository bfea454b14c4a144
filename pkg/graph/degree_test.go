package graph_test

import (
	"testing"

	"github.com/lioia/birank/pkg/graph"
	"github.com/lioia/birank/pkg/sparse"
	"github.com/stretchr/testify/require"
)

func TestDegrees_DistinctNeighbors(t *testing.T) {
	b, err := graph.BuildBipartite([]graph.Edge{
		graph.Weighted("u1", "i1", 5),
		graph.Weighted("u1", "i1", 3),
		{Top: "u1", Bottom: "i2"},
		{Top: "u2", Bottom: "i1"},
		graph.Weighted("u3", "i3", 0),
	})
	require.NoError(t, err)

	top, bottom := b.Degrees()
	require.Equal(t, []graph.Degree{
		{ID: "u1", Index: 0, Degree: 2},
		{ID: "u2", Index: 1, Degree: 1},
		{ID: "u3", Index: 2, Degree: 1},
	}, top)
	require.Equal(t, []graph.Degree{
		{ID: "i1", Index: 0, Degree: 2},
		{ID: "i2", Index: 1, Degree: 1},
		{ID: "i3", Index: 2, Degree: 1},
	}, bottom)

	// the weighted matrix disagrees: u1 has weight 9, u3 none
	require.Equal(t, []float64{9, 1, 0}, b.W.RowSums())
}

func TestDegrees_FromMatrix(t *testing.T) {
	top, bottom := graph.NewIndex(), graph.NewIndex()
	top.Add("a")
	top.Add("b")
	bottom.Add("x")
	bottom.Add("y")
	c := sparse.NewCOO(2, 2)
	c.Add(0, 0, 3)
	c.Add(0, 1, 1)
	c.Add(1, 1, 2)
	b := &graph.Bipartite{Top: top, Bottom: bottom, W: c.ToCSR()}

	td, bd := b.Degrees()
	require.Equal(t, []graph.Degree{
		{ID: "a", Index: 0, Degree: 2},
		{ID: "b", Index: 1, Degree: 1},
	}, td)
	require.Equal(t, []graph.Degree{
		{ID: "x", Index: 0, Degree: 1},
		{ID: "y", Index: 1, Degree: 2},
	}, bd)
}
