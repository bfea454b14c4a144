package graph_test

import (
	"math"
	"testing"

	"github.com/lioia/birank/pkg/graph"
	"github.com/lioia/birank/pkg/rank"
	"github.com/stretchr/testify/require"
)

func edges(pairs ...[2]string) []graph.Edge {
	out := make([]graph.Edge, len(pairs))
	for i, p := range pairs {
		out[i] = graph.Edge{Top: p[0], Bottom: p[1]}
	}
	return out
}

// top 1 -> {1,2}, 2 -> {2,3,4}, 3 -> {1,3,4}
func sampleEdges() []graph.Edge {
	return edges(
		[2]string{"1", "1"}, [2]string{"1", "2"},
		[2]string{"2", "2"}, [2]string{"2", "3"}, [2]string{"2", "4"},
		[2]string{"3", "1"}, [2]string{"3", "3"}, [2]string{"3", "4"},
	)
}

func at(t *testing.T, u *graph.Unipartite, a, b string) float64 {
	t.Helper()
	i, ok := u.Index.Lookup(a)
	require.True(t, ok)
	j, ok := u.Index.Lookup(b)
	require.True(t, ok)
	require.Equal(t, u.W.At(i, j), u.W.At(j, i), "projection must be symmetric")
	return u.W.At(i, j)
}

func TestProject_Top(t *testing.T) {
	b, err := graph.BuildBipartite(sampleEdges())
	require.NoError(t, err)
	require.Equal(t, 3, b.Top.Len())
	require.Equal(t, 4, b.Bottom.Len())

	u, err := b.Project(graph.Top)
	require.NoError(t, err)
	r, c := u.W.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 3, c)

	// shared bottom neighbors
	require.Equal(t, 1.0, at(t, u, "1", "2")) // {2}
	require.Equal(t, 1.0, at(t, u, "1", "3")) // {1}
	require.Equal(t, 2.0, at(t, u, "2", "3")) // {3,4}
	for i := 0; i < r; i++ {
		require.Zero(t, u.W.At(i, i))
	}
	require.Equal(t, 6, u.W.NNZ())
}

func TestProject_TopSharedPairs(t *testing.T) {
	// 1 -> {a,b,c}, 2 -> {c,d,e}, 3 -> {a,b,d,e}
	b, err := graph.BuildBipartite(edges(
		[2]string{"1", "a"}, [2]string{"1", "b"}, [2]string{"1", "c"},
		[2]string{"2", "c"}, [2]string{"2", "d"}, [2]string{"2", "e"},
		[2]string{"3", "a"}, [2]string{"3", "b"}, [2]string{"3", "d"}, [2]string{"3", "e"},
	))
	require.NoError(t, err)
	u, err := b.Project(graph.Top)
	require.NoError(t, err)
	require.Equal(t, 1.0, at(t, u, "1", "2"))
	require.Equal(t, 2.0, at(t, u, "1", "3"))
	require.Equal(t, 2.0, at(t, u, "2", "3"))
}

func TestProject_Bottom(t *testing.T) {
	b, err := graph.BuildBipartite(sampleEdges())
	require.NoError(t, err)
	u, err := b.Project(graph.Bottom)
	require.NoError(t, err)
	r, _ := u.W.Dims()
	require.Equal(t, 4, r)

	require.Equal(t, 1.0, at(t, u, "1", "2")) // top 1
	require.Equal(t, 1.0, at(t, u, "1", "3")) // top 3
	require.Equal(t, 2.0, at(t, u, "3", "4")) // tops 2, 3
	require.Equal(t, 0.0, at(t, u, "1", "1"))
}

func TestProject_UnknownSide(t *testing.T) {
	b, err := graph.BuildBipartite(sampleEdges())
	require.NoError(t, err)
	_, err = b.Project(graph.Side("left"))
	require.ErrorIs(t, err, rank.ErrDimensionMismatch)
}

func TestProject_IsolatedAfterDiagonal(t *testing.T) {
	// "lonely" only co-occurs with itself: its row must be empty, not a
	// row of stored zeros.
	b, err := graph.BuildBipartite(edges(
		[2]string{"a", "x"}, [2]string{"b", "x"}, [2]string{"lonely", "y"},
	))
	require.NoError(t, err)
	u, err := b.Project(graph.Top)
	require.NoError(t, err)
	i, _ := u.Index.Lookup("lonely")
	require.Zero(t, u.W.RowNNZ(i))

	scores, err := u.Rank(rank.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, scores, 3)
	for _, s := range scores {
		require.False(t, math.IsNaN(s.Value) || math.IsInf(s.Value, 0))
	}
	require.Equal(t, "lonely", scores[i].ID)
	require.Less(t, scores[i].Value, scores[0].Value)
}
