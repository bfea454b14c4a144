package rank_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/lioia/birank/pkg/rank"
	"github.com/lioia/birank/pkg/sparse"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

var allNormalizers = []rank.Normalizer{rank.HITS, rank.CoHITS, rank.BGRM, rank.BiRankNormalizer}

// randomBipartite builds a D×P matrix with integer weights. The last top
// row and the last bottom column are left empty.
func randomBipartite(d, p int, rnd *rand.Rand) *sparse.CSR {
	c := sparse.NewCOO(d, p)
	for i := 0; i < d-1; i++ {
		for k := 0; k < 3; k++ {
			c.Add(i, rnd.Intn(p-1), float64(1+rnd.Intn(3)))
		}
	}
	return c.ToCSR()
}

func TestBiRank_ShapesAndFinite(t *testing.T) {
	w := randomBipartite(30, 20, rand.New(rand.NewSource(3)))
	for _, n := range allNormalizers {
		t.Run(n.String(), func(t *testing.T) {
			opts := rank.DefaultOptions()
			opts.Normalizer = n
			d, p, err := rank.BiRank(w, opts)
			require.NoError(t, err)
			require.Len(t, d, 30)
			require.Len(t, p, 20)
			requireFiniteNonNegative(t, d)
			requireFiniteNonNegative(t, p)
			// isolated nodes only keep their teleport share
			require.Greater(t, d[29], 0.0)
			require.Greater(t, p[19], 0.0)
		})
	}
}

func TestBiRank_HITSRenormalizesEveryRound(t *testing.T) {
	w := randomBipartite(12, 9, rand.New(rand.NewSource(11)))
	opts := rank.DefaultOptions()
	opts.Tol = 0
	opts.MaxIter = 25
	rounds := 0
	opts.OnIteration = func(it rank.Iteration) {
		rounds++
		require.Len(t, it.Vectors, 2)
		require.InDelta(t, 1.0, floats.Sum(it.Vectors[0]), 1e-12)
		require.InDelta(t, 1.0, floats.Sum(it.Vectors[1]), 1e-12)
	}
	d, p, err := rank.BiRank(w, opts)
	require.NoError(t, err)
	require.Equal(t, 25, rounds)
	require.InDelta(t, 1.0, floats.Sum(d), 1e-12)
	require.InDelta(t, 1.0, floats.Sum(p), 1e-12)
}

func TestBiRank_CompleteGraphIsUniform(t *testing.T) {
	c := sparse.NewCOO(2, 3)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			c.Add(i, j, 1)
		}
	}
	w := c.ToCSR()
	for _, n := range []rank.Normalizer{rank.HITS, rank.CoHITS} {
		opts := rank.DefaultOptions()
		opts.Normalizer = n
		opts.Tol = 1e-12
		d, p, err := rank.BiRank(w, opts)
		require.NoError(t, err, n)
		for _, v := range d {
			require.InDelta(t, 0.5, v, 1e-9, n)
		}
		for _, v := range p {
			require.InDelta(t, 1.0/3, v, 1e-9, n)
		}
	}
}

func TestBiRank_AxisOrder(t *testing.T) {
	// three tops, one bottom: the first vector scores the rows
	c := sparse.NewCOO(3, 1)
	c.Add(0, 0, 1)
	c.Add(1, 0, 1)
	c.Add(2, 0, 1)
	d, p, err := rank.BiRank(c.ToCSR(), rank.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, d, 3)
	require.Len(t, p, 1)
}

func TestBiRank_StopsAtMaxIter(t *testing.T) {
	w := randomBipartite(10, 10, rand.New(rand.NewSource(5)))
	for _, n := range allNormalizers {
		opts := rank.DefaultOptions()
		opts.Normalizer = n
		opts.Tol = 0
		opts.MaxIter = 9
		rounds := 0
		opts.OnIteration = func(rank.Iteration) { rounds++ }
		_, _, err := rank.BiRank(w, opts)
		require.NoError(t, err)
		require.Equal(t, 9, rounds, n)
	}
}

func TestBiRank_BothErrorsBelowTol(t *testing.T) {
	w := randomBipartite(10, 8, rand.New(rand.NewSource(9)))
	opts := rank.DefaultOptions()
	opts.Normalizer = rank.BiRankNormalizer
	var last rank.Iteration
	opts.OnIteration = func(it rank.Iteration) { last = it }
	_, _, err := rank.BiRank(w, opts)
	require.NoError(t, err)
	require.Less(t, last.Round, opts.MaxIter)
	require.Less(t, last.Errors[0], opts.Tol)
	require.Less(t, last.Errors[1], opts.Tol)
}

func TestBiRank_InvalidConfiguration(t *testing.T) {
	w := randomBipartite(4, 4, rand.New(rand.NewSource(1)))
	tests := []struct {
		name   string
		modify func(*rank.Options)
	}{
		{"UnknownNormalizer", func(o *rank.Options) { o.Normalizer = rank.Normalizer(42) }},
		{"UnsetNormalizer", func(o *rank.Options) { o.Normalizer = 0 }},
		{"AlphaOutOfRange", func(o *rank.Options) { o.Alpha = 1.5 }},
		{"BetaOutOfRange", func(o *rank.Options) { o.Beta = -0.1 }},
		{"NegativeMaxIter", func(o *rank.Options) { o.MaxIter = -3 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := rank.DefaultOptions()
			tt.modify(&opts)
			called := false
			opts.OnIteration = func(rank.Iteration) { called = true }
			d, p, err := rank.BiRank(w, opts)
			require.ErrorIs(t, err, rank.ErrInvalidConfiguration)
			require.Nil(t, d)
			require.Nil(t, p)
			require.False(t, called)
		})
	}
}

func TestParseNormalizer(t *testing.T) {
	for _, n := range allNormalizers {
		got, err := rank.ParseNormalizer(n.String())
		require.NoError(t, err)
		require.Equal(t, n, got)
	}
	for _, bad := range []string{"", "hits", "PageRank", "BiRank "} {
		_, err := rank.ParseNormalizer(bad)
		require.ErrorIs(t, err, rank.ErrInvalidConfiguration, bad)
	}
	require.Equal(t, "Normalizer(9)", fmt.Sprint(rank.Normalizer(9)))
}

func TestRanker(t *testing.T) {
	w := randomBipartite(6, 5, rand.New(rand.NewSource(2)))
	vs, err := rank.BiRanker{}.Rank(w, rank.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, vs, 2)
	require.Len(t, vs[0], 6)
	require.Len(t, vs[1], 5)

	vs, err = rank.PageRanker{}.Rank(pathGraph(5).coo.ToCSR(), rank.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, vs, 1)
	require.Len(t, vs[0], 5)

	_, err = rank.PageRanker{}.Rank(w, rank.DefaultOptions())
	require.ErrorIs(t, err, rank.ErrDimensionMismatch)
}
