package rank

import (
	"errors"

	"github.com/lioia/birank/pkg/sparse"
)

var (
	// ErrInvalidConfiguration is returned for an unknown normalizer or an
	// out of range damping factor, iteration cap or tolerance.
	ErrInvalidConfiguration = errors.New("rank: invalid configuration")

	// ErrDimensionMismatch is returned when the adjacency matrix shape does
	// not fit the requested computation, e.g. a non-square matrix for PageRank.
	ErrDimensionMismatch = sparse.ErrDimensionMismatch
)
