package graph

import (
	"errors"
)

var (
	// ErrInvalidWeight is returned for negative, NaN or infinite edge weights.
	ErrInvalidWeight = errors.New("graph: invalid edge weight")
	// ErrMissingColumn is returned when an edge list header lacks a
	// configured column.
	ErrMissingColumn = errors.New("graph: missing column")
)

// Side selects one node set of a bipartite graph.
type Side string

const (
	Top    Side = "top"
	Bottom Side = "bottom"
)

// Edge is one record of an edge list. A nil Weight counts as 1.
type Edge struct {
	Top    string   `json:"top"`
	Bottom string   `json:"bottom"`
	Weight *float64 `json:"weight,omitempty"`
}

func (e Edge) weight() float64 {
	if e.Weight == nil {
		return 1
	}
	return *e.Weight
}

// Weighted returns an edge carrying an explicit weight.
func Weighted(top, bottom string, w float64) Edge {
	return Edge{Top: top, Bottom: bottom, Weight: &w}
}

// Score is a rank value attached back to its node identifier.
type Score struct {
	ID    string  `json:"id"`
	Index int     `json:"index"`
	Value float64 `json:"value"`
}

// Degree is the number of distinct neighbors of a node.
type Degree struct {
	ID     string `json:"id"`
	Index  int    `json:"index"`
	Degree int    `json:"degree"`
}

// Link is one stored entry of a unipartite adjacency matrix.
type Link struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}
