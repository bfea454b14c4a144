package node

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lioia/birank/pkg/graph"
	"github.com/lioia/birank/pkg/rank"
)

var ErrUnknownKind = errors.New("node: unknown job kind")

type Kind string

const (
	// PageRank ranks the projection onto Side, or the directed link graph
	// Top -> Bottom when Side is empty.
	PageRank   Kind = "pagerank"
	BiRank     Kind = "birank"
	Projection Kind = "projection"
	Degree     Kind = "degree"
)

// Job is one self-contained computation over an edge list.
type Job struct {
	ID      string       `json:"id,omitempty"`
	Kind    Kind         `json:"kind"`
	Edges   []graph.Edge `json:"edges"`
	Side    graph.Side   `json:"side,omitempty"`
	Options rank.Options `json:"options"`
}

type Result struct {
	ID           string         `json:"id,omitempty"`
	Kind         Kind           `json:"kind"`
	Ranks        []graph.Score  `json:"ranks,omitempty"`
	Top          []graph.Score  `json:"top,omitempty"`
	Bottom       []graph.Score  `json:"bottom,omitempty"`
	TopDegree    []graph.Degree `json:"top_degree,omitempty"`
	BottomDegree []graph.Degree `json:"bottom_degree,omitempty"`
	Links        []graph.Link   `json:"links,omitempty"`
	Error        string         `json:"error,omitempty"`
}

// Run computes job on the calling goroutine.
func Run(job Job) (Result, error) {
	res := Result{ID: job.ID, Kind: job.Kind}
	switch job.Kind {
	case BiRank:
		b, err := graph.BuildBipartite(job.Edges)
		if err != nil {
			return res, err
		}
		res.Top, res.Bottom, err = b.Rank(job.Options)
		return res, err
	case PageRank:
		u, err := unipartite(job)
		if err != nil {
			return res, err
		}
		res.Ranks, err = u.Rank(job.Options)
		return res, err
	case Projection:
		b, err := graph.BuildBipartite(job.Edges)
		if err != nil {
			return res, err
		}
		u, err := b.Project(job.Side)
		if err != nil {
			return res, err
		}
		res.Links = u.Links()
		return res, nil
	case Degree:
		b, err := graph.BuildBipartite(job.Edges)
		if err != nil {
			return res, err
		}
		res.TopDegree, res.BottomDegree = b.Degrees()
		return res, nil
	}
	return res, fmt.Errorf("%q: %w", job.Kind, ErrUnknownKind)
}

func unipartite(job Job) (*graph.Unipartite, error) {
	if job.Side == "" {
		return graph.BuildUnipartite(job.Edges)
	}
	b, err := graph.BuildBipartite(job.Edges)
	if err != nil {
		return nil, err
	}
	return b.Project(job.Side)
}

// decodeJob parses a JSON job, starting from defaults for any option the
// payload leaves out.
func decodeJob(data []byte, defaults rank.Options) (Job, error) {
	job := Job{Options: defaults}
	if err := json.Unmarshal(data, &job); err != nil {
		return Job{}, err
	}
	job.Options.OnIteration = nil
	return job, nil
}
