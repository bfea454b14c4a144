package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goccy/go-graphviz"
	"github.com/lioia/birank/pkg/graph"
	"github.com/lioia/birank/pkg/node"
	"github.com/lioia/birank/pkg/utils"
	"github.com/spf13/cobra"
)

func newPageRankCommand(opts *rootOpts) *cobra.Command {
	var side string
	cmd := &cobra.Command{
		Use:   "pagerank",
		Short: "PageRank over the link graph, or over the projection onto one side",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.run(node.PageRank, graph.Side(side))
			if err != nil {
				return err
			}
			return opts.write(cmd.OutOrStdout(), "pagerank", func(w io.Writer) error {
				return graph.WriteScores(w, "pagerank", res.Ranks)
			})
		},
	}
	cmd.Flags().StringVar(&side, "side", "", "Project onto top or bottom first (empty: read edges as directed links)")
	return cmd
}

func newBiRankCommand(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "birank",
		Short: "Co-rank both sides of a bipartite graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.run(node.BiRank, "")
			if err != nil {
				return err
			}
			if err := opts.write(cmd.OutOrStdout(), "top", func(w io.Writer) error {
				return graph.WriteScores(w, "birank", res.Top)
			}); err != nil {
				return err
			}
			return opts.write(cmd.OutOrStdout(), "bottom", func(w io.Writer) error {
				return graph.WriteScores(w, "birank", res.Bottom)
			})
		},
	}
}

func newProjectCommand(opts *rootOpts) *cobra.Command {
	side := string(graph.Top)
	cmd := &cobra.Command{
		Use:   "project",
		Short: "One-mode projection of a bipartite graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.run(node.Projection, graph.Side(side))
			if err != nil {
				return err
			}
			return opts.write(cmd.OutOrStdout(), "projection", func(w io.Writer) error {
				return graph.WriteLinks(w, res.Links)
			})
		},
	}
	cmd.Flags().StringVar(&side, "side", side, "Side to project onto: top or bottom")
	return cmd
}

func newDegreeCommand(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "degree",
		Short: "Distinct neighbor count of every node",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.run(node.Degree, "")
			if err != nil {
				return err
			}
			if err := opts.write(cmd.OutOrStdout(), "top_degree", func(w io.Writer) error {
				return graph.WriteDegrees(w, res.TopDegree)
			}); err != nil {
				return err
			}
			return opts.write(cmd.OutOrStdout(), "bottom_degree", func(w io.Writer) error {
				return graph.WriteDegrees(w, res.BottomDegree)
			})
		},
	}
}

func newRenderCommand(opts *rootOpts) *cobra.Command {
	var format string
	var ranked bool
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw the bipartite graph with Graphviz",
		RunE: func(cmd *cobra.Command, args []string) error {
			edges, err := opts.edges()
			if err != nil {
				return err
			}
			b, err := graph.BuildBipartite(edges)
			if err != nil {
				return err
			}
			var top, bottom []graph.Score
			if ranked {
				if top, bottom, err = b.Rank(opts.options); err != nil {
					return err
				}
			}
			return opts.write(cmd.OutOrStdout(), "graph."+format, func(w io.Writer) error {
				return graph.Render(w, b, top, bottom, graphviz.Format(format))
			})
		},
	}
	cmd.Flags().StringVar(&format, "format", string(graphviz.XDOT), "Output format: dot, svg, png or jpg")
	cmd.Flags().BoolVar(&ranked, "ranked", true, "Add BiRank scores to the labels")
	return cmd
}

// run computes a job locally, or on the node at --remote.
func (o *rootOpts) run(kind node.Kind, side graph.Side) (node.Result, error) {
	edges, err := o.edges()
	if err != nil {
		return node.Result{}, err
	}
	job := node.Job{Kind: kind, Edges: edges, Side: side, Options: o.options}
	if o.remote == "" {
		return node.Run(job)
	}
	client, err := utils.RankCall(o.remote, time.Duration(o.timeout)*time.Second)
	if err != nil {
		return node.Result{}, err
	}
	defer client.Close()
	return node.CallRank(client.Ctx, client.Conn, job)
}

// write sends the output of fn to stdout, or to "<output>_<name>" when an
// output prefix is set.
func (o *rootOpts) write(stdout io.Writer, name string, fn func(io.Writer) error) error {
	if o.output == "" {
		return fn(stdout)
	}
	path := fmt.Sprintf("%s_%s", o.output, name)
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := fn(file); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Written %s\n", path)
	return nil
}
