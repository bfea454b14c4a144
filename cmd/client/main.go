package main

import (
	"fmt"
	"os"

	"github.com/lioia/birank/pkg/graph"
	"github.com/lioia/birank/pkg/rank"
	"github.com/spf13/cobra"
)

// Flags shared by every subcommand
type rootOpts struct {
	file      string
	links     bool
	sep       string
	topCol    string
	bottomCol string
	weightCol string
	comment   string
	output    string
	remote    string
	timeout   int
	options   rank.Options
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOpts{options: rank.DefaultOptions()}
	normalizer := opts.options.Normalizer.String()

	cmd := &cobra.Command{
		Use:           "birank",
		Short:         "Rank the nodes of bipartite and link graphs",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			n, err := rank.ParseNormalizer(normalizer)
			if err != nil {
				return err
			}
			opts.options.Normalizer = n
			if len([]rune(opts.sep)) != 1 {
				return fmt.Errorf("separator must be a single character, got %q", opts.sep)
			}
			if len([]rune(opts.comment)) > 1 {
				return fmt.Errorf("comment must be a single character, got %q", opts.comment)
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.file, "file", "f", "graph.csv", "Edge list file or http(s) URL")
	flags.BoolVar(&opts.links, "links", false, "Read the file as a 'from to' link list")
	flags.StringVar(&opts.sep, "sep", ",", "Edge list field separator")
	flags.StringVar(&opts.topCol, "top-col", "top", "Header of the top node column")
	flags.StringVar(&opts.bottomCol, "bottom-col", "bottom", "Header of the bottom node column")
	flags.StringVar(&opts.weightCol, "weight-col", "", "Header of the weight column (unweighted when empty)")
	flags.StringVar(&opts.comment, "comment", "", "Skip edge list lines starting with this character")
	flags.StringVarP(&opts.output, "output", "o", "", "Output file prefix (stdout when empty)")
	flags.StringVar(&opts.remote, "remote", "", "Rank node address; computes locally when empty")
	flags.IntVar(&opts.timeout, "timeout", 60, "Remote call timeout in seconds")
	flags.Float64Var(&opts.options.Damping, "damping", opts.options.Damping, "PageRank damping factor")
	flags.Float64Var(&opts.options.Alpha, "alpha", opts.options.Alpha, "BiRank damping of the bottom update")
	flags.Float64Var(&opts.options.Beta, "beta", opts.options.Beta, "BiRank damping of the top update")
	flags.IntVar(&opts.options.MaxIter, "max-iter", opts.options.MaxIter, "Maximum number of rounds")
	flags.Float64Var(&opts.options.Tol, "tol", opts.options.Tol, "L1 convergence threshold")
	flags.StringVar(&normalizer, "normalizer", normalizer, "BiRank normalizer: HITS, CoHITS, BGRM or BiRank")
	flags.BoolVarP(&opts.options.Verbose, "verbose", "v", false, "Log every round")

	cmd.AddCommand(
		newPageRankCommand(opts),
		newBiRankCommand(opts),
		newProjectCommand(opts),
		newDegreeCommand(opts),
		newRenderCommand(opts),
	)
	return cmd
}

func (o *rootOpts) format() graph.Format {
	f := graph.Format{
		Sep:       []rune(o.sep)[0],
		TopCol:    o.topCol,
		BottomCol: o.bottomCol,
		WeightCol: o.weightCol,
	}
	if o.comment != "" {
		f.Comment = []rune(o.comment)[0]
	}
	return f
}

func (o *rootOpts) edges() ([]graph.Edge, error) {
	if o.links {
		return graph.LoadLinksResource(o.file)
	}
	return graph.LoadEdgeListResource(o.file, o.format())
}
