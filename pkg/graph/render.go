package graph

import (
	"fmt"
	"io"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
)

// Render draws b with Graphviz: top nodes as boxes, bottom nodes as
// ellipses, edges labelled with their summed weight. When scores are given
// they are appended to the node labels.
func Render(w io.Writer, b *Bipartite, top, bottom []Score, format graphviz.Format) error {
	g := graphviz.New()
	defer g.Close()
	gr, err := g.Graph()
	if err != nil {
		return err
	}
	defer gr.Close()

	tops, err := renderNodes(gr, "t", b.Top, top, cgraph.BoxShape)
	if err != nil {
		return err
	}
	bottoms, err := renderNodes(gr, "b", b.Bottom, bottom, cgraph.EllipseShape)
	if err != nil {
		return err
	}
	b.W.DoNonZero(func(i, j int, v float64) {
		if err != nil {
			return
		}
		var e *cgraph.Edge
		e, err = gr.CreateEdge(fmt.Sprintf("e%d_%d", i, j), tops[i], bottoms[j])
		if err == nil {
			e.SetLabel(fmt.Sprintf("%g", v))
		}
	})
	if err != nil {
		return err
	}
	return g.Render(gr, format, w)
}

func renderNodes(gr *cgraph.Graph, prefix string, idx *Index, scores []Score, shape cgraph.Shape) ([]*cgraph.Node, error) {
	nodes := make([]*cgraph.Node, idx.Len())
	for i := range nodes {
		n, err := gr.CreateNode(fmt.Sprintf("%s%d", prefix, i))
		if err != nil {
			return nil, err
		}
		label := idx.ID(i)
		if i < len(scores) {
			label = fmt.Sprintf("%s\n%.4f", label, scores[i].Value)
		}
		n.SetLabel(label)
		n.SetShape(shape)
		nodes[i] = n
	}
	return nodes, nil
}
