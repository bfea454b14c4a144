package graph_test

import (
	"bytes"
	"testing"

	"github.com/lioia/birank/pkg/graph"
	"github.com/stretchr/testify/require"
)

func TestWriteScores(t *testing.T) {
	var buf bytes.Buffer
	err := graph.WriteScores(&buf, "birank", []graph.Score{
		{ID: "a", Index: 0, Value: 0.25},
		{ID: "b,c", Index: 1, Value: 0.75},
	})
	require.NoError(t, err)
	require.Equal(t, "id,birank\na,0.25\n\"b,c\",0.75\n", buf.String())
}

func TestWriteDegreesAndLinks(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, graph.WriteDegrees(&buf, []graph.Degree{{ID: "a", Degree: 3}}))
	require.Equal(t, "id,degree\na,3\n", buf.String())

	buf.Reset()
	require.NoError(t, graph.WriteLinks(&buf, []graph.Link{{From: "a", To: "b", Weight: 2}}))
	require.Equal(t, "from,to,weight\na,b,2\n", buf.String())
}
