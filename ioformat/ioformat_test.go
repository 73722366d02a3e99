package ioformat_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flowgraph/mfdsafety/ioformat"
	"github.com/flowgraph/mfdsafety/stdag"
)

// TestParseGraphsS1 covers §8 S1's linear chain fed through the §6
// input format.
func TestParseGraphsS1(t *testing.T) {
	input := "#Graph g1\n3\n0 1 5\n1 2 5\n2 3 5\n"

	graphs, err := ioformat.ParseGraphs(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, graphs, 1)
	require.Equal(t, "g1", graphs[0].ID)
	require.Equal(t, 3, graphs[0].N)
	require.Equal(t, []ioformat.RawEdge{{U: 0, V: 1, W: 5}, {U: 1, V: 2, W: 5}, {U: 2, V: 3, W: 5}}, graphs[0].Edges)
}

func TestParseGraphsMultipleBlocks(t *testing.T) {
	input := "#Graph a\n1\n0 1 1\n#Graph b\n2\n0 1 2\n1 2 2\n"

	graphs, err := ioformat.ParseGraphs(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, graphs, 2)
	require.Equal(t, "a", graphs[0].ID)
	require.Equal(t, "b", graphs[1].ID)
}

func TestParseGraphsRejectsMalformedEdgeRow(t *testing.T) {
	input := "#Graph g1\n1\nnot-an-edge\n"

	_, err := ioformat.ParseGraphs(strings.NewReader(input))
	require.Error(t, err)
	var perr *ioformat.ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, 3, perr.Line)
}

func TestCanonicalizeBuildsFrozenGraph(t *testing.T) {
	pg := ioformat.ParsedGraph{
		ID: "g1",
		N:  3,
		Edges: []ioformat.RawEdge{
			{U: 0, V: 1, W: 5},
			{U: 1, V: 2, W: 5},
			{U: 2, V: 3, W: 5},
		},
	}

	g, err := ioformat.Canonicalize(pg)
	require.NoError(t, err)
	require.True(t, g.Frozen())
	require.Equal(t, 0, g.Source())
	require.Equal(t, 4, g.Sink())
}

func TestEncodeFixSetDropsSyntheticEdges(t *testing.T) {
	fixSet := [][]stdag.Edge{
		{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}},
	}
	encoded := ioformat.EncodeFixSet(fixSet, 3)
	require.Equal(t, [][]ioformat.EdgePair{{{U: 0, V: 1}, {U: 1, V: 2}}}, encoded)
}

func TestWriteArtifact(t *testing.T) {
	var buf bytes.Buffer
	err := ioformat.WriteArtifact(&buf, ioformat.Artifact{
		FixSet: [][]ioformat.EdgePair{{{U: 0, V: 1}, {U: 1, V: 2}}},
		Width:  1,
	})
	require.NoError(t, err)
	require.Equal(t, "width 1\nseq 2 0,1 1,2\n", buf.String())
}
