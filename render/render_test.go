package render_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mapgraph/cover"
	"github.com/katalvlaran/mapgraph/mapper"
	"github.com/katalvlaran/mapgraph/render"
)

// smallGraph assembles a three-node graph with one edge for rendering tests.
func smallGraph(t *testing.T) *mapper.Graph {
	t.Helper()
	elems := []cover.Element{{ID: 0}, {ID: 1}, {ID: 2}}
	clusters := [][][]int{
		{{0, 1}},
		{{1, 2}},
		{{3}},
	}
	colors := []float64{0.7, 0.5, 0.4, 0.9}

	g, err := mapper.Assemble(elems, clusters, colors, mapper.ColorMean)
	require.NoError(t, err)
	return g
}

var testTooltips = []string{"School A", "School B", "School C", "School D"}

// TestRamp verifies stop count, exact endpoints and the error cases.
func TestRamp(t *testing.T) {
	ramp, err := render.Ramp("#440154", "#fde725", 5)
	require.NoError(t, err)

	require.Len(t, ramp, 5)
	assert.Equal(t, "#440154", ramp[0], "first stop is the low endpoint")
	assert.Equal(t, "#fde725", ramp[4], "last stop is the high endpoint")

	_, err = render.Ramp("#440154", "#fde725", 1)
	assert.ErrorIs(t, err, render.ErrRampStops)

	_, err = render.Ramp("not-a-color", "#fde725", 3)
	assert.Error(t, err, "malformed hex must surface a parse error")
}

// TestHTML_NodesAndLinks verifies the chart mirrors the graph structure.
func TestHTML_NodesAndLinks(t *testing.T) {
	g := smallGraph(t)

	chart, err := render.HTML(g, testTooltips, render.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, chart.MultiSeries, 1)

	series := chart.MultiSeries[0]
	assert.Len(t, series.Data, g.NumNodes(), "one chart node per graph node")
	assert.Len(t, series.Links, g.NumEdges(), "one link per graph edge")
}

// TestRender_PageContainsGraph renders to a buffer and checks the page names
// the title and every node.
func TestRender_PageContainsGraph(t *testing.T) {
	g := smallGraph(t)
	o := render.DefaultOptions()
	o.Title = "Fight Song Topology"
	o.Meta = map[string]string{"Methodology": "mapper on 5 features"}

	var buf bytes.Buffer
	require.NoError(t, render.Render(&buf, g, testTooltips, o))

	page := buf.String()
	assert.Contains(t, page, "Fight Song Topology")
	for _, n := range g.Nodes {
		assert.Contains(t, page, n.ID, "page must name node %s", n.ID)
	}
	assert.Contains(t, page, "Methodology", "meta annotation must reach the page")
}

// TestHTML_Validation walks the rendering sentinels.
func TestHTML_Validation(t *testing.T) {
	g := smallGraph(t)

	_, err := render.HTML(nil, testTooltips, render.DefaultOptions())
	assert.ErrorIs(t, err, render.ErrNilGraph)

	_, err = render.HTML(g, testTooltips[:2], render.DefaultOptions())
	assert.ErrorIs(t, err, render.ErrTooltipLength, "member 3 has no tooltip entry")
}

// TestWriteFile round-trips the page through the filesystem.
func TestWriteFile(t *testing.T) {
	g := smallGraph(t)
	path := filepath.Join(t.TempDir(), "graph.html")

	require.NoError(t, render.WriteFile(path, g, testTooltips, render.DefaultOptions()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Contains(t, string(data), "cube0_cluster0")
}
