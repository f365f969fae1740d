package mapper_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mapgraph/mapper"
)

// fixture returns a deterministic 18×5 engineered feature matrix and one
// coloring value per record, mimicking the reference dataset's shape.
func fixture() (*mat.Dense, []float64) {
	rng := rand.New(rand.NewSource(7))
	n, d := 18, 5
	m := mat.NewDense(n, d, nil)
	colors := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			m.Set(i, j, 1+9*rng.Float64()) // engineered scores live in [1,10]
		}
		colors[i] = rng.Float64()
	}
	return m, colors
}

// intersectionSize counts shared records between two sorted member lists.
func intersectionSize(a, b []int) int {
	count, i, j := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			count++
			i++
			j++
		}
	}
	return count
}

// TestMap_CoversAllRecords runs the full pipeline with the reference tuning
// and verifies every one of the 18 records lands in at least one node.
func TestMap_CoversAllRecords(t *testing.T) {
	features, colors := fixture()

	g, err := mapper.Map(features, colors, mapper.DefaultParams())
	require.NoError(t, err)
	require.NotZero(t, g.NumNodes(), "pipeline must produce nodes")

	present := make(map[int]bool)
	for _, node := range g.Nodes {
		for _, rec := range node.Members {
			present[rec] = true
		}
	}
	for rec := 0; rec < 18; rec++ {
		assert.True(t, present[rec], "record %d missing from every node", rec)
	}
	assert.Equal(t, 18, g.Stats().CoveredRecords)
}

// TestMap_Deterministic verifies two runs with the same input and seed yield
// the identical graph, node for node and edge for edge.
func TestMap_Deterministic(t *testing.T) {
	features, colors := fixture()
	params := mapper.DefaultParams()
	params.Lens.Seed = 42

	first, err := mapper.Map(features, colors, params)
	require.NoError(t, err)
	second, err := mapper.Map(features, colors, params)
	require.NoError(t, err)

	assert.Equal(t, first.Nodes, second.Nodes, "node lists must match exactly")
	assert.Equal(t, first.Edges, second.Edges, "edge lists must match exactly")
}

// TestMap_EdgeIffIntersection re-derives every edge from the node member
// sets: for each node pair an edge exists exactly when the sets intersect,
// weighted by the intersection size, and no self-edges or duplicates occur.
func TestMap_EdgeIffIntersection(t *testing.T) {
	features, colors := fixture()

	g, err := mapper.Map(features, colors, mapper.DefaultParams())
	require.NoError(t, err)

	byPair := make(map[[2]int]int, len(g.Edges))
	for _, e := range g.Edges {
		require.Less(t, e.A, e.B, "edges must be canonical with A < B")
		_, dup := byPair[[2]int{e.A, e.B}]
		require.False(t, dup, "pair (%d,%d) stored twice", e.A, e.B)
		byPair[[2]int{e.A, e.B}] = e.Weight
	}

	for a := 0; a < len(g.Nodes); a++ {
		for b := a + 1; b < len(g.Nodes); b++ {
			shared := intersectionSize(g.Nodes[a].Members, g.Nodes[b].Members)
			w, ok := byPair[[2]int{a, b}]
			if shared == 0 {
				assert.False(t, ok, "pair (%d,%d) edged without shared members", a, b)
				continue
			}
			require.True(t, ok, "pair (%d,%d) shares %d records but has no edge", a, b, shared)
			assert.Equal(t, shared, w, "pair (%d,%d) weight", a, b)
		}
	}
}

// TestMap_StatsConsistent verifies the reported counts match counting
// directly from the structure and from the gonum conversion.
func TestMap_StatsConsistent(t *testing.T) {
	features, colors := fixture()

	g, err := mapper.Map(features, colors, mapper.DefaultParams())
	require.NoError(t, err)

	stats := g.Stats()
	assert.Equal(t, len(g.Nodes), stats.NumNodes)
	assert.Equal(t, len(g.Edges), stats.NumEdges)

	sg := g.ToSimple()
	assert.Equal(t, stats.NumNodes, sg.Nodes().Len(), "conversion must keep the node count")
	assert.Equal(t, stats.NumEdges, sg.Edges().Len(), "conversion must keep the edge count")
}

// TestMap_Validation walks the pipeline-level sentinel errors.
func TestMap_Validation(t *testing.T) {
	features, colors := fixture()

	_, err := mapper.Map(nil, nil, mapper.DefaultParams())
	assert.ErrorIs(t, err, mapper.ErrEmptyDataset, "nil matrix is rejected")

	_, err = mapper.Map(features, colors[:5], mapper.DefaultParams())
	assert.ErrorIs(t, err, mapper.ErrColorLength, "short coloring slice is rejected")
}

// TestStats_HandBuiltGraph pins components, degrees and coverage on a graph
// assembled from fixed clusters: a connected pair plus an isolated node.
func TestStats_HandBuiltGraph(t *testing.T) {
	elems := elementsOf(3)
	clusters := [][][]int{
		{{0, 1}},
		{{1, 2}},
		{{5}},
	}
	colors := make([]float64, 6)

	g, err := mapper.Assemble(elems, clusters, colors, mapper.ColorMean)
	require.NoError(t, err)

	stats := g.Stats()
	assert.Equal(t, 3, stats.NumNodes)
	assert.Equal(t, 1, stats.NumEdges)
	assert.Equal(t, 2, stats.NumComponents, "pair and singleton node")
	assert.Equal(t, 1, stats.MaxDegree)
	assert.Equal(t, 4, stats.CoveredRecords, "records 0,1,2,5")
}

// TestStats_EmptyGraph verifies the zero value reports all zeros.
func TestStats_EmptyGraph(t *testing.T) {
	var g mapper.Graph
	assert.Equal(t, mapper.Stats{}, g.Stats())
}
