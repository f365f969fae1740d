package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mapgraph/cluster"
)

// rowsOf builds an N×2 matrix from point pairs; two feature columns keep the
// fixtures easy to reason about while still exercising full-row distances.
func rowsOf(pts ...[2]float64) *mat.Dense {
	m := mat.NewDense(len(pts), 2, nil)
	for i, p := range pts {
		m.Set(i, 0, p[0])
		m.Set(i, 1, p[1])
	}
	return m
}

// TestClusters_SingletonGuarantee verifies that with MinSamples=1 every
// member joins a cluster even when eps isolates all of them.
func TestClusters_SingletonGuarantee(t *testing.T) {
	m := rowsOf([2]float64{0, 0}, [2]float64{10, 0}, [2]float64{20, 0})
	opts := cluster.Options{Eps: 1, MinSamples: 1}

	got, err := cluster.Clusters(m, []int{0, 1, 2}, opts)
	require.NoError(t, err)

	assert.Equal(t, [][]int{{0}, {1}, {2}}, got, "isolated points must become singletons")
}

// TestClusters_ChainMerges verifies density-reachability: a chain of points
// spaced within eps collapses into one cluster.
func TestClusters_ChainMerges(t *testing.T) {
	m := rowsOf([2]float64{0, 0}, [2]float64{1, 0}, [2]float64{2, 0}, [2]float64{3, 0})
	opts := cluster.Options{Eps: 1.5, MinSamples: 1}

	got, err := cluster.Clusters(m, []int{0, 1, 2, 3}, opts)
	require.NoError(t, err)

	assert.Equal(t, [][]int{{0, 1, 2, 3}}, got, "chain within eps must merge")
}

// TestClusters_TwoGroups verifies separated groups form separate clusters in
// discovery order.
func TestClusters_TwoGroups(t *testing.T) {
	m := rowsOf(
		[2]float64{0, 0}, [2]float64{0.5, 0},
		[2]float64{10, 0}, [2]float64{10.5, 0},
	)
	opts := cluster.Options{Eps: 1, MinSamples: 1}

	got, err := cluster.Clusters(m, []int{0, 1, 2, 3}, opts)
	require.NoError(t, err)

	assert.Equal(t, [][]int{{0, 1}, {2, 3}}, got, "far groups must stay separate")
}

// TestClusters_NoiseExcluded verifies the documented noise policy once
// MinSamples exceeds 1: isolated points vanish from the output.
func TestClusters_NoiseExcluded(t *testing.T) {
	m := rowsOf(
		[2]float64{0, 0}, [2]float64{0.1, 0}, [2]float64{0.2, 0}, // dense triplet
		[2]float64{50, 50}, // isolated
	)
	opts := cluster.Options{Eps: 0.5, MinSamples: 3}

	got, err := cluster.Clusters(m, []int{0, 1, 2, 3}, opts)
	require.NoError(t, err)

	require.Len(t, got, 1, "only the dense triplet forms a cluster")
	assert.Equal(t, []int{0, 1, 2}, got[0], "triplet membership")
	for _, c := range got {
		assert.NotContains(t, c, 3, "the isolated point must be dropped as noise")
	}
}

// TestClusters_BorderPointJoins verifies a non-core point inside a core's
// neighborhood is absorbed as a border member rather than dropped.
func TestClusters_BorderPointJoins(t *testing.T) {
	// 0,1,2 sit within 0.2 of each other (cores at MinSamples=3);
	// 3 is within eps of 2 only, so its own neighborhood is too small.
	m := rowsOf(
		[2]float64{0, 0}, [2]float64{0.1, 0}, [2]float64{0.2, 0},
		[2]float64{0.6, 0},
	)
	opts := cluster.Options{Eps: 0.45, MinSamples: 3}

	got, err := cluster.Clusters(m, []int{0, 1, 2, 3}, opts)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, []int{0, 1, 2, 3}, got[0], "border point must join the core's cluster")
}

// TestClusters_SubsetRestriction verifies rows outside the member list never
// bridge two members: the same matrix clusters differently on a subset.
func TestClusters_SubsetRestriction(t *testing.T) {
	m := rowsOf([2]float64{0, 0}, [2]float64{1, 0}, [2]float64{2, 0})
	opts := cluster.Options{Eps: 1.2, MinSamples: 1}

	full, err := cluster.Clusters(m, []int{0, 1, 2}, opts)
	require.NoError(t, err)
	require.Len(t, full, 1, "middle row bridges the endpoints")

	subset, err := cluster.Clusters(m, []int{0, 2}, opts)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0}, {2}}, subset, "without the bridge the endpoints split")
}

// TestClusters_MemberOrderIrrelevant verifies the caller's member order does
// not change the outcome and the input slice stays untouched.
func TestClusters_MemberOrderIrrelevant(t *testing.T) {
	m := rowsOf([2]float64{0, 0}, [2]float64{0.5, 0}, [2]float64{10, 0})
	opts := cluster.DefaultOptions()

	shuffled := []int{2, 0, 1}
	a, err := cluster.Clusters(m, shuffled, opts)
	require.NoError(t, err)
	b, err := cluster.Clusters(m, []int{0, 1, 2}, opts)
	require.NoError(t, err)

	assert.Equal(t, b, a, "member order must not affect clustering")
	assert.Equal(t, []int{2, 0, 1}, shuffled, "input slice must stay untouched")
}

// TestClusters_EmptyMembers verifies zero members produce zero clusters
// without touching the matrix at all.
func TestClusters_EmptyMembers(t *testing.T) {
	got, err := cluster.Clusters(nil, nil, cluster.DefaultOptions())
	require.NoError(t, err, "an empty element is not an error")
	assert.Nil(t, got, "zero members yield zero clusters")
}

// TestClusters_Validation verifies each sentinel.
func TestClusters_Validation(t *testing.T) {
	m := rowsOf([2]float64{0, 0}, [2]float64{1, 1})

	_, err := cluster.Clusters(m, []int{0}, cluster.Options{Eps: 0, MinSamples: 1})
	assert.ErrorIs(t, err, cluster.ErrEps, "eps == 0 must error")

	_, err = cluster.Clusters(m, []int{0}, cluster.Options{Eps: -1, MinSamples: 1})
	assert.ErrorIs(t, err, cluster.ErrEps, "negative eps must error")

	_, err = cluster.Clusters(m, []int{0}, cluster.Options{Eps: 1, MinSamples: 0})
	assert.ErrorIs(t, err, cluster.ErrMinSamples, "MinSamples < 1 must error")

	_, err = cluster.Clusters(nil, []int{0}, cluster.DefaultOptions())
	assert.ErrorIs(t, err, cluster.ErrEmptyDataset, "nil matrix with members must error")

	_, err = cluster.Clusters(m, []int{5}, cluster.DefaultOptions())
	assert.ErrorIs(t, err, cluster.ErrMemberRange, "out-of-range member must error")

	_, err = cluster.Clusters(m, []int{-1}, cluster.DefaultOptions())
	assert.ErrorIs(t, err, cluster.ErrMemberRange, "negative member must error")
}
