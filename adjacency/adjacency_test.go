package adjacency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wtgraph/adjacency"
)

func triangle(t *testing.T) *adjacency.Adjacency {
	t.Helper()
	adj, err := adjacency.FromAdjacencyList(3, [][]int{{1, 2}, {2}, {0}})
	require.NoError(t, err)
	require.Equal(t, 3, adj.VCount())
	require.Equal(t, 4, adj.ECount())
	return adj
}

func TestAdjacency_Triangle(t *testing.T) {
	adj := triangle(t)

	out0, err := adj.Outgoing(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, out0)

	in2, err := adj.Incoming(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, in2)

	exists, err := adj.EdgeExists(2, 0)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = adj.EdgeExists(0, 0)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestAdjacency_OutgoingIncomingDuality(t *testing.T) {
	adj := triangle(t)
	for u := 0; u < adj.VCount(); u++ {
		out, err := adj.Outgoing(u)
		require.NoError(t, err)
		for _, v := range out {
			in, err := adj.Incoming(v)
			require.NoError(t, err)
			assert.Contains(t, in, u, "outgoing(%d) has %d but incoming(%d) lacks %d", u, v, v, u)
		}
	}
}

func TestAdjacency_EmptyGraph(t *testing.T) {
	adj, err := adjacency.FromAdjacencyList(0, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, adj.VCount())
	assert.Equal(t, 0, adj.ECount())

	_, err = adj.Outgoing(0)
	assert.ErrorIs(t, err, adjacency.ErrVertexOutOfRange)
}

func TestAdjacency_VertexWithNoOutgoingEdges(t *testing.T) {
	adj, err := adjacency.FromAdjacencyList(3, [][]int{{1}, nil, nil})
	require.NoError(t, err)

	out, err := adj.Outgoing(1)
	require.NoError(t, err)
	assert.Empty(t, out)

	in, err := adj.Incoming(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, in)
}

func TestAdjacency_ZeroEdgesIncomingIsEmptyWithoutRankCall(t *testing.T) {
	adj, err := adjacency.FromAdjacencyList(2, [][]int{nil, nil})
	require.NoError(t, err)

	in, err := adj.Incoming(0)
	require.NoError(t, err)
	assert.Empty(t, in)
}

func TestAdjacency_ConstructionErrors(t *testing.T) {
	_, err := adjacency.FromAdjacencyList(2, [][]int{{0}})
	assert.ErrorIs(t, err, adjacency.ErrLengthMismatch)

	_, err = adjacency.FromAdjacencyList(2, [][]int{{5}, nil})
	assert.ErrorIs(t, err, adjacency.ErrNeighborOutOfRange)
}
