package weighted_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wtgraph/weighted"
)

func TestWeighted_RoundTripDirected(t *testing.T) {
	g, err := weighted.New[float64](3, [][]int{{}, {}, {}})
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 1, 1.5))
	require.NoError(t, g.AddEdge(1, 2, 2.5))

	w, err := g.WeightUpdated(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.5, w)

	require.NoError(t, g.Commit())

	w, err = g.Weight(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.5, w)

	w, err = g.Weight(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2.5, w)
}

func TestWeighted_EditWeightOverwritesOnCommit(t *testing.T) {
	g := weighted.NewEmpty[int]()
	g.AppendVertex()
	g.AppendVertex()

	require.NoError(t, g.AddEdge(0, 1, 10))
	require.NoError(t, g.Commit())

	w, err := g.Weight(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, w)

	require.NoError(t, g.EditWeight(0, 1, 99))
	require.NoError(t, g.Commit())

	w, err = g.Weight(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 99, w)
}

func TestWeighted_EditWeightRejectsMissingEdge(t *testing.T) {
	g := weighted.NewEmpty[int]()
	g.AppendVertex()
	g.AppendVertex()

	err := g.EditWeight(0, 1, 1)
	assert.ErrorIs(t, err, weighted.ErrEdgeNotFound)
}

func TestWeighted_DeleteEdgeDropsWeight(t *testing.T) {
	g, err := weighted.New[int](2, [][]int{{1}, {}})
	require.NoError(t, err)
	require.NoError(t, g.EditWeight(0, 1, 7))
	require.NoError(t, g.Commit())

	require.NoError(t, g.DeleteEdge(0, 1))
	require.NoError(t, g.Commit())

	_, err = g.Weight(0, 1)
	assert.ErrorIs(t, err, weighted.ErrEdgeNotFound)
}

func TestWeighted_UndirectedRoundTrip(t *testing.T) {
	g, err := weighted.NewUndirected[string](3, [][]int{{1}, {0, 2}, {1}})
	require.NoError(t, err)

	require.NoError(t, g.EditWeight(0, 1, "a"))
	require.NoError(t, g.EditWeight(1, 2, "b"))
	require.NoError(t, g.Commit())

	w, err := g.Weight(0, 1)
	require.NoError(t, err)
	assert.Equal(t, "a", w)
}

func TestWeighted_UndirectedWeightKeyCanonicalizedRegardlessOfCallOrder(t *testing.T) {
	g := weighted.NewUndirectedEmpty[string]()
	g.AppendVertex()
	g.AppendVertex()

	require.NoError(t, g.AddEdge(1, 0, "rev"))
	require.NoError(t, g.Commit())

	w, err := g.Weight(0, 1)
	require.NoError(t, err)
	assert.Equal(t, "rev", w)

	w, err = g.Weight(1, 0)
	require.NoError(t, err)
	assert.Equal(t, "rev", w)
}

func TestWeighted_DiscardDropsWeightEdits(t *testing.T) {
	g, err := weighted.New[int](2, [][]int{{1}, {}})
	require.NoError(t, err)

	require.NoError(t, g.EditWeight(0, 1, 42))
	g.Discard()

	_, err = g.Weight(0, 1)
	assert.ErrorIs(t, err, weighted.ErrEdgeNotFound)
}

func TestWeighted_ShrinkRewritesWeightKeys(t *testing.T) {
	g, err := weighted.New[int](3, [][]int{{1}, {2}, {}})
	require.NoError(t, err)
	require.NoError(t, g.EditWeight(0, 1, 5))
	require.NoError(t, g.EditWeight(1, 2, 9))
	require.NoError(t, g.Commit())

	require.NoError(t, g.DeleteVertex(0))
	require.NoError(t, g.Commit())

	mapping, err := g.Shrink()
	require.NoError(t, err)
	require.Nil(t, mapping[0])
	require.NotNil(t, mapping[1])
	require.NotNil(t, mapping[2])

	w, err := g.Weight(*mapping[1], *mapping[2])
	require.NoError(t, err)
	assert.Equal(t, 9, w)
}
