package overlay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wtgraph/adjacency"
	"github.com/katalvlaran/wtgraph/overlay"
)

// committedAdapter adapts *adjacency.Adjacency to overlay.CommittedView
// for tests: with no committed-removed concept at this layer, SlotCount
// and VCount coincide.
type committedAdapter struct {
	adj *adjacency.Adjacency
}

func (c committedAdapter) VCount() int      { return c.adj.VCount() }
func (c committedAdapter) ECount() int      { return c.adj.ECount() }
func (c committedAdapter) SlotCount() int   { return c.adj.VCount() }
func (c committedAdapter) VertexExists(v int) bool {
	return v >= 0 && v < c.adj.VCount()
}
func (c committedAdapter) Outgoing(v int) ([]int, error) { return c.adj.Outgoing(v) }
func (c committedAdapter) Incoming(v int) ([]int, error) { return c.adj.Incoming(v) }

func triangleOverlay(t *testing.T) *overlay.Overlay {
	t.Helper()
	adj, err := adjacency.FromAdjacencyList(3, [][]int{{1, 2}, {2}, {0}})
	require.NoError(t, err)
	return overlay.New(committedAdapter{adj: adj})
}

func TestOverlay_MirrorsCommittedWhenClean(t *testing.T) {
	ov := triangleOverlay(t)
	assert.Equal(t, 3, ov.VCountUpdated())
	assert.Equal(t, 4, ov.ECountUpdated())
	assert.False(t, ov.Dirty())

	out, err := ov.OutgoingUpdated(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, out)
}

func TestOverlay_AddThenDeleteEdge(t *testing.T) {
	ov := triangleOverlay(t)

	require.NoError(t, ov.AddEdge(1, 0))
	assert.True(t, ov.Dirty())
	assert.Equal(t, 5, ov.ECountUpdated())

	exists, err := ov.EdgeExistsUpdated(1, 0)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, ov.DeleteEdge(1, 0))
	assert.Equal(t, 4, ov.ECountUpdated())

	exists, err = ov.EdgeExistsUpdated(1, 0)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestOverlay_DeleteEdgeNeverCommitted(t *testing.T) {
	ov := triangleOverlay(t)

	require.NoError(t, ov.AddEdge(1, 0))
	require.NoError(t, ov.DeleteEdge(1, 0))

	out, err := ov.OutgoingUpdated(1)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, out)

	in, err := ov.IncomingUpdated(0)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, in)
}

func TestOverlay_AddEdgeDuplicateRejected(t *testing.T) {
	ov := triangleOverlay(t)
	err := ov.AddEdge(0, 1)
	assert.ErrorIs(t, err, overlay.ErrDuplicateEdge)
}

func TestOverlay_DeleteEdgeMissingRejected(t *testing.T) {
	ov := triangleOverlay(t)
	err := ov.DeleteEdge(1, 1)
	assert.ErrorIs(t, err, overlay.ErrEdgeNotFound)

	err = ov.DeleteEdge(0, 0)
	assert.ErrorIs(t, err, overlay.ErrEdgeNotFound)
}

func TestOverlay_AppendVertexThenConnect(t *testing.T) {
	ov := triangleOverlay(t)

	v := ov.AppendVertex()
	assert.Equal(t, 3, v)
	assert.Equal(t, 4, ov.VCountUpdated())
	assert.True(t, ov.VertexExistsUpdated(3))

	require.NoError(t, ov.AddEdge(3, 0))
	out, err := ov.OutgoingUpdated(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, out)

	in, err := ov.IncomingUpdated(0)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, in)
}

func TestOverlay_AddVertexRejectsExisting(t *testing.T) {
	ov := triangleOverlay(t)
	_, err := ov.AddVertex(1)
	assert.ErrorIs(t, err, overlay.ErrVertexExists)
}

func TestOverlay_DeleteVertexPreservesIndexSlot(t *testing.T) {
	ov := triangleOverlay(t)

	require.NoError(t, ov.DeleteVertex(1))
	assert.Equal(t, 2, ov.VCountUpdated())
	assert.False(t, ov.VertexExistsUpdated(1))
	// the slot is still addressable — vertex 2 keeps its own identity.
	assert.True(t, ov.VertexExistsUpdated(2))
	assert.Equal(t, 3, ov.SlotCountUpdated())

	out, err := ov.OutgoingUpdated(0)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, out, "deleting a vertex does not eagerly drop incident edges from the edit log, but updated queries still filter them out")
}

func TestOverlay_ReAddDeletedVertex(t *testing.T) {
	ov := triangleOverlay(t)

	require.NoError(t, ov.DeleteVertex(0))
	assert.False(t, ov.VertexExistsUpdated(0))

	got, err := ov.AddVertex(0)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
	assert.True(t, ov.VertexExistsUpdated(0))
	assert.Equal(t, 3, ov.VCountUpdated())
}

func TestOverlay_GrowthLeavesGapIndicesAbsent(t *testing.T) {
	ov := triangleOverlay(t)

	v, err := ov.AddVertex(5)
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.Equal(t, 6, ov.SlotCountUpdated())

	assert.False(t, ov.VertexExistsUpdated(3))
	assert.False(t, ov.VertexExistsUpdated(4))
	assert.True(t, ov.VertexExistsUpdated(5))
	assert.Equal(t, 4, ov.VCountUpdated())
}

func TestOverlay_VertexEditsSnapshotIsCopy(t *testing.T) {
	ov := triangleOverlay(t)
	require.NoError(t, ov.DeleteVertex(1))

	snap := ov.VertexEdits()
	assert.Equal(t, map[int]bool{1: true}, snap)

	snap[2] = true
	snap2 := ov.VertexEdits()
	assert.NotContains(t, snap2, 2, "mutating a returned snapshot must not affect overlay state")
}

func TestOverlay_Reset(t *testing.T) {
	ov := triangleOverlay(t)
	require.NoError(t, ov.AddEdge(1, 0))
	require.NoError(t, ov.DeleteVertex(2))
	assert.True(t, ov.Dirty())

	ov.Reset(3, 3, 5)
	assert.False(t, ov.Dirty())
	assert.Equal(t, 3, ov.SlotCountUpdated())
	assert.Equal(t, 3, ov.VCountUpdated())
	assert.Equal(t, 5, ov.ECountUpdated())
	assert.Empty(t, ov.VertexEdits())
}
