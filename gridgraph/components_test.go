// File: gridgraph/components_test.go
package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// TestComponents_Separated checks three free regions split by a cross of obstacles.
//
//	. # .
//	# # .
//	. # .
func TestComponents_Separated(t *testing.T) {
	g := gridgraph.MustNew([][]int{
		{0, 1, 0},
		{1, 1, 0},
		{0, 1, 0},
	})

	comps := g.Components()
	require.Len(t, comps, 3)
	assert.Equal(t, []gridgraph.Cell{{0, 0}}, comps[0])
	assert.Equal(t, []gridgraph.Cell{{0, 2}, {1, 2}, {2, 2}}, comps[1])
	assert.Equal(t, []gridgraph.Cell{{2, 0}}, comps[2])

	assert.Equal(t, 1, g.ComponentOf(gridgraph.C(2, 2)))
	assert.Equal(t, -1, g.ComponentOf(gridgraph.C(1, 1)))
	assert.Equal(t, -1, g.ComponentOf(gridgraph.C(9, 9)))
}

// TestComponents_DiagonalJoin verifies that a diagonal gap connects regions.
//
//	. #
//	# .
func TestComponents_DiagonalJoin(t *testing.T) {
	g := gridgraph.MustNew([][]int{
		{0, 1},
		{1, 0},
	})
	comps := g.Components()
	require.Len(t, comps, 1)
	assert.ElementsMatch(t, []gridgraph.Cell{{0, 0}, {1, 1}}, comps[0])
	assert.True(t, g.Connected(gridgraph.C(0, 0), gridgraph.C(1, 1)))
}

// TestComponents_AllBlocked returns no components.
func TestComponents_AllBlocked(t *testing.T) {
	g := gridgraph.MustNew([][]int{{1, 1}, {1, 1}})
	assert.Empty(t, g.Components())
}

// TestConnected covers same cell, blocked endpoints and an enclosed goal.
func TestConnected(t *testing.T) {
	g := gridgraph.MustNew([][]int{
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 1, 1},
		{0, 0, 0, 1, 0},
	})

	assert.True(t, g.Connected(gridgraph.C(0, 0), gridgraph.C(0, 0)))
	assert.True(t, g.Connected(gridgraph.C(0, 0), gridgraph.C(3, 2)))
	assert.False(t, g.Connected(gridgraph.C(0, 0), gridgraph.C(3, 4)), "corner pocket is walled off")
	assert.False(t, g.Connected(gridgraph.C(0, 0), gridgraph.C(2, 3)), "blocked endpoint")
	assert.False(t, g.Connected(gridgraph.C(-1, 0), gridgraph.C(0, 0)), "out of bounds endpoint")
}
