package report_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/obstacles"
	"github.com/katalvlaran/gridpath/report"
)

func search(t *testing.T, values [][]int, start, goal gridgraph.Cell) (*gridgraph.Grid, astar.Result) {
	t.Helper()
	g, err := gridgraph.New(values)
	require.NoError(t, err)
	e, err := astar.New(g)
	require.NoError(t, err)
	res, err := e.Search(start, goal)
	require.NoError(t, err)

	return g, res
}

func TestBuild_Reached(t *testing.T) {
	start, goal := gridgraph.C(0, 0), gridgraph.C(9, 9)
	g, res := search(t, obstacles.Warehouse(), start, goal)

	rep := report.Build(g, res, start, goal)
	assert.Equal(t, astar.Reached, rep.Status)
	assert.Equal(t, 12, rep.Steps)
	assert.False(t, rep.HasHint)
	assert.Empty(t, rep.Clearance)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, rep))
	assert.Equal(t,
		"The number of steps is: 12\n"+
			"The vehicle will take the following path: [(0,0) (1,1) (2,2) (3,3) (4,4) (5,5) (6,6) (7,5) (8,5) (9,6) (9,7) (9,8) (9,9)]\n",
		buf.String())
}

func TestBuild_IterationCap(t *testing.T) {
	values := obstacles.Empty(10, 10)
	values[8][8], values[8][9], values[9][8] = 1, 1, 1
	start, goal := gridgraph.C(0, 0), gridgraph.C(9, 9)
	g, res := search(t, values, start, goal)
	require.Equal(t, astar.FailedIterationCap, res.Status)

	rep := report.Build(g, res, start, goal)
	require.True(t, rep.HasHint)
	assert.Equal(t, res.Path[len(res.Path)-2], rep.Hint)
	require.Len(t, rep.Clearance, 1)
	assert.Contains(t, []gridgraph.Cell{{Row: 8, Col: 8}, {Row: 8, Col: 9}, {Row: 9, Col: 8}}, rep.Clearance[0])

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, rep))
	out := buf.String()
	assert.Contains(t, out, "Unable to reach delivery point (9,9) from (0,0) (failed-iteration-cap after 50 expansions)")
	assert.Contains(t, out, "Partial path: [(0,0)")
	assert.Contains(t, out, "Please remove obstacle located at point "+rep.Hint.String())
	assert.Contains(t, out, "Clearing 1 obstacle(s) opens a route")
}

func TestBuild_Unreachable(t *testing.T) {
	values := obstacles.Empty(4, 4)
	for r := range values {
		values[r][2] = 1
	}
	start, goal := gridgraph.C(0, 0), gridgraph.C(0, 3)
	g, res := search(t, values, start, goal)
	require.Equal(t, astar.FailedUnreachable, res.Status)

	rep := report.Build(g, res, start, goal)
	assert.False(t, rep.HasHint, "no partial trace, no hint")
	require.Len(t, rep.Clearance, 1)
	assert.Equal(t, 2, rep.Clearance[0].Col)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, rep))
	assert.NotContains(t, buf.String(), "Partial path")
	assert.NotContains(t, buf.String(), "Please remove")
}

func TestHint(t *testing.T) {
	_, ok := report.Hint(nil)
	assert.False(t, ok)

	c, ok := report.Hint([]gridgraph.Cell{{Row: 1, Col: 1}})
	assert.True(t, ok)
	assert.Equal(t, gridgraph.C(1, 1), c)

	c, ok = report.Hint([]gridgraph.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}})
	assert.True(t, ok)
	assert.Equal(t, gridgraph.C(1, 1), c)
}

func TestRender(t *testing.T) {
	g := gridgraph.MustNew([][]int{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})
	path := []gridgraph.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 2}}

	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, g, path, gridgraph.C(0, 0), gridgraph.C(2, 2)))
	assert.Equal(t, "S * .\n. # *\n. . G\n", buf.String())
}

func TestRender_Color(t *testing.T) {
	g := gridgraph.MustNew([][]int{{0, 1}})

	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, g, nil, gridgraph.C(0, 0), gridgraph.C(0, 0), report.WithColor()))
	out := buf.String()
	assert.Contains(t, out, "S")
	assert.Contains(t, out, "#")
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\n")))
}
