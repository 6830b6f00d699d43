package astar_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/ashotpetrossian/Algorithms/astar"
	"github.com/ashotpetrossian/Algorithms/core"
	"github.com/ashotpetrossian/Algorithms/gridgraph"
	"github.com/ashotpetrossian/Algorithms/heuristic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const E = gridgraph.Empty

// squareEdges is a 4-cycle whose direct edge 0-3 is a trap.
var squareEdges = []core.Edge{
	{From: 0, To: 1, Weight: 1},
	{From: 1, To: 2, Weight: 1},
	{From: 2, To: 3, Weight: 1},
	{From: 0, To: 3, Weight: 5},
}

var squareGrid = [][]int{
	{0, 1},
	{3, 2},
}

// assertValidPath checks endpoints, adjacency and that the weights along
// path add up to cost.
func assertValidPath(t *testing.T, edges []core.Edge, v int, path []int, src, dst int, cost int64) {
	t.Helper()
	g, err := core.FromEdges(v, edges)
	require.NoError(t, err)

	require.NotEmpty(t, path)
	assert.Equal(t, src, path[0])
	assert.Equal(t, dst, path[len(path)-1])

	var sum int64
	for i := 1; i < len(path); i++ {
		w, ok := g.Weight(path[i-1], path[i])
		require.True(t, ok, "no edge %d-%d", path[i-1], path[i])
		sum += w
	}
	assert.Equal(t, cost, sum)
}

func TestSolver_Square(t *testing.T) {
	s, err := astar.NewSolver(4, squareEdges, squareGrid, 0, 3)
	require.NoError(t, err)

	require.True(t, s.Solve())

	cost, err := s.ShortestPath()
	require.NoError(t, err)
	assert.Equal(t, int64(3), cost)

	path, err := s.ReconstructPath()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, path)

	assert.Equal(t, []int{0, 1, 2, 3}, s.Visited())
	assert.Equal(t, astar.Stats{Pushes: 5, Stale: 0, Expanded: 3, Visited: 4}, s.Stats())
	assert.Equal(t, 0, s.Source())
	assert.Equal(t, 3, s.Destination())
	assert.Equal(t, int64(1), s.Heuristic(0))
	assert.Equal(t, int64(0), s.Heuristic(3))
}

func TestNewSolver_Validation(t *testing.T) {
	cases := []struct {
		name  string
		v     int
		edges []core.Edge
		grid  [][]int
		src   int
		dst   int
		want  error
	}{
		{"no vertices", 0, nil, squareGrid, 0, 0, core.ErrInvalidVertexCount},
		{"negative weight", 4, []core.Edge{{From: 0, To: 1, Weight: -1}}, squareGrid, 0, 3, core.ErrNegativeWeight},
		{"edge out of range", 4, []core.Edge{{From: 0, To: 4, Weight: 1}}, squareGrid, 0, 3, core.ErrVertexOutOfRange},
		{"source out of range", 4, squareEdges, squareGrid, -1, 3, core.ErrVertexOutOfRange},
		{"destination out of range", 4, squareEdges, squareGrid, 0, 4, core.ErrVertexOutOfRange},
		{"empty grid", 4, squareEdges, nil, 0, 3, gridgraph.ErrEmptyGrid},
		{"ragged grid", 4, squareEdges, [][]int{{0, 1}, {3}}, 0, 3, gridgraph.ErrNonRectangular},
		{"cell out of range", 4, squareEdges, [][]int{{0, 1}, {3, 9}}, 0, 3, gridgraph.ErrCellOutOfRange},
		{"duplicate cell", 4, squareEdges, [][]int{{0, 1}, {3, 3}}, 0, 3, gridgraph.ErrDuplicateCell},
		{"destination not in grid", 4, squareEdges, [][]int{{0, 1}, {E, 2}}, 0, 3, gridgraph.ErrVertexNotInGrid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := astar.NewSolver(tc.v, tc.edges, tc.grid, tc.src, tc.dst)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewSolver_UnmappedVertex(t *testing.T) {
	grid := [][]int{{0, 1}, {3, E}}

	s, err := astar.NewSolver(4, squareEdges, grid, 0, 3)
	require.NoError(t, err)
	assert.Zero(t, s.Heuristic(2))
	cost, err := s.ShortestPath()
	require.NoError(t, err)
	assert.Equal(t, int64(3), cost)

	s, err = astar.NewSolver(4, squareEdges, grid, 0, 3, astar.WithStrictGrid())
	assert.Nil(t, s)
	assert.ErrorIs(t, err, astar.ErrUnmappedVertex)
}

func TestSolver_Unreachable(t *testing.T) {
	s, err := astar.NewSolver(3, []core.Edge{{From: 0, To: 1, Weight: 1}}, [][]int{{0, 1, 2}}, 0, 2)
	require.NoError(t, err)

	_, err = s.ReconstructPath()
	assert.ErrorIs(t, err, astar.ErrPathNotFound, "before Solve")

	assert.False(t, s.Solve())

	_, err = s.ShortestPath()
	assert.ErrorIs(t, err, astar.ErrNoPath)

	path, err := s.ReconstructPath()
	assert.Nil(t, path)
	assert.ErrorIs(t, err, astar.ErrPathNotFound)
	assert.ElementsMatch(t, []int{0, 1}, s.Visited())
}

func TestSolver_ShortestPathSolvesLazily(t *testing.T) {
	s, err := astar.NewSolver(4, squareEdges, squareGrid, 0, 3)
	require.NoError(t, err)

	cost, err := s.ShortestPath()
	require.NoError(t, err)
	assert.Equal(t, int64(3), cost)

	path, err := s.ReconstructPath()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, path)
}

func TestSolver_Idempotent(t *testing.T) {
	s, err := astar.NewSolver(4, squareEdges, squareGrid, 0, 3)
	require.NoError(t, err)

	require.True(t, s.Solve())
	path1, _ := s.ReconstructPath()
	visited1 := s.Visited()
	stats1 := s.Stats()

	require.True(t, s.Solve())
	path2, _ := s.ReconstructPath()
	assert.Equal(t, path1, path2)
	assert.Equal(t, visited1, s.Visited())
	assert.Equal(t, stats1, s.Stats())
}

func TestSolver_SourceIsDestination(t *testing.T) {
	s, err := astar.NewSolver(4, squareEdges, squareGrid, 2, 2)
	require.NoError(t, err)

	require.True(t, s.Solve())
	cost, err := s.ShortestPath()
	require.NoError(t, err)
	assert.Zero(t, cost)

	path, err := s.ReconstructPath()
	require.NoError(t, err)
	assert.Equal(t, []int{2}, path)
	assert.Equal(t, astar.Stats{Pushes: 1, Visited: 1}, s.Stats())
}

func TestSolver_StaleEntries(t *testing.T) {
	// 2 is first pushed at 5, then improved to 2 via 1; the old entry is stale.
	edges := []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 2, Weight: 5},
		{From: 1, To: 2, Weight: 1},
		{From: 2, To: 3, Weight: 10},
	}
	s, err := astar.NewSolver(4, edges, [][]int{{0, 1, 2, 3}}, 0, 3, astar.WithHeuristic(heuristic.Zero))
	require.NoError(t, err)

	require.True(t, s.Solve())
	cost, _ := s.ShortestPath()
	assert.Equal(t, int64(12), cost)
	assert.Equal(t, 1, s.Stats().Stale)
	assert.Equal(t, []int{0, 1, 2, 3}, s.Visited())
}

func TestSolver_ZeroWeightEdges(t *testing.T) {
	edges := []core.Edge{
		{From: 0, To: 1, Weight: 0},
		{From: 1, To: 2, Weight: 0},
		{From: 0, To: 2, Weight: 1},
	}
	s, err := astar.NewSolver(3, edges, [][]int{{0, 1, 2}}, 0, 2, astar.WithHeuristic(heuristic.Zero))
	require.NoError(t, err)

	cost, err := s.ShortestPath()
	require.NoError(t, err)
	assert.Zero(t, cost)
	path, _ := s.ReconstructPath()
	assert.Equal(t, []int{0, 1, 2}, path)
}

func TestSolver_HeavyWeightsDoNotOverflow(t *testing.T) {
	const big = int64(1) << 62
	edges := []core.Edge{
		{From: 0, To: 1, Weight: big},
		{From: 1, To: 2, Weight: big},
		{From: 0, To: 2, Weight: big + 5},
	}
	s, err := astar.NewSolver(3, edges, [][]int{{0, 1, 2}}, 0, 2)
	require.NoError(t, err)

	cost, err := s.ShortestPath()
	require.NoError(t, err)
	assert.Equal(t, big+5, cost)
}

func TestSolver_Hooks(t *testing.T) {
	var visits []int
	var relaxed [][2]int
	s, err := astar.NewSolver(4, squareEdges, squareGrid, 0, 3,
		astar.WithOnVisit(func(node int, g int64) {
			visits = append(visits, node)
			if node == 3 {
				assert.Equal(t, int64(3), g)
			}
		}),
		astar.WithOnRelax(func(from, to int, _ int64) {
			relaxed = append(relaxed, [2]int{from, to})
		}),
	)
	require.NoError(t, err)
	require.True(t, s.Solve())

	assert.Equal(t, s.Visited(), visits)
	assert.Equal(t, [][2]int{{0, 1}, {0, 3}, {1, 2}, {2, 3}}, relaxed)
}

func TestSolver_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s, err := astar.NewSolver(4, squareEdges, squareGrid, 0, 3, astar.WithLogger(logger))
	require.NoError(t, err)
	s.Solve()
	assert.Contains(t, buf.String(), "destination found")
	assert.Contains(t, buf.String(), "cost=3")

	buf.Reset()
	s, err = astar.NewSolver(3, nil, [][]int{{0, 1, 2}}, 0, 2, astar.WithLogger(logger))
	require.NoError(t, err)
	s.Solve()
	assert.True(t, strings.Contains(buf.String(), "destination cannot be found"))
}

func TestWithHeuristic_NilPanics(t *testing.T) {
	assert.Panics(t, func() { astar.WithHeuristic(nil) })
}

func TestSolver_InputsCopied(t *testing.T) {
	edges := append([]core.Edge(nil), squareEdges...)
	grid := [][]int{{0, 1}, {3, 2}}

	s, err := astar.NewSolver(4, edges, grid, 0, 3)
	require.NoError(t, err)

	edges[0].Weight = 100
	grid[1][0] = E

	cost, err := s.ShortestPath()
	require.NoError(t, err)
	assert.Equal(t, int64(3), cost)
}
