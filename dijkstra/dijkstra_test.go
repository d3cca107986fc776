// Package dijkstra_test contains unit tests for the shortest-path engine.
// These tests validate input checking, the reference scenarios, termination
// on disconnected graphs and edge cases such as single-vertex and
// self-loop graphs.
package dijkstra_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathtrace/builder"
	"github.com/katalvlaran/pathtrace/core"
	"github.com/katalvlaran/pathtrace/dijkstra"
)

// buildLetters constructs the six-vertex reference graph:
//
//	A—B(7), A—C(3), A—D(5), B—E(3), C—B(4), C—F(3), D—F(2), F—E(3)
func buildLetters(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range []core.Edge{
		{From: "A", To: "B", Weight: 7},
		{From: "A", To: "C", Weight: 3},
		{From: "A", To: "D", Weight: 5},
		{From: "B", To: "E", Weight: 3},
		{From: "C", To: "B", Weight: 4},
		{From: "C", To: "F", Weight: 3},
		{From: "D", To: "F", Weight: 2},
		{From: "F", To: "E", Weight: 3},
	} {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Weight))
	}

	return g
}

// buildTwoIslands constructs {A—B(1)} and {X—Y(1)} with no bridge.
func buildTwoIslands(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("X", "Y", 1))

	return g
}

func scores(routes map[string]dijkstra.Route) map[string]int64 {
	out := make(map[string]int64, len(routes))
	for id, r := range routes {
		out[id] = r.Score
	}

	return out
}

// ------------------------------------------------------------------------
// 1. Validation: errors are returned before any state is built.
// ------------------------------------------------------------------------

func TestCompute_NilGraph(t *testing.T) {
	routes, err := dijkstra.Compute(nil, "A")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
	assert.Nil(t, routes)
}

func TestCompute_UnknownStartNode(t *testing.T) {
	g := buildLetters(t)

	routes, err := dijkstra.Compute(g, "Z")
	require.ErrorIs(t, err, dijkstra.ErrUnknownStartNode)
	assert.Nil(t, routes)

	_, err = dijkstra.Compute(g, "")
	require.ErrorIs(t, err, dijkstra.ErrUnknownStartNode)

	_, events, err := dijkstra.ComputeWithEvents(core.NewGraph(), "A")
	require.ErrorIs(t, err, dijkstra.ErrUnknownStartNode)
	assert.Nil(t, events)
}

func TestCompute_NegativeWeightDetectedEarly(t *testing.T) {
	g := buildLetters(t)
	require.NoError(t, g.AddEdge("E", "X", -5))

	routes, err := dijkstra.Compute(g, "A")
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	assert.Contains(t, err.Error(), "weight=-5")
	assert.Nil(t, routes)
}

// ------------------------------------------------------------------------
// 2. Reference scenarios.
// ------------------------------------------------------------------------

func TestCompute_LettersScenario(t *testing.T) {
	routes, err := dijkstra.Compute(buildLetters(t), "A")
	require.NoError(t, err)

	want := map[string]int64{"A": 0, "B": 7, "C": 3, "D": 5, "E": 9, "F": 6}
	if diff := cmp.Diff(want, scores(routes)); diff != "" {
		t.Fatalf("unexpected distances (-want +got):\n%s", diff)
	}

	assert.Equal(t, "A", routes["A"].Through)
	assert.Equal(t, "A", routes["C"].Through)
	assert.Equal(t, "A", routes["D"].Through)
	assert.Equal(t, "C", routes["F"].Through)
	assert.Equal(t, "F", routes["E"].Through, "E must come via F (9), not B (10)")
	// B ties at 7 via A or via C; either is a shortest path.
	assert.Contains(t, []string{"A", "C"}, routes["B"].Through)
}

func TestCompute_TieBreaksByPushOrder(t *testing.T) {
	routes, err := dijkstra.Compute(buildLetters(t), "A")
	require.NoError(t, err)
	// A pushes B(7) before C relaxes B to 7, so the earlier candidate wins.
	assert.Equal(t, dijkstra.Route{Node: "B", Score: 7, Through: "A"}, routes["B"])
}

func TestCompute_DisconnectedTerminates(t *testing.T) {
	routes, err := dijkstra.Compute(buildTwoIslands(t), "A")
	require.NoError(t, err)

	want := map[string]dijkstra.Route{
		"A": {Node: "A", Score: 0, Through: "A"},
		"B": {Node: "B", Score: 1, Through: "A"},
		"X": {Node: "X", Score: dijkstra.Infinity, Through: "X"},
		"Y": {Node: "Y", Score: dijkstra.Infinity, Through: "Y"},
	}
	if diff := cmp.Diff(want, routes); diff != "" {
		t.Fatalf("unexpected routes (-want +got):\n%s", diff)
	}
	assert.False(t, routes["X"].Reachable())
}

func TestCompute_IsolatedVertices(t *testing.T) {
	g := buildLetters(t)
	require.NoError(t, g.AddVertex("Lonely"))

	routes, err := dijkstra.Compute(g, "Lonely")
	require.NoError(t, err)
	assert.Equal(t, int64(0), routes["Lonely"].Score)
	for _, id := range []string{"A", "B", "C", "D", "E", "F"} {
		assert.Equal(t, dijkstra.Route{Node: id, Score: dijkstra.Infinity, Through: id}, routes[id])
	}
}

// ------------------------------------------------------------------------
// 3. Edge cases: single vertex, self-loop, zero weights, huge weights.
// ------------------------------------------------------------------------

func TestCompute_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))

	routes, err := dijkstra.Compute(g, "A")
	require.NoError(t, err)
	assert.Equal(t, map[string]dijkstra.Route{"A": {Node: "A", Score: 0, Through: "A"}}, routes)
}

func TestCompute_SelfLoop(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	require.NoError(t, g.AddEdge("X", "X", 0))
	require.NoError(t, g.AddEdge("X", "Y", 2))
	require.NoError(t, g.AddEdge("Y", "Y", 5))

	routes, err := dijkstra.Compute(g, "X")
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Route{Node: "X", Score: 0, Through: "X"}, routes["X"])
	assert.Equal(t, dijkstra.Route{Node: "Y", Score: 2, Through: "X"}, routes["Y"])
}

func TestCompute_ZeroWeightEdges(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("B", "C", 0))
	require.NoError(t, g.AddEdge("A", "C", 1))

	routes, err := dijkstra.Compute(g, "A")
	require.NoError(t, err)
	assert.Equal(t, int64(0), routes["C"].Score)
	assert.Equal(t, "B", routes["C"].Through)
}

func TestCompute_SaturatesInsteadOfOverflowing(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", dijkstra.Infinity-1))
	require.NoError(t, g.AddEdge("B", "C", 10))

	routes, err := dijkstra.Compute(g, "A")
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Infinity-1, routes["B"].Score)
	assert.Equal(t, dijkstra.Infinity, routes["C"].Score, "sum must not wrap negative")
}

func TestCompute_PathGraph(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{
		builder.WithWeightFn(builder.ConstantWeightFn(2)),
	}, builder.Path(50))
	require.NoError(t, err)

	routes, err := dijkstra.Compute(g, "0")
	require.NoError(t, err)
	require.Len(t, routes, 50)
	assert.Equal(t, dijkstra.Route{Node: "49", Score: 98, Through: "48"}, routes["49"])

	path, dist, err := dijkstra.PathTo(routes, "10")
	require.NoError(t, err)
	assert.Equal(t, int64(20), dist)
	assert.Len(t, path, 11)
}

// ------------------------------------------------------------------------
// 4. Options.
// ------------------------------------------------------------------------

func TestCompute_StatsAndPruning(t *testing.T) {
	var plain, pruned dijkstra.Stats

	r1, err := dijkstra.Compute(buildLetters(t), "A", dijkstra.WithStats(&plain))
	require.NoError(t, err)
	r2, err := dijkstra.Compute(buildLetters(t), "A", dijkstra.WithStats(&pruned), dijkstra.WithPruning())
	require.NoError(t, err)

	assert.Equal(t, r1, r2)
	assert.Equal(t, dijkstra.Stats{Pushes: 9, Pops: 8, StaleSkips: 2, Relaxations: 8, Finalized: 6}, plain)
	assert.Equal(t, dijkstra.Stats{Pushes: 6, Pops: 6, StaleSkips: 0, Relaxations: 8, Finalized: 6}, pruned)
}

func TestCompute_Idempotent(t *testing.T) {
	g := buildLetters(t)
	first, err := dijkstra.Compute(g, "A")
	require.NoError(t, err)
	second, err := dijkstra.Compute(g, "A")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCompute_DoesNotMutateGraph(t *testing.T) {
	g := buildLetters(t)
	before := g.Edges()
	_, _, err := dijkstra.ComputeWithEvents(g, "A", dijkstra.WithPruning())
	require.NoError(t, err)
	assert.Equal(t, before, g.Edges())
	assert.Equal(t, 6, g.VertexCount())
}
