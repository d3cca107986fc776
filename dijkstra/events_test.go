package dijkstra_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathtrace/core"
	"github.com/katalvlaran/pathtrace/dijkstra"
)

type step struct {
	Node  string
	Edge  [2]string
	Final bool
}

func steps(events []dijkstra.Event) []step {
	out := make([]step, len(events))
	for i, ev := range events {
		out[i] = step{Node: ev.Node, Edge: ev.Edge, Final: ev.Final}
	}

	return out
}

func TestComputeWithEvents_Chronology(t *testing.T) {
	routes, events, err := dijkstra.ComputeWithEvents(buildLetters(t), "A")
	require.NoError(t, err)

	plain, err := dijkstra.Compute(buildLetters(t), "A")
	require.NoError(t, err)
	assert.Equal(t, plain, routes, "event recording must not change the result")

	want := []step{
		{Node: "A", Edge: [2]string{"A", "B"}},
		{Node: "A", Edge: [2]string{"A", "C"}},
		{Node: "A", Edge: [2]string{"A", "D"}},
		{Node: "C", Edge: [2]string{"C", "B"}},
		{Node: "C", Edge: [2]string{"C", "F"}},
		{Node: "D", Edge: [2]string{"D", "F"}},
		{Node: "F", Edge: [2]string{"F", "E"}},
		{Node: "B", Edge: [2]string{"B", "E"}},
		{Node: "E", Edge: [2]string{"E", "F"}, Final: true},
	}
	if diff := cmp.Diff(want, steps(events)); diff != "" {
		t.Fatalf("unexpected event sequence (-want +got):\n%s", diff)
	}
	for i, ev := range events {
		assert.Equal(t, i, ev.Step)
	}
}

func TestComputeWithEvents_SnapshotsAreSelfConsistent(t *testing.T) {
	_, events, err := dijkstra.ComputeWithEvents(buildLetters(t), "A")
	require.NoError(t, err)
	require.Len(t, events, 9)

	// While A is being expanded nothing has been recorded yet.
	for _, ev := range events[:3] {
		for _, r := range ev.Routes {
			assert.Equal(t, dijkstra.Infinity, r.Score, "step %d vertex %s", ev.Step, r.Node)
		}
	}

	a, ok := events[3].Route("A")
	require.True(t, ok)
	assert.Equal(t, dijkstra.Route{Node: "A", Score: 0, Through: "A"}, a)
	c, ok := events[3].Route("C")
	require.True(t, ok)
	assert.Equal(t, dijkstra.Infinity, c.Score, "C is recorded only after its own expansion")

	f, ok := events[7].Route("F")
	require.True(t, ok)
	assert.Equal(t, dijkstra.Route{Node: "F", Score: 6, Through: "C"}, f)

	final := events[len(events)-1]
	assert.Equal(t, map[dijkstra.Label]int64{
		{Node: "A", Through: "A"}: 0,
		{Node: "B", Through: "A"}: 7,
		{Node: "C", Through: "A"}: 3,
		{Node: "D", Through: "A"}: 5,
		{Node: "E", Through: "F"}: 9,
		{Node: "F", Through: "C"}: 6,
	}, final.Labels())

	_, ok = final.Route("Q")
	assert.False(t, ok)
}

func TestComputeWithEvents_SnapshotsAreIndependentCopies(t *testing.T) {
	_, events, err := dijkstra.ComputeWithEvents(buildLetters(t), "A")
	require.NoError(t, err)

	events[0].Routes[0].Score = 42
	assert.Equal(t, dijkstra.Infinity, events[1].Routes[0].Score)
	assert.Equal(t, int64(0), events[len(events)-1].Routes[0].Score)
}

func TestComputeWithEvents_ScoresNeverIncrease(t *testing.T) {
	_, events, err := dijkstra.ComputeWithEvents(buildLetters(t), "A")
	require.NoError(t, err)

	for i := 1; i < len(events); i++ {
		for j, r := range events[i].Routes {
			prev := events[i-1].Routes[j]
			require.Equal(t, prev.Node, r.Node)
			assert.LessOrEqual(t, r.Score, prev.Score, "step %d vertex %s", i, r.Node)
		}
	}
}

func TestComputeWithEvents_PruningKeepsEvents(t *testing.T) {
	_, plain, err := dijkstra.ComputeWithEvents(buildLetters(t), "A")
	require.NoError(t, err)
	_, pruned, err := dijkstra.ComputeWithEvents(buildLetters(t), "A", dijkstra.WithPruning())
	require.NoError(t, err)
	assert.Equal(t, plain, pruned)
}

func TestComputeWithEvents_SingleVertexEmitsOnlyFinal(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))

	routes, events, err := dijkstra.ComputeWithEvents(g, "A")
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Route{Node: "A", Score: 0, Through: "A"}, routes["A"])
	require.Len(t, events, 1)
	assert.True(t, events[0].Final)
	assert.Equal(t, "A", events[0].Node)
	assert.Equal(t, [2]string{}, events[0].Edge)
}

func TestComputeWithEvents_Disconnected(t *testing.T) {
	routes, events, err := dijkstra.ComputeWithEvents(buildTwoIslands(t), "A")
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Infinity, routes["X"].Score)
	assert.Equal(t, []step{
		{Node: "A", Edge: [2]string{"A", "B"}},
		{Node: "B", Edge: [2]string{"B", "A"}, Final: true},
	}, steps(events))
}

func TestComputeWithEvents_SaturatedCandidatesAreNotPushed(t *testing.T) {
	build := func() *core.Graph {
		g := core.NewGraph()
		require.NoError(t, g.AddEdge("A", "B", dijkstra.Infinity-1))
		require.NoError(t, g.AddEdge("B", "C", 10))
		require.NoError(t, g.AddEdge("C", "D", 1))

		return g
	}

	var plainStats, prunedStats dijkstra.Stats
	plainRoutes, plain, err := dijkstra.ComputeWithEvents(build(), "A", dijkstra.WithStats(&plainStats))
	require.NoError(t, err)
	prunedRoutes, pruned, err := dijkstra.ComputeWithEvents(build(), "A", dijkstra.WithStats(&prunedStats), dijkstra.WithPruning())
	require.NoError(t, err)

	assert.Equal(t, []step{
		{Node: "A", Edge: [2]string{"A", "B"}},
		{Node: "B", Edge: [2]string{"B", "C"}},
		{Node: "B", Edge: [2]string{"B", "C"}, Final: true},
	}, steps(plain))
	if diff := cmp.Diff(plain, pruned); diff != "" {
		t.Fatalf("pruning changed the event log (-plain +pruned):\n%s", diff)
	}
	assert.Equal(t, plainRoutes, prunedRoutes)
	assert.Equal(t, plainStats, prunedStats)

	assert.Equal(t, dijkstra.Route{Node: "C", Score: dijkstra.Infinity, Through: "C"}, plainRoutes["C"])
	assert.Equal(t, dijkstra.Route{Node: "D", Score: dijkstra.Infinity, Through: "D"}, plainRoutes["D"])
	assert.Equal(t, 2, plainStats.Pushes)
}

func TestComputeWithEvents_FinalEdgeTouchesFinalNode(t *testing.T) {
	_, events, err := dijkstra.ComputeWithEvents(buildLetters(t), "A")
	require.NoError(t, err)

	last := events[len(events)-1]
	require.True(t, last.Final)
	assert.Equal(t, last.Node, last.Edge[0])
	assert.Contains(t, last.Routes, dijkstra.Route{Node: last.Node, Score: 9, Through: "F"})
}
