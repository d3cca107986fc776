package dijkstra_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathtrace/builder"
	"github.com/katalvlaran/pathtrace/core"
	"github.com/katalvlaran/pathtrace/dijkstra"
)

// randomGraph samples G(n,p) with weights in [0,9] for a fixed seed.
func randomGraph(t testing.TB, n int, p float64, seed int64) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithWeightFn(builder.UniformWeightFn(0, 9)),
		},
		builder.RandomSparse(n, p),
	)
	require.NoError(t, err)

	return g
}

// bellmanFord is a slow reference solver: relax every edge V-1 times.
func bellmanFord(g *core.Graph, start string) map[string]int64 {
	dist := make(map[string]int64)
	for _, v := range g.Vertices() {
		dist[v] = dijkstra.Infinity
	}
	dist[start] = 0
	edges := g.Edges()
	for i := 1; i < g.VertexCount(); i++ {
		for _, e := range edges {
			if dist[e.From] != dijkstra.Infinity && dist[e.From]+e.Weight < dist[e.To] {
				dist[e.To] = dist[e.From] + e.Weight
			}
			if dist[e.To] != dijkstra.Infinity && dist[e.To]+e.Weight < dist[e.From] {
				dist[e.From] = dist[e.To] + e.Weight
			}
		}
	}

	return dist
}

func TestCompute_Properties(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		// Sparse enough that some graphs are disconnected.
		g := randomGraph(t, 15, 0.15, seed)
		start := "0"

		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			routes, err := dijkstra.Compute(g, start)
			require.NoError(t, err)
			require.Len(t, routes, g.VertexCount())

			ref := bellmanFord(g, start)
			assert.Equal(t, int64(0), routes[start].Score)

			for id, r := range routes {
				require.Equal(t, id, r.Node)
				assert.Equal(t, ref[id], r.Score, "distance of %s", id)

				if !r.Reachable() {
					assert.Equal(t, id, r.Through, "unreachable %s keeps itself as predecessor", id)
					continue
				}

				path, dist, err := dijkstra.PathTo(routes, id)
				require.NoError(t, err)
				require.Equal(t, start, path[0])
				require.Equal(t, id, path[len(path)-1])
				assert.Equal(t, r.Score, dist)

				// Path weight equals distance, and distances never decrease outward.
				var total int64
				for i := 1; i < len(path); i++ {
					w, err := g.Weight(path[i-1], path[i])
					require.NoError(t, err)
					total += w
					assert.LessOrEqual(t, routes[path[i-1]].Score, routes[path[i]].Score)
				}
				assert.Equal(t, r.Score, total, "path weight to %s", id)
			}

			pruned, err := dijkstra.Compute(g, start, dijkstra.WithPruning())
			require.NoError(t, err)
			assert.Equal(t, routes, pruned)
		})
	}
}
