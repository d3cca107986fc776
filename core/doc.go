// Package core provides a thread-safe, in-memory undirected weighted Graph
// with a minimal API surface: exactly what a shortest-path engine needs to
// read (enumerable vertices, per-vertex adjacency, per-edge weight) plus the
// mutators a graph source needs to build it.
//
// The Graph G = (V,E):
//
//   - Undirected edges, adjacency mirrored as adjacency[u][v] = adjacency[v][u] = w
//   - Integer weights (int64); the graph does not judge their sign
//   - At most one edge per vertex pair; AddEdge on an existing pair replaces the weight
//   - Self-loops only with WithLoops()
//   - A single sync.RWMutex, so concurrent readers never block each other
//
// Deterministic iteration: Vertices(), Neighbors() and Edges() return sorted
// results, which keeps algorithm traces reproducible.
//
// Core Methods:
//
//	AddVertex(id string) error                    // O(1)
//	HasVertex(id string) bool                     // O(1)
//	Vertex(id string) (*Vertex, error)            // O(m), snapshot copy
//	SetMetadata(id, key string, value any) error  // O(1)
//	MetadataValue(id, key string) (any, bool)     // O(1)
//	AddEdge(from, to string, weight int64) error  // O(1)
//	RemoveEdge(from, to string) error             // O(1)
//	HasEdge(from, to string) bool                 // O(1)
//	Weight(from, to string) (int64, error)        // O(1)
//	Neighbors(id string) ([]string, error)        // O(d·log d)
//	Vertices() []string                           // O(V·log V)
//	Edges() []Edge                                // O(E·log E)
//	VertexCount() int / EdgeCount() int           // O(1)
//	Clone() *Graph                                // O(V+E)
package core
