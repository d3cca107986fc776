// Package core: Graph method implementations
//
// This file provides thread-safe, O(1) (amortized) operations for vertex
// and edge management on the Graph type defined in types.go.
// Adjacency is stored as a nested map adjacency[u][v] = weight, mirrored for
// both endpoints, so existence, weight lookup and insertion are constant-time.

package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// Vertex returns a snapshot of the vertex stored under id. Its Metadata
// map is a copy; use SetMetadata to change the stored one.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return &Vertex{ID: v.ID, Metadata: copyMetadata(v.Metadata)}, nil
}

// SetMetadata stores value under key in the metadata of vertex id.
// Returns ErrVertexNotFound if id is absent.
// Complexity: O(1).
func (g *Graph) SetMetadata(id, key string, value interface{}) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	v, ok := g.vertices[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	v.Metadata[key] = value

	return nil
}

// MetadataValue returns the metadata stored under key for vertex id.
// Complexity: O(1).
func (g *Graph) MetadataValue(id, key string) (interface{}, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, false
	}
	value, ok := v.Metadata[key]

	return value, ok
}

// AddEdge connects from and to with an undirected edge of the given weight,
// creating missing endpoints. If the pair is already connected its weight is
// replaced. Weights are stored as given; validating them is up to the
// algorithm consuming the graph.
//
// Returns ErrEmptyVertexID or ErrLoopNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	if _, exists := g.adjacency[from][to]; !exists {
		g.edgeCount++
	}
	g.adjacency[from][to] = weight
	g.adjacency[to][from] = weight

	return nil
}

// RemoveEdge deletes the edge between from and to.
// Returns ErrEdgeNotFound if the pair is not connected.
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.adjacency[from][to]; !ok {
		return fmt.Errorf("%w: %s—%s", ErrEdgeNotFound, from, to)
	}
	delete(g.adjacency[from], to)
	delete(g.adjacency[to], from)
	g.edgeCount--

	return nil
}

// HasEdge reports whether from and to are connected.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Weight returns the weight of the edge between from and to.
// Returns ErrEdgeNotFound if the pair is not connected.
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.adjacency[from][to]
	if !ok {
		return 0, fmt.Errorf("%w: %s—%s", ErrEdgeNotFound, from, to)
	}

	return w, nil
}

// Neighbors returns the IDs of all vertices adjacent to id, sorted ascending.
// A self-loop lists id itself.
// Complexity: O(d log d), where d is the degree of id.
func (g *Graph) Neighbors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]string, 0, len(g.adjacency[id]))
	for v := range g.adjacency[id] {
		out = append(out, v)
	}
	sort.Strings(out)

	return out, nil
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V·logV)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns every edge once, ordered by (From, To) with From ≤ To.
// Complexity: O(E·logE)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, g.edgeCount)
	for u, nbrs := range g.adjacency {
		for v, w := range nbrs {
			if u > v {
				continue
			}
			out = append(out, Edge{From: u, To: v, Weight: w})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// VertexCount returns total number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	return g.allowLoops
}

// Clone returns a copy of the Graph with its own vertex and adjacency maps.
// Vertex Metadata maps are copied; the values in them are shared.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	clone := &Graph{
		allowLoops: g.allowLoops,
		vertices:   make(map[string]*Vertex, len(g.vertices)),
		adjacency:  make(map[string]map[string]int64, len(g.adjacency)),
		edgeCount:  g.edgeCount,
	}
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: copyMetadata(v.Metadata)}
	}
	for u, nbrs := range g.adjacency {
		m := make(map[string]int64, len(nbrs))
		for v, w := range nbrs {
			m[v] = w
		}
		clone.adjacency[u] = m
	}

	return clone
}

// addVertexLocked inserts id if absent. Caller holds g.mu for writing.
func (g *Graph) addVertexLocked(id string) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}
	g.adjacency[id] = make(map[string]int64)
}

func copyMetadata(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}
