// Package core defines the Graph, Vertex and Edge types consumed by the
// shortest-path engine, and provides thread-safe primitives for building
// and querying undirected, weighted graphs.
//
// All core APIs guard state with a single sync.RWMutex, so one Graph can be
// shared read-only between any number of concurrent queries.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrEdgeNotFound    - requested edge does not exist.
//	ErrLoopNotAllowed  - self-loop when loops are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Vertex represents a node in the graph.
//
// Metadata stores arbitrary key-value data (positions for a visualizer,
// labels, ...). Graph hands out copies of it; writes go through
// SetMetadata so they happen under the graph's lock.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data.
	Metadata map[string]interface{}
}

// Edge is an undirected connection between two vertices.
//
// From and To keep the order the edge was added in; the edge is traversable
// both ways.
type Edge struct {
	From   string
	To     string
	Weight int64
}

// Other returns the endpoint of e opposite to id.
func (e Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an in-memory undirected weighted graph.
//
// Between any unordered pair of vertices there is at most one edge; adding
// the same pair again replaces its weight.
// mu protects vertices and adjacency.
type Graph struct {
	mu sync.RWMutex

	allowLoops bool

	vertices map[string]*Vertex

	// adjacency[u][v] = weight, mirrored as adjacency[v][u].
	adjacency map[string]map[string]int64

	edgeCount int
}

// NewGraph creates an empty Graph. By default self-loops are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string]map[string]int64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
