// Package dijkstra defines core types and configuration options
// for the single-source shortest-path engine.
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the provided graph is nil.
//	– ErrUnknownStartNode  if the start vertex is empty or absent from the graph.
//	– ErrNegativeWeight    if a negative edge weight is detected in the graph.
//	– ErrVertexNotFound    if PathTo is asked about a vertex outside the route table.
//	– ErrUnreachable       if PathTo is asked about a vertex at infinite distance.
//	– ErrBrokenPath        if a route table's predecessor chain does not lead back to a start.
package dijkstra

import (
	"errors"
	"math"
	"sort"

	"go.uber.org/zap"
)

// Infinity is the score of a vertex that has not been reached.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by the engine.
var (
	// ErrNilGraph indicates that a nil graph was passed to Compute.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnknownStartNode indicates that the start vertex does not exist in the graph.
	// It is reported before any state is built.
	ErrUnknownStartNode = errors.New("dijkstra: start vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrVertexNotFound indicates that PathTo was asked about an unknown vertex.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in routes")

	// ErrUnreachable indicates that the target vertex has no finite route.
	ErrUnreachable = errors.New("dijkstra: vertex is unreachable from start")

	// ErrBrokenPath indicates a predecessor chain that loops or dangles.
	ErrBrokenPath = errors.New("dijkstra: predecessor chain is broken")
)

// Graph is the read-only view of a weighted undirected graph the engine
// needs. *core.Graph satisfies it. Implementations must be safe for
// concurrent readers if they are shared by ComputeMany.
type Graph interface {
	// Vertices enumerates every vertex ID.
	Vertices() []string
	// HasVertex reports whether id is a vertex.
	HasVertex(id string) bool
	// Neighbors lists the vertices adjacent to id.
	Neighbors(id string) ([]string, error)
	// Weight returns the weight of the edge between u and v.
	Weight(u, v string) (int64, error)
}

// Route is the best known way to reach Node: cumulative Score from the
// start, arriving Through the predecessor. An unreached Node has
// Score == Infinity and Through == Node.
type Route struct {
	Node    string `json:"node"`
	Score   int64  `json:"score"`
	Through string `json:"through"`
}

// Reachable reports whether r holds a finite distance.
func (r Route) Reachable() bool { return r.Score != Infinity }

// Label keys one entry of an Event snapshot: a vertex and its recorded predecessor.
type Label struct {
	Node    string
	Through string
}

// Event is an immutable record of one relaxation step, produced in
// chronological order by ComputeWithEvents for an external visualizer.
//
// Routes is a copy of the whole route table at the moment of the event,
// sorted by Node; nothing that happens after the event is visible in it.
// Edge is the relaxed edge {expanded, neighbor}. The closing event has
// Final set; its Node is the last expanded vertex and its Edge pairs that
// vertex with its last neighbor in adjacency order, so the edge is always
// incident to Node. Edge is empty when that vertex has no neighbors.
type Event struct {
	Step   int       `json:"step"`
	Node   string    `json:"node"`
	Edge   [2]string `json:"edge"`
	Routes []Route   `json:"routes"`
	Final  bool      `json:"final,omitempty"`
}

// Labels returns the snapshot as a (node, through) → score map.
func (e Event) Labels() map[Label]int64 {
	out := make(map[Label]int64, len(e.Routes))
	for _, r := range e.Routes {
		out[Label{Node: r.Node, Through: r.Through}] = r.Score
	}

	return out
}

// Route looks up id in the snapshot.
func (e Event) Route(id string) (Route, bool) {
	i := sort.Search(len(e.Routes), func(i int) bool { return e.Routes[i].Node >= id })
	if i < len(e.Routes) && e.Routes[i].Node == id {
		return e.Routes[i], true
	}

	return Route{}, false
}

// Stats counts the work done by one run.
type Stats struct {
	Pushes      int // candidates pushed onto the queue, seed included
	Pops        int // candidates popped
	StaleSkips  int // pops discarded because the vertex was already final
	Relaxations int // (expanded, neighbor) pairs examined
	Finalized   int // vertices moved into the visited set
}

// Options configures the engine.
type Options struct {
	// Pruning pushes a candidate only if it beats the best candidate pushed
	// so far for that vertex. Routes and events are identical either way.
	Pruning bool

	// Logger receives a debug summary of every run. Default zap.NewNop().
	Logger *zap.Logger

	// Concurrency is the worker limit for ComputeMany; ≤ 0 means runtime.NumCPU().
	Concurrency int

	// Stats, if non-nil, is filled with run counters. ComputeMany ignores it.
	Stats *Stats
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// WithPruning skips pushing candidates that cannot improve on an earlier one.
func WithPruning() Option {
	return func(o *Options) {
		o.Pruning = true
	}
}

// WithLogger sets the logger used for run summaries. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithConcurrency bounds the number of queries ComputeMany runs at once.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		o.Concurrency = n
	}
}

// WithStats makes the run record its counters into s.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		o.Stats = s
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
// no pruning, a no-op logger, NumCPU concurrency and no stats sink.
func DefaultOptions() Options {
	return Options{
		Pruning:     false,
		Logger:      zap.NewNop(),
		Concurrency: 0,
		Stats:       nil,
	}
}

func resolveOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
