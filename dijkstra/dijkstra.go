// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted,
// undirected graphs.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is finalized at most once.
//   - Each relaxation may push a new entry into the heap: up to 2E pushes.
//   - Space: O(V + E)
//   - O(V) for the route table and visited set.
//   - O(E) worst-case for entries in the heap under lazy deletion.
//
// Notes on implementation choices:
//
//   - An upfront scan of all edges (O(E)) rejects negative weights before any state is built.
//   - The heap has no decrease-key. Duplicate candidates are pushed and skipped
//     on pop once their vertex is final.
//   - The loop ends when the heap runs dry, so vertices that nothing ever
//     reaches do not hold it open. They keep an infinite score.
//   - Candidates with equal scores pop in push order.
//   - A candidate whose score saturates at Infinity is never pushed. It could
//     not improve any route, and the vertex stays unreachable.
package dijkstra

import (
	"container/heap"
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// Compute returns, for every vertex of g, its best Route from start.
//
// Vertices unreachable from start keep Score == Infinity and Through == the
// vertex itself.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain start (ErrUnknownStartNode).
//  3. No edge in g can have negative weight (ErrNegativeWeight).
//
// No partial result is returned alongside an error.
func Compute(g Graph, start string, opts ...Option) (map[string]Route, error) {
	r, err := newRunner(g, start, resolveOptions(opts), false)
	if err != nil {
		return nil, err
	}
	if err = r.process(); err != nil {
		return nil, err
	}

	return r.routes, nil
}

// ComputeWithEvents runs the same algorithm as Compute and additionally
// returns the chronological log of relaxation events: one per examined
// (expanded, neighbor) pair, then one Final event.
func ComputeWithEvents(g Graph, start string, opts ...Option) (map[string]Route, []Event, error) {
	r, err := newRunner(g, start, resolveOptions(opts), true)
	if err != nil {
		return nil, nil, err
	}
	if err = r.process(); err != nil {
		return nil, nil, err
	}

	return r.routes, r.events, nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       Graph
	start   string
	options Options
	log     *zap.Logger

	order   []string            // vertex IDs, sorted, for snapshots
	routes  map[string]Route    // recorded route per vertex
	visited map[string]struct{} // finalized vertices
	best    map[string]int64    // best pushed score per vertex; pruning only
	pq      candidateQueue
	seq     uint64

	recording bool
	events    []Event
	lastNode  string    // last finalized vertex
	finalEdge [2]string // lastNode and its last neighbor in adjacency order

	stats Stats
}

// newRunner validates inputs and builds the initial state: one (∞, self)
// Route per vertex and a heap seeded with (start, 0, start).
func newRunner(g Graph, start string, cfg Options, recording bool) (*runner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if start == "" || !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStartNode, start)
	}

	vertices := g.Vertices()
	if err := checkWeights(g, vertices); err != nil {
		return nil, err
	}

	order := make([]string, len(vertices))
	copy(order, vertices)
	sort.Strings(order)

	r := &runner{
		g:         g,
		start:     start,
		options:   cfg,
		log:       cfg.Logger.With(zap.String("start", start)),
		order:     order,
		routes:    make(map[string]Route, len(order)),
		visited:   make(map[string]struct{}, len(order)),
		pq:        make(candidateQueue, 0, len(order)),
		recording: recording,
	}
	if cfg.Pruning {
		r.best = make(map[string]int64, len(order))
	}
	for _, v := range order {
		r.routes[v] = Route{Node: v, Score: Infinity, Through: v}
	}

	heap.Init(&r.pq)
	r.push(start, 0, start)

	return r, nil
}

// checkWeights scans every adjacency once and fails on the first negative weight.
func checkWeights(g Graph, vertices []string) error {
	for _, u := range vertices {
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
		}
		for _, v := range nbrs {
			w, err := g.Weight(u, v)
			if err != nil {
				return fmt.Errorf("dijkstra: failed to get weight of %s—%s: %w", u, v, err)
			}
			if w < 0 {
				return fmt.Errorf("%w: edge %s—%s weight=%d", ErrNegativeWeight, u, v, w)
			}
		}
	}

	return nil
}

// process is the main loop. It pops the cheapest candidate, discards it if
// its vertex is already final, otherwise relaxes every unfinished neighbor,
// finalizes the vertex and records the candidate if it beats the table.
//
// Loop termination conditions:
//
//   - The heap becomes empty (every reachable vertex is final).
//   - Every vertex is final (remaining heap entries can only be stale).
func (r *runner) process() error {
	total := len(r.order)
	for r.pq.Len() > 0 && len(r.visited) < total {
		curr := heap.Pop(&r.pq).(*candidate)
		r.stats.Pops++

		if _, done := r.visited[curr.node]; done {
			r.stats.StaleSkips++
			continue
		}

		if err := r.relax(curr); err != nil {
			return err
		}

		r.visited[curr.node] = struct{}{}
		r.stats.Finalized++
		r.lastNode = curr.node

		if curr.score < r.routes[curr.node].Score {
			r.routes[curr.node] = Route{Node: curr.node, Score: curr.score, Through: curr.through}
		}
	}

	if r.recording {
		r.record(r.lastNode, r.finalEdge, true)
	}
	r.finish()

	return nil
}

// relax proposes curr.score+w for every neighbor of curr.node that is not
// final yet. A proposal that saturates at Infinity is never pushed; any other
// is pushed unless pruning proves it useless.
func (r *runner) relax(curr *candidate) error {
	u := curr.node
	nbrs, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	r.finalEdge = [2]string{}
	for _, v := range nbrs {
		r.finalEdge = [2]string{u, v}
		if _, done := r.visited[v]; done {
			continue
		}
		w, err := r.g.Weight(u, v)
		if err != nil {
			return fmt.Errorf("dijkstra: failed to get weight of %s—%s: %w", u, v, err)
		}
		r.stats.Relaxations++

		score := addScore(curr.score, w)
		if score < Infinity && (!r.options.Pruning || score < r.bestScore(v)) {
			r.push(v, score, u)
		}

		if r.recording {
			r.record(u, [2]string{u, v}, false)
		}
	}

	return nil
}

func (r *runner) push(node string, score int64, through string) {
	r.seq++
	heap.Push(&r.pq, &candidate{node: node, score: score, through: through, seq: r.seq})
	r.stats.Pushes++
	if r.best != nil {
		r.best[node] = score
	}
}

func (r *runner) bestScore(node string) int64 {
	if s, ok := r.best[node]; ok {
		return s
	}

	return Infinity
}

// record appends an event carrying a copy of the current route table.
func (r *runner) record(node string, edge [2]string, final bool) {
	snapshot := make([]Route, len(r.order))
	for i, v := range r.order {
		snapshot[i] = r.routes[v]
	}
	r.events = append(r.events, Event{
		Step:   len(r.events),
		Node:   node,
		Edge:   edge,
		Routes: snapshot,
		Final:  final,
	})
}

func (r *runner) finish() {
	if r.options.Stats != nil {
		*r.options.Stats = r.stats
	}
	r.log.Debug("shortest paths computed",
		zap.Int("vertices", len(r.order)),
		zap.Int("finalized", r.stats.Finalized),
		zap.Int("pushes", r.stats.Pushes),
		zap.Int("pops", r.stats.Pops),
		zap.Int("staleSkips", r.stats.StaleSkips),
		zap.Int("relaxations", r.stats.Relaxations),
		zap.Int("events", len(r.events)),
		zap.Bool("pruning", r.options.Pruning),
	)
}

// addScore adds a non-negative weight to a score, saturating at Infinity.
func addScore(score, w int64) int64 {
	if score >= Infinity-w {
		return Infinity
	}

	return score + w
}

// candidate is one transient queue entry: a proposed score for node,
// arriving through a predecessor. seq orders candidates with equal scores.
type candidate struct {
	node    string
	score   int64
	through string
	seq     uint64
}

// candidateQueue is a min-heap of *candidate ordered by score, then seq.
// It may hold several entries for the same vertex; all but the first popped
// are stale.
type candidateQueue []*candidate

// Len returns the number of items in the heap.
func (pq candidateQueue) Len() int { return len(pq) }

// Less orders by score, breaking ties by push order.
func (pq candidateQueue) Less(i, j int) bool {
	if pq[i].score != pq[j].score {
		return pq[i].score < pq[j].score
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq candidateQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap. Called by heap.Push; x must be *candidate.
func (pq *candidateQueue) Push(x interface{}) { *pq = append(*pq, x.(*candidate)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *candidateQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
