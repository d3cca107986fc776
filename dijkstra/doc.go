// Package dijkstra provides a single-source shortest-path engine for
// weighted, undirected graphs with non-negative edge weights, with an
// optional chronological event log for visualizers.
//
// Overview:
//
//   - Compute returns, for every vertex, its Route: the minimum cumulative
//     Score from the start and the vertex it is reached Through.
//   - ComputeWithEvents also returns one immutable Event per relaxation plus
//     a closing event. Each Event carries a copy of the route table, the
//     edge just relaxed and the vertex being expanded. Drawing them is the
//     caller's business (see package render).
//   - PathTo rebuilds a start→target path from a route table.
//   - ComputeMany runs independent queries for several starts in parallel.
//
// Algorithm:
//
//  1. One Route per vertex, (Infinity, through=self). The heap holds (start, 0, start).
//  2. While the heap is not empty:
//     pop the cheapest candidate; skip it if its vertex is already final;
//     push (neighbor, score+w, through=popped) for each unfinished neighbor
//     unless score+w saturates at Infinity;
//     mark the vertex final; record the candidate if it beats the table.
//  3. Return the table. Vertices never pushed stay at Infinity.
//
// The first pop of a vertex is minimal, so its distance never changes after
// it becomes final. This holds only for non-negative weights, which is why
// Compute rejects negative ones with ErrNegativeWeight.
//
// Determinism:
//
//   - Candidates with equal scores leave the heap in push order, and
//     neighbors are visited in the order the Graph returns them (sorted for
//     core.Graph). Repeated runs give identical routes and events.
//   - WithPruning() drops pushes that cannot win. Routes and events stay the
//     same; only the heap gets smaller.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:          the graph is nil.
//   - ErrUnknownStartNode:  the start vertex is empty or not in the graph.
//   - ErrNegativeWeight:    an edge has a negative weight (O(E) pre-scan).
//   - ErrVertexNotFound, ErrUnreachable, ErrBrokenPath: from PathTo.
//
// Thread safety:
//
//   - One call owns all of its state. The graph is only read, so concurrent
//     calls may share it as long as nobody mutates it meanwhile.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E); ComputeWithEvents adds O(V) per event.
package dijkstra
