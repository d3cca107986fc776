// Package pathtrace computes single-source shortest paths on weighted,
// undirected graphs and records how the answer was found, step by step, so
// the search can be replayed by a visualizer.
//
// What is inside:
//
//	core/       — thread-safe undirected graph with int64 weights
//	dijkstra/   — the engine: Compute, ComputeWithEvents, PathTo, ComputeMany
//	builder/    — deterministic graph constructors (random G(n,p), grid, path)
//	graphfile/  — YAML/JSON graph definitions
//	render/     — Graphviz DOT frames, one per relaxation event
//	cmd/pathtrace — the command line front end (solve, random)
//
// Quick ASCII example:
//
//	    A──7──B
//	    │     │
//	    3     3
//	    │     │
//	    C──3──F──3──E
//
// From A, E is reached at 9 via F, not at 10 via B. A vertex on another
// component keeps an infinite score; the search stops when its queue runs
// dry instead of waiting for it.
//
//	go install github.com/katalvlaran/pathtrace/cmd/pathtrace@latest
package pathtrace
