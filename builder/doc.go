// Package builder assembles deterministic graph fixtures on top of core.Graph:
// random G(n,p) graphs with integer weights, grids and paths.
//
// It plays the GraphSource role for demos, tests and benchmarks of the
// shortest-path engine. Nothing here is needed to run a query on a graph
// built by other means.
//
// Usage:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{
//	        builder.WithSeed(42),
//	        builder.WithWeightFn(builder.UniformWeightFn(3, 7)),
//	    },
//	    builder.RandomSparse(10, 0.4),
//	)
//
// Determinism: same options, seed and constructor order ⇒ identical graph.
package builder
