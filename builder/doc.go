// Package builder assembles deterministic graph fixtures for the ordering
// algorithms in this module.
//
// What:
//
//	Composable Constructor closures for classic topologies (Path, Cycle,
//	Star, Complete, CompleteBipartite, Grid) plus a seeded RandomSparse,
//	applied in order by Build. Same inputs, options, and constructor order
//	always produce the identical graph.
//
// Why:
//
//	Traversal and vertex-ordering code is only testable against graphs
//	whose shape is known exactly. Hand-rolling the same path or clique in
//	every test file drifts; one audited constructor per shape does not.
//
// Usage:
//
//	g, err := builder.Build(nil, nil, builder.Path(5))
//	g, err := builder.Build(
//	    []core.GraphOption{core.WithDirected(true)},
//	    []builder.Option{builder.WithSeed(42)},
//	    builder.RandomSparse(50, 0.1),
//	)
//
// Determinism:
//
//	Vertex IDs come from the configured ID format (default "v%d"), emitted
//	in increasing index order; edges are emitted in a fixed documented
//	order per constructor; stochastic constructors draw from a local RNG
//	seeded via WithSeed. No global state.
//
// Errors:
//
//	Constructors validate parameters before touching the graph and return
//	sentinel errors (ErrTooFewVertices, ErrBadDimension, ErrBadProbability);
//	Build wraps them with its own context. Nothing in this package panics.
package builder
