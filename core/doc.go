// Package core provides the in-memory graph representation consumed by the
// traversal packages (bfs, lexbfs): vertex and edge storage, neighbor
// iteration, and membership tests, with deterministic enumeration order.
//
// What
//
//   - Graph: thread-safe vertex/edge store with O(1) insertion and removal.
//   - Edge: identified endpoints From→To with integer Weight and a Directed
//     flag inherited from the graph's configuration.
//   - Deterministic reads: Vertices() returns IDs sorted lexicographically,
//     Neighbors() returns edges sorted by Edge.ID, NeighborIDs() returns
//     unique adjacent IDs sorted lexicographically.
//
// Why
//
//	Traversal order must be reproducible. Every ordering algorithm in this
//	module leans on the sorted enumeration contract for its default
//	tie-breaking, so the contract lives here, once, instead of being
//	re-sorted in every consumer.
//
// Configuration (GraphOption, applied at construction):
//
//   - WithDirected(b): new edges default to directed (true) or undirected.
//   - WithWeighted():  permit non-zero edge weights.
//   - WithLoops():     permit self-loops.
//   - WithMultiEdges(): permit parallel edges between the same endpoints.
//
// Errors
//
//   - ErrEmptyVertexID       empty string used as a vertex ID.
//   - ErrVertexNotFound      operation referenced a missing vertex.
//   - ErrEdgeNotFound        operation referenced a missing edge.
//   - ErrBadWeight           non-zero weight on an unweighted graph.
//   - ErrLoopNotAllowed      self-loop without WithLoops().
//   - ErrMultiEdgeNotAllowed parallel edge without WithMultiEdges().
//
// Concurrency: a single RWMutex guards all state; reads take the read lock,
// mutations the write lock. Safe for concurrent use from multiple goroutines.
package core
