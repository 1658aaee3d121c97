// types.go - central Graph and Edge types, construction options,
// and sentinel errors. Method implementations live in graph.go.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates an empty string was used as a vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge represents a connection between two vertices.
//
// Each Edge has a unique ID, endpoints From→To, an integer Weight, and a
// Directed flag fixed at creation from the Graph's configuration.
type Edge struct {
	// ID uniquely identifies this edge within its Graph.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost or capacity of the edge (0 on unweighted graphs).
	Weight int64

	// Directed indicates this edge is one-way (true) or bidirectional (false).
	Directed bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness for all new edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is the core in-memory graph data structure.
//
// Vertices are opaque string identifiers; edges carry identity, endpoints,
// and weight. Adjacency is stored as a nested map
// adjacency[from][to][edgeID] = struct{}{} for constant-time existence,
// insertion, and deletion; undirected edges are mirrored both ways.
type Graph struct {
	mu sync.RWMutex // guards all state below

	// Configuration flags (immutable after NewGraph).
	directed   bool // default directedness of new edges
	weighted   bool // allow non-zero weights
	allowLoops bool // allow self-loops
	allowMulti bool // allow parallel edges

	// Storage.
	nextEdgeID uint64                       // edge ID counter
	vertices   map[string]struct{}          // vertex ID set
	edges      map[string]*Edge             // edge ID → Edge
	adjacency  map[string]map[string]edgeSet // from → to → edge IDs
}

// edgeSet is the innermost adjacency layer: the IDs of parallel edges
// sharing the same (from, to) endpoints.
type edgeSet map[string]struct{}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is undirected, unweighted, no loops, no multi-edges.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]edgeSet),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
