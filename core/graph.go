// graph.go - Graph method implementations.
//
// All methods are thread-safe under the single RWMutex declared in types.go.
// Enumeration methods (Vertices, Neighbors, NeighborIDs, Edges) sort their
// output so that every traversal built on top of them is reproducible.

package core

import (
	"fmt"
	"sort"
)

const edgeIDPrefix = "e"

// AddVertex inserts a new vertex with the given ID into the Graph.
// Adding an existing vertex is a no-op (idempotent).
// Returns ErrEmptyVertexID if id is empty.
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

// RemoveVertex deletes the vertex and all incident edges from the graph.
// Returns ErrEmptyVertexID if id is empty, ErrVertexNotFound if absent.
// Complexity: O(E) worst case (incident-edge sweep).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}
	for eid, e := range g.edges {
		if e.From == id || e.To == id {
			g.removeEdgeLocked(eid, e)
		}
	}
	delete(g.vertices, id)
	delete(g.adjacency, id)

	return nil
}

// AddEdge creates a new edge from 'from' to 'to' with the given weight and
// returns its unique Edge.ID. Missing endpoints are created implicitly.
// Directedness follows the graph's configuration; undirected edges are
// mirrored in the adjacency structure.
//
// Returns ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed,
// or ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if !g.allowMulti {
		if inner, ok := g.adjacency[from][to]; ok && len(inner) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	g.nextEdgeID++
	eid := fmt.Sprintf("%s%d", edgeIDPrefix, g.nextEdgeID)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}
	g.edges[eid] = e

	g.ensureAdjLocked(from, to)
	g.adjacency[from][to][eid] = struct{}{}
	// Mirror undirected edges for reverse adjacency; loops skip the mirror.
	if !e.Directed && from != to {
		g.ensureAdjLocked(to, from)
		g.adjacency[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// RemoveEdge deletes the edge with the given ID (and its mirror) from the
// graph. Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	g.removeEdgeLocked(eid, e)

	return nil
}

// HasEdge reports true if at least one edge from 'from' to 'to' exists.
// For undirected edges either endpoint order matches.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	inner, ok := g.adjacency[from][to]

	return ok && len(inner) > 0
}

// Neighbors returns all edges incident to vertex 'id': outgoing edges when
// directed, both directions when undirected. The result is sorted by
// Edge.ID for determinism.
// Returns ErrEmptyVertexID or ErrVertexNotFound.
// Complexity: O(d log d), where d is the number of incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, set := range g.adjacency[id] {
		for eid := range set {
			e := g.edges[eid]
			// Directed policy: only outgoing edges.
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the unique vertex IDs adjacent to id, sorted
// lexicographically ascending. A self-loop contributes id itself.
// Returns ErrEmptyVertexID or ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		if e.From == id {
			seen[e.To] = struct{}{}
		} else if !e.Directed && e.To == id {
			seen[e.From] = struct{}{}
		}
	}
	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// Vertices returns all vertex IDs sorted lexicographically ascending.
// This order is the library-wide "stable order" used for default
// tie-breaking in traversals.
// Complexity: O(V log V).
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

// Edges returns all edges sorted by their ID.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Degree returns the number of edges incident to id (loops count once).
// Returns ErrEmptyVertexID or ErrVertexNotFound.
func (g *Graph) Degree(id string) (int, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return 0, err
	}

	return len(edges), nil
}

// VertexCount returns the total number of vertices. Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the total number of edges. Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// AdjacencyList returns a snapshot of the graph as vertex ID → unique
// neighbor IDs, each list sorted lexicographically ascending. Isolated
// vertices map to empty slices.
// Complexity: O(V + E log E).
func (g *Graph) AdjacencyList() map[string][]string {
	out := make(map[string][]string, g.VertexCount())
	for _, v := range g.Vertices() {
		ids, err := g.NeighborIDs(v)
		if err != nil {
			continue // vertex removed between snapshots
		}
		out[v] = ids
	}

	return out
}

// Clone returns a deep copy of the graph: same configuration, same
// vertices, and fresh Edge values with the original IDs. Mutating the
// clone never touches the receiver.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := g.cloneEmptyLocked()
	c.nextEdgeID = g.nextEdgeID
	for eid, e := range g.edges {
		cp := *e
		c.edges[eid] = &cp
		c.ensureAdjLocked(e.From, e.To)
		c.adjacency[e.From][e.To][eid] = struct{}{}
		if !e.Directed && e.From != e.To {
			c.ensureAdjLocked(e.To, e.From)
			c.adjacency[e.To][e.From][eid] = struct{}{}
		}
	}

	return c
}

// CloneEmpty returns a copy with the same configuration and vertex set but
// no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cloneEmptyLocked()
}

func (g *Graph) cloneEmptyLocked() *Graph {
	c := &Graph{
		directed:   g.directed,
		weighted:   g.weighted,
		allowLoops: g.allowLoops,
		allowMulti: g.allowMulti,
		vertices:   make(map[string]struct{}, len(g.vertices)),
		edges:      make(map[string]*Edge, len(g.edges)),
		adjacency:  make(map[string]map[string]edgeSet, len(g.adjacency)),
	}
	for id := range g.vertices {
		c.vertices[id] = struct{}{}
		c.adjacency[id] = make(map[string]edgeSet)
	}

	return c
}

// Directed reports whether new edges default to directed.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether the graph treats edge weights as meaningful.
func (g *Graph) Weighted() bool { return g.weighted }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// Internal helpers (callers hold g.mu):
////////////////////

// addVertexLocked inserts id into the vertex set (idempotent).
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]edgeSet)
	}
}

// ensureAdjLocked makes adjacency[from][to] non-nil.
func (g *Graph) ensureAdjLocked(from, to string) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]edgeSet)
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(edgeSet)
	}
}

// removeEdgeLocked deletes eid from the edge map and from both adjacency
// directions when mirrored.
func (g *Graph) removeEdgeLocked(eid string, e *Edge) {
	delete(g.edges, eid)
	if m := g.adjacency[e.From][e.To]; m != nil {
		delete(m, eid)
		if len(m) == 0 {
			delete(g.adjacency[e.From], e.To)
		}
	}
	if !e.Directed && e.From != e.To {
		if m := g.adjacency[e.To][e.From]; m != nil {
			delete(m, eid)
			if len(m) == 0 {
				delete(g.adjacency[e.To], e.From)
			}
		}
	}
}
