// lexbfs.go - the driver and lazy iterator of the search;
// see doc.go for the full contract.

package lexbfs

import (
	"github.com/katalvlaran/graphord/core"
)

// Iterator is the lazy emission sequence of one LexBFS run. It is finite,
// non-restartable, and single-consumer: Next mutates internal state, so an
// Iterator must not be shared across goroutines. Abandoning it early is
// legal and requires no cleanup.
type Iterator struct {
	part  *partition
	adj   map[string][]string
	round int
}

// LexBFS prepares a lexicographic breadth-first search of g and returns its
// Iterator. No vertex is emitted until the first Next call; argument
// validation (nil graph, unknown or repeated priority vertices) happens
// here, never inside the lazy sequence.
//
// Returns ErrGraphNil, ErrVertexNotFound, or ErrDuplicatePriority.
func LexBFS(g *core.Graph, opts ...Option) (*Iterator, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	adj, seed, err := orderedAdjacency(g, o.Priority)
	if err != nil {
		return nil, err
	}

	return &Iterator{
		part: newPartition(seed, o.Complement),
		adj:  adj,
	}, nil
}

// Next runs one round: it emits the front vertex of the front block and
// refines the partition with that vertex's neighbors, in tie-break order.
// ok is false once every vertex has been emitted.
func (it *Iterator) Next() (id string, ok bool) {
	v, ok := it.part.pop()
	if !ok {
		return "", false
	}
	it.round++

	for _, u := range it.adj[v] {
		ui := it.part.index[u]
		s := it.part.blockOf(ui)
		if s == none {
			// already emitted — also covers u == v on self-loops
			continue
		}
		t := it.part.ensureSplitTarget(s, it.round)
		it.part.move(ui, s, t)
	}

	return v, true
}

// Order drains the iterator and returns the remaining emission sequence.
// On a fresh iterator this is the complete LexBFS order of the graph.
func (it *Iterator) Order() []string {
	out := make([]string, 0, len(it.part.verts)-it.round)
	for {
		v, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// Ranks drains the iterator and returns the 1-based emission rank of every
// remaining vertex: the vertex emitted in round i has rank i.
func (it *Iterator) Ranks() map[string]int {
	ranks := make(map[string]int, len(it.part.verts)-it.round)
	for {
		v, ok := it.Next()
		if !ok {
			return ranks
		}
		ranks[v] = it.round
	}
}
