package lexbfs

import (
	"fmt"

	"github.com/katalvlaran/graphord/core"
)

// orderedAdjacency builds, for every vertex u of g, the sequence of u's
// neighbors in tie-break order: a neighbor v precedes a neighbor w exactly
// when v comes first in the seed order (priority vertices in sequence order,
// then the remaining vertices in the graph's sorted order). The seed order
// itself is returned alongside; it doubles as the initial partition content.
//
// The ordering is purely presentational — it decides which of several
// equally valid LexBFS orders is produced, not whether the produced order
// is valid.
//
// Returns ErrVertexNotFound (naming the vertex) when a priority entry is
// absent from g, ErrDuplicatePriority when the sequence repeats a vertex.
func orderedAdjacency(g *core.Graph, priority []string) (adj map[string][]string, seed []string, err error) {
	all := g.Vertices() // sorted: the stable order for unlisted vertices
	n := len(all)
	adj = make(map[string][]string, n)
	seed = make([]string, 0, n)
	seeded := make(map[string]bool, n)

	// Sweeping vertices in seed order and appending each to its neighbors'
	// lists yields exactly the per-vertex order the refinement needs.
	sweep := func(v string) error {
		neighbors, nbErr := g.NeighborIDs(v)
		if nbErr != nil {
			return fmt.Errorf("lexbfs: neighbors of %q: %w", v, nbErr)
		}
		for _, u := range neighbors {
			adj[u] = append(adj[u], v)
		}
		return nil
	}

	for _, v := range priority {
		if !g.HasVertex(v) {
			return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, v)
		}
		if seeded[v] {
			return nil, nil, fmt.Errorf("%w: %q", ErrDuplicatePriority, v)
		}
		seeded[v] = true
		seed = append(seed, v)
		if err = sweep(v); err != nil {
			return nil, nil, err
		}
	}
	for _, v := range all {
		if seeded[v] {
			continue
		}
		seed = append(seed, v)
		if err = sweep(v); err != nil {
			return nil, nil, err
		}
	}

	return adj, seed, nil
}
