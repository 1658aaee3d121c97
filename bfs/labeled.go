package bfs

import (
	"fmt"

	"github.com/katalvlaran/graphord/core"
)

// EdgeLabel classifies an edge relative to the BFS layering of its endpoints.
type EdgeLabel string

// Edge labels produced by LabeledEdges.
const (
	// LabelTree marks an edge whose head is discovered through it and placed
	// in the layer below its tail.
	LabelTree EdgeLabel = "tree"

	// LabelForward marks an edge from a layer to an already-discovered vertex
	// one layer below.
	LabelForward EdgeLabel = "forward"

	// LabelLevel marks an edge whose endpoints share a layer.
	LabelLevel EdgeLabel = "level"

	// LabelReverse marks an edge pointing from a lower layer back up;
	// it only occurs on directed graphs.
	LabelReverse EdgeLabel = "reverse"
)

// LabeledEdge is one explored edge together with its layer classification.
type LabeledEdge struct {
	From  string
	To    string
	Label EdgeLabel
}

// LabeledEdges explores g breadth-first from the given sources and reports
// each explored edge exactly once, labeled by the relative layers of its
// endpoints. On undirected graphs reverse edges cannot occur: each such edge
// is discovered earlier as tree, forward, or level.
//
// Returns ErrGraphNil, ErrSourceNotFound (naming the offending vertex),
// ErrWeightedGraph, or ErrNeighbors.
func LabeledEdges(g *core.Graph, sources []string) ([]LabeledEdge, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Weighted() {
		return nil, ErrWeightedGraph
	}

	directed := g.Directed()
	depth := make(map[string]int, g.VertexCount())
	queue := make([]string, 0, len(sources))
	for _, s := range sources {
		if !g.HasVertex(s) {
			return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, s)
		}
		if _, dup := depth[s]; dup {
			continue
		}
		depth[s] = 0
		queue = append(queue, s)
	}

	// done tracks fully explored vertices so that each undirected edge is
	// reported only on its first encounter. Directed graphs skip the
	// bookkeeping: every directed edge is explored from its tail exactly once.
	done := make(map[string]bool)
	var out []LabeledEdge
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		du := depth[u]

		neighbors, err := g.NeighborIDs(u)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, u, err)
		}
		for _, v := range neighbors {
			dv, seen := depth[v]
			switch {
			case !seen:
				depth[v] = du + 1
				queue = append(queue, v)
				out = append(out, LabeledEdge{From: u, To: v, Label: LabelTree})
			case du == dv:
				if !done[v] {
					out = append(out, LabeledEdge{From: u, To: v, Label: LabelLevel})
				}
			case du < dv:
				out = append(out, LabeledEdge{From: u, To: v, Label: LabelForward})
			case directed:
				out = append(out, LabeledEdge{From: u, To: v, Label: LabelReverse})
			}
		}
		if !directed {
			done[u] = true
		}
	}

	return out, nil
}
