package bfs

import (
	"fmt"

	"github.com/katalvlaran/graphord/core"
)

// Layers enumerates the frontiers of a breadth-first traversal started from
// one or more sources: layer 0 is the sources themselves, layer k the
// vertices at distance exactly k from the nearest source. Duplicate source
// entries are collapsed to their first occurrence.
//
// Options honored: WithContext, WithMaxDepth (caps the number of layers
// beyond the sources), WithFilterNeighbor, WithNeighborOrder.
// Returns ErrGraphNil, ErrSourceNotFound (naming the offending vertex),
// ErrWeightedGraph, ErrOptionViolation, or ErrNeighbors.
func Layers(g *core.Graph, sources []string, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g.Weighted() {
		return nil, ErrWeightedGraph
	}

	visited := make(map[string]bool, g.VertexCount())
	current := make([]string, 0, len(sources))
	for _, s := range sources {
		if !g.HasVertex(s) {
			return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, s)
		}
		if visited[s] {
			continue
		}
		visited[s] = true
		current = append(current, s)
	}

	var layers [][]string
	depth := 0
	// Plain BFS, except the queue holds one whole frontier at a time.
	for len(current) > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		layers = append(layers, current)
		if o.MaxDepth > 0 && depth >= o.MaxDepth {
			break
		}

		var next []string
		for _, u := range current {
			neighbors, err := g.NeighborIDs(u)
			if err != nil {
				return nil, fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, u, err)
			}
			for _, v := range o.OrderNeighbors(neighbors) {
				if visited[v] || !o.FilterNeighbor(u, v) {
					continue
				}
				visited[v] = true
				next = append(next, v)
			}
		}
		current = next
		depth++
	}

	return layers, nil
}

// DescendantsAtDistance returns the set of vertices at exactly the given
// distance (in edges) from source. The result is empty when no vertex lies
// at that distance. Returns ErrGraphNil, ErrSourceNotFound,
// ErrWeightedGraph, or a negative-distance ErrOptionViolation.
func DescendantsAtDistance(g *core.Graph, source string, distance int, opts ...Option) (map[string]struct{}, error) {
	if distance < 0 {
		return nil, fmt.Errorf("%w: distance cannot be negative (%d)", ErrOptionViolation, distance)
	}
	// Cap the layer walk at the requested distance; deeper layers are waste.
	layers, err := Layers(g, []string{source}, append(opts, WithMaxDepth(distance))...)
	if err != nil {
		return nil, err
	}

	out := make(map[string]struct{})
	if distance < len(layers) {
		for _, v := range layers[distance] {
			out[v] = struct{}{}
		}
	}

	return out, nil
}
