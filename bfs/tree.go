package bfs

import (
	"fmt"

	"github.com/katalvlaran/graphord/core"
)

// Tree runs BFS from source and returns the resulting oriented tree as a
// directed core.Graph: one vertex per visited vertex, one parent→child edge
// per discovery. The source is present even when it has no neighbors.
// Accepts the same options and returns the same errors as BFS.
func Tree(g *core.Graph, source string, opts ...Option) (*core.Graph, error) {
	res, err := BFS(g, source, opts...)
	if err != nil {
		return nil, err
	}

	t := core.NewGraph(core.WithDirected(true))
	if err = t.AddVertex(source); err != nil {
		return nil, fmt.Errorf("bfs: building tree root: %w", err)
	}
	for _, e := range res.TreeEdges {
		if _, err = t.AddEdge(e.From, e.To, 0); err != nil {
			return nil, fmt.Errorf("bfs: building tree edge %s→%s: %w", e.From, e.To, err)
		}
	}

	return t, nil
}
