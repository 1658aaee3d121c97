// Package bfs provides breadth-first traversal over a core.Graph:
// visit order, unweighted distances, parent links, oriented trees,
// multi-source layer enumeration, and labeled edge classification.
//
// What
//
//   - BFS(g, source, opts...) explores vertices in non-decreasing distance
//     (edge count) from a source vertex and returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from the source
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - TreeEdges: tree edges in discovery order
//   - Tree(g, source, opts...) builds the oriented BFS tree as a directed
//     core.Graph.
//   - Layers(g, sources, opts...) enumerates frontiers at increasing distance
//     from one or more sources.
//   - LabeledEdges(g, sources) reports every explored edge exactly once,
//     labeled tree, forward, level, or reverse.
//   - DescendantsAtDistance(g, source, d) collects the vertices at exactly
//     distance d.
//   - Hooks at three stages: OnEnqueue, OnDequeue, OnVisit (may abort).
//   - Neighbor control: WithFilterNeighbor skips edges, WithNeighborOrder
//     reorders each expansion frontier.
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Discover reachable subgraphs, connected components, and level layering.
//   - Foundation for the ordering engines built on top (see package lexbfs).
//
// Determinism
//
//	core.NeighborIDs returns adjacent IDs sorted lexicographically, and BFS
//	enqueues neighbors in that order, so every traversal is reproducible.
//	WithNeighborOrder substitutes a custom deterministic order when the
//	default is not the one you want.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (queue, Depth map, Parent map, visited set)
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit,
//     no filtering, natural neighbor order.
//   - WithContext(ctx):        set a custom context for cancellation.
//   - WithMaxDepth(d):         stop exploring beyond depth d (>0); 0 = no limit.
//   - WithFilterNeighbor(fn):  skip edges for which fn(curr,neighbor)==false.
//   - WithNeighborOrder(fn):   reorder each vertex's expansion frontier.
//   - WithOnEnqueue(fn):       hook before a vertex is enqueued.
//   - WithOnDequeue(fn):       hook immediately before visiting a vertex.
//   - WithOnVisit(fn):         hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrSourceNotFound  if a source vertex does not exist.
//   - ErrWeightedGraph   if run on a weighted graph.
//   - ErrOptionViolation if an invalid Option was supplied.
//   - ErrNeighbors       if neighbor lookup fails for any vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
