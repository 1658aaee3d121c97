// Package graphord computes orderings of a graph's vertices under
// well-defined traversal disciplines: plain breadth-first exploration
// and lexicographic breadth-first search (LexBFS).
//
// 🚀 What is graphord?
//
//	A small, thread-safe, zero-dependency library built from three parts:
//		• Core primitives: create vertices & edges, mutate safely under locks
//		• BFS toolkit: visit order, layers, trees, predecessor/successor maps,
//		  labeled edge classification (tree / forward / level / reverse)
//		• LexBFS engine: linear-time partition refinement producing vertex
//		  orders for chordal-, interval- and cograph-recognition pipelines,
//		  in standard or complement (LexBFS⁻) mode
//
// ✨ Why choose graphord?
//
//   - Deterministic – sorted vertex/neighbor enumeration makes every
//     traversal reproducible; ties are broken by a caller-supplied priority
//   - Lazy where it matters – LexBFS yields one vertex per round through a
//     single-consumer iterator; stop early and pay for nothing more
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – functional options and hooks (OnVisit, OnEnqueue…)
//
// Under the hood, everything is organized under four subpackages:
//
//	core/    — fundamental Graph and Edge types & thread-safe primitives
//	bfs/     — breadth-first traversal: order, depth, layers, labeled edges
//	lexbfs/  — lexicographic BFS via partition refinement
//	builder/ — deterministic fixture topologies (paths, cycles, grids, …)
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	g := core.NewGraph()
//	g.AddEdge("A", "B", 0)
//	g.AddEdge("A", "C", 0)
//	g.AddEdge("B", "D", 0)
//	g.AddEdge("C", "D", 0)
//
//	it, _ := lexbfs.LexBFS(g)
//	fmt.Println(it.Order()) // [A B C D]
//
// Start with core to build a graph, then pick the discipline you need.
//
//	go get github.com/katalvlaran/graphord
package graphord
