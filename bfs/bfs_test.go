package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"testing"

	"github.com/katalvlaran/graphord/bfs"
	"github.com/katalvlaran/graphord/core"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// source vertex not found
	g := core.NewGraph()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrSourceNotFound) {
		t.Errorf("missing source: want ErrSourceNotFound, got %v", err)
	}
	// weighted graph unsupported
	gW := core.NewGraph(core.WithWeighted())
	gW.AddVertex("A")
	if _, err := bfs.BFS(gW, "A"); !errors.Is(err, bfs.ErrWeightedGraph) {
		t.Errorf("weighted graph: want ErrWeightedGraph, got %v", err)
	}
	// negative MaxDepth is a violation
	g2 := core.NewGraph()
	g2.AddVertex("A")
	if _, err := bfs.BFS(g2, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SimpleTraversal covers the trivial one-vertex graph.
func TestBFS_SimpleTraversal(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex("A")
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth["A"]; d != 0 {
		t.Errorf("Depth[A] = %d; want 0", d)
	}
	if len(res.TreeEdges) != 0 {
		t.Errorf("TreeEdges = %v; want empty", res.TreeEdges)
	}
}

// TestBFS_CycleAndDepths covers a simple cycle and checks depths.
func TestBFS_CycleAndDepths(t *testing.T) {
	// A–B–C–D–A undirected cycle
	g := core.NewGraph()
	g.AddEdge("A", "B", 0)
	g.AddEdge("B", "C", 0)
	g.AddEdge("C", "D", 0)
	g.AddEdge("D", "A", 0)

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	// Sorted neighbor order makes this fully deterministic.
	if want := []string{"A", "B", "D", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	wantDepth := map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}
	for v, d := range wantDepth {
		if got := res.Depth[v]; got != d {
			t.Errorf("Depth[%s] = %d; want %d", v, got, d)
		}
	}
}

// TestBFS_Disconnected ensures BFS only explores the component of the source.
func TestBFS_Disconnected(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("X", "Y", 0) // component 1
	g.AddEdge("P", "Q", 0) // component 2

	resX, _ := bfs.BFS(g, "X")
	if !reflect.DeepEqual(resX.Order, []string{"X", "Y"}) {
		t.Errorf("From X: got %v; want [X Y]", resX.Order)
	}
	resP, _ := bfs.BFS(g, "P")
	if !reflect.DeepEqual(resP.Order, []string{"P", "Q"}) {
		t.Errorf("From P: got %v; want [P Q]", resP.Order)
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 0)
	g.AddEdge("B", "C", 0)
	// depth = 1 should only visit A,B
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth(1)); !reflect.DeepEqual(res.Order, []string{"A", "B"}) {
		t.Errorf("MaxDepth=1: got %v; want [A B]", res.Order)
	}
	// depth = 0 => explicit no limit => visits all
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth(0)); !reflect.DeepEqual(res.Order, []string{"A", "B", "C"}) {
		t.Errorf("MaxDepth=0: got %v; want [A B C]", res.Order)
	}
	// depth > graph size => same full traversal
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth(10)); !reflect.DeepEqual(res.Order, []string{"A", "B", "C"}) {
		t.Errorf("MaxDepth=10: got %v; want [A B C]", res.Order)
	}
}

// TestBFS_FilterNeighbor shows how filtering prunes certain edges.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 0)
	g.AddEdge("B", "C", 0)
	// filter out B→C
	res, _ := bfs.BFS(g, "A",
		bfs.WithFilterNeighbor(func(curr, nbr string) bool {
			return !(curr == "B" && nbr == "C")
		}))
	if !reflect.DeepEqual(res.Order, []string{"A", "B"}) {
		t.Errorf("filtered: got %v; want [A B]", res.Order)
	}
}

// TestBFS_NeighborOrder reorders a star's frontier in reverse lexicographic order.
func TestBFS_NeighborOrder(t *testing.T) {
	g := core.NewGraph()
	for _, leaf := range []string{"B", "C", "D"} {
		g.AddEdge("A", leaf, 0)
	}

	res, err := bfs.BFS(g, "A", bfs.WithNeighborOrder(func(ids []string) []string {
		sort.Sort(sort.Reverse(sort.StringSlice(ids)))
		return ids
	}))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "D", "C", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_Hooks checks the enqueue/dequeue/visit callback sequence.
func TestBFS_Hooks(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 0)

	var events []string
	record := func(kind string) func(string, int) {
		return func(id string, depth int) {
			events = append(events, fmt.Sprintf("%s:%s@%d", kind, id, depth))
		}
	}
	_, err := bfs.BFS(g, "A",
		bfs.WithOnEnqueue(record("enq")),
		bfs.WithOnDequeue(record("deq")),
		bfs.WithOnVisit(func(id string, depth int) error {
			events = append(events, fmt.Sprintf("vis:%s@%d", id, depth))
			return nil
		}))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"enq:A@0", "deq:A@0", "vis:A@0", "enq:B@1", "deq:B@1", "vis:B@1"}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("events = %v; want %v", events, want)
	}
}

// TestBFS_OnVisitAbort propagates the hook error wrapped.
func TestBFS_OnVisitAbort(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 0)

	boom := errors.New("boom")
	_, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, depth int) error {
		if id == "B" {
			return boom
		}
		return nil
	}))
	if !errors.Is(err, boom) {
		t.Errorf("got %v; want wrapped boom", err)
	}
}

// TestBFS_ContextCancel aborts the walk on an already-canceled context.
func TestBFS_ContextCancel(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(g, "A", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v; want context.Canceled", err)
	}
}

// TestResult_PathTo reconstructs a shortest path and rejects unreached targets.
func TestResult_PathTo(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 0)
	g.AddEdge("B", "C", 0)
	g.AddEdge("A", "D", 0) // detour

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	path, err := res.PathTo("C")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(C) = %v; want %v", path, want)
	}
	if _, err = res.PathTo("Z"); err == nil {
		t.Error("PathTo(Z) succeeded for unreached vertex")
	}
}

// TestResult_TreeEdgesAndSuccessors checks discovery-order edges and the parent grouping.
func TestResult_TreeEdgesAndSuccessors(t *testing.T) {
	// 0 — {1,2}; 1 — {3,4}; 2 — {5,6} (a binary tree)
	g := core.NewGraph()
	g.AddEdge("0", "1", 0)
	g.AddEdge("0", "2", 0)
	g.AddEdge("1", "3", 0)
	g.AddEdge("1", "4", 0)
	g.AddEdge("2", "5", 0)
	g.AddEdge("2", "6", 0)

	res, err := bfs.BFS(g, "0")
	if err != nil {
		t.Fatal(err)
	}
	wantEdges := []bfs.TreeEdge{
		{From: "0", To: "1"}, {From: "0", To: "2"},
		{From: "1", To: "3"}, {From: "1", To: "4"},
		{From: "2", To: "5"}, {From: "2", To: "6"},
	}
	if !reflect.DeepEqual(res.TreeEdges, wantEdges) {
		t.Errorf("TreeEdges = %v; want %v", res.TreeEdges, wantEdges)
	}
	wantSucc := map[string][]string{
		"0": {"1", "2"},
		"1": {"3", "4"},
		"2": {"5", "6"},
	}
	if got := res.Successors(); !reflect.DeepEqual(got, wantSucc) {
		t.Errorf("Successors = %v; want %v", got, wantSucc)
	}
	// Parent is the predecessor map
	wantParent := map[string]string{"1": "0", "2": "0", "3": "1", "4": "1", "5": "2", "6": "2"}
	if !reflect.DeepEqual(res.Parent, wantParent) {
		t.Errorf("Parent = %v; want %v", res.Parent, wantParent)
	}
	// Predecessors derives the same mapping from the tree edges
	if got := res.Predecessors(); !reflect.DeepEqual(got, wantParent) {
		t.Errorf("Predecessors = %v; want %v", got, wantParent)
	}
}

// TestTree builds the oriented BFS tree as a directed graph.
func TestTree(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 0)
	g.AddEdge("B", "C", 0)
	g.AddEdge("C", "A", 0) // cycle edge must not survive into the tree

	tree, err := bfs.Tree(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if got := tree.EdgeCount(); got != 2 {
		t.Errorf("tree EdgeCount = %d; want 2", got)
	}
	if !tree.HasEdge("A", "B") || !tree.HasEdge("A", "C") {
		t.Errorf("tree edges wrong: %v", tree.Edges())
	}
	// orientation: edges point away from the root
	if tree.HasEdge("B", "A") {
		t.Error("tree edge is not directed away from root")
	}

	// isolated root still yields a one-vertex tree
	lone := core.NewGraph()
	lone.AddVertex("Z")
	tz, err := bfs.Tree(lone, "Z")
	if err != nil {
		t.Fatal(err)
	}
	if tz.VertexCount() != 1 || !tz.HasVertex("Z") {
		t.Errorf("lone tree = %v vertices; want just Z", tz.Vertices())
	}
}
