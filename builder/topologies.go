package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/graphord/core"
)

// Path builds the simple path P_n: v0—v1—...—v(n-1), n ≥ 2.
// Edges are emitted left to right.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 2 {
			return fmt.Errorf("Path(%d): %w", n, ErrTooFewVertices)
		}
		return chain(g, cfg, n, false)
	}
}

// Cycle builds the simple cycle C_n, n ≥ 3: a path plus the closing edge
// v(n-1)—v0, emitted last.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 3 {
			return fmt.Errorf("Cycle(%d): %w", n, ErrTooFewVertices)
		}
		return chain(g, cfg, n, true)
	}
}

// chain adds n vertices and the edges of a path, closing it into a ring
// when closed is set.
func chain(g *core.Graph, cfg config, n int, closed bool) error {
	for i := 0; i < n; i++ {
		if err := g.AddVertex(cfg.id(i)); err != nil {
			return err
		}
	}
	for i := 1; i < n; i++ {
		if _, err := g.AddEdge(cfg.id(i-1), cfg.id(i), 0); err != nil {
			return err
		}
	}
	if closed {
		if _, err := g.AddEdge(cfg.id(n-1), cfg.id(0), 0); err != nil {
			return err
		}
	}
	return nil
}

// Star builds an n-vertex star, n ≥ 2: v0 is the center, v1..v(n-1) the
// leaves, spokes emitted in leaf order.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 2 {
			return fmt.Errorf("Star(%d): %w", n, ErrTooFewVertices)
		}
		center := cfg.id(0)
		if err := g.AddVertex(center); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if _, err := g.AddEdge(center, cfg.id(i), 0); err != nil {
				return err
			}
		}
		return nil
	}
}

// Complete builds the complete simple graph K_n, n ≥ 1. Edges are emitted
// in lexicographic index order (0-1, 0-2, ..., (n-2)-(n-1)).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 1 {
			return fmt.Errorf("Complete(%d): %w", n, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.id(i)); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if _, err := g.AddEdge(cfg.id(i), cfg.id(j), 0); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// CompleteBipartite builds K_{n1,n2}, n1, n2 ≥ 1. The left part takes
// indices 0..n1-1, the right part n1..n1+n2-1; edges sweep left-major.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n1 < 1 || n2 < 1 {
			return fmt.Errorf("CompleteBipartite(%d,%d): %w", n1, n2, ErrTooFewVertices)
		}
		for i := 0; i < n1+n2; i++ {
			if err := g.AddVertex(cfg.id(i)); err != nil {
				return err
			}
		}
		for i := 0; i < n1; i++ {
			for j := n1; j < n1+n2; j++ {
				if _, err := g.AddEdge(cfg.id(i), cfg.id(j), 0); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// Grid builds a rows×cols 4-neighborhood lattice with IDs "r,c"
// (row-major). The ID format option does not apply; grid coordinates are
// the ID.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, _ config) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("Grid(%d,%d): %w", rows, cols, ErrBadDimension)
		}
		cell := func(r, c int) string { return fmt.Sprintf("%d,%d", r, c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := g.AddVertex(cell(r, c)); err != nil {
					return err
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if _, err := g.AddEdge(cell(r, c), cell(r, c+1), 0); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if _, err := g.AddEdge(cell(r, c), cell(r+1, c), 0); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}

// RandomSparse builds an Erdős–Rényi style graph on n vertices: each
// unordered pair (ordered, when the graph is directed) gets an edge with
// probability p, decided by a local RNG seeded from the configuration.
// Deterministic for a fixed seed.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 1 {
			return fmt.Errorf("RandomSparse(%d, %g): %w", n, p, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse(%d, %g): %w", n, p, ErrBadProbability)
		}
		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.id(i)); err != nil {
				return err
			}
		}
		r := rand.New(rand.NewSource(cfg.seed))
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				// edges placed by an earlier constructor are kept, not doubled
				if r.Float64() < p && !g.HasEdge(cfg.id(i), cfg.id(j)) {
					if _, err := g.AddEdge(cfg.id(i), cfg.id(j), 0); err != nil {
						return err
					}
				}
				if g.Directed() && r.Float64() < p && !g.HasEdge(cfg.id(j), cfg.id(i)) {
					if _, err := g.AddEdge(cfg.id(j), cfg.id(i), 0); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
