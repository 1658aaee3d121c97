// types.go - configuration options and error definitions for the
// search engine.

package lexbfs

import "errors"

// Sentinel errors for LexBFS invocation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("lexbfs: graph is nil")

	// ErrVertexNotFound is returned when a priority vertex is absent
	// from the graph.
	ErrVertexNotFound = errors.New("lexbfs: priority vertex not found")

	// ErrDuplicatePriority is returned when the priority sequence names
	// the same vertex more than once.
	ErrDuplicatePriority = errors.New("lexbfs: duplicate vertex in priority sequence")
)

// Option configures LexBFS behavior via functional arguments.
type Option func(*Options)

// Options holds the parameters of one LexBFS invocation.
type Options struct {
	// Complement selects LexBFS⁻: refinement behaves as if running on the
	// complement graph. Split blocks are inserted after their origin block
	// and never promoted to the chain head.
	Complement bool

	// Priority is an ordered subset of vertices used only to break ties:
	// listed vertices seed the initial block first, in sequence order, and
	// likewise lead each neighbor list. Vertices not listed retain the
	// graph's stable sorted order. Correctness of the lexicographic
	// property does not depend on this sequence.
	Priority []string
}

// DefaultOptions returns Options for a standard-mode run with no tie-break
// sequence.
func DefaultOptions() Options {
	return Options{}
}

// WithComplement switches the engine to complement mode (LexBFS⁻).
func WithComplement() Option {
	return func(o *Options) { o.Complement = true }
}

// WithPriority supplies the tie-break sequence. Every listed vertex must
// exist in the graph and appear at most once; violations surface from
// LexBFS as ErrVertexNotFound or ErrDuplicatePriority before any vertex
// is emitted.
func WithPriority(ids ...string) Option {
	return func(o *Options) { o.Priority = ids }
}
