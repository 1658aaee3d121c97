package lexbfs

// The ordered partition behind LexBFS: a doubly linked chain of blocks,
// each holding a doubly linked member list of vertices. Blocks and vertices
// live in append-only arenas and reference each other by index, so handles
// survive block creation and drainage; a drained block is simply unlinked
// and abandoned in place.

// none is the null index for all arena links.
const none = -1

// vertexNode is one vertex's slot in the arena. prev/next link siblings
// inside the owning block's member list; block is the owner's arena index,
// cleared to none once the vertex has been emitted.
type vertexNode struct {
	id    string
	prev  int
	next  int
	block int
}

// blockNode is one refinement cell. head/tail bound the member list
// (vertex indices); prev/next link the block chain. stamp records the round
// of the block's most recent split and split the block that round created,
// so every vertex leaving this block within one round lands in the same
// target.
type blockNode struct {
	head  int
	tail  int
	prev  int
	next  int
	stamp int
	split int
}

// partition is the refinement structure for one LexBFS run. complement
// fixes the split-insertion side for the whole run.
type partition struct {
	complement bool
	verts      []vertexNode
	blocks     []blockNode
	index      map[string]int // vertex ID → arena index, fixed for the run
	head       int            // front block of the chain; none when consumed
}

// newPartition seeds a partition with a single block holding every vertex
// of seed, in seed order.
func newPartition(seed []string, complement bool) *partition {
	p := &partition{
		complement: complement,
		verts:      make([]vertexNode, len(seed)),
		index:      make(map[string]int, len(seed)),
		head:       none,
	}
	if len(seed) == 0 {
		return p
	}

	for i, id := range seed {
		p.verts[i] = vertexNode{id: id, prev: i - 1, next: i + 1, block: 0}
		p.index[id] = i
	}
	p.verts[0].prev = none
	p.verts[len(seed)-1].next = none

	p.blocks = append(p.blocks, blockNode{
		head: 0, tail: len(seed) - 1,
		prev: none, next: none,
		split: none,
	})
	p.head = 0

	return p
}

// empty reports whether every vertex has been emitted.
func (p *partition) empty() bool { return p.head == none }

// pop removes and returns the front vertex of the front block, unlinking
// the block from the chain if it drains. ok is false once the partition is
// consumed.
func (p *partition) pop() (id string, ok bool) {
	if p.head == none {
		return "", false
	}
	b := &p.blocks[p.head]
	vi := b.head
	v := &p.verts[vi]

	b.head = v.next
	if b.head != none {
		p.verts[b.head].prev = none
	} else {
		// front block drained: advance the chain head past it
		if b.next != none {
			p.blocks[b.next].prev = none
		}
		p.head = b.next
	}

	v.block = none // emitted: future splits skip this vertex
	v.prev, v.next = none, none

	return v.id, true
}

// blockOf returns the arena index of the block owning vertex vi, or none
// if vi has been emitted.
func (p *partition) blockOf(vi int) int { return p.verts[vi].block }

// ensureSplitTarget returns the block receiving vertices that split away
// from block s during the given round, creating and chaining it on first
// use. Standard mode inserts the target before s and promotes it to chain
// head when s was the head; complement mode inserts after s, never
// promoting. At most one target exists per (block, round) pair.
func (p *partition) ensureSplitTarget(s, round int) int {
	if p.blocks[s].stamp == round {
		return p.blocks[s].split
	}

	t := len(p.blocks)
	p.blocks = append(p.blocks, blockNode{head: none, tail: none, prev: none, next: none, split: none})
	sb := &p.blocks[s] // re-taken: append may relocate the arena
	tb := &p.blocks[t]

	if p.complement {
		// insert t after s
		tb.prev = s
		tb.next = sb.next
		if sb.next != none {
			p.blocks[sb.next].prev = t
		}
		sb.next = t
	} else {
		// insert t before s
		tb.next = s
		tb.prev = sb.prev
		if sb.prev != none {
			p.blocks[sb.prev].next = t
		}
		sb.prev = t
		if p.head == s {
			p.head = t
		}
	}

	sb.stamp = round
	sb.split = t

	return t
}

// move appends vertex vi to block t's member list (preserving relative tie
// order among arrivals) and detaches it from block s, unlinking s from the
// chain if it drains. All pointer surgery is O(1).
func (p *partition) move(vi, s, t int) {
	v := &p.verts[vi]

	// detach from s
	if v.prev != none {
		p.verts[v.prev].next = v.next
	} else {
		p.blocks[s].head = v.next
	}
	if v.next != none {
		p.verts[v.next].prev = v.prev
	} else {
		p.blocks[s].tail = v.prev
	}
	if p.blocks[s].head == none {
		p.unlink(s)
	}

	// append to t
	tb := &p.blocks[t]
	v.prev, v.next = tb.tail, none
	if tb.tail != none {
		p.verts[tb.tail].next = vi
	} else {
		tb.head = vi
	}
	tb.tail = vi
	v.block = t
}

// unlink removes a drained block from the chain, advancing the head when
// the head itself drained.
func (p *partition) unlink(b int) {
	bb := &p.blocks[b]
	if bb.prev != none {
		p.blocks[bb.prev].next = bb.next
	}
	if bb.next != none {
		p.blocks[bb.next].prev = bb.prev
	}
	if p.head == b {
		p.head = bb.next
	}
	bb.prev, bb.next = none, none
}
