package hashlife

import (
	"hash/maphash"

	"github.com/nicbytes/hashlife/automaton"
)

// nodeKey is the content key a Node is interned under: either a leaf
// value (children nil) or the four already-canonical child pointers that
// make up a join. Two keys are equal iff they describe the same content,
// which for a non-leaf means the same four child pointers in the same
// quadrants — pointer equality suffices because children are themselves
// canonical. Every field is itself comparable, so nodeKey can key a
// native Go map directly; there is no need for a generic hash-bucket
// indirection here.
type nodeKey struct {
	leaf           automaton.Automaton
	isLeaf         bool
	nw, ne, sw, se *Node
}

// nodeTable interns Node values by content so that content-equivalent
// nodes share one canonical pointer. Every Node that exists (leaf or
// join) is produced and retained here, so this one table is both the
// join table and the full canonical-node registry. Entries are held
// strongly because the cache must keep every canonical node alive for as
// long as it lives itself.
type nodeTable struct {
	seed  maphash.Seed
	table map[nodeKey]*Node
}

func newNodeTable() *nodeTable {
	return &nodeTable{
		seed:  maphash.MakeSeed(),
		table: make(map[nodeKey]*Node),
	}
}

// contentHash computes the 64-bit content hash a Node exposes through
// Hash(): a leaf's hash depends solely on its value, a non-leaf's solely
// on the (already-canonical) hashes of its four children, in nw/ne/sw/se
// order.
func (t *nodeTable) contentHash(k nodeKey) uint64 {
	var h maphash.Hash
	h.SetSeed(t.seed)
	if k.isLeaf {
		maphash.WriteComparable(&h, k.leaf)
	} else {
		maphash.WriteComparable(&h, k.nw.hash)
		maphash.WriteComparable(&h, k.ne.hash)
		maphash.WriteComparable(&h, k.sw.hash)
		maphash.WriteComparable(&h, k.se.hash)
	}
	return h.Sum64()
}

// internLeaf returns the canonical leaf node for a, constructing and
// caching it on first demand.
func (t *nodeTable) internLeaf(a automaton.Automaton) *Node {
	key := nodeKey{leaf: a, isLeaf: true}
	if n, ok := t.table[key]; ok {
		return n
	}
	n := &Node{level: 0, population: int(a), hash: t.contentHash(key), leaf: a}
	t.table[key] = n
	return n
}

// internChildren returns the canonical level-(nw.level+1) node for the
// four children, constructing and caching it on first demand.
//
// Preconditions: nw, ne, sw, se all share the same level. Violating this
// is a programming error.
func (t *nodeTable) internChildren(nw, ne, sw, se *Node) *Node {
	if nw.level != ne.level || nw.level != sw.level || nw.level != se.level {
		panic("hashlife: join requires four children of equal level")
	}
	key := nodeKey{nw: nw, ne: ne, sw: sw, se: se}
	if n, ok := t.table[key]; ok {
		return n
	}
	n := &Node{
		level:      nw.level + 1,
		population: nw.population + ne.population + sw.population + se.population,
		hash:       t.contentHash(key),
		children:   &Children{NW: nw, NE: ne, SW: sw, SE: se},
	}
	t.table[key] = n
	return n
}

// stepCache memoizes step(n) results keyed by n's own canonical pointer,
// which is valid precisely because nodes are canonical: two calls to
// step with structurally equal input share the same *Node key, so a
// native map suffices without any custom equivalence relation.
type stepCache struct {
	table        map[*Node]*Node
	hits, misses int
}

func newStepCache() *stepCache {
	return &stepCache{table: make(map[*Node]*Node)}
}

func (s *stepCache) get(n *Node) (*Node, bool) {
	if s == nil {
		return nil, false
	}
	result, ok := s.table[n]
	if ok {
		s.hits++
	} else {
		s.misses++
	}
	return result, ok
}

func (s *stepCache) set(n, result *Node) {
	s.table[n] = result
}

// cache is the interning cache underlying a Hashlife engine: a join
// table mapping content to canonical node, a step memo table, a
// per-level empty-node table, and the Dead/Alive singleton leaves. It is
// the sole shared mutable resource a [Hashlife] engine owns; it grows
// monotonically and is never evicted by the core.
type cache struct {
	nodes        *nodeTable
	steps        *stepCache
	emptyByLevel []*Node
	dead, alive  *Node
}

func newCache() *cache {
	c := &cache{
		nodes: newNodeTable(),
		steps: newStepCache(),
	}
	c.dead = c.nodes.internLeaf(automaton.Dead)
	c.alive = c.nodes.internLeaf(automaton.Alive)
	return c
}

// makeAutomata returns the canonical leaf node for a.
func (c *cache) makeAutomata(a automaton.Automaton) *Node {
	if a == automaton.Dead {
		return c.dead
	}
	return c.nodes.internLeaf(a)
}

// join returns the canonical level-(nw.level+1) node built from the four
// given same-level children, constructing it on first demand.
func (c *cache) join(nw, ne, sw, se *Node) *Node {
	return c.nodes.internChildren(nw, ne, sw, se)
}

// empty returns the canonical all-dead node at level, building it (via
// join, recursively) on first demand. A level-k empty node shares all of
// its k smaller empty ancestors' storage: empty(k).Children().NW ==
// empty(k-1).
func (c *cache) empty(level int) *Node {
	for len(c.emptyByLevel) <= level {
		next := len(c.emptyByLevel)
		if next == 0 {
			c.emptyByLevel = append(c.emptyByLevel, c.dead)
			continue
		}
		sub := c.emptyByLevel[next-1]
		c.emptyByLevel = append(c.emptyByLevel, c.join(sub, sub, sub, sub))
	}
	return c.emptyByLevel[level]
}
