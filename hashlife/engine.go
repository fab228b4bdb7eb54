package hashlife

import "github.com/nicbytes/hashlife/automaton"

// Hashlife is a memoized quadtree simulator for a single Conway-style
// cellular automaton universe. It is single-threaded and synchronous:
// every method mutates the engine's interning cache in place, and
// concurrent use of one Hashlife from multiple goroutines is unsupported
// and undefined. Independent Hashlife values are fully isolated.
type Hashlife struct {
	cache    *cache
	edge     Edge
	top      *Node
	previous *Node
	gen      uint64
}

// GetGeneration returns the number of completed NextGeneration calls.
func (h *Hashlife) GetGeneration() uint64 {
	return h.gen
}

// liftToLevelOne promotes a level-0 root to level 1 by embedding it as
// the southeast child of an otherwise-empty level-1 node. Every other
// operation in this package assumes a root has at least one level of
// children once it participates in expandEmptyBorder or the torus
// construction; a bare 1x1 universe is the only input shape that can
// produce a level-0 root (size == 0 in FromArray), so this lift is
// applied lazily, once, the first time NextGeneration needs children.
func (h *Hashlife) liftToLevelOne() {
	if h.top == nil || h.top.level != 0 {
		return
	}
	e := h.cache.empty(0)
	h.top = h.cache.join(e, e, e, h.top)
}

// expandEmptyBorder surrounds each of n's four children with empty
// siblings so that the result's grandchildren contain n's children
// centered within it, producing a level-(n.Level()+1) node. Precondition:
// n.Level() >= 1 (programming error otherwise).
func (c *cache) expandEmptyBorder(n *Node) *Node {
	if n.level < 1 {
		panic("hashlife: expandEmptyBorder requires a node of level >= 1")
	}
	ch := n.Children()
	e := c.empty(n.level - 1)
	newNW := c.join(e, e, e, ch.NW)
	newNE := c.join(e, e, ch.NE, e)
	newSW := c.join(e, ch.SW, e, e)
	newSE := c.join(ch.SE, e, e, e)
	return c.join(newNW, newNE, newSW, newSE)
}

// centerGrandchildren returns the four level-(n.Level()-2) nodes sitting
// at the exact center of n: the inverse extraction of expandEmptyBorder,
// also used internally by the step recursion's "nonant" decomposition.
func centerGrandchildren(n *Node) (nw, ne, sw, se *Node) {
	ch := n.Children()
	return ch.NW.Children().SE, ch.NE.Children().SW, ch.SW.Children().NE, ch.SE.Children().NW
}

// invertQuadrants swaps n's nw/se and ne/sw children, used by the Torus
// edge policy to build a node whose neighborhoods wrap at n's own size.
func invertQuadrants(n *Node, c *cache) *Node {
	ch := n.Children()
	return c.join(ch.SE, ch.SW, ch.NE, ch.NW)
}

// NextGeneration advances top by one generation according to the
// engine's edge policy. It is a no-op if top is absent.
func (h *Hashlife) NextGeneration() {
	if h.top == nil {
		return
	}
	h.liftToLevelOne()

	var next *Node
	switch h.edge {
	case Truncate:
		next = h.cache.step(h.cache.expandEmptyBorder(h.top))
	case Torus:
		inverted := invertQuadrants(h.top, h.cache)
		wrapped := h.cache.join(inverted, inverted, inverted, inverted)
		next = h.cache.step(wrapped)
	case Infinite:
		expanded := h.cache.expandEmptyBorder(h.cache.expandEmptyBorder(h.top))
		stepped := h.cache.step(expanded)
		cnw, cne, csw, cse := centerGrandchildren(stepped)
		outerRing := stepped.population - (cnw.population + cne.population + csw.population + cse.population)
		if outerRing == 0 {
			next = h.cache.join(cnw, cne, csw, cse)
		} else {
			next = stepped
		}
	default:
		panic("hashlife: unknown edge policy")
	}

	h.previous = h.top
	h.top = next
	h.gen++
}

// Get returns the automaton at (x, y) in engine coordinates, or false if
// the engine has no root yet.
func (h *Hashlife) Get(x, y int) (automaton.Automaton, bool) {
	if h.top == nil {
		return automaton.Dead, false
	}
	// At a level-l node centered so its own split falls at the current
	// (x, y) origin, the child's split sits half the child's own side
	// further out: childHalf = 2^(l-2), i.e. half of the node's own
	// half. Recentering (x, y) by childHalf after each choice keeps the
	// invariant "the current node's split is at the origin" true at
	// every level, mirroring the repeated floor-division-by-2 the
	// point-query coordinate sequence performs in the original design.
	n := h.top
	for n.level > 0 {
		half := 1 << uint(n.level-1)
		childHalf := half >> 1
		ch := n.Children()
		switch {
		case x < 0 && y >= 0:
			n, x, y = ch.NW, x+childHalf, y-childHalf
		case x >= 0 && y >= 0:
			n, x, y = ch.NE, x-childHalf, y-childHalf
		case x < 0 && y < 0:
			n, x, y = ch.SW, x+childHalf, y+childHalf
		default:
			n, x, y = ch.SE, x-childHalf, y+childHalf
		}
	}
	return n.Leaf(), true
}
