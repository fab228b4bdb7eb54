package hashlife

import "github.com/nicbytes/hashlife/automaton"

// Node is an immutable quadtree node representing a square region of side
// 2^Level. Nodes are created exclusively through a cache's interning
// methods and are never mutated after construction; a "new" generation is
// a freshly produced node whose unchanged subregions share storage with
// the previous generation.
//
// Two nodes are structurally equal iff they have the same level,
// population, and content hash. Because every Node reachable from a
// [Hashlife] engine is canonicalized by that engine's cache,
// pointer identity may be used as a fast (and, for same-cache nodes,
// exact) equality test.
type Node struct {
	level      int
	population int
	hash       uint64

	// children is nil iff level == 0, in which case leaf holds the cell
	// value. It is non-nil for every level >= 1.
	children *Children
	leaf     automaton.Automaton
}

// Children is the ordered set of four same-level sibling nodes that make
// up a non-leaf Node, in the nw, ne, sw, se quadrants. North is up
// (smaller index means further north in the array-layout sense inverted
// by the engine); east is right.
type Children struct {
	NW, NE, SW, SE *Node
}

// GrandChildren exposes the 16 level-0-relative sub-children of a
// level-2 node: the children of each of its four children, labelled
// {nw,ne,sw,se} x {nw,ne,sw,se}. Only valid for a level-2 Node.
type GrandChildren struct {
	NWNW, NWNE, NWSW, NWSE *Node
	NENW, NENE, NESW, NESE *Node
	SWNW, SWNE, SWSW, SWSE *Node
	SENW, SENE, SESW, SESE *Node
}

// GrandAutomata exposes the 16 leaf automaton values of a level-2 node,
// unwrapping each of its GrandChildren leaves directly.
type GrandAutomata struct {
	NWNW, NWNE, NWSW, NWSE automaton.Automaton
	NENW, NENE, NESW, NESE automaton.Automaton
	SWNW, SWNE, SWSW, SWSE automaton.Automaton
	SENW, SENE, SESW, SESE automaton.Automaton
}

// Level returns log2 of the side length n covers; 0 for a single cell.
func (n *Node) Level() int { return n.level }

// Population returns the total count of live cells in n's region.
func (n *Node) Population() int { return n.population }

// Hash returns n's precomputed 64-bit content hash.
func (n *Node) Hash() uint64 { return n.hash }

// IsLeaf reports whether n is a level-0 node.
func (n *Node) IsLeaf() bool { return n.children == nil }

// Leaf returns n's cell value. It panics if n is not a leaf.
func (n *Node) Leaf() automaton.Automaton {
	if !n.IsLeaf() {
		panic("hashlife: Leaf called on a non-leaf node")
	}
	return n.leaf
}

// Children returns n's four quadrant children. It panics if n is a leaf.
func (n *Node) Children() Children {
	if n.IsLeaf() {
		panic("hashlife: Children called on a leaf node")
	}
	return *n.children
}

// GrandChildren returns n's 16 sub-children. It panics if n.Level() != 2.
func (n *Node) GrandChildren() GrandChildren {
	if n.level != 2 {
		panic("hashlife: GrandChildren requires a level-2 node")
	}
	ch := n.Children()
	nw, ne, sw, se := ch.NW.Children(), ch.NE.Children(), ch.SW.Children(), ch.SE.Children()
	return GrandChildren{
		NWNW: nw.NW, NWNE: nw.NE, NWSW: nw.SW, NWSE: nw.SE,
		NENW: ne.NW, NENE: ne.NE, NESW: ne.SW, NESE: ne.SE,
		SWNW: sw.NW, SWNE: sw.NE, SWSW: sw.SW, SWSE: sw.SE,
		SENW: se.NW, SENE: se.NE, SESW: se.SW, SESE: se.SE,
	}
}

// GrandAutomata returns n's 16 leaf automaton values. It panics if
// n.Level() != 2.
func (n *Node) GrandAutomata() GrandAutomata {
	gc := n.GrandChildren()
	return GrandAutomata{
		NWNW: gc.NWNW.Leaf(), NWNE: gc.NWNE.Leaf(), NWSW: gc.NWSW.Leaf(), NWSE: gc.NWSE.Leaf(),
		NENW: gc.NENW.Leaf(), NENE: gc.NENE.Leaf(), NESW: gc.NESW.Leaf(), NESE: gc.NESE.Leaf(),
		SWNW: gc.SWNW.Leaf(), SWNE: gc.SWNE.Leaf(), SWSW: gc.SWSW.Leaf(), SWSE: gc.SWSE.Leaf(),
		SENW: gc.SENW.Leaf(), SENE: gc.SENE.Leaf(), SESW: gc.SESW.Leaf(), SESE: gc.SESE.Leaf(),
	}
}
