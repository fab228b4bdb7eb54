package hashlife

import (
	"github.com/nicbytes/hashlife/automaton"
	"github.com/nicbytes/hashlife/bbox"
)

// FromArray builds a new Hashlife engine from a row-major byte buffer of
// 0/1 values, width cells wide and height cells tall, row 0 at the top.
// The source array is centered on the engine's origin: a width x height
// array maps to engine coordinates x in [-floor(width/2), width-1-
// floor(width/2)] and y in [-floor(height/2), height-1-floor(height/2)].
// The root level is the smallest L with 2^L >= max(width, height); cells
// outside the source array but inside the root's coverage start dead.
//
// FromArray panics if len(buffer) != width*height.
func FromArray(buffer []byte, width, height int, edge Edge) *Hashlife {
	if len(buffer) != width*height {
		panic("hashlife: buffer length must equal width*height")
	}

	c := newCache()
	viewport := bbox.Centered(width, height)

	maxDim := width
	if height > maxDim {
		maxDim = height
	}
	size := 0
	for (1 << uint(size)) < maxDim {
		size++
	}

	top := c.construct(buffer, viewport, size, 0, 0)
	return &Hashlife{cache: c, edge: edge, top: top}
}

// construct recursively builds the level-sized node centered at (cx, cy).
// A level-L node (L >= 1) spans [cx-half, cx+half-1] on each axis, where
// half = 2^(L-1); a level-0 node is the single point (cx, cy). Children
// split this span in half; because half is odd exactly when L == 1, the
// offset from a parent's center to its west/south child's center
// (childHalfWest) and to its east/north child's center (childHalfEast)
// coincide for L >= 2 but differ by one at the final L == 1 step, where
// the west child lands one cell further from center than the east child.
func (c *cache) construct(buffer []byte, viewport bbox.BoundingBox, level, cx, cy int) *Node {
	if level == 0 {
		if viewport.Contains(cx, cy) {
			return c.makeAutomata(automaton.FromByte(buffer[viewport.Index(cx, cy)]))
		}
		return c.dead
	}

	half := 1 << uint(level-1)
	box := bbox.New(cy+half-1, cy-half, cx-half, cx+half-1)
	if !box.Intersects(viewport) {
		return c.empty(level)
	}

	childHalfEast := 0
	if level >= 2 {
		childHalfEast = 1 << uint(level-2)
	}
	childHalfWest := half - childHalfEast

	nw := c.construct(buffer, viewport, level-1, cx-childHalfWest, cy+childHalfEast)
	ne := c.construct(buffer, viewport, level-1, cx+childHalfEast, cy+childHalfEast)
	sw := c.construct(buffer, viewport, level-1, cx-childHalfWest, cy-childHalfWest)
	se := c.construct(buffer, viewport, level-1, cx+childHalfEast, cy-childHalfWest)
	return c.join(nw, ne, sw, se)
}
