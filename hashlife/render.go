package hashlife

import "github.com/nicbytes/hashlife/bbox"

// nodeBox returns the absolute bounding box a node centered at (cx, cy)
// covers, using the same center/half convention as construct.
func nodeBox(level, cx, cy int) bbox.BoundingBox {
	if level == 0 {
		return bbox.New(cy, cy, cx, cx)
	}
	half := 1 << uint(level-1)
	return bbox.New(cy+half-1, cy-half, cx-half, cx+half-1)
}

// childCenters returns the (cx, cy) centers of a level node's nw, ne, sw,
// se children given its own center. See construct for why the west
// offset and east offset differ at the final (level 1) step.
func childCenters(level, cx, cy int) (nwx, nwy, nex, ney, swx, swy, sex, sey int) {
	half := 1 << uint(level-1)
	childHalfEast := 0
	if level >= 2 {
		childHalfEast = 1 << uint(level-2)
	}
	childHalfWest := half - childHalfEast
	return cx - childHalfWest, cy + childHalfEast,
		cx + childHalfEast, cy + childHalfEast,
		cx - childHalfWest, cy - childHalfWest,
		cx + childHalfEast, cy - childHalfWest
}

// DrawToViewportBuffer writes every live or dead cell of the engine's
// current generation that falls within viewport into buffer (row-major,
// sized viewport.Width()*viewport.Height(), 0/1 per cell). Subtrees
// entirely outside viewport are skipped without recursing into them;
// subtrees with zero population are skipped too, on the assumption that
// buffer arrives zero-initialized (callers that reuse a buffer across
// frames must use DrawDiffToViewportArray or clear it themselves).
func (h *Hashlife) DrawToViewportBuffer(buffer []byte, viewport bbox.BoundingBox) {
	if h.top == nil {
		return
	}
	drawNode(h.top, 0, 0, viewport, buffer)
}

func drawNode(n *Node, cx, cy int, viewport bbox.BoundingBox, buffer []byte) {
	if !nodeBox(n.level, cx, cy).Intersects(viewport) {
		return
	}
	if n.IsLeaf() {
		if viewport.Contains(cx, cy) {
			buffer[viewport.Index(cx, cy)] = byte(n.leaf)
		}
		return
	}
	if n.population == 0 {
		return
	}
	nwx, nwy, nex, ney, swx, swy, sex, sey := childCenters(n.level, cx, cy)
	ch := n.Children()
	drawNode(ch.NW, nwx, nwy, viewport, buffer)
	drawNode(ch.NE, nex, ney, viewport, buffer)
	drawNode(ch.SW, swx, swy, viewport, buffer)
	drawNode(ch.SE, sex, sey, viewport, buffer)
}

// DrawDiffToViewportArray writes only the cells that differ between the
// engine's current and previous generation, within viewport, into
// buffer. It descends the current and previous root in lock step and
// prunes any subtree pair that shares a canonical pointer, since
// hash-consing guarantees identical pointers mean identical content. It
// is a no-op (nothing written) before the first NextGeneration call.
//
// If the previous and current roots diverge in level (the Infinite edge
// policy can grow or shrink the root by one level per step), the
// comparison falls back to treating the mismatched subtree as fully
// changed and redraws it in full; this is always correct, only
// occasionally less precise than a byte-perfect diff.
func (h *Hashlife) DrawDiffToViewportArray(buffer []byte, viewport bbox.BoundingBox) {
	if h.top == nil || h.previous == nil {
		return
	}
	drawDiffNode(h.top, h.previous, 0, 0, viewport, buffer)
}

func drawDiffNode(n, prev *Node, cx, cy int, viewport bbox.BoundingBox, buffer []byte) {
	if n == prev {
		return
	}
	if !nodeBox(n.level, cx, cy).Intersects(viewport) {
		return
	}
	if n.IsLeaf() {
		if viewport.Contains(cx, cy) {
			buffer[viewport.Index(cx, cy)] = byte(n.leaf)
		}
		return
	}
	var pnw, pne, psw, pse *Node
	if prev != nil && !prev.IsLeaf() && prev.level == n.level {
		pch := prev.Children()
		pnw, pne, psw, pse = pch.NW, pch.NE, pch.SW, pch.SE
	}
	nwx, nwy, nex, ney, swx, swy, sex, sey := childCenters(n.level, cx, cy)
	ch := n.Children()
	drawDiffNode(ch.NW, pnw, nwx, nwy, viewport, buffer)
	drawDiffNode(ch.NE, pne, nex, ney, viewport, buffer)
	drawDiffNode(ch.SW, psw, swx, swy, viewport, buffer)
	drawDiffNode(ch.SE, pse, sex, sey, viewport, buffer)
}
