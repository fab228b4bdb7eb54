package hashlife

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/nicbytes/hashlife/automaton"
)

func TestFromArrayPanicsOnLengthMismatch(t *testing.T) {
	c := qt.New(t)
	c.Assert(func() { FromArray([]byte{0, 1, 0}, 2, 2, Truncate) },
		qt.PanicMatches, "hashlife: buffer length must equal width\\*height")
}

func TestFromArraySingleCell(t *testing.T) {
	c := qt.New(t)
	h := FromArray([]byte{1}, 1, 1, Truncate)
	c.Assert(h.top.Level(), qt.Equals, 0)
	v, ok := h.Get(0, 0)
	c.Assert(ok, qt.IsTrue)
	c.Assert(v, qt.Equals, automaton.Alive)
}

// TestFromArrayGetRoundTrip builds a 3x3 grid with one dead cell at its
// center and checks that every cell, including the padding ring the
// level-2 root (4x4) adds beyond the 3x3 source, reads back correctly.
// This matches the point-query scenario: the source occupies
// [-1,1]x[-1,1] and the padding ring sits at x == -2 or y == -2.
func TestFromArrayGetRoundTrip(t *testing.T) {
	c := qt.New(t)
	buffer := []byte{
		1, 1, 1,
		1, 0, 1,
		1, 1, 1,
	}
	h := FromArray(buffer, 3, 3, Truncate)
	c.Assert(h.top.Level(), qt.Equals, 2)

	v, ok := h.Get(0, 0)
	c.Assert(ok, qt.IsTrue)
	c.Assert(v, qt.Equals, automaton.Dead)

	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			if x == 0 && y == 0 {
				continue
			}
			v, ok := h.Get(x, y)
			c.Assert(ok, qt.IsTrue)
			c.Assert(v, qt.Equals, automaton.Alive, qt.Commentf("x=%d y=%d", x, y))
		}
	}

	for _, pt := range [][2]int{{-2, 0}, {0, -2}, {-2, -2}, {-2, 1}, {1, -2}} {
		v, ok := h.Get(pt[0], pt[1])
		c.Assert(ok, qt.IsTrue)
		c.Assert(v, qt.Equals, automaton.Dead, qt.Commentf("x=%d y=%d", pt[0], pt[1]))
	}
}

func TestConstructEmptyQuadrantIsCanonicalEmpty(t *testing.T) {
	c := qt.New(t)
	buffer := make([]byte, 16)
	buffer[2] = 1 // single live cell at (x=0, y=1), inside the NE quadrant
	h := FromArray(buffer, 4, 4, Truncate)
	c.Assert(h.top.Population(), qt.Equals, 1)
	// The SW child (west, south) of the level-2 root should be the
	// canonical empty level-1 node: nothing in that quadrant is live.
	c.Assert(h.top.Children().SW, qt.Equals, h.cache.empty(1))
}
