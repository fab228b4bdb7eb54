package bbox_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/nicbytes/hashlife/bbox"
)

func TestWidthHeight(t *testing.T) {
	c := qt.New(t)
	b := bbox.New(1, -2, -3, 4)
	c.Assert(b.Width(), qt.Equals, 8)
	c.Assert(b.Height(), qt.Equals, 4)
}

func TestIndexRowMajorTopFirst(t *testing.T) {
	c := qt.New(t)
	// 3x3 box centered at the origin: top=1, bottom=-1, left=-1, right=1.
	b := bbox.Centered(3, 3)
	c.Assert(b.Index(-1, 1), qt.Equals, 0) // top-left corner is index 0
	c.Assert(b.Index(0, 1), qt.Equals, 1)
	c.Assert(b.Index(1, 1), qt.Equals, 2)
	c.Assert(b.Index(-1, 0), qt.Equals, 3) // next row down
	c.Assert(b.Index(1, -1), qt.Equals, 8) // bottom-right corner is the last index
}

func TestContains(t *testing.T) {
	c := qt.New(t)
	b := bbox.New(1, -1, -1, 1)
	c.Assert(b.Contains(0, 0), qt.IsTrue)
	c.Assert(b.Contains(1, 1), qt.IsTrue)
	c.Assert(b.Contains(-1, -1), qt.IsTrue)
	c.Assert(b.Contains(2, 0), qt.IsFalse)
	c.Assert(b.Contains(0, 2), qt.IsFalse)
}

func TestIntersects(t *testing.T) {
	c := qt.New(t)
	a := bbox.New(1, -1, -1, 1)
	touching := bbox.New(3, 1, -1, 1) // shares the top edge only
	disjoint := bbox.New(10, 8, 10, 12)
	c.Assert(a.Intersects(touching), qt.IsTrue)
	c.Assert(a.Intersects(disjoint), qt.IsFalse)
}

func TestCenteredOddAndEven(t *testing.T) {
	c := qt.New(t)
	odd := bbox.Centered(3, 3)
	c.Assert(odd, qt.Equals, bbox.New(1, -1, -1, 1))

	even := bbox.Centered(2, 2)
	c.Assert(even, qt.Equals, bbox.New(0, -1, -1, 0))
}
