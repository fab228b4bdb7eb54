// Package bbox implements a signed, y-up integer bounding box used both
// to clip a source array during quadtree construction and to index a
// row-major viewport buffer during rendering.
package bbox

// BoundingBox is an axis-aligned rectangle in a y-up coordinate system:
// Top is the largest y coordinate covered, Bottom the smallest. Callers
// must keep Top >= Bottom and Left <= Right; a box with Top < Bottom or
// Left > Right describes an empty region and Width/Height report <= 0
// for it.
type BoundingBox struct {
	Top, Bottom, Left, Right int
}

// New constructs a BoundingBox from its four edges.
func New(top, bottom, left, right int) BoundingBox {
	return BoundingBox{Top: top, Bottom: bottom, Left: left, Right: right}
}

// Width returns the number of columns the box spans.
func (b BoundingBox) Width() int {
	return b.Right - b.Left + 1
}

// Height returns the number of rows the box spans.
func (b BoundingBox) Height() int {
	return b.Top - b.Bottom + 1
}

// Index returns the offset of (x, y) into a row-major buffer sized
// Width()*Height(), with row 0 at the top (y == Top).
func (b BoundingBox) Index(x, y int) int {
	return b.Width()*(b.Top-y) + (x - b.Left)
}

// Contains reports whether the point (x, y) lies inside b, edges included.
func (b BoundingBox) Contains(x, y int) bool {
	return x >= b.Left && x <= b.Right && y >= b.Bottom && y <= b.Top
}

// Intersects reports whether b and other overlap. Boxes that share only an
// edge are considered intersecting.
func (b BoundingBox) Intersects(other BoundingBox) bool {
	return b.Left <= other.Right && b.Right >= other.Left &&
		b.Bottom <= other.Top && b.Top >= other.Bottom
}

// Centered returns a BoundingBox of the given width and height centered on
// the origin, as used by FromArray to map a source buffer into engine
// coordinates: left = -floor(width/2), bottom = -floor(height/2).
func Centered(width, height int) BoundingBox {
	left := -floorDiv(width, 2)
	bottom := -floorDiv(height, 2)
	return BoundingBox{
		Top:    bottom + height - 1,
		Bottom: bottom,
		Left:   left,
		Right:  left + width - 1,
	}
}

// floorDiv computes floor(a/b) for a positive b, matching Euclidean
// division toward negative infinity rather than Go's truncation toward
// zero.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
