package hashlife

// Edge selects how the simulation treats cells beyond the original root's
// coverage.
type Edge int

const (
	// Infinite pads the root with dead cells and grows it as life spills
	// outward, contracting back down when the outer ring goes empty.
	Infinite Edge = iota
	// Torus wraps both axes at the original root size.
	Torus
	// Truncate clamps to the original root size; cells that would step
	// beyond it are permanently dead.
	Truncate
)

// String renders e as one of "Infinite", "Torus", "Truncate".
func (e Edge) String() string {
	switch e {
	case Infinite:
		return "Infinite"
	case Torus:
		return "Torus"
	case Truncate:
		return "Truncate"
	default:
		return "Edge(?)"
	}
}
