// Package automaton implements the binary cell value of a two-state
// cellular automaton and the B3/S23 (Conway's Life) transition rule.
package automaton

// Automaton is a single cell's value. Its integer value doubles as its
// contribution to a population count, so summing a slice of Automaton
// values (after a conversion to int) gives a live-neighbor count directly.
type Automaton uint8

const (
	Dead  Automaton = 0
	Alive Automaton = 1
)

// IsAlive reports whether a is Alive.
func (a Automaton) IsAlive() bool {
	return a == Alive
}

// String renders a as "0" or "1", matching the engine's byte encoding.
func (a Automaton) String() string {
	if a == Alive {
		return "1"
	}
	return "0"
}

// FromByte reads b as 0 (Dead) or any non-zero value (Alive), matching
// from_array's input byte encoding.
func FromByte(b byte) Automaton {
	if b != 0 {
		return Alive
	}
	return Dead
}

// Sim is the generic rule: given a center value and its neighbors, center
// survives (stays or becomes Alive) according to birth/survival sets keyed
// on the count of live neighbors. Only len(neighbors) matters for shape;
// the order of neighbors is immaterial, only their sum is used.
func Sim(center Automaton, neighbors []Automaton, birth, survival []int) Automaton {
	living := 0
	for _, n := range neighbors {
		living += int(n)
	}
	var set []int
	if center.IsAlive() {
		set = survival
	} else {
		set = birth
	}
	for _, want := range set {
		if want == living {
			return Alive
		}
	}
	return Dead
}

// SimB3S23 specializes Sim to Conway's Life: birth on exactly 3 live
// neighbors, survival on 2 or 3. Neighbor order is immaterial.
func SimB3S23(center, n1, n2, n3, n4, n5, n6, n7, n8 Automaton) Automaton {
	return Sim(center, []Automaton{n1, n2, n3, n4, n5, n6, n7, n8}, []int{3}, []int{2, 3})
}
