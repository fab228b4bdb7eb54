package automaton_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/nicbytes/hashlife/automaton"
)

func TestFromByte(t *testing.T) {
	c := qt.New(t)
	c.Assert(automaton.FromByte(0), qt.Equals, automaton.Dead)
	c.Assert(automaton.FromByte(1), qt.Equals, automaton.Alive)
	c.Assert(automaton.FromByte(42), qt.Equals, automaton.Alive)
}

func TestIsAlive(t *testing.T) {
	c := qt.New(t)
	c.Assert(automaton.Alive.IsAlive(), qt.IsTrue)
	c.Assert(automaton.Dead.IsAlive(), qt.IsFalse)
}

func TestSimB3S23(t *testing.T) {
	c := qt.New(t)
	D, A := automaton.Dead, automaton.Alive

	// Birth: exactly 3 live neighbors around a dead cell.
	c.Assert(automaton.SimB3S23(D, A, A, A, D, D, D, D, D), qt.Equals, A)
	// No birth on 2 or 4 neighbors.
	c.Assert(automaton.SimB3S23(D, A, A, D, D, D, D, D, D), qt.Equals, D)
	c.Assert(automaton.SimB3S23(D, A, A, A, A, D, D, D, D), qt.Equals, D)

	// Survival on 2 or 3 live neighbors.
	c.Assert(automaton.SimB3S23(A, A, A, D, D, D, D, D, D), qt.Equals, A)
	c.Assert(automaton.SimB3S23(A, A, A, A, D, D, D, D, D), qt.Equals, A)
	// Death by underpopulation or overcrowding.
	c.Assert(automaton.SimB3S23(A, A, D, D, D, D, D, D, D), qt.Equals, D)
	c.Assert(automaton.SimB3S23(A, A, A, A, A, D, D, D, D), qt.Equals, D)
}

func TestSimNeighborOrderImmaterial(t *testing.T) {
	c := qt.New(t)
	D, A := automaton.Dead, automaton.Alive
	a := automaton.SimB3S23(D, A, D, A, D, A, D, D, D)
	b := automaton.SimB3S23(D, D, D, D, A, A, A, D, D)
	c.Assert(a, qt.Equals, b)
}
