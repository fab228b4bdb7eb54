package hashlife

import "github.com/nicbytes/hashlife/automaton"

// step computes the next generation of the center half of n: the result
// has level n.Level()-1 and represents the cells one generation advanced
// from n's center. Precondition: n.Level() >= 2; violating this is a
// programming error.
func (c *cache) step(n *Node) *Node {
	if n.level < 2 {
		panic("hashlife: step requires a node of level >= 2")
	}

	if result, ok := c.steps.get(n); ok {
		return result
	}

	var result *Node
	switch {
	case n.population == 0:
		// An all-dead node steps to its own all-dead child: empty(level)
		// is built recursively via join so empty(k).Children().NW is
		// already the canonical empty(k-1), and Conway's rule never
		// births a cell with zero live neighbors anywhere.
		result = n.children.NW
	case n.level == 2:
		result = c.stepBase(n)
	default:
		result = c.stepRecursive(n)
	}

	c.steps.set(n, result)
	return result
}

// stepBase handles the level-2 case: n's 16 grand-automata form a 4x4
// block, and the four center cells are advanced directly via SimB3S23
// over their eight neighbors in that block.
func (c *cache) stepBase(n *Node) *Node {
	ga := n.GrandAutomata()
	grid := [4][4]automaton.Automaton{
		{ga.NWNW, ga.NWNE, ga.NENW, ga.NENE},
		{ga.NWSW, ga.NWSE, ga.NESW, ga.NESE},
		{ga.SWNW, ga.SWNE, ga.SENW, ga.SENE},
		{ga.SWSW, ga.SWSE, ga.SESW, ga.SESE},
	}
	next := func(row, col int) *Node {
		center := grid[row][col]
		var neighbors [8]automaton.Automaton
		i := 0
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				neighbors[i] = grid[row+dr][col+dc]
				i++
			}
		}
		result := automaton.SimB3S23(center,
			neighbors[0], neighbors[1], neighbors[2], neighbors[3],
			neighbors[4], neighbors[5], neighbors[6], neighbors[7])
		return c.makeAutomata(result)
	}
	return c.join(next(1, 1), next(1, 2), next(2, 1), next(2, 2))
}

// stepRecursive handles the level >= 3 case via the classical Hashlife
// "nonants": nine overlapping level-(k-1) sub-nodes (the four direct
// children plus the four edge midpoints and the center, each obtained by
// joining grandchildren), each stepped recursively to level k-2, then
// recombined into the final level-(k-1) result.
func (c *cache) stepRecursive(n *Node) *Node {
	ch := n.Children()
	nwc, nec := ch.NW.Children(), ch.NE.Children()
	swc, sec := ch.SW.Children(), ch.SE.Children()

	nw := ch.NW
	ne := ch.NE
	sw := ch.SW
	se := ch.SE
	north := c.join(nwc.NE, nec.NW, nwc.SE, nec.SW)
	west := c.join(nwc.SW, nwc.SE, swc.NW, swc.NE)
	center := c.join(nwc.SE, nec.SW, swc.NE, sec.NW)
	east := c.join(nec.SW, nec.SE, sec.NW, sec.NE)
	south := c.join(swc.NE, sec.NW, swc.SE, sec.SW)

	nwStep := c.step(nw)
	nStep := c.step(north)
	neStep := c.step(ne)
	wStep := c.step(west)
	cStep := c.step(center)
	eStep := c.step(east)
	swStep := c.step(sw)
	sStep := c.step(south)
	seStep := c.step(se)

	resultNW := c.join(nwStep.Children().SE, nStep.Children().SW, wStep.Children().NE, cStep.Children().NW)
	resultNE := c.join(nStep.Children().SE, neStep.Children().SW, cStep.Children().NE, eStep.Children().NW)
	resultSW := c.join(wStep.Children().SE, cStep.Children().SW, swStep.Children().NE, sStep.Children().NW)
	resultSE := c.join(cStep.Children().SE, eStep.Children().SW, sStep.Children().NE, seStep.Children().NW)

	return c.join(resultNW, resultNE, resultSW, resultSE)
}
