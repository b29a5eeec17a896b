package automaton

// Determinized returns a language-equivalent deterministic automaton via
// Rabin-Scott subset construction: explore reachable state subsets from the
// (epsilon-closed) initial set, one output state per distinct subset.
// Deterministic automata are returned unchanged. The result keeps the source
// alphabet; for epsilon automata the epsilon column of the result is empty,
// which executes identically (the slot was never a consumable symbol).
//
// The empty subset becomes an ordinary sink state, so the result is complete
// over the consumable letters.
func (a *Automaton) Determinized() *Automaton {
	if a.kind == Deterministic {
		return a
	}

	start := a.initSet.clone()
	a.closeSet(start)

	ids := map[string]int{start.key(): 0}
	subsets := []stateSet{start}
	frontier := []int{0}

	// Subset ids are assigned in discovery order and the frontier is FIFO,
	// so rows come out in id order.
	var rows [][][]int
	var finals []int
	if start.intersects(a.finalSet) {
		finals = append(finals, 0)
	}

	for len(frontier) > 0 {
		id := frontier[0]
		frontier = frontier[1:]
		cur := subsets[id]

		row := make([][]int, a.alphabet.size)
		for letter := 0; letter < a.alphabet.size; letter++ {
			if letter == a.epsilonSlot {
				continue
			}
			next := newStateSet(a.states)
			for _, s := range cur.members() {
				for _, to := range a.table[s][letter] {
					next.add(to)
				}
			}
			a.closeSet(next)

			key := next.key()
			nid, seen := ids[key]
			if !seen {
				nid = len(subsets)
				ids[key] = nid
				subsets = append(subsets, next)
				frontier = append(frontier, nid)
				if next.intersects(a.finalSet) {
					finals = append(finals, nid)
				}
			}
			row[letter] = []int{nid}
		}
		rows = append(rows, row)
	}

	det, err := New(Deterministic, len(subsets), a.alphabet, rows, []int{0}, finals)
	if err != nil {
		panic(err)
	}
	return det
}
