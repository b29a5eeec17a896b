package automaton

// computeClosures builds the per-state epsilon closure table with a worklist
// fixed point: seed with the state itself, follow epsilon destinations, push
// anything newly discovered. O(states + transitions) per state.
func (a *Automaton) computeClosures() []stateSet {
	closures := make([]stateSet, a.states)
	work := make([]int, 0, a.states)
	for s := 0; s < a.states; s++ {
		cl := newStateSet(a.states)
		cl.add(s)
		work = append(work[:0], s)
		for len(work) > 0 {
			cur := work[len(work)-1]
			work = work[:len(work)-1]
			for _, to := range a.table[cur][a.epsilonSlot] {
				if !cl.has(to) {
					cl.add(to)
					work = append(work, to)
				}
			}
		}
		closures[s] = cl
	}
	return closures
}

// closeSet replaces set with its epsilon closure, in place. Identity for
// non-epsilon kinds.
func (a *Automaton) closeSet(set stateSet) {
	if a.kind != Epsilon {
		return
	}
	for _, s := range set.members() {
		set.union(a.closures[s])
	}
}

// EpsilonClosure returns the smallest superset of states closed under epsilon
// transitions, in ascending order. For non-epsilon automata it is the
// identity (modulo ordering and duplicates). State indices out of range are
// ignored.
func (a *Automaton) EpsilonClosure(states []int) []int {
	set := newStateSet(a.states)
	for _, s := range states {
		if s >= 0 && s < a.states {
			set.add(s)
		}
	}
	a.closeSet(set)
	return set.members()
}
