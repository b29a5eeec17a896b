package automaton

// Step is one entry of an execution trace: the symbol just consumed (-1 for
// the initial entry) and the active states after consuming it, ascending. For
// epsilon automata the set is already epsilon-closed; for deterministic
// automata it holds at most one state. An empty set means the run is stuck.
type Step struct {
	Symbol int
	Active []int
}

// validSymbol reports whether sym is a consumable letter index. The epsilon
// slot is not a real input symbol.
func (a *Automaton) validSymbol(sym int) bool {
	return sym >= 0 && sym < a.alphabet.size && sym != a.epsilonSlot
}

// Accepts simulates the automaton over input and reports acceptance. Symbols
// outside the alphabet (including the epsilon slot) cause rejection rather
// than an error. The run short-circuits as soon as no state is reachable.
func (a *Automaton) Accepts(input []int) bool {
	if a.kind == Deterministic {
		return a.acceptsDet(input)
	}
	return a.acceptsSet(input)
}

// acceptsDet keeps a single current state; no set machinery on this path.
func (a *Automaton) acceptsDet(input []int) bool {
	if len(a.initial) == 0 {
		return false
	}
	cur := a.initial[0]
	for _, sym := range input {
		if !a.validSymbol(sym) {
			return false
		}
		dests := a.table[cur][sym]
		if len(dests) == 0 {
			// stuck: no transition can ever leave the sink
			return false
		}
		cur = dests[0]
	}
	return a.finalSet.has(cur)
}

// acceptsSet runs the nondeterministic and epsilon kinds over a bitset active
// set: each symbol replaces the set with the union of its destination sets,
// epsilon-closed for the epsilon kind.
func (a *Automaton) acceptsSet(input []int) bool {
	active := a.initSet.clone()
	a.closeSet(active)
	next := newStateSet(a.states)
	for _, sym := range input {
		if !a.validSymbol(sym) {
			return false
		}
		next.clear()
		for _, s := range active.members() {
			for _, to := range a.table[s][sym] {
				next.add(to)
			}
		}
		a.closeSet(next)
		if next.empty() {
			return false
		}
		active, next = next, active
	}
	return active.intersects(a.finalSet)
}

// Run produces the full execution trace: the initial state set plus one step
// per input symbol. Unlike Accepts it does not stop at a dead end; once the
// active set is empty it stays empty for the rest of the trace.
func (a *Automaton) Run(input []int) []Step {
	active := a.initSet.clone()
	a.closeSet(active)

	trace := make([]Step, 0, len(input)+1)
	trace = append(trace, Step{Symbol: -1, Active: active.members()})

	next := newStateSet(a.states)
	for _, sym := range input {
		next.clear()
		if a.validSymbol(sym) {
			for _, s := range active.members() {
				for _, to := range a.table[s][sym] {
					next.add(to)
				}
			}
			a.closeSet(next)
		}
		active, next = next, active
		trace = append(trace, Step{Symbol: sym, Active: active.members()})
	}
	return trace
}
