// Package automaton implements a small finite-state automaton engine: a text
// encoding for deterministic, nondeterministic and epsilon-NFA machines, a
// validating builder, epsilon-closure precomputation, and an executor that
// decides acceptance of input symbol sequences.
package automaton

import (
	"sort"
)

// Kind selects the execution algorithm and the structural invariants that the
// builder enforces.
type Kind int

const (
	Deterministic Kind = iota
	Nondeterministic
	Epsilon
)

func (k Kind) String() string {
	switch k {
	case Deterministic:
		return "det"
	case Nondeterministic:
		return "nondet"
	case Epsilon:
		return "epsilon"
	}
	return "unknown"
}

// Alphabet is either a plain size (symbols 0..n-1) or an explicit ordered
// letter sequence. Letter-index checks downstream only ever consult Size.
type Alphabet struct {
	size    int
	letters string
	named   bool
}

// SizedAlphabet returns the numeric-size alphabet form.
func SizedAlphabet(n int) Alphabet { return Alphabet{size: n} }

// NamedAlphabet returns the explicit-letters alphabet form. Validity of the
// letters (charset, duplicates) is checked by New.
func NamedAlphabet(letters string) Alphabet {
	return Alphabet{size: len(letters), letters: letters, named: true}
}

func (a Alphabet) Size() int       { return a.size }
func (a Alphabet) Named() bool     { return a.named }
func (a Alphabet) Letters() string { return a.letters }

// LetterIndex maps a letter to its symbol index, or -1 if the alphabet is
// sized or does not contain the letter.
func (a Alphabet) LetterIndex(c byte) int {
	for i := 0; i < len(a.letters); i++ {
		if a.letters[i] == c {
			return i
		}
	}
	return -1
}

func isLetter(c byte) bool {
	return c == '@' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// EpsilonMarker is the reserved letter naming the epsilon slot in named
// alphabets.
const EpsilonMarker = '@'

// Automaton is the immutable machine model. All methods are read-only, so one
// automaton may serve any number of concurrent executions.
type Automaton struct {
	kind     Kind
	states   int
	alphabet Alphabet
	// table[state][letter] holds the sorted, duplicate-free destination set.
	table   [][][]int
	initial []int
	final   []int

	initSet  stateSet
	finalSet stateSet

	// epsilonSlot is the letter index carrying epsilon transitions, -1 for
	// non-epsilon kinds. closures[s] is the epsilon closure of {s},
	// precomputed once so executions never recompute it.
	epsilonSlot int
	closures    []stateSet
}

// New validates and builds an automaton. table is indexed [state][letter] and
// must match stateCount and the alphabet size exactly; duplicate destinations,
// initial and final states collapse to sets. Returns a *SemanticError naming
// the violated invariant.
func New(kind Kind, stateCount int, alphabet Alphabet, table [][][]int, initial, final []int) (*Automaton, error) {
	if stateCount < 0 {
		return nil, semanticErrorf("state count", "negative count %d", stateCount)
	}
	if alphabet.named {
		seen := [256]bool{}
		for i := 0; i < len(alphabet.letters); i++ {
			c := alphabet.letters[i]
			if !isLetter(c) {
				return nil, semanticErrorf("alphabet", "letter %q not in [a-zA-Z@]", c)
			}
			if seen[c] {
				return nil, semanticErrorf("alphabet", "duplicate letter %q", c)
			}
			seen[c] = true
		}
	}

	if len(table) != stateCount {
		return nil, semanticErrorf("transitions", "%d state blocks for %d states", len(table), stateCount)
	}
	norm := make([][][]int, stateCount)
	for s, row := range table {
		if len(row) != alphabet.size {
			return nil, semanticErrorf("transitions", "state %d has %d letter cells, alphabet size is %d", s, len(row), alphabet.size)
		}
		norm[s] = make([][]int, alphabet.size)
		for l, cell := range row {
			dests, _, err := stateList(cell, stateCount, "transitions")
			if err != nil {
				return nil, err
			}
			norm[s][l] = dests
		}
	}

	init, initSet, err := stateList(initial, stateCount, "initial states")
	if err != nil {
		return nil, err
	}
	fin, finSet, err := stateList(final, stateCount, "final states")
	if err != nil {
		return nil, err
	}

	if kind == Deterministic {
		for s, row := range norm {
			for l, dests := range row {
				if len(dests) > 1 {
					return nil, semanticErrorf("transitions", "det automaton has %d destinations for state %d letter %d", len(dests), s, l)
				}
			}
		}
		if len(init) > 1 {
			return nil, semanticErrorf("initial states", "det automaton declares %d initial states", len(init))
		}
	}

	epsilonSlot := -1
	if kind == Epsilon {
		if alphabet.size == 0 {
			return nil, semanticErrorf("alphabet", "epsilon automaton needs at least the epsilon letter slot")
		}
		if alphabet.named && alphabet.letters[0] != EpsilonMarker {
			return nil, semanticErrorf("alphabet", "epsilon automaton's named alphabet must start with %q", string(EpsilonMarker))
		}
		epsilonSlot = 0
	}

	a := &Automaton{
		kind:        kind,
		states:      stateCount,
		alphabet:    alphabet,
		table:       norm,
		initial:     init,
		final:       fin,
		initSet:     initSet,
		finalSet:    finSet,
		epsilonSlot: epsilonSlot,
	}
	if kind == Epsilon {
		a.closures = a.computeClosures()
	}
	return a, nil
}

// stateList bounds-checks values against n, then sorts and de-duplicates.
func stateList(values []int, n int, field string) ([]int, stateSet, error) {
	set := newStateSet(n)
	for _, v := range values {
		if v < 0 || v >= n {
			return nil, set, semanticErrorf(field, "state index %d out of range [0,%d)", v, n)
		}
		set.add(v)
	}
	out := make([]int, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	sort.Ints(out)
	dedup := out[:0]
	for i, v := range out {
		if i == 0 || v != out[i-1] {
			dedup = append(dedup, v)
		}
	}
	return dedup, set, nil
}

func (a *Automaton) Kind() Kind         { return a.kind }
func (a *Automaton) StateCount() int    { return a.states }
func (a *Automaton) Alphabet() Alphabet { return a.alphabet }

// InitialStates returns the initial state set in ascending order.
func (a *Automaton) InitialStates() []int { return append([]int(nil), a.initial...) }

// FinalStates returns the accepting state set in ascending order.
func (a *Automaton) FinalStates() []int { return append([]int(nil), a.final...) }

// Destinations returns the destination set for (state, letter) in ascending
// order.
func (a *Automaton) Destinations(state, letter int) []int {
	return append([]int(nil), a.table[state][letter]...)
}
