package automaton

import (
	"strconv"
	"strings"
)

// Encode renders the canonical text form of the automaton, in the call-style
// wrapper with sorted destination sets. Parse(a.Encode()) yields a model
// Equal to a; the round trip pins the grammar contract.
func (a *Automaton) Encode() string {
	var b strings.Builder
	b.WriteString("Automaton(")
	b.WriteString(a.kind.String())
	b.WriteString(", ")
	b.WriteString(strconv.Itoa(a.states))
	b.WriteString(", ")
	if a.alphabet.named {
		b.WriteString(a.alphabet.letters)
	} else {
		b.WriteString(strconv.Itoa(a.alphabet.size))
	}
	b.WriteString(", [")
	for s, row := range a.table {
		if s > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('[')
		for l, cell := range row {
			if l > 0 {
				b.WriteString(", ")
			}
			writeArr(&b, cell)
		}
		b.WriteByte(']')
	}
	b.WriteString("], ")
	writeArr(&b, a.initial)
	b.WriteString(", ")
	writeArr(&b, a.final)
	b.WriteString(");")
	return b.String()
}

func writeArr(b *strings.Builder, values []int) {
	b.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')
}

// String implements fmt.Stringer as the canonical encoding.
func (a *Automaton) String() string { return a.Encode() }

// Equal reports structural equality: same kind, state count, alphabet form
// and content, transition sets, initial and final sets. Destination sets are
// stored normalized, so slice comparison suffices.
func (a *Automaton) Equal(o *Automaton) bool {
	if a.kind != o.kind || a.states != o.states || a.alphabet != o.alphabet {
		return false
	}
	if !intsEqual(a.initial, o.initial) || !intsEqual(a.final, o.final) {
		return false
	}
	for s := range a.table {
		for l := range a.table[s] {
			if !intsEqual(a.table[s][l], o.table[s][l]) {
				return false
			}
		}
	}
	return true
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i, v := range a {
		if v != b[i] {
			return false
		}
	}
	return true
}
