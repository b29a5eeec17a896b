package automaton

import "math/bits"

// stateSet is a fixed-width bitset over state indices. State counts are known
// at build time, so active sets are flat []uint64 words rather than hash sets;
// this is the executor's hot-path representation.
type stateSet struct {
	words []uint64
}

func newStateSet(n int) stateSet {
	return stateSet{words: make([]uint64, (n+63)/64)}
}

func (s stateSet) add(i int) {
	s.words[i>>6] |= 1 << (uint(i) & 63)
}

func (s stateSet) has(i int) bool {
	return s.words[i>>6]&(1<<(uint(i)&63)) != 0
}

func (s stateSet) empty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}

func (s stateSet) clear() {
	for i := range s.words {
		s.words[i] = 0
	}
}

// union merges o into s in place.
func (s stateSet) union(o stateSet) {
	for i, w := range o.words {
		s.words[i] |= w
	}
}

func (s stateSet) clone() stateSet {
	c := stateSet{words: make([]uint64, len(s.words))}
	copy(c.words, s.words)
	return c
}

func (s stateSet) equal(o stateSet) bool {
	for i, w := range s.words {
		if w != o.words[i] {
			return false
		}
	}
	return true
}

// intersects reports whether s and o share a member.
func (s stateSet) intersects(o stateSet) bool {
	for i, w := range s.words {
		if w&o.words[i] != 0 {
			return true
		}
	}
	return false
}

// members returns the set bits in ascending order.
func (s stateSet) members() []int {
	var out []int
	for wi, w := range s.words {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			out = append(out, wi<<6+b)
			w &= w - 1
		}
	}
	return out
}

// key returns the raw words as a string, usable as a map key during subset
// construction.
func (s stateSet) key() string {
	b := make([]byte, len(s.words)*8)
	for i, w := range s.words {
		for j := 0; j < 8; j++ {
			b[i*8+j] = byte(w >> (8 * uint(j)))
		}
	}
	return string(b)
}
