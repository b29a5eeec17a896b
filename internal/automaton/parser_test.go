package automaton

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// scenarioA is the 2-state deterministic machine accepting "01*".
const scenarioA = `Automaton(det, 2, 2, [[[1], []], [[], [1]]], [0], [1]);`

func mustParse(t *testing.T, src string) *Automaton {
	t.Helper()
	a, err := Parse(src)
	require.NoError(t, err, "parse %q", src)
	return a
}

func TestParseWrappers(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"call form", scenarioA},
		{"call form no semicolon", `Automaton(det, 2, 2, [[[1], []], [[], [1]]], [0], [1])`},
		{"call form many semicolons", `Automaton(det, 2, 2, [[[1], []], [[], [1]]], [0], [1]);;;`},
		{"brace form", `{ det, 2, 2, [[[1], []], [[], [1]]], [0], [1] }`},
		{"packed whitespace", "{det,2,2,[[[1],[]],[[],[1]]],[0],[1]}"},
		{"newlines everywhere", "Automaton(\n det ,\n 2, 2,\n [ [ [1], [] ] ,\n [ [], [1] ] ],\n [0],\n [1]\n) ;\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustParse(t, tt.src)
			require.Equal(t, Deterministic, a.Kind())
			require.Equal(t, 2, a.StateCount())
			require.Equal(t, 2, a.Alphabet().Size())
			require.Equal(t, []int{0}, a.InitialStates())
			require.Equal(t, []int{1}, a.FinalStates())
			require.Equal(t, []int{1}, a.Destinations(0, 0))
			require.Empty(t, a.Destinations(0, 1))
		})
	}
}

func TestParseKinds(t *testing.T) {
	tests := []struct {
		src  string
		kind Kind
	}{
		{`{ det, 1, 1, [[[]]], [], [] }`, Deterministic},
		{`{ nondet, 1, 1, [[[0, 0]]], [0], [0] }`, Nondeterministic},
		{`{ epsilon, 1, 1, [[[]]], [0], [0] }`, Epsilon},
	}
	for _, tt := range tests {
		require.Equal(t, tt.kind, mustParse(t, tt.src).Kind(), "src %q", tt.src)
	}
}

func TestParseNamedAlphabet(t *testing.T) {
	a := mustParse(t, `{ nondet, 2, ab, [[[1], []], [[], [0]]], [0], [1] }`)
	require.True(t, a.Alphabet().Named())
	require.Equal(t, 2, a.Alphabet().Size())
	require.Equal(t, "ab", a.Alphabet().Letters())
	require.Equal(t, 0, a.Alphabet().LetterIndex('a'))
	require.Equal(t, 1, a.Alphabet().LetterIndex('b'))
	require.Equal(t, -1, a.Alphabet().LetterIndex('z'))
}

func TestParseSizedAlphabetHasNoLetters(t *testing.T) {
	a := mustParse(t, scenarioA)
	require.False(t, a.Alphabet().Named())
	require.Equal(t, -1, a.Alphabet().LetterIndex('a'))
}

func TestParseSyntaxErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ``},
		{"bare core", `det, 2, 2, [[[1], []], [[], [1]]], [0], [1]`},
		{"unknown kind", `Automaton(dfa, 1, 1, [[[]]], [], []);`},
		{"missing comma", `Automaton(det 1, 1, [[[]]], [], []);`},
		{"unbalanced brackets", `Automaton(det, 1, 1, [[[]], [], []);`},
		{"mismatched wrapper", `Automaton(det, 1, 1, [[[]]], [], [] }`},
		{"semicolons on brace form", `{ det, 1, 1, [[[]]], [], [] };`},
		{"negative count", `Automaton(det, -1, 1, [[[]]], [], []);`},
		{"signed index", `Automaton(det, 1, 1, [[[+0]]], [], []);`},
		{"radix prefix", `Automaton(det, 1, 0x1, [[[]]], [], []);`},
		{"stray backslash", "Automaton(det, 1, \\\n1, [[[]]], [], []);"},
		{"trailing garbage", `Automaton(det, 1, 1, [[[]]], [], []); extra`},
		{"digit letters", `{ det, 1, a1b, [[[], [], []]], [], [] }`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)
			var syn *SyntaxError
			require.ErrorAs(t, err, &syn, "src %q", tt.src)
		})
	}
}

func TestParseSyntaxErrorPosition(t *testing.T) {
	_, err := Parse("Automaton(det,\n 2, ?, [], [], []);")
	var syn *SyntaxError
	require.ErrorAs(t, err, &syn)
	require.Equal(t, 2, syn.Pos.Line)
	require.Contains(t, err.Error(), "syntax error")
}

func TestParseZeroStates(t *testing.T) {
	a := mustParse(t, `Automaton(nondet, 0, 2, [], [], []);`)
	require.Equal(t, 0, a.StateCount())
	require.False(t, a.Accepts(nil))
}
