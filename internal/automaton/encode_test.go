package automaton

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeCanonicalForm(t *testing.T) {
	a := mustParse(t, "{det,2,2,[[[1],[]],[[],[1]]],[0],[1]}")
	require.Equal(t, `Automaton(det, 2, 2, [[[1], []], [[], [1]]], [0], [1]);`, a.Encode())
}

// Parsing the canonical encoding must reproduce the model exactly.
func TestEncodeRoundTrip(t *testing.T) {
	tests := []string{
		scenarioA,
		`Automaton(nondet, 3, 1, [[[1, 2]], [[]], [[]]], [0], [2]);`,
		`Automaton(nondet, 0, 2, [], [], []);`,
		`{ epsilon, 3, 2, [[[1], []], [[2], []], [[], [0]]], [0], [2] }`,
		`{ epsilon, 2, @a, [[[1], []], [[], []]], [0], [1] }`,
		`{ nondet, 2, ab, [[[1], []], [[], [0]]], [0], [1] }`,
		`Automaton(nondet, 2, 1, [[[1, 1, 0]], [[]]], [1, 0, 0], [1, 1]);`, // duplicates collapse first
		`Automaton(det, 1, 0, [[]], [0], [0]);`,
	}
	for _, src := range tests {
		a := mustParse(t, src)
		back, err := Parse(a.Encode())
		require.NoError(t, err, "reparse %q", a.Encode())
		require.True(t, a.Equal(back), "round trip of %q changed the model", src)
		require.Equal(t, a.Encode(), back.Encode())
	}
}

func TestEqual(t *testing.T) {
	base := mustParse(t, scenarioA)
	require.True(t, base.Equal(mustParse(t, scenarioA)))

	different := []string{
		`Automaton(nondet, 2, 2, [[[1], []], [[], [1]]], [0], [1]);`, // kind
		`Automaton(det, 3, 2, [[[1], []], [[], [1]], [[], []]], [0], [1]);`, // states
		`Automaton(det, 2, ab, [[[1], []], [[], [1]]], [0], [1]);`,   // alphabet form
		`Automaton(det, 2, 2, [[[1], []], [[], [0]]], [0], [1]);`,    // transitions
		`Automaton(det, 2, 2, [[[1], []], [[], [1]]], [1], [1]);`,    // initial
		`Automaton(det, 2, 2, [[[1], []], [[], [1]]], [0], [0]);`,    // final
	}
	for _, src := range different {
		require.False(t, base.Equal(mustParse(t, src)), "src %q", src)
	}
}
