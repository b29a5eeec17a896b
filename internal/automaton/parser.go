package automaton

import (
	"errors"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The text encoding, e.g.
//
//	Automaton(det, 2, 2, [[[1],[]],[[],[1]]], [0], [1]);
//	{ epsilon, 2, @a, [[[1],[]],[[],[]]], [0], [1] }
//
// Both wrappers carry the same comma-separated core: kind, state count,
// alphabet (size or letters), transition table indexed [state][letter],
// initial states, final states. Whitespace is insignificant; the call-style
// wrapper tolerates trailing semicolons. Cross-field consistency (bounds,
// arities) is checked by New, not here.

type parseFile struct {
	Braced *parseCore `parser:"'{' @@ '}'"`
	Called *parseCore `parser:"| 'Automaton' '(' @@ ')' ';'*"`
}

type parseCore struct {
	Kind        string      `parser:"@('det' | 'nondet' | 'epsilon') ','"`
	StateCount  int         `parser:"@Int ','"`
	Alphabet    *parseAlpha `parser:"@@ ','"`
	Transitions *parseTable `parser:"@@ ','"`
	Initial     *parseArr   `parser:"@@ ','"`
	Final       *parseArr   `parser:"@@"`
}

type parseAlpha struct {
	Size    *int    `parser:"@Int"`
	Letters *string `parser:"| @Word"`
}

type parseTable struct {
	States []*parseRow `parser:"'[' ( @@ ( ',' @@ )* )? ']'"`
}

type parseRow struct {
	Cells []*parseArr `parser:"'[' ( @@ ( ',' @@ )* )? ']'"`
}

type parseArr struct {
	Values []int `parser:"'[' ( @Int ( ',' @Int )* )? ']'"`
}

// Only digits, ASCII letters, @ and the structural punctuation exist in the
// encoding; anything else (a stray backslash, a sign, a radix prefix) fails
// at the token level.
var encodingLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Word", Pattern: `[a-zA-Z@]+`},
	{Name: "Punct", Pattern: `[{}\[\](),;]`},
})

var encodingParser = participle.MustBuild[parseFile](
	participle.Lexer(encodingLexer),
	participle.Elide("Whitespace"),
)

// Parse parses src and builds the automaton it encodes. Grammar violations
// come back as *SyntaxError, invariant violations as *SemanticError.
func Parse(src string) (*Automaton, error) {
	tree, err := parseText(src)
	if err != nil {
		return nil, err
	}
	return buildTree(tree)
}

func parseText(src string) (*parseFile, error) {
	tree, err := encodingParser.ParseString("", src)
	if err != nil {
		var perr participle.Error
		if errors.As(err, &perr) {
			return nil, &SyntaxError{Pos: perr.Position(), Msg: perr.Message()}
		}
		return nil, &SyntaxError{Msg: err.Error()}
	}
	return tree, nil
}

// buildTree walks the parse tree into a validated model. Pure: all I/O stays
// with the caller.
func buildTree(tree *parseFile) (*Automaton, error) {
	core := tree.Braced
	if core == nil {
		core = tree.Called
	}

	var kind Kind
	switch core.Kind {
	case "det":
		kind = Deterministic
	case "nondet":
		kind = Nondeterministic
	case "epsilon":
		kind = Epsilon
	}

	var alpha Alphabet
	if core.Alphabet.Size != nil {
		alpha = SizedAlphabet(*core.Alphabet.Size)
	} else {
		alpha = NamedAlphabet(*core.Alphabet.Letters)
	}

	table := make([][][]int, len(core.Transitions.States))
	for s, row := range core.Transitions.States {
		table[s] = make([][]int, len(row.Cells))
		for l, cell := range row.Cells {
			table[s][l] = cell.Values
		}
	}

	return New(kind, core.StateCount, alpha, table, core.Initial.Values, core.Final.Values)
}
