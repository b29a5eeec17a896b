// Package inputseq scans the textual input-sequence argument of the CLI into
// symbols: decimal runs are letter indices, single letters name members of a
// named alphabet. Commas and whitespace separate symbols and are ignored.
package inputseq

import (
	"fmt"
	"strconv"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Symbol is one element of an input sequence. Either Index is a nonnegative
// letter index, or Letter holds a named-alphabet letter and Index is -1 until
// the caller resolves it against the automaton's alphabet.
type Symbol struct {
	Index  int
	Letter byte
}

var lex = newLexer()

func newLexer() *lexmachine.Lexer {
	l := lexmachine.NewLexer()
	l.Add([]byte(`[ \t\n\r,]+`), skip)
	l.Add([]byte(`[0-9]+`), number)
	l.Add([]byte(`[a-zA-Z@]`), letter)
	if err := l.Compile(); err != nil {
		panic(err)
	}
	return l
}

// Scan tokenizes src into symbols. Characters outside digits, ASCII letters,
// @ and separators are an error.
func Scan(src string) ([]Symbol, error) {
	scanner, err := lex.Scanner([]byte(src))
	if err != nil {
		return nil, fmt.Errorf("inputseq: %w", err)
	}
	var out []Symbol
	for {
		tok, err, eof := scanner.Next()
		if eof {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("inputseq: %w", err)
		}
		out = append(out, tok.(Symbol))
	}
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func number(_ *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	n, err := strconv.Atoi(string(m.Bytes))
	if err != nil {
		return nil, fmt.Errorf("symbol %q at %d:%d: %w", m.Bytes, m.StartLine, m.StartColumn, err)
	}
	return Symbol{Index: n}, nil
}

func letter(_ *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return Symbol{Index: -1, Letter: m.Bytes[0]}, nil
}
