// fsmrun parses an automaton encoding from a file and executes it against an
// input symbol sequence.
//
//	fsmrun <automaton file> [input]
//
// input is a sequence of letter indices ("0,1,1") or, for named alphabets, a
// letter word ("abba"); it defaults to the empty sequence. Exit status: 0
// accept, 1 reject, 2 syntax error, 3 semantic error, 4 usage or I/O error —
// a reject is never conflated with a malformed input file.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"fsmrun/internal/automaton"
	"fsmrun/internal/inputseq"
)

const (
	exitReject   = 1
	exitSyntax   = 2
	exitSemantic = 3
	exitUsage    = 4
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("fsmrun: ")
	if len(os.Args) < 2 || len(os.Args) > 3 {
		log.Print("usage: fsmrun <automaton file> [input]")
		os.Exit(exitUsage)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Print(err)
		os.Exit(exitUsage)
	}

	aut, err := automaton.Parse(string(data))
	if err != nil {
		log.Print(err)
		var syn *automaton.SyntaxError
		var sem *automaton.SemanticError
		switch {
		case errors.As(err, &syn):
			os.Exit(exitSyntax)
		case errors.As(err, &sem):
			os.Exit(exitSemantic)
		}
		os.Exit(exitUsage)
	}

	var input []int
	if len(os.Args) == 3 {
		syms, err := inputseq.Scan(os.Args[2])
		if err != nil {
			log.Print(err)
			os.Exit(exitUsage)
		}
		input = make([]int, len(syms))
		for i, s := range syms {
			if s.Letter != 0 {
				// unknown letters map to -1 and reject by policy
				input[i] = aut.Alphabet().LetterIndex(s.Letter)
			} else {
				input[i] = s.Index
			}
		}
	}

	if aut.Accepts(input) {
		fmt.Println("accept")
		return
	}
	fmt.Println("reject")
	os.Exit(exitReject)
}
