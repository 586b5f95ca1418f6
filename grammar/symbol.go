// Package grammar computes FIRST/FOLLOW, builds the canonical LR(0)
// automaton, and assembles the SLR(1) ACTION/GOTO table (spec.md §4.5),
// grounded on the teacher's grammar/symbol.go, production.go, first.go,
// follow.go, and lr0_item.go, adapted from their bit-packed/hashed numeric
// symbol representation to the simpler string-keyed model spec.md §3
// prescribes: "Grammar symbol (name, is_terminal)... Equality and ordering
// use (name, is_terminal) only."
package grammar

// Symbol is (name, is_terminal); equality and ordering use only those two
// fields (spec.md §3 "Grammar symbol").
type Symbol struct {
	Name     string
	Terminal bool
}

// T builds a terminal symbol.
func T(name string) Symbol { return Symbol{Name: name, Terminal: true} }

// NT builds a nonterminal symbol.
func NT(name string) Symbol { return Symbol{Name: name, Terminal: false} }

// EOF is the end-of-input marker, written "$" (spec.md §4.5 FOLLOW(S')).
var EOF = T("$")

// Epsilon is the sentinel empty right-hand side symbol (spec.md §3:
// `the string "ε" may also appear as a sentinel right-hand side`).
var Epsilon = T("ε")

func (s Symbol) String() string {
	return s.Name
}

// IsEpsilon reports whether s is the epsilon sentinel.
func (s Symbol) IsEpsilon() bool {
	return s == Epsilon
}
