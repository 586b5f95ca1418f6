// Package token defines the closed set of lexical token kinds shared by the
// scanner and the parser, along with the priority table used to break DFA
// accept-state ties (spec.md §3: "Token kind enumeration").
package token

// Kind identifies one of the fixed lexical categories the scanner can
// produce. The zero value is Invalid and never appears in a well-formed
// token stream.
type Kind int

const (
	Invalid Kind = iota

	ENDFILE
	ERROR
	ID
	NUM
	INT
	VOID
	IF
	ELSE
	WHILE
	RETURN
	READ
	WRITE
	ASSIGN
	PLUS
	MINUS
	MULT
	DIV
	LT
	GT
	LTE
	GTE
	EQ
	NEQ
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	SEMI
	COMMA
)

var kindNames = map[Kind]string{
	ENDFILE: "ENDFILE",
	ERROR:   "ERROR",
	ID:      "ID",
	NUM:     "NUM",
	INT:     "INT",
	VOID:    "VOID",
	IF:      "IF",
	ELSE:    "ELSE",
	WHILE:   "WHILE",
	RETURN:  "RETURN",
	READ:    "READ",
	WRITE:   "WRITE",
	ASSIGN:  "ASSIGN",
	PLUS:    "PLUS",
	MINUS:   "MINUS",
	MULT:    "MULT",
	DIV:     "DIV",
	LT:      "LT",
	GT:      "GT",
	LTE:     "LTE",
	GTE:     "GTE",
	EQ:      "EQ",
	NEQ:     "NEQ",
	LPAREN:  "LPAREN",
	RPAREN:  "RPAREN",
	LBRACE:  "LBRACE",
	RBRACE:  "RBRACE",
	SEMI:    "SEMI",
	COMMA:   "COMMA",
}

var nameKinds = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, n := range kindNames {
		m[n] = k
	}
	return m
}()

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "INVALID"
}

// KindFromName maps a rule-file TOKEN_NAME to its Kind. An unknown name is
// reported by the caller as a fatal rule-file error (spec.md §4.1).
func KindFromName(name string) (Kind, bool) {
	k, ok := nameKinds[name]
	return k, ok
}

// Priority is the numeric tie-break used when a DFA accept state subsumes
// NFA states tagged with more than one Kind: the lowest number wins
// (spec.md §3 invariant, §4.3). Keywords all share the keyword priority;
// identifiers and numbers are fixed built-ins; anything else (operators,
// delimiters) is priorityRest, which never competes with ID or NUM because
// their patterns don't overlap with keyword/ID/NUM patterns.
const (
	priorityKeyword = 1
	priorityID      = 2
	priorityNUM     = 3
	priorityRest    = 10
)

var keywordKinds = map[Kind]bool{
	INT: true, VOID: true, IF: true, ELSE: true, WHILE: true,
	RETURN: true, READ: true, WRITE: true,
}

// Priority returns the tie-break priority for k. This table is the single
// centralized place the Open Questions section of spec.md §9 asks for.
func Priority(k Kind) int {
	switch {
	case keywordKinds[k]:
		return priorityKeyword
	case k == ID:
		return priorityID
	case k == NUM:
		return priorityNUM
	default:
		return priorityRest
	}
}
