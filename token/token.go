package token

import "fmt"

// Token is the record produced by the scanner, persisted to the token file,
// and reloaded by the parser (spec.md §3 "Token record").
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
	Col    int
}

// String renders a token the way the scanner writes it to the token file
// (spec.md §6 "Token file format"): "KIND : lexeme (line,column)", or just
// "ENDFILE (line,column)" for the end marker.
func (t Token) String() string {
	if t.Kind == ENDFILE {
		return fmt.Sprintf("ENDFILE (%d,%d)", t.Line, t.Col)
	}
	return fmt.Sprintf("%s : %s (%d,%d)", t.Kind, t.Lexeme, t.Line, t.Col)
}
