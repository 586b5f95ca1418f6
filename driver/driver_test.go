package driver

import (
	"io"
	"strings"
	"testing"

	"github.com/nihei9/minicc/gramfile"
	"github.com/nihei9/minicc/grammar"
	"github.com/nihei9/minicc/lexrule"
	"github.com/nihei9/minicc/scan"
	"github.com/nihei9/minicc/semantic"
	"github.com/nihei9/minicc/token"
)

// loadTestTable builds the SLR(1) table for the testdata/minic.grammar
// fixture once per test, end to end through packages gramfile and grammar,
// the way cmd/parser does at startup (spec.md §6).
func loadTestTable(t *testing.T) (*grammar.Grammar, *grammar.Table) {
	t.Helper()
	raw, err := gramfile.Load("testdata/minic.grammar", io.Discard)
	if err != nil {
		t.Fatalf("gramfile.Load: %v", err)
	}
	g, err := grammar.Build(raw)
	if err != nil {
		t.Fatalf("grammar.Build: %v", err)
	}
	automaton := grammar.BuildLR0(g)
	table := grammar.BuildTable(g, automaton)
	return g, table
}

// scanTestTokens runs the testdata/minic.lexrules DFA over src, the way
// cmd/scanner does (spec.md §6), and fails the test on any lexical error.
func scanTestTokens(t *testing.T, src string) []token.Token {
	t.Helper()
	rs, err := lexrule.Load("testdata/minic.lexrules", io.Discard)
	if err != nil {
		t.Fatalf("lexrule.Load: %v", err)
	}
	d := scan.Compile(rs)
	s, err := scan.New(d, strings.NewReader(src))
	if err != nil {
		t.Fatalf("scan.New: %v", err)
	}
	toks, errTok := s.All()
	if errTok != nil {
		t.Fatalf("unexpected lexical error at (%d,%d): %q", errTok.Line, errTok.Col, errTok.Lexeme)
	}
	return toks
}

func runSource(t *testing.T, src string) (*Driver, error) {
	t.Helper()
	g, table := loadTestTable(t)
	toks := scanTestTokens(t, src)
	d := New(g, table)
	err := d.Run(toks)
	return d, err
}

func TestDriverSimpleExpressionIR(t *testing.T) {
	d, err := runSource(t, "{ int x = 1 + 2 ; }")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	quads := d.IR().Quads
	if len(quads) != 2 {
		t.Fatalf("expected 2 quads (add, assign), got %d: %v", len(quads), quads)
	}
	if quads[0].Op != semantic.OpAdd || quads[0].A1 != "1" || quads[0].A2 != "2" {
		t.Errorf("expected an add of literals 1 and 2, got %+v", quads[0])
	}
	if quads[1].Op != semantic.OpAssn || quads[1].A1 != quads[0].Result {
		t.Errorf("expected assign from the add's temporary, got %+v", quads[1])
	}
	if !d.IR().NoDanglingJumps() {
		t.Errorf("expected no dangling jumps")
	}
}

func TestDriverIfWithoutElse(t *testing.T) {
	d, err := runSource(t, "{ int x = 0 ; if ( x < 1 ) x = 1 ; }")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !d.IR().NoDanglingJumps() {
		t.Fatalf("expected all jumps resolved after a complete if-without-else parse")
	}
	foundIf := false
	for _, q := range d.IR().Quads {
		if q.Op == semantic.OpIfLT {
			foundIf = true
			if q.Target < 0 {
				t.Errorf("if< quad should be backpatched, got target %d", q.Target)
			}
		}
	}
	if !foundIf {
		t.Errorf("expected an if< quad from the condition x < 1")
	}
}

func TestDriverIfElse(t *testing.T) {
	d, err := runSource(t, "{ int x = 0 ; if ( x < 1 ) x = 1 ; else x = 2 ; }")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !d.IR().NoDanglingJumps() {
		t.Fatalf("expected all jumps resolved after a complete if-else parse")
	}
	if len(d.pendingIfElse) != 0 {
		t.Fatalf("expected the if-else end-jump stack to drain, got %v", d.pendingIfElse)
	}

	// "{ int x = 0 ; if ( x < 1 ) x = 1 ; else x = 2 ; }" emits:
	//   0: (=, 0, _, x)
	//   1: (if<, x, 1, _, 3)   -- truelist backpatched to the then-branch
	//   2: (goto, _, _, _, 5) -- falselist backpatched to the first else quad
	//   3: (=, 1, _, x)       -- then branch
	//   4: (goto, _, _, _, 6) -- mid-goto, jumps past the else branch
	//   5: (=, 2, _, x)       -- else branch, must run on a false condition
	quads := d.IR().Quads
	if len(quads) != 6 {
		t.Fatalf("expected exactly 6 quads, got %v", quads)
	}
	if quads[1].Op != semantic.OpIfLT || quads[1].Target != 3 {
		t.Fatalf("expected quad 1 to be the condition with truelist target 3, got %+v", quads[1])
	}
	if quads[2].Op != semantic.OpGoto || quads[2].Target != 5 {
		t.Fatalf("expected quad 2 (the condition's falselist) to target the first else quad (5), got %+v", quads[2])
	}
	if quads[4].Op != semantic.OpGoto || quads[4].Target != 6 {
		t.Fatalf("expected quad 4 to be the then-branch's mid-goto past the else branch, got %+v", quads[4])
	}
	if quads[5].Op != semantic.OpAssn {
		t.Fatalf("expected quad 5 (the else branch) to actually run, got %+v", quads[5])
	}
}

func TestDriverWhileLoop(t *testing.T) {
	d, err := runSource(t, "{ int x = 0 ; while ( x < 10 ) x = x + 1 ; }")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	quads := d.IR().Quads
	if !d.IR().NoDanglingJumps() {
		t.Fatalf("expected all jumps resolved after a complete while parse")
	}
	foundBackGoto := false
	for i, q := range quads {
		if q.Op == semantic.OpGoto && q.Target < len(quads) {
			// the loop-back goto targets the condition's begin_quad,
			// which is earlier than the goto itself.
			foundBackGoto = foundBackGoto || (q.Target >= 0 && q.Target < i)
		}
	}
	if !foundBackGoto {
		t.Errorf("expected a resolved loop-back goto, got quads %v", quads)
	}
}

func TestDriverSyntacticFailure(t *testing.T) {
	_, err := runSource(t, "{ int x = ; }")
	if err == nil {
		t.Fatalf("expected a syntax error for a missing expression")
	}
	if _, ok := err.(*ParseError); !ok {
		t.Fatalf("expected a *ParseError, got %T: %v", err, err)
	}
}

func TestDriverUndeclaredIdentifierIsSemanticError(t *testing.T) {
	_, err := runSource(t, "{ x = 1 ; }")
	if err == nil {
		t.Fatalf("expected a semantic error for an undeclared identifier")
	}
}

func TestDriverDuplicateDeclarationIsSemanticError(t *testing.T) {
	_, err := runSource(t, "{ int x ; int x ; }")
	if err == nil {
		t.Fatalf("expected a semantic error for a duplicate declaration in the same scope")
	}
}

func TestDriverScopeBalanceAtAccept(t *testing.T) {
	_, err := runSource(t, "{ int x ; { int y = x ; } }")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
}
