package grammar

import (
	"strings"
	"testing"

	"github.com/nihei9/minicc/gramfile"
)

// exprGrammar is the classic E -> E + T | T, T -> T * F | F, F -> ( E ) | id
// textbook grammar, used across this package's tests.
const exprGrammar = `
GRAMMAR_NAME expr
START_SYMBOL E
E -> E '+' T
E -> T
T -> T '*' F
T -> F
F -> '(' E ')'
F -> id
`

func loadExprGrammar(t *testing.T) *Grammar {
	t.Helper()
	spec, err := parseForTest(exprGrammar)
	if err != nil {
		t.Fatalf("parseForTest: %v", err)
	}
	g, err := Build(spec)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return g
}

// parseForTest reuses gramfile's line-oriented parser on an in-memory
// reader, since gramfile.Load only accepts a path.
func parseForTest(text string) (*gramfile.Spec, error) {
	return gramfile.ParseReader(strings.NewReader(text))
}

func TestBuildAugments(t *testing.T) {
	g := loadExprGrammar(t)
	if !strings.HasSuffix(g.Start.Name, "'") {
		t.Fatalf("expected augmented start symbol, got %q", g.Start.Name)
	}
	if g.Productions[0].LHS != g.Start {
		t.Fatalf("production 0 should be the augmenting production")
	}
	for i, p := range g.Productions {
		if p.ID != i {
			t.Fatalf("production %d has ID %d, want %d", i, p.ID, i)
		}
	}
}

func TestBuildClassifiesSymbols(t *testing.T) {
	g := loadExprGrammar(t)
	wantTerms := []string{"+", "*", "(", ")", "id"}
	for _, name := range wantTerms {
		found := false
		for _, s := range g.Terminals {
			if s.Name == name {
				found = true
			}
		}
		if !found {
			t.Errorf("expected terminal %q in Terminals", name)
		}
	}
	wantNTs := []string{"E", "T", "F"}
	for _, name := range wantNTs {
		found := false
		for _, s := range g.NonTerminals {
			if s.Name == name {
				found = true
			}
		}
		if !found {
			t.Errorf("expected nonterminal %q in NonTerminals", name)
		}
	}
}
