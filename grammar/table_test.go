package grammar

import "testing"

func TestBuildTableShiftsIDFromInitialState(t *testing.T) {
	g := loadExprGrammar(t)
	a := BuildLR0(g)
	tbl := BuildTable(g, a)

	act, ok := tbl.Action[tbl.InitialState][T("id")]
	if !ok || act.Type != ActionShift {
		t.Fatalf("expected shift on 'id' from the initial state, got %+v (ok=%v)", act, ok)
	}
}

func TestBuildTableNoConflictsOnUnambiguousGrammar(t *testing.T) {
	g := loadExprGrammar(t)
	a := BuildLR0(g)
	tbl := BuildTable(g, a)

	if len(tbl.Conflicts) != 0 {
		t.Fatalf("expected no conflicts on an SLR(1) grammar, got %v", tbl.Conflicts)
	}
}

func TestConflictKeepsFirstWritten(t *testing.T) {
	// A deliberately ambiguous dangling-else-shaped grammar: S -> if S | if S else S | x
	spec, err := parseForTest(`
GRAMMAR_NAME ambiguous
START_SYMBOL S
S -> if S
S -> if S else S
S -> x
`)
	if err != nil {
		t.Fatalf("parseForTest: %v", err)
	}
	g, err := Build(spec)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	a := BuildLR0(g)
	tbl := BuildTable(g, a)

	if len(tbl.Conflicts) == 0 {
		t.Fatalf("expected at least one shift/reduce conflict on the dangling-else grammar")
	}
	// BuildTable writes a state's shifts before its reductions, so the
	// first-written action in the dangling-else conflict is the shift.
	for _, c := range tbl.Conflicts {
		if c.Kept.Type != ActionShift || c.Rejected.Type != ActionReduce {
			t.Errorf("expected the first-written shift kept and the later reduce discarded, got %+v", c)
		}
	}
}
