package grammar

import "testing"

func TestBuildLR0HasSingleStartKernelItem(t *testing.T) {
	g := loadExprGrammar(t)
	a := BuildLR0(g)

	if len(a.States) == 0 {
		t.Fatalf("expected at least one state")
	}
	start := a.state(a.Start)
	found := false
	for _, it := range start.Items {
		p := g.prods.findByID(it.Prod)
		if p.LHS == g.Start && it.Dot == 0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("start state should contain the augmenting item at dot 0")
	}
}

func TestBuildLR0DeduplicatesStates(t *testing.T) {
	g := loadExprGrammar(t)
	a := BuildLR0(g)

	seen := map[string]bool{}
	for _, st := range a.States {
		key := itemSetKey(append([]Item{}, st.Items...))
		if seen[key] {
			t.Fatalf("duplicate item set found for state %d", st.ID)
		}
		seen[key] = true
	}
}

func TestGotoAdvancesDot(t *testing.T) {
	g := loadExprGrammar(t)
	a := BuildLR0(g)
	start := a.state(a.Start)

	idSym := T("id")
	next, ok := start.Next[idSym]
	if !ok {
		t.Fatalf("expected a transition on 'id' from the start state")
	}
	st := a.state(next)
	for _, it := range st.Items {
		if it.Dot == 0 {
			t.Errorf("goto(start, id) should only contain items with dot advanced, got dot 0 item %+v", it)
		}
	}
}
