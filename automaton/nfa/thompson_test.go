package nfa

import (
	"testing"

	"github.com/nihei9/minicc/regexast"
	"github.com/nihei9/minicc/token"
)

func TestBuildMasterTagsAcceptStates(t *testing.T) {
	rules := []Rule{
		{Kind: token.INT, Pattern: regexast.Literal("int")},
		{Kind: token.ID, Pattern: regexast.Identifier()},
	}
	a, err := BuildMaster(rules)
	if err != nil {
		t.Fatalf("BuildMaster: %v", err)
	}

	var acceptKinds []token.Kind
	for _, s := range a.States {
		if s.Accept != token.Invalid {
			acceptKinds = append(acceptKinds, s.Accept)
		}
	}
	if len(acceptKinds) != 2 {
		t.Fatalf("expected exactly 2 accepting states, got %d: %v", len(acceptKinds), acceptKinds)
	}
}

func TestBuildMasterStartHasEpsilonToEachRule(t *testing.T) {
	rules := []Rule{
		{Kind: token.INT, Pattern: regexast.Literal("int")},
		{Kind: token.ID, Pattern: regexast.Identifier()},
	}
	a, err := BuildMaster(rules)
	if err != nil {
		t.Fatalf("BuildMaster: %v", err)
	}
	if len(a.States[a.Start].Eps) != len(rules) {
		t.Fatalf("expected %d epsilon transitions from the master start, got %d", len(rules), len(a.States[a.Start].Eps))
	}
}

func TestBuildConcatChainsStates(t *testing.T) {
	a := newAutomaton()
	frag, err := build(a, regexast.Literal("ab"))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if frag.Start == frag.Accept {
		t.Fatalf("expected distinct start/accept states for a 2-byte literal")
	}
}
