package grammar

import "testing"

func TestComputeFollow(t *testing.T) {
	g := loadExprGrammar(t)
	first := computeFirst(g)
	follow := computeFollow(g, first)

	if !follow[g.Start][EOF] {
		t.Fatalf("FOLLOW(start) must contain $")
	}

	e := NT("E")
	if !follow[e][EOF] && !follow[e][T(")")] {
		t.Errorf("FOLLOW(E) should contain $ or ), got %v", follow[e])
	}

	tSym := NT("T")
	if !follow[tSym][T("+")] {
		t.Errorf("FOLLOW(T) should contain '+', got %v", follow[tSym])
	}

	f := NT("F")
	if !follow[f][T("*")] {
		t.Errorf("FOLLOW(F) should contain '*', got %v", follow[f])
	}
}
