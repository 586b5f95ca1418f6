package grammar

import "testing"

func TestComputeFirst(t *testing.T) {
	g := loadExprGrammar(t)
	first := computeFirst(g)

	wantFirst := map[string][]string{
		"F": {"(", "id"},
		"T": {"(", "id"},
		"E": {"(", "id"},
	}
	for name, want := range wantFirst {
		sym := NT(name)
		got := first[sym]
		for _, w := range want {
			if !got[T(w)] {
				t.Errorf("FIRST(%s) missing %q, got %v", name, w, got)
			}
		}
	}
}

func TestFirstOfSequenceEmpty(t *testing.T) {
	first := firstSets{}
	got := firstOfSequence(first, nil)
	if !got[Epsilon] {
		t.Fatalf("FIRST of empty sequence should contain epsilon")
	}
}
