package semantic

import "testing"

func TestBackpatchResolvesTargets(t *testing.T) {
	ir := &IR{}
	g1 := ir.EmitUnresolvedGoto()
	g2 := ir.EmitUnresolvedGoto()
	ir.Emit(Quad{Op: OpAssn, A1: "1", Result: "x"})

	ir.Backpatch([]int{g1, g2}, ir.NextIndex())

	if ir.Quads[g1].Target != 3 || ir.Quads[g2].Target != 3 {
		t.Fatalf("expected both jumps backpatched to 3, got %d and %d", ir.Quads[g1].Target, ir.Quads[g2].Target)
	}
}

func TestNoDanglingJumpsCatchesUnresolved(t *testing.T) {
	ir := &IR{}
	ir.EmitUnresolvedGoto()
	if ir.NoDanglingJumps() {
		t.Fatalf("an unresolved goto should fail NoDanglingJumps")
	}
	ir.Backpatch([]int{0}, 1)
	if !ir.NoDanglingJumps() {
		t.Fatalf("expected NoDanglingJumps to pass once resolved")
	}
}

func TestIfOpForKnownOperators(t *testing.T) {
	cases := map[string]Op{
		"<": OpIfLT, ">": OpIfGT, "<=": OpIfLE, ">=": OpIfGE, "==": OpIfEQ, "!=": OpIfNE,
	}
	for lexeme, want := range cases {
		got, ok := IfOpFor(lexeme)
		if !ok || got != want {
			t.Errorf("IfOpFor(%q) = %v, %v; want %v, true", lexeme, got, ok, want)
		}
	}
}
