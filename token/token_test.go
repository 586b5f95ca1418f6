package token

import "testing"

func TestTokenStringFormat(t *testing.T) {
	tok := Token{Kind: ID, Lexeme: "foo", Line: 3, Col: 7}
	got := tok.String()
	want := "ID : foo (3,7)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTokenStringEndfile(t *testing.T) {
	tok := Token{Kind: ENDFILE, Line: 10, Col: 1}
	got := tok.String()
	want := "ENDFILE (10,1)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestKindFromNameRoundTrip(t *testing.T) {
	for k, name := range kindNames {
		got, ok := KindFromName(name)
		if !ok || got != k {
			t.Errorf("KindFromName(%q) = %v, %v; want %v, true", name, got, ok, k)
		}
	}
}

func TestPriorityOrdering(t *testing.T) {
	if Priority(INT) >= Priority(ID) {
		t.Errorf("keyword priority (%d) should be lower than ID priority (%d)", Priority(INT), Priority(ID))
	}
	if Priority(ID) >= Priority(NUM) {
		t.Errorf("ID priority (%d) should be lower than NUM priority (%d)", Priority(ID), Priority(NUM))
	}
	if Priority(NUM) >= Priority(PLUS) {
		t.Errorf("NUM priority (%d) should be lower than an operator's priority (%d)", Priority(NUM), Priority(PLUS))
	}
}
