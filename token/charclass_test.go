package token

import "testing"

func TestIsIdentHeadAndTail(t *testing.T) {
	if !IsIdentHead('_') || !IsIdentHead('a') || IsIdentHead('3') {
		t.Fatalf("IsIdentHead classification wrong")
	}
	if !IsIdentTail('3') || !IsIdentTail('_') || !IsIdentTail('z') {
		t.Fatalf("IsIdentTail classification wrong")
	}
}

func TestIsWhitespaceExactSet(t *testing.T) {
	for _, b := range []byte{' ', '\t', '\r', '\n'} {
		if !IsWhitespace(b) {
			t.Errorf("expected %q to be whitespace", b)
		}
	}
	if IsWhitespace('a') {
		t.Errorf("'a' should not be whitespace")
	}
}
