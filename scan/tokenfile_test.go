package scan

import (
	"bytes"
	"testing"

	"github.com/nihei9/minicc/token"
)

func TestWriteThenReadTokenFileRoundTrips(t *testing.T) {
	tokens := []token.Token{
		{Kind: token.ID, Lexeme: "x", Line: 1, Col: 1},
		{Kind: token.ASSIGN, Lexeme: "=", Line: 1, Col: 3},
		{Kind: token.NUM, Lexeme: "1", Line: 1, Col: 5},
		{Kind: token.SEMI, Lexeme: ";", Line: 1, Col: 6},
		{Kind: token.ENDFILE, Line: 2, Col: 1},
	}

	var buf bytes.Buffer
	if err := WriteTokenFile(&buf, tokens); err != nil {
		t.Fatalf("WriteTokenFile: %v", err)
	}

	got, err := ReadTokenFile(&buf)
	if err != nil {
		t.Fatalf("ReadTokenFile: %v", err)
	}
	if len(got) != len(tokens) {
		t.Fatalf("expected %d tokens, got %d: %v", len(tokens), len(got), got)
	}
	for i, want := range tokens {
		if got[i] != want {
			t.Errorf("token %d: want %+v, got %+v", i, want, got[i])
		}
	}
}

func TestReadTokenFileRejectsUnknownKind(t *testing.T) {
	_, err := ReadTokenFile(bytes.NewReader([]byte("BOGUS : x (1,1)\n")))
	if err == nil {
		t.Fatalf("expected an error for an unknown token kind")
	}
}

func TestReadTokenFileRejectsMalformedLine(t *testing.T) {
	_, err := ReadTokenFile(bytes.NewReader([]byte("not a valid line\n")))
	if err == nil {
		t.Fatalf("expected an error for a malformed line")
	}
}
