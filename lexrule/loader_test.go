package lexrule

import (
	"strings"
	"testing"

	"github.com/nihei9/minicc/token"
)

const sampleRules = `
# comment
INT int
ID {ID}
NUM {NUM}
PLUS +
`

func TestParseSkipsBlankAndCommentLines(t *testing.T) {
	rs, err := ParseReader(strings.NewReader(sampleRules))
	if err != nil {
		t.Fatalf("ParseReader: %v", err)
	}
	if len(rs.Rules) != 4 {
		t.Fatalf("expected 4 rules, got %d: %v", len(rs.Rules), rs.Rules)
	}
}

func TestParseUnknownTokenNameIsFatal(t *testing.T) {
	_, err := ParseReader(strings.NewReader("BOGUS int\n"))
	if err == nil {
		t.Fatalf("expected an error for an unknown token name")
	}
}

func TestParseAssignsKinds(t *testing.T) {
	rs, err := ParseReader(strings.NewReader(sampleRules))
	if err != nil {
		t.Fatalf("ParseReader: %v", err)
	}
	if rs.Rules[0].Kind != token.INT {
		t.Errorf("expected first rule to be token.INT, got %v", rs.Rules[0].Kind)
	}
}
