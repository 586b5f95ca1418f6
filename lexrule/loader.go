// Package lexrule loads the lexical rule file into an in-memory RuleSet
// (spec.md §4.1 "Rule and grammar loaders (C1)"), grounded on
// original_source/Lexical_analyzer/generator/lexer_rule_parser.cpp.
package lexrule

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nihei9/minicc/diag"
	"github.com/nihei9/minicc/token"
)

// Rule is one TOKEN_NAME/pattern line from the rule file.
type Rule struct {
	Kind    token.Kind
	Pattern string
	Line    int
}

// RuleSet is the loader's in-memory result.
type RuleSet struct {
	Rules []Rule
}

// Load parses the lexical rule file at path. Blank lines and lines
// beginning with '#' are skipped; each content line is "TOKEN_NAME
// pattern". An unknown TOKEN_NAME is fatal, per spec.md §4.1; every other
// malformed line is skipped with a diagnostic written to w (typically
// os.Stderr), and loading continues.
func Load(path string, w io.Writer) (*RuleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lexrule: cannot open %s: %w", path, err)
	}
	defer f.Close()
	return parse(f, path, w)
}

// ParseReader parses rule-file content from an in-memory reader, for tests
// that don't have a rule file on disk. Warnings are discarded.
func ParseReader(r io.Reader) (*RuleSet, error) {
	return parse(r, "<reader>", io.Discard)
}

func parse(r io.Reader, path string, w io.Writer) (*RuleSet, error) {
	rs := &RuleSet{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		fields := strings.Fields(trimmed)
		if len(fields) < 2 {
			diag.Warn(w, "%s:%d: malformed rule line, skipped: %q", path, line, text)
			continue
		}
		name, pattern := fields[0], fields[1]

		kind, ok := token.KindFromName(name)
		if !ok {
			return nil, &diag.SpecError{
				Cause:      fmt.Errorf("unknown token name %q", name),
				FilePath:   path,
				SourceName: path,
				Row:        line,
			}
		}

		rs.Rules = append(rs.Rules, Rule{Kind: kind, Pattern: pattern, Line: line})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("lexrule: reading %s: %w", path, err)
	}
	return rs, nil
}
