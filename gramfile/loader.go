// Package gramfile loads the grammar file into an in-memory, purely
// syntactic representation (spec.md §4.1 "Grammar file"), grounded on
// original_source/Syntactic_analyzer/GrammarLoader.hpp. It does not
// augment the grammar or assign final production numbers; that's
// package grammar's job (spec.md §4.5 "Augmentation").
package gramfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nihei9/minicc/diag"
)

// RawProduction is one production as written in the grammar file, before
// terminal/nonterminal classification or numbering.
type RawProduction struct {
	LHS  string
	RHS  []string
	Line int
}

// Spec is the grammar file's raw content.
type Spec struct {
	Name        string
	StartSymbol string
	Productions []RawProduction
}

// terminalLiterals is the fixed set of operator/punctuation literals that
// are always terminals regardless of case (spec.md §4.1).
var terminalLiterals = map[string]bool{
	"+": true, "-": true, "*": true, "/": true,
	"=": true, "<": true, ">": true, "<=": true, ">=": true, "==": true, "!=": true,
	"(": true, ")": true, "{": true, "}": true, ";": true, ",": true,
	"$": true, "ε": true,
}

// IsTerminal classifies a symbol name the way spec.md §4.1 requires: a
// fixed-set literal, or alphabetic and entirely lowercase, is a terminal;
// everything else is a nonterminal.
func IsTerminal(name string) bool {
	if terminalLiterals[name] {
		return true
	}
	if name == "" {
		return false
	}
	allLowerAlpha := true
	for _, r := range name {
		if r < 'a' || r > 'z' {
			allLowerAlpha = false
			break
		}
	}
	return allLowerAlpha
}

// stripQuotes removes a matching pair of leading/trailing single quotes
// (spec.md §6: "single-quoted symbol names are stripped of quotes"; §9
// Open Questions mandates always stripping).
func stripQuotes(s string) string {
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return s[1 : len(s)-1]
	}
	return s
}

// Load parses the grammar file at path. Malformed directive lines, a
// missing "->", or a continuation line with no preceding production are
// logged to w and skipped; processing continues (spec.md §7 "Grammar-file
// error").
func Load(path string, w io.Writer) (*Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gramfile: cannot open %s: %w", path, err)
	}
	defer f.Close()
	return parse(f, path, w)
}

// ParseReader parses a grammar file's content from an in-memory reader, for
// callers (tests, or a spec already held in memory) that don't have a path
// on disk. Warnings are discarded.
func ParseReader(r io.Reader) (*Spec, error) {
	return parse(r, "<reader>", io.Discard)
}

func parse(r io.Reader, path string, w io.Writer) (*Spec, error) {
	spec := &Spec{}
	sc := bufio.NewScanner(r)
	lineNo := 0
	var cur *RawProduction

	for sc.Scan() {
		lineNo++
		text := sc.Text()
		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		switch {
		case strings.HasPrefix(trimmed, "GRAMMAR_NAME"):
			fields := strings.Fields(trimmed)
			if len(fields) < 2 {
				diag.Warn(w, "%s:%d: malformed GRAMMAR_NAME directive, skipped", path, lineNo)
				continue
			}
			spec.Name = fields[1]
			cur = nil

		case strings.HasPrefix(trimmed, "START_SYMBOL"):
			fields := strings.Fields(trimmed)
			if len(fields) < 2 {
				diag.Warn(w, "%s:%d: malformed START_SYMBOL directive, skipped", path, lineNo)
				continue
			}
			spec.StartSymbol = stripQuotes(fields[1])
			cur = nil

		case strings.Contains(trimmed, "->"):
			parts := strings.SplitN(trimmed, "->", 2)
			lhs := strings.TrimSpace(parts[0])
			if lhs == "" {
				diag.Warn(w, "%s:%d: production with no left-hand side, skipped", path, lineNo)
				cur = nil
				continue
			}
			rhs := splitSymbols(parts[1])
			spec.Productions = append(spec.Productions, RawProduction{
				LHS: stripQuotes(lhs), RHS: rhs, Line: lineNo,
			})
			cur = &spec.Productions[len(spec.Productions)-1]

		default:
			if cur == nil {
				diag.Warn(w, "%s:%d: continuation line with no preceding production, skipped: %q", path, lineNo, text)
				continue
			}
			cur.RHS = append(cur.RHS, splitSymbols(trimmed)...)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gramfile: reading %s: %w", path, err)
	}
	return spec, nil
}

func splitSymbols(s string) []string {
	fields := strings.Fields(s)
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = stripQuotes(f)
	}
	return out
}
