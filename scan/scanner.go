package scan

import (
	"github.com/nihei9/minicc/automaton/dfa"
	"github.com/nihei9/minicc/token"
)

// Scanner holds the input buffer and current position, line, and column
// (spec.md §4.4 "State").
type Scanner struct {
	dfa  *dfa.Automaton
	buf  []byte
	pos  int
	line int
	col  int
}

// advance moves pos forward by one byte, updating line/col: a newline
// resets column to 1 and increments line (spec.md §4.4 step 1, and the
// "Position tracking" testable property in §8).
func (s *Scanner) advance() {
	if token.IsNewline(s.buf[s.pos]) {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	s.pos++
}

func (s *Scanner) skipWhitespace() {
	for s.pos < len(s.buf) && token.IsWhitespace(s.buf[s.pos]) {
		s.advance()
	}
}

// Next implements the next_token algorithm of spec.md §4.4.
func (s *Scanner) Next() token.Token {
	s.skipWhitespace()

	if s.pos >= len(s.buf) {
		return token.Token{Kind: token.ENDFILE, Line: s.line, Col: s.col}
	}

	startPos, startLine, startCol := s.pos, s.line, s.col

	state := s.dfa.Start
	i := s.pos
	lastAcceptPos := -1
	var lastAcceptKind token.Kind

	for {
		if st := s.dfa.States[state]; st.Accept {
			lastAcceptPos = i
			lastAcceptKind = st.Kind
		}
		if i >= len(s.buf) {
			break
		}
		next, ok := s.dfa.Step(state, s.buf[i])
		if !ok {
			break
		}
		state = next
		i++
	}

	if lastAcceptPos >= 0 {
		for s.pos < lastAcceptPos {
			s.advance()
		}
		lexeme := string(s.buf[startPos:lastAcceptPos])
		return token.Token{Kind: lastAcceptKind, Lexeme: lexeme, Line: startLine, Col: startCol}
	}

	// Forward progress guarantee (spec.md §4.4 step 4, §8): consume exactly
	// one byte and emit ERROR.
	b := s.buf[s.pos]
	s.advance()
	return token.Token{Kind: token.ERROR, Lexeme: string(b), Line: startLine, Col: startCol}
}

// All tokenizes the remaining input to completion, including the trailing
// ENDFILE token. It stops (without consuming further input) the first time
// it would emit ERROR, since the scanner process is required to exit
// nonzero at that point rather than continue (spec.md §7 "Lexical error").
func (s *Scanner) All() ([]token.Token, *token.Token) {
	var out []token.Token
	for {
		tok := s.Next()
		if tok.Kind == token.ERROR {
			return out, &tok
		}
		out = append(out, tok)
		if tok.Kind == token.ENDFILE {
			return out, nil
		}
	}
}
