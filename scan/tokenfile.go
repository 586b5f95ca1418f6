package scan

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nihei9/minicc/token"
)

// WriteTokenFile writes tokens to w in the format spec.md §6 defines:
// "KIND : lexeme (line,column)" per line, with "ENDFILE (line,column)" as
// the final line.
func WriteTokenFile(w io.Writer, tokens []token.Token) error {
	bw := bufio.NewWriter(w)
	for _, t := range tokens {
		if _, err := fmt.Fprintln(bw, t.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadTokenFile parses a token file back into a slice of Tokens, the way
// the parser process reloads what the scanner process wrote (spec.md §3
// "persisted to disk by the scanner process, and reloaded by the parser
// process"). ENDFILE lines are still returned (as a token.ENDFILE entry) so
// callers can decide how to use them; the parser driver skips consuming
// past it.
func ReadTokenFile(r io.Reader) ([]token.Token, error) {
	var out []token.Token
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\n")
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "ENDFILE") {
			row, col, err := parsePosition(line, "ENDFILE")
			if err != nil {
				return nil, fmt.Errorf("token file line %d: %w", lineNo, err)
			}
			out = append(out, token.Token{Kind: token.ENDFILE, Line: row, Col: col})
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 4 || fields[1] != ":" {
			return nil, fmt.Errorf("token file line %d: malformed line %q", lineNo, line)
		}
		kindName := fields[0]
		kind, ok := token.KindFromName(kindName)
		if !ok {
			return nil, fmt.Errorf("token file line %d: unknown token kind %q", lineNo, kindName)
		}
		lexeme := fields[2]
		posText := strings.Join(fields[3:], " ")
		row, col, err := parsePosition(posText, "")
		if err != nil {
			return nil, fmt.Errorf("token file line %d: %w", lineNo, err)
		}
		out = append(out, token.Token{Kind: kind, Lexeme: lexeme, Line: row, Col: col})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// parsePosition extracts (line,column) from a trailing "(line,column)"
// substring, after stripping an optional leading prefix.
func parsePosition(text, prefix string) (int, int, error) {
	text = strings.TrimSpace(strings.TrimPrefix(text, prefix))
	open := strings.IndexByte(text, '(')
	close := strings.IndexByte(text, ')')
	if open < 0 || close < 0 || close < open {
		return 0, 0, fmt.Errorf("missing position in %q", text)
	}
	inner := text[open+1 : close]
	parts := strings.SplitN(inner, ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed position %q", inner)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}
	return row, col, nil
}
