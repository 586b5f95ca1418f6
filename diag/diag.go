// Package diag reports diagnostics to the user (spec.md §7 "Error Handling
// Design"), grounded on the teacher's error/error.go SpecError type, plus
// pterm-based warning/info/fatal styling (SPEC_FULL.md "Diagnostics").
package diag

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
)

// SpecError is a diagnostic tied to a source file and row, echoing the
// offending line the way the teacher's error.SpecError does.
type SpecError struct {
	Cause      error
	FilePath   string
	SourceName string
	Row        int
}

func (e *SpecError) Error() string {
	var b strings.Builder
	if e.SourceName != "" {
		fmt.Fprintf(&b, "%v: ", e.SourceName)
	}
	if e.Row != 0 {
		fmt.Fprintf(&b, "%v: ", e.Row)
	}
	fmt.Fprintf(&b, "error: %v", e.Cause)

	line := readLine(e.FilePath, e.Row)
	if line != "" {
		fmt.Fprintf(&b, "\n    %v", line)
	}

	return b.String()
}

func readLine(filePath string, row int) string {
	if filePath == "" || row <= 0 {
		return ""
	}

	f, err := os.Open(filePath)
	if err != nil {
		return ""
	}
	defer f.Close()

	i := 1
	s := bufio.NewScanner(f)
	for s.Scan() {
		if i == row {
			return s.Text()
		}
		i++
	}

	return ""
}

// Warn reports a non-fatal diagnostic (grammar-file warnings, lexical-rule
// warnings, table-build conflicts) to w in pterm's warning style (spec.md §7
// "a warning is printed"; "logged, that line skipped, processing
// continues"). w is almost always os.Stderr, but loaders also pass
// io.Discard in tests that don't want warnings on the console.
func Warn(w io.Writer, format string, args ...interface{}) {
	pterm.Warning.WithWriter(w).Printfln(format, args...)
}

// Info reports a non-fatal informational message to w.
func Info(w io.Writer, format string, args ...interface{}) {
	pterm.Info.WithWriter(w).Printfln(format, args...)
}

// Fatal reports a fatal diagnostic and returns it as an error for the
// caller to propagate to a nonzero exit code (spec.md §7 "Propagation").
func Fatal(err error) error {
	pterm.Error.Println(err.Error())
	return err
}
