// Command scanner tokenizes a source file against a lexical rule file and
// writes the resulting token file to disk (spec.md §6 "Invocation": `scanner
// <source_path> <lex_rules_path>`), grounded on the teacher's cmd/vartan
// one-command-per-binary style and cobra usage.
package main

import (
	"fmt"
	"os"

	"github.com/nihei9/minicc/automaton/dfa"
	"github.com/nihei9/minicc/diag"
	"github.com/nihei9/minicc/lexrule"
	"github.com/nihei9/minicc/scan"
	"github.com/spf13/cobra"
)

var flags = struct {
	output  *string
	dumpDFA *bool
}{}

var rootCmd = &cobra.Command{
	Use:           "scanner <source_path> <lex_rules_path>",
	Short:         "Tokenize a source file against a lexical rule file",
	Example:       `  scanner program.mc minic.lexrules`,
	Args:          cobra.ExactArgs(2),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          run,
}

func init() {
	flags.output = rootCmd.Flags().StringP("output", "o", "tokens.txt", "token file output path")
	flags.dumpDFA = rootCmd.Flags().Bool("dump-dfa", false, "print the compiled DFA's states and transitions")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	sourcePath, rulesPath := args[0], args[1]

	rs, err := lexrule.Load(rulesPath, os.Stderr)
	if err != nil {
		return diag.Fatal(fmt.Errorf("cannot load lexical rules: %w", err))
	}

	d := scan.Compile(rs)
	if *flags.dumpDFA {
		dfa.DumpDFA(d)
	}

	src, err := os.Open(sourcePath)
	if err != nil {
		return diag.Fatal(fmt.Errorf("cannot open source file %s: %w", sourcePath, err))
	}
	defer src.Close()

	s, err := scan.New(d, src)
	if err != nil {
		return diag.Fatal(fmt.Errorf("cannot read source file %s: %w", sourcePath, err))
	}

	tokens, errTok := s.All()

	out, err := os.Create(*flags.output)
	if err != nil {
		return diag.Fatal(fmt.Errorf("cannot create token file %s: %w", *flags.output, err))
	}
	defer out.Close()

	if err := scan.WriteTokenFile(out, tokens); err != nil {
		return diag.Fatal(fmt.Errorf("cannot write token file: %w", err))
	}

	if errTok != nil {
		return diag.Fatal(&diag.SpecError{
			Cause:      fmt.Errorf("unrecognized byte %q at column %d", errTok.Lexeme, errTok.Col),
			FilePath:   sourcePath,
			SourceName: sourcePath,
			Row:        errTok.Line,
		})
	}

	diag.Info(os.Stdout, "wrote %d tokens to %s", len(tokens), *flags.output)
	return nil
}
