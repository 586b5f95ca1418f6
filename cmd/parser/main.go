// Command parser drives the SLR(1) shift-reduce parser over a token file
// produced by cmd/scanner (spec.md §6 "Invocation": `parser <grammar_path>
// <token_file_path>`), grounded on the teacher's cmd/vartan one-command-per-
// binary style and cobra usage.
package main

import (
	"fmt"
	"os"

	"github.com/nihei9/minicc/diag"
	"github.com/nihei9/minicc/driver"
	"github.com/nihei9/minicc/gramfile"
	"github.com/nihei9/minicc/grammar"
	"github.com/nihei9/minicc/scan"
	"github.com/spf13/cobra"
)

var flags = struct {
	dumpTable     *bool
	dumpAutomaton *bool
}{}

var rootCmd = &cobra.Command{
	Use:           "parser <grammar_path> <token_file_path>",
	Short:         "Parse a token file against an SLR(1) grammar",
	Example:       `  parser minic.grammar tokens.txt`,
	Args:          cobra.ExactArgs(2),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          run,
}

func init() {
	flags.dumpTable = rootCmd.Flags().Bool("dump-table", false, "print the SLR(1) ACTION/GOTO table")
	flags.dumpAutomaton = rootCmd.Flags().Bool("dump-automaton", false, "print the canonical LR(0) automaton")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	grammarPath, tokenPath := args[0], args[1]

	raw, err := gramfile.Load(grammarPath, os.Stderr)
	if err != nil {
		return diag.Fatal(fmt.Errorf("cannot load grammar: %w", err))
	}
	g, err := grammar.Build(raw)
	if err != nil {
		return diag.Fatal(fmt.Errorf("cannot build grammar: %w", err))
	}

	automaton := grammar.BuildLR0(g)
	if *flags.dumpAutomaton {
		grammar.DumpAutomaton(g, automaton)
	}

	table := grammar.BuildTable(g, automaton)
	grammar.ReportConflicts(os.Stderr, g, table)
	if *flags.dumpTable {
		grammar.DumpTable(table)
	}

	tokenFile, err := os.Open(tokenPath)
	if err != nil {
		return diag.Fatal(fmt.Errorf("cannot open token file %s: %w", tokenPath, err))
	}
	defer tokenFile.Close()

	tokens, err := scan.ReadTokenFile(tokenFile)
	if err != nil {
		return diag.Fatal(fmt.Errorf("cannot read token file: %w", err))
	}

	d := driver.New(g, table)
	if err := d.Run(tokens); err != nil {
		return diag.Fatal(fmt.Errorf("parse failed: %w", err))
	}

	for _, q := range d.IR().Quads {
		fmt.Println(q.String())
	}

	diag.Info(os.Stderr, "parsed %s into %d quads", tokenPath, len(d.IR().Quads))
	return nil
}
