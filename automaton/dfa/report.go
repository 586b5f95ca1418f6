package dfa

import (
	"fmt"

	"github.com/pterm/pterm"
)

// DumpDFA renders the automaton's states and transitions as a tree, for the
// --dump-dfa debug surface (SPEC_FULL.md Supplemented Features #3; grounded
// on original_source/Lexical_analyzer/nfa_debug.cpp's standalone NFA
// printer, adapted to pterm the way grammar.DumpAutomaton renders the LR(0)
// automaton).
func DumpDFA(a *Automaton) {
	root := pterm.TreeNode{Text: fmt.Sprintf("DFA (%d states, start %d)", len(a.States), a.Start)}
	for id, st := range a.States {
		label := fmt.Sprintf("state %d", id)
		if st.Accept {
			label += fmt.Sprintf(" [accept %s]", st.Kind)
		}
		node := pterm.TreeNode{Text: label}
		for b, next := range st.Trans {
			node.Children = append(node.Children, pterm.TreeNode{Text: fmt.Sprintf("on %q -> state %d", string(b), next)})
		}
		root.Children = append(root.Children, node)
	}
	pterm.DefaultTree.WithRoot(root).Render()
}
