package grammar

import (
	"fmt"

	"github.com/pterm/pterm"
)

// DumpAutomaton renders the canonical LR(0) automaton as a tree, one branch
// per state, for the --dump-automaton debug surface (SPEC_FULL.md
// Supplemented Features #3; grounded on npillmayer/gorgo's pterm-based REPL
// tree rendering).
func DumpAutomaton(g *Grammar, a *Automaton) {
	root := pterm.TreeNode{Text: fmt.Sprintf("LR(0) automaton (%d states)", len(a.States))}
	for _, st := range a.States {
		node := pterm.TreeNode{Text: fmt.Sprintf("state %d", st.ID)}
		for _, it := range st.Items {
			p := g.prods.findByID(it.Prod)
			node.Children = append(node.Children, pterm.TreeNode{Text: itemString(p, it.Dot)})
		}
		for sym, next := range st.Next {
			node.Children = append(node.Children, pterm.TreeNode{Text: fmt.Sprintf("on %s -> state %d", sym, next)})
		}
		root.Children = append(root.Children, node)
	}
	pterm.DefaultTree.WithRoot(root).Render()
}

// DumpTable renders the ACTION/GOTO table for the --dump-table debug
// surface.
func DumpTable(t *Table) {
	data := [][]string{{"state", "symbol", "action"}}
	for state, row := range t.Action {
		for sym, act := range row {
			data = append(data, []string{fmt.Sprint(state), sym.String(), actionString(act)})
		}
	}
	for state, row := range t.GoTo {
		for sym, next := range row {
			data = append(data, []string{fmt.Sprint(state), sym.String(), fmt.Sprintf("goto %d", next)})
		}
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func itemString(p *Production, dot int) string {
	s := p.LHS.Name + " ->"
	for i, sym := range p.RHS {
		if i == dot {
			s += " ."
		}
		s += " " + sym.Name
	}
	if dot == len(p.RHS) {
		s += " ."
	}
	if p.IsEmpty() {
		s += " ."
	}
	return s
}

func actionString(a Action) string {
	switch a.Type {
	case ActionShift:
		return fmt.Sprintf("shift %d", a.State)
	case ActionReduce:
		return fmt.Sprintf("reduce %d", a.Prod)
	case ActionAccept:
		return "accept"
	default:
		return "error"
	}
}
