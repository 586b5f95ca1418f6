package grammar

import (
	"fmt"
	"io"

	"github.com/nihei9/minicc/diag"
)

// ActionType classifies one ACTION table cell.
type ActionType int

const (
	ActionError ActionType = iota
	ActionShift
	ActionReduce
	ActionAccept
)

// Action is one ACTION table cell: either shift to State, reduce by
// Production, or accept (spec.md §4.5 "ACTION/GOTO table").
type Action struct {
	Type  ActionType
	State StateID
	Prod  int
}

// Conflict records a shift/reduce or reduce/reduce conflict that the
// first-write-wins policy resolved by keeping the first action written
// (spec.md §7 "Conflicts are not fatal: the first action written for a
// (state, terminal) cell wins, and every later attempt to overwrite it is
// reported as a warning instead of raising an error" — a deliberate
// divergence from the teacher's slr.go, which treats conflicts as
// unrecoverable errors).
type Conflict struct {
	State    StateID
	Term     Symbol
	Kept     Action
	Rejected Action
}

// Table is the SLR(1) ACTION/GOTO table (spec.md §4.5), indexed by state and
// symbol rather than by the teacher's flat state*count+sym arrays, since the
// new Symbol type is no longer a small dense integer.
type Table struct {
	Action       map[StateID]map[Symbol]Action
	GoTo         map[StateID]map[Symbol]StateID
	InitialState StateID
	Conflicts    []Conflict
}

func newTable() *Table {
	return &Table{
		Action: map[StateID]map[Symbol]Action{},
		GoTo:   map[StateID]map[Symbol]StateID{},
	}
}

func (t *Table) actionRow(s StateID) map[Symbol]Action {
	row, ok := t.Action[s]
	if !ok {
		row = map[Symbol]Action{}
		t.Action[s] = row
	}
	return row
}

// write installs act at (state, term) if that cell is empty, otherwise
// records the conflict and keeps what's already there.
func (t *Table) write(state StateID, term Symbol, act Action) {
	row := t.actionRow(state)
	if existing, ok := row[term]; ok {
		if existing == act {
			return
		}
		t.Conflicts = append(t.Conflicts, Conflict{State: state, Term: term, Kept: existing, Rejected: act})
		return
	}
	row[term] = act
}

func (t *Table) writeGoTo(state StateID, nt Symbol, next StateID) {
	row, ok := t.GoTo[state]
	if !ok {
		row = map[Symbol]StateID{}
		t.GoTo[state] = row
	}
	row[nt] = next
}

// BuildTable assembles the SLR(1) ACTION/GOTO table from the LR(0)
// automaton and FOLLOW sets (spec.md §4.5 "SLR(1) table construction"):
// shift on every terminal transition, goto on every nonterminal
// transition, reduce by p in every state with item A -> alpha . for each
// terminal in FOLLOW(A), and accept on the augmented production's item
// dotted at the end over $.
func BuildTable(g *Grammar, a *Automaton) *Table {
	first := computeFirst(g)
	follow := computeFollow(g, first)

	startProd := g.prods.findByLHS(g.Start)[0]

	t := newTable()
	t.InitialState = a.Start

	for _, st := range a.States {
		for sym, next := range st.Next {
			if sym.Terminal {
				t.write(st.ID, sym, Action{Type: ActionShift, State: next})
			} else {
				t.writeGoTo(st.ID, sym, next)
			}
		}

		for _, prodID := range st.Reducible {
			p := g.prods.findByID(prodID)
			if p.LHS == g.Start && prodID == startProd.ID {
				t.write(st.ID, EOF, Action{Type: ActionAccept})
				continue
			}
			for term := range follow[p.LHS] {
				t.write(st.ID, term, Action{Type: ActionReduce, Prod: prodID})
			}
		}
	}

	return t
}

// ReportConflicts writes one warning line per conflict the table builder
// resolved by keeping the first action (spec.md §7).
func ReportConflicts(w io.Writer, g *Grammar, t *Table) {
	for _, c := range t.Conflicts {
		diag.Warn(w, "state %d, symbol %s: %s kept, %s discarded",
			c.State, c.Term, describeAction(g, c.Kept), describeAction(g, c.Rejected))
	}
}

func describeAction(g *Grammar, a Action) string {
	switch a.Type {
	case ActionShift:
		return fmt.Sprintf("shift to state %d", a.State)
	case ActionReduce:
		return fmt.Sprintf("reduce by %s", g.prods.findByID(a.Prod).String())
	case ActionAccept:
		return "accept"
	default:
		return "error"
	}
}
