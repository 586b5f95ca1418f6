package grammar

import (
	"fmt"
	"strings"

	"github.com/nihei9/minicc/gramfile"
)

// Grammar is (name, start_symbol, terminals[], nonterminals[],
// productions[]) (spec.md §3 "Grammar"). By the time Build returns, the
// grammar is already augmented: a fresh start S' and S' -> S have been
// prepended and productions renumbered from 0 (spec.md §4.5
// "Augmentation").
type Grammar struct {
	Name         string
	Start        Symbol
	Terminals    []Symbol
	NonTerminals []Symbol
	Productions  []*Production

	prods *productionSet
}

// Build classifies symbols, constructs productions, and augments the
// grammar described by a parsed grammar file (spec.md §4.1 "The loader
// collects the terminal and nonterminal sets by walking all productions").
func Build(raw *gramfile.Spec) (*Grammar, error) {
	if raw.StartSymbol == "" {
		return nil, fmt.Errorf("grammar: no START_SYMBOL directive")
	}
	if len(raw.Productions) == 0 {
		return nil, fmt.Errorf("grammar: no productions")
	}

	termSeen := map[string]bool{}
	ntSeen := map[string]bool{}
	var terminals, nonTerminals []Symbol

	classify := func(name string) Symbol {
		if gramfile.IsTerminal(name) {
			if !termSeen[name] {
				termSeen[name] = true
				terminals = append(terminals, T(name))
			}
			return T(name)
		}
		if !ntSeen[name] {
			ntSeen[name] = true
			nonTerminals = append(nonTerminals, NT(name))
		}
		return NT(name)
	}

	var prods []*Production
	for _, rp := range raw.Productions {
		lhs := classify(rp.LHS)
		if lhs.Terminal {
			return nil, fmt.Errorf("grammar: line %d: left-hand side %q classified as terminal", rp.Line, rp.LHS)
		}
		var rhs []Symbol
		if !(len(rp.RHS) == 1 && rp.RHS[0] == "ε") {
			for _, name := range rp.RHS {
				rhs = append(rhs, classify(name))
			}
		}
		prods = append(prods, &Production{LHS: lhs, RHS: rhs})
	}

	start := NT(raw.StartSymbol)

	g := &Grammar{
		Name:         raw.Name,
		Start:        start,
		Terminals:    terminals,
		NonTerminals: nonTerminals,
		Productions:  prods,
	}
	g.augment()
	return g, nil
}

// augment prepends a fresh start symbol S' and the production S' -> S, then
// renumbers every production from 0, unless the grammar is already
// augmented (spec.md §4.5 "If the grammar is not already augmented (start
// symbol ending in ' or a production S' -> S present)").
func (g *Grammar) augment() {
	if strings.HasSuffix(g.Start.Name, "'") {
		g.renumber()
		g.prods = newProductionSet(g.Productions)
		return
	}
	for _, p := range g.Productions {
		if p.LHS.Name == g.Start.Name+"'" && len(p.RHS) == 1 && p.RHS[0] == g.Start {
			g.renumber()
			g.prods = newProductionSet(g.Productions)
			return
		}
	}

	newStart := NT(g.Start.Name + "'")
	startProd := &Production{LHS: newStart, RHS: []Symbol{g.Start}}
	g.Productions = append([]*Production{startProd}, g.Productions...)
	g.NonTerminals = append([]Symbol{newStart}, g.NonTerminals...)
	g.Start = newStart

	g.renumber()
	g.prods = newProductionSet(g.Productions)
}

func (g *Grammar) renumber() {
	for i, p := range g.Productions {
		p.ID = i
	}
}

// ProductionByID looks up a production by its (post-augmentation) ID, for
// the driver's reduce step.
func (g *Grammar) ProductionByID(id int) *Production {
	return g.prods.findByID(id)
}
