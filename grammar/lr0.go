package grammar

import (
	"sort"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Item is a dotted production: production ID and dot position (spec.md §4.5
// "LR(0) item"), e.g. for E -> E + T, dot==2 reads "E -> E + . T".
type Item struct {
	Prod int
	Dot  int
}

func itemComparator(a, b interface{}) int {
	ia, ib := a.(Item), b.(Item)
	if c := utils.IntComparator(ia.Prod, ib.Prod); c != 0 {
		return c
	}
	return utils.IntComparator(ia.Dot, ib.Dot)
}

// itemSetKey builds the sorted-integer-slice string identity an item set is
// known by (spec.md §9 Design Notes: "state-set identity via sorted-integer
// slice string keys rather than hashing"), avoiding the teacher's
// sha256-based kernel ID.
func itemSetKey(items []Item) string {
	sort.Slice(items, func(i, j int) bool { return itemComparator(items[i], items[j]) < 0 })
	var b strings.Builder
	for i, it := range items {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(strconv.Itoa(it.Prod))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(it.Dot))
	}
	return b.String()
}

// StateID indexes into Automaton.States (spec.md §9 "arena/integer-indexed
// state representation, no raw pointers").
type StateID int

// State is one canonical LR(0) item set plus its outgoing transitions.
type State struct {
	ID        StateID
	Items     []Item
	Next      map[Symbol]StateID
	Reducible []int // production IDs with the dot at the end, in this state
}

// Automaton is the canonical collection of LR(0) sets of items (spec.md §4.5
// "LR(0) automaton").
type Automaton struct {
	States []*State
	Start  StateID
}

func (a *Automaton) state(id StateID) *State { return a.States[id] }

// dottedSymbol returns the symbol right after the dot, or the zero Symbol
// (Name=="") if the dot is at the end.
func dottedSymbol(g *Grammar, it Item) (Symbol, bool) {
	p := g.prods.findByID(it.Prod)
	if it.Dot >= len(p.RHS) {
		return Symbol{}, false
	}
	return p.RHS[it.Dot], true
}

// closure computes the epsilon-closure of a kernel item set: repeatedly add
// (B -> . gamma, 0) for every B immediately after a dot (spec.md §4.5
// "LR(0) closure"). Membership is tracked in an emirpasic/gods treeset,
// keyed by itemComparator, to dedupe pending work the way the teacher's
// genClosure walks an uncheckedItems worklist; the result is returned as a
// plain slice in discovery order.
func closure(g *Grammar, kernel []Item) []Item {
	seen := treeset.NewWith(itemComparator)
	var result []Item
	var worklist []Item
	for _, it := range kernel {
		if !seen.Contains(it) {
			seen.Add(it)
			result = append(result, it)
			worklist = append(worklist, it)
		}
	}
	for len(worklist) > 0 {
		it := worklist[0]
		worklist = worklist[1:]
		sym, ok := dottedSymbol(g, it)
		if !ok || sym.Terminal {
			continue
		}
		for _, p := range g.prods.findByLHS(sym) {
			cand := Item{Prod: p.ID, Dot: 0}
			if !seen.Contains(cand) {
				seen.Add(cand)
				result = append(result, cand)
				worklist = append(worklist, cand)
			}
		}
	}
	return result
}

// goto_ computes GOTO(items, sym): advance the dot for every item dotted
// just before sym (spec.md §4.5 "LR(0) goto").
func goto_(g *Grammar, items []Item, sym Symbol) []Item {
	var kernel []Item
	for _, it := range items {
		s, ok := dottedSymbol(g, it)
		if ok && s == sym {
			kernel = append(kernel, Item{Prod: it.Prod, Dot: it.Dot + 1})
		}
	}
	return kernel
}

// BuildLR0 constructs the canonical LR(0) automaton (spec.md §4.5).
func BuildLR0(g *Grammar) *Automaton {
	a := &Automaton{}
	startProd := g.prods.findByLHS(g.Start)[0]
	startKernel := []Item{{Prod: startProd.ID, Dot: 0}}

	keyToID := map[string]StateID{}
	addState := func(kernel []Item) StateID {
		items := closure(g, kernel)
		key := itemSetKey(append([]Item{}, items...))
		if id, ok := keyToID[key]; ok {
			return id
		}
		id := StateID(len(a.States))
		st := &State{ID: id, Items: items, Next: map[Symbol]StateID{}}
		for _, it := range items {
			if _, ok := dottedSymbol(g, it); !ok {
				st.Reducible = append(st.Reducible, it.Prod)
			}
		}
		a.States = append(a.States, st)
		keyToID[key] = id
		return id
	}

	a.Start = addState(startKernel)

	allSymbols := append(append([]Symbol{}, g.Terminals...), g.NonTerminals...)
	var frontier []StateID
	visited := map[StateID]bool{a.Start: true}
	frontier = append(frontier, a.Start)

	for len(frontier) > 0 {
		id := frontier[0]
		frontier = frontier[1:]
		st := a.state(id)
		for _, sym := range allSymbols {
			k := goto_(g, st.Items, sym)
			if len(k) == 0 {
				continue
			}
			nextID := addState(k)
			st.Next[sym] = nextID
			if !visited[nextID] {
				visited[nextID] = true
				frontier = append(frontier, nextID)
			}
		}
	}

	return a
}
