package dfa

import (
	"sort"
	"strconv"
	"strings"

	"github.com/nihei9/minicc/token"
)

// block is one partition block during Hopcroft-style refinement: a set of
// DFA state IDs that, so far, are indistinguishable.
type block []StateID

// initialPartition groups states into one block per accept kind plus one
// block of all non-accepting states (spec.md §4.3 "Minimization"),
// mirroring initialPartition in original_source's dfa_min.cpp.
func initialPartition(a *Automaton) []block {
	nonAccept := block{}
	byKind := map[token.Kind]block{}

	for i, s := range a.States {
		id := StateID(i)
		if !s.Accept {
			nonAccept = append(nonAccept, id)
			continue
		}
		byKind[s.Kind] = append(byKind[s.Kind], id)
	}

	var parts []block
	if len(nonAccept) > 0 {
		parts = append(parts, nonAccept)
	}
	var kinds []token.Kind
	for k := range byKind {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, k := range kinds {
		parts = append(parts, byKind[k])
	}
	return parts
}

// signature returns a per-byte mapping from transition target to the
// target's current block index, the splitter the original implementation
// keys its refinement map by.
func signature(a *Automaton, blockOf map[StateID]int, s StateID) string {
	st := a.States[s]
	var bytes []byte
	for b := range st.Trans {
		bytes = append(bytes, b)
	}
	sort.Slice(bytes, func(i, j int) bool { return bytes[i] < bytes[j] })

	var sb strings.Builder
	for _, b := range bytes {
		to := st.Trans[b]
		sb.WriteByte(b)
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(blockOf[to]))
		sb.WriteByte(';')
	}
	return sb.String()
}

// Minimize collapses equivalent states by partition refinement, returning a
// new, smaller Automaton (spec.md §4.3 "Minimization"). Within a block, all
// states must share the same per-byte signature against the current
// partition; a block that doesn't splits, and refinement repeats until no
// block splits.
func Minimize(a *Automaton) *Automaton {
	parts := initialPartition(a)

	for {
		blockOf := map[StateID]int{}
		for i, p := range parts {
			for _, s := range p {
				blockOf[s] = i
			}
		}

		changed := false
		var next []block
		for _, p := range parts {
			groups := map[string]block{}
			var order []string
			for _, s := range p {
				sig := signature(a, blockOf, s)
				if _, ok := groups[sig]; !ok {
					order = append(order, sig)
				}
				groups[sig] = append(groups[sig], s)
			}
			if len(groups) > 1 {
				changed = true
			}
			sort.Strings(order)
			for _, sig := range order {
				next = append(next, groups[sig])
			}
		}
		parts = next
		if !changed {
			break
		}
	}

	return buildFromPartition(a, parts)
}

// buildFromPartition builds a new DFA with one state per block, preserving
// the block's accept-kind and wiring transitions by representative
// (spec.md §4.3).
func buildFromPartition(a *Automaton, parts []block) *Automaton {
	out := &Automaton{States: make([]*State, len(parts))}

	blockOf := map[StateID]int{}
	for i, p := range parts {
		for _, s := range p {
			blockOf[s] = i
		}
	}

	for i, p := range parts {
		rep := a.States[p[0]]
		out.States[i] = &State{
			Trans:  map[byte]StateID{},
			Accept: rep.Accept,
			Kind:   rep.Kind,
		}
	}

	for i, p := range parts {
		rep := a.States[p[0]]
		for b, to := range rep.Trans {
			out.States[i].Trans[b] = StateID(blockOf[to])
		}
	}

	out.Start = StateID(blockOf[a.Start])
	return out
}
