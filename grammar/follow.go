package grammar

// followSets maps every nonterminal to its FOLLOW set.
type followSets map[Symbol]map[Symbol]bool

// computeFollow runs the fixed-point iteration (spec.md §4.5 "FOLLOW"):
// EOF is in FOLLOW(start); for A -> a B b, FIRST(b)\{ε} is in FOLLOW(B),
// and if b is empty or nullable, FOLLOW(A) is in FOLLOW(B) too.
func computeFollow(g *Grammar, first firstSets) followSets {
	follow := followSets{}
	for _, nt := range g.NonTerminals {
		follow[nt] = map[Symbol]bool{}
	}
	follow[g.Start][EOF] = true

	for {
		changed := false
		for _, p := range g.Productions {
			for i, sym := range p.RHS {
				if sym.Terminal {
					continue
				}
				rest := p.RHS[i+1:]
				restFirst := firstOfSequence(first, rest)
				set := follow[sym]
				for s := range restFirst {
					if s != Epsilon && !set[s] {
						set[s] = true
						changed = true
					}
				}
				if restFirst[Epsilon] {
					for s := range follow[p.LHS] {
						if !set[s] {
							set[s] = true
							changed = true
						}
					}
				}
			}
		}
		if !changed {
			break
		}
	}
	return follow
}
