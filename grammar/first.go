package grammar

// firstSets maps every grammar symbol to its FIRST set, computed by
// BuildTable and passed on to computeFollow.
type firstSets map[Symbol]map[Symbol]bool

// computeFirst runs the textbook fixed-point iteration over all symbols
// (spec.md §4.5 "FIRST"): FIRST(terminal) = {terminal}; for a production
// A -> Y1 Y2 ... Yk, keep adding FIRST(Yi) (minus epsilon) until some Yi
// does not derive epsilon, and add epsilon itself when the whole RHS can
// vanish or is literally empty.
func computeFirst(g *Grammar) firstSets {
	first := firstSets{}
	for _, t := range g.Terminals {
		first[t] = map[Symbol]bool{t: true}
	}
	first[EOF] = map[Symbol]bool{EOF: true}
	for _, nt := range g.NonTerminals {
		first[nt] = map[Symbol]bool{}
	}

	for {
		changed := false
		for _, p := range g.Productions {
			set := first[p.LHS]
			if p.IsEmpty() {
				if !set[Epsilon] {
					set[Epsilon] = true
					changed = true
				}
				continue
			}
			allEpsilon := true
			for _, sym := range p.RHS {
				for s := range first[sym] {
					if s != Epsilon && !set[s] {
						set[s] = true
						changed = true
					}
				}
				if !first[sym][Epsilon] {
					allEpsilon = false
					break
				}
			}
			if allEpsilon && !set[Epsilon] {
				set[Epsilon] = true
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return first
}

// firstOfSequence computes FIRST(Y1 Y2 ... Yk) from already-computed
// per-symbol FIRST sets, used by FOLLOW.
func firstOfSequence(first firstSets, seq []Symbol) map[Symbol]bool {
	out := map[Symbol]bool{}
	if len(seq) == 0 {
		out[Epsilon] = true
		return out
	}
	for _, sym := range seq {
		for s := range first[sym] {
			if s != Epsilon {
				out[s] = true
			}
		}
		if !first[sym][Epsilon] {
			return out
		}
	}
	out[Epsilon] = true
	return out
}
