package linsys

// Generations iterates successive rewrites of an axiom. The first pull
// yields the axiom itself (generation zero); the cursor is exhausted once
// the current string holds no variable, since any further rewriting would
// be the identity.
//
// Every step reads the live rule map, so rules changed between pulls apply
// to the in-flight cursor. Callers needing isolation should construct a
// fresh RuleSet per cursor.
type Generations struct {
	rules   *RuleSet
	current string
	started bool
	done    bool
}

func (rs *RuleSet) Generations(axiom string) *Generations {
	return &Generations{rules: rs, current: axiom}
}

// Next returns the next generation, or ("", false) once the sequence has
// reached a fixed point.
func (g *Generations) Next() (string, bool) {
	if g.done {
		return "", false
	}
	if !g.started {
		g.started = true
		return g.current, true
	}
	if !g.rules.ContainsVariable(g.current) {
		g.done = true
		return "", false
	}
	g.current = g.rules.ApplyOnce(g.current)
	return g.current, true
}
