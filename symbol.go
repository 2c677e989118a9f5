package linsys

// Symbol is a single unit of the rewriting alphabet.
type Symbol rune

type SymbolSet map[Symbol]struct{}

func (ss SymbolSet) Contains(s Symbol) bool {
	_, exists := ss[s]
	return exists
}

func (ss SymbolSet) Add(s Symbol) {
	ss[s] = struct{}{}
}

func (ss SymbolSet) AsSlice() []Symbol {
	slice := make([]Symbol, 0, len(ss))
	for s := range ss {
		slice = append(slice, s)
	}
	return slice
}

func (ss SymbolSet) Union(other SymbolSet) SymbolSet {
	union := make(SymbolSet, len(ss)+len(other))
	for s := range ss {
		union.Add(s)
	}
	for s := range other {
		union.Add(s)
	}
	return union
}
