package linsys

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// RuleSet maps single symbols to their replacement strings. Symbols without
// a registered rule rewrite to themselves, so terminals never need explicit
// registration.
type RuleSet struct {
	rules map[Symbol]string
}

func NewRuleSet(rules map[string]string) (*RuleSet, error) {
	rs := &RuleSet{rules: make(map[Symbol]string, len(rules))}
	for key, replacement := range rules {
		if err := rs.SetRule(key, replacement); err != nil {
			return nil, err
		}
	}
	return rs, nil
}

// SetRule registers or replaces the production for key. The key must be a
// single symbol. An empty replacement is valid and erases the symbol from
// future generations.
func (rs *RuleSet) SetRule(key, replacement string) error {
	syms := []rune(key)
	if len(syms) != 1 {
		return errors.Wrapf(ErrInvalidRule, "key %q", key)
	}
	rs.rules[Symbol(syms[0])] = replacement
	return nil
}

// Apply returns the replacement for s, or s itself when no rule is
// registered. Lookup is total: unregistered symbols are terminals, not
// errors.
func (rs *RuleSet) Apply(s Symbol) string {
	if replacement, exists := rs.rules[s]; exists {
		return replacement
	}
	return string(s)
}

// Variables returns the symbols currently subject to rewriting. Recomputed
// on every call, rules may have changed.
func (rs *RuleSet) Variables() SymbolSet {
	vars := make(SymbolSet, len(rs.rules))
	for s := range rs.rules {
		vars.Add(s)
	}
	return vars
}

// Constants returns the symbols appearing in replacements that have no rule
// of their own.
func (rs *RuleSet) Constants() SymbolSet {
	vars := rs.Variables()
	consts := make(SymbolSet)
	for _, replacement := range rs.rules {
		for _, r := range replacement {
			if s := Symbol(r); !vars.Contains(s) {
				consts.Add(s)
			}
		}
	}
	return consts
}

func (rs *RuleSet) Alphabet() SymbolSet {
	return rs.Variables().Union(rs.Constants())
}

// ApplyOnce rewrites every symbol of input once, in order. One generation
// step.
func (rs *RuleSet) ApplyOnce(input string) string {
	var sb strings.Builder
	sb.Grow(len(input) * 2)
	for _, r := range input {
		sb.WriteString(rs.Apply(Symbol(r)))
	}
	return sb.String()
}

// ApplyN runs exactly n rewrite steps, even when the string has already
// reached a fixed point. n <= 0 returns the input unchanged.
func (rs *RuleSet) ApplyN(input string, n int) string {
	if n <= 0 {
		return input
	}
	pool := newBufferPool(len(input) * 2)
	pool.appendString(input)
	for i := 0; i < n; i++ {
		pool.rewrite(rs.Apply)
	}
	return pool.String()
}

// ContainsVariable reports whether any symbol of input has a registered
// rule. Presence suffices, no counting.
func (rs *RuleSet) ContainsVariable(input string) bool {
	for _, r := range input {
		if _, exists := rs.rules[Symbol(r)]; exists {
			return true
		}
	}
	return false
}

// CountVariables counts the occurrences of variables in input.
func (rs *RuleSet) CountVariables(input string) int {
	count := 0
	for _, r := range input {
		if _, exists := rs.rules[Symbol(r)]; exists {
			count++
		}
	}
	return count
}

func (rs *RuleSet) String() string {
	keys := rs.Variables().AsSlice()
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	var sb strings.Builder
	for i, key := range keys {
		sb.WriteRune('"')
		sb.WriteRune(rune(key))
		sb.WriteString(`": "`)
		sb.WriteString(rs.rules[key])
		sb.WriteRune('"')
		if i != len(keys)-1 {
			sb.WriteString("; ")
		}
	}
	return sb.String()
}
