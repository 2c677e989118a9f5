package linsys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAlgae(t *testing.T) *RuleSet {
	t.Helper()
	rs, err := NewRuleSet(map[string]string{"A": "AB", "B": "A"})
	require.NoError(t, err)
	return rs
}

func TestNewRuleSetRejectsMultiSymbolKey(t *testing.T) {
	_, err := NewRuleSet(map[string]string{"BB": "C"})
	assert.ErrorIs(t, err, ErrInvalidRule)

	_, err = NewRuleSet(map[string]string{"": "C"})
	assert.ErrorIs(t, err, ErrInvalidRule)
}

func TestSetRuleRejectsMultiSymbolKey(t *testing.T) {
	rs := newAlgae(t)
	assert.ErrorIs(t, rs.SetRule("BB", "C"), ErrInvalidRule)

	// A multi-byte rune is still a single symbol.
	assert.NoError(t, rs.SetRule("λ", "λμ"))
}

func TestApplyIdentityFallback(t *testing.T) {
	rs := newAlgae(t)
	assert.Equal(t, "AB", rs.Apply('A'))
	assert.Equal(t, "A", rs.Apply('B'))
	assert.Equal(t, "X", rs.Apply('X'))
}

func TestVariablesConstantsAlphabet(t *testing.T) {
	rs, err := NewRuleSet(map[string]string{"S": "SB"})
	require.NoError(t, err)

	assert.Equal(t, SymbolSet{'S': {}}, rs.Variables())
	assert.Equal(t, SymbolSet{'B': {}}, rs.Constants())
	assert.Equal(t, SymbolSet{'S': {}, 'B': {}}, rs.Alphabet())

	// Registering a rule for B reclassifies it immediately.
	require.NoError(t, rs.SetRule("B", "X"))
	assert.Equal(t, SymbolSet{'S': {}, 'B': {}}, rs.Variables())
	assert.Equal(t, SymbolSet{'X': {}}, rs.Constants())

	algae := newAlgae(t)
	assert.Equal(t, algae.Variables(), algae.Alphabet())
	assert.Empty(t, algae.Constants())
}

func TestConstantsExcludeVariables(t *testing.T) {
	rs, err := NewRuleSet(map[string]string{"A": "AB", "B": "BA"})
	require.NoError(t, err)

	consts := rs.Constants()
	for s := range rs.Variables() {
		assert.False(t, consts.Contains(s))
	}
}

func TestEmptyReplacementDeletesSymbol(t *testing.T) {
	rs, err := NewRuleSet(map[string]string{"A": "B"})
	require.NoError(t, err)
	require.NoError(t, rs.SetRule("B", ""))

	assert.Empty(t, rs.Constants())
	assert.Equal(t, "B", rs.ApplyOnce("AB"))
	assert.Equal(t, "", rs.ApplyOnce("BBB"))
}

func TestApplyOnce(t *testing.T) {
	rs := newAlgae(t)
	assert.Equal(t, "AB", rs.ApplyOnce("A"))
	assert.Equal(t, "ABA", rs.ApplyOnce("AB"))

	// Pure: same input, same rules, same output.
	assert.Equal(t, rs.ApplyOnce("ABAAB"), rs.ApplyOnce("ABAAB"))
}

func TestApplyN(t *testing.T) {
	rs := newAlgae(t)

	assert.Equal(t, "A", rs.ApplyN("A", 0))
	assert.Equal(t, "A", rs.ApplyN("A", -1))
	assert.Equal(t, "AB", rs.ApplyN("A", 1))
	assert.Equal(t, "ABAABABA", rs.ApplyN("A", 4))
	assert.Equal(t, "ABAABABAABAAB", rs.ApplyN("A", 5))
}

func TestApplyNPastFixedPoint(t *testing.T) {
	rs, err := NewRuleSet(map[string]string{"A": "B"})
	require.NoError(t, err)

	// The string stabilizes after one step; the remaining steps are
	// identity rewrites, not an early exit.
	assert.Equal(t, "B", rs.ApplyN("A", 5))

	empty, err := NewRuleSet(nil)
	require.NoError(t, err)
	assert.Equal(t, "X", empty.ApplyN("X", 3))
}

func TestContainsVariable(t *testing.T) {
	rs, err := NewRuleSet(map[string]string{"A": "B", "C": "D"})
	require.NoError(t, err)

	tests := []struct {
		input string
		want  bool
	}{
		{"XXXXABC", true},
		{"XXXXX", false},
		{"BDBDBDBDBD", false},
		{"XAXA", true},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, rs.ContainsVariable(tt.input), "input %q", tt.input)
	}
}

func TestCountVariables(t *testing.T) {
	rs, err := NewRuleSet(map[string]string{"A": "B", "C": "D"})
	require.NoError(t, err)

	assert.Equal(t, 4, rs.CountVariables("AACCB"))
	assert.Equal(t, 0, rs.CountVariables("BBBDDD"))
	assert.Equal(t, 0, rs.CountVariables(""))
}

func TestRuleSetString(t *testing.T) {
	rs := newAlgae(t)
	assert.Equal(t, `"A": "AB"; "B": "A"`, rs.String())
}

func BenchmarkApplyOnce(b *testing.B) {
	rs, _ := NewRuleSet(map[string]string{"A": "AB", "B": "A"})
	input := rs.ApplyN("A", 15)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rs.ApplyOnce(input)
	}
}

func BenchmarkApplyN(b *testing.B) {
	rs, _ := NewRuleSet(map[string]string{"A": "AB", "B": "A"})

	tests := []struct {
		name  string
		iters int
	}{
		{"10", 10},
		{"20", 20},
	}

	b.ResetTimer()
	for _, tt := range tests {
		b.Run(tt.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				rs.ApplyN("A", tt.iters)
			}
		})
	}
}
