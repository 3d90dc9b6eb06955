package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"a", "ab", 1},
		{"ab", "a", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"Hello", "hello", 1},
		{"func_int", "func", 4},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a))
		})
	}
}

func TestSimilarity(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 1.0, Similarity("abc", "abc"), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 1e-9)
	assert.InDelta(t, 0.75, Similarity("abcd", "abce"), 1e-9)
}

func TestNormalizeIdent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "funcint", NormalizeIdent("func_int"))
	assert.Equal(t, "funcint", NormalizeIdent("FuncInt"))
	assert.Equal(t, "funcint", NormalizeIdent("func-int"))
	assert.Equal(t, "aname", NormalizeIdent("A name"))
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	names := []string{"a", "bbb", "b", "func", "func_int"}

	assert.Equal(t, []string{"func_int", "func"}, Suggest("FuncInt", names, 3))
	assert.Equal(t, []string{"func_int"}, Suggest("func_itn", names, 1))
	assert.Empty(t, Suggest("zzzzzz", names, 3))
	assert.Nil(t, Suggest("func", names, 0))
}
