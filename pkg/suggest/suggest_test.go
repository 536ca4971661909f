package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindSimilar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		candidates []string
		maxResults int
		expected   []string
	}{
		{
			name:       "exact match first",
			target:     "hello",
			candidates: []string{"hello", "world", "help"},
			maxResults: 2,
			expected:   []string{"hello", "help"},
		},
		{
			name:       "empty target",
			target:     "",
			candidates: []string{"hello", "world"},
			maxResults: 2,
		},
		{
			name:       "no matches",
			target:     "xyz",
			candidates: []string{"hello", "world"},
			maxResults: 2,
		},
		{
			name:       "invalid max results",
			target:     "hello",
			candidates: []string{"hello", "world"},
			maxResults: -1,
		},
		{
			name:       "results capped",
			target:     "sta",
			candidates: []string{"start", "status", "state"},
			maxResults: 2,
			expected:   []string{"start", "state"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FindSimilar(tt.target, tt.candidates, tt.maxResults)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSimilarity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a, b     string
		expected float64
	}{
		{name: "perfect match", a: "hello", b: "hello", expected: 1.0},
		{name: "case insensitive", a: "Hello", b: "hello", expected: 1.0},
		{name: "prefix match", a: "hel", b: "hello", expected: 0.9},
		{name: "completely different", a: "hello", b: "world", expected: 0.2},
		{name: "one empty", a: "hello", b: "", expected: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, similarity(tt.a, tt.b), 0.001)
		})
	}
}

func TestLevenshtein(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a, b     string
		expected int
	}{
		{name: "identical", a: "hello", b: "hello", expected: 0},
		{name: "substitution", a: "hello", b: "hallo", expected: 1},
		{name: "addition", a: "hello", b: "hello1", expected: 1},
		{name: "deletion", a: "hello", b: "hell", expected: 1},
		{name: "empty first", a: "", b: "hello", expected: 5},
		{name: "empty second", a: "hello", b: "", expected: 5},
		{name: "different", a: "hello", b: "world", expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, levenshtein(tt.a, tt.b))
		})
	}
}
