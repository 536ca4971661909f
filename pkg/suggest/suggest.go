// Package suggest finds near-miss candidates for a mistyped name, used to
// enrich unknown-command errors.
package suggest

import (
	"cmp"
	"slices"
	"strings"
)

// threshold is the minimum similarity score for a candidate to be offered.
const threshold = 0.5

type scored struct {
	name  string
	score float64
}

// FindSimilar returns up to maxResults candidates similar to target, best
// match first. Ties break alphabetically.
func FindSimilar(target string, candidates []string, maxResults int) []string {
	if target == "" || maxResults <= 0 {
		return nil
	}
	var matches []scored
	for _, name := range candidates {
		if score := similarity(target, name); score > threshold {
			matches = append(matches, scored{name: name, score: score})
		}
	}
	slices.SortFunc(matches, func(a, b scored) int {
		if a.score != b.score {
			return cmp.Compare(b.score, a.score)
		}
		return cmp.Compare(a.name, b.name)
	})
	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	result := make([]string, 0, len(matches))
	for _, m := range matches {
		result = append(result, m.name)
	}
	return result
}

// similarity scores two strings in [0, 1]: 1 for an exact match, 0.9 when
// the candidate extends the target, otherwise normalized edit distance.
func similarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == b {
		return 1.0
	}
	if strings.HasPrefix(b, a) {
		return 0.9
	}
	maxLen := max(len(a), len(b))
	return 1.0 - float64(levenshtein(a, b))/float64(maxLen)
}

func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	prev := make([]int, len(b)+1)
	row := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		row[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			row[j] = min(prev[j]+1, row[j-1]+1, prev[j-1]+cost)
		}
		prev, row = row, prev
	}
	return prev[len(b)]
}
