// Package suggest ranks candidate names by similarity to a mistyped one, used to build
// "did you mean" hints for unknown commands.
package suggest

import (
	"sort"
	"strings"
)

// minScore is the similarity below which a candidate is not worth suggesting.
const minScore = 0.5

type scored struct {
	name  string
	score float64
}

// Closest returns up to max candidates similar to target, best first. Ties break
// alphabetically so output is stable.
func Closest(target string, candidates []string, max int) []string {
	if target == "" || max <= 0 {
		return nil
	}
	target = strings.ToLower(target)
	ranked := make([]scored, 0, len(candidates))
	for _, name := range candidates {
		if s := similarity(target, name); s > minScore {
			ranked = append(ranked, scored{name: name, score: s})
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score == ranked[j].score {
			return ranked[i].name < ranked[j].name
		}
		return ranked[i].score > ranked[j].score
	})
	if len(ranked) > max {
		ranked = ranked[:max]
	}
	out := make([]string, len(ranked))
	for i, s := range ranked {
		out[i] = s.name
	}
	return out
}

// similarity scores two names on [0, 1]. Exact matches score 1, a prefix match scores
// just below, and everything else falls back to normalized edit distance.
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if len(a) < len(b) && b[:len(a)] == a {
		return 0.9
	}
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	return 1.0 - float64(editDistance(a, b))/float64(longest)
}

// editDistance is the Levenshtein distance, computed with a rolling pair of rows.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
