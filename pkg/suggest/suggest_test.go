package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClosest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		candidates []string
		max        int
		expected   []string
	}{
		{
			name:       "exact and prefix matches",
			target:     "hello",
			candidates: []string{"hello", "world", "help"},
			max:        2,
			expected:   []string{"hello", "help"},
		},
		{
			name:       "typo",
			target:     "verzion",
			candidates: []string{"version", "add", "status"},
			max:        3,
			expected:   []string{"version"},
		},
		{
			name:       "case insensitive target",
			target:     "Version",
			candidates: []string{"version"},
			max:        1,
			expected:   []string{"version"},
		},
		{
			name:       "empty target",
			target:     "",
			candidates: []string{"hello"},
			max:        2,
			expected:   nil,
		},
		{
			name:       "no plausible matches",
			target:     "xyz",
			candidates: []string{"hello", "world"},
			max:        2,
			expected:   []string{},
		},
		{
			name:       "non-positive max",
			target:     "hello",
			candidates: []string{"hello"},
			max:        0,
			expected:   nil,
		},
		{
			name:       "truncated to max",
			target:     "hel",
			candidates: []string{"hello", "help", "held"},
			max:        2,
			expected:   []string{"held", "hello"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Closest(tt.target, tt.candidates, tt.max))
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
		{name: "identical", a: "hello", b: "hello", expected: 1.0},
		{name: "prefix", a: "hel", b: "hello", expected: 0.9},
		{name: "one edit", a: "hallo", b: "hello", expected: 0.8},
		{name: "disjoint", a: "hello", b: "world", expected: 0.2},
		{name: "against empty", a: "hello", b: "", expected: 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, similarity(tt.a, tt.b), 0.001)
		})
	}
}

func TestEditDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b     string
		expected int
	}{
		{"hello", "hello", 0},
		{"hello", "hallo", 1},
		{"hello", "hello1", 1},
		{"hello", "hell", 1},
		{"", "hello", 5},
		{"hello", "", 5},
		{"", "", 0},
		{"hello", "world", 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, editDistance(tt.a, tt.b), "distance mismatch for %q and %q", tt.a, tt.b)
	}
}
