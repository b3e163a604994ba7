package core

import "sort"

// Size describes the dimensions of a board.
type Size struct {
	W int
	H int
}

// Cells returns W*H.
func (s Size) Cells() int { return s.W * s.H }

// Pattern seeds a freshly allocated, all-dead board.
type Pattern func(b *Board, rng *RNG)

var patterns = map[string]Pattern{}

// Register adds a starting pattern under the provided name.
func Register(name string, p Pattern) {
	if name == "" || p == nil {
		return
	}
	patterns[name] = p
}

// Patterns exposes the registry of available starting patterns.
func Patterns() map[string]Pattern {
	return patterns
}

// PatternNames lists registered pattern names in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
