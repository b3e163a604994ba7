package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadRule is returned by ParseRule for strings outside the B/S notation.
var ErrBadRule = errors.New("invalid rule")

// Rule holds birth and survival neighbour counts for a life-like automaton.
type Rule struct {
	Birth   [9]bool
	Survive [9]bool
}

// Conway is the classic B3/S23 rule.
var Conway = Rule{
	Birth:   [9]bool{3: true},
	Survive: [9]bool{2: true, 3: true},
}

// Next returns the state of a cell with the given neighbour count.
func (r Rule) Next(alive bool, neighbors int) bool {
	if neighbors < 0 || neighbors > 8 {
		return false
	}
	if alive {
		return r.Survive[neighbors]
	}
	return r.Birth[neighbors]
}

// String renders the rule in B/S notation.
func (r Rule) String() string {
	var sb strings.Builder
	sb.WriteByte('B')
	for n, ok := range r.Birth {
		if ok {
			sb.WriteByte(byte('0' + n))
		}
	}
	sb.WriteString("/S")
	for n, ok := range r.Survive {
		if ok {
			sb.WriteByte(byte('0' + n))
		}
	}
	return sb.String()
}

// ParseRule parses B/S notation such as "B3/S23" (case-insensitive).
func ParseRule(s string) (Rule, error) {
	var r Rule
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(s)), "/")
	if len(parts) != 2 {
		return r, fmt.Errorf("%w %q: want B<digits>/S<digits>", ErrBadRule, s)
	}
	for _, part := range parts {
		if part == "" {
			return r, fmt.Errorf("%w %q: empty section", ErrBadRule, s)
		}
		var dst *[9]bool
		switch part[0] {
		case 'B':
			dst = &r.Birth
		case 'S':
			dst = &r.Survive
		default:
			return r, fmt.Errorf("%w %q: unknown section %q", ErrBadRule, s, part)
		}
		for _, c := range part[1:] {
			if c < '0' || c > '8' {
				return r, fmt.Errorf("%w %q: neighbour count %q out of range", ErrBadRule, s, c)
			}
			dst[c-'0'] = true
		}
	}
	return r, nil
}
