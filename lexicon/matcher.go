package lexicon

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Matcher counts lexicon hits inside free text. Both the patterns and the
// searched text go through the same normalization (lowercasing, leet-speak
// folding, noise stripping) so obfuscated spellings still count.
type Matcher struct {
	machine *goahocorasick.Machine
	terms   int
}

// NewMatcher builds the Aho-Corasick automaton over the normalized terms.
func NewMatcher(terms []string) (*Matcher, error) {
	patterns := make([][]rune, 0, len(terms))
	for _, term := range terms {
		if normalized := normalizeRunes([]rune(term)); len(normalized) > 0 {
			patterns = append(patterns, normalized)
		}
	}
	machine := new(goahocorasick.Machine)
	if err := machine.Build(patterns); err != nil {
		return nil, err
	}
	return &Matcher{machine: machine, terms: len(patterns)}, nil
}

// Count returns how many distinct terms occur in text. Multiple occurrences
// of the same term count once.
func (m *Matcher) Count(text string) int {
	normalized := normalizeRunes([]rune(text))
	if len(normalized) == 0 {
		return 0
	}
	spans := m.machine.MultiPatternSearch(normalized, false)
	if len(spans) == 0 {
		return 0
	}
	seen := make(map[string]struct{}, len(spans))
	for _, span := range spans {
		seen[string(span.Word)] = struct{}{}
	}
	return len(seen)
}

func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		folded := foldRune(r)
		if isNoise(folded) {
			continue
		}
		out = append(out, unicode.ToLower(folded))
	}
	return out
}

// foldRune maps common leet-speak substitutions back to their plain letters.
func foldRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
