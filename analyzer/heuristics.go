package analyzer

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"risklab/lexicon"
)

// Adverbs that amplify emotional intensity. Matched as substrings on the
// lowercased text, each distinct match contributing once.
var intensityAdverbs = []string{"very", "extremely", "absolutely", "completely", "totally"}

func toxicityHeuristic(text string, hits int) float64 {
	score := 0.0
	if hits > 0 {
		score += math.Min(0.6, float64(hits)*0.15)
	}
	if utf8.RuneCountInString(text) > 10 && isAllUpper(text) {
		score += 0.3
	}
	if exclamations := strings.Count(text, "!"); exclamations > 0 {
		score += math.Min(0.2, float64(exclamations)*0.05)
	}
	return math.Min(score, 1.0)
}

func hateHeuristic(text string, hits int) float64 {
	score := 0.0
	if hits > 0 {
		score += math.Min(0.5, float64(hits)*0.2)
	}
	// Flat bonus, applied once however many patterns match.
	if lexicon.MatchesGroupPattern(text) {
		score += 0.3
	}
	return math.Min(score, 1.0)
}

func emotionalHeuristic(text string) float64 {
	score := 0.0

	switch exclamations := strings.Count(text, "!"); {
	case exclamations >= 5:
		score += 0.4
	case exclamations >= 3:
		score += 0.3
	case exclamations >= 1:
		score += 0.15
	}

	if strings.Count(text, "?") >= 3 {
		score += 0.2
	}

	if length := utf8.RuneCountInString(text); length > 20 {
		upper := 0
		for _, r := range text {
			if unicode.IsUpper(r) {
				upper++
			}
		}
		if float64(upper)/float64(length) > 0.5 {
			score += 0.3
		}
	}

	lower := strings.ToLower(text)
	matches := 0
	for _, adverb := range intensityAdverbs {
		if strings.Contains(lower, adverb) {
			matches++
		}
	}
	score += math.Min(0.3, float64(matches)*0.1)

	return math.Min(score, 1.0)
}

func politicalHeuristic(hits int) float64 {
	switch {
	case hits == 0:
		return 0.0
	case hits >= 3:
		return 0.7
	case hits >= 2:
		return 0.5
	default:
		return 0.3
	}
}

// isAllUpper reports whether text has at least one cased rune and none of
// them is lowercase.
func isAllUpper(text string) bool {
	cased := false
	for _, r := range text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}
