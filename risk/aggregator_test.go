package risk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"risklab/domain"
)

func TestScore_WeightedSum(t *testing.T) {
	req := require.New(t)

	d := domain.DimensionScores{
		Toxicity:           0.6,
		HateTargeting:      0.0,
		EmotionalIntensity: 0.6,
		PoliticalRelevance: 0.0,
	}
	req.InDelta(0.33, Score(d), 1e-9)

	// All dimensions at the ceiling clamp to 1.0.
	full := domain.DimensionScores{Toxicity: 1, HateTargeting: 1, EmotionalIntensity: 1, PoliticalRelevance: 1}
	req.InDelta(1.0, Score(full), 1e-9)

	req.InDelta(0.0, Score(domain.DimensionScores{}), 1e-9)
}

func TestLevel_Cascade(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		expected domain.RiskLevel
	}{
		{"Just below moderate stays low", 0.399, domain.LevelLow},
		{"Moderate lower bound", 0.4, domain.LevelModerate},
		{"Below high stays moderate", 0.699, domain.LevelModerate},
		{"High lower bound", 0.7, domain.LevelHigh},
		{"Below severe stays high", 0.899, domain.LevelHigh},
		{"Severe lower bound", 0.9, domain.LevelSevere},
		{"Zero is low", 0.0, domain.LevelLow},
		// The LOW threshold value never discriminates: 0.2 and 0.39 are
		// both LOW.
		{"Above low bound still low", 0.25, domain.LevelLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Level(tt.score))
		})
	}
}

func TestExplanations_OrderAndTiers(t *testing.T) {
	req := require.New(t)

	d := domain.DimensionScores{
		Toxicity:           0.7,
		HateTargeting:      0.4,
		EmotionalIntensity: 0.7,
		PoliticalRelevance: 0.4,
	}
	explanations := Explanations(d, domain.LevelHigh)

	req.Len(explanations, 5)
	req.Contains(explanations[0], "insulting")
	req.Contains(explanations[1], "group")
	req.Contains(explanations[2], "very intense")
	req.Contains(explanations[3], "politically related")
	req.Contains(explanations[4], "human review")
}

func TestExplanations_NeutralLine(t *testing.T) {
	req := require.New(t)

	explanations := Explanations(domain.DimensionScores{}, domain.LevelLow)
	req.Len(explanations, 1)
	req.Contains(explanations[0], "no significant risk")

	// A single elevated dimension suppresses the neutral line.
	withSignal := Explanations(domain.DimensionScores{Toxicity: 0.35}, domain.LevelLow)
	req.Len(withSignal, 1)
	req.Contains(withSignal[0], "inappropriate")
}

func TestConfidence_Tiers(t *testing.T) {
	longText := strings.Repeat("word ", 15)
	midText := "a dozen characters"

	tests := []struct {
		name     string
		text     string
		scores   domain.DimensionScores
		expected float64
	}{
		{
			name:     "Base case",
			text:     midText,
			scores:   domain.DimensionScores{Toxicity: 0.5},
			expected: 0.7,
		},
		{
			name:     "Long text with clear-cut high score",
			text:     longText,
			scores:   domain.DimensionScores{Toxicity: 0.9},
			expected: 0.9,
		},
		{
			name:     "Short text penalty floors at 0.5",
			text:     "bad",
			scores:   domain.DimensionScores{Toxicity: 0.5},
			expected: 0.5,
		},
		{
			name:     "Clear-cut low score earns a small bonus",
			text:     midText,
			scores:   domain.DimensionScores{Toxicity: 0.1},
			expected: 0.75,
		},
		{
			name:     "Short text with clear-cut low score",
			text:     "ok then",
			scores:   domain.DimensionScores{},
			expected: 0.55,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.expected, Confidence(tt.text, tt.scores), 1e-9)
		})
	}
}

func TestConfidence_AlwaysWithinBounds(t *testing.T) {
	req := require.New(t)
	texts := []string{"", "x", "a perfectly ordinary sentence", strings.Repeat("long ", 40)}
	scores := []domain.DimensionScores{
		{},
		{Toxicity: 1, HateTargeting: 1, EmotionalIntensity: 1, PoliticalRelevance: 1},
		{Toxicity: 0.5},
	}

	for _, text := range texts {
		for _, score := range scores {
			c := Confidence(text, score)
			req.GreaterOrEqual(c, 0.5)
			req.LessOrEqual(c, 1.0)
		}
	}
}
