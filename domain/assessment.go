package domain

// RiskLevel is the discrete category derived from the aggregated risk score.
type RiskLevel string

const (
	LevelLow      RiskLevel = "LOW"
	LevelModerate RiskLevel = "MODERATE"
	LevelHigh     RiskLevel = "HIGH"
	LevelSevere   RiskLevel = "SEVERE"
	LevelUnknown  RiskLevel = "UNKNOWN"
)

// Capability identifies one of the optional model-backed scoring functions.
type Capability string

const (
	CapabilitySentiment Capability = "sentiment"
	CapabilityToxicity  Capability = "toxicity"
	CapabilityHate      Capability = "hate"
)

// Weight of each dimension in the aggregated risk score. The four weights
// sum to 1.0 and stay constant for the process lifetime.
const (
	WeightToxicity           = 0.35
	WeightHateTargeting      = 0.35
	WeightEmotionalIntensity = 0.20
	WeightPoliticalRelevance = 0.10
)

// Lower bounds of the risk level cascade. The level function tests SEVERE,
// HIGH and MODERATE in that order; everything below MODERATE is LOW, so the
// LOW bound does not discriminate on its own.
const (
	ThresholdLow      = 0.2
	ThresholdModerate = 0.4
	ThresholdHigh     = 0.7
	ThresholdSevere   = 0.9
)

// DimensionScores holds the four independently scored risk axes.
// Every producer fills all four fields; values stay within [0, 1].
type DimensionScores struct {
	Toxicity           float64 `json:"toxicity"`
	HateTargeting      float64 `json:"hate_targeting"`
	EmotionalIntensity float64 `json:"emotional_intensity"`
	PoliticalRelevance float64 `json:"political_relevance"`
}

// RiskAssessment is the result of a single analysis. Built fresh per call
// and never mutated afterwards. The failure variant carries Error and drops
// the language and timing fields.
type RiskAssessment struct {
	Success          bool            `json:"success"`
	RiskLevel        RiskLevel       `json:"risk_level"`
	RiskScore        float64         `json:"risk_score"`
	Dimensions       DimensionScores `json:"dimensions"`
	Explanations     []string        `json:"explanations"`
	Confidence       float64         `json:"confidence"`
	DetectedLanguage string          `json:"detected_language,omitempty"`
	OriginalLanguage string          `json:"original_language,omitempty"`
	// ProcessingTime is a pointer so a fast analysis that rounds to zero
	// still serializes; only the failure variant leaves it nil.
	ProcessingTime *float64 `json:"processing_time,omitempty"`
	Timestamp      string   `json:"timestamp"`
	Error          string   `json:"error,omitempty"`
}
