package language

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/abadojack/whatlanggo"
)

const (
	// Auto is the request-time sentinel asking for detection. Detect always
	// resolves to a concrete code and never returns it.
	Auto = "auto"

	English = "en"
)

// minDetectableRunes is the trimmed length below which detection is not
// attempted and English is assumed.
const minDetectableRunes = 10

type runeSpan struct {
	lo, hi rune
}

// Reserved script blocks checked in a fixed order: a multi-script string
// resolves to the first matching block.
var scriptBlocks = []struct {
	code  string
	spans []runeSpan
}{
	{"zh", []runeSpan{{0x4e00, 0x9fff}}},
	{"ja", []runeSpan{{0x3040, 0x309f}, {0x30a0, 0x30ff}}},
	{"ko", []runeSpan{{0xac00, 0xd7af}}},
	{"ar", []runeSpan{{0x0600, 0x06ff}}},
	{"ru", []runeSpan{{0x0400, 0x04ff}}},
}

// Small common-word sets for Latin-script candidates. Ties go to the first
// entry in this enumeration.
var commonWords = []struct {
	code  string
	words map[string]struct{}
}{
	{"en", wordSet("the", "and", "you", "that", "have", "for", "with")},
	{"zh", wordSet("的", "了", "在", "是", "我", "有", "和")},
	{"fr", wordSet("le", "la", "et", "les", "des", "est", "pas")},
	{"de", wordSet("der", "die", "das", "und", "ist", "nicht")},
	{"es", wordSet("el", "la", "y", "en", "que", "los", "las")},
	{"ja", wordSet("の", "に", "は", "を", "た", "で", "が")},
	{"ko", wordSet("이", "가", "을", "를", "은", "는", "에")},
}

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Detector maps raw text to a best-guess ISO 639-1 code. The statistical
// path delegates to whatlanggo (trigram-based, fully deterministic); anything
// it cannot classify reliably falls through to the rule-based path.
type Detector struct {
	statistical bool
}

func NewDetector() *Detector {
	return &Detector{statistical: true}
}

// NewRuleBasedDetector skips the statistical library entirely. Used where the
// caller wants the fixed script-range/common-word rules only.
func NewRuleBasedDetector() *Detector {
	return &Detector{}
}

// Detect returns a concrete language code for text. Same input always yields
// the same output.
func (d *Detector) Detect(text string) string {
	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) < minDetectableRunes {
		return English
	}
	if d.statistical {
		if code := statisticalDetect(trimmed); code != "" {
			return code
		}
	}
	return ruleDetect(trimmed)
}

func statisticalDetect(text string) string {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return ""
	}
	return info.Lang.Iso6391()
}

func ruleDetect(text string) string {
	for _, block := range scriptBlocks {
		for _, r := range text {
			for _, span := range block.spans {
				if r >= span.lo && r <= span.hi {
					return block.code
				}
			}
		}
	}

	words := tokenize(strings.ToLower(text))
	best, bestScore := "", 0
	for _, candidate := range commonWords {
		score := 0
		for _, w := range words {
			if _, ok := candidate.words[w]; ok {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = candidate.code, score
		}
	}
	if best != "" {
		return best
	}
	return English
}

func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
}
