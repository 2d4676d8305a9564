// Package lexicon holds the per-language term sets backing the heuristic
// scoring path, with hit counting built on the same Aho-Corasick machinery
// used for chat moderation dictionaries.
package lexicon

import (
	"regexp"
	"strings"
)

// Category selects one of the fixed term sets.
type Category string

const (
	Toxic     Category = "toxic"
	Hate      Category = "hate"
	Political Category = "political"
)

// DefaultLanguage is used whenever a language has no dedicated term set.
const DefaultLanguage = "en"

var toxicTerms = map[string][]string{
	"en": {"idiot", "stupid", "moron", "dumb", "retard", "fool", "loser"},
	"zh": {"白痴", "笨蛋", "蠢货", "傻瓜", "废物", "垃圾"},
	"ja": {"バカ", "アホ", "馬鹿", "間抜け"},
	"ko": {"바보", "멍청이", "등신", "미친놈"},
	"fr": {"idiot", "stupide", "imbécile", "crétin"},
	"de": {"idiot", "dummkopf", "trottel", "arschloch"},
	"es": {"idiota", "estúpido", "imbécil", "cretino"},
}

var hateTerms = map[string][]string{
	"en": {"hate", "kill", "destroy", "attack", "murder", "exterminate"},
	"zh": {"恨", "杀", "死", "消灭", "破坏"},
	"ja": {"憎む", "殺す", "死ね", "消えろ"},
	"ko": {"증오", "죽여", "죽어", "없애"},
	"fr": {"haine", "tuer", "détruire", "attaquer"},
	"de": {"hassen", "töten", "zerstören", "angreifen"},
	"es": {"odiar", "matar", "destruir", "atacar"},
}

var politicalTerms = map[string][]string{
	"en": {"government", "president", "election", "vote", "policy", "law"},
	"zh": {"政府", "总统", "选举", "投票", "政策", "法律"},
	"ja": {"政府", "大統領", "選挙", "投票", "政策", "法律"},
	"ko": {"정부", "대통령", "선거", "투표", "정책", "법률"},
	"fr": {"gouvernement", "président", "élection", "vote", "politique", "loi"},
	"de": {"regierung", "präsident", "wahl", "stimme", "politik", "gesetz"},
	"es": {"gobierno", "presidente", "elección", "voto", "política", "ley"},
}

// Language-agnostic surface patterns signalling group-targeting speech.
var groupPatterns = []*regexp.Regexp{
	regexp.MustCompile(`all\s+\w+\s+are`),
	regexp.MustCompile(`every\s+\w+\s+is`),
	regexp.MustCompile(`they\s+all`),
	regexp.MustCompile(`those\s+\w+\s+`),
}

// MatchesGroupPattern reports whether any group-targeting pattern occurs in
// text, case-insensitively.
func MatchesGroupPattern(text string) bool {
	lower := strings.ToLower(text)
	for _, pattern := range groupPatterns {
		if pattern.MatchString(lower) {
			return true
		}
	}
	return false
}

// Store exposes hit counting over the immutable term sets. Matchers are built
// once at construction and are safe for concurrent reads afterwards.
type Store struct {
	matchers map[Category]map[string]*Matcher
}

func NewStore() (*Store, error) {
	store := &Store{matchers: make(map[Category]map[string]*Matcher, 3)}
	for category, terms := range map[Category]map[string][]string{
		Toxic:     toxicTerms,
		Hate:      hateTerms,
		Political: politicalTerms,
	} {
		perLanguage := make(map[string]*Matcher, len(terms))
		for lang, words := range terms {
			matcher, err := NewMatcher(words)
			if err != nil {
				return nil, err
			}
			perLanguage[lang] = matcher
		}
		store.matchers[category] = perLanguage
	}
	return store, nil
}

// Count returns the number of distinct category terms present in text for
// the given language, falling back to the English set for unlisted codes.
func (s *Store) Count(category Category, lang, text string) int {
	perLanguage := s.matchers[category]
	matcher, ok := perLanguage[lang]
	if !ok {
		matcher = perLanguage[DefaultLanguage]
	}
	return matcher.Count(text)
}
