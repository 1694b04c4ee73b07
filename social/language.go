package social

import (
	"regexp"
	"strings"

	"github.com/pipekit/pipekit/pipeline"
)

// Supported language labels for ByLanguage.
const (
	LangPortuguese = "portuguese"
	LangEnglish    = "english"
	LangSpanish    = "spanish"
	LangFrench     = "french"
	LangGerman     = "german"
)

// Stop-word heuristics per language. Crude on purpose: the goal is a cheap
// one-pass gate over synthetic data, not real language identification.
var languagePatterns = map[string]*regexp.Regexp{
	LangPortuguese: regexp.MustCompile(`(?i)\b(não|sim|muito|bom|ruim|excelente|péssimo|adorei|gostei|não gostei)\b`),
	LangEnglish:    regexp.MustCompile(`(?i)\b(the|and|for|you|are|was|very|good|bad|excellent|terrible|love|like|hate)\b`),
	LangSpanish:    regexp.MustCompile(`(?i)\b(el|la|de|que|y|es|muy|bueno|malo|excelente|terrible|me encantó|no me gustó)\b`),
	LangFrench:     regexp.MustCompile(`(?i)\b(le|la|de|que|et|est|très|bon|mauvais|excellent|terrible|j'ai adoré|je n'ai pas aimé)\b`),
	LangGerman:     regexp.MustCompile(`(?i)\b(der|die|das|und|für|ist|sehr|gut|schlecht|ausgezeichnet|schrecklich|ich liebe|ich hasse)\b`),
}

// ByLanguage returns a predicate filter keeping comments whose text matches
// the stop-word pattern of the given language. Unknown languages fall back
// to portuguese.
func ByLanguage(language string) pipeline.Filter[Comment, Comment] {
	pattern, ok := languagePatterns[strings.ToLower(language)]
	if !ok {
		pattern = languagePatterns[LangPortuguese]
	}
	return pipeline.Predicate(func(c Comment) bool {
		return pattern.MatchString(c.Text)
	})
}
