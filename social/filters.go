package social

import (
	"context"
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pipekit/pipekit/pipeline"
	"github.com/pipekit/pipekit/validation"
)

// DefaultMaxRepeatedChars is the longest run of a repeated character a
// comment may contain before the spam detector flags it.
const DefaultMaxRepeatedChars = 3

// Spam heuristics: texts shorter/longer than these bounds are suspicious,
// and texts of more than minWordsForRepetition words where fewer than half
// are distinct count as repeated-word spam.
const (
	minTextLength          = 5
	maxTextLength          = 500
	minWordsForRepetition  = 3
	repeatedWordRatioLimit = 0.5
)

var nonTextChars = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)

// CleanText returns a filter that strips special characters from the
// comment text, keeping letters (including accented ones), digits and
// underscores, and collapses runs of whitespace.
func CleanText() pipeline.Filter[Comment, Comment] {
	return pipeline.Annotate(func(_ context.Context, c Comment) (Comment, error) {
		cleaned := nonTextChars.ReplaceAllString(c.Text, " ")
		c.Text = strings.Join(strings.Fields(cleaned), " ")
		return c, nil
	})
}

// NormalizeUserNames returns a filter that attaches a title-cased copy of
// the user name without touching the original field.
func NormalizeUserNames() pipeline.Filter[Comment, Comment] {
	return pipeline.Annotate(func(_ context.Context, c Comment) (Comment, error) {
		words := strings.Fields(c.User)
		for i, w := range words {
			words[i] = capitalize(w)
		}
		c.UserNormalized = strings.Join(words, " ")
		return c, nil
	})
}

// AddTextMetrics returns a filter that attaches character, word,
// punctuation and uppercase counts plus average word length.
func AddTextMetrics() pipeline.Filter[Comment, Comment] {
	return pipeline.Annotate(func(_ context.Context, c Comment) (Comment, error) {
		charCount := utf8.RuneCountInString(c.Text)
		words := strings.Fields(c.Text)

		var avgWordLength float64
		if len(words) > 0 {
			avgWordLength = round2(float64(charCount) / float64(len(words)))
		}

		var punct, upper int
		for _, r := range c.Text {
			if strings.ContainsRune(".,!?;:", r) {
				punct++
			}
			if unicode.IsUpper(r) {
				upper++
			}
		}

		c.Metrics = &TextMetrics{
			CharCount:        charCount,
			WordCount:        len(words),
			AvgWordLength:    avgWordLength,
			PunctuationCount: punct,
			UppercaseCount:   upper,
		}
		return c, nil
	})
}

// AddEngagementScore returns a filter that attaches an engagement score:
// likes divided by ten, boosted 1.2x for positive comments and damped 0.8x
// otherwise, rounded to two decimals.
func AddEngagementScore() pipeline.Filter[Comment, Comment] {
	return pipeline.Annotate(func(_ context.Context, c Comment) (Comment, error) {
		base := float64(c.Likes) / 10
		multiplier := 0.8
		if c.Sentiment == SentimentPositive {
			multiplier = 1.2
		}
		c.EngagementScore = round2(base * multiplier)
		return c, nil
	})
}

// SpamOptions configures the spam detector.
type SpamOptions struct {
	// MaxRepeatedChars is the longest allowed run of one repeated character.
	MaxRepeatedChars int `json:"max_repeated_chars" validate:"min=1"`
}

// DetectSpam returns a spam detector with default options.
func DetectSpam() pipeline.Filter[Comment, Comment] {
	f, _ := DetectSpamWith(SpamOptions{MaxRepeatedChars: DefaultMaxRepeatedChars})
	return f
}

// DetectSpamWith returns a filter that flags comments as spam based on
// repeated character runs, repeated words, and suspicious text length.
// Invalid options are rejected here, not at execution time.
func DetectSpamWith(opts SpamOptions) (pipeline.Filter[Comment, Comment], error) {
	if err := validation.Validate(opts); err != nil {
		return nil, err
	}
	return pipeline.Annotate(func(_ context.Context, c Comment) (Comment, error) {
		var reasons []string
		if maxRun(c.Text) > opts.MaxRepeatedChars {
			reasons = append(reasons, "repeated_chars")
		}
		if hasRepeatedWords(c.Text) {
			reasons = append(reasons, "repeated_words")
		}
		if n := utf8.RuneCountInString(c.Text); n < minTextLength || n > maxTextLength {
			reasons = append(reasons, "suspicious_length")
		}
		c.IsSpam = len(reasons) > 0
		c.SpamReasons = reasons
		return c, nil
	}), nil
}

// BySentiment returns a predicate filter keeping comments with the given
// sentiment label.
func BySentiment(sentiment string) pipeline.Filter[Comment, Comment] {
	return pipeline.Predicate(func(c Comment) bool {
		return c.Sentiment == sentiment
	})
}

// ByCountry returns a predicate filter keeping comments from any of the
// given countries.
func ByCountry(countries ...string) pipeline.Filter[Comment, Comment] {
	set := make(map[string]struct{}, len(countries))
	for _, country := range countries {
		set[country] = struct{}{}
	}
	return pipeline.Predicate(func(c Comment) bool {
		_, ok := set[c.Country]
		return ok
	})
}

// Unbounded disables the upper bound of a likes range.
const Unbounded = -1

// LikesRange configures ByLikesRange. Max set to Unbounded means no upper
// bound.
type LikesRange struct {
	Min int `json:"min" validate:"min=0"`
	Max int `json:"max" validate:"min=-1"`
}

// ByLikes returns a predicate filter keeping comments whose likes count is
// within [minLikes, maxLikes]. Pass Unbounded to disable the upper bound.
func ByLikes(minLikes, maxLikes int) pipeline.Filter[Comment, Comment] {
	return pipeline.Predicate(func(c Comment) bool {
		if c.Likes < minLikes {
			return false
		}
		return maxLikes == Unbounded || c.Likes <= maxLikes
	})
}

// ByLikesRange is the validated variant of ByLikes: an inverted or negative
// range is rejected at construction time.
func ByLikesRange(r LikesRange) (pipeline.Filter[Comment, Comment], error) {
	if err := validation.Validate(r); err != nil {
		return nil, err
	}
	cross := validation.New().
		Custom(r.Max == Unbounded || r.Min <= r.Max, "likes", "range min exceeds max")
	if err := cross.Error(); err != nil {
		return nil, err
	}
	return ByLikes(r.Min, r.Max), nil
}

func capitalize(word string) string {
	runes := []rune(strings.ToLower(word))
	if len(runes) > 0 {
		runes[0] = unicode.ToUpper(runes[0])
	}
	return string(runes)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func maxRun(text string) int {
	var prev rune
	run, longest := 0, 0
	for _, r := range text {
		if r == prev {
			run++
		} else {
			run = 1
			prev = r
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

func hasRepeatedWords(text string) bool {
	words := strings.Fields(text)
	if len(words) <= minWordsForRepetition {
		return false
	}
	unique := make(map[string]struct{}, len(words))
	for _, w := range words {
		unique[w] = struct{}{}
	}
	return float64(len(unique)) < float64(len(words))*repeatedWordRatioLimit
}
