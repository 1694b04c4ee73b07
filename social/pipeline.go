package social

import (
	"github.com/pipekit/pipekit/pipeline"
)

// CommentPipeline is a fluent builder over a comment pipeline. All Add*
// methods attach one filter and return the receiver, so chains read in
// application order.
type CommentPipeline struct {
	*pipeline.Pipeline[Comment, Comment]
}

// NewCommentPipeline creates an empty comment pipeline.
func NewCommentPipeline() *CommentPipeline {
	return &CommentPipeline{Pipeline: pipeline.New[Comment]()}
}

// AddTextCleaning attaches the special-character cleanup filter.
func (cp *CommentPipeline) AddTextCleaning() *CommentPipeline {
	cp.Attach(CleanText())
	return cp
}

// AddUserNormalization attaches the user-name normalization filter.
func (cp *CommentPipeline) AddUserNormalization() *CommentPipeline {
	cp.Attach(NormalizeUserNames())
	return cp
}

// AddTextMetrics attaches the text metrics filter.
func (cp *CommentPipeline) AddTextMetrics() *CommentPipeline {
	cp.Attach(AddTextMetrics())
	return cp
}

// AddEngagementAnalysis attaches the engagement scoring filter.
func (cp *CommentPipeline) AddEngagementAnalysis() *CommentPipeline {
	cp.Attach(AddEngagementScore())
	return cp
}

// AddSpamDetection attaches the spam detector with the given repeated-char
// run limit. Limits below 1 fall back to DefaultMaxRepeatedChars; use
// DetectSpamWith directly to reject a bad limit instead.
func (cp *CommentPipeline) AddSpamDetection(maxRepeatedChars int) *CommentPipeline {
	f, err := DetectSpamWith(SpamOptions{MaxRepeatedChars: maxRepeatedChars})
	if err != nil {
		f = DetectSpam()
	}
	cp.Attach(f)
	return cp
}

// AddSentimentFilter attaches a predicate keeping the given sentiment.
func (cp *CommentPipeline) AddSentimentFilter(sentiment string) *CommentPipeline {
	cp.Attach(BySentiment(sentiment))
	return cp
}

// AddLanguageFilter attaches a predicate keeping the given language.
func (cp *CommentPipeline) AddLanguageFilter(language string) *CommentPipeline {
	cp.Attach(ByLanguage(language))
	return cp
}

// AddCountryFilter attaches a predicate keeping the given countries.
func (cp *CommentPipeline) AddCountryFilter(countries ...string) *CommentPipeline {
	cp.Attach(ByCountry(countries...))
	return cp
}

// AddLikesFilter attaches a predicate keeping comments with likes in
// [minLikes, maxLikes]. Pass Unbounded to disable the upper bound.
func (cp *CommentPipeline) AddLikesFilter(minLikes, maxLikes int) *CommentPipeline {
	cp.Attach(ByLikes(minLikes, maxLikes))
	return cp
}

// --- Factories ---

// Basic builds the cleanup pipeline: text cleaning, user normalization,
// text metrics.
func Basic() *CommentPipeline {
	return NewCommentPipeline().
		AddTextCleaning().
		AddUserNormalization().
		AddTextMetrics()
}

// SentimentAnalysis builds the sentiment pipeline: text cleaning,
// engagement scoring, text metrics.
func SentimentAnalysis() *CommentPipeline {
	return NewCommentPipeline().
		AddTextCleaning().
		AddEngagementAnalysis().
		AddTextMetrics()
}

// SpamDetection builds the spam pipeline: text cleaning, spam detection,
// text metrics.
func SpamDetection() *CommentPipeline {
	return NewCommentPipeline().
		AddTextCleaning().
		AddSpamDetection(DefaultMaxRepeatedChars).
		AddTextMetrics()
}

// EngagementAnalysis builds the engagement pipeline: text cleaning,
// engagement scoring, a minimum-likes gate of 10, text metrics.
func EngagementAnalysis() *CommentPipeline {
	return NewCommentPipeline().
		AddTextCleaning().
		AddEngagementAnalysis().
		AddLikesFilter(10, Unbounded).
		AddTextMetrics()
}

// Multilingual builds a pipeline keeping only comments matching every one
// of the given languages, after text cleaning and before text metrics.
func Multilingual(languages ...string) *CommentPipeline {
	cp := NewCommentPipeline().AddTextCleaning()
	for _, lang := range languages {
		cp.AddLanguageFilter(lang)
	}
	return cp.AddTextMetrics()
}

// Geographic builds a pipeline keeping only comments from the given
// countries: text cleaning, country gate, user normalization, text metrics.
func Geographic(countries ...string) *CommentPipeline {
	return NewCommentPipeline().
		AddTextCleaning().
		AddCountryFilter(countries...).
		AddUserNormalization().
		AddTextMetrics()
}

// Comprehensive builds the full enrichment pipeline: text cleaning, user
// normalization, engagement scoring, spam detection, text metrics.
func Comprehensive() *CommentPipeline {
	return NewCommentPipeline().
		AddTextCleaning().
		AddUserNormalization().
		AddEngagementAnalysis().
		AddSpamDetection(DefaultMaxRepeatedChars).
		AddTextMetrics()
}
