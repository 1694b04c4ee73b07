// Package social provides filters and prebuilt pipelines for analyzing
// social-media comment records: text cleanup, user-name normalization,
// text metrics, engagement scoring, spam flagging, and predicate filters
// over sentiment, language, country and likes.
//
// CommentPipeline wraps pipeline.Pipeline with a fluent builder so common
// chains read like the analysis they perform:
//
//	p := social.NewCommentPipeline().
//	    AddTextCleaning().
//	    AddEngagementAnalysis().
//	    AddSentimentFilter(social.SentimentPositive)
//	out, err := p.Execute(ctx, pipeline.FromSlice(comments))
//
// Factory constructors (Basic, SentimentAnalysis, SpamDetection,
// EngagementAnalysis, Multilingual, Geographic, Comprehensive) return
// pipelines pre-loaded with documented filter chains.
//
// Filters never mutate the comments they receive; enrichment filters yield
// copies with derived fields attached.
package social
