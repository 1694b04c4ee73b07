package social

import (
	"encoding/json"
	"os"

	"github.com/pipekit/pipekit/errors"
)

// Sentiment labels carried by generated and imported comments.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
)

// Comment is a single social-media comment record. The first group of
// fields comes from the data source; the rest are derived by enrichment
// filters and stay zero until the corresponding filter runs.
type Comment struct {
	PostID    string `json:"post_id"`
	User      string `json:"user"`
	Country   string `json:"country"`
	State     string `json:"state"`
	Likes     int    `json:"likes"`
	Text      string `json:"text"`
	Sentiment string `json:"sentiment"`

	UserNormalized  string       `json:"user_normalized,omitempty"`
	EngagementScore float64      `json:"engagement_score,omitempty"`
	IsSpam          bool         `json:"is_spam,omitempty"`
	SpamReasons     []string     `json:"spam_reasons,omitempty"`
	Metrics         *TextMetrics `json:"text_metrics,omitempty"`
}

// TextMetrics holds derived statistics about a comment's text.
type TextMetrics struct {
	CharCount        int     `json:"char_count"`
	WordCount        int     `json:"word_count"`
	AvgWordLength    float64 `json:"avg_word_length"`
	PunctuationCount int     `json:"punctuation_count"`
	UppercaseCount   int     `json:"uppercase_count"`
}

// LoadComments reads a JSON array of comments from path.
func LoadComments(path string) ([]Comment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.DatasetIO(path, err)
	}
	var comments []Comment
	if err := json.Unmarshal(data, &comments); err != nil {
		return nil, errors.DatasetFormat(path, err)
	}
	return comments, nil
}
