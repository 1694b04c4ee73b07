package socialgen

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/pipekit/pipekit/errors"
	"github.com/pipekit/pipekit/pipeline"
	"github.com/pipekit/pipekit/social"
	"github.com/pipekit/pipekit/validation"
)

// Config controls dataset generation.
type Config struct {
	// Count is the number of comments to generate.
	Count int `json:"count" validate:"min=1"`
	// Posts is the number of distinct post ids comments are spread over.
	Posts int `json:"posts" validate:"min=1"`
	// PositiveRatio is the fraction of comments labeled positive.
	PositiveRatio float64 `json:"positive_ratio" validate:"min=0,max=1"`
	// MaxLikes is the upper bound for the likes count.
	MaxLikes int `json:"max_likes" validate:"min=1"`
	// Seed seeds the random source; zero means time-based.
	Seed int64 `json:"seed"`
}

// ApplyDefaults fills zero-valued fields with the standard dataset shape.
func (c *Config) ApplyDefaults() {
	if c.Count == 0 {
		c.Count = 1000
	}
	if c.Posts == 0 {
		c.Posts = 50
	}
	if c.PositiveRatio == 0 {
		c.PositiveRatio = 0.7
	}
	if c.MaxLikes == 0 {
		c.MaxLikes = 200
	}
}

// Generator produces synthetic comments.
type Generator struct {
	cfg   Config
	rng   *rand.Rand
	posts []string
}

// New creates a Generator. Defaults are applied before validation.
func New(cfg Config) (*Generator, error) {
	cfg.ApplyDefaults()
	if err := validation.Validate(cfg); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	posts := make([]string, cfg.Posts)
	for i := range posts {
		posts[i] = uuid.NewString()
	}
	return &Generator{cfg: cfg, rng: rng, posts: posts}, nil
}

// Comment generates a single comment.
func (g *Generator) Comment() social.Comment {
	loc := locales[g.rng.Intn(len(locales))]
	positive := g.rng.Float64() < g.cfg.PositiveRatio

	sentiment := social.SentimentNegative
	corpus := loc.Negative
	if positive {
		sentiment = social.SentimentPositive
		corpus = loc.Positive
	}

	return social.Comment{
		PostID:    g.posts[g.rng.Intn(len(g.posts))],
		User:      loc.FirstName[g.rng.Intn(len(loc.FirstName))] + " " + loc.LastName[g.rng.Intn(len(loc.LastName))],
		Country:   loc.Country,
		State:     loc.States[g.rng.Intn(len(loc.States))],
		Likes:     g.rng.Intn(g.cfg.MaxLikes + 1),
		Text:      corpus[g.rng.Intn(len(corpus))],
		Sentiment: sentiment,
	}
}

// Generate materializes the configured number of comments.
func (g *Generator) Generate() []social.Comment {
	comments := make([]social.Comment, g.cfg.Count)
	for i := range comments {
		comments[i] = g.Comment()
	}
	return comments
}

// Iter returns a lazy source producing the configured number of comments
// on demand. Like any iterator it is single-consumption.
func (g *Generator) Iter() pipeline.Iterator[social.Comment] {
	produced := 0
	return pipeline.FromFunc(func(_ context.Context) (social.Comment, bool, error) {
		if produced >= g.cfg.Count {
			return social.Comment{}, false, nil
		}
		produced++
		return g.Comment(), true, nil
	}, nil)
}

// WriteJSON writes comments as an indented JSON array.
func WriteJSON(path string, comments []social.Comment) error {
	data, err := json.MarshalIndent(comments, "", "  ")
	if err != nil {
		return errors.Internal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.DatasetIO(path, err)
	}
	return nil
}

// WriteCSV writes the source fields of comments as CSV with a header row.
func WriteCSV(path string, comments []social.Comment) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.DatasetIO(path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"post_id", "user", "country", "state", "likes", "text", "sentiment"}); err != nil {
		return errors.DatasetIO(path, err)
	}
	for _, c := range comments {
		record := []string{c.PostID, c.User, c.Country, c.State, strconv.Itoa(c.Likes), c.Text, c.Sentiment}
		if err := w.Write(record); err != nil {
			return errors.DatasetIO(path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.DatasetIO(path, err)
	}
	return nil
}
