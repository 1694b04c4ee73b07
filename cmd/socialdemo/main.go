// Command socialdemo runs the comment-analysis pipelines against a dataset
// and prints a summary for each. The dataset is loaded from the configured
// JSON file, or generated in memory with -generate.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pipekit/pipekit/analysis"
	"github.com/pipekit/pipekit/config"
	"github.com/pipekit/pipekit/logger"
	"github.com/pipekit/pipekit/pipeline"
	"github.com/pipekit/pipekit/social"
	"github.com/pipekit/pipekit/socialgen"
	"github.com/pipekit/pipekit/version"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	dataset := flag.String("dataset", "", "dataset path override")
	generate := flag.Bool("generate", false, "generate the dataset in memory instead of loading it")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Short())
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("config load failed", logger.Fields("error", err.Error()))
	}
	logger.Init(cfg.Log)
	log := logger.WithComponent("socialdemo")

	if *dataset != "" {
		cfg.Dataset = *dataset
	}

	comments, err := loadOrGenerate(cfg, *generate)
	if err != nil {
		log.WithError(err).Error("dataset unavailable")
		os.Exit(1)
	}
	log.Info("dataset ready", logger.Fields("comments", len(comments)))

	ctx := context.Background()
	runs := []struct {
		title string
		pipe  *social.CommentPipeline
	}{
		{"Basic cleanup", social.Basic()},
		{"Sentiment analysis (positive only)", social.SentimentAnalysis().AddSentimentFilter(social.SentimentPositive)},
		{"Spam detection", social.SpamDetection()},
		{"Engagement analysis", social.EngagementAnalysis()},
		{"Multilingual (portuguese)", social.Multilingual(social.LangPortuguese)},
		{"Geographic (Brasil, Alemanha)", social.Geographic("Brasil", "Alemanha")},
		{"Comprehensive", social.Comprehensive()},
	}

	for _, run := range runs {
		out, err := run.pipe.Execute(ctx, pipeline.FromSlice(comments))
		if err != nil {
			log.WithError(err).Error("pipeline run failed", logger.Fields("pipeline", run.title))
			os.Exit(1)
		}
		printSummary(run.title, out)
	}
}

func loadOrGenerate(cfg *config.Demo, generate bool) ([]social.Comment, error) {
	if !generate {
		return social.LoadComments(cfg.Dataset)
	}
	gen, err := socialgen.New(socialgen.Config{
		Count:         cfg.Generator.Count,
		Posts:         cfg.Generator.Posts,
		PositiveRatio: cfg.Generator.PositiveRatio,
		MaxLikes:      cfg.Generator.MaxLikes,
		Seed:          cfg.Generator.Seed,
	})
	if err != nil {
		return nil, err
	}
	return gen.Generate(), nil
}

func printSummary(title string, comments []social.Comment) {
	s := analysis.Summarize(comments)

	fmt.Printf("\n=== %s ===\n", title)
	fmt.Printf("comments: %d\n", s.Total)
	if s.Total == 0 {
		return
	}
	fmt.Printf("positive: %d (%.1f%%)  negative: %d (%.1f%%)\n",
		s.Positive, s.PositivePercentage, s.Negative, s.NegativePercentage)
	fmt.Printf("likes: avg %.1f  min %d  max %d\n", s.AvgLikes, s.MinLikes, s.MaxLikes)
	fmt.Printf("countries: %d  users: %d  avg text length: %.1f\n",
		s.UniqueCountries, s.UniqueUsers, s.AvgTextLength)

	fmt.Println("top countries:")
	for i, cc := range s.TopCountries {
		fmt.Printf("  %d. %s: %d\n", i+1, cc.Country, cc.Count)
	}
	fmt.Println("likes distribution:")
	for _, b := range s.LikesHistogram {
		fmt.Printf("  %-7s %d (%.1f%%)\n", b.Label, b.Count, float64(b.Count)/float64(s.Total)*100)
	}

	spam := 0
	for _, c := range comments {
		if c.IsSpam {
			spam++
		}
	}
	if spam > 0 {
		fmt.Printf("flagged as spam: %d\n", spam)
	}

	for i, c := range comments {
		if i == 3 {
			break
		}
		fmt.Printf("sample: %s (%s) [likes %d, %s]: %q\n", c.User, c.Country, c.Likes, c.Sentiment, clip(c.Text, 60))
	}
}

func clip(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
