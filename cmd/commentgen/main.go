// Command commentgen writes a synthetic comment dataset to JSON, and
// optionally CSV, for the socialdemo command to consume.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pipekit/pipekit/config"
	"github.com/pipekit/pipekit/logger"
	"github.com/pipekit/pipekit/socialgen"
	"github.com/pipekit/pipekit/version"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	out := flag.String("out", "", "output path override (default from config)")
	withCSV := flag.Bool("csv", false, "also write a CSV file next to the JSON")
	count := flag.Int("count", 0, "number of comments override")
	seed := flag.Int64("seed", 0, "random seed override")
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
	log := logger.WithComponent("commentgen")

	if *out != "" {
		cfg.Dataset = *out
	}
	if *count > 0 {
		cfg.Generator.Count = *count
	}
	if *seed != 0 {
		cfg.Generator.Seed = *seed
	}

	gen, err := socialgen.New(socialgen.Config{
		Count:         cfg.Generator.Count,
		Posts:         cfg.Generator.Posts,
		PositiveRatio: cfg.Generator.PositiveRatio,
		MaxLikes:      cfg.Generator.MaxLikes,
		Seed:          cfg.Generator.Seed,
	})
	if err != nil {
		log.WithError(err).Error("invalid generator configuration")
		os.Exit(1)
	}

	comments := gen.Generate()

	if dir := filepath.Dir(cfg.Dataset); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.WithError(err).Error("unable to create output directory")
			os.Exit(1)
		}
	}
	if err := socialgen.WriteJSON(cfg.Dataset, comments); err != nil {
		log.WithError(err).Error("write failed")
		os.Exit(1)
	}
	log.Info("dataset written", logger.Fields("path", cfg.Dataset, "comments", len(comments)))

	if *withCSV {
		csvPath := strings.TrimSuffix(cfg.Dataset, filepath.Ext(cfg.Dataset)) + ".csv"
		if err := socialgen.WriteCSV(csvPath, comments); err != nil {
			log.WithError(err).Error("csv write failed")
			os.Exit(1)
		}
		log.Info("csv written", logger.Fields("path", csvPath))
	}
}
