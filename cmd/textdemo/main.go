// Command textdemo walks through the numeric extraction pipeline: a full
// run, a stage-by-stage breakdown, and an element-by-element lazy walk.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pipekit/pipekit/config"
	"github.com/pipekit/pipekit/logger"
	"github.com/pipekit/pipekit/pipeline"
	"github.com/pipekit/pipekit/textfilter"
	"github.com/pipekit/pipekit/version"
)

func sampleData() []string {
	return []string{
		"  123  ", "  abc  ", "  456  ", "  789  ", "  def  ",
		"  12   ", "  34   ", "  56   ", "  78   ", "  90   ",
		"  100  ", "  200  ", "  300  ", "  400  ", "  500  ",
	}
}

func main() {
	configPath := flag.String("config", "", "path to config file")
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
	log := logger.WithComponent("textdemo")

	ctx := context.Background()
	input := sampleData()
	threshold := textfilter.DefaultThreshold

	fmt.Printf("Input (%d items): %q\n\n", len(input), input)

	// Full pipeline run.
	p := textfilter.Extraction(threshold)
	result, err := p.Execute(ctx, pipeline.FromSlice(input))
	if err != nil {
		log.WithError(err).Error("pipeline run failed")
		os.Exit(1)
	}
	fmt.Printf("Extraction pipeline (threshold %d): %v\n", threshold, result)
	fmt.Printf("Items kept: %d of %d\n\n", len(result), len(input))

	// Stage-by-stage breakdown.
	stages(ctx, input, threshold)

	// Lazy element-by-element walk.
	fmt.Println("Lazy walk:")
	out := textfilter.Extraction(threshold).Process(pipeline.FromSlice(input))
	count := 0
	err = pipeline.ForEach(ctx, out, func(_ context.Context, n int) error {
		count++
		fmt.Printf("  item %d: %d\n", count, n)
		return nil
	})
	if err != nil {
		log.WithError(err).Error("lazy walk failed")
		os.Exit(1)
	}
	log.Info("demo finished", logger.Fields("processed", count))
}

func stages(ctx context.Context, input []string, threshold int) {
	fmt.Println("Stage by stage:")

	step1, _ := pipeline.Collect(ctx, textfilter.NormalizeSpaces()(pipeline.FromSlice(input)))
	fmt.Printf("  normalize spaces: %q\n", step1)

	step2, _ := pipeline.Collect(ctx, textfilter.OnlyNumeric()(pipeline.FromSlice(step1)))
	fmt.Printf("  only numeric:     %q\n", step2)

	step3, err := pipeline.Collect(ctx, textfilter.ToInt()(pipeline.FromSlice(step2)))
	if err != nil {
		fmt.Printf("  to int failed: %v\n", err)
		return
	}
	fmt.Printf("  to int:           %v\n", step3)

	step4, _ := pipeline.Collect(ctx, textfilter.GreaterThan(threshold)(pipeline.FromSlice(step3)))
	fmt.Printf("  greater than %d:  %v\n\n", threshold, step4)
}
