package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/nemanja-m/langrank/internal/config"
	"github.com/nemanja-m/langrank/internal/ingest"
	"github.com/nemanja-m/langrank/internal/logging"
	"github.com/nemanja-m/langrank/pkg/rank"
	"github.com/nemanja-m/langrank/pkg/timing"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to config file (optional)")
		input      = flag.String("input", "", "input files glob pattern (overrides config)")
		partitions = flag.Int("partitions", 0, "number of corpus partitions (overrides config)")
		strategies = flag.String("strategies", "", "comma-separated strategies to run (overrides config)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *input != "" {
		cfg.Input = *input
	}
	if *partitions > 0 {
		cfg.Partitions = *partitions
	}
	if *strategies != "" {
		cfg.Strategies = strings.Split(*strategies, ",")
	}

	logger := logging.NewSlogLogger(cfg.Logging.Level, cfg.Logging.Format)

	if cfg.Input == "" {
		logger.Fatal("Input pattern must be specified via config or the -input flag")
	}

	// Resolve strategies before paying for corpus ingestion.
	type namedStrategy struct {
		name string
		run  rank.Strategy
	}
	var selected []namedStrategy
	for _, name := range cfg.Strategies {
		name = strings.TrimSpace(name)
		strategy, err := rank.Get(name)
		if err != nil {
			logger.Fatal("Unknown strategy", "name", name, "available", rank.Names())
		}
		selected = append(selected, namedStrategy{name: name, run: strategy})
	}

	docs, err := ingest.Load(cfg.Input)
	if err != nil {
		logger.Fatal("Failed to load corpus", "error", err)
	}

	catalog := rank.NewCatalog(cfg.Labels...)
	corpus := rank.NewCorpus(docs, cfg.Partitions)
	logger.Info(
		"Corpus loaded",
		"documents", corpus.Len(),
		"partitions", corpus.NumPartitions(),
		"labels", catalog.Len(),
	)

	report := timing.NewReport()
	for _, s := range selected {
		ranking := timing.Measure(report, s.name, func() []rank.RankedEntry {
			return s.run(catalog, corpus)
		})
		logger.Info("Ranking computed", "strategy", s.name, "ranking", formatRanking(ranking))
	}

	fmt.Print(report)
}

func formatRanking(entries []rank.RankedEntry) string {
	parts := make([]string, 0, len(entries))
	for _, entry := range entries {
		parts = append(parts, fmt.Sprintf("%s=%d", entry.Label, entry.Count))
	}
	return strings.Join(parts, " ")
}
