package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/tuannm99/framex"
	"github.com/tuannm99/framex/internal/workload"
	"github.com/tuannm99/framex/pkg/lrukx"
)

// replsim replays a deterministic workload trace against the configured
// replacer, then against the remaining algorithms for comparison.
func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	flag.Parse()

	cfg := defaultConfig()
	if *configPath != "" {
		loaded, err := framex.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})
	slog.SetDefault(slog.New(handler))

	pattern, err := workload.GetPattern(cfg.Workload.Pattern)
	if err != nil {
		log.Fatalf("parse workload pattern: %v", err)
	}

	capacity := cfg.Replacer.Capacity
	if capacity <= 0 {
		capacity = framex.DefaultCapacity
	}

	// Twice as many frame IDs as capacity, so eviction pressure is real.
	gen := workload.NewGenerator(pattern, 2*capacity, cfg.Workload.Seed, cfg.Workload.HotFraction)
	steps := gen.Steps(cfg.Workload.Operations)

	slog.Info("replaying workload",
		"pattern", pattern.String(),
		"operations", len(steps),
		"capacity", capacity,
		"seed", cfg.Workload.Seed,
	)

	primary, err := framex.NewFromConfig(cfg)
	if err != nil {
		log.Fatalf("build replacer: %v", err)
	}
	primaryAlgorithm, err := framex.GetAlgorithm(cfg.Replacer.Algorithm)
	if err != nil {
		log.Fatalf("parse algorithm: %v", err)
	}
	replay(primary, steps)

	for _, algorithm := range framex.Algorithms() {
		if algorithm == primaryAlgorithm {
			continue
		}
		r, err := framex.New(algorithm, capacity)
		if err != nil {
			log.Fatalf("build %s replacer: %v", algorithm, err)
		}
		replay(r, steps)
	}
}

func replay(r framex.Replacer, steps []workload.Step) {
	workload.Run(r, steps)
	if src, ok := r.(framex.StatsSource); ok {
		src.Stats().Log(slog.Default())
	}
}

func defaultConfig() *framex.Config {
	var cfg framex.Config
	cfg.Replacer.Algorithm = framex.LRU.String()
	cfg.Replacer.Capacity = framex.DefaultCapacity
	cfg.Replacer.K = lrukx.DefaultK
	cfg.Workload.Pattern = workload.HotCold.String()
	cfg.Workload.Operations = 10000
	cfg.Workload.Seed = 1
	cfg.Workload.HotFraction = 0.2
	cfg.Log.Level = "info"
	return &cfg
}
