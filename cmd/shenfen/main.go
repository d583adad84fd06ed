package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/fixturelab/shenfen/pkg/person"
	"github.com/fixturelab/shenfen/pkg/region"
)

type config struct {
	DatasetDir     string `yaml:"dataset_dir"`     // "" = embedded dataset
	FallbackRegion string `yaml:"fallback_region"` // "" = package default
}

func main() {
	_ = godotenv.Load(".env")

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "generate":
		cmdGenerate(os.Args[2:])
	case "resolve":
		cmdResolve(os.Args[2:])
	case "decode":
		cmdDecode(os.Args[2:])
	case "verify":
		cmdVerify(os.Args[2:])
	case "serve":
		cmdServe(os.Args[2:])
	case "import":
		cmdImport(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: shenfen <command>

Commands:
  generate  Generate synthetic identity records
  resolve   Resolve a region name to its division code
  decode    Decode an 18-character identity number
  verify    Verify an identity number checksum
  serve     Serve the MCP tools over stdio
  import    Download and build division datasets
`)
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("SHENFEN_DEBUG") != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func loadConfig(path string, logger *slog.Logger) config {
	var cfg config

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("no config file, using defaults", "path", path)
			return cfg
		}
		logger.Error("read config", "error", err)
		os.Exit(1)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logger.Error("parse config", "error", err)
		os.Exit(1)
	}
	return cfg
}

// newGenerator builds a generator from the config, loading an external
// dataset directory when one is configured.
func newGenerator(cfg config, seed int64, logger *slog.Logger) (*person.Generator, error) {
	var units []region.Unit
	if cfg.DatasetDir != "" {
		var err error
		units, err = region.LoadDataset(cfg.DatasetDir)
		if err != nil {
			return nil, err
		}
		logger.Info("dataset loaded", "dir", cfg.DatasetDir, "units", len(units))
	}

	return person.New(person.Config{
		Units:          units,
		FallbackRegion: cfg.FallbackRegion,
		Seed:           seed,
		Logger:         logger,
	})
}
