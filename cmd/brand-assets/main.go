package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/menta2k/brand-assets/internal/config"
	"github.com/menta2k/brand-assets/internal/logging"
	"github.com/menta2k/brand-assets/pkg/assets"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs, flags := newFlagSet(stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		return ExitUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %v\n", fs.Args())
		return ExitUsage
	}

	cfg, err := loadConfig(fs, flags)
	if err != nil {
		fmt.Fprintf(stderr, "brand-assets: %v\n", err)
		return exitCodeFor(err)
	}

	logger, err := logging.New(cfg.Log, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "brand-assets: %v\n", err)
		return ExitUsage
	}
	defer func() { _ = logger.Sync() }()

	results, err := assets.NewGenerator(logger).Generate(cfg)
	if err != nil {
		logger.Error("asset generation failed", zap.Error(err))
		return exitCodeFor(err)
	}

	logger.Info("done", zap.Int("assets", len(results)), zap.String("outdir", cfg.Output.Dir))
	return ExitSuccess
}

func loadConfig(fs *flag.FlagSet, flags *cliFlags) (*config.Config, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		var err error
		if cfg, err = config.LoadFromFile(flags.configPath); err != nil {
			return nil, err
		}
	}

	flags.apply(fs, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
