// SPDX-License-Identifier: MIT

// Command conicclassify classifies conic sections and prints YAML reports.
//
//	conicclassify --a 2 --b -3 --c 4 --d 6 --e -3 --f -4
//	conicclassify --input sections.yaml --workers 8 --boundary legacy
//
// Every flag can also be set through CONIC_* environment variables or a YAML
// file passed with --config.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/conic/batch"
	"github.com/katalvlaran/conic/internal/config"
	"github.com/katalvlaran/conic/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "conicclassify:", err)
		os.Exit(1)
	}
}

// run resolves the configuration, classifies and writes the reports to out.
func run(ctx context.Context, args []string, out io.Writer) error {
	cfg, err := config.Load(config.NewFlagSet("conicclassify"), args)
	if err != nil {
		return err
	}

	log, sync, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = sync() }()

	items, err := readItems(cfg, log)
	if err != nil {
		return err
	}

	results, err := batch.Classify(ctx, items,
		batch.WithWorkers(cfg.Workers),
		batch.WithLogger(log),
		batch.WithConicOptions(cfg.ConicOptions()...),
	)
	if err != nil {
		return err
	}
	log.Info("Classified sections", "count", len(results), "tally", batch.Tally(results))

	return batch.Encode(out, results)
}

// readItems loads the batch file, or wraps the flag coefficients as a
// one-item batch.
func readItems(cfg *config.Config, log logr.Logger) ([]batch.Item, error) {
	if cfg.Input == "" {
		k := cfg.Coefficients
		log.V(logging.DEBUG).Info("Classifying single section", "coefficients", k)

		return []batch.Item{{A: k[0], B: k[1], C: k[2], D: k[3], E: k[4], F: k[5]}}, nil
	}

	f, err := os.Open(cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	log.V(logging.DEBUG).Info("Reading batch", "path", cfg.Input)

	return batch.Decode(f)
}
