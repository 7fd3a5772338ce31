// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/katalvlaran/tilemul/benchmark"
	"github.com/katalvlaran/tilemul/blocked"
	"github.com/katalvlaran/tilemul/matrix"
	"github.com/katalvlaran/tilemul/reference"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Default driver shape: A is 1024×512, B is 512×768.
const (
	defaultRows  = 1024
	defaultInner = 512
	defaultCols  = 768
)

// errVerification reports that the pre-benchmark blocked product disagrees with the reference.
var errVerification = errors.New("blockbench: blocked result differs from reference")

type options struct {
	rows, inner, cols int
	seed              int64
	blocks            []string
	jsonPath          string
	logLevel          string
	host              bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:          "blockbench",
		Short:        "Benchmark blocked matrix multiplication across tile sizes",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(opts, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.IntVar(&opts.rows, "rows", defaultRows, "rows of A")
	f.IntVar(&opts.inner, "inner", defaultInner, "columns of A and rows of B")
	f.IntVar(&opts.cols, "cols", defaultCols, "columns of B")
	f.Int64Var(&opts.seed, "seed", matrix.DefaultSeed, "random seed for both operands")
	f.StringArrayVar(&opts.blocks, "block", nil, "tile size as M, MxN or MxNxK (repeatable; default 16x16 32x32 64x64 128x128)")
	f.StringVar(&opts.jsonPath, "json", "", "write a JSON report to this file")
	f.StringVar(&opts.logLevel, "log-level", zerolog.LevelInfoValue, "log level (trace, debug, info, warn, error, disabled)")
	f.BoolVar(&opts.host, "host", false, "print host CPU information")

	return cmd
}

func run(opts options, stdout, stderr io.Writer) error {
	log, err := newLogger(stderr, opts.logLevel)
	if err != nil {
		return err
	}
	configs, err := parseConfigs(opts.blocks)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(opts.seed))
	a, err := matrix.NewRandom(opts.rows, opts.inner, rng)
	if err != nil {
		return fmt.Errorf("operand A: %w", err)
	}
	b, err := matrix.NewRandom(opts.inner, opts.cols, rng)
	if err != nil {
		return fmt.Errorf("operand B: %w", err)
	}
	log.Debug().Int64("seed", opts.seed).Msg("operands generated")

	if err = verify(a, b, configs[0]); err != nil {
		return err
	}
	log.Info().Stringer("config", configs[0]).Msg("blocked product verified against reference")

	res, err := benchmark.Run(a, b, configs, benchmark.WithLogger(log))
	if err != nil {
		return err
	}

	host := benchmark.DetectHost()
	p := newPrinter()
	if opts.host {
		writeHost(stdout, p, host)
	}
	writeTable(stdout, p, res)

	if opts.jsonPath != "" {
		if err = writeJSONFile(opts.jsonPath, newReport(res, host, opts.seed)); err != nil {
			return err
		}
		log.Info().Str("path", opts.jsonPath).Msg("report written")
	}

	return nil
}

// newLogger builds a console logger on w at the named level.
func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("--log-level: %w", err)
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: !isTerminal(w)}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

// parseConfigs parses every --block value; no values means the default set.
func parseConfigs(specs []string) ([]blocked.BlockConfig, error) {
	if len(specs) == 0 {
		return benchmark.DefaultConfigs(), nil
	}
	out := make([]blocked.BlockConfig, 0, len(specs))
	for _, s := range specs {
		cfg, err := blocked.ParseBlockConfig(s)
		if err != nil {
			return nil, fmt.Errorf("--block: %w", err)
		}
		out = append(out, cfg)
	}

	return out, nil
}

// verify checks one blocked product against the reference before anything is timed.
func verify(a, b *matrix.Dense, cfg blocked.BlockConfig) error {
	got, err := blocked.Multiply(a, b, cfg)
	if err != nil {
		return err
	}
	want, err := reference.Multiply(a, b)
	if err != nil {
		return err
	}
	ok, err := matrix.AllClose(got, want, benchmark.DefaultRTol, benchmark.DefaultATol)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s: %w", cfg, errVerification)
	}

	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && isatty.IsTerminal(f.Fd())
}
