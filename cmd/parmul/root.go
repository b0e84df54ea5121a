package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/parmatmul/matrix"
	"github.com/katalvlaran/parmatmul/parallel"
)

// Flag defaults.
const (
	defaultSize = 1000
	verifyTol   = 1e-5
)

// runConfig is the resolved command-line configuration.
type runConfig struct {
	size    int
	workers int
	fill    float32
	verify  bool
	verbose bool
}

// newRootCmd wires flags to run. stdout receives only the timing line.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cfg := runConfig{}

	cmd := &cobra.Command{
		Use:           "parmul",
		Short:         "Time a column-partitioned parallel matrix multiply",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			log := newLogger(stderr, cfg.verbose)
			if err := run(cfg, stdout, log); err != nil {
				log.Error().Err(err).Msg("parmul failed")
				return err
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVarP(&cfg.size, "size", "n", defaultSize, "rows and columns of both square operands")
	f.IntVarP(&cfg.workers, "workers", "w", parallel.DefaultWorkers, "goroutines launched besides the caller")
	f.Float32Var(&cfg.fill, "fill", matrix.DefaultFill, "value written into every operand cell")
	f.BoolVar(&cfg.verify, "verify", false, "compare the result against the single-threaded reference")
	f.BoolVarP(&cfg.verbose, "verbose", "v", false, "log debug diagnostics to stderr")

	return cmd
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().Timestamp().Str("cmd", "parmul").
		Logger()
}

// run allocates both operands, times one Multiply, prints "<seconds> seconds"
// and releases every matrix it allocated.
func run(cfg runConfig, stdout io.Writer, log zerolog.Logger) (err error) {
	host := describeHost()
	log.Debug().
		Str("arch", host.Arch).
		Int("cpus", host.CPUs).
		Strs("features", host.Features).
		Int("size", cfg.size).
		Int("workers", cfg.workers).
		Msg("starting multiply")

	a, err := matrix.Allocate(cfg.size, cfg.size, matrix.WithFill(cfg.fill))
	if err != nil {
		return fmt.Errorf("allocate a: %w", err)
	}
	defer releaseInto(&err, a, "a")

	b, err := matrix.Allocate(cfg.size, cfg.size, matrix.WithFill(cfg.fill))
	if err != nil {
		return fmt.Errorf("allocate b: %w", err)
	}
	defer releaseInto(&err, b, "b")

	out, elapsed, err := parallel.MultiplyTimed(a, b, parallel.WithWorkers(cfg.workers))
	if err != nil {
		return err
	}
	defer releaseInto(&err, out, "out")

	log.Debug().Dur("elapsed", elapsed).Msg("multiply done")

	if cfg.verify {
		if err = verify(a, b, out, log); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintf(stdout, "%f seconds\n", elapsed.Seconds())

	return err
}

// verify recomputes a×b with parallel.Reference and compares it with out.
func verify(a, b, out *matrix.Dense, log zerolog.Logger) error {
	ref, err := parallel.Reference(a, b)
	if err != nil {
		return fmt.Errorf("reference: %w", err)
	}
	defer func() { _ = ref.Release() }()

	diff, err := matrix.MaxAbsDiff(out, ref)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	log.Debug().Float32("max_abs_diff", diff).Msg("verified against reference")
	if !matrix.AllClose(out, ref, verifyTol) {
		return fmt.Errorf("verify: result differs from reference (max |diff| = %g)", diff)
	}

	return nil
}

// releaseInto releases m and records a release failure in *errp unless an
// earlier error is already set.
func releaseInto(errp *error, m *matrix.Dense, name string) {
	if rerr := m.Release(); rerr != nil && *errp == nil {
		*errp = fmt.Errorf("release %s: %w", name, rerr)
	}
}
