package puzzle

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// InputsEnv names the environment variable holding the default inputs
// directory.
const InputsEnv = "AOC2016_INPUTS"

// Config selects what a Runner executes.
type Config struct {
	// InputsDir holds dayNN.txt files.
	InputsDir string
	// Days to run; empty means every registered day.
	Days []int
	// Parts to run for each day.
	Parts Parts
	// Verbose lowers the log level to Debug.
	Verbose bool
}

// DefaultConfig returns a Config running both parts of every day, reading
// inputs from $AOC2016_INPUTS or ./inputs.
func DefaultConfig() Config {
	dir := os.Getenv(InputsEnv)
	if dir == "" {
		dir = "inputs"
	}

	return Config{InputsDir: dir, Parts: BothParts}
}

// InputPath returns the input file of day under dir.
func InputPath(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("day%02d.txt", day))
}

// Runner loads inputs, solves the configured days and prints answers.
type Runner struct {
	reg    *Registry
	cfg    Config
	log    *slog.Logger
	out    io.Writer
	readFn func(string) ([]byte, error)
}

// RunnerOption customises a Runner.
type RunnerOption func(*Runner)

// WithLogger replaces the default (discarding) logger.
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithOutput sets where answers are printed. Default os.Stdout.
func WithOutput(w io.Writer) RunnerOption {
	return func(r *Runner) {
		if w != nil {
			r.out = w
		}
	}
}

// WithReadFile overrides how input files are loaded.
func WithReadFile(fn func(path string) ([]byte, error)) RunnerOption {
	return func(r *Runner) {
		if fn != nil {
			r.readFn = fn
		}
	}
}

// NewRunner binds a registry to a configuration.
func NewRunner(reg *Registry, cfg Config, opts ...RunnerOption) *Runner {
	r := &Runner{
		reg:    reg,
		cfg:    cfg,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		out:    os.Stdout,
		readFn: os.ReadFile,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.cfg.Parts == 0 {
		r.cfg.Parts = BothParts
	}

	return r
}

// Run solves every selected day in order. A failing day is logged and
// reported in the joined error; later days still run.
func (r *Runner) Run() error {
	solvers, err := r.selected()
	if err != nil {
		return err
	}

	var errs []error
	for _, s := range solvers {
		if err := r.runOne(s); err != nil {
			r.log.Error("day failed", "day", s.Day(), "err", err)
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (r *Runner) selected() ([]Solver, error) {
	if len(r.cfg.Days) == 0 {
		return r.reg.All(), nil
	}
	out := make([]Solver, 0, len(r.cfg.Days))
	for _, d := range r.cfg.Days {
		s, err := r.reg.Lookup(d)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

func (r *Runner) runOne(s Solver) error {
	path := InputPath(r.cfg.InputsDir, s.Day())
	raw, err := r.readFn(path)
	if err != nil {
		return fmt.Errorf("day %02d: read input: %w", s.Day(), err)
	}
	r.log.Debug("input loaded", "day", s.Day(), "path", path, "bytes", len(raw))

	ans, err := s.Solve(string(raw), r.cfg.Parts)
	r.log.Debug("parsed", "day", s.Day(), "elapsed", ans.Parse)
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "Day %02d: %s\n", s.Day(), s.Title())
	for _, a := range ans.Parts {
		fmt.Fprintf(r.out, "  part %d: %s\n", a.Part, a.Value)
		r.log.Info("solved", "day", s.Day(), "part", a.Part, "elapsed", a.Elapsed)
	}

	return nil
}
