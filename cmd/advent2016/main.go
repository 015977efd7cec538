// Command advent2016 runs the Advent of Code 2016 solvers.
//
//	$ advent2016 solve -inputs ./inputs -day 11 -part 2 -v
//	$ advent2016 list
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/advent2016/days"
	"github.com/katalvlaran/advent2016/puzzle"
)

func main() {
	if err := app(os.Stdout, os.Stderr).Dispatch(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "**err**: %v\n", err)
		os.Exit(1)
	}
}

func app(stdout, stderr io.Writer) *commander.Command {
	return &commander.Command{
		UsageLine: "advent2016 <command>",
		Short:     "Advent of Code 2016 solutions",
		Subcommands: []*commander.Command{
			solveCmd(stdout, stderr),
			listCmd(stdout),
		},
		Flag: *flag.NewFlagSet("advent2016", flag.ExitOnError),
	}
}

func solveCmd(stdout, stderr io.Writer) *commander.Command {
	def := puzzle.DefaultConfig()
	cmd := &commander.Command{
		UsageLine: "solve [-inputs DIR] [-day N] [-part 1|2] [-v]",
		Short:     "solves one day or all of them",
		Long: `
solve reads dayNN.txt from the inputs directory and prints both answers
of every selected day. The directory defaults to $` + puzzle.InputsEnv + ` or ./inputs.

	$ advent2016 solve -day 13 -part 1
`,
		Flag: *flag.NewFlagSet("solve", flag.ExitOnError),
	}
	inputs := cmd.Flag.String("inputs", def.InputsDir, "directory holding dayNN.txt files")
	day := cmd.Flag.Int("day", 0, "day to solve (0 for all)")
	part := cmd.Flag.Int("part", 0, "part to solve (0 for both)")
	verbose := cmd.Flag.Bool("v", false, "log at debug level")

	cmd.Run = func(cmd *commander.Command, args []string) error {
		parts, err := puzzle.PartsFor(*part)
		if err != nil {
			return err
		}
		cfg := puzzle.Config{InputsDir: *inputs, Parts: parts, Verbose: *verbose}
		if *day != 0 {
			cfg.Days = []int{*day}
		}
		reg, err := days.All()
		if err != nil {
			return err
		}

		return puzzle.NewRunner(reg, cfg,
			puzzle.WithLogger(newLogger(stderr, cfg.Verbose)),
			puzzle.WithOutput(stdout),
		).Run()
	}

	return cmd
}

func listCmd(stdout io.Writer) *commander.Command {
	return &commander.Command{
		Run: func(cmd *commander.Command, args []string) error {
			reg, err := days.All()
			if err != nil {
				return err
			}
			for _, s := range reg.All() {
				fmt.Fprintf(stdout, "%2d  %s\n", s.Day(), s.Title())
			}
			return nil
		},
		UsageLine: "list",
		Short:     "lists the available days",
		Flag:      *flag.NewFlagSet("list", flag.ExitOnError),
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
