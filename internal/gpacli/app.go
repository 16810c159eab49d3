// Package gpacli is the command-line front end of the GPA engine.
package gpacli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yigit/gpacalc/internal/gpa"
	"github.com/yigit/gpacalc/internal/pkg/logger"
)

// NewApp builds the gpa command. Output goes to out, diagnostics to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:      "gpa",
		Usage:     "calculate a credit-weighted GPA from course marks",
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "disabled",
				Usage:   "log level (debug, info, warn, error, disabled)",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Before: func(c *cli.Context) error {
			logger.Configure(logger.Config{
				Level:  logger.ParseLevel(c.String("log-level")),
				Pretty: true,
				Output: errOut,
			})
			return nil
		},
		Commands: []*cli.Command{
			calcCommand(),
			scaleCommand(),
			gradePointCommand(),
		},
	}
}

func calcCommand() *cli.Command {
	return &cli.Command{
		Name:      "calc",
		Usage:     "compute the GPA of one or more courses",
		ArgsUsage: "MARKS:CREDITS [MARKS:CREDITS...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "breakdown", Aliases: []string{"b"}, Usage: "print each course's grade point"},
		},
		Action: func(c *cli.Context) error {
			entries, err := ParseEntries(c.Args().Slice())
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}

			logger.Debug().Int("entries", len(entries)).Msg("Computing GPA")
			res, err := gpa.Compute(entries)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			if c.Bool("breakdown") {
				for _, e := range res.Entries {
					fmt.Fprintf(c.App.Writer, "%d. marks %g  credits %g  grade point %.1f\n",
						e.Position, e.Marks, e.Credits, e.GradePoint)
				}
			}
			fmt.Fprintln(c.App.Writer, res.String())
			return nil
		},
	}
}

func scaleCommand() *cli.Command {
	return &cli.Command{
		Name:  "scale",
		Usage: "print the marks to grade point table",
		Action: func(c *cli.Context) error {
			upper := gpa.MaxMarks
			for i, b := range gpa.Scale() {
				if i == 0 {
					fmt.Fprintf(c.App.Writer, "%5g - %-5g  %.1f\n", b.LowerBound, upper, b.Point)
				} else {
					fmt.Fprintf(c.App.Writer, "%5g - <%-4g  %.1f\n", b.LowerBound, upper, b.Point)
				}
				upper = b.LowerBound
			}
			return nil
		},
	}
}

func gradePointCommand() *cli.Command {
	return &cli.Command{
		Name:      "grade-point",
		Usage:     "print the grade point for one marks value",
		ArgsUsage: "MARKS",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("expected exactly one MARKS argument", 2)
			}
			marks, err := gpa.ParseMarks(gpa.RawValue(c.Args().First()))
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			fmt.Fprintf(c.App.Writer, "%.1f\n", gpa.GradePoint(marks))
			return nil
		},
	}
}

// ErrMalformedEntry is returned for an argument that is not MARKS:CREDITS
var ErrMalformedEntry = errors.New("entry must be written as MARKS:CREDITS")

// ParseEntries splits MARKS:CREDITS arguments into course entries. Values
// are left raw so the engine reports bad numbers the same way it does for
// API input.
func ParseEntries(args []string) ([]gpa.CourseEntry, error) {
	entries := make([]gpa.CourseEntry, 0, len(args))
	for i, arg := range args {
		marks, credits, ok := strings.Cut(arg, ":")
		if !ok {
			return nil, fmt.Errorf("argument %d %q: %w", i+1, arg, ErrMalformedEntry)
		}
		entries = append(entries, gpa.CourseEntry{
			Marks:   gpa.RawValue(marks),
			Credits: gpa.RawValue(credits),
		})
	}
	return entries, nil
}
