// SPDX-License-Identifier: MIT

// Command crunum evaluates matrix expressions from the command line.
//
//	crunum identity 3
//	crunum rand 2 3 --seed 7 --lo -1 --hi 1
//	crunum power "1,1;1,0" 10
//	crunum inverse "1,2;3,4"
//	crunum mul "1,2;3,4" "5;6"
//	crunum solve "4,1;1,3" "1,2"
package main

import (
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"time"

	"github.com/katalvlaran/crunum"
	"github.com/katalvlaran/crunum/converters"
	"github.com/katalvlaran/crunum/matrix"
	"github.com/urfave/cli/v2"
)

func main() {
	err := newApp(os.Stdout).Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

// newApp wires every command; results go to w, timing lines to the log.
func newApp(w io.Writer) *cli.App {
	return &cli.App{
		Name:    "crunum",
		Usage:   "dense matrix arithmetic",
		Version: crunum.Version,
		Writer:  w,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log timing for each command",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "identity",
				Usage:     "print the N×N identity matrix",
				ArgsUsage: "N",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return fmt.Errorf("identity: %w: %q", errArgCount, c.Args().Slice())
					}
					n, err := parseCount("N", c.Args().First())
					if err != nil {
						return fmt.Errorf("identity: %w", err)
					}
					m, err := matrix.Identity(n)
					if err != nil {
						return fmt.Errorf("identity: %w", err)
					}
					return render(c, m)
				},
			},
			{
				Name:      "rand",
				Usage:     "print an R×C matrix of uniform random values",
				ArgsUsage: "R C",
				Flags: []cli.Flag{
					&cli.Int64Flag{
						Name:    "seed",
						Aliases: []string{"s"},
						Usage:   "seed for reproducible output (default: time-based)",
					},
					&cli.Float64Flag{
						Name:  "lo",
						Value: matrix.DefaultRandLo,
						Usage: "inclusive lower bound",
					},
					&cli.Float64Flag{
						Name:  "hi",
						Value: matrix.DefaultRandHi,
						Usage: "exclusive upper bound",
					},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() != 2 {
						return fmt.Errorf("rand: %w: %q", errArgCount, c.Args().Slice())
					}
					r, err := parseCount("R", c.Args().Get(0))
					if err != nil {
						return fmt.Errorf("rand: %w", err)
					}
					cols, err := parseCount("C", c.Args().Get(1))
					if err != nil {
						return fmt.Errorf("rand: %w", err)
					}
					lo, hi := c.Float64("lo"), c.Float64("hi")
					if !finite(lo) || !finite(hi) || !(lo < hi) {
						return fmt.Errorf("rand: need lo < hi, got [%v, %v)", lo, hi)
					}
					opts := []matrix.Option{matrix.WithRange(lo, hi)}
					if c.IsSet("seed") {
						opts = append(opts, matrix.WithSeed(c.Int64("seed")))
					}
					m, err := matrix.RandInit(r, cols, opts...)
					if err != nil {
						return fmt.Errorf("rand: %w", err)
					}
					return render(c, m)
				},
			},
			{
				Name:      "power",
				Usage:     "raise a square matrix to a non-negative integer power",
				ArgsUsage: "MATRIX K",
				Action: func(c *cli.Context) error {
					if c.NArg() != 2 {
						return fmt.Errorf("power: %w: %q", errArgCount, c.Args().Slice())
					}
					m, err := parseMatrix(c.Args().Get(0))
					if err != nil {
						return fmt.Errorf("power: %w", err)
					}
					k, err := parseCount("K", c.Args().Get(1))
					if err != nil {
						return fmt.Errorf("power: %w", err)
					}
					start := time.Now()
					p, err := m.Pow(k)
					if err != nil {
						return fmt.Errorf("power: %w", err)
					}
					timing(c, "power %dx%d^%d", start, m.Rows(), m.Cols(), k)
					return render(c, p)
				},
			},
			{
				Name:      "inverse",
				Usage:     "invert a square matrix (Gauss-Jordan, partial pivoting)",
				ArgsUsage: "MATRIX",
				Flags: []cli.Flag{
					&cli.Float64Flag{
						Name:  "tol",
						Value: matrix.DefaultPivotTolerance,
						Usage: "pivot magnitude at or below which the matrix is singular",
					},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return fmt.Errorf("inverse: %w: %q", errArgCount, c.Args().Slice())
					}
					m, err := parseMatrix(c.Args().First())
					if err != nil {
						return fmt.Errorf("inverse: %w", err)
					}
					tol := c.Float64("tol")
					if !finite(tol) || tol < 0 {
						return fmt.Errorf("inverse: tolerance must be non-negative, got %v", tol)
					}
					start := time.Now()
					inv, err := m.Inverse(matrix.WithPivotTolerance(tol))
					if err != nil {
						return fmt.Errorf("inverse: %w", err)
					}
					timing(c, "inverse %dx%d", start, m.Rows(), m.Cols())
					return render(c, inv)
				},
			},
			{
				Name:      "mul",
				Usage:     "multiply two matrices (true product)",
				ArgsUsage: "A B",
				Action: func(c *cli.Context) error {
					if c.NArg() != 2 {
						return fmt.Errorf("mul: %w: %q", errArgCount, c.Args().Slice())
					}
					a, err := parseMatrix(c.Args().Get(0))
					if err != nil {
						return fmt.Errorf("mul: A: %w", err)
					}
					b, err := parseMatrix(c.Args().Get(1))
					if err != nil {
						return fmt.Errorf("mul: B: %w", err)
					}
					start := time.Now()
					p, err := a.Mul(b)
					if err != nil {
						return fmt.Errorf("mul: %w", err)
					}
					timing(c, "mul %dx%d * %dx%d", start, a.Rows(), a.Cols(), b.Rows(), b.Cols())
					return render(c, p)
				},
			},
			{
				Name:      "solve",
				Usage:     "solve A·x = b with a sparse LU factorization",
				ArgsUsage: "A b",
				Action: func(c *cli.Context) error {
					if c.NArg() != 2 {
						return fmt.Errorf("solve: %w: %q", errArgCount, c.Args().Slice())
					}
					a, err := parseMatrix(c.Args().Get(0))
					if err != nil {
						return fmt.Errorf("solve: A: %w", err)
					}
					b, err := parseVector(c.Args().Get(1))
					if err != nil {
						return fmt.Errorf("solve: b: %w", err)
					}
					start := time.Now()
					x, err := converters.SolveSparse(a, b)
					if err != nil {
						return fmt.Errorf("solve: %w", err)
					}
					timing(c, "solve %dx%d", start, a.Rows(), a.Cols())
					_, err = fmt.Fprintln(c.App.Writer, x)
					return err
				},
			},
		},
	}
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// render prints m in the nested-bracket format.
func render(c *cli.Context, m *matrix.Matrix) error {
	_, err := fmt.Fprintln(c.App.Writer, m)
	return err
}

// timing logs how long a command took when --verbose is set.
func timing(c *cli.Context, format string, start time.Time, args ...any) {
	if !c.Bool("verbose") {
		return
	}
	log.Printf(format+" in %s", append(args, time.Since(start))...)
}
