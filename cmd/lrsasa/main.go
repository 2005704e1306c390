/*
 * main.go, part of goSASA.
 *
 * Copyright 2024 The goSASA authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// lrsasa calculates the solvent accessible surface area of the atoms
// in a PDB file with the Lee & Richards algorithm.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	sasa "github.com/rmera/gosasa"
	"github.com/rmera/gosasa/pdb"
	"github.com/rmera/gosasa/sasaplot"
	v3 "github.com/rmera/gosasa/v3"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	// Flags.
	flagProbe         = "probe"
	flagResolution    = "resolution"
	flagThreads       = "threads"
	flagConfig        = "config"
	flagHetAtm        = "hetatm"
	flagHydrogen      = "hydrogen"
	flagUnknownRadius = "unknown-radius"
	flagDepth         = "depth"
	flagPlot          = "plot"
	flagPDBOut        = "pdb-out"
	flagVerbose       = "verbose"
	flagExampleConfig = "example-config"

	depthAtom    = "atom"
	depthResidue = "residue"
	depthTotal   = "total"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:      "lrsasa",
		Usage:     "solvent accessible surface area with the Lee & Richards algorithm",
		ArgsUsage: "FILE.pdb[.gz|.zst]",
		Writer:    out,
		Flags: []cli.Flag{
			&cli.Float64Flag{
				Name:  flagProbe,
				Usage: "probe radius in A",
				Value: 1.4,
			},
			&cli.Float64Flag{
				Name:    flagResolution,
				Aliases: []string{"r"},
				Usage:   "slice thickness in A",
				Value:   0.25,
			},
			&cli.IntFlag{
				Name:    flagThreads,
				Aliases: []string{"t"},
				Usage:   "number of goroutines (default: number of CPUs)",
			},
			&cli.PathFlag{
				Name:    flagConfig,
				Aliases: []string{"c"},
				Usage:   "load configuration from `FILE`, flags override it",
			},
			&cli.BoolFlag{
				Name:  flagHetAtm,
				Usage: "read HETATM records",
			},
			&cli.BoolFlag{
				Name:  flagHydrogen,
				Usage: "read hydrogens",
			},
			&cli.Float64Flag{
				Name:  flagUnknownRadius,
				Usage: "radius for atoms of unknown elements (0: unknown elements are an error)",
			},
			&cli.StringFlag{
				Name:  flagDepth,
				Usage: "output detail: atom, residue or total",
				Value: depthResidue,
			},
			&cli.PathFlag{
				Name:  flagPlot,
				Usage: "save a per-residue bar chart to `FILE` (png, svg, pdf)",
			},
			&cli.PathFlag{
				Name:  flagPDBOut,
				Usage: "write the atoms to `FILE` in PDB format, with the SASA as B-factor",
			},
			&cli.BoolFlag{
				Name:    flagVerbose,
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
			&cli.BoolFlag{
				Name:  flagExampleConfig,
				Usage: "print an example configuration file and exit",
			},
		},
		Action: func(c *cli.Context) error {
			if c.Bool(flagExampleConfig) {
				_, err := fmt.Fprint(out, ExampleConfigFile)
				return err
			}
			return run(c, out)
		},
	}
}

// config puts together the configuration file, if any, and the flags.
func config(c *cli.Context) (*Config, error) {
	cfg := DefaultConfig()
	if c.IsSet(flagConfig) {
		var err error
		if cfg, err = ReadConfig(c.Path(flagConfig)); err != nil {
			return nil, err
		}
	}
	if c.IsSet(flagProbe) {
		cfg.Calculation.Probe = c.Float64(flagProbe)
	}
	if c.IsSet(flagResolution) {
		cfg.Calculation.Resolution = c.Float64(flagResolution)
	}
	if c.IsSet(flagThreads) {
		cfg.Calculation.Threads = c.Int(flagThreads)
	}
	if c.IsSet(flagHetAtm) {
		cfg.Input.HetAtm = c.Bool(flagHetAtm)
	}
	if c.IsSet(flagHydrogen) {
		cfg.Input.Hydrogen = c.Bool(flagHydrogen)
	}
	if c.IsSet(flagUnknownRadius) {
		cfg.Input.UnknownRadius = c.Float64(flagUnknownRadius)
	}
	return cfg, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	zc.Encoding = "console"
	return zc.Build()
}

func run(c *cli.Context, out io.Writer) error {
	if c.NArg() != 1 {
		return fmt.Errorf("lrsasa: expected one input file, got %d arguments", c.NArg())
	}
	depth := c.String(flagDepth)
	if depth != depthAtom && depth != depthResidue && depth != depthTotal {
		return fmt.Errorf("lrsasa: unknown depth %q", depth)
	}
	cfg, err := config(c)
	if err != nil {
		return err
	}
	logger, err := newLogger(c.Bool(flagVerbose))
	if err != nil {
		return err
	}
	defer logger.Sync()
	log := logger.Sugar()
	name := c.Args().First()
	start := time.Now()

	atoms, coords, err := pdb.FileRead(name, &pdb.ReadOptions{HetAtm: cfg.Input.HetAtm, Hydrogen: cfg.Input.Hydrogen})
	if err != nil {
		return err
	}
	radii, err := pdb.Radii(atoms, cfg.Input.UnknownRadius)
	if err != nil {
		return err
	}
	log.Debugw("read input", "file", name, "atoms", len(atoms))

	area := make([]float64, len(atoms))
	calc := cfg.Calculation
	status := sasa.LeeRichards(area, coords, radii, calc.Probe, calc.Resolution, calc.Threads, sasa.NewZapReporter(log))
	if status == sasa.Failure {
		return fmt.Errorf("lrsasa: SASA calculation failed for %s", name)
	}
	log.Debugw("calculation done", "status", status, "threads", calc.Threads, "elapsed", time.Since(start))

	residues, err := pdb.ByResidue(atoms, area)
	if err != nil {
		return err
	}
	switch depth {
	case depthAtom:
		err = writeAtoms(out, atoms, area)
	case depthResidue:
		err = writeResidues(out, residues)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "Total: %.2f A^2  Atoms: %d  Mean per atom: %.2f A^2  Probe: %.2f A  Slice: %.3f A\n",
		floats.Sum(area), len(area), stat.Mean(area, nil), calc.Probe, calc.Resolution)
	if err != nil {
		return err
	}
	if c.IsSet(flagPlot) {
		labels := make([]string, len(residues))
		values := make([]float64, len(residues))
		for i, r := range residues {
			labels[i] = r.Label()
			values[i] = r.Value
		}
		if err := sasaplot.ResidueBars(labels, values, name, c.Path(flagPlot)); err != nil {
			return err
		}
	}
	if c.IsSet(flagPDBOut) {
		if err := writePDB(c.Path(flagPDBOut), atoms, coords, area); err != nil {
			return err
		}
	}
	return nil
}

func writeAtoms(out io.Writer, atoms []*pdb.Atom, area []float64) error {
	if _, err := fmt.Fprintf(out, "%6s %-4s %-3s %1s %4s %10s\n", "Serial", "Name", "Res", "C", "Num", "SASA"); err != nil {
		return err
	}
	for i, at := range atoms {
		_, err := fmt.Fprintf(out, "%6d %-4s %-3s %c %4d %10.3f\n", at.Id, at.Name, at.Molname, at.Chain, at.Molid, area[i])
		if err != nil {
			return err
		}
	}
	return nil
}

func writeResidues(out io.Writer, residues []*pdb.ResidueValue) error {
	if _, err := fmt.Fprintf(out, "%-12s %5s %10s\n", "Residue", "Atoms", "SASA"); err != nil {
		return err
	}
	for _, r := range residues {
		if _, err := fmt.Fprintf(out, "%-12s %5d %10.3f\n", r.Label(), r.Atoms, r.Value); err != nil {
			return err
		}
	}
	return nil
}

func writePDB(name string, atoms []*pdb.Atom, coords *v3.Matrix, area []float64) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := pdb.Write(f, atoms, coords, area); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
