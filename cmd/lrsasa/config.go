/*
 * config.go, part of goSASA.
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

package main

import (
	"fmt"
	"runtime"

	"gopkg.in/gcfg.v1"
)

// ExampleConfigFile is a configuration file with all the options
// and their default values.
const ExampleConfigFile = `[Calculation]

# Radius of the solvent probe, in A.
Probe = 1.4

# Thickness of the slices, in A. Smaller values are more accurate and slower.
Resolution = 0.25

# Number of goroutines used. The default is the number of CPUs.
# Threads = 4

[Input]

# Read HETATM records (ligands, ions, waters).
HetAtm = false

# Read hydrogen atoms.
Hydrogen = false

# Radius, in A, for atoms whose element has no known radius. With the
# default (0) such atoms are an error.
UnknownRadius = 0
`

// CalculationConfig contains the parameters of the SASA calculation.
type CalculationConfig struct {
	Probe      float64
	Resolution float64
	Threads    int
}

// InputConfig controls how the input file is read.
type InputConfig struct {
	HetAtm        bool
	Hydrogen      bool
	UnknownRadius float64
}

// Config is the content of a configuration file.
type Config struct {
	Calculation CalculationConfig
	Input       InputConfig
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Calculation: CalculationConfig{
			Probe:      1.4,
			Resolution: 0.25,
			Threads:    runtime.NumCPU(),
		},
	}
}

// ReadConfig reads the configuration file fname. Options not in the
// file keep their default values.
func ReadConfig(fname string) (*Config, error) {
	c := DefaultConfig()
	if err := gcfg.ReadFileInto(c, fname); err != nil {
		return nil, fmt.Errorf("lrsasa: Can't read configuration file %s: %w", fname, err)
	}
	return c, nil
}
