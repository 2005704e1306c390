/*
 * main_test.go, part of goSASA.
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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmera/gosasa/pdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPDB = `ATOM      1  N   ALA A   1      11.104   6.134  -6.504  1.00  0.00           N
ATOM      2  CA  ALA A   1      11.639   6.071  -5.147  1.00  0.00           C
ATOM      3  C   ALA A   1      13.089   5.624  -5.134  1.00  0.00           C
ATOM      4  O   ALA A   1      13.474   4.787  -4.331  1.00  0.00           O
ATOM      5  CB  ALA A   1      10.787   5.148  -4.254  1.00  0.00           C
ATOM      6  N   GLY A   2      13.900   6.200  -6.000  1.00  0.00           N
HETATM    7  ZN   ZN B 101      20.000  20.000  20.000  1.00  0.00
END
`

func writeTestPDB(Te *testing.T) string {
	name := filepath.Join(Te.TempDir(), "test.pdb")
	require.NoError(Te, os.WriteFile(name, []byte(testPDB), 0o644))
	return name
}

func TestReadConfig(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "lrsasa.ini")
	require.NoError(Te, os.WriteFile(name, []byte("[Calculation]\nProbe = 1.2\nThreads = 3\n[input]\nhetatm = true\nunknownradius = 1.9\n"), 0o644))
	c, err := ReadConfig(name)
	require.NoError(Te, err)
	assert.Equal(Te, 1.2, c.Calculation.Probe)
	assert.Equal(Te, 0.25, c.Calculation.Resolution, "not in the file, should keep the default")
	assert.Equal(Te, 3, c.Calculation.Threads)
	assert.True(Te, c.Input.HetAtm)
	assert.False(Te, c.Input.Hydrogen)
	assert.Equal(Te, 1.9, c.Input.UnknownRadius)

	example := filepath.Join(Te.TempDir(), "example.ini")
	require.NoError(Te, os.WriteFile(example, []byte(ExampleConfigFile), 0o644))
	c, err = ReadConfig(example)
	require.NoError(Te, err)
	assert.Equal(Te, DefaultConfig(), c)

	_, err = ReadConfig(filepath.Join(Te.TempDir(), "nope.ini"))
	assert.Error(Te, err)
}

func TestRunResidues(Te *testing.T) {
	name := writeTestPDB(Te)
	var out bytes.Buffer
	require.NoError(Te, newApp(&out).Run([]string{"lrsasa", "--threads", "2", name}))
	s := out.String()
	assert.Contains(Te, s, "A:ALA1")
	assert.Contains(Te, s, "A:GLY2")
	assert.NotContains(Te, s, "ZN", "HETATM are not read by default")
	assert.Contains(Te, s, "Total:")
}

func TestRunAtomsAndOutputs(Te *testing.T) {
	name := writeTestPDB(Te)
	dir := Te.TempDir()
	plot := filepath.Join(dir, "res.png")
	pdbout := filepath.Join(dir, "out.pdb")
	var out bytes.Buffer
	args := []string{"lrsasa", "--depth", "atom", "--hetatm", "--plot", plot, "--pdb-out", pdbout, name}
	require.NoError(Te, newApp(&out).Run(args))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	//header, 7 atoms, total
	require.Len(Te, lines, 9)
	assert.Contains(Te, lines[7], "ZN")
	_, err := os.Stat(plot)
	assert.NoError(Te, err)

	atoms, _, err := pdb.FileRead(pdbout, &pdb.ReadOptions{HetAtm: true})
	require.NoError(Te, err)
	assert.Len(Te, atoms, 7)
}

func TestRunErrors(Te *testing.T) {
	name := writeTestPDB(Te)
	var out bytes.Buffer
	assert.Error(Te, newApp(&out).Run([]string{"lrsasa"}))
	assert.Error(Te, newApp(&out).Run([]string{"lrsasa", "--depth", "chain", name}))
	assert.Error(Te, newApp(&out).Run([]string{"lrsasa", "--resolution", "-1", name}))
	assert.Error(Te, newApp(&out).Run([]string{"lrsasa", filepath.Join(Te.TempDir(), "nope.pdb")}))
}

func TestExampleConfig(Te *testing.T) {
	var out bytes.Buffer
	require.NoError(Te, newApp(&out).Run([]string{"lrsasa", "--example-config"}))
	assert.Equal(Te, ExampleConfigFile, out.String())
}
