/*
 * pdb_test.go, part of goSASA.
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

package pdb

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPDB = `HEADER    TEST
MODEL        1
ATOM      1  N   ALA A   1      11.104   6.134  -6.504  1.00  0.00           N
ATOM      2  CA  ALA A   1      11.639   6.071  -5.147  1.00  0.00           C
ATOM      3  C   ALA A   1      13.089   5.624  -5.134  1.00  0.00           C
ATOM      4  O   ALA A   1      13.474   4.787  -4.331  1.00  0.00           O
ATOM      5  CB AALA A   1      10.787   5.148  -4.254  1.00  0.00           C
ATOM      6  CB BALA A   1      10.800   5.100  -4.200  1.00  0.00           C
ATOM      7  H   ALA A   1      10.500   6.500  -7.000  1.00  0.00           H
ATOM      8  N   GLY B   2      13.900   6.200  -6.000  1.00  0.00           N
HETATM    9  ZN   ZN B 101      20.000  20.000  20.000  1.00  0.00
ENDMDL
MODEL        2
ATOM      1  N   ALA A   1      11.104   6.134  -6.504  1.00  0.00           N
ENDMDL
END
`

func TestRead(Te *testing.T) {
	atoms, coords, err := Read(strings.NewReader(testPDB), nil)
	require.NoError(Te, err)
	//no hydrogen, no HETATM, no second altloc, no second model.
	require.Len(Te, atoms, 6)
	assert.Equal(Te, 6, coords.NVecs())
	assert.Equal(Te, "CA", atoms[1].Name)
	assert.Equal(Te, "C", atoms[1].Symbol)
	assert.Equal(Te, "ALA", atoms[1].Molname)
	assert.Equal(Te, byte('A'), atoms[4].AltLoc)
	assert.Equal(Te, byte('B'), atoms[5].Chain)
	assert.Equal(Te, 2, atoms[5].Molid)
	x, y, z := coords.XYZ(1)
	assert.Equal(Te, []float64{11.639, 6.071, -5.147}, []float64{x, y, z})

	//the coordinates follow the atoms that pass the filters.
	x, y, z = coords.XYZ(4)
	assert.Equal(Te, []float64{10.787, 5.148, -4.254}, []float64{x, y, z})
	x, y, z = coords.XYZ(5)
	assert.Equal(Te, []float64{13.9, 6.2, -6.0}, []float64{x, y, z})

	atoms, coords, err = Read(strings.NewReader(testPDB), &ReadOptions{HetAtm: true, Hydrogen: true})
	require.NoError(Te, err)
	require.Len(Te, atoms, 8)
	require.Equal(Te, 8, coords.NVecs())
	x, y, z = coords.XYZ(5)
	assert.Equal(Te, []float64{10.5, 6.5, -7.0}, []float64{x, y, z})
	x, y, z = coords.XYZ(7)
	assert.Equal(Te, []float64{20.0, 20.0, 20.0}, []float64{x, y, z})
	assert.Equal(Te, "H", atoms[5].Symbol)
	assert.Equal(Te, "Zn", atoms[7].Symbol)
	assert.True(Te, atoms[7].Het)
}

func TestReadErrors(Te *testing.T) {
	_, _, err := Read(strings.NewReader("HEADER NOTHING\nEND\n"), nil)
	assert.Error(Te, err)
	bad := "ATOM      1  N   ALA A   X      11.1O4   6.134  -6.504  1.00  0.00           N\n"
	_, _, err = Read(strings.NewReader(bad), nil)
	require.Error(Te, err)
	assert.Contains(Te, err.Error(), "line 1")
	//both the residue number and the x coordinate are reported
	assert.Contains(Te, err.Error(), `"X"`)
	assert.Contains(Te, err.Error(), `"11.1O4"`)
	_, _, err = Read(strings.NewReader("ATOM      1  N   ALA A   1\n"), nil)
	assert.Error(Te, err)
}

func TestFileRead(Te *testing.T) {
	dir := Te.TempDir()
	plain := filepath.Join(dir, "test.pdb")
	require.NoError(Te, os.WriteFile(plain, []byte(testPDB), 0o644))

	var gzbuf bytes.Buffer
	gz := gzip.NewWriter(&gzbuf)
	_, err := gz.Write([]byte(testPDB))
	require.NoError(Te, err)
	require.NoError(Te, gz.Close())
	gzname := filepath.Join(dir, "test.pdb.gz")
	require.NoError(Te, os.WriteFile(gzname, gzbuf.Bytes(), 0o644))

	var zbuf bytes.Buffer
	zs, err := zstd.NewWriter(&zbuf)
	require.NoError(Te, err)
	_, err = zs.Write([]byte(testPDB))
	require.NoError(Te, err)
	require.NoError(Te, zs.Close())
	zname := filepath.Join(dir, "test.pdb.zst")
	require.NoError(Te, os.WriteFile(zname, zbuf.Bytes(), 0o644))

	ref, refc, err := FileRead(plain, nil)
	require.NoError(Te, err)
	for _, name := range []string{gzname, zname} {
		atoms, coords, err := FileRead(name, nil)
		require.NoError(Te, err, name)
		assert.Equal(Te, ref, atoms, name)
		assert.Equal(Te, refc.All(), coords.All(), name)
	}
	_, _, err = FileRead(filepath.Join(dir, "nope.pdb"), nil)
	assert.Error(Te, err)
}

func TestSymbolFromName(Te *testing.T) {
	cases := []struct {
		name string
		het  bool
		sym  string
	}{
		{"CA", false, "C"},
		{"CA", true, "Ca"},
		{"1HB", false, "H"},
		{"OXT", false, "O"},
		{"SG", false, "S"},
		{"ZN", true, "Zn"},
		{"XX", false, ""},
		{"", false, ""},
	}
	for _, c := range cases {
		assert.Equal(Te, c.sym, symbolFromName(c.name, c.het), "%s het=%v", c.name, c.het)
	}
	assert.Equal(Te, "Se", normalSymbol("SE"))
	assert.Equal(Te, "", normalSymbol("  "))
}

func TestRadii(Te *testing.T) {
	atoms, _, err := Read(strings.NewReader(testPDB), &ReadOptions{HetAtm: true})
	require.NoError(Te, err)
	r, err := Radii(atoms, 0)
	require.NoError(Te, err)
	assert.Equal(Te, []float64{1.55, 1.70, 1.70, 1.52, 1.70, 1.55, 2.02}, r)

	atoms = append(atoms, &Atom{Name: "UNK", Symbol: "Xx"}, &Atom{Name: "UNL", Symbol: ""})
	_, err = Radii(atoms, 0)
	require.Error(Te, err)
	assert.Contains(Te, err.Error(), "UNK")
	assert.Contains(Te, err.Error(), "UNL")
	r, err = Radii(atoms, 1.8)
	require.NoError(Te, err)
	assert.Equal(Te, 1.8, r[len(r)-1])
}

func TestByResidue(Te *testing.T) {
	atoms, _, err := Read(strings.NewReader(testPDB), &ReadOptions{HetAtm: true})
	require.NoError(Te, err)
	values := []float64{1, 2, 3, 4, 5, 6, 7}
	res, err := ByResidue(atoms, values)
	require.NoError(Te, err)
	require.Len(Te, res, 3)
	assert.Equal(Te, "A:ALA1", res[0].Label())
	assert.Equal(Te, 15.0, res[0].Value)
	assert.Equal(Te, 5, res[0].Atoms)
	assert.Equal(Te, "B:GLY2", res[1].Label())
	assert.Equal(Te, "B:ZN101", res[2].Label())
	assert.Equal(Te, 7.0, res[2].Value)
	_, err = ByResidue(atoms, values[:2])
	assert.Error(Te, err)
}

func TestWrite(Te *testing.T) {
	atoms, coords, err := Read(strings.NewReader(testPDB), &ReadOptions{HetAtm: true, Hydrogen: true})
	require.NoError(Te, err)
	values := make([]float64, len(atoms))
	for i := range values {
		values[i] = float64(i) * 10.5
	}
	var buf bytes.Buffer
	require.NoError(Te, Write(&buf, atoms, coords, values))
	assert.Contains(Te, buf.String(), "TER")
	atoms2, coords2, err := Read(&buf, &ReadOptions{HetAtm: true, Hydrogen: true})
	require.NoError(Te, err)
	assert.Equal(Te, atoms, atoms2)
	assert.Equal(Te, coords.All(), coords2.All())
	assert.Error(Te, Write(&buf, nil, coords, nil))
}
