/*
 * pdb.go, part of goSASA.
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

/*
Package pdb reads the atoms of a PDB file, and assigns them the radii
needed for a SASA calculation. It also adds per-atom values by residue and
writes them back to PDB files as B-factors.

Only the ATOM and HETATM records of the first model are read.
*/
package pdb

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	v3 "github.com/rmera/gosasa/v3"
	"go.uber.org/multierr"
)

// Atom contains the information of an ATOM or HETATM record
// other than the coordinates.
type Atom struct {
	Name    string
	Id      int
	AltLoc  byte
	Molname string //residue name
	Chain   byte
	Molid   int  //residue number
	ICode   byte //insertion code
	Symbol  string
	Het     bool //is HETATM in the pdb file?
}

// ReadOptions control which atoms are read.
// The zero value (and nil) reads only non-hydrogen ATOM records.
type ReadOptions struct {
	HetAtm   bool //read HETATM records
	Hydrogen bool //read hydrogens (and deuteriums)
}

// Read reads the atoms of the first model in a PDB file from pdb. Only the first
// alternative location of each atom is kept. It returns the atoms and their coordinates.
func Read(pdb io.Reader, opts *ReadOptions) ([]*Atom, *v3.Matrix, error) {
	if opts == nil {
		opts = &ReadOptions{}
	}
	read := make([]*Atom, 0, 1024)
	coords := make([]float64, 0, 3*1024)
	buf := bufio.NewReader(pdb)
	for nline := 1; ; nline++ {
		line, err := buf.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, nil, fmt.Errorf("goSASA/pdb: Error reading line %d: %w", nline, err)
		}
		if strings.HasPrefix(line, "ENDMDL") || strings.HasPrefix(line, "END ") || strings.TrimSpace(line) == "END" {
			break
		}
		het := strings.HasPrefix(line, "HETATM")
		if (het && opts.HetAtm) || strings.HasPrefix(line, "ATOM  ") {
			at, c, perr := parseAtom(line, nline)
			if perr != nil {
				return nil, nil, perr
			}
			read = append(read, at)
			coords = append(coords, c[:]...)
		}
		if err == io.EOF {
			break
		}
	}
	var altloc byte = ' ' //the first alternative location found
	kept := make([]int, 0, len(read))
	atoms := make([]*Atom, 0, len(read))
	for i, at := range read {
		if keep(at, opts, &altloc) {
			kept = append(kept, i)
			atoms = append(atoms, at)
		}
	}
	if len(atoms) == 0 {
		return nil, nil, fmt.Errorf("goSASA/pdb: No atoms read")
	}
	all, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, nil, err
	}
	m := v3.Zeros(len(kept))
	if err := m.SomeVecsSafe(all, kept); err != nil {
		return nil, nil, err
	}
	return atoms, m, nil
}

// FileRead opens the PDB file name and reads it with Read. Files
// with the .gz and .zst extensions are decompressed with gzip and
// zstandard, respectively.
func FileRead(name string, opts *ReadOptions) ([]*Atom, *v3.Matrix, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	var r io.Reader = bufio.NewReader(f)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("goSASA/pdb: Can't decompress %s: %w", name, err)
		}
		defer gz.Close()
		r = gz
	case ".zst":
		zs, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("goSASA/pdb: Can't decompress %s: %w", name, err)
		}
		defer zs.Close()
		r = zs
	}
	atoms, coords, err := Read(r, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", name, err)
	}
	return atoms, coords, nil
}

// keep returns true if the atom passes the filters in opts. altloc is set to the
// first alternative location found.
func keep(at *Atom, opts *ReadOptions, altloc *byte) bool {
	if !opts.Hydrogen && (at.Symbol == "H" || at.Symbol == "D") {
		return false
	}
	if at.AltLoc == ' ' {
		return true
	}
	if *altloc == ' ' {
		*altloc = at.AltLoc
	}
	return at.AltLoc == *altloc
}

// parseAtom parses an ATOM or HETATM line, returning the atom and the
// coordinates. All the conversion errors in the line are reported.
func parseAtom(line string, nline int) (*Atom, [3]float64, error) {
	var c [3]float64
	line = strings.TrimRight(line, "\r\n")
	if len(line) < 54 {
		return nil, c, fmt.Errorf("goSASA/pdb: Line %d is too short for an atom record", nline)
	}
	at := new(Atom)
	var err, e error
	at.Het = strings.HasPrefix(line, "HETATM")
	at.Id, e = strconv.Atoi(strings.TrimSpace(line[6:11]))
	err = multierr.Append(err, e)
	at.Name = strings.TrimSpace(line[12:16])
	at.AltLoc = line[16]
	at.Molname = strings.TrimSpace(line[17:20])
	at.Chain = line[21]
	at.Molid, e = strconv.Atoi(strings.TrimSpace(line[22:26]))
	err = multierr.Append(err, e)
	at.ICode = line[26]
	for i := range c {
		c[i], e = strconv.ParseFloat(strings.TrimSpace(line[30+8*i:38+8*i]), 64)
		err = multierr.Append(err, e)
	}
	if err != nil {
		return nil, c, fmt.Errorf("goSASA/pdb: Can't parse line %d: %w", nline, err)
	}
	if len(line) >= 78 {
		at.Symbol = normalSymbol(line[76:78])
	}
	if at.Symbol == "" {
		at.Symbol = symbolFromName(at.Name, at.Het)
	}
	return at, c, nil
}
