/*
 * residues.go, part of goSASA.
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
	"fmt"
	"io"
	"strings"

	sasa "github.com/rmera/gosasa"
	v3 "github.com/rmera/gosasa/v3"
	"go.uber.org/multierr"
)

// elements with two-letter symbols that can appear as the
// whole name of a HETATM (usually an ion).
var twoLetter = map[string]string{
	"CL": "Cl",
	"CU": "Cu",
	"CO": "Co",
	"CA": "Ca",
	"NA": "Na",
	"MG": "Mg",
	"MN": "Mn",
	"FE": "Fe",
	"ZN": "Zn",
	"SE": "Se",
	"BR": "Br",
	"CR": "Cr",
	"SI": "Si",
	"BE": "Be",
}

// normalSymbol returns the symbol s with the first letter capitalized
// and the rest in lowercase. It returns the empty string if s has no letters.
func normalSymbol(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s[:1], "0123456789+-") {
		return ""
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// symbolFromName guesses the element from the PDB name of an atom.
// Two-letter elements are only considered for HETATM records whose name
// is exactly the symbol, so a CA in a protein is a carbon. Returns an empty
// string if no guess can be made.
func symbolFromName(name string, het bool) string {
	n := strings.ToUpper(strings.TrimSpace(name))
	if het {
		if s, ok := twoLetter[n]; ok {
			return s
		}
	}
	n = strings.TrimLeft(n, "0123456789")
	if n == "" {
		return ""
	}
	switch n[0] {
	case 'H', 'D', 'C', 'N', 'O', 'S', 'P', 'F', 'I', 'K':
		return n[:1]
	}
	return ""
}

// Radii returns the van der Waals radius of each atom. Atoms with an element
// without a known radius get the radius unknown, if positive. Otherwise, an
// error listing all the problematic atoms is returned.
func Radii(atoms []*Atom, unknown float64) ([]float64, error) {
	ret := make([]float64, len(atoms))
	var err error
	for i, at := range atoms {
		r, ok := sasa.VdwRadius(at.Symbol)
		if !ok {
			if unknown <= 0 {
				err = multierr.Append(err, fmt.Errorf("atom %d (%s %s%d) has unknown element %q", i, at.Name, at.Molname, at.Molid, at.Symbol))
				continue
			}
			r = unknown
		}
		ret[i] = r
	}
	if err != nil {
		return nil, fmt.Errorf("goSASA/pdb: Can't assign radii: %w", err)
	}
	return ret, nil
}

// ResidueValue is the sum of a per-atom value over the atoms of one residue.
type ResidueValue struct {
	Chain   byte
	Molid   int
	ICode   byte
	Molname string
	Atoms   int //number of atoms added
	Value   float64
}

// Label returns a short name for the residue, like A:ALA12.
func (R *ResidueValue) Label() string {
	ret := fmt.Sprintf("%c:%s%d", R.Chain, R.Molname, R.Molid)
	if R.ICode != ' ' && R.ICode != 0 {
		ret += string(R.ICode)
	}
	return ret
}

// ByResidue adds the values of the atoms of each residue. A residue
// is identified by its chain, number, insertion code and name. The residues are returned
// in the order they first appear in atoms.
func ByResidue(atoms []*Atom, values []float64) ([]*ResidueValue, error) {
	if len(atoms) != len(values) {
		return nil, fmt.Errorf("goSASA/pdb: %d values for %d atoms", len(values), len(atoms))
	}
	type key struct {
		chain   byte
		molid   int
		icode   byte
		molname string
	}
	index := make(map[key]int)
	ret := make([]*ResidueValue, 0)
	for i, at := range atoms {
		k := key{at.Chain, at.Molid, at.ICode, at.Molname}
		j, ok := index[k]
		if !ok {
			j = len(ret)
			index[k] = j
			ret = append(ret, &ResidueValue{Chain: at.Chain, Molid: at.Molid, ICode: at.ICode, Molname: at.Molname})
		}
		ret[j].Atoms++
		ret[j].Value += values[i]
	}
	return ret, nil
}

// Write writes the atoms with coordinates coords to out as a PDB file, with
// the given per-atom values in the B-factor column. If values is nil, the B-factors are 0.
func Write(out io.Writer, atoms []*Atom, coords *v3.Matrix, values []float64) error {
	if len(atoms) == 0 {
		return fmt.Errorf("goSASA/pdb: No atoms to write")
	}
	if coords.NVecs() != len(atoms) || (values != nil && len(values) != len(atoms)) {
		return fmt.Errorf("goSASA/pdb: Can't write %d atoms with %d coordinates and %d values", len(atoms), coords.NVecs(), len(values))
	}
	if _, err := fmt.Fprint(out, "REMARK     WRITTEN WITH GOSASA\n"); err != nil {
		return err
	}
	chainprev := atoms[0].Chain //this is to know when the chain changes.
	for i, at := range atoms {
		if at.Chain != chainprev {
			if _, err := fmt.Fprintln(out, "TER"); err != nil {
				return err
			}
			chainprev = at.Chain
		}
		first := "ATOM"
		if at.Het {
			first = "HETATM"
		}
		name := at.Name
		if len(name) < 4 {
			name = " " + name //the first column is for 2-letter elements
		}
		bfac := 0.0
		if values != nil {
			bfac = values[i]
		}
		x, y, z := coords.XYZ(i)
		_, err := fmt.Fprintf(out, "%-6s%5d %-4s%c%3s %c%4d%c   %8.3f%8.3f%8.3f%6.2f%6.2f          %2s\n",
			first, at.Id, name, altLocOrBlank(at.AltLoc), at.Molname, at.Chain, at.Molid, altLocOrBlank(at.ICode), x, y, z, 1.0, bfac, strings.ToUpper(at.Symbol))
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(out, "END\n")
	return err
}

func altLocOrBlank(b byte) byte {
	if b == 0 {
		return ' '
	}
	return b
}
