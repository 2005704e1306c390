/*
 * doc.go, part of goSASA.
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
Package sasa calculates the solvent accessible surface area (SASA) of
each atom in a molecule, using the algorithm of Lee & Richards
(J. Mol. Biol. 55:379-400, 1971).

Every atom is a sphere with its van der Waals radius plus the radius of
the solvent probe. The molecule is cut in slices of a given thickness
perpendicular to the z axis. In each slice, every sphere becomes a circle,
and the part of that circle not covered by the circles of the neighboring
atoms is exposed. The exposed arc length, times the slice thickness (with a
correction for the slope of the sphere), added over all slices, is the SASA
of the atom.

	**goSASA Capabilities**

	Lee & Richards SASA per atom, with a configurable probe radius and
	slice thickness. The slices can be distributed among several goroutines.
	The result does not depend (beyond floating point rounding) on the
	number of goroutines.

	Cell-list based neighbor lists (package nb).

	Reads PDB files, plain or gzip-compressed, and assigns van der Waals
	radii from the element (package pdb).

	Per-residue SASA and bar plots of it (packages pdb and sasaplot).

	A command line tool, lrsasa (cmd/lrsasa).

A minimal program:

	atoms, coords, err := pdb.FileRead("protein.pdb", nil)
	if err != nil {
		panic(err)
	}
	radii, err := pdb.Radii(atoms, 0)
	if err != nil {
		panic(err)
	}
	area, err := sasa.SASA(coords, radii)
	if err != nil {
		panic(err)
	}
	fmt.Println(floats.Sum(area))
*/
package sasa
