/*
 * nb.go, part of goSASA.
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
Package nb finds the pairs of spheres (atoms) that overlap. The
coordinates are distributed in a cell list with cells twice as large as the
largest radius, so only atoms in the same or in adjacent cells can be in contact.
Each unordered pair of adjacent cells is compared once.

The resulting List is symmetric, and for each contact caches the
x and y separation and the distance in the xy plane, which is what the
Lee & Richards slices need.
*/
package nb

import (
	"fmt"
	"math"
)

// initial capacity of a neighbor list.
const nbChunk = 32

// Neighbor is one entry of the neighbor list of an atom.
type Neighbor struct {
	Index int     //index of the neighbor atom
	DX    float64 //x(neighbor)-x(atom)
	DY    float64 //y(neighbor)-y(atom)
	XYD   float64 //distance in the xy plane
}

// List contains, for each atom, the atoms it overlaps with.
// It is built once and only read afterwards, so it is safe for concurrent use.
type List struct {
	nb [][]Neighbor
}

// New returns the neighbor list for the spheres with centers xyz (flat slice,
// x0,y0,z0,x1...) and the given radii. Two spheres are neighbors if the distance
// between their centers is smaller than the sum of their radii.
func New(xyz, radii []float64) (*List, error) {
	n := len(xyz) / 3
	if n == 0 || len(xyz)%3 != 0 {
		return nil, fmt.Errorf("goSASA/nb: Invalid coordinate slice of length %d", len(xyz))
	}
	if len(radii) != n {
		return nil, fmt.Errorf("goSASA/nb: %d radii given for %d coordinates", len(radii), n)
	}
	maxr := 0.0
	for i, r := range radii {
		if r < 0 || math.IsNaN(r) || math.IsInf(r, 0) {
			return nil, fmt.Errorf("goSASA/nb: Invalid radius %g for atom %d", r, i)
		}
		maxr = math.Max(maxr, r)
	}
	c, err := NewCellList(xyz, 2*maxr)
	if err != nil {
		return nil, err
	}
	l := &List{nb: make([][]Neighbor, n)}
	c.EachPair(func(ci, cj *Cell) {
		l.cellPair(xyz, radii, ci, cj)
	})
	return l, nil
}

// Len returns the number of atoms in the list.
func (l *List) Len() int {
	return len(l.nb)
}

// NN returns the number of neighbors of atom i.
func (l *List) NN(i int) int {
	return len(l.nb[i])
}

// Neighbors returns the neighbors of atom i in the order they were found.
// The returned slice must not be modified.
func (l *List) Neighbors(i int) []Neighbor {
	return l.nb[i]
}

// Contact returns true if atoms i and j are neighbors. Panics if either index
// is out of range.
func (l *List) Contact(i, j int) bool {
	if i < 0 || i >= len(l.nb) || j < 0 || j >= len(l.nb) {
		panic(fmt.Sprintf("goSASA/nb: Contact(%d,%d) out of range for %d atoms", i, j, len(l.nb)))
	}
	for _, v := range l.nb[i] {
		if v.Index == j {
			return true
		}
	}
	return false
}

// Pairs returns the number of unordered contacts in the list.
func (l *List) Pairs() int {
	n := 0
	for _, v := range l.nb {
		n += len(v)
	}
	return n / 2
}

// adds the contact between i and j to both lists.
func (l *List) addPair(i, j int, dx, dy float64) {
	if i == j {
		panic("goSASA/nb: An atom can't be its own neighbor")
	}
	if l.nb[i] == nil {
		l.nb[i] = make([]Neighbor, 0, nbChunk)
	}
	if l.nb[j] == nil {
		l.nb[j] = make([]Neighbor, 0, nbChunk)
	}
	d := math.Sqrt(dx*dx + dy*dy)
	l.nb[i] = append(l.nb[i], Neighbor{Index: j, DX: dx, DY: dy, XYD: d})
	l.nb[j] = append(l.nb[j], Neighbor{Index: i, DX: -dx, DY: -dy, XYD: d})
}

// Records all contacts between the atoms of cells ci and cj.
// When ci and cj are the same cell, only distinct pairs are compared.
func (l *List) cellPair(xyz, radii []float64, ci, cj *Cell) {
	same := ci == cj
	for i, ia := range ci.atoms {
		ri := radii[ia]
		xi, yi, zi := xyz[3*ia], xyz[3*ia+1], xyz[3*ia+2]
		j0 := 0
		if same {
			j0 = i + 1
		}
		for _, ja := range cj.atoms[j0:] {
			rj := radii[ja]
			cut2 := (ri + rj) * (ri + rj)
			dx := xyz[3*ja] - xi
			dy := xyz[3*ja+1] - yi
			dz := xyz[3*ja+2] - zi
			//most pairs are far apart along at least one axis.
			if dx*dx > cut2 || dy*dy > cut2 || dz*dz > cut2 {
				continue
			}
			if dx*dx+dy*dy+dz*dz < cut2 {
				l.addPair(ia, ja, dx, dy)
			}
		}
	}
}
