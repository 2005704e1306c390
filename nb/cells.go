/*
 * cells.go, part of goSASA.
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

package nb

import (
	"fmt"
	"math"
	"slices"
)

const (
	maxForward = 14      //forward neighbors of a cell, itself included.
	maxCells   = 1 << 62 //the linear cell index must fit in an int.
)

// Cell is one box of a CellList.
type Cell struct {
	atoms   []int //indexes of the coordinates in the cell
	forward []int //indexes of the occupied forward neighbor cells, including the cell itself
}

// Atoms returns the indexes of the coordinates that fall inside the cell.
func (C *Cell) Atoms() []int {
	return C.atoms
}

// Forward returns the indexes of the occupied "forward" neighbors of the cell,
// the cell itself included, and always first.
func (C *Cell) Forward() []int {
	return C.forward
}

// CellList is a Verlet cell list: the bounding box of a set of coordinates
// divided in cubic cells of side d. Only the cells containing at least one
// coordinate are stored, so the memory used doesn't depend on how spread
// the coordinates are.
type CellList struct {
	cells      map[int]*Cell
	occupied   []int //indexes of the non-empty cells, in increasing order
	nx, ny, nz int
	d          float64
	min, max   [3]float64
}

// NewCellList returns a cell list with cells of side cellsize containing the
// coordinates in xyz, given as a flat slice (x0,y0,z0,x1,y1,z1...).
func NewCellList(xyz []float64, cellsize float64) (*CellList, error) {
	if len(xyz) == 0 || len(xyz)%3 != 0 {
		return nil, fmt.Errorf("goSASA/nb: Invalid coordinate slice of length %d", len(xyz))
	}
	if !(cellsize > 0) || math.IsInf(cellsize, 1) {
		return nil, fmt.Errorf("goSASA/nb: Cell size must be positive and finite, got %g", cellsize)
	}
	c := &CellList{d: cellsize, cells: make(map[int]*Cell)}
	if err := c.bounds(xyz); err != nil {
		return nil, err
	}
	c.fill(xyz)
	slices.Sort(c.occupied)
	for _, i := range c.occupied {
		c.fillForward(i)
	}
	return c, nil
}

// Len returns the total number of cells in the grid, empty ones included.
func (c *CellList) Len() int {
	return c.nx * c.ny * c.nz
}

// Occupied returns the indexes of the cells with at least one coordinate,
// in increasing order. The slice must not be modified.
func (c *CellList) Occupied() []int {
	return c.occupied
}

// Dims returns the number of cells along each axis.
func (c *CellList) Dims() (nx, ny, nz int) {
	return c.nx, c.ny, c.nz
}

// CellSize returns the side of the cells.
func (c *CellList) CellSize() float64 {
	return c.d
}

// Cell returns the ith cell, or nil if the cell is empty.
func (c *CellList) Cell(i int) *Cell {
	return c.cells[i]
}

// Finds the (padded) bounding box of the coordinates and the grid dimensions.
// The box is padded by half a cell on every side, so no coordinate sits on
// the grid boundary.
func (c *CellList) bounds(xyz []float64) error {
	for k := 0; k < 3; k++ {
		c.min[k] = xyz[k]
		c.max[k] = xyz[k]
	}
	for i := 3; i < len(xyz); i += 3 {
		for k := 0; k < 3; k++ {
			c.min[k] = math.Min(c.min[k], xyz[i+k])
			c.max[k] = math.Max(c.max[k], xyz[i+k])
		}
	}
	var n [3]float64
	for k := 0; k < 3; k++ {
		if math.IsNaN(c.min[k]) || math.IsInf(c.min[k], 0) || math.IsNaN(c.max[k]) || math.IsInf(c.max[k], 0) {
			return fmt.Errorf("goSASA/nb: Non-finite coordinates")
		}
		c.min[k] -= c.d / 2
		c.max[k] += c.d / 2
		n[k] = math.Ceil((c.max[k] - c.min[k]) / c.d)
	}
	if n[0]*n[1]*n[2] > maxCells {
		return fmt.Errorf("goSASA/nb: Grid of %gx%gx%g cells can't be indexed", n[0], n[1], n[2])
	}
	c.nx, c.ny, c.nz = int(n[0]), int(n[1]), int(n[2])
	return nil
}

// index maps the integer cell coordinates to the linear cell index.
// It requires 0<=ix<nx, 0<=iy<ny and 0<=iz<nz, and is x-fastest:
// index = ix + nx*(iy + ny*iz).
func (c *CellList) index(ix, iy, iz int) int {
	if ix < 0 || ix >= c.nx || iy < 0 || iy >= c.ny || iz < 0 || iz >= c.nz {
		panic(fmt.Sprintf("goSASA/nb: cell (%d,%d,%d) out of range (%d,%d,%d)", ix, iy, iz, c.nx, c.ny, c.nz))
	}
	return ix + c.nx*(iy+c.ny*iz)
}

// cellCoords is the inverse of index.
func (c *CellList) cellCoords(i int) (ix, iy, iz int) {
	ix = i % c.nx
	iy = (i / c.nx) % c.ny
	iz = i / (c.nx * c.ny)
	return ix, iy, iz
}

// clamps i to [0,n).
func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// CellIndex returns the index of the cell containing the point x, y, z.
// Points outside the grid are assigned to the closest border cell.
func (c *CellList) CellIndex(x, y, z float64) int {
	ix := clamp(int((x-c.min[0])/c.d), c.nx)
	iy := clamp(int((y-c.min[1])/c.d), c.ny)
	iz := clamp(int((z-c.min[2])/c.d), c.nz)
	return c.index(ix, iy, iz)
}

// assigns each coordinate to its cell, creating the cells as needed.
func (c *CellList) fill(xyz []float64) {
	for i := 0; i < len(xyz)/3; i++ {
		idx := c.CellIndex(xyz[3*i], xyz[3*i+1], xyz[3*i+2])
		cell, ok := c.cells[idx]
		if !ok {
			cell = new(Cell)
			c.cells[idx] = cell
			c.occupied = append(c.occupied, idx)
		}
		cell.atoms = append(cell.atoms, i)
	}
}

// forwardOffset returns true if the offset (di,dj,dk) is lexicographically
// positive, with z the most significant axis. Of the two offsets o and -o,
// exactly one is forward, so each unordered pair of adjacent cells
// is visited only once.
func forwardOffset(di, dj, dk int) bool {
	if dk != 0 {
		return dk > 0
	}
	if dj != 0 {
		return dj > 0
	}
	return di > 0
}

// Fills the neighbor list of the cell with index ic. Only occupied "forward"
// neighbors (and the cell itself) are considered. The 3x3x3 stencil is clamped
// at the edges of the grid.
func (c *CellList) fillForward(ic int) {
	cell := c.cells[ic]
	ix, iy, iz := c.cellCoords(ic)
	cell.forward = make([]int, 0, maxForward)
	cell.forward = append(cell.forward, ic)
	for k := iz - 1; k <= iz+1; k++ {
		if k < 0 || k >= c.nz {
			continue
		}
		for j := iy - 1; j <= iy+1; j++ {
			if j < 0 || j >= c.ny {
				continue
			}
			for i := ix - 1; i <= ix+1; i++ {
				if i < 0 || i >= c.nx || !forwardOffset(i-ix, j-iy, k-iz) {
					continue
				}
				if jc := c.index(i, j, k); c.cells[jc] != nil {
					cell.forward = append(cell.forward, jc)
				}
			}
		}
	}
}

// EachPair calls f once for every unordered pair of occupied cells that can hold
// coordinates in contact, including each occupied cell paired with itself.
// The cells are visited in increasing index order.
func (c *CellList) EachPair(f func(ci, cj *Cell)) {
	for _, ic := range c.occupied {
		ci := c.cells[ic]
		for _, jc := range ci.forward {
			f(ci, c.cells[jc])
		}
	}
}
