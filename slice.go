/*
 * slice.go, part of goSASA.
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

package sasa

import (
	"math"

	"github.com/rmera/gosasa/nb"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// lrCalc contains the data shared, read-only, by all the workers
// of a calculation.
type lrCalc struct {
	xyz     []float64 //flat coordinates
	radii   []float64 //atomic radii plus probe
	nb      *nb.List
	delta   float64 //slice thickness
	minZ    float64 //position of the first slice
	maxZ    float64
	nslices int
}

// newLRCalc sets the slice range for the given system. The first slice
// is half a thickness above the lowest point of any sphere, and slices
// are added until the highest point.
func newLRCalc(xyz, radii []float64, nbl *nb.List, delta float64) *lrCalc {
	n := len(radii)
	z := make([]float64, n)
	for i := range z {
		z[i] = xyz[3*i+2]
	}
	maxr := floats.Max(radii)
	lr := &lrCalc{
		xyz:   xyz,
		radii: radii,
		nb:    nbl,
		delta: delta,
		minZ:  floats.Min(z) - maxr + 0.5*delta,
		maxZ:  floats.Max(z) + maxr,
	}
	lr.nslices = sliceCount(lr.minZ, lr.maxZ, delta)
	return lr
}

// sliceCount returns how many planes z_k=min+k*delta satisfy z_k<max.
func sliceCount(min, max, delta float64) int {
	if !(max > min) {
		return 0
	}
	n := int(math.Ceil((max - min) / delta))
	for n > 0 && min+float64(n-1)*delta >= max {
		n--
	}
	for min+float64(n)*delta < max {
		n++
	}
	return n
}

// sliceZ returns the z coordinate of the kth slice.
func (lr *lrCalc) sliceZ(k int) float64 {
	return lr.minZ + float64(k)*lr.delta
}

// run adds the contributions of the slices first to last-1 to sasa.
func (lr *lrCalc) run(sasa []float64, first, last int) {
	s := newSlicer(lr)
	for k := first; k < last; k++ {
		s.addSlice(lr.sliceZ(k), sasa)
	}
}

// parallel distributes the slices among the given number of goroutines.
// Each goroutine accumulates in its own slice, and the results are added
// once all of them are done. The last goroutine also takes the slices
// that remain when nslices is not divisible by threads.
func (lr *lrCalc) parallel(sasa []float64, threads int) {
	per := lr.nslices / threads
	partial := make([][]float64, threads)
	var g errgroup.Group
	for t := 0; t < threads; t++ {
		first := t * per
		last := first + per
		if t == threads-1 {
			last = lr.nslices
		}
		partial[t] = make([]float64, len(sasa))
		out := partial[t]
		g.Go(func() error {
			lr.run(out, first, last)
			return nil
		})
	}
	g.Wait() //the workers never return errors.
	for _, p := range partial {
		floats.Add(sasa, p)
	}
}

// slicer is the workspace of one goroutine. The slices of arrays are
// reused from one slice to the next.
type slicer struct {
	lr    *lrCalc
	local []int //atom index -> index in the current slice, or -1
	atoms []int //index in the slice -> atom index
	r     []float64
	dr    []float64
	nbs   [][]circleNeighbor
	arcs  arcBuffers
}

func newSlicer(lr *lrCalc) *slicer {
	s := &slicer{lr: lr, local: make([]int, len(lr.radii))}
	for i := range s.local {
		s.local[i] = -1
	}
	return s
}

// sliceCircle returns the radius r of the circle where a plane at distance d from
// the center cuts a sphere of radius R, and the width dr of the surface
// strip it represents, for slices of thickness 2*half. ok is false if the plane
// doesn't cut the sphere, or the circle is too small to contribute.
func sliceCircle(R, d, half float64) (r, dr float64, ok bool) {
	if d >= R {
		return 0, 0, false
	}
	r = math.Sqrt(R*R - d*d)
	dr = R / r * (half + math.Min(half, R-d))
	if !(r > 0) || math.IsNaN(dr) || math.IsInf(dr, 0) {
		return 0, 0, false
	}
	return r, dr, true
}

// addSlice adds to sasa the contribution of the slice at height z.
func (s *slicer) addSlice(z float64, sasa []float64) {
	lr := s.lr
	half := lr.delta / 2
	s.atoms, s.r, s.dr = s.atoms[:0], s.r[:0], s.dr[:0]
	for i, ri := range lr.radii {
		r, dr, ok := sliceCircle(ri, math.Abs(lr.xyz[3*i+2]-z), half)
		if !ok {
			continue
		}
		s.local[i] = len(s.atoms)
		s.atoms = append(s.atoms, i)
		s.r = append(s.r, r)
		s.dr = append(s.dr, dr)
	}
	if len(s.atoms) == 0 {
		return
	}
	for len(s.nbs) < len(s.atoms) {
		s.nbs = append(s.nbs, nil)
	}
	//neighbor list restricted to the slice.
	for a, i := range s.atoms {
		list := s.nbs[a][:0]
		for _, v := range lr.nb.Neighbors(i) {
			if j := s.local[v.Index]; j >= 0 {
				list = append(list, circleNeighbor{j: j, dx: v.DX, dy: v.DY, d: v.XYD})
			}
		}
		s.nbs[a] = list
	}
	for a, i := range s.atoms {
		sasa[i] += exposedArc(a, s.r, s.nbs[a], &s.arcs) * s.r[a] * s.dr[a]
	}
	for _, i := range s.atoms {
		s.local[i] = -1
	}
}
