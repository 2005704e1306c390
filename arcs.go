/*
 * arcs.go, part of goSASA.
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
)

const twoPi = 2 * math.Pi

// arc is an angular interval on a circle: [center-half, center+half].
// The center is in [-pi,pi].
type arc struct {
	half   float64
	center float64
}

// circleNeighbor is a circle in the same slice as the one being
// studied, which may cover part of it.
type circleNeighbor struct {
	j      int     //index of the neighbor circle in the slice
	dx, dy float64 //position relative to the studied circle
	d      float64 //distance between the centers
}

// arcBuffers holds the storage for the arcs of one circle, so it can be
// reused from circle to circle.
type arcBuffers struct {
	a, b []arc
}

// exposedArc returns the length, in radians, of the part of the circle i
// (of radius r[i]) not covered by the circles in nbs. The result is in [0, 2*pi].
// r holds the radii of all circles in the slice, indexed by circleNeighbor.j.
// If two circles are identical, the one with the lower index is considered
// exposed and the other buried.
func exposedArc(i int, r []float64, nbs []circleNeighbor, buf *arcBuffers) float64 {
	ri := r[i]
	arcs := buf.a[:0]
	for _, v := range nbs {
		rj := r[v.j]
		d := v.d
		if d >= ri+rj {
			continue
		}
		if d+ri < rj {
			return 0 //i is inside j
		}
		if d+rj < ri {
			continue //j is inside i
		}
		if d == 0 {
			if v.j < i {
				return 0
			}
			continue
		}
		cos := (ri*ri + d*d - rj*rj) / (2 * ri * d)
		arcs = append(arcs, arc{
			half:   math.Acos(math.Max(-1, math.Min(1, cos))),
			center: math.Atan2(v.dy, v.dx),
		})
	}
	buf.a = arcs
	return exposed(buf)
}

// exposed merges the covering arcs in buf.a until no two of them overlap,
// and returns what is left of the circle.
func exposed(buf *arcBuffers) float64 {
	arcs, work := buf.a, buf.b
	for len(arcs) > 1 {
		next, merged, buried := mergePass(arcs, work)
		if buried {
			return 0
		}
		//the old set becomes the storage of the next pass
		work = arcs
		arcs = next
		if !merged {
			break
		}
	}
	buf.a, buf.b = arcs, work
	covered := 0.0
	for _, v := range arcs {
		covered += 2 * v.half
	}
	return math.Max(0, math.Min(twoPi, twoPi-covered))
}

// mergePass goes once over in, merging each interval with all the
// intervals it overlaps. It doesn't modify in; the result is written in
// the storage of work. merged is false if no two intervals overlapped,
// and buried is true if a merged interval covers the whole circle.
func mergePass(in, work []arc) (out []arc, merged, buried bool) {
	out = append(work[:0], in...)
	for i := range out {
		if out[i].half < 0 {
			continue
		}
		for j := range out {
			if j == i || out[j].half < 0 {
				continue
			}
			u, ok := union(out[i], out[j])
			if !ok {
				continue
			}
			if u.half > math.Pi {
				return nil, true, true
			}
			out[i] = u
			out[j].half = -1 //absorbed
			merged = true
		}
	}
	n := 0
	for _, v := range out {
		if v.half >= 0 {
			out[n] = v
			n++
		}
	}
	return out[:n], merged, false
}

// union returns the smallest interval containing a and b, and true,
// if a and b overlap. Otherwise it returns false.
func union(a, b arc) (arc, bool) {
	sep := math.Remainder(b.center-a.center, twoPi)
	if math.Abs(sep) > a.half+b.half {
		return arc{}, false
	}
	bc := a.center + sep //b, unwrapped next to a
	inf := math.Min(a.center-a.half, bc-b.half)
	sup := math.Max(a.center+a.half, bc+b.half)
	return arc{
		half:   (sup - inf) / 2,
		center: math.Remainder((sup+inf)/2, twoPi),
	}, true
}
