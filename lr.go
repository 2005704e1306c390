/*
 * lr.go, part of goSASA.
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
	"fmt"
	"math"
	"runtime"

	"github.com/rmera/gosasa/nb"
)

// LeeRichards calculates the SASA of each atom with coordinates xyz and
// radii atomRadii, using a solvent probe of radius probe and slices of
// thickness delta, and puts the results in sasa, which must have one element per atom.
// The slices are distributed among threads goroutines.
// If the calculation can't be carried out, Failure is returned, the reason is
// sent to rep, and sasa is not modified. If more than one thread is requested
// but the package was built without thread support, the calculation is done
// with one thread and Warning is returned. A nil rep discards the messages.
func LeeRichards(sasa []float64, xyz Coorder, atomRadii []float64, probe, delta float64, threads int, rep Reporter) Status {
	if rep == nil {
		rep = NewZapReporter(nil)
	}
	n := 0
	if xyz != nil {
		n = xyz.Len()
	}
	if n == 0 {
		rep.Fail("Attempting Lee & Richards calculation on empty coordinates")
		return Failure
	}
	if len(atomRadii) != n {
		rep.Fail(fmt.Sprintf("Got %d radii for %d atoms", len(atomRadii), n))
		return Failure
	}
	if len(sasa) != n {
		rep.Fail(fmt.Sprintf("Output slice has %d elements for %d atoms", len(sasa), n))
		return Failure
	}
	if !(delta > 0) || math.IsInf(delta, 1) {
		rep.Fail(fmt.Sprintf("Slice width must be positive and finite, got %g", delta))
		return Failure
	}
	if !(probe >= 0) || math.IsInf(probe, 1) {
		rep.Fail(fmt.Sprintf("Probe radius must be non-negative and finite, got %g", probe))
		return Failure
	}
	if threads < 1 {
		rep.Fail(fmt.Sprintf("Number of threads must be at least 1, got %d", threads))
		return Failure
	}
	all := xyz.All()
	if len(all) != 3*n {
		rep.Fail(fmt.Sprintf("Coordinate source gives %d values for %d atoms", len(all), n))
		return Failure
	}
	radii := make([]float64, n)
	for i, r := range atomRadii {
		if !(r >= 0) || math.IsInf(r, 1) {
			rep.Fail(fmt.Sprintf("Invalid radius %g for atom %d", r, i))
			return Failure
		}
		radii[i] = r + probe
	}
	nbl, err := nb.New(all, radii)
	if err != nil {
		rep.Fail(err.Error())
		return Failure
	}
	status := Success
	if threads > 1 && !threadsEnabled {
		rep.Warn(fmt.Sprintf("Built without thread support, using 1 thread instead of %d", threads))
		threads = 1
		status = Warning
	}
	lr := newLRCalc(all, radii, nbl, delta)
	for i := range sasa {
		sasa[i] = 0
	}
	if threads == 1 || lr.nslices < 2 {
		lr.run(sasa, 0, lr.nslices)
	} else {
		lr.parallel(sasa, threads)
	}
	return status
}

// Options contains the parameters of a SASA calculation.
type Options struct {
	probe      float64
	resolution float64
	cpus       int
	reporter   Reporter
}

// DefaultOptions returns the default options: a water-sized probe (1.4 A),
// slices of 0.25 A and one goroutine per CPU. The messages are discarded.
func DefaultOptions() *Options {
	return &Options{
		probe:      1.4,
		resolution: 0.25,
		cpus:       runtime.NumCPU(),
		reporter:   NewZapReporter(nil),
	}
}

// Probe sets the probe radius to the first given value, if
// non-negative. It always returns the current value.
func (O *Options) Probe(p ...float64) float64 {
	if len(p) > 0 && p[0] >= 0 {
		O.probe = p[0]
	}
	return O.probe
}

// Resolution sets the slice thickness to the first given value, if
// positive. It always returns the current value.
func (O *Options) Resolution(d ...float64) float64 {
	if len(d) > 0 && d[0] > 0 {
		O.resolution = d[0]
	}
	return O.resolution
}

// Cpus sets the number of goroutines used to the first given value, if
// positive. It always returns the current value.
func (O *Options) Cpus(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.cpus = n[0]
	}
	return O.cpus
}

// Reporter sets the Reporter that gets the warnings and failures,
// if a non-nil one is given. It always returns the current value.
func (O *Options) Reporter(r ...Reporter) Reporter {
	if len(r) > 0 && r[0] != nil {
		O.reporter = r[0]
	}
	return O.reporter
}

// SASA returns the solvent accessible surface area of each atom with
// coordinates xyz and van der Waals radii radii. Only the first element of
// options is used, if none is given, DefaultOptions() is used.
func SASA(xyz Coorder, radii []float64, options ...*Options) ([]float64, error) {
	o := DefaultOptions()
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	}
	n := 0
	if xyz != nil {
		n = xyz.Len()
	}
	rep := &recorder{Reporter: o.Reporter()}
	if rep.Reporter == nil {
		rep.Reporter = NewZapReporter(nil)
	}
	ret := make([]float64, n)
	if LeeRichards(ret, xyz, radii, o.probe, o.resolution, o.cpus, rep) == Failure {
		return nil, &Error{fmt.Sprintf("goSASA: %s", rep.failure), []string{"SASA"}, true}
	}
	return ret, nil
}
