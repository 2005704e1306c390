/*
 * interfaces.go, part of goSASA.
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

// Coorder is anything that can provide the cartesian coordinates of a set of atoms.
// *v3.Matrix implements it.
type Coorder interface {

	//Returns the number of atoms
	Len() int

	//Returns the coordinates of the ith atom. Should panic if out of range.
	XYZ(i int) (x, y, z float64)

	//Returns all coordinates in a flat slice (x0,y0,z0,x1,y1,z1...)
	//The slice is only read.
	All() []float64
}

// Reporter receives the messages produced by a calculation.
// The calculation never logs by itself.
type Reporter interface {
	//Fail is called once, with the reason, when a calculation can't be carried out.
	Fail(msg string)

	//Warn is called when the calculation proceeds in a degraded way.
	Warn(msg string)
}

//Errors

// Error is the error type of the package. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error struct {
	message  string
	deco     []string
	critical bool
}

// Error returns a string with an error message.
func (err *Error) Error() string {
	return err.message
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice. If passed an empty string, it just returns the current value.
func (err *Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// Critical return whether the error is critical or it can be ignored
func (err *Error) Critical() bool { return err.critical }
