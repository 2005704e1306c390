/*
 * gonum.go, part of goSASA.
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

package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const cols int = 3

// Matrix is a set of vectors in 3D space. Within the package it is understood
// that a "vector" is a row vector, i.e. the cartesian coordinates of a point.
type Matrix struct {
	*mat.Dense
}

// Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

// NewMatrix generates and returns a Matrix with 3 columns from data.
// The slice is used as backing storage, not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	l := len(data)
	if l == 0 {
		return nil, &Error{"goSASA/v3: Empty data slice", []string{"NewMatrix"}, true}
	}
	if l%cols != 0 {
		return nil, &Error{fmt.Sprintf("goSASA/v3: Input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}, true}
	}
	return &Matrix{mat.NewDense(l/cols, cols, data)}, nil
}

// NVecs returns the number of vectors in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != cols {
		panic(ErrNotXx3Matrix)
	}
	return r
}

// Len is an alias for NVecs, so a Matrix can be used as a coordinate source.
func (F *Matrix) Len() int {
	return F.NVecs()
}

// XYZ returns the cartesian coordinates of the ith vector.
func (F *Matrix) XYZ(i int) (x, y, z float64) {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	return F.At(i, 0), F.At(i, 1), F.At(i, 2)
}

// All returns the coordinates as a flat row-major slice (x0,y0,z0,x1,...).
// When the underlying storage is contiguous the returned slice
// shares it, otherwise a copy is returned.
func (F *Matrix) All() []float64 {
	raw := F.RawMatrix()
	n := raw.Rows * cols
	if raw.Stride == cols {
		return raw.Data[:n:n]
	}
	ret := make([]float64, 0, n)
	for i := 0; i < raw.Rows; i++ {
		ret = append(ret, raw.Data[i*raw.Stride:i*raw.Stride+cols]...)
	}
	return ret
}

// SomeVecs puts in the receiver all the ith vectors of matrix A,
// where i are the numbers in clist. The vectors are in the same order
// than the clist.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	ar := A.NVecs()
	if F.NVecs() != len(clist) {
		panic(ErrShape)
	}
	for key, val := range clist {
		if val < 0 || val >= ar {
			panic(ErrIndexOutOfRange)
		}
		for j := 0; j < cols; j++ {
			F.Set(key, j, A.At(val, j))
		}
	}
}

// SomeVecsSafe is like SomeVecs, but returns an error instead of panicking.
func (F *Matrix) SomeVecsSafe(A *Matrix, clist []int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			switch e := r.(type) {
			case PanicMsg:
				err = &Error{string(e), []string{"SomeVecsSafe"}, true}
			case mat.Error:
				err = &Error{fmt.Sprintf("goSASA/v3: Error in a gonum function: %s", e), []string{"SomeVecsSafe"}, true}
			default:
				panic(r)
			}
		}
	}()
	F.SomeVecs(A, clist)
	return err
}

//Errors

// Error is the error type of the v3 package.
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
// and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// Critical return whether the error is critical or it can be ignored
func (err *Error) Critical() bool { return err.critical }

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix    = PanicMsg("goSASA/v3: A v3.Matrix should have 3 columns")
	ErrShape           = PanicMsg("goSASA/v3: Dimension mismatch")
	ErrIndexOutOfRange = PanicMsg("goSASA/v3: index out of range")
)
