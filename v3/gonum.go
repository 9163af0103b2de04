/*
 * gonum.go, part of rdfadf.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
	"gonum.org/v1/gonum/spatial/r3"
)

// Matrix is a set of vectors in 3D space. Within the package it is understood
// that a "vector" is a row vector, i.e. the cartesian coordinates of a point
// in 3D space.
type Matrix struct {
	*mat.Dense
}

// Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

// NewMatrix generates and returns a Matrix with 3 columns from data.
// The data slice is used as backing storage, not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 || l == 0 {
		return nil, &Error{message: fmt.Sprintf("Input slice length %d not divisible by %d", l, cols), deco: []string{"NewMatrix"}, critical: true}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

// Vec returns a copy of the ith vector as a gonum r3.Vec.
func (F *Matrix) Vec(i int) r3.Vec {
	return r3.Vec{X: F.At(i, 0), Y: F.At(i, 1), Z: F.At(i, 2)}
}

// SetVec sets the ith vector of the receiver to v.
func (F *Matrix) SetVec(i int, v r3.Vec) {
	F.Set(i, 0, v.X)
	F.Set(i, 1, v.Y)
	F.Set(i, 2, v.Z)
}

// Copy3 returns a copy of the receiver which does not share memory with it.
func (F *Matrix) Copy3() *Matrix {
	ret := Zeros(F.NVecs())
	ret.Copy(F.Dense)
	return ret
}

// Inverse puts the inverse of the 3x3 matrix A in the receiver. It returns an error
// if A is not 3x3 or is singular.
func (F *Matrix) Inverse(A *Matrix) error {
	if A.NVecs() != 3 || F.NVecs() != 3 {
		return &Error{message: "Inverse is only defined here for 3x3 matrices", deco: []string{"Inverse"}, critical: true}
	}
	if d := Det(A); d == 0 {
		return &Error{message: "Singular matrix", deco: []string{"Inverse"}, critical: true}
	}
	if err := F.Dense.Inverse(A.Dense); err != nil {
		return &Error{message: fmt.Sprintf("gonum: %s", err.Error()), deco: []string{"Inverse"}, critical: true}
	}
	return nil
}

// Det returns the determinant of a 3x3 matrix. Panics if the matrix is not 3x3.
func Det(A mat.Matrix) float64 {
	r, c := A.Dims()
	if r != 3 || c != 3 {
		panic(ErrDeterminant)
	}
	return (A.At(0, 0)*(A.At(1, 1)*A.At(2, 2)-A.At(2, 1)*A.At(1, 2)) - A.At(1, 0)*(A.At(0, 1)*A.At(2, 2)-A.At(2, 1)*A.At(0, 2)) + A.At(2, 0)*(A.At(0, 1)*A.At(1, 2)-A.At(1, 1)*A.At(0, 2)))
}

//Errors

// Error is the error type for the v3 package. It fulfills the chem.Error interface.
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
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical return whether the error is critical or it can be ignored
func (err *Error) Critical() bool { return err.critical }

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix = PanicMsg("rdfadf/v3: A Matrix should have 3 columns")
	ErrDeterminant  = PanicMsg("rdfadf/v3: Determinants are only available for 3x3 matrices")
)
