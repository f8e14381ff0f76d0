/*
 * gonum.go, part of gosymm.
 *
 * Copyright 2024 The gosymm authors.
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

//gonum.go contains what is needed to wrap gonum's mat types in a Nx3 Matrix, plus
//the error types of the package.

package v3

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space, backed by a gonum Dense.
//Within the package it is understood that a "vector" is a row vector, i.e. the
//cartesian coordinates of a point in 3D space. The name of some functions in
//the library reflect this.
type Matrix struct {
	*mat.Dense
}

//Dense2Matrix wraps a Dense with 3 columns. Panics if A does not have 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	if _, c := A.Dims(); c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return &Matrix{A}
}

//NewMatrix generates and returns a Matrix with 3 columns from data. The data slice
//is used as backing storage, not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d: %d", l, cols, l%cols), []string{"NewMatrix"}, true}
	}
	if rows == 0 {
		return nil, Error{"Input slice is empty", []string{"NewMatrix"}, true}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

//VecView returns a view of the ith vector of the matrix. Changes in the view are
//reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//det returns the determinant of a 3x3 matrix. Panics if the matrix is not 3x3.
func det(A mat.Matrix) float64 {
	r, c := A.Dims()
	if r != 3 || c != 3 {
		panic(ErrDeterminant)
	}
	return (A.At(0, 0)*(A.At(1, 1)*A.At(2, 2)-A.At(2, 1)*A.At(1, 2)) - A.At(1, 0)*(A.At(0, 1)*A.At(2, 2)-A.At(2, 1)*A.At(0, 2)) + A.At(2, 0)*(A.At(0, 1)*A.At(1, 2)-A.At(1, 1)*A.At(0, 2)))
}

//This is a facility to sort Eigenvectors/Eigenvalues pairs
//It satisfies the sort.Interface interface.
type eigenpair struct {
	//evecs must have as many rows as evals has elements.
	evecs *Matrix
	evals sort.Float64Slice
}

func (E eigenpair) Less(i, j int) bool {
	return E.evals[i] < E.evals[j]
}
func (E eigenpair) Swap(i, j int) {
	E.evals.Swap(i, j)
	E.evecs.SwapVecs(i, j)
}
func (E eigenpair) Len() int {
	return len(E.evals)
}

//EigenWrap diagonalizes the symmetric 3x3 matrix in and returns the eigenvectors as the
//rows of a Matrix, together with the eigenvalues, sorted by increasing eigenvalue.
//The eigenvectors are checked for orthogonality within epsilon and the set is made
//right-handed (positive determinant). A negative epsilon means the package default.
func EigenWrap(in *Matrix, epsilon float64) (*Matrix, []float64, error) {
	if epsilon < 0 {
		epsilon = appzero
	}
	r, c := in.Dims()
	if r != 3 || c != 3 {
		return nil, nil, Error{string(ErrShape), []string{"EigenWrap"}, true}
	}
	sym := mat.NewSymDense(3, nil)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			sym.SetSym(i, j, 0.5*(in.At(i, j)+in.At(j, i)))
		}
	}
	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return nil, nil, Error{string(ErrEigen), []string{"EigenWrap"}, true}
	}
	evals := es.Values(nil)
	var cols mat.Dense
	es.VectorsTo(&cols)
	evecs := Zeros(3)
	evecs.Copy(cols.T()) //gonum returns the vectors as columns, we want rows.
	eig := eigenpair{evecs, evals}
	sort.Sort(eig)
	for i := 0; i < 3; i++ {
		vectori := eig.evecs.VecView(i)
		for j := i + 1; j < 3; j++ {
			vectorj := eig.evecs.VecView(j)
			if math.Abs(vectori.Dot(vectorj)) > epsilon {
				reterr := Error{fmt.Sprintf("Eigenvectors %d and %d not orthogonal. Dot: %g", i, j, math.Abs(vectori.Dot(vectorj))), []string{"EigenWrap"}, true}
				return eig.evecs, evals, reterr
			}
		}
	}
	//Checking and fixing the handedness of the matrix.
	if det(eig.evecs) < 0 {
		eig.evecs.Dense.Scale(-1, eig.evecs.Dense)
	}
	return eig.evecs, eig.evals, nil
}

//Errors

//Error is the error type returned by v3 functions.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical return whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix    = PanicMsg("gosymm/v3: A Matrix should have 3 columns")
	ErrNoCrossProduct  = PanicMsg("gosymm/v3: Invalid matrix for cross product")
	ErrEigen           = PanicMsg("gosymm/v3: Can't obtain eigenvectors/eigenvalues of given matrix")
	ErrDeterminant     = PanicMsg("gosymm/v3: Determinants are only available for 3x3 matrices")
	ErrShape           = PanicMsg("gosymm/v3: Dimension mismatch")
	ErrIndexOutOfRange = PanicMsg("gosymm/v3: index out of range")
)
