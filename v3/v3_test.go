/*
 * v3_test.go, part of gosymm.
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

package v3

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNewMatrix(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	require.NoError(Te, err)
	assert.Equal(Te, 3, A.NVecs())
	View := A.VecView(1)
	View.Set(0, 0, 100)
	assert.Equal(Te, 100.0, a[3], "views and the backing slice must share storage")
	_, err = NewMatrix([]float64{1, 2, 3, 4})
	assert.Error(Te, err)
	_, err = NewMatrix(nil)
	assert.Error(Te, err)
}

func TestSomeVecs(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18}
	A, err := NewMatrix(a)
	require.NoError(Te, err)
	B := Zeros(3)
	cind := []int{1, 3, 5}
	require.NoError(Te, B.SomeVecsSafe(A, cind))
	assert.Equal(Te, []float64{4, 5, 6, 10, 11, 12, 16, 17, 18}, B.Flat())
	B.Set(1, 1, 55)
	assert.Equal(Te, 11.0, A.At(3, 1), "SomeVecs copies, it does not view")
	C := Zeros(2)
	assert.Error(Te, C.SomeVecsSafe(A, cind))
	assert.Error(Te, C.SomeVecsSafe(A, []int{0, 9}))
}

func TestShiftAndSwap(Te *testing.T) {
	S, _ := NewMatrix([]float64{11, 22, 33, 14, 25, 36, 17, 28, 39})
	row, _ := NewMatrix([]float64{10, 20, 30})
	//in place, the receiver is also the input
	S.SubVec(S, row)
	assert.Equal(Te, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, S.Flat())
	D := Zeros(3)
	D.SubVec(S, row)
	assert.Equal(Te, []float64{-9, -18, -27, -6, -15, -24, -3, -12, -21}, D.Flat())
	assert.Equal(Te, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, S.Flat())
	S.SwapVecs(0, 2)
	assert.Equal(Te, []float64{7, 8, 9, 4, 5, 6, 1, 2, 3}, S.Flat())
	assert.Panics(Te, func() { D.SubVec(Zeros(2), row) })
}

func TestCrossDot(Te *testing.T) {
	x, _ := NewMatrix([]float64{1, 0, 0})
	y, _ := NewMatrix([]float64{0, 1, 0})
	z := Zeros(1)
	z.Cross(x, y)
	assert.Equal(Te, []float64{0, 0, 1}, z.Flat())
	assert.Equal(Te, 0.0, x.Dot(y))
	row, _ := NewMatrix([]float64{2, 2, 1})
	assert.InDelta(Te, 3.0, row.Norm(), 1e-12)
}

func TestEigen(Te *testing.T) {
	a := []float64{1, 2, 0, 2, 1, 0, 0, 0, 1}
	A, err := NewMatrix(a)
	require.NoError(Te, err)
	evecs, evals, err := EigenWrap(A, -1)
	require.NoError(Te, err)
	require.Len(Te, evals, 3)
	assert.InDelta(Te, -1.0, evals[0], 1e-10)
	assert.InDelta(Te, 1.0, evals[1], 1e-10)
	assert.InDelta(Te, 3.0, evals[2], 1e-10)
	assert.Greater(Te, det(evecs), 0.0)
	//each row must satisfy A v = lambda v
	for i := 0; i < 3; i++ {
		v := mat.NewVecDense(3, evecs.Flat()[3*i:3*i+3])
		var Av mat.VecDense
		Av.MulVec(A, v)
		for k := 0; k < 3; k++ {
			assert.InDelta(Te, evals[i]*v.AtVec(k), Av.AtVec(k), 1e-10)
		}
	}
}

func TestKronekerDelta(Te *testing.T) {
	assert.Equal(Te, 1.0, KronekerDelta(1, 1+1e-14, -1))
	assert.Equal(Te, 0.0, KronekerDelta(1, 1.1, 0.01))
	assert.Equal(Te, 1.0, KronekerDelta(math.Pi, 3.14, 0.01))
}
