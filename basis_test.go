/*
 * basis_test.go, part of gosymm.
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

package symm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

func TestMakeVector(Te *testing.T) {
	row := mat.NewDense(1, 3, []float64{3, 0, 4})
	v, err := MakeVector(row, 3, false)
	require.NoError(Te, err)
	assert.Equal(Te, []float64{3, 0, 4}, v.RawVector().Data)
	v, err = MakeVector(row.T(), 0, true)
	require.NoError(Te, err)
	assert.InDeltaSlice(Te, []float64{0.6, 0, 0.8}, v.RawVector().Data, 1e-12)
	_, err = MakeVector(mat.NewDense(2, 2, nil), 0, false)
	assert.True(Te, errors.Is(err, ErrDimension), "2x2 must not reduce: %v", err)
	_, err = MakeVector(Vec3(1, 2, 3), 4, false)
	assert.True(Te, errors.Is(err, ErrDimension))
	_, err = MakeVector(nil, 3, false)
	assert.True(Te, errors.Is(err, ErrDimension))
	var nilVec *mat.VecDense
	assert.NotPanics(Te, func() { _, err = MakeVector(nilVec, 3, false) })
	assert.True(Te, errors.Is(err, ErrDimension), "%v", err)
	var nilDense *mat.Dense
	assert.NotPanics(Te, func() { _, err = MakeVector(nilDense, 3, false) })
	assert.True(Te, errors.Is(err, ErrDimension), "%v", err)
}

func TestAngles(Te *testing.T) {
	assert.InDelta(Te, 90, VectorAngle(Vec3(1, 0, 0), Vec3(0, 3, 0)), 1e-12)
	assert.InDelta(Te, 180, VectorAngle(Vec3(1, 1, 0), Vec3(-2, -2, 0)), 1e-5)
	assert.True(Te, IsParallel(Vec3(1, 1, 0), Vec3(-2, -2, 0), 1e-3))
	assert.False(Te, IsParallel(Vec3(1, 0, 0), Vec3(1, 0.01, 0), 1e-3))
}

func TestOrthoBasisRandom(Te *testing.T) {
	tol := DefaultTolerances()
	src := rand.NewSource(42)
	for _, n := range []*mat.VecDense{Vec3(1, 2, 3), Vec3(-0.3, 0.5, 0.9), Vec3(1, 1, 0), Vec3(0.01, -4, 2)} {
		on1, on2, err := OrthoBasis(n, nil, tol, src)
		require.NoError(Te, err)
		B := mat.NewDense(3, 2, nil)
		B.SetCol(0, on1.RawVector().Data)
		B.SetCol(1, on2.RawVector().Data)
		ok, nFail, oFail := OrthonormCheck(B, tol.OrthonormTol)
		assert.True(Te, ok, "not orthonormal: %v %v", nFail, oFail)
		c := cross(on1, on2)
		nn := mat.VecDenseCopyOf(n)
		nn.ScaleVec(1/mat.Norm(nn, 2), nn)
		assert.InDeltaSlice(Te, nn.RawVector().Data, c.RawVector().Data, 1e-10, "basis must be right handed around the normal")
	}
}

func TestOrthoBasisSeeded(Te *testing.T) {
	tol := DefaultTolerances()
	a1, a2, err := OrthoBasis(Vec3(1, 2, 3), nil, tol, rand.NewSource(7))
	require.NoError(Te, err)
	b1, b2, err := OrthoBasis(Vec3(1, 2, 3), nil, tol, rand.NewSource(7))
	require.NoError(Te, err)
	assert.Equal(Te, a1.RawVector().Data, b1.RawVector().Data)
	assert.Equal(Te, a2.RawVector().Data, b2.RawVector().Data)
}

func TestOrthoBasisTypedNilReference(Te *testing.T) {
	tol := DefaultTolerances()
	a1, a2, err := OrthoBasis(Vec3(1, 2, 3), nil, tol, rand.NewSource(7))
	require.NoError(Te, err)
	var ref *mat.VecDense
	b1, b2, err := OrthoBasis(Vec3(1, 2, 3), ref, tol, rand.NewSource(7))
	require.NoError(Te, err)
	assert.Equal(Te, a1.RawVector().Data, b1.RawVector().Data)
	assert.Equal(Te, a2.RawVector().Data, b2.RawVector().Data)
	var norm *mat.VecDense
	_, _, err = OrthoBasis(norm, nil, tol, nil)
	assert.True(Te, errors.Is(err, ErrDimension), "%v", err)
}

func TestOrthoBasisReference(Te *testing.T) {
	tol := DefaultTolerances()
	on1, on2, err := OrthoBasis(Vec3(0, 0, 2), Vec3(3, 0, 0), tol, nil)
	require.NoError(Te, err)
	assert.InDeltaSlice(Te, []float64{1, 0, 0}, on1.RawVector().Data, 1e-12)
	assert.InDeltaSlice(Te, []float64{0, 1, 0}, on2.RawVector().Data, 1e-12)
	//the reference only needs a component off the normal
	on1, _, err = OrthoBasis(Vec3(0, 0, 1), Vec3(1, 0, 1), tol, nil)
	require.NoError(Te, err)
	assert.InDeltaSlice(Te, []float64{1, 0, 0}, on1.RawVector().Data, 1e-12)
}

func TestOrthoBasisErrors(Te *testing.T) {
	tol := DefaultTolerances()
	_, _, err := OrthoBasis(Vec3(0, 0, 1), Vec3(0, 0, -2), tol, nil)
	assert.True(Te, errors.Is(err, ErrNearParallel), "%v", err)
	assert.False(Te, errors.Is(err, ErrDegenerateAxis))
	assert.True(Te, errors.Is(err, ErrGeometry))
	_, _, err = OrthoBasis(Vec3(0, 0, 1e-9), nil, tol, nil)
	assert.True(Te, errors.Is(err, ErrDegenerateAxis), "%v", err)
	_, _, err = OrthoBasis(Vec3(0, 0, 1), Vec3(0, 0, 0), tol, nil)
	assert.True(Te, errors.Is(err, ErrDegenerateAxis), "%v", err)
	_, _, err = OrthoBasis(mat.NewVecDense(2, []float64{1, 1}), nil, tol, nil)
	assert.True(Te, errors.Is(err, ErrDimension), "%v", err)
	//No component-wise scaling tilts a cartesian axis.
	tol.BasisMaxTries = 20
	_, _, err = OrthoBasis(Vec3(0, 0, 1), nil, tol, rand.NewSource(1))
	require.Error(Te, err)
	assert.True(Te, errors.Is(err, ErrBasisSearchExhausted), "%v", err)
	var e *Error
	require.True(Te, errors.As(err, &e))
	assert.Equal(Te, BasisSearchExhausted, e.GeometryKind())
	assert.Equal(Te, []string{"randomReference", "OrthoBasis"}, e.Decorate(""))
}

func TestOrthoBasisBadTolerances(Te *testing.T) {
	_, _, err := OrthoBasis(Vec3(1, 1, 1), nil, ToleranceConfig{}, nil)
	require.Error(Te, err)
	assert.True(Te, errors.Is(err, ErrConfig), "%v", err)
	tol := DefaultTolerances()
	tol.BasisMaxTries = 0
	_, _, err = OrthoBasis(Vec3(1, 2, 3), Vec3(1, 0, 0), tol, nil)
	assert.True(Te, errors.Is(err, ErrConfig), "%v", err)
	tol = DefaultTolerances()
	tol.NonParallelTol = 90
	_, _, err = OrthoBasis(Vec3(1, 2, 3), nil, tol, nil)
	assert.True(Te, errors.Is(err, ErrConfig), "%v", err)
}

func TestOrthonormCheck(Te *testing.T) {
	I := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	ok, _, _ := OrthonormCheck(I, 1e-8)
	assert.True(Te, ok)
	A := mat.NewDense(3, 3, []float64{
		2, 1, 0,
		0, 1, 0,
		0, 0, 1})
	ok, nFail, oFail := OrthonormCheck(A, 1e-8)
	assert.False(Te, ok)
	assert.Equal(Te, []int{0, 1}, nFail)
	assert.Equal(Te, [][2]int{{0, 1}}, oFail)
}
