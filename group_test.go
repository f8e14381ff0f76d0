/*
 * group_test.go, part of gosymm.
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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

//zFirst has the z axis as its first column, as the principal axes of
//a molecule along z would.
var zFirst = mat.NewDense(3, 3, []float64{
	0, 1, 0,
	0, 0, 1,
	1, 0, 0,
})

func TestGroupAtom(Te *testing.T) {
	pg, err := FindPointGroup(nil, nil, nil, Atom, ToleranceConfig{})
	require.NoError(Te, err)
	assert.Equal(Te, LabelAtom, pg.Label)
	assert.Equal(Te, 1, pg.SymmetryNumber)
	assert.Nil(Te, pg.Reference)
	pg, err = FindPointGroup([]float64{0, 0, 0}, []float64{4.0026}, zFirst, Atom, DefaultTolerances())
	require.NoError(Te, err)
	assert.Equal(Te, PointGroup{Label: "Kh", SymmetryNumber: 1}, pg)
}

func TestGroupLinear(Te *testing.T) {
	tol := DefaultTolerances()
	//CO2
	g := []float64{0, 0, -1.16, 0, 0, 0, 0, 0, 1.16}
	w := []float64{15.999, 12.011, 15.999}
	pg, err := FindPointGroup(g, w, zFirst, Linear, tol)
	require.NoError(Te, err)
	assert.Equal(Te, "D∞h", pg.Label)
	assert.Equal(Te, 2, pg.SymmetryNumber)
	//HCN, centered on the center of mass
	g = []float64{0, 0, -1.6304, 0, 0, -0.5664, 0, 0, 0.5896}
	w = []float64{1.008, 12.011, 14.007}
	pg, err = FindPointGroup(g, w, zFirst, Linear, tol)
	require.NoError(Te, err)
	assert.Equal(Te, "C∞v", pg.Label)
	assert.Equal(Te, 1, pg.SymmetryNumber)
	_, err = FindPointGroup(g, w, mat.NewDense(2, 2, nil), Linear, tol)
	assert.True(Te, errors.Is(err, ErrDimension), "%v", err)
}

func methane() ([]float64, []float64) {
	d := 1.089 / math.Sqrt(3)
	g := []float64{
		0, 0, 0,
		d, d, d,
		-d, -d, d,
		-d, d, -d,
		d, -d, -d,
	}
	return g, []float64{12.011, 1.008, 1.008, 1.008, 1.008}
}

func TestGroupSpherical(Te *testing.T) {
	tol := DefaultTolerances()
	g, w := methane()
	pg, err := FindPointGroup(g, w, nil, Spherical, tol)
	require.NoError(Te, err)
	assert.Equal(Te, LabelCubic, pg.Label)
	assert.Equal(Te, 0, pg.SymmetryNumber)
	require.NotNil(Te, pg.Reference)
	assert.Equal(Te, 3, pg.Reference.Order)
	assert.False(Te, pg.Reference.Reflection)
	s := 1 / math.Sqrt(3)
	assert.InDeltaSlice(Te, []float64{s, s, s}, pg.Reference.Vector[:], 1e-12)

	//SF6
	r := 1.56
	g = []float64{
		0, 0, 0,
		r, 0, 0,
		-r, 0, 0,
		0, r, 0,
		0, -r, 0,
		0, 0, r,
		0, 0, -r,
	}
	w = []float64{32.06, 18.998, 18.998, 18.998, 18.998, 18.998, 18.998}
	pg, err = FindPointGroup(g, w, nil, Spherical, tol)
	require.NoError(Te, err)
	require.NotNil(Te, pg.Reference)
	assert.Equal(Te, 4, pg.Reference.Order)
	assert.True(Te, pg.Reference.Reflection)
	assert.InDeltaSlice(Te, []float64{1, 0, 0}, pg.Reference.Vector[:], 1e-12)
}

func TestGroupSphericalMidpoints(Te *testing.T) {
	tol := DefaultTolerances()
	//Neither atom direction is a rotation axis, but the sum of the two is a C2.
	g := []float64{1, 0, 0, 0, 1, 0}
	w := []float64{1, 1}
	for _, ax := range []*mat.VecDense{Vec3(1, 0, 0), Vec3(0, 1, 0)} {
		a, err := ClassifyAxis(g, w, ax, tol)
		require.NoError(Te, err)
		require.Equal(Te, 1, a.Order)
	}
	pg, err := FindPointGroup(g, w, nil, Spherical, tol)
	require.NoError(Te, err)
	require.NotNil(Te, pg.Reference)
	assert.Equal(Te, 2, pg.Reference.Order)
	assert.False(Te, pg.Reference.Reflection)
	s := 1 / math.Sqrt(2)
	assert.InDeltaSlice(Te, []float64{s, s, 0}, pg.Reference.Vector[:], 1e-12)
	//with different weights the pair is no longer a candidate
	_, err = FindPointGroup(g, []float64{1, 2}, nil, Spherical, tol)
	assert.True(Te, errors.Is(err, ErrSymmetryNotFound), "%v", err)
}

func TestGroupNotFound(Te *testing.T) {
	tol := DefaultTolerances()
	g := []float64{
		1, 0.2, 0.3,
		-0.4, 1.1, -0.2,
		0.3, -0.7, 0.9,
		-0.9, -0.6, -1.0,
	}
	w := []float64{1, 2, 3, 4}
	_, err := FindPointGroup(g, w, nil, Spherical, tol)
	require.Error(Te, err)
	assert.True(Te, errors.Is(err, ErrSymmetryNotFound), "%v", err)
}

func TestGroupNotSupported(Te *testing.T) {
	tol := DefaultTolerances()
	g, w := triangle()
	for _, top := range []TopType{SymmetricOblate, SymmetricProlate, Asymmetric} {
		_, err := FindPointGroup(g, w, zFirst, top, tol)
		assert.True(Te, errors.Is(err, ErrNotSupported), "%s: %v", top, err)
	}
	_, err := FindPointGroup(g, w, zFirst, TopType(42), tol)
	assert.True(Te, errors.Is(err, ErrConfig), "%v", err)
}

func TestGroupBadInput(Te *testing.T) {
	tol := DefaultTolerances()
	g, w := triangle()
	bad := tol
	bad.SymmMatchTol = 0
	_, err := FindPointGroup(g, w, zFirst, Linear, bad)
	assert.True(Te, errors.Is(err, ErrConfig), "%v", err)
	_, err = FindPointGroup(g, w[:2], zFirst, Linear, tol)
	assert.True(Te, errors.Is(err, ErrDimension), "%v", err)
}

func TestCombinations(Te *testing.T) {
	assert.Equal(Te, [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}, combinations(4, 2))
	assert.Equal(Te, [][]int{{0, 1, 2}}, combinations(3, 3))
	assert.Nil(Te, combinations(2, 3))
}
