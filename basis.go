/*
 * basis.go, part of gosymm.
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
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/bskinn/opan-sub001/v3"
)

//Relative magnitude of the random component-wise perturbation used
//to build a reference vector when none is given.
const basisRandMag = 0.25

//Seed used by OrthoBasis when it is given a nil random source.
const DefaultBasisSeed uint64 = 1

//OrthoBasis returns two unit vectors, on1 and on2, spanning the plane perpendicular
//to normAxis, such that on1 x on2 == normAxis/|normAxis|.
//
//If refAxis is not nil, on1 is the normalized projection of refAxis on that plane, and
//refAxis must not be (anti)parallel to normAxis within tol.NonParallelTol degrees.
//If refAxis is nil (or a typed nil pointer), a reference is built by scaling each component of normAxis by a random
//factor in [0.75, 1.25] drawn from src, resampling while the candidate is too parallel
//to normAxis. After tol.BasisMaxTries failed samples a basis-search-exhausted GeometryError
//is returned. That always happens when normAxis lies along a cartesian axis, since then
//no component-wise scaling can tilt it; give a refAxis in that case.
//A nil src means a source seeded with DefaultBasisSeed.
func OrthoBasis(normAxis, refAxis mat.Matrix, tol ToleranceConfig, src rand.Source) (*mat.VecDense, *mat.VecDense, error) {
	if err := tol.Validate(); err != nil {
		return nil, nil, errDecorate(err, "OrthoBasis")
	}
	nv, err := MakeVector(normAxis, 3, false)
	if err != nil {
		return nil, nil, errDecorate(err, "OrthoBasis")
	}
	nnorm := mat.Norm(nv, 2)
	if nnorm < tol.ZeroVecTol {
		return nil, nil, newGeometryError(DegenerateAxis, "OrthoBasis", "norm of the normal axis (%g) is too small", nnorm)
	}
	nv.ScaleVec(1/nnorm, nv)
	var rv *mat.VecDense
	if isNilMatrix(refAxis) {
		rv, err = randomReference(nv, tol, src)
		if err != nil {
			return nil, nil, errDecorate(err, "OrthoBasis")
		}
	} else {
		rv, err = MakeVector(refAxis, 3, false)
		if err != nil {
			return nil, nil, errDecorate(err, "OrthoBasis")
		}
		rnorm := mat.Norm(rv, 2)
		if rnorm < tol.ZeroVecTol {
			return nil, nil, newGeometryError(DegenerateAxis, "OrthoBasis", "norm of the reference axis (%g) is too small", rnorm)
		}
		rv.ScaleVec(1/rnorm, rv)
		//The dot product can exceed unity from precision loss when rv is
		//(anti)parallel to nv.
		d := math.Abs(mat.Dot(nv, rv))
		if d > 1 || rad2deg(math.Acos(d)) < tol.NonParallelTol {
			return nil, nil, newGeometryError(NearParallel, "OrthoBasis", "normal and reference axes are too nearly parallel")
		}
	}
	on2 := cross(nv, rv)
	on2.ScaleVec(1/mat.Norm(on2, 2), on2)
	on1 := cross(on2, nv)
	return on1, on2, nil
}

//randomReference draws a unit vector suitably non-parallel to the unit vector nv.
func randomReference(nv *mat.VecDense, tol ToleranceConfig, src rand.Source) (*mat.VecDense, error) {
	if src == nil {
		src = rand.NewSource(DefaultBasisSeed)
	}
	mult := distuv.Uniform{Min: 1 - basisRandMag, Max: 1 + basisRandMag, Src: src}
	rv := mat.NewVecDense(3, nil)
	for try := 0; try < tol.BasisMaxTries; try++ {
		for i := 0; i < 3; i++ {
			rv.SetVec(i, nv.AtVec(i)*mult.Rand())
		}
		rv.ScaleVec(1/mat.Norm(rv, 2), rv)
		d := math.Min(math.Abs(mat.Dot(nv, rv)), 1)
		if rad2deg(math.Acos(d)) >= tol.NonParallelTol {
			return rv, nil
		}
	}
	return nil, newGeometryError(BasisSearchExhausted, "randomReference", "no reference vector non-parallel to the normal axis found in %d tries", tol.BasisMaxTries)
}

//OrthonormCheck checks the orthonormality of the columns of a within tol.
//It returns whether the columns are orthonormal, the indexes of the columns that are not
//normalized and the pairs of columns that are not orthogonal.
func OrthonormCheck(a mat.Matrix, tol float64) (bool, []int, [][2]int) {
	r, c := a.Dims()
	var nFail []int
	var oFail [][2]int
	cols := make([]*mat.VecDense, c)
	for i := range cols {
		cols[i] = mat.NewVecDense(r, mat.Col(nil, i, a))
	}
	for i := 0; i < c; i++ {
		for j := i; j < c; j++ {
			dot := mat.Dot(cols[i], cols[j])
			if math.Abs(dot-v3.KronekerDelta(float64(i), float64(j), 0)) <= tol {
				continue
			}
			if i == j {
				nFail = append(nFail, i)
			} else {
				oFail = append(oFail, [2]int{i, j})
			}
		}
	}
	return len(nFail) == 0 && len(oFail) == 0, nFail, oFail
}
