/*
 * inertia.go, part of gosymm.
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

/*Package inertia computes the center of mass, the inertia tensor and the principal
moments and axes of a molecule, and classifies it by top type. Its output is what
symm.FindPointGroup takes as input.

Geometries are stacked cartesian coordinates (x1, y1, z1, x2, ...) with one mass per atom.
*/
package inertia

import (
	"math"

	"gonum.org/v1/gonum/mat"

	symm "github.com/bskinn/opan-sub001"
	"github.com/bskinn/opan-sub001/v3"
)

//Tolerances for the top type classification.
const (
	//Moments below this are considered zero.
	ZeroMomentTol = 1e-3
	//Moments closer than this are considered equal.
	EqualMomentTol = 1e-3
)

func coordsAndMasses(g, m []float64, caller string) (*v3.Matrix, *mat.VecDense, error) {
	if len(g) == 0 || len(g)%3 != 0 || len(g) != 3*len(m) {
		return nil, nil, newError(ErrDimension, caller, "geometry of length %d does not match %d masses", len(g), len(m))
	}
	var total float64
	for i, v := range m {
		if v < 0 || math.IsNaN(v) {
			return nil, nil, newError(ErrInvalidMass, caller, "mass %d is %g", i, v)
		}
		total += v
	}
	if total == 0 {
		return nil, nil, newError(ErrInvalidMass, caller, "total mass is zero")
	}
	coords, _ := v3.NewMatrix(g)
	return coords, mat.NewVecDense(len(m), m), nil
}

//CenterOfMass returns the center of mass of the atoms in g with masses m.
func CenterOfMass(g, m []float64) ([3]float64, error) {
	coords, mass, err := coordsAndMasses(g, m, "CenterOfMass")
	if err != nil {
		return [3]float64{}, err
	}
	return centerOfMass(coords, mass), nil
}

func centerOfMass(coords *v3.Matrix, mass *mat.VecDense) [3]float64 {
	var ctr mat.VecDense
	ctr.MulVec(coords.T(), mass)
	ctr.ScaleVec(1/mat.Sum(mass), &ctr)
	return [3]float64{ctr.AtVec(0), ctr.AtVec(1), ctr.AtVec(2)}
}

//Center returns a copy of g translated so its center of mass is at the origin.
func Center(g, m []float64) ([]float64, error) {
	coords, mass, err := coordsAndMasses(g, m, "Center")
	if err != nil {
		return nil, err
	}
	return center(coords, mass).Flat(), nil
}

func center(coords *v3.Matrix, mass *mat.VecDense) *v3.Matrix {
	ctr := centerOfMass(coords, mass)
	c, _ := v3.NewMatrix(ctr[:])
	ret := v3.Zeros(coords.NVecs())
	ret.SubVec(coords, c)
	return ret
}

//Tensor returns the inertia tensor of the atoms in g with masses m, around
//their center of mass.
func Tensor(g, m []float64) (*mat.SymDense, error) {
	coords, mass, err := coordsAndMasses(g, m, "Tensor")
	if err != nil {
		return nil, err
	}
	return tensor(center(coords, mass), mass), nil
}

//tensor builds the inertia tensor from the second moment S = sum m r r^T of the
//centered coordinates as I = tr(S)*1 - S.
func tensor(ctr *v3.Matrix, mass *mat.VecDense) *mat.SymDense {
	weighted := v3.Zeros(ctr.NVecs())
	for i := 0; i < ctr.NVecs(); i++ {
		sq := math.Sqrt(mass.AtVec(i))
		for j := 0; j < 3; j++ {
			weighted.Set(i, j, ctr.At(i, j)*sq)
		}
	}
	S := mat.NewSymDense(3, nil)
	S.SymOuterK(1, weighted.Dense.T())
	tr := mat.Trace(S)
	I := mat.NewSymDense(3, nil)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			v := -S.At(i, j)
			if i == j {
				v += tr
			}
			I.SetSym(i, j, v)
		}
	}
	return I
}

//Classify returns the top type corresponding to the principal moments, which must be
//sorted in increasing order. A moment below -ZeroMomentTol gives an error.
func Classify(moments []float64) (symm.TopType, error) {
	if len(moments) != 3 {
		return symm.Asymmetric, newError(ErrDimension, "Classify", "3 moments needed, got %d", len(moments))
	}
	m0, m1, m2 := moments[0], moments[1], moments[2]
	switch {
	case m0 < -ZeroMomentTol:
		return symm.Asymmetric, newError(ErrNegativeMoment, "Classify", "negative principal moment %g", m0)
	case m0 < ZeroMomentTol:
		if m1 < ZeroMomentTol && m2 < ZeroMomentTol {
			return symm.Atom, nil
		}
		return symm.Linear, nil
	}
	eq01 := math.Abs(m0-m1) < EqualMomentTol
	eq12 := math.Abs(m1-m2) < EqualMomentTol
	switch {
	case eq01 && eq12:
		return symm.Spherical, nil
	case eq01:
		return symm.SymmetricOblate, nil
	case eq12:
		return symm.SymmetricProlate, nil
	}
	return symm.Asymmetric, nil
}

//Principals returns the principal moments of inertia of the atoms in g with masses m,
//in increasing order, the principal axes (as the columns of a 3x3 matrix, in the same order)
//and the top type of the molecule. g does not need to be centered.
//
//The axes are made reproducible: for an atom they are the cartesian axes. For a linear
//molecule the first axis points to the first atom away from the center of mass, the second
//is the part of the x axis (or the y axis, if the molecule lies along x) normal to the first one,
//and the third is their cross product. Otherwise, the first two eigenvectors point along
//the first atomic position with a non-zero projection on them, and the third one is their
//cross product. In all cases the axes form a right-handed set.
func Principals(g, m []float64, tol symm.ToleranceConfig) ([]float64, *mat.Dense, symm.TopType, error) {
	coords, mass, err := coordsAndMasses(g, m, "Principals")
	if err != nil {
		return nil, nil, symm.Asymmetric, err
	}
	ctr := center(coords, mass)
	I := tensor(ctr, mass)
	evecs, evals, err := v3.EigenWrap(v3.Dense2Matrix(mat.DenseCopyOf(I)), -1)
	if err != nil {
		return nil, nil, symm.Asymmetric, newError(ErrEigen, "Principals", "%s", err.Error())
	}
	top, err := Classify(evals)
	if err != nil {
		return nil, nil, top, errDecorate(err, "Principals")
	}
	var axes *mat.Dense
	switch top {
	case symm.Atom:
		axes = mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	case symm.Linear:
		axes, err = linearAxes(ctr, tol)
	default:
		axes = eigenAxes(ctr, evecs, tol)
	}
	if err != nil {
		return nil, nil, top, errDecorate(err, "Principals")
	}
	return evals, axes, top, nil
}

func linearAxes(ctr *v3.Matrix, tol symm.ToleranceConfig) (*mat.Dense, error) {
	var a0 *mat.VecDense
	for i := 0; i < ctr.NVecs(); i++ {
		v := mat.NewVecDense(3, ctr.VecView(i).Flat())
		if n := mat.Norm(v, 2); n >= tol.ZeroVecTol {
			v.ScaleVec(1/n, v)
			a0 = v
			break
		}
	}
	if a0 == nil {
		return nil, newError(ErrDimension, "linearAxes", "all atoms are at the center of mass")
	}
	ref := symm.Vec3(1, 0, 0)
	if symm.IsParallel(a0, ref, tol.NonParallelTol) {
		ref = symm.Vec3(0, 1, 0)
	}
	a1 := rej(ref, a0)
	a1.ScaleVec(1/mat.Norm(a1, 2), a1)
	return axesFrom(a0, a1), nil
}

func eigenAxes(ctr *v3.Matrix, evecs *v3.Matrix, tol symm.ToleranceConfig) *mat.Dense {
	var ax [2]*mat.VecDense
	for k := range ax {
		ax[k] = mat.NewVecDense(3, evecs.VecView(k).Flat())
		for i := 0; i < ctr.NVecs(); i++ {
			d := mat.Dot(ax[k], mat.NewVecDense(3, ctr.VecView(i).Flat()))
			if math.Abs(d) < tol.ZeroVecTol {
				continue
			}
			if d < 0 {
				ax[k].ScaleVec(-1, ax[k])
			}
			break
		}
	}
	return axesFrom(ax[0], ax[1])
}

//axesFrom returns a 3x3 matrix with a0, a1 and a0 x a1 as columns.
func axesFrom(a0, a1 *mat.VecDense) *mat.Dense {
	A0, _ := v3.NewMatrix([]float64{a0.AtVec(0), a0.AtVec(1), a0.AtVec(2)})
	A1, _ := v3.NewMatrix([]float64{a1.AtVec(0), a1.AtVec(1), a1.AtVec(2)})
	a2 := v3.Zeros(1)
	a2.Cross(A0, A1)
	axes := mat.NewDense(3, 3, nil)
	axes.SetCol(0, A0.Flat())
	axes.SetCol(1, A1.Flat())
	axes.SetCol(2, a2.Flat())
	return axes
}

//rej returns the rejection of a on the unit vector b, i.e. the component of a normal to b.
func rej(a, b mat.Vector) *mat.VecDense {
	ret := mat.NewVecDense(3, nil)
	ret.AddScaledVec(a, -mat.Dot(a, b), b)
	return ret
}
