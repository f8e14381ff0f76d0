/*
 * transform.go, part of gosymm.
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

	"gonum.org/v1/gonum/mat"
)

//ReflectionMatrix returns the matrix for a reflection through the plane through the
//origin with normal vector normal (which does not need to be normalized), replicated
//reps times along the block diagonal, so it transforms a stacked geometry of reps atoms
//in one multiplication.
func ReflectionMatrix(normal mat.Matrix, reps int, tol ToleranceConfig) (*mat.Dense, error) {
	nv, err := transformAxis(normal, reps, tol, "ReflectionMatrix")
	if err != nil {
		return nil, err
	}
	base := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			if i == j {
				base.Set(i, i, 1-2*nv.AtVec(i)*nv.AtVec(i))
				continue
			}
			v := -2 * nv.AtVec(i) * nv.AtVec(j)
			base.Set(i, j, v)
			base.Set(j, i, v)
		}
	}
	return blockDiag(base, reps), nil
}

//RotationMatrix returns the matrix for a rotation of theta radians around axis, replicated
//reps times along the block diagonal. The rotation is counter-clockwise when the axis
//points at the observer, so a 90 degree rotation of (1,0,0) around (0,0,1) gives (0,1,0).
func RotationMatrix(axis mat.Matrix, theta float64, reps int, tol ToleranceConfig) (*mat.Dense, error) {
	ax, err := transformAxis(axis, reps, tol, "RotationMatrix")
	if err != nil {
		return nil, err
	}
	c := math.Cos(theta)
	s := math.Sin(theta)
	x, y, z := ax.AtVec(0), ax.AtVec(1), ax.AtVec(2)
	//cross-product (skew-symmetric) matrix of the axis
	skew := mat.NewDense(3, 3, []float64{
		0, -z, y,
		z, 0, -x,
		-y, x, 0,
	})
	base := mat.NewDense(3, 3, nil)
	base.Outer(1-c, ax, ax)
	skew.Scale(s, skew)
	base.Add(base, skew)
	for i := 0; i < 3; i++ {
		base.Set(i, i, base.At(i, i)+c)
	}
	return blockDiag(base, reps), nil
}

//transformAxis checks the arguments common to both transform builders and
//returns the normalized axis.
func transformAxis(axis mat.Matrix, reps int, tol ToleranceConfig, caller string) (*mat.VecDense, error) {
	ax, err := MakeVector(axis, 3, false)
	if err != nil {
		return nil, errDecorate(err, caller)
	}
	if n := mat.Norm(ax, 2); n < tol.ZeroVecTol {
		return nil, newGeometryError(DegenerateAxis, caller, "norm of the axis (%g) is too small", n)
	}
	if reps < 1 {
		return nil, newError(ConfigError, caller, "replication count must be a positive integer, got %d", reps)
	}
	ax.ScaleVec(1/mat.Norm(ax, 2), ax)
	return ax, nil
}

//blockDiag places reps copies of the 3x3 base on the diagonal of a 3reps x 3reps matrix.
func blockDiag(base *mat.Dense, reps int) *mat.Dense {
	ret := mat.NewDense(3*reps, 3*reps, nil)
	for k := 0; k < reps; k++ {
		ret.Slice(3*k, 3*k+3, 3*k, 3*k+3).(*mat.Dense).Copy(base)
	}
	return ret
}

//PointRotate rotates the 3D point pt by theta radians around axis, which passes through the origin.
func PointRotate(pt, axis mat.Matrix, theta float64, tol ToleranceConfig) (*mat.VecDense, error) {
	p, err := MakeVector(pt, 3, false)
	if err != nil {
		return nil, errDecorate(err, "PointRotate")
	}
	R, err := RotationMatrix(axis, theta, 1, tol)
	if err != nil {
		return nil, errDecorate(err, "PointRotate")
	}
	out := mat.NewVecDense(3, nil)
	out.MulVec(R, p)
	return out, nil
}

//PointReflect reflects the 3D point pt through the plane through the origin with normal normal.
func PointReflect(pt, normal mat.Matrix, tol ToleranceConfig) (*mat.VecDense, error) {
	p, err := MakeVector(pt, 3, false)
	if err != nil {
		return nil, errDecorate(err, "PointReflect")
	}
	R, err := ReflectionMatrix(normal, 1, tol)
	if err != nil {
		return nil, errDecorate(err, "PointReflect")
	}
	out := mat.NewVecDense(3, nil)
	out.MulVec(R, p)
	return out, nil
}

//GeomRotate rotates the geometry g (assumed centered at the origin) by theta radians around axis.
//The returned slice is new; g is not modified.
func GeomRotate(g []float64, axis mat.Matrix, theta float64, tol ToleranceConfig) ([]float64, error) {
	gv, err := geomVector(g, "GeomRotate")
	if err != nil {
		return nil, err
	}
	R, err := RotationMatrix(axis, theta, gv.Len()/3, tol)
	if err != nil {
		return nil, errDecorate(err, "GeomRotate")
	}
	out := mat.NewVecDense(gv.Len(), nil)
	out.MulVec(R, gv)
	return out.RawVector().Data, nil
}

//GeomReflect reflects the geometry g through the plane through the origin with normal normal.
func GeomReflect(g []float64, normal mat.Matrix, tol ToleranceConfig) ([]float64, error) {
	gv, err := geomVector(g, "GeomReflect")
	if err != nil {
		return nil, err
	}
	R, err := ReflectionMatrix(normal, gv.Len()/3, tol)
	if err != nil {
		return nil, errDecorate(err, "GeomReflect")
	}
	out := mat.NewVecDense(gv.Len(), nil)
	out.MulVec(R, gv)
	return out.RawVector().Data, nil
}

//SymmOp applies a general point symmetry operation to g: a rotation of theta radians
//around axis, followed, if doReflect is true, by a reflection through the plane normal to axis.
func SymmOp(g []float64, axis mat.Matrix, theta float64, doReflect bool, tol ToleranceConfig) ([]float64, error) {
	gx, err := GeomRotate(g, axis, theta, tol)
	if err != nil {
		return nil, errDecorate(err, "SymmOp")
	}
	if doReflect {
		gx, err = GeomReflect(gx, axis, tol)
		if err != nil {
			return nil, errDecorate(err, "SymmOp")
		}
	}
	return gx, nil
}

//geomVector wraps g in a vector after checking that it holds whole atoms. g is not copied.
func geomVector(g []float64, caller string) (*mat.VecDense, error) {
	if len(g) == 0 || len(g)%3 != 0 {
		return nil, newError(DimensionError, caller, "geometry length %d is not a positive multiple of 3", len(g))
	}
	return mat.NewVecDense(len(g), g), nil
}
