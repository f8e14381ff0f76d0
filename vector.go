/*
 * vector.go, part of gosymm.
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
	"reflect"

	"gonum.org/v1/gonum/mat"

	"github.com/bskinn/opan-sub001/v3"
)

//MakeVector reduces v, which must be a row or a column, to a vector.
//If dims > 0 the vector must have exactly dims elements. If normalize is true
//the result is divided by its euclidean norm; the norm is not checked, callers
//must make sure it is not (close to) zero.
func MakeVector(v mat.Matrix, dims int, normalize bool) (*mat.VecDense, error) {
	const caller = "MakeVector"
	if isNilMatrix(v) {
		return nil, newError(DimensionError, caller, "nil input")
	}
	r, c := v.Dims()
	var ret *mat.VecDense
	switch {
	case c == 1:
		ret = mat.NewVecDense(r, nil)
		for i := 0; i < r; i++ {
			ret.SetVec(i, v.At(i, 0))
		}
	case r == 1:
		ret = mat.NewVecDense(c, nil)
		for i := 0; i < c; i++ {
			ret.SetVec(i, v.At(0, i))
		}
	default:
		return nil, newError(DimensionError, caller, "a %dx%d matrix is not reducible to a vector", r, c)
	}
	if dims > 0 && ret.Len() != dims {
		return nil, newError(DimensionError, caller, "vector dimension is %d, not %d", ret.Len(), dims)
	}
	if normalize {
		ret.ScaleVec(1/mat.Norm(ret, 2), ret)
	}
	return ret, nil
}

//isNilMatrix reports whether m is nil, including a nil pointer
//wrapped in the interface, such as a (*mat.VecDense)(nil).
func isNilMatrix(m mat.Matrix) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

//Vec3 returns a 3D column vector.
func Vec3(x, y, z float64) *mat.VecDense {
	return mat.NewVecDense(3, []float64{x, y, z})
}

//VectorAngle returns the angle between a and b in degrees. a and b must have the
//same length. It does not check for zero vectors.
func VectorAngle(a, b mat.Vector) float64 {
	arg := mat.Dot(a, b) / (mat.Norm(a, 2) * mat.Norm(b, 2))
	//Take care of floating point math errors
	if arg > 1 {
		arg = 1
	} else if arg < -1 {
		arg = -1
	}
	return rad2deg(math.Acos(arg))
}

//IsParallel returns true if a and b are parallel or anti-parallel to within tolDeg degrees.
func IsParallel(a, b mat.Vector, tolDeg float64) bool {
	angle := VectorAngle(a, b)
	return math.Min(math.Abs(angle), math.Abs(angle-180)) < tolDeg
}

func rad2deg(f float64) float64 {
	return f * 180 / math.Pi
}

//cross returns the cross product of two 3D vectors.
func cross(a, b mat.Vector) *mat.VecDense {
	A, _ := v3.NewMatrix([]float64{a.AtVec(0), a.AtVec(1), a.AtVec(2)})
	B, _ := v3.NewMatrix([]float64{b.AtVec(0), b.AtVec(1), b.AtVec(2)})
	C := v3.Zeros(1)
	C.Cross(A, B)
	return mat.NewVecDense(3, C.Flat())
}

//array3 copies a 3D vector into an array.
func array3(v mat.Vector) [3]float64 {
	return [3]float64{v.AtVec(0), v.AtVec(1), v.AtVec(2)}
}
