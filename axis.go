/*
 * axis.go, part of gosymm.
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

//Axis is a candidate symmetry axis of a molecule. Order is the highest proper
//rotation order found around it (1 means no rotational symmetry) and Reflection
//whether the plane normal to it is a mirror plane.
type Axis struct {
	Vector     [3]float64
	Order      int
	Reflection bool
}

//FindRotationalOrder returns the highest order n, from nMax down, such that the rotation of
//2pi/n around axis (followed by a reflection through the plane normal to axis, if improper
//is true) is a symmetry operation of g, within tol.SymmMatchTol. It also returns the match
//factor of that operation. For a proper axis the order is at least 1, as the full turn
//always matches. For an improper axis, if no order matches, 0 is returned together with the
//match factor for n=1.
func FindRotationalOrder(g, w []float64, axis mat.Matrix, improper bool, nMax int, tol ToleranceConfig) (int, float64, error) {
	if nMax < 1 {
		return 0, 0, newError(ConfigError, "FindRotationalOrder", "maximum rotation order must be at least 1, got %d", nMax)
	}
	ax, err := MakeVector(axis, 3, false)
	if err != nil {
		return 0, 0, errDecorate(err, "FindRotationalOrder")
	}
	fac := 1.0
	for n := nMax; n > 0; n-- {
		fac, err = GeomSymmMatch(g, w, ax, 2*math.Pi/float64(n), improper, tol)
		if err != nil {
			return 0, 0, errDecorate(err, "FindRotationalOrder")
		}
		if fac <= tol.SymmMatchTol {
			return n, fac, nil
		}
	}
	return 0, fac, nil
}

//ClassifyAxis returns the Axis record for axis in g: its proper rotation order,
//searched up to tol.SymmMatchNMax, and whether it is the normal of a mirror plane.
func ClassifyAxis(g, w []float64, axis mat.Matrix, tol ToleranceConfig) (Axis, error) {
	ax, err := MakeVector(axis, 3, false)
	if err != nil {
		return Axis{}, errDecorate(err, "ClassifyAxis")
	}
	order, _, err := FindRotationalOrder(g, w, ax, false, tol.SymmMatchNMax, tol)
	if err != nil {
		return Axis{}, errDecorate(err, "ClassifyAxis")
	}
	refl, err := GeomSymmMatch(g, w, ax, 0, true, tol)
	if err != nil {
		return Axis{}, errDecorate(err, "ClassifyAxis")
	}
	ax.ScaleVec(1/mat.Norm(ax, 2), ax)
	return Axis{Vector: array3(ax), Order: order, Reflection: refl <= tol.SymmMatchTol}, nil
}
