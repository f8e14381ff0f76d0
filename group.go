/*
 * group.go, part of gosymm.
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
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/bskinn/opan-sub001/v3"
)

//Point group labels returned by FindPointGroup.
const (
	LabelAtom    = "Kh"
	LabelDinfh   = "D∞h"
	LabelCinfv   = "C∞v"
	LabelCubic   = "cubic"
	unknownSigma = 0
)

//PointGroup is the result of a point group search. SymmetryNumber is the rotational
//symmetry number, or 0 if it could not be determined. Reference is the first
//symmetry axis found, when the search needs one.
type PointGroup struct {
	Label          string
	SymmetryNumber int
	Reference      *Axis
}

//FindPointGroup determines the point group of the centered geometry g with atomic weights w,
//given the principal axes of inertia of the molecule (the columns of principal, sorted
//by increasing moment) and its top type.
//
//Atoms are always in Kh. Linear molecules are D∞h if the plane normal to the molecular
//axis is a mirror plane, C∞v otherwise. For spherical tops the search only goes as far as
//finding a reference axis of order 2 or more, trying first the atom positions and then the
//sums of groups of 2 to tol.SymmAvgMax atoms of the same weight; the resulting group is
//labeled LabelCubic with an unknown symmetry number. If no such axis exists, a SymmetryNotFound
//Error is returned. Other top types give a NotSupported Error.
func FindPointGroup(g, w []float64, principal mat.Matrix, top TopType, tol ToleranceConfig) (PointGroup, error) {
	const caller = "FindPointGroup"
	if top == Atom {
		return PointGroup{Label: LabelAtom, SymmetryNumber: 1}, nil
	}
	if err := tol.Validate(); err != nil {
		return PointGroup{}, errDecorate(err, caller)
	}
	if err := checkWeights(g, w, caller); err != nil {
		return PointGroup{}, err
	}
	switch top {
	case Linear:
		return linearGroup(g, w, principal, tol)
	case Spherical:
		return sphericalGroup(g, w, tol)
	case SymmetricOblate, SymmetricProlate, Asymmetric:
		return PointGroup{}, newError(NotSupported, caller, "point group search for %s tops is not supported", top)
	}
	return PointGroup{}, newError(ConfigError, caller, "unknown top type %d", int(top))
}

func linearGroup(g, w []float64, principal mat.Matrix, tol ToleranceConfig) (PointGroup, error) {
	if principal == nil {
		return PointGroup{}, newError(DimensionError, "FindPointGroup", "linear molecules need the principal axes")
	}
	if r, c := principal.Dims(); r != 3 || c < 1 {
		return PointGroup{}, newError(DimensionError, "FindPointGroup", "principal axes must be a 3xN matrix, got %dx%d", r, c)
	}
	ax := mat.NewVecDense(3, mat.Col(nil, 0, principal))
	fac, err := GeomSymmMatch(g, w, ax, 0, true, tol)
	if err != nil {
		return PointGroup{}, errDecorate(err, "FindPointGroup")
	}
	if fac <= tol.SymmMatchTol {
		return PointGroup{Label: LabelDinfh, SymmetryNumber: 2}, nil
	}
	return PointGroup{Label: LabelCinfv, SymmetryNumber: 1}, nil
}

func sphericalGroup(g, w []float64, tol ToleranceConfig) (PointGroup, error) {
	const caller = "FindPointGroup"
	coords, _ := v3.NewMatrix(g)
	atomAxes := make([][]float64, 0, len(w))
	for i := 0; i < coords.NVecs(); i++ {
		atomAxes = append(atomAxes, coords.VecView(i).Flat())
	}
	ax, err := firstRotationAxis(g, w, atomAxes, tol)
	if err != nil {
		return PointGroup{}, errDecorate(err, caller)
	}
	if ax == nil {
		mid, err := midpointAxes(g, w, tol)
		if err != nil {
			return PointGroup{}, errDecorate(err, caller)
		}
		ax, err = firstRotationAxis(g, w, mid, tol)
		if err != nil {
			return PointGroup{}, errDecorate(err, caller)
		}
	}
	if ax == nil {
		return PointGroup{}, newError(SymmetryNotFound, caller, "no rotation axis of order 2 or more found for a spherical top")
	}
	return PointGroup{Label: LabelCubic, SymmetryNumber: unknownSigma, Reference: ax}, nil
}

//firstRotationAxis classifies the candidates in order and returns the first one with a
//proper rotation order of at least 2, or nil. Candidates shorter than tol.ZeroVecTol are skipped.
func firstRotationAxis(g, w []float64, candidates [][]float64, tol ToleranceConfig) (*Axis, error) {
	for _, c := range candidates {
		if floats.Norm(c, 2) < tol.ZeroVecTol {
			continue
		}
		ax, err := ClassifyAxis(g, w, mat.NewVecDense(3, c), tol)
		if err != nil {
			return nil, err
		}
		if ax.Order >= 2 {
			return &ax, nil
		}
	}
	return nil, nil
}

//midpointAxes returns, for each distinct weight in w, the sums of the position vectors
//of every group of 2 to tol.SymmAvgMax atoms with that weight.
func midpointAxes(g, w []float64, tol ToleranceConfig) ([][]float64, error) {
	var ret [][]float64
	for _, wt := range UniqueWeights(w, tol.AtomWeightRoundDigits) {
		sub, err := SubsetByWeight(g, w, wt, tol.AtomWeightRoundDigits)
		if err != nil {
			return nil, errDecorate(err, "midpointAxes")
		}
		n := len(sub) / 3
		if n < 2 {
			continue
		}
		coords, _ := v3.NewMatrix(sub)
		for k := 2; k <= tol.SymmAvgMax && k <= n; k++ {
			for _, idx := range combinations(n, k) {
				sum := make([]float64, 3)
				for _, i := range idx {
					floats.Add(sum, coords.VecView(i).Flat())
				}
				ret = append(ret, sum)
			}
		}
	}
	return ret, nil
}

//combinations returns every k-subset of 0..n-1 as sorted index slices, in lexicographic order.
func combinations(n, k int) [][]int {
	if k < 0 || k > n {
		return nil
	}
	var ret [][]int
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		ret = append(ret, append([]int(nil), idx...))
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return ret
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
