/*
 * match.go, part of gosymm.
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

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/bskinn/opan-sub001/v3"
)

//Each atom is compared as a 4-vector: its 3 coordinates plus wtAxisScale times
//its weight. This gives the same distances as adding the weight as an imaginary
//part to each of the 3 coordinates, so two atoms of different weight never
//coincide, even if they sit at the same position.
var wtAxisScale = math.Sqrt(3)

//GeomSymmMatch returns the match factor between g and its image under the
//operation described by axis, theta and doReflect (see SymmOp).
//The factor is, for the worst atom of g, the distance to the closest atom of the image,
//where the distances are taken between weight-augmented positions and scaled by the larger of
//the two augmented norms (or 1, if both are smaller). It is clamped to 1.
//A factor at or below tol.SymmMatchTol means the operation is a symmetry of the molecule.
func GeomSymmMatch(g, w []float64, axis mat.Matrix, theta float64, doReflect bool, tol ToleranceConfig) (float64, error) {
	if err := checkWeights(g, w, "GeomSymmMatch"); err != nil {
		return 0, err
	}
	gx, err := SymmOp(g, axis, theta, doReflect, tol)
	if err != nil {
		return 0, errDecorate(err, "GeomSymmMatch")
	}
	orig := augment(g, w)
	img := augment(gx, w)
	onorms := make([]float64, len(orig))
	inorms := make([]float64, len(img))
	for i := range orig {
		onorms[i] = floats.Norm(orig[i], 2)
		inorms[i] = floats.Norm(img[i], 2)
	}
	var fac float64
	for i, a := range orig {
		nearest := math.Inf(1)
		for j, b := range img {
			scale := math.Max(math.Max(onorms[i], inorms[j]), 1)
			if d := floats.Distance(a, b, 2) / scale; d < nearest {
				nearest = d
			}
		}
		fac = math.Max(fac, nearest)
	}
	return math.Min(fac, 1), nil
}

//augment splits g into one weight-augmented 4-vector per atom.
func augment(g, w []float64) [][]float64 {
	coords, _ := v3.NewMatrix(g)
	ret := make([][]float64, len(w))
	for i := range ret {
		row := coords.VecView(i)
		ret[i] = []float64{row.At(0, 0), row.At(0, 1), row.At(0, 2), wtAxisScale * w[i]}
	}
	return ret
}
