/*
 * subset.go, part of gosymm.
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

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/bskinn/opan-sub001/v3"
)

//checkWeights returns a DimensionError unless g holds exactly one 3D point per weight in w.
func checkWeights(g, w []float64, caller string) error {
	if len(g) == 0 || len(g) != 3*len(w) {
		return newError(DimensionError, caller, "geometry length %d is not 3 times the number of weights (%d)", len(g), len(w))
	}
	return nil
}

//SubsetByWeight returns the coordinates of the atoms in g whose weight, rounded half to even
//to digits decimal places, equals target rounded the same way. The atoms keep their order. If no atom
//matches, an empty (non-nil) slice and a nil error are returned.
func SubsetByWeight(g, w []float64, target float64, digits int) ([]float64, error) {
	if err := checkWeights(g, w, "SubsetByWeight"); err != nil {
		return nil, err
	}
	coords, _ := v3.NewMatrix(g)
	rt := scalar.RoundEven(target, digits)
	clist := make([]int, 0, len(w))
	for i, a := range w {
		if scalar.RoundEven(a, digits) == rt {
			clist = append(clist, i)
		}
	}
	if len(clist) == 0 {
		return []float64{}, nil
	}
	sub := v3.Zeros(len(clist))
	if err := sub.SomeVecsSafe(coords, clist); err != nil {
		return nil, newError(DimensionError, "SubsetByWeight", "%s", err.Error())
	}
	return sub.Flat(), nil
}

//UniqueWeights returns the distinct weights in w, rounded half to even to digits decimal places,
//in the order in which they first appear.
func UniqueWeights(w []float64, digits int) []float64 {
	ret := make([]float64, 0, len(w))
	for _, a := range w {
		r := scalar.RoundEven(a, digits)
		if math.IsNaN(r) {
			continue
		}
		seen := false
		for _, u := range ret {
			if u == r {
				seen = true
				break
			}
		}
		if !seen {
			ret = append(ret, r)
		}
	}
	return ret
}
