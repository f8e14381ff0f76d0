/*
 * toptype.go, part of gosymm.
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

import "strings"

//TopType is the inertial shape of a molecule. It decides which symmetry
//search strategy applies.
type TopType int

const (
	Atom TopType = iota
	Linear
	Spherical
	SymmetricOblate
	SymmetricProlate
	Asymmetric
)

var topNames = [...]string{"Atom", "Linear", "Spherical", "SymmetricOblate", "SymmetricProlate", "Asymmetric"}

func (t TopType) String() string {
	if t < 0 || int(t) >= len(topNames) {
		return "Unknown"
	}
	return topNames[t]
}

//ParseTopType returns the TopType named s (case insensitive).
func ParseTopType(s string) (TopType, error) {
	for i, n := range topNames {
		if strings.EqualFold(n, s) {
			return TopType(i), nil
		}
	}
	return Atom, newError(ConfigError, "ParseTopType", "unknown top type %q", s)
}
