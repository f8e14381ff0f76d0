/*
 * doc.go, part of gosymm.
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

/*Package symm determines the point group of molecules from their cartesian geometry.

A geometry is a slice of stacked coordinates (x1,y1,z1,x2,...) with one weight,
normally the atomic mass, per atom. All functions assume the geometry has its center
of mass at the origin; the inertia package takes care of that, and of the principal
axes and top type FindPointGroup needs.

The basic tool is the match factor (GeomSymmMatch): the geometry is transformed by a
rotation, optionally followed by a reflection, and each transformed atom is paired
with the closest original atom, taking the weights into account. The worst pairing
distance, scaled and clamped to [0,1], is the factor. A transform is a symmetry
operation when its factor is at or below the match tolerance.

On top of that, FindRotationalOrder and ClassifyAxis characterize single axes, and
FindPointGroup assigns groups to atoms, linear molecules and (with a reference axis)
spherical tops. Symmetric and asymmetric tops are reported as not supported.

All tolerances are in a ToleranceConfig, which is never modified. Errors are of the
*Error type, and can be checked with errors.Is against the Err* values.

The package is stateless: every function is safe for concurrent use. The only source
of randomness, in OrthoBasis, is a parameter.
*/
package symm
