/*
 * config.go, part of gosymm.
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

//ToleranceConfig holds every tolerance used by the symmetry search.
//It is plain configuration; functions in this package never modify it.
type ToleranceConfig struct {
	//Maximum deviation of dot products from the Kronecker delta for
	//a set of vectors to be considered orthonormal.
	OrthonormTol float64 `mapstructure:"orthonorm_tol" yaml:"orthonorm_tol"`
	//Match factor at or below which a transform is a symmetry operation.
	SymmMatchTol float64 `mapstructure:"symm_match_tol" yaml:"symm_match_tol"`
	//Highest rotation order searched.
	SymmMatchNMax int `mapstructure:"symm_match_nmax" yaml:"symm_match_nmax"`
	//Minimum angle, in degrees, between two vectors for them to be non-parallel.
	NonParallelTol float64 `mapstructure:"non_parallel_tol" yaml:"non_parallel_tol"`
	//Minimum norm of a vector with a usable direction.
	ZeroVecTol float64 `mapstructure:"zero_vec_tol" yaml:"zero_vec_tol"`
	//Decimal digits kept when grouping atoms by weight.
	AtomWeightRoundDigits int `mapstructure:"atom_weight_round_digits" yaml:"atom_weight_round_digits"`
	//Largest group of same-weight atoms summed into a candidate axis.
	SymmAvgMax int `mapstructure:"symm_avg_max" yaml:"symm_avg_max"`
	//Random samples tried by OrthoBasis before giving up.
	BasisMaxTries int `mapstructure:"basis_max_tries" yaml:"basis_max_tries"`
}

//DefaultTolerances returns the default tolerance set.
func DefaultTolerances() ToleranceConfig {
	return ToleranceConfig{
		OrthonormTol:          1e-8,
		SymmMatchTol:          1e-3,
		SymmMatchNMax:         10,
		NonParallelTol:        1e-3,
		ZeroVecTol:            1e-6,
		AtomWeightRoundDigits: 4,
		SymmAvgMax:            2,
		BasisMaxTries:         1000,
	}
}

//Validate returns a ConfigError describing the first unusable value in T, or nil.
func (T ToleranceConfig) Validate() error {
	const caller = "ToleranceConfig.Validate"
	switch {
	case !(T.OrthonormTol > 0):
		return newError(ConfigError, caller, "orthonormality tolerance must be positive, got %g", T.OrthonormTol)
	case !(T.SymmMatchTol > 0):
		return newError(ConfigError, caller, "match tolerance must be positive, got %g", T.SymmMatchTol)
	case T.SymmMatchTol >= 1:
		return newError(ConfigError, caller, "match tolerance must be below 1 (the match factor ceiling), got %g", T.SymmMatchTol)
	case T.SymmMatchNMax < 1:
		return newError(ConfigError, caller, "maximum rotation order must be at least 1, got %d", T.SymmMatchNMax)
	case !(T.NonParallelTol > 0) || T.NonParallelTol >= 90:
		return newError(ConfigError, caller, "non-parallel tolerance must be in (0, 90) degrees, got %g", T.NonParallelTol)
	case !(T.ZeroVecTol > 0):
		return newError(ConfigError, caller, "zero vector tolerance must be positive, got %g", T.ZeroVecTol)
	case T.AtomWeightRoundDigits < 0:
		return newError(ConfigError, caller, "atomic weight rounding digits must not be negative, got %d", T.AtomWeightRoundDigits)
	case T.SymmAvgMax < 2:
		return newError(ConfigError, caller, "atom averaging group size must be at least 2, got %d", T.SymmAvgMax)
	case T.BasisMaxTries < 1:
		return newError(ConfigError, caller, "basis search needs at least one try, got %d", T.BasisMaxTries)
	}
	return nil
}
