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

/*Package config loads the gosymm settings, the symmetry tolerances and the logging
setup, from a YAML file and GOSYMM_* environment variables. Nested keys map to
variables by replacing dots with underscores, so tolerances.symm_match_tol is
read from GOSYMM_TOLERANCES_SYMM_MATCH_TOL.*/
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	symm "github.com/bskinn/opan-sub001"
	"github.com/bskinn/opan-sub001/internal/logging"
)

const envPrefix = "GOSYMM"

const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

//Config is the complete gosymm configuration.
type Config struct {
	Tolerances symm.ToleranceConfig `mapstructure:"tolerances" yaml:"tolerances"`
	Log        logging.LogConfig    `mapstructure:"log" yaml:"log"`
}

//Default returns the configuration used when no file or variable says otherwise.
func Default() *Config {
	cfg := &Config{Tolerances: symm.DefaultTolerances()}
	ApplyDefaults(cfg)
	return cfg
}

//ApplyDefaults fills the zero fields of an unmarshalled cfg. None of the tolerances
//has a usable zero value, except the rounding digits, which are left alone; the
//loaders get their default from viper instead.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}
	d := symm.DefaultTolerances()
	t := &cfg.Tolerances
	if t.OrthonormTol == 0 {
		t.OrthonormTol = d.OrthonormTol
	}
	if t.SymmMatchTol == 0 {
		t.SymmMatchTol = d.SymmMatchTol
	}
	if t.SymmMatchNMax == 0 {
		t.SymmMatchNMax = d.SymmMatchNMax
	}
	if t.NonParallelTol == 0 {
		t.NonParallelTol = d.NonParallelTol
	}
	if t.ZeroVecTol == 0 {
		t.ZeroVecTol = d.ZeroVecTol
	}
	if t.SymmAvgMax == 0 {
		t.SymmAvgMax = d.SymmAvgMax
	}
	if t.BasisMaxTries == 0 {
		t.BasisMaxTries = d.BasisMaxTries
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
}

//Validate checks the tolerances and the logging settings.
func (C *Config) Validate() error {
	if err := C.Tolerances.Validate(); err != nil {
		return err
	}
	if _, ok := logging.ParseLevel(C.Log.Level); !ok {
		return fmt.Errorf("unknown log level %q", C.Log.Level)
	}
	if C.Log.Format != "json" && C.Log.Format != "console" {
		return fmt.Errorf("unknown log format %q, use json or console", C.Log.Format)
	}
	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)
	return v
}

//setDefaults registers every key with viper. Unmarshal only looks up environment
//variables for keys viper already knows, so this is also what makes them all
//overridable from the environment.
func setDefaults(v *viper.Viper) {
	d := Default()
	t := symm.DefaultTolerances()
	v.SetDefault("tolerances.orthonorm_tol", t.OrthonormTol)
	v.SetDefault("tolerances.symm_match_tol", t.SymmMatchTol)
	v.SetDefault("tolerances.symm_match_nmax", t.SymmMatchNMax)
	v.SetDefault("tolerances.non_parallel_tol", t.NonParallelTol)
	v.SetDefault("tolerances.zero_vec_tol", t.ZeroVecTol)
	v.SetDefault("tolerances.atom_weight_round_digits", t.AtomWeightRoundDigits)
	v.SetDefault("tolerances.symm_avg_max", t.SymmAvgMax)
	v.SetDefault("tolerances.basis_max_tries", t.BasisMaxTries)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.output_paths", []string{"stderr"})
	v.SetDefault("log.error_output_paths", []string{"stderr"})
}

//Load reads the YAML file path, lets GOSYMM_* variables override it, and validates
//the result.
func Load(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: can't read %q: %w", path, err)
	}
	return unmarshalAndFinalize(v)
}

//LoadFromEnv builds the configuration from the defaults and GOSYMM_* variables only.
func LoadFromEnv() (*Config, error) {
	return unmarshalAndFinalize(newViper())
}

func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: can't unmarshal: %w", err)
	}
	ApplyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: invalid: %w", err)
	}
	return cfg, nil
}
