/*
 * config_test.go, part of gosymm.
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

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	symm "github.com/bskinn/opan-sub001"
)

const sampleYAML = `
tolerances:
  symm_match_tol: 0.01
  symm_match_nmax: 8
log:
  level: debug
  format: json
`

func writeConfig(Te *testing.T, content string) string {
	Te.Helper()
	name := filepath.Join(Te.TempDir(), "gosymm.yaml")
	require.NoError(Te, os.WriteFile(name, []byte(content), 0o644))
	return name
}

func TestDefault(Te *testing.T) {
	cfg := Default()
	assert.Equal(Te, symm.DefaultTolerances(), cfg.Tolerances)
	assert.Equal(Te, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(Te, DefaultLogFormat, cfg.Log.Format)
	assert.NoError(Te, cfg.Validate())
	ApplyDefaults(nil)
}

func TestApplyDefaultsKeepsValues(Te *testing.T) {
	cfg := &Config{}
	cfg.Tolerances.SymmMatchTol = 0.05
	cfg.Log.Format = "json"
	ApplyDefaults(cfg)
	assert.Equal(Te, 0.05, cfg.Tolerances.SymmMatchTol)
	assert.Equal(Te, "json", cfg.Log.Format)
	assert.Equal(Te, symm.DefaultTolerances().SymmMatchNMax, cfg.Tolerances.SymmMatchNMax)
}

func TestValidate(Te *testing.T) {
	cfg := Default()
	cfg.Tolerances.SymmAvgMax = 1
	assert.True(Te, errors.Is(cfg.Validate(), symm.ErrConfig))
	cfg = Default()
	cfg.Log.Level = "loud"
	assert.Error(Te, cfg.Validate())
	cfg = Default()
	cfg.Log.Format = "xml"
	assert.Error(Te, cfg.Validate())
}

func TestLoad(Te *testing.T) {
	cfg, err := Load(writeConfig(Te, sampleYAML))
	require.NoError(Te, err)
	assert.Equal(Te, 0.01, cfg.Tolerances.SymmMatchTol)
	assert.Equal(Te, 8, cfg.Tolerances.SymmMatchNMax)
	assert.Equal(Te, symm.DefaultTolerances().ZeroVecTol, cfg.Tolerances.ZeroVecTol)
	assert.Equal(Te, "debug", cfg.Log.Level)
	assert.Equal(Te, "json", cfg.Log.Format)
}

func TestLoadEnvOverride(Te *testing.T) {
	Te.Setenv("GOSYMM_TOLERANCES_SYMM_MATCH_NMAX", "12")
	Te.Setenv("GOSYMM_LOG_LEVEL", "warn")
	cfg, err := Load(writeConfig(Te, sampleYAML))
	require.NoError(Te, err)
	assert.Equal(Te, 12, cfg.Tolerances.SymmMatchNMax)
	assert.Equal(Te, "warn", cfg.Log.Level)
	cfg, err = LoadFromEnv()
	require.NoError(Te, err)
	assert.Equal(Te, 12, cfg.Tolerances.SymmMatchNMax)
	assert.Equal(Te, symm.DefaultTolerances().SymmMatchTol, cfg.Tolerances.SymmMatchTol)
}

func TestLoadErrors(Te *testing.T) {
	_, err := Load(filepath.Join(Te.TempDir(), "missing.yaml"))
	assert.Error(Te, err)
	_, err = Load(writeConfig(Te, "tolerances:\n  symm_match_tol: 2\n"))
	assert.True(Te, errors.Is(err, symm.ErrConfig))
	_, err = Load(writeConfig(Te, "log:\n  format: xml\n"))
	assert.Error(Te, err)
}

func TestRoundDigits(Te *testing.T) {
	want := symm.DefaultTolerances().AtomWeightRoundDigits
	require.NotZero(Te, want)
	assert.Equal(Te, want, Default().Tolerances.AtomWeightRoundDigits)
	cfg, err := LoadFromEnv()
	require.NoError(Te, err)
	assert.Equal(Te, want, cfg.Tolerances.AtomWeightRoundDigits)
	cfg, err = Load(writeConfig(Te, sampleYAML))
	require.NoError(Te, err)
	assert.Equal(Te, want, cfg.Tolerances.AtomWeightRoundDigits)
	//zero is a valid setting and must survive loading
	cfg, err = Load(writeConfig(Te, "tolerances:\n  atom_weight_round_digits: 0\n"))
	require.NoError(Te, err)
	assert.Equal(Te, 0, cfg.Tolerances.AtomWeightRoundDigits)
	Te.Setenv("GOSYMM_TOLERANCES_ATOM_WEIGHT_ROUND_DIGITS", "2")
	cfg, err = LoadFromEnv()
	require.NoError(Te, err)
	assert.Equal(Te, 2, cfg.Tolerances.AtomWeightRoundDigits)
}
