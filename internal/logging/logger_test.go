/*
 * logger_test.go, part of gosymm.
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

package logging

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFields(Te *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromCore(core).Named("group").With(String("file", "ch4.xyz"))
	l.Debug("principals", Floats("moments", []float64{3.2, 3.2, 3.2}), Int("atoms", 5))
	l.Info("result", String("label", "cubic"), Bool("reflection", false), Float64("factor", 0.0001))
	l.Warn("odd", Err(errors.New("boom")), Any("axis", [3]float64{0, 0, 1}))
	l.Error("nil error", Err(nil))
	entries := logs.All()
	require.Len(Te, entries, 4)
	assert.Equal(Te, "group", entries[0].LoggerName)
	ctx := entries[0].ContextMap()
	assert.Equal(Te, "ch4.xyz", ctx["file"])
	assert.Equal(Te, int64(5), ctx["atoms"])
	ctx = entries[1].ContextMap()
	assert.Equal(Te, "cubic", ctx["label"])
	assert.Equal(Te, false, ctx["reflection"])
	assert.Equal(Te, "boom", entries[2].ContextMap()["error"])
	assert.Equal(Te, "<nil>", entries[3].ContextMap()["error"])
	assert.Equal(Te, zapcore.ErrorLevel, entries[3].Level)
}

func TestLevelFilter(Te *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewFromCore(core)
	l.Debug("hidden")
	l.Info("shown")
	assert.Equal(Te, 1, logs.Len())
}

func TestParseLevel(Te *testing.T) {
	for in, want := range map[string]zapcore.Level{"DEBUG": zapcore.DebugLevel, "info": zapcore.InfoLevel, "warning": zapcore.WarnLevel, "error": zapcore.ErrorLevel} {
		l, ok := ParseLevel(in)
		assert.True(Te, ok, in)
		assert.Equal(Te, want, l, in)
	}
	l, ok := ParseLevel("loud")
	assert.False(Te, ok)
	assert.Equal(Te, zapcore.InfoLevel, l)
}

func TestNewLogger(Te *testing.T) {
	for _, format := range []string{"json", "console"} {
		l, err := NewLogger(LogConfig{Level: "debug", Format: format})
		require.NoError(Te, err, format)
		l.Debug("hello")
	}
	out := filepath.Join(Te.TempDir(), "log.json")
	l, err := NewLogger(LogConfig{Level: "info", Format: "json", OutputPaths: []string{out}})
	require.NoError(Te, err)
	l.Info("written")
	require.NoError(Te, l.Sync())
	assert.FileExists(Te, out)
	_, err = NewLogger(LogConfig{OutputPaths: []string{filepath.Join(Te.TempDir(), "no", "such", "dir", "log")}})
	assert.Error(Te, err)
}

func TestNop(Te *testing.T) {
	l := NewNop()
	l.Info("nothing", String("a", "b"))
	assert.NotNil(Te, l.With(Int("n", 1)).Named("x"))
}
