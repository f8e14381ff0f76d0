/*
 * errors.go, part of gosymm.
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
	"fmt"
	"strings"
)

//ErrorKind classifies the errors returned by this package.
type ErrorKind string

const (
	DimensionError   ErrorKind = "dimension"
	ConfigError      ErrorKind = "config"
	GeometryError    ErrorKind = "geometry"
	SymmetryNotFound ErrorKind = "symmetry-not-found"
	NotSupported     ErrorKind = "not-supported"
)

//GeometryKind refines a GeometryError.
type GeometryKind string

const (
	DegenerateAxis       GeometryKind = "degenerate-axis"
	NearParallel         GeometryKind = "near-parallel"
	BasisSearchExhausted GeometryKind = "basis-search-exhausted"
)

//Error is the error type of the symm package. Besides a message, it carries
//its kind and a decoration slice with the functions it went through
//on its way to the caller.
type Error struct {
	kind     ErrorKind
	sub      GeometryKind
	message  string
	deco     []string
	critical bool
}

//Sentinels to be used with errors.Is. A sentinel matches any Error of the same kind
//(and, for geometry errors with a sub-kind, of the same sub-kind).
var (
	ErrDimension            = &Error{kind: DimensionError}
	ErrConfig               = &Error{kind: ConfigError}
	ErrGeometry             = &Error{kind: GeometryError}
	ErrDegenerateAxis       = &Error{kind: GeometryError, sub: DegenerateAxis}
	ErrNearParallel         = &Error{kind: GeometryError, sub: NearParallel}
	ErrBasisSearchExhausted = &Error{kind: GeometryError, sub: BasisSearchExhausted}
	ErrSymmetryNotFound     = &Error{kind: SymmetryNotFound}
	ErrNotSupported         = &Error{kind: NotSupported}
)

func newError(kind ErrorKind, caller, format string, a ...interface{}) *Error {
	return &Error{kind: kind, message: fmt.Sprintf(format, a...), deco: []string{caller}, critical: true}
}

func newGeometryError(sub GeometryKind, caller, format string, a ...interface{}) *Error {
	err := newError(GeometryError, caller, format, a...)
	err.sub = sub
	return err
}

//Error returns a string with an error message.
func (err *Error) Error() string {
	kind := string(err.kind)
	if err.sub != "" {
		kind = string(err.sub)
	}
	if len(err.deco) == 0 {
		return fmt.Sprintf("symm: %s error: %s", kind, err.message)
	}
	return fmt.Sprintf("symm: %s error: %s (%s)", kind, err.message, strings.Join(err.deco, " <- "))
}

//Kind returns the kind of the error.
func (err *Error) Kind() ErrorKind { return err.kind }

//GeometryKind returns the sub-kind of a GeometryError, or an empty string.
func (err *Error) GeometryKind() GeometryKind { return err.sub }

//Decorate adds dec to the decoration slice of the error and returns the slice.
//An empty dec just returns the current decoration.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or it can be ignored.
func (err *Error) Critical() bool { return err.critical }

//Is reports whether target is a sentinel of the same kind as err.
func (err *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t == err {
		return true
	}
	if t.message != "" || t.kind != err.kind {
		return false
	}
	return t.sub == "" || t.sub == err.sub
}

//errDecorate adds caller to the decoration of err if err is an *Error.
//Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if e, ok := err.(*Error); ok {
		e.Decorate(caller)
	}
	return err
}
