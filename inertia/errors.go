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

package inertia

import (
	"fmt"
	"strings"
)

//ErrorCode identifies the kind of an inertia Error.
type ErrorCode string

const (
	ErrDimension      ErrorCode = "dimension"
	ErrInvalidMass    ErrorCode = "invalid mass"
	ErrNegativeMoment ErrorCode = "negative moment"
	ErrEigen          ErrorCode = "eigen decomposition"
)

//Error is the error type of the inertia package.
type Error struct {
	Code     ErrorCode
	message  string
	deco     []string
	critical bool
}

func newError(code ErrorCode, caller, format string, a ...interface{}) *Error {
	return &Error{Code: code, message: fmt.Sprintf(format, a...), deco: []string{caller}, critical: true}
}

//Error returns a string with an error message.
func (err *Error) Error() string {
	return fmt.Sprintf("inertia: %s: %s (%s)", err.Code, err.message, strings.Join(err.deco, " <- "))
}

//Decorate adds dec to the decoration slice of the error and returns the slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or it can be ignored.
func (err *Error) Critical() bool { return err.critical }

func errDecorate(err error, caller string) error {
	if e, ok := err.(*Error); ok {
		e.Decorate(caller)
	}
	return err
}
