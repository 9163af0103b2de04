/*
 * errors.go, part of rdfadf.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package chem

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every error returned by the packages of this module that
// originates from bad input can be matched against one of these with errors.Is.
var (
	// ErrInvalidLabel marks a malformed or unrecognized classification selector.
	ErrInvalidLabel = errors.New("invalid label")
	// ErrNoMatchingAtoms marks a center selector matching zero atoms.
	ErrNoMatchingAtoms = errors.New("no matching atoms")
	// ErrUnknownSymbol marks a chemical symbol absent from the periodic table.
	ErrUnknownSymbol = errors.New("unknown symbol")
	// ErrInvalidParameter marks a malformed numeric parameter or structure.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// CError is the general error type of the module. It fulfills the Error interface,
// and unwraps to both its kind and, if present, the error that caused it.
type CError struct {
	message string
	kind    error
	cause   error
	deco    []string
}

// NewError returns a new CError of the given kind, with a message built
// from format and args the way fmt.Sprintf does.
func NewError(kind error, format string, args ...interface{}) *CError {
	return &CError{message: fmt.Sprintf(format, args...), kind: kind}
}

// Error returns a string with an error message.
func (err *CError) Error() string {
	var b strings.Builder
	b.WriteString("rdfadf: ")
	if err.kind != nil {
		b.WriteString(err.kind.Error())
		b.WriteString(": ")
	}
	b.WriteString(err.message)
	if err.cause != nil {
		b.WriteString(": ")
		b.WriteString(err.cause.Error())
	}
	return b.String()
}

// Decorate adds dec to the decoration slice of the error, and returns the
// resulting slice. If dec is empty, the slice is just returned.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Decorated is Decorate that returns the receiver, for use in return statements.
func (err *CError) Decorated(dec string) *CError {
	err.Decorate(dec)
	return err
}

// Wrap sets cause as the underlying error and returns the receiver.
func (err *CError) Wrap(cause error) *CError {
	err.cause = cause
	return err
}

// Kind returns the sentinel kind of the error.
func (err *CError) Kind() error { return err.kind }

// Unwrap returns the kind and the cause of the error, the nil ones omitted.
func (err *CError) Unwrap() []error {
	ret := make([]error, 0, 2)
	if err.kind != nil {
		ret = append(ret, err.kind)
	}
	if err.cause != nil {
		ret = append(ret, err.cause)
	}
	return ret
}

// ErrDecorate decorates err with the caller's name if err implements Error,
// and returns it. Other errors are returned unchanged.
func ErrDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var e Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}
