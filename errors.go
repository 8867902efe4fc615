/*
 * errors.go, part of goProLIF.
 *
 * Copyright 2023 The goProLIF developers
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

package prolif

// Error is the interface for errors that all packages in this library
// implement. The Decorate method allows adding and retrieving info from the
// error without changing its type or wrapping it around something else.
// The decoration slice should contain the functions in the calling stack,
// plus, for each function, any relevant extra information. If passed an
// empty string, Decorate should just return the current value, not add the
// empty string to the slice.
type Error interface {
	Error() string
	Decorate(string) []string
}

// LastFrameError is a harmless error marking the normal end of a frame
// sequence, so it can be filtered in a type switch that looks for this
// interface.
type LastFrameError interface {
	Error
	Critical() bool
	NormalLastFrameTermination() //does nothing, just separates this interface from other Errors
}

//CError is the concrete error type of the package.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

//Decorate adds the dec string to the decoration slice of strings of the
//error, and returns the resulting slice.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//errDecorate asserts that err implements Error and decorates it with the
//caller's name before returning it. It will panic if given an error of
//a different type, which is considered a programming mistake.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

//lastFrameError implements LastFrameError.
type lastFrameError struct {
	deco []string
}

func (E lastFrameError) NormalLastFrameTermination() {}

func (E lastFrameError) Error() string { return "EOF" }

func (E lastFrameError) Critical() bool { return false }

func (E lastFrameError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//NewLastFrameError returns a harmless error signaling the normal end of a
//frame sequence. Exported so that external FrameSource implementations can
//terminate their sequences the same way the in-memory Molecule does.
func NewLastFrameError(caller string) LastFrameError {
	return &lastFrameError{deco: []string{caller}}
}
