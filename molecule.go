/*
 * molecule.go, part of goProLIF.
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

import (
	"fmt"

	v3 "github.com/rochoa85/ProLIF/v3"
)

//FrameSource is the interface for any ordered sequence of structural
//frames: the time steps of a trajectory, or a set of docked poses. A
//FrameSource over in-memory data should be restartable through InitRead.
type FrameSource interface {

	//Is the source ready to be read?
	Readable() bool

	//Next reads the next frame into output, or discards it if output is
	//nil. When the sequence is over it returns a LastFrameError.
	Next(output *v3.Matrix) error

	//Returns the number of atoms per frame.
	Len() int
}

//Molecule bundles a Topology with the coordinates for one or more frames.
//It implements FrameSource, so a multi-frame Molecule doubles as an
//in-memory, restartable trajectory or pose collection.
type Molecule struct {
	*Topology
	Coords  []*v3.Matrix
	current int
}

//NewMolecule builds a Molecule from a topology and a set of coordinate
//frames. Each frame must have one row per atom of the topology. A nil or
//empty frame slice is allowed; frames can be added later with AddFrame.
func NewMolecule(top *Topology, coords []*v3.Matrix) (*Molecule, error) {
	if top == nil {
		return nil, CError{msg: "Supplied a nil Topology", deco: []string{"NewMolecule"}}
	}
	M := &Molecule{Topology: top}
	for i, c := range coords {
		if c == nil || c.NVecs() != top.Len() {
			return nil, CError{msg: fmt.Sprintf("Inconsistent coordinates/atoms in frame %d", i), deco: []string{"NewMolecule"}}
		}
		M.Coords = append(M.Coords, c)
	}
	return M, nil
}

//AddFrame appends a matrix of coordinates at the end of the Coords.
//It panics if the number of coordinates does not match the number of
//atoms, as that is a programming error.
func (M *Molecule) AddFrame(newframe *v3.Matrix) {
	if newframe == nil {
		panic("Attempted to add nil frame")
	}
	if M.Len() != newframe.NVecs() {
		panic(fmt.Sprintf("Wrong number of coordinates (%d)", newframe.NVecs()))
	}
	M.Coords = append(M.Coords, newframe)
}

//LenFrames returns the number of frames in the molecule.
func (M *Molecule) LenFrames() int {
	return len(M.Coords)
}

//Frame returns the coordinates for the given frame. Panics if out of
//range.
func (M *Molecule) Frame(i int) *v3.Matrix {
	if i >= len(M.Coords) {
		panic(fmt.Sprintf("Frame requested (%d) out of range", i))
	}
	return M.Coords[i]
}

//Current returns the number of the next frame to be read.
func (M *Molecule) Current() int {
	if M == nil {
		return -1
	}
	return M.current
}

/******************************************
The following implement the FrameSource interface
******************************************/

//InitRead initializes the molecule to be read as a frame sequence, i.e.
//restarts the sequence from its first frame.
func (M *Molecule) InitRead() error {
	if M == nil || len(M.Coords) == 0 {
		return CError{msg: "Molecule has no frames to read", deco: []string{"InitRead"}}
	}
	M.current = 0
	return nil
}

//Readable returns true if the molecule exists and has frames left to be
//read.
func (M *Molecule) Readable() bool {
	return M != nil && M.Coords != nil && M.current < len(M.Coords)
}

//Next reads the next frame into output, or skips it if output is nil.
//When the last frame has been read, it returns a LastFrameError.
func (M *Molecule) Next(output *v3.Matrix) error {
	if M.current >= len(M.Coords) {
		return NewLastFrameError("Next")
	}
	if output != nil {
		if output.NVecs() != M.Len() {
			return CError{msg: fmt.Sprintf("Wrong space for frame: %d coordinates for %d atoms", output.NVecs(), M.Len()), deco: []string{"Next"}}
		}
		output.Copy(M.Coords[M.current])
	}
	M.current++
	return nil
}

/**End FrameSource implementation***********/
