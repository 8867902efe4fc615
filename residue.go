/*
 * residue.go, part of goProLIF.
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

//Residue is an ordered set of atoms with the coordinates for one frame,
//one row per atom. It is the unit interaction detectors operate on. A
//Residue is a snapshot: it is built for a frame and not updated when the
//frame changes.
type Residue struct {
	id     ResID
	atoms  []*Atom
	local  map[int]int //topology (global) atom index -> position in atoms
	coords *v3.Matrix
}

//NewResidue builds a residue directly from atoms and their coordinates,
//without a topology. The coordinate matrix must have one row per atom.
//This is the entry point for single-pose, programmatically built groups.
func NewResidue(id ResID, atoms []*Atom, coords *v3.Matrix) (*Residue, error) {
	if len(atoms) == 0 {
		return nil, CError{msg: fmt.Sprintf("Residue %s has no atoms", id.String()), deco: []string{"NewResidue"}}
	}
	if coords == nil || coords.NVecs() != len(atoms) {
		return nil, CError{msg: fmt.Sprintf("Inconsistent coordinates for residue %s", id.String()), deco: []string{"NewResidue"}}
	}
	return newResidue(id, atoms, coords), nil
}

func newResidue(id ResID, atoms []*Atom, coords *v3.Matrix) *Residue {
	R := &Residue{id: id, atoms: atoms, coords: coords}
	R.local = make(map[int]int, len(atoms))
	for i, at := range atoms {
		R.local[at.Index] = i
	}
	return R
}

//ID returns the identifier of the residue.
func (R *Residue) ID() ResID {
	return R.id
}

//Len returns the number of atoms in the residue.
func (R *Residue) Len() int {
	return len(R.atoms)
}

//Atom returns the ith atom of the residue. Panics if out of range.
func (R *Residue) Atom(i int) *Atom {
	if i >= R.Len() {
		panic("Residue: Requested Atom out of bounds")
	}
	return R.atoms[i]
}

//Coord returns a view of the coordinates of the ith atom of the residue.
//Panics if out of range.
func (R *Residue) Coord(i int) *v3.Matrix {
	if i >= R.Len() {
		panic("Residue: Requested coordinates out of bounds")
	}
	return R.coords.VecView(i)
}

//Coords returns the coordinate matrix of the residue, one row per atom.
//The matrix is not a copy; changes to it are seen by the residue.
func (R *Residue) Coords() *v3.Matrix {
	return R.coords
}

//Local returns the position, within the residue, of the atom with the
//given topology index, or -1 if the atom is not part of the residue.
func (R *Residue) Local(topologyIndex int) int {
	l, ok := R.local[topologyIndex]
	if !ok {
		return -1
	}
	return l
}

//Centroid returns the geometric center of the residue.
func (R *Residue) Centroid() *v3.Matrix {
	return Centroid(R.coords)
}

//Valid returns an error describing why the residue cannot be used for
//detection (no atoms or missing/mismatched coordinates), or nil.
func (R *Residue) Valid() error {
	if R == nil {
		return CError{msg: "Given a nil residue", deco: []string{"Valid"}}
	}
	if len(R.atoms) == 0 {
		return CError{msg: fmt.Sprintf("Residue %s has no atoms", R.id.String()), deco: []string{"Valid"}}
	}
	if R.coords == nil {
		return CError{msg: fmt.Sprintf("Residue %s has no coordinates", R.id.String()), deco: []string{"Valid"}}
	}
	if R.coords.NVecs() != len(R.atoms) {
		return CError{msg: fmt.Sprintf("Residue %s: %d atoms but %d coordinates", R.id.String(), len(R.atoms), R.coords.NVecs()), deco: []string{"Valid"}}
	}
	return nil
}

//String returns the string form of the residue's identifier.
func (R *Residue) String() string {
	return R.id.String()
}
