/*
 * topology.go, part of goProLIF.
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

//Atomer is the basic interface for a topology.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i
	//of the Atom slice in the Topology. Should panic if
	//out of range.
	Atom(i int) *Atom

	Len() int
}

//Topology contains the information about a molecular system which is not
//expected to change in time: the atoms, their bonds and their grouping
//into residues. Coordinates are kept separately, one v3.Matrix per frame.
type Topology struct {
	atoms   []*Atom
	order   []ResID
	members map[ResID][]int
}

//NewTopology builds a topology from the atoms given. The Index field of
//every atom is (re)set to its position in the slice, and atoms are grouped
//into residues by their (MolName, MolID, Chain) triple, in order of first
//appearance. It returns an error on a nil or empty atom slice.
func NewTopology(atoms []*Atom) (*Topology, error) {
	if len(atoms) == 0 {
		return nil, CError{msg: "Supplied a nil or empty atom slice", deco: []string{"NewTopology"}}
	}
	T := new(Topology)
	T.atoms = atoms
	T.members = make(map[ResID][]int)
	for i, at := range atoms {
		at.Index = i
		id := ResID{Name: at.MolName, Number: at.MolID, Chain: at.Chain}
		if _, ok := T.members[id]; !ok {
			T.order = append(T.order, id)
		}
		T.members[id] = append(T.members[id], i)
	}
	return T, nil
}

//Atom returns the Atom corresponding to the index i. Panics if out of
//range, as that is a programming error.
func (T *Topology) Atom(i int) *Atom {
	if i >= T.Len() {
		panic("Topology: Requested Atom out of bounds")
	}
	return T.atoms[i]
}

//Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.atoms)
}

//Masses returns a slice with the masses of all atoms, and an error if the
//mass for some element is not known.
func (T *Topology) Masses() ([]float64, error) {
	mass := make([]float64, T.Len())
	for i := 0; i < T.Len(); i++ {
		at := T.Atom(i)
		m, ok := symbolMass[at.Symbol]
		if !ok {
			return nil, CError{msg: fmt.Sprintf("Couldn't find the mass for the element '%s' (atom %d)", at.Symbol, i), deco: []string{"Masses"}}
		}
		mass[i] = m
	}
	return mass, nil
}

//NResidues returns the number of residues in the topology.
func (T *Topology) NResidues() int {
	return len(T.order)
}

//Residues returns the identifiers of all residues, in order of first
//appearance in the topology.
func (T *Topology) Residues() []ResID {
	ret := make([]ResID, len(T.order))
	copy(ret, T.order)
	return ret
}

//HasResidue returns whether the topology contains a residue with the
//given identifier.
func (T *Topology) HasResidue(id ResID) bool {
	_, ok := T.members[id]
	return ok
}

//ResIDFor returns the residue identifier of the atom with index i.
func (T *Topology) ResIDFor(i int) ResID {
	at := T.Atom(i)
	return ResID{Name: at.MolName, Number: at.MolID, Chain: at.Chain}
}

//Residue builds the residue with the given identifier, taking its
//coordinates from coords, which must have one row per atom of the whole
//topology. It returns an error if the residue is not present or the
//coordinates don't match the topology.
func (T *Topology) Residue(id ResID, coords *v3.Matrix) (*Residue, error) {
	indexes, ok := T.members[id]
	if !ok {
		return nil, CError{msg: fmt.Sprintf("Residue %s not found in topology", id.String()), deco: []string{"Residue"}}
	}
	return T.residueFrom(id, indexes, coords, "Residue")
}

//SomeResidue is as Residue, but only the atoms of the residue with indexes
//in the selection given are included. This allows analyzing a sub-set of a
//residue's atoms, e.g. a side-chain.
func (T *Topology) SomeResidue(id ResID, selection []int, coords *v3.Matrix) (*Residue, error) {
	indexes := make([]int, 0, 6)
	for _, i := range T.members[id] {
		if isInInt(selection, i) {
			indexes = append(indexes, i)
		}
	}
	if len(indexes) == 0 {
		return nil, CError{msg: fmt.Sprintf("Residue %s has no atoms in the given selection", id.String()), deco: []string{"SomeResidue"}}
	}
	return T.residueFrom(id, indexes, coords, "SomeResidue")
}

func (T *Topology) residueFrom(id ResID, indexes []int, coords *v3.Matrix, caller string) (*Residue, error) {
	if coords == nil {
		return nil, CError{msg: "Supplied nil coordinates", deco: []string{caller}}
	}
	if coords.NVecs() != T.Len() {
		return nil, CError{msg: fmt.Sprintf("Inconsistent coordinates(%d)/atoms(%d)", coords.NVecs(), T.Len()), deco: []string{caller}}
	}
	atoms := make([]*Atom, len(indexes))
	for i, v := range indexes {
		atoms[i] = T.atoms[v]
	}
	c := v3.Zeros(len(indexes))
	c.SomeVecs(coords, indexes)
	return newResidue(id, atoms, c), nil
}

//SelectChains returns the indexes of all atoms belonging to any of the
//chains given.
func (T *Topology) SelectChains(chains ...string) []int {
	ret := make([]int, 0, 30)
	for i, at := range T.atoms {
		if isInString(chains, at.Chain) {
			ret = append(ret, i)
		}
	}
	return ret
}

//SelectResNames returns the indexes of all atoms belonging to residues
//with any of the names given.
func (T *Topology) SelectResNames(names ...string) []int {
	ret := make([]int, 0, 30)
	for i, at := range T.atoms {
		if isInString(names, at.MolName) {
			ret = append(ret, i)
		}
	}
	return ret
}

//SelectResIDs returns the indexes of all atoms belonging to the residues
//with the identifiers given, in topology order.
func (T *Topology) SelectResIDs(ids ...ResID) []int {
	ret := make([]int, 0, 30)
	for i := range T.atoms {
		id := T.ResIDFor(i)
		for _, want := range ids {
			if id == want {
				ret = append(ret, i)
				break
			}
		}
	}
	return ret
}

//ResIDsIn returns the identifiers of the residues covered by the given
//atom selection, in order of first appearance.
func (T *Topology) ResIDsIn(selection []int) []ResID {
	ret := make([]ResID, 0, 5)
	seen := make(map[ResID]bool)
	for _, i := range selection {
		id := T.ResIDFor(i)
		if !seen[id] {
			seen[id] = true
			ret = append(ret, id)
		}
	}
	return ret
}
