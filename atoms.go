/*
 * atoms.go, part of goProLIF.
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
	"strconv"
	"strings"
)

//Atom contains the information for one atom, except for the coordinates,
//which are kept in separate v3.Matrix frames, one row per atom, in the
//same order as the atoms.
type Atom struct {
	Name    string //PDB-style atom name, e.g. "CA"
	Index   int    //position of the atom in its topology
	MolName string //the name of the residue the atom belongs to
	MolID   int    //the number of the residue the atom belongs to
	Chain   string
	Symbol  string //the element symbol
	Charge  int    //formal charge
	Bonds   []*Bond
}

//Copy returns a copy of the Atom. Bonds are shared, not copied, as they
//reference other atoms.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	N := new(Atom)
	*N = *A
	return N
}

//Neighbors returns the atoms bonded to A, in bond order.
func (A *Atom) Neighbors() []*Atom {
	ret := make([]*Atom, 0, len(A.Bonds))
	for _, b := range A.Bonds {
		ret = append(ret, b.Cross(A))
	}
	return ret
}

//IsHydrophobic returns whether the atom can be part of a hydrophobic
//contact. Carbon and sulfur only qualify when no nitrogen or oxygen is
//bonded to them; if the atom carries no bond information, they are
//accepted, as there is nothing to check against.
func (A *Atom) IsHydrophobic() bool {
	if !hydrophobicSymbol[A.Symbol] {
		return false
	}
	if A.Symbol != "C" && A.Symbol != "S" {
		return true //halogens qualify regardless of their environment
	}
	for _, n := range A.Neighbors() {
		if n.Symbol == "N" || n.Symbol == "O" {
			return false
		}
	}
	return true
}

//IsHAcceptor returns whether the atom can accept a hydrogen (or halogen)
//bond: an element with available lone pairs and no positive formal charge.
func (A *Atom) IsHAcceptor() bool {
	return acceptorSymbol[A.Symbol] && A.Charge <= 0
}

//DonorHeavy, called on a hydrogen, returns the heavy atom the hydrogen is
//bonded to, if that atom can donate a hydrogen bond (N, O or S), or nil.
func (A *Atom) DonorHeavy() *Atom {
	if A.Symbol != "H" {
		return nil
	}
	for _, n := range A.Neighbors() {
		if n.Symbol == "N" || n.Symbol == "O" || n.Symbol == "S" {
			return n
		}
	}
	return nil
}

//HalogenCarbon, called on a halogen, returns the carbon the halogen is
//bonded to, or nil. Only carbon-bound halogens act as halogen-bond donors.
func (A *Atom) HalogenCarbon() *Atom {
	if !halogenSymbol[A.Symbol] {
		return nil
	}
	for _, n := range A.Neighbors() {
		if n.Symbol == "C" {
			return n
		}
	}
	return nil
}

//IsMetal returns whether the atom is one of the biologically relevant
//metals in the internal table.
func (A *Atom) IsMetal() bool {
	return metalSymbol[A.Symbol]
}

//IsCationic returns whether the atom carries positive charge, either as a
//formal charge set on the atom, or, failing that, by the name the atom has
//in a standard protonated residue.
func (A *Atom) IsCationic() bool {
	if A.Charge > 0 {
		return true
	}
	if A.Charge < 0 {
		return false
	}
	return isInString(posChargedAtom[A.MolName], A.Name)
}

//IsAnionic returns whether the atom carries negative charge, either as a
//formal charge set on the atom, or, failing that, by the name the atom has
//in a standard deprotonated residue.
func (A *Atom) IsAnionic() bool {
	if A.Charge < 0 {
		return true
	}
	if A.Charge > 0 {
		return false
	}
	return isInString(negChargedAtom[A.MolName], A.Name)
}

//Bond is a chemical bond between 2 atoms. Bonds are always given by the
//caller; they are never inferred from the geometry.
type Bond struct {
	Index int
	At1   *Atom
	At2   *Atom
	Order float64 //Order 0 means undetermined
}

//Cross returns the atom of the bond that is not the origin atom given.
func (B *Bond) Cross(origin *Atom) *Atom {
	if origin.Index == B.At1.Index {
		return B.At2
	}
	if origin.Index == B.At2.Index {
		return B.At1
	}
	panic("Trying to cross a bond: The origin atom given is not present in the bond!") //this got to be a programming error, so a panic is warranted.
}

//NewBond bonds the two atoms given, appending the new bond to both atoms,
//and returns it.
func NewBond(index int, at1, at2 *Atom, order float64) *Bond {
	b := &Bond{Index: index, At1: at1, At2: at2, Order: order}
	at1.Bonds = append(at1.Bonds, b)
	at2.Bonds = append(at2.Bonds, b)
	return b
}

//ResID identifies a residue: a chemical-group name, a residue number and
//a chain identifier. It is comparable and can be used as a map key.
type ResID struct {
	Name   string
	Number int
	Chain  string
}

//String returns the residue identifier in the NAMENUMBER.CHAIN form used
//in fingerprint tables, e.g. "TYR109.A". The chain part is omitted when
//the chain is empty.
func (r ResID) String() string {
	if r.Chain == "" {
		return fmt.Sprintf("%s%d", r.Name, r.Number)
	}
	return fmt.Sprintf("%s%d.%s", r.Name, r.Number, r.Chain)
}

//ParseResID parses the string representation produced by ResID.String
//back into a ResID. The residue number is the longest trailing run of
//digits before the chain separator, so names may begin with, or contain,
//digits, as PDB het codes do. A name that itself ends in a digit makes
//the string form ambiguous; exact round trips for those go through the
//three fields, not through this function.
func ParseResID(s string) (ResID, error) {
	var r ResID
	rest := s
	if dot := strings.LastIndex(s, "."); dot >= 0 {
		r.Chain = s[dot+1:]
		rest = s[:dot]
	}
	split := len(rest)
	for split > 0 && rest[split-1] >= '0' && rest[split-1] <= '9' {
		split--
	}
	if split == len(rest) {
		return r, CError{msg: fmt.Sprintf("Couldn't parse the residue identifier '%s': no residue number", s), deco: []string{"ParseResID"}}
	}
	n, err := strconv.Atoi(rest[split:])
	if err != nil {
		return r, CError{msg: fmt.Sprintf("Couldn't parse the residue number in '%s': %s", s, err.Error()), deco: []string{"ParseResID"}}
	}
	r.Name = rest[:split]
	r.Number = n
	return r, nil
}

//isInString returns true if test is in container, false otherwise.
func isInString(container []string, test string) bool {
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}

//isInInt is the same as isInString, but for ints.
func isInInt(container []int, test int) bool {
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}
