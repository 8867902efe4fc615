/*
 * detect.go, part of goProLIF.
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

/*
Package detect implements the interaction detectors: named geometric
predicates over a pair of residues. The first residue of every pair plays
the ligand role and the second the protein role; the distinction matters
for asymmetric interactions such as hydrogen-bond donor/acceptor.

Detectors are registered by name in a Set; registering a detector under an
existing name replaces the previous one, which is how callers override a
built-in criterion. The Set is populated explicitly, there is no runtime
discovery.

Every detector is deterministic: for identical input geometry it reports
the same result, and when several atom pairs satisfy its predicate it
reports the canonical one, i.e. the pair at the shortest distance, with
exact ties resolved by enumeration order. This keeps exported fingerprint
tables reproducible.
*/
package detect

import (
	prolif "github.com/rochoa85/ProLIF"
)

//Absent marks a missing atom index in a Result.
const Absent = -1

//Result is the outcome of running one detector over one residue pair.
//First and Second index into the atom lists of the first (ligand-role)
//and second (protein-role) residues; both are Absent whenever Hit is
//false.
type Result struct {
	Hit    bool
	First  int
	Second int
}

//negative is the clean "nothing found" result.
func negative() Result {
	return Result{Hit: false, First: Absent, Second: Absent}
}

//Detector decides whether a named interaction holds between two residues,
//and which atom pair realizes it. The first argument is always the
//ligand-role side. Implementations must be deterministic given identical
//geometric input, and must return a clean negative, not an error, when no
//qualifying atom pair exists; errors are reserved for malformed input.
type Detector interface {
	Detect(first, second *prolif.Residue) (Result, error)
}

//checkInput surfaces malformed residues (nil, empty, missing or
//mismatched coordinates) before any geometry is attempted.
func checkInput(first, second *prolif.Residue, caller string) error {
	if err := first.Valid(); err != nil {
		return errDecorate(err, caller)
	}
	if err := second.Valid(); err != nil {
		return errDecorate(err, caller)
	}
	return nil
}

//Set is a registry of named detectors. The registration order is kept, as
//it defines the interaction order of fingerprint tables.
type Set struct {
	names []string
	dets  map[string]Detector
}

//NewSet returns an empty detector registry.
func NewSet() *Set {
	return &Set{dets: make(map[string]Detector)}
}

//Register adds the detector under the given name. If the name is already
//taken, the previous detector is replaced and keeps its original position
//in the registration order: overriding a criterion does not reshuffle the
//columns of tables produced afterwards.
func (S *Set) Register(name string, d Detector) {
	if _, ok := S.dets[name]; !ok {
		S.names = append(S.names, name)
	}
	S.dets[name] = d
}

//Get returns the detector registered under the given name, and whether
//the name was found.
func (S *Set) Get(name string) (Detector, bool) {
	d, ok := S.dets[name]
	return d, ok
}

//Names returns the registered names, in registration order.
func (S *Set) Names() []string {
	ret := make([]string, len(S.names))
	copy(ret, S.names)
	return ret
}

//Len returns the number of registered detectors.
func (S *Set) Len() int {
	return len(S.names)
}

//DefaultSet returns a registry with the standard interactions, under
//their conventional names, with default parameters.
func DefaultSet() *Set {
	S := NewSet()
	S.Register("Hydrophobic", NewHydrophobic())
	S.Register("HBDonor", NewHBDonor())
	S.Register("HBAcceptor", NewHBAcceptor())
	S.Register("Cationic", NewCationic())
	S.Register("Anionic", NewAnionic())
	S.Register("CationPi", NewCationPi())
	S.Register("PiCation", NewPiCation())
	S.Register("PiStacking", NewPiStacking())
	S.Register("VdWContact", NewVdWContact())
	return S
}

//FullSet returns a registry with every interaction the package
//implements, the standard ones plus the halogen-bond, metal and contact
//criteria left out of DefaultSet.
func FullSet() *Set {
	S := DefaultSet()
	S.Register("XBDonor", NewXBDonor())
	S.Register("XBAcceptor", NewXBAcceptor())
	S.Register("FaceToFace", NewFaceToFace())
	S.Register("EdgeToFace", NewEdgeToFace())
	S.Register("MetalDonor", NewMetalDonor())
	S.Register("MetalAcceptor", NewMetalAcceptor())
	S.Register("CloseContact", NewCloseContact())
	return S
}

//errDecorate asserts that err implements prolif.Error and decorates it
//with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(prolif.Error)
	err2.Decorate(caller)
	return err2
}
