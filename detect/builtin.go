/*
 * builtin.go, part of goProLIF.
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

package detect

import (
	prolif "github.com/rochoa85/ProLIF"
	v3 "github.com/rochoa85/ProLIF/v3"
)

//Default geometric parameters for the built-in detectors. Distances are
//in Angstrom, angles in degrees. Detectors take these on construction;
//callers tune them through the accessor methods.
const (
	defHydrophobicCutoff = 4.5
	defHBondCutoff       = 3.5
	defHBondAngle        = 130.0 //minimum donor-hydrogen-acceptor angle
	defXBondCutoff       = 3.5
	defXBondAngle        = 130.0 //minimum carbon-halogen-acceptor angle
	defIonicCutoff       = 4.5
	defCationPiCutoff    = 4.5
	defCationPiAngle     = 30.0 //maximum normal-to-cation angle
	defFaceToFaceCutoff  = 5.5
	defFaceToFaceAngle   = 35.0 //maximum angle between ring normals
	defEdgeToFaceCutoff  = 6.5
	defEdgeToFaceMin     = 50.0
	defEdgeToFaceMax     = 90.0
	defMetalCutoff       = 2.8
	defCloseCutoff       = 2.0
	defVdWTolerance      = 0.0
)

//filterAtoms returns the local indexes of the atoms of R accepted by
//pred, and their coordinates, one row per accepted atom. Both returns
//are nil when no atom qualifies.
func filterAtoms(R *prolif.Residue, pred func(*prolif.Atom) bool) ([]int, *v3.Matrix) {
	var idx []int
	for i := 0; i < R.Len(); i++ {
		if pred(R.Atom(i)) {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return nil, nil
	}
	c := v3.Zeros(len(idx))
	c.SomeVecs(R.Coords(), idx)
	return idx, c
}

//closestQualifying runs the common "closest pair of qualifying atoms
//under a cutoff" predicate shared by several detectors.
func closestQualifying(first, second *prolif.Residue, pfirst, psecond func(*prolif.Atom) bool, cutoff float64) Result {
	fidx, fcoords := filterAtoms(first, pfirst)
	if fidx == nil {
		return negative()
	}
	sidx, scoords := filterAtoms(second, psecond)
	if sidx == nil {
		return negative()
	}
	i, j, d := prolif.ClosestPair(fcoords, scoords)
	if d > cutoff {
		return negative()
	}
	return Result{Hit: true, First: fidx[i], Second: sidx[j]}
}

//anyAtom accepts every atom. Used by the plain distance detectors.
func anyAtom(*prolif.Atom) bool { return true }

//Hydrophobic detects apolar contacts: a pair of hydrophobic atoms, one
//on each residue, within the cutoff.
type Hydrophobic struct {
	cutoff float64
}

//NewHydrophobic returns a hydrophobic-contact detector with the default
//cutoff.
func NewHydrophobic() *Hydrophobic {
	return &Hydrophobic{cutoff: defHydrophobicCutoff}
}

//Cutoff sets the distance cutoff, if given, and returns the current
//value.
func (D *Hydrophobic) Cutoff(c ...float64) float64 {
	if len(c) > 0 {
		D.cutoff = c[0]
	}
	return D.cutoff
}

func (D *Hydrophobic) Detect(first, second *prolif.Residue) (Result, error) {
	if err := checkInput(first, second, "Hydrophobic.Detect"); err != nil {
		return negative(), err
	}
	hydro := func(a *prolif.Atom) bool { return a.IsHydrophobic() }
	return closestQualifying(first, second, hydro, hydro, D.cutoff), nil
}

//hbond finds the canonical hydrogen bond donated by donor to acceptor:
//the qualifying donor-heavy/acceptor pair at the shortest distance. The
//returned indexes are local to their respective residues, donor first.
func hbond(donor, acceptor *prolif.Residue, cutoff, minAngle float64) (int, int, bool) {
	bestD, bestA := Absent, Absent
	bestdist := cutoff
	found := false
	hd := v3.Zeros(1) //hydrogen to donor heavy atom
	ha := v3.Zeros(1) //hydrogen to acceptor
	for i := 0; i < donor.Len(); i++ {
		h := donor.Atom(i)
		heavy := h.DonorHeavy()
		if heavy == nil {
			continue
		}
		dlocal := donor.Local(heavy.Index)
		if dlocal < 0 {
			continue //the heavy atom is bonded across the residue boundary
		}
		for j := 0; j < acceptor.Len(); j++ {
			if !acceptor.Atom(j).IsHAcceptor() {
				continue
			}
			d := v3.Dist(donor.Coord(dlocal), acceptor.Coord(j))
			if d > bestdist || (found && d >= bestdist) {
				continue
			}
			hd.SubVec(donor.Coord(dlocal), donor.Coord(i))
			ha.SubVec(acceptor.Coord(j), donor.Coord(i))
			if prolif.Angle(hd, ha)*prolif.Rad2Deg < minAngle {
				continue
			}
			bestD, bestA = dlocal, j
			bestdist = d
			found = true
		}
	}
	return bestD, bestA, found
}

//HBDonor detects hydrogen bonds donated by the first residue: a
//hydrogen on an N, O or S of the first residue pointing at an acceptor
//atom of the second, with the donor-acceptor distance under the cutoff
//and the donor-hydrogen-acceptor angle over the angular threshold. The
//reported atoms are the donor heavy atom and the acceptor.
type HBDonor struct {
	cutoff float64
	angle  float64
}

//NewHBDonor returns a hydrogen-bond-donor detector with the default
//parameters.
func NewHBDonor() *HBDonor {
	return &HBDonor{cutoff: defHBondCutoff, angle: defHBondAngle}
}

//Cutoff sets the donor-acceptor distance cutoff, if given, and returns
//the current value.
func (D *HBDonor) Cutoff(c ...float64) float64 {
	if len(c) > 0 {
		D.cutoff = c[0]
	}
	return D.cutoff
}

//Angle sets the minimum donor-hydrogen-acceptor angle in degrees, if
//given, and returns the current value.
func (D *HBDonor) Angle(a ...float64) float64 {
	if len(a) > 0 {
		D.angle = a[0]
	}
	return D.angle
}

func (D *HBDonor) Detect(first, second *prolif.Residue) (Result, error) {
	if err := checkInput(first, second, "HBDonor.Detect"); err != nil {
		return negative(), err
	}
	d, a, ok := hbond(first, second, D.cutoff, D.angle)
	if !ok {
		return negative(), nil
	}
	return Result{Hit: true, First: d, Second: a}, nil
}

//HBAcceptor is the mirror image of HBDonor: the second residue donates
//and the first accepts. The reported atoms are the acceptor of the
//first residue and the donor heavy atom of the second.
type HBAcceptor struct {
	cutoff float64
	angle  float64
}

//NewHBAcceptor returns a hydrogen-bond-acceptor detector with the
//default parameters.
func NewHBAcceptor() *HBAcceptor {
	return &HBAcceptor{cutoff: defHBondCutoff, angle: defHBondAngle}
}

func (D *HBAcceptor) Cutoff(c ...float64) float64 {
	if len(c) > 0 {
		D.cutoff = c[0]
	}
	return D.cutoff
}

func (D *HBAcceptor) Angle(a ...float64) float64 {
	if len(a) > 0 {
		D.angle = a[0]
	}
	return D.angle
}

func (D *HBAcceptor) Detect(first, second *prolif.Residue) (Result, error) {
	if err := checkInput(first, second, "HBAcceptor.Detect"); err != nil {
		return negative(), err
	}
	d, a, ok := hbond(second, first, D.cutoff, D.angle)
	if !ok {
		return negative(), nil
	}
	return Result{Hit: true, First: a, Second: d}, nil
}

//xbond finds the canonical halogen bond donated by donor to acceptor.
//It is the halogen analogue of hbond: a carbon-bound halogen of the
//donor residue points at an acceptor atom through its sigma hole, so
//the carbon-halogen-acceptor angle must be over the threshold. The
//reported donor atom is the halogen itself.
func xbond(donor, acceptor *prolif.Residue, cutoff, minAngle float64) (int, int, bool) {
	bestX, bestA := Absent, Absent
	bestdist := cutoff
	found := false
	xc := v3.Zeros(1) //halogen to carbon
	xa := v3.Zeros(1) //halogen to acceptor
	for i := 0; i < donor.Len(); i++ {
		x := donor.Atom(i)
		carbon := x.HalogenCarbon()
		if carbon == nil {
			continue
		}
		clocal := donor.Local(carbon.Index)
		if clocal < 0 {
			continue
		}
		for j := 0; j < acceptor.Len(); j++ {
			if !acceptor.Atom(j).IsHAcceptor() {
				continue
			}
			d := v3.Dist(donor.Coord(i), acceptor.Coord(j))
			if d > bestdist || (found && d >= bestdist) {
				continue
			}
			xc.SubVec(donor.Coord(clocal), donor.Coord(i))
			xa.SubVec(acceptor.Coord(j), donor.Coord(i))
			if prolif.Angle(xc, xa)*prolif.Rad2Deg < minAngle {
				continue
			}
			bestX, bestA = i, j
			bestdist = d
			found = true
		}
	}
	return bestX, bestA, found
}

//XBDonor detects halogen bonds donated by the first residue.
type XBDonor struct {
	cutoff float64
	angle  float64
}

//NewXBDonor returns a halogen-bond-donor detector with the default
//parameters.
func NewXBDonor() *XBDonor {
	return &XBDonor{cutoff: defXBondCutoff, angle: defXBondAngle}
}

func (D *XBDonor) Cutoff(c ...float64) float64 {
	if len(c) > 0 {
		D.cutoff = c[0]
	}
	return D.cutoff
}

func (D *XBDonor) Angle(a ...float64) float64 {
	if len(a) > 0 {
		D.angle = a[0]
	}
	return D.angle
}

func (D *XBDonor) Detect(first, second *prolif.Residue) (Result, error) {
	if err := checkInput(first, second, "XBDonor.Detect"); err != nil {
		return negative(), err
	}
	x, a, ok := xbond(first, second, D.cutoff, D.angle)
	if !ok {
		return negative(), nil
	}
	return Result{Hit: true, First: x, Second: a}, nil
}

//XBAcceptor detects halogen bonds accepted by the first residue.
type XBAcceptor struct {
	cutoff float64
	angle  float64
}

//NewXBAcceptor returns a halogen-bond-acceptor detector with the
//default parameters.
func NewXBAcceptor() *XBAcceptor {
	return &XBAcceptor{cutoff: defXBondCutoff, angle: defXBondAngle}
}

func (D *XBAcceptor) Cutoff(c ...float64) float64 {
	if len(c) > 0 {
		D.cutoff = c[0]
	}
	return D.cutoff
}

func (D *XBAcceptor) Angle(a ...float64) float64 {
	if len(a) > 0 {
		D.angle = a[0]
	}
	return D.angle
}

func (D *XBAcceptor) Detect(first, second *prolif.Residue) (Result, error) {
	if err := checkInput(first, second, "XBAcceptor.Detect"); err != nil {
		return negative(), err
	}
	x, a, ok := xbond(second, first, D.cutoff, D.angle)
	if !ok {
		return negative(), nil
	}
	return Result{Hit: true, First: a, Second: x}, nil
}

//Cationic detects salt bridges where the first residue provides the
//positive charge.
type Cationic struct {
	cutoff float64
}

//NewCationic returns a salt-bridge detector, positive side first, with
//the default cutoff.
func NewCationic() *Cationic {
	return &Cationic{cutoff: defIonicCutoff}
}

func (D *Cationic) Cutoff(c ...float64) float64 {
	if len(c) > 0 {
		D.cutoff = c[0]
	}
	return D.cutoff
}

func (D *Cationic) Detect(first, second *prolif.Residue) (Result, error) {
	if err := checkInput(first, second, "Cationic.Detect"); err != nil {
		return negative(), err
	}
	pos := func(a *prolif.Atom) bool { return a.IsCationic() }
	neg := func(a *prolif.Atom) bool { return a.IsAnionic() }
	return closestQualifying(first, second, pos, neg, D.cutoff), nil
}

//Anionic detects salt bridges where the first residue provides the
//negative charge.
type Anionic struct {
	cutoff float64
}

//NewAnionic returns a salt-bridge detector, negative side first, with
//the default cutoff.
func NewAnionic() *Anionic {
	return &Anionic{cutoff: defIonicCutoff}
}

func (D *Anionic) Cutoff(c ...float64) float64 {
	if len(c) > 0 {
		D.cutoff = c[0]
	}
	return D.cutoff
}

func (D *Anionic) Detect(first, second *prolif.Residue) (Result, error) {
	if err := checkInput(first, second, "Anionic.Detect"); err != nil {
		return negative(), err
	}
	pos := func(a *prolif.Atom) bool { return a.IsCationic() }
	neg := func(a *prolif.Atom) bool { return a.IsAnionic() }
	return closestQualifying(first, second, neg, pos, D.cutoff), nil
}

//cationPi finds the canonical cation-aromatic interaction between the
//cationic atoms of cat and the aromatic rings of ring: cation within
//cutoff of a ring centroid, and not far from the ring axis, i.e. with
//the angle between the ring normal and the centroid-to-cation vector
//under maxAngle. The reported ring atom is the lowest-index member of
//the ring. Returns the cation index first.
func cationPi(cat, ring *prolif.Residue, cutoff, maxAngle float64) (int, int, bool) {
	rings := ring.AromaticRings()
	if len(rings) == 0 {
		return Absent, Absent, false
	}
	bestC, bestR := Absent, Absent
	bestdist := cutoff
	found := false
	toCat := v3.Zeros(1)
	for i := 0; i < cat.Len(); i++ {
		if !cat.Atom(i).IsCationic() {
			continue
		}
		for _, r := range rings {
			cent := ring.RingCentroid(r)
			d := v3.Dist(cat.Coord(i), cent)
			if d > bestdist || (found && d >= bestdist) {
				continue
			}
			toCat.SubVec(cat.Coord(i), cent)
			if prolif.AcuteAngle(ring.RingNormal(r), toCat)*prolif.Rad2Deg > maxAngle {
				continue
			}
			bestC, bestR = i, r[0]
			bestdist = d
			found = true
		}
	}
	return bestC, bestR, found
}

//CationPi detects a cationic atom of the first residue over an aromatic
//ring of the second.
type CationPi struct {
	cutoff float64
	angle  float64
}

//NewCationPi returns a cation-aromatic detector, cation side first,
//with the default parameters.
func NewCationPi() *CationPi {
	return &CationPi{cutoff: defCationPiCutoff, angle: defCationPiAngle}
}

func (D *CationPi) Cutoff(c ...float64) float64 {
	if len(c) > 0 {
		D.cutoff = c[0]
	}
	return D.cutoff
}

//Angle sets the maximum angle in degrees between the ring normal and
//the centroid-to-cation vector, if given, and returns the current
//value.
func (D *CationPi) Angle(a ...float64) float64 {
	if len(a) > 0 {
		D.angle = a[0]
	}
	return D.angle
}

func (D *CationPi) Detect(first, second *prolif.Residue) (Result, error) {
	if err := checkInput(first, second, "CationPi.Detect"); err != nil {
		return negative(), err
	}
	c, r, ok := cationPi(first, second, D.cutoff, D.angle)
	if !ok {
		return negative(), nil
	}
	return Result{Hit: true, First: c, Second: r}, nil
}

//PiCation detects an aromatic ring of the first residue under a
//cationic atom of the second.
type PiCation struct {
	cutoff float64
	angle  float64
}

//NewPiCation returns a cation-aromatic detector, aromatic side first,
//with the default parameters.
func NewPiCation() *PiCation {
	return &PiCation{cutoff: defCationPiCutoff, angle: defCationPiAngle}
}

func (D *PiCation) Cutoff(c ...float64) float64 {
	if len(c) > 0 {
		D.cutoff = c[0]
	}
	return D.cutoff
}

func (D *PiCation) Angle(a ...float64) float64 {
	if len(a) > 0 {
		D.angle = a[0]
	}
	return D.angle
}

func (D *PiCation) Detect(first, second *prolif.Residue) (Result, error) {
	if err := checkInput(first, second, "PiCation.Detect"); err != nil {
		return negative(), err
	}
	c, r, ok := cationPi(second, first, D.cutoff, D.angle)
	if !ok {
		return negative(), nil
	}
	return Result{Hit: true, First: r, Second: c}, nil
}

//piStackGeom classifies one pair of rings. It returns the
//centroid-centroid distance and the acute angle between the ring
//normals, in degrees.
func piStackGeom(first *prolif.Residue, r1 prolif.Ring, second *prolif.Residue, r2 prolif.Ring) (float64, float64) {
	c1 := first.RingCentroid(r1)
	c2 := second.RingCentroid(r2)
	d := v3.Dist(c1, c2)
	ang := prolif.AcuteAngle(first.RingNormal(r1), second.RingNormal(r2)) * prolif.Rad2Deg
	return d, ang
}

//piStacking finds the canonical aromatic-aromatic interaction accepted
//by the given geometric window. The reported atoms are the lowest-index
//members of the two rings.
func piStacking(first, second *prolif.Residue, accept func(dist, angle float64) bool) (int, int, bool) {
	r1s := first.AromaticRings()
	if len(r1s) == 0 {
		return Absent, Absent, false
	}
	r2s := second.AromaticRings()
	if len(r2s) == 0 {
		return Absent, Absent, false
	}
	best1, best2 := Absent, Absent
	bestdist := 0.0
	found := false
	for _, r1 := range r1s {
		for _, r2 := range r2s {
			d, ang := piStackGeom(first, r1, second, r2)
			if !accept(d, ang) {
				continue
			}
			if found && d >= bestdist {
				continue
			}
			best1, best2 = r1[0], r2[0]
			bestdist = d
			found = true
		}
	}
	return best1, best2, found
}

//FaceToFace detects parallel aromatic stacking: ring centroids within
//the cutoff and nearly parallel ring planes.
type FaceToFace struct {
	cutoff float64
	angle  float64
}

//NewFaceToFace returns a parallel-stacking detector with the default
//parameters.
func NewFaceToFace() *FaceToFace {
	return &FaceToFace{cutoff: defFaceToFaceCutoff, angle: defFaceToFaceAngle}
}

func (D *FaceToFace) Cutoff(c ...float64) float64 {
	if len(c) > 0 {
		D.cutoff = c[0]
	}
	return D.cutoff
}

//Angle sets the maximum angle in degrees between the ring normals, if
//given, and returns the current value.
func (D *FaceToFace) Angle(a ...float64) float64 {
	if len(a) > 0 {
		D.angle = a[0]
	}
	return D.angle
}

func (D *FaceToFace) accept(dist, angle float64) bool {
	return dist <= D.cutoff && angle <= D.angle
}

func (D *FaceToFace) Detect(first, second *prolif.Residue) (Result, error) {
	if err := checkInput(first, second, "FaceToFace.Detect"); err != nil {
		return negative(), err
	}
	a, b, ok := piStacking(first, second, D.accept)
	if !ok {
		return negative(), nil
	}
	return Result{Hit: true, First: a, Second: b}, nil
}

//EdgeToFace detects T-shaped aromatic stacking: ring centroids within
//the cutoff and nearly perpendicular ring planes.
type EdgeToFace struct {
	cutoff   float64
	minangle float64
	maxangle float64
}

//NewEdgeToFace returns a T-shaped-stacking detector with the default
//parameters.
func NewEdgeToFace() *EdgeToFace {
	return &EdgeToFace{cutoff: defEdgeToFaceCutoff, minangle: defEdgeToFaceMin, maxangle: defEdgeToFaceMax}
}

func (D *EdgeToFace) Cutoff(c ...float64) float64 {
	if len(c) > 0 {
		D.cutoff = c[0]
	}
	return D.cutoff
}

//AngleWindow sets the accepted window, in degrees, for the angle
//between the ring normals, if given, and returns the current window.
func (D *EdgeToFace) AngleWindow(w ...[2]float64) [2]float64 {
	if len(w) > 0 {
		D.minangle = w[0][0]
		D.maxangle = w[0][1]
	}
	return [2]float64{D.minangle, D.maxangle}
}

func (D *EdgeToFace) accept(dist, angle float64) bool {
	return dist <= D.cutoff && angle >= D.minangle && angle <= D.maxangle
}

func (D *EdgeToFace) Detect(first, second *prolif.Residue) (Result, error) {
	if err := checkInput(first, second, "EdgeToFace.Detect"); err != nil {
		return negative(), err
	}
	a, b, ok := piStacking(first, second, D.accept)
	if !ok {
		return negative(), nil
	}
	return Result{Hit: true, First: a, Second: b}, nil
}

//PiStacking detects aromatic stacking in either geometry, parallel or
//T-shaped. It holds one detector of each kind; tune those directly for
//non-default windows.
type PiStacking struct {
	FtF *FaceToFace
	EtF *EdgeToFace
}

//NewPiStacking returns a combined stacking detector with the default
//parameters.
func NewPiStacking() *PiStacking {
	return &PiStacking{FtF: NewFaceToFace(), EtF: NewEdgeToFace()}
}

func (D *PiStacking) accept(dist, angle float64) bool {
	return D.FtF.accept(dist, angle) || D.EtF.accept(dist, angle)
}

func (D *PiStacking) Detect(first, second *prolif.Residue) (Result, error) {
	if err := checkInput(first, second, "PiStacking.Detect"); err != nil {
		return negative(), err
	}
	a, b, ok := piStacking(first, second, D.accept)
	if !ok {
		return negative(), nil
	}
	return Result{Hit: true, First: a, Second: b}, nil
}

//MetalDonor detects a metal of the first residue coordinated by a
//lone-pair atom of the second.
type MetalDonor struct {
	cutoff float64
}

//NewMetalDonor returns a metal-coordination detector, metal side first,
//with the default cutoff.
func NewMetalDonor() *MetalDonor {
	return &MetalDonor{cutoff: defMetalCutoff}
}

func (D *MetalDonor) Cutoff(c ...float64) float64 {
	if len(c) > 0 {
		D.cutoff = c[0]
	}
	return D.cutoff
}

func (D *MetalDonor) Detect(first, second *prolif.Residue) (Result, error) {
	if err := checkInput(first, second, "MetalDonor.Detect"); err != nil {
		return negative(), err
	}
	metal := func(a *prolif.Atom) bool { return a.IsMetal() }
	chelator := func(a *prolif.Atom) bool { return a.IsHAcceptor() }
	return closestQualifying(first, second, metal, chelator, D.cutoff), nil
}

//MetalAcceptor detects a lone-pair atom of the first residue
//coordinating a metal of the second.
type MetalAcceptor struct {
	cutoff float64
}

//NewMetalAcceptor returns a metal-coordination detector, chelator side
//first, with the default cutoff.
func NewMetalAcceptor() *MetalAcceptor {
	return &MetalAcceptor{cutoff: defMetalCutoff}
}

func (D *MetalAcceptor) Cutoff(c ...float64) float64 {
	if len(c) > 0 {
		D.cutoff = c[0]
	}
	return D.cutoff
}

func (D *MetalAcceptor) Detect(first, second *prolif.Residue) (Result, error) {
	if err := checkInput(first, second, "MetalAcceptor.Detect"); err != nil {
		return negative(), err
	}
	metal := func(a *prolif.Atom) bool { return a.IsMetal() }
	chelator := func(a *prolif.Atom) bool { return a.IsHAcceptor() }
	return closestQualifying(first, second, chelator, metal, D.cutoff), nil
}

//CloseContact detects any atom pair, regardless of chemistry, within a
//short threshold. Useful for flagging clashes and tight packing.
type CloseContact struct {
	cutoff float64
}

//NewCloseContact returns a close-contact detector with the default
//threshold.
func NewCloseContact() *CloseContact {
	return &CloseContact{cutoff: defCloseCutoff}
}

func (D *CloseContact) Cutoff(c ...float64) float64 {
	if len(c) > 0 {
		D.cutoff = c[0]
	}
	return D.cutoff
}

func (D *CloseContact) Detect(first, second *prolif.Residue) (Result, error) {
	if err := checkInput(first, second, "CloseContact.Detect"); err != nil {
		return negative(), err
	}
	return closestQualifying(first, second, anyAtom, anyAtom, D.cutoff), nil
}

//VdWContact detects a pair of atoms closer than the sum of their van
//der Waals radii, plus an optional tolerance. Atoms whose element is
//not in the radii table are skipped.
type VdWContact struct {
	tolerance float64
}

//NewVdWContact returns a van-der-Waals-contact detector with zero
//tolerance.
func NewVdWContact() *VdWContact {
	return &VdWContact{tolerance: defVdWTolerance}
}

//Tolerance sets the extra distance in Angstrom added to the radii sum,
//if given, and returns the current value.
func (D *VdWContact) Tolerance(t ...float64) float64 {
	if len(t) > 0 {
		D.tolerance = t[0]
	}
	return D.tolerance
}

func (D *VdWContact) Detect(first, second *prolif.Residue) (Result, error) {
	if err := checkInput(first, second, "VdWContact.Detect"); err != nil {
		return negative(), err
	}
	//The threshold changes per atom pair, so this one can't go through
	//closestQualifying.
	best1, best2 := Absent, Absent
	bestdist := 0.0
	found := false
	for i := 0; i < first.Len(); i++ {
		r1, ok := prolif.VdwRad(first.Atom(i).Symbol)
		if !ok {
			continue
		}
		for j := 0; j < second.Len(); j++ {
			r2, ok := prolif.VdwRad(second.Atom(j).Symbol)
			if !ok {
				continue
			}
			d := v3.Dist(first.Coord(i), second.Coord(j))
			if d > r1+r2+D.tolerance {
				continue
			}
			if found && d >= bestdist {
				continue
			}
			best1, best2 = i, j
			bestdist = d
			found = true
		}
	}
	if !found {
		return negative(), nil
	}
	return Result{Hit: true, First: best1, Second: best2}, nil
}
