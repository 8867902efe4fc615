/*
 * detect_test.go, part of goProLIF.
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
	"math"
	"testing"

	prolif "github.com/rochoa85/ProLIF"
	v3 "github.com/rochoa85/ProLIF/v3"
)

//mkres builds a residue out of parallel slices of names, symbols and
//flat xyz coordinates. Atom indexes start at the given base so two
//residues of the same test don't collide.
func mkres(Te *testing.T, name string, number int, base int, names, symbols []string, xyz []float64) *prolif.Residue {
	Te.Helper()
	atoms := make([]*prolif.Atom, len(names))
	for i := range names {
		atoms[i] = &prolif.Atom{Name: names[i], Symbol: symbols[i], Index: base + i, MolName: name, MolID: number}
	}
	coords, err := v3.NewMatrix(xyz)
	if err != nil {
		Te.Fatal(err)
	}
	res, err := prolif.NewResidue(prolif.ResID{Name: name, Number: number}, atoms, coords)
	if err != nil {
		Te.Fatal(err)
	}
	return res
}

//benzene returns a benzene-like residue: a regular hexagon of bonded
//carbons of the given radius, in a plane normal to z, centered on
//(cx, cy, cz).
func benzene(Te *testing.T, number, base int, cx, cy, cz float64) *prolif.Residue {
	Te.Helper()
	names := make([]string, 6)
	symbols := make([]string, 6)
	xyz := make([]float64, 0, 18)
	for i := 0; i < 6; i++ {
		names[i] = "C" + string(rune('1'+i))
		symbols[i] = "C"
		ang := float64(i) * math.Pi / 3
		xyz = append(xyz, cx+1.39*math.Cos(ang), cy+1.39*math.Sin(ang), cz)
	}
	res := mkres(Te, "BNZ", number, base, names, symbols, xyz)
	for i := 0; i < 6; i++ {
		prolif.NewBond(base+i, res.Atom(i), res.Atom((i+1)%6), 1.5)
	}
	return res
}

//uprightBenzene is benzene rotated into the xz plane, so its ring
//normal lies along y.
func uprightBenzene(Te *testing.T, number, base int, cx, cy, cz float64) *prolif.Residue {
	Te.Helper()
	names := make([]string, 6)
	symbols := make([]string, 6)
	xyz := make([]float64, 0, 18)
	for i := 0; i < 6; i++ {
		names[i] = "C" + string(rune('1'+i))
		symbols[i] = "C"
		ang := float64(i) * math.Pi / 3
		xyz = append(xyz, cx+1.39*math.Cos(ang), cy, cz+1.39*math.Sin(ang))
	}
	res := mkres(Te, "BNZ", number, base, names, symbols, xyz)
	for i := 0; i < 6; i++ {
		prolif.NewBond(base+i, res.Atom(i), res.Atom((i+1)%6), 1.5)
	}
	return res
}

func TestCloseContact(Te *testing.T) {
	lig := mkres(Te, "LIG", 1, 0, []string{"C1"}, []string{"C"}, []float64{0, 0, 0})
	prot := mkres(Te, "ALA", 10, 1, []string{"CB"}, []string{"C"}, []float64{1.8, 0, 0})
	D := NewCloseContact()
	r, err := D.Detect(lig, prot)
	if err != nil {
		Te.Fatal(err)
	}
	if !r.Hit || r.First != 0 || r.Second != 0 {
		Te.Errorf("contact at 1.8 under a 2.0 threshold should hit: %+v", r)
	}
	D.Cutoff(1.0)
	r, err = D.Detect(lig, prot)
	if err != nil {
		Te.Fatal(err)
	}
	if r.Hit || r.First != Absent || r.Second != Absent {
		Te.Errorf("a miss should report both atoms as absent: %+v", r)
	}
}

func TestHydrophobic(Te *testing.T) {
	lig := mkres(Te, "LIG", 1, 0, []string{"C1"}, []string{"C"}, []float64{0, 0, 0})
	prot := mkres(Te, "LEU", 20, 1, []string{"CD1"}, []string{"C"}, []float64{4.0, 0, 0})
	D := NewHydrophobic()
	r, err := D.Detect(lig, prot)
	if err != nil {
		Te.Fatal(err)
	}
	if !r.Hit {
		Te.Errorf("two carbons at 4.0 should be a hydrophobic contact: %+v", r)
	}
	//A carbonyl-like carbon is polarized and should not count.
	carbonyl := mkres(Te, "LIG", 1, 10, []string{"C1", "O1"}, []string{"C", "O"}, []float64{0, 0, 0, 1.2, 0, 0})
	prolif.NewBond(0, carbonyl.Atom(0), carbonyl.Atom(1), 2)
	r, err = D.Detect(carbonyl, prot)
	if err != nil {
		Te.Fatal(err)
	}
	if r.Hit {
		Te.Errorf("a carbon bonded to oxygen should not be hydrophobic: %+v", r)
	}
}

func TestHBond(Te *testing.T) {
	//A hydroxyl pointing straight at a carbonyl oxygen.
	lig := mkres(Te, "LIG", 1, 0, []string{"O1", "H1"}, []string{"O", "H"}, []float64{0, 0, 0, 0.95, 0, 0})
	prolif.NewBond(0, lig.Atom(0), lig.Atom(1), 1)
	prot := mkres(Te, "SER", 30, 10, []string{"OG"}, []string{"O"}, []float64{2.9, 0, 0})
	D := NewHBDonor()
	r, err := D.Detect(lig, prot)
	if err != nil {
		Te.Fatal(err)
	}
	if !r.Hit || r.First != 0 || r.Second != 0 {
		Te.Errorf("linear O-H...O at 2.9 should be a hydrogen bond, and report the heavy atoms: %+v", r)
	}
	//The mirrored detector sees the same geometry with the roles swapped.
	A := NewHBAcceptor()
	r, err = A.Detect(prot, lig)
	if err != nil {
		Te.Fatal(err)
	}
	if !r.Hit || r.First != 0 || r.Second != 0 {
		Te.Errorf("HBAcceptor should mirror HBDonor: %+v", r)
	}
	//Bend the hydrogen so the donor-hydrogen-acceptor angle collapses.
	bent := mkres(Te, "LIG", 1, 20, []string{"O1", "H1"}, []string{"O", "H"}, []float64{0, 0, 0, 0, 0.95, 0})
	prolif.NewBond(1, bent.Atom(0), bent.Atom(1), 1)
	r, err = D.Detect(bent, prot)
	if err != nil {
		Te.Fatal(err)
	}
	if r.Hit {
		Te.Errorf("a 90-degree donor-hydrogen-acceptor angle should not qualify: %+v", r)
	}
}

func TestIonic(Te *testing.T) {
	//Formal charges take precedence, no residue-name lookup needed.
	lig := mkres(Te, "LIG", 1, 0, []string{"N1"}, []string{"N"}, []float64{0, 0, 0})
	lig.Atom(0).Charge = 1
	prot := mkres(Te, "ASP", 40, 1, []string{"OD1"}, []string{"O"}, []float64{3.5, 0, 0})
	D := NewCationic()
	r, err := D.Detect(lig, prot)
	if err != nil {
		Te.Fatal(err)
	}
	if !r.Hit {
		Te.Errorf("ammonium against an aspartate oxygen at 3.5 should be ionic: %+v", r)
	}
	//Same geometry through the mirrored detector.
	A := NewAnionic()
	r, err = A.Detect(prot, lig)
	if err != nil {
		Te.Fatal(err)
	}
	if !r.Hit {
		Te.Errorf("Anionic should mirror Cationic: %+v", r)
	}
	//An uncharged nitrogen does not qualify.
	neutral := mkres(Te, "LIG", 1, 10, []string{"N1"}, []string{"N"}, []float64{0, 0, 0})
	r, err = D.Detect(neutral, prot)
	if err != nil {
		Te.Fatal(err)
	}
	if r.Hit {
		Te.Errorf("a neutral amine should not form a salt bridge: %+v", r)
	}
}

func TestPiStacking(Te *testing.T) {
	lig := benzene(Te, 1, 0, 0, 0, 0)
	prot := benzene(Te, 91, 10, 0, 0, 3.5)
	FtF := NewFaceToFace()
	r, err := FtF.Detect(lig, prot)
	if err != nil {
		Te.Fatal(err)
	}
	if !r.Hit || r.First != 0 || r.Second != 0 {
		Te.Errorf("parallel rings 3.5 apart should stack face to face: %+v", r)
	}
	EtF := NewEdgeToFace()
	r, err = EtF.Detect(lig, prot)
	if err != nil {
		Te.Fatal(err)
	}
	if r.Hit {
		Te.Errorf("parallel rings are not a T-shaped stack: %+v", r)
	}
	Pi := NewPiStacking()
	r, err = Pi.Detect(lig, prot)
	if err != nil {
		Te.Fatal(err)
	}
	if !r.Hit {
		Te.Errorf("the combined detector should accept the parallel geometry: %+v", r)
	}
}

func TestEdgeToFace(Te *testing.T) {
	//a T-shaped pair: flat ring at the origin, upright ring above it,
	//so the normals sit 90 degrees apart
	lig := benzene(Te, 1, 0, 0, 0, 0)
	prot := uprightBenzene(Te, 91, 10, 0, 0, 4.5)
	EtF := NewEdgeToFace()
	r, err := EtF.Detect(lig, prot)
	if err != nil {
		Te.Fatal(err)
	}
	if !r.Hit || r.First != 0 || r.Second != 0 {
		Te.Errorf("perpendicular rings 4.5 apart should stack edge to face: %+v", r)
	}
	FtF := NewFaceToFace()
	r, err = FtF.Detect(lig, prot)
	if err != nil {
		Te.Fatal(err)
	}
	if r.Hit {
		Te.Errorf("perpendicular rings are not a parallel stack: %+v", r)
	}
	Pi := NewPiStacking()
	r, err = Pi.Detect(lig, prot)
	if err != nil {
		Te.Fatal(err)
	}
	if !r.Hit {
		Te.Errorf("the combined detector should accept the T-shaped geometry: %+v", r)
	}
	//narrowing the window below 90 degrees rejects the upright ring
	EtF.AngleWindow([2]float64{50, 80})
	r, err = EtF.Detect(lig, prot)
	if err != nil {
		Te.Fatal(err)
	}
	if r.Hit {
		Te.Errorf("a window excluding 90 degrees should reject: %+v", r)
	}
}

func TestXBond(Te *testing.T) {
	lig := mkres(Te, "LIG", 1, 0, []string{"C1", "CL1"}, []string{"C", "Cl"}, []float64{0, 0, 0, 1.8, 0, 0})
	prolif.NewBond(0, lig.Atom(0), lig.Atom(1), 1)
	prot := mkres(Te, "SER", 30, 10, []string{"OG"}, []string{"O"}, []float64{4.8, 0, 0})
	D := NewXBDonor()
	r, err := D.Detect(lig, prot)
	if err != nil {
		Te.Fatal(err)
	}
	if !r.Hit || r.First != 1 || r.Second != 0 {
		Te.Errorf("a linear C-Cl...O at 3.0 should hit, reporting the halogen: %+v", r)
	}
	A := NewXBAcceptor()
	r, err = A.Detect(prot, lig)
	if err != nil {
		Te.Fatal(err)
	}
	if !r.Hit || r.First != 0 || r.Second != 1 {
		Te.Errorf("the acceptor side should mirror the donor side: %+v", r)
	}
	//same distance, but the acceptor sits off the sigma hole axis
	bent := mkres(Te, "SER", 30, 10, []string{"OG"}, []string{"O"}, []float64{1.8, 3.0, 0})
	r, err = D.Detect(lig, bent)
	if err != nil {
		Te.Fatal(err)
	}
	if r.Hit {
		Te.Errorf("a 90 degree C-X-A angle is no halogen bond: %+v", r)
	}
}

func TestMetal(Te *testing.T) {
	lig := mkres(Te, "ZN", 1, 0, []string{"ZN"}, []string{"Zn"}, []float64{0, 0, 0})
	prot := mkres(Te, "ASP", 25, 1, []string{"OD1"}, []string{"O"}, []float64{2.5, 0, 0})
	D := NewMetalDonor()
	r, err := D.Detect(lig, prot)
	if err != nil {
		Te.Fatal(err)
	}
	if !r.Hit || r.First != 0 || r.Second != 0 {
		Te.Errorf("a zinc 2.5 from a carboxylate oxygen should coordinate: %+v", r)
	}
	A := NewMetalAcceptor()
	r, err = A.Detect(prot, lig)
	if err != nil {
		Te.Fatal(err)
	}
	if !r.Hit || r.First != 0 || r.Second != 0 {
		Te.Errorf("the chelator side should mirror the metal side: %+v", r)
	}
	far := mkres(Te, "ASP", 25, 1, []string{"OD1"}, []string{"O"}, []float64{3.2, 0, 0})
	r, err = D.Detect(lig, far)
	if err != nil {
		Te.Fatal(err)
	}
	if r.Hit || r.First != Absent || r.Second != Absent {
		Te.Errorf("an oxygen at 3.2 is past the coordination cutoff: %+v", r)
	}
}

func TestFullSet(Te *testing.T) {
	S := FullSet()
	if S.Len() != 16 {
		Te.Errorf("expected 16 detectors, got %d", S.Len())
	}
	for _, name := range []string{"XBDonor", "XBAcceptor", "FaceToFace", "EdgeToFace", "MetalDonor", "MetalAcceptor", "CloseContact"} {
		if _, ok := S.Get(name); !ok {
			Te.Errorf("the full set lacks %s", name)
		}
	}
	//the full set extends the default one, in order
	def := DefaultSet().Names()
	full := S.Names()
	for i, name := range def {
		if full[i] != name {
			Te.Errorf("detector %d should be %s, got %s", i, name, full[i])
		}
	}
}

func TestCationPi(Te *testing.T) {
	cat := mkres(Te, "LIG", 1, 100, []string{"N1"}, []string{"N"}, []float64{0, 0, 3.0})
	cat.Atom(0).Charge = 1
	ring := benzene(Te, 91, 0, 0, 0, 0)
	D := NewCationPi()
	r, err := D.Detect(cat, ring)
	if err != nil {
		Te.Fatal(err)
	}
	if !r.Hit || r.First != 0 || r.Second != 0 {
		Te.Errorf("a cation on the ring axis at 3.0 should hit: %+v", r)
	}
	P := NewPiCation()
	r, err = P.Detect(ring, cat)
	if err != nil {
		Te.Fatal(err)
	}
	if !r.Hit || r.First != 0 || r.Second != 0 {
		Te.Errorf("PiCation should mirror CationPi: %+v", r)
	}
	//Same distance but beside the ring, far off the axis.
	side := mkres(Te, "LIG", 1, 110, []string{"N1"}, []string{"N"}, []float64{3.0, 0, 0})
	side.Atom(0).Charge = 1
	r, err = D.Detect(side, ring)
	if err != nil {
		Te.Fatal(err)
	}
	if r.Hit {
		Te.Errorf("a cation in the ring plane should not hit: %+v", r)
	}
}

func TestVdWContact(Te *testing.T) {
	lig := mkres(Te, "LIG", 1, 0, []string{"C1"}, []string{"C"}, []float64{0, 0, 0})
	prot := mkres(Te, "ALA", 10, 1, []string{"CB"}, []string{"C"}, []float64{3.3, 0, 0})
	D := NewVdWContact()
	r, err := D.Detect(lig, prot)
	if err != nil {
		Te.Fatal(err)
	}
	if !r.Hit {
		Te.Errorf("two carbons at 3.3 are within the sum of their radii: %+v", r)
	}
	far := mkres(Te, "ALA", 10, 2, []string{"CB"}, []string{"C"}, []float64{3.6, 0, 0})
	r, err = D.Detect(lig, far)
	if err != nil {
		Te.Fatal(err)
	}
	if r.Hit {
		Te.Errorf("two carbons at 3.6 are outside the sum of their radii: %+v", r)
	}
	D.Tolerance(0.5)
	r, err = D.Detect(lig, far)
	if err != nil {
		Te.Fatal(err)
	}
	if !r.Hit {
		Te.Errorf("the tolerance should extend the threshold: %+v", r)
	}
}

func TestCanonicalPair(Te *testing.T) {
	//Three atoms on each side, with a unique closest pair.
	lig := mkres(Te, "LIG", 1, 0, []string{"C1", "C2", "C3"}, []string{"C", "C", "C"},
		[]float64{0, 0, 0, 0, 1, 0, 0, 2, 0})
	prot := mkres(Te, "LEU", 20, 10, []string{"CD1", "CD2", "CG"}, []string{"C", "C", "C"},
		[]float64{4, 0, 0, 3, 1, 0, 4, 2, 0})
	D := NewHydrophobic()
	for i := 0; i < 5; i++ {
		r, err := D.Detect(lig, prot)
		if err != nil {
			Te.Fatal(err)
		}
		if !r.Hit || r.First != 1 || r.Second != 1 {
			Te.Errorf("run %d: expected the closest pair (1,1), got %+v", i, r)
		}
	}
	//With an exact tie, the first pair in enumeration order wins.
	tied := mkres(Te, "LEU", 20, 20, []string{"CD1", "CD2"}, []string{"C", "C"},
		[]float64{3, 0, 0, -3, 0, 0})
	r, err := D.Detect(mkres(Te, "LIG", 1, 30, []string{"C1"}, []string{"C"}, []float64{0, 0, 0}), tied)
	if err != nil {
		Te.Fatal(err)
	}
	if !r.Hit || r.Second != 0 {
		Te.Errorf("tie should resolve to the first atom in order: %+v", r)
	}
}

func TestSetRegister(Te *testing.T) {
	S := DefaultSet()
	names := S.Names()
	if len(names) == 0 || names[0] != "Hydrophobic" {
		Te.Fatalf("unexpected default registry order: %v", names)
	}
	pos := -1
	for i, n := range names {
		if n == "HBDonor" {
			pos = i
		}
	}
	if pos < 0 {
		Te.Fatal("HBDonor missing from the default registry")
	}
	//Overriding keeps the original position.
	custom := NewHBDonor()
	custom.Cutoff(3.0)
	S.Register("HBDonor", custom)
	names2 := S.Names()
	if len(names2) != len(names) || names2[pos] != "HBDonor" {
		Te.Errorf("override moved or duplicated the name: %v", names2)
	}
	got, ok := S.Get("HBDonor")
	if !ok {
		Te.Fatal("HBDonor missing after override")
	}
	if hb, ok := got.(*HBDonor); !ok || hb.Cutoff() != 3.0 {
		Te.Errorf("override did not replace the detector")
	}
}

func TestBadInput(Te *testing.T) {
	lig := mkres(Te, "LIG", 1, 0, []string{"C1"}, []string{"C"}, []float64{0, 0, 0})
	var empty prolif.Residue
	D := NewCloseContact()
	if _, err := D.Detect(lig, &empty); err == nil {
		Te.Error("an empty residue should be rejected with an error")
	}
}
