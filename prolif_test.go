/*
 * prolif_test.go, part of goProLIF.
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
	"math"
	"testing"

	v3 "github.com/rochoa85/ProLIF/v3"
)

func TestResIDRoundTrip(Te *testing.T) {
	for _, id := range []ResID{
		{Name: "TYR", Number: 109, Chain: "A"},
		{Name: "LIG", Number: 1},
		{Name: "HIS", Number: 57, Chain: "B"},
		{Name: "LIG", Number: 27, Chain: "A"},
	} {
		parsed, err := ParseResID(id.String())
		if err != nil {
			Te.Fatal(err)
		}
		if parsed != id {
			Te.Errorf("%v did not survive the round trip: %v", id, parsed)
		}
	}
	//only the last run of digits is the residue number, so het codes
	//with inner or leading digits parse
	if parsed, err := ParseResID("A1B2"); err != nil || parsed != (ResID{Name: "A1B", Number: 2}) {
		Te.Errorf("digit-bearing name mishandled: %v %v", parsed, err)
	}
	if parsed, err := ParseResID("0Z6301.B"); err != nil || parsed.Chain != "B" || parsed.Name == "" {
		Te.Errorf("het code with digits mishandled: %v %v", parsed, err)
	}
	if _, err := ParseResID("nonsense"); err == nil {
		Te.Error("an identifier without a residue number should not parse")
	}
	if id := (ResID{Name: "TYR", Number: 109, Chain: "A"}); id.String() != "TYR109.A" {
		Te.Errorf("unexpected identifier format: %s", id.String())
	}
}

func TestAtomPredicates(Te *testing.T) {
	c := &Atom{Name: "C1", Symbol: "C", Index: 0}
	o := &Atom{Name: "O1", Symbol: "O", Index: 1}
	h := &Atom{Name: "H1", Symbol: "H", Index: 2}
	cl := &Atom{Name: "CL1", Symbol: "Cl", Index: 3}
	if !c.IsHydrophobic() {
		Te.Error("an unbonded carbon should be hydrophobic")
	}
	NewBond(0, c, o, 2)
	if c.IsHydrophobic() {
		Te.Error("a carbon bonded to oxygen should not be hydrophobic")
	}
	if !o.IsHAcceptor() {
		Te.Error("a neutral oxygen should accept hydrogen bonds")
	}
	NewBond(1, o, h, 1)
	if heavy := h.DonorHeavy(); heavy == nil || heavy.Index != o.Index {
		Te.Error("the hydrogen should report its oxygen as donor")
	}
	NewBond(2, c, cl, 1)
	if carbon := cl.HalogenCarbon(); carbon == nil || carbon.Index != c.Index {
		Te.Error("the chlorine should report its carbon")
	}
	zn := &Atom{Name: "ZN", Symbol: "Zn"}
	if !zn.IsMetal() {
		Te.Error("zinc should be a metal")
	}
	//Residue-name fallback for the charges.
	nz := &Atom{Name: "NZ", Symbol: "N", MolName: "LYS"}
	if !nz.IsCationic() {
		Te.Error("a lysine NZ should be cationic by name")
	}
	od := &Atom{Name: "OD1", Symbol: "O", MolName: "ASP"}
	if !od.IsAnionic() {
		Te.Error("an aspartate OD1 should be anionic by name")
	}
	//An explicit formal charge overrides the name tables.
	nz2 := &Atom{Name: "NZ", Symbol: "N", MolName: "LYS", Charge: -1}
	if nz2.IsCationic() {
		Te.Error("the formal charge should take precedence over the name")
	}
}

func testTopology(Te *testing.T) *Topology {
	Te.Helper()
	atoms := []*Atom{
		{Name: "C1", Symbol: "C", MolName: "LIG", MolID: 1, Chain: "X"},
		{Name: "N1", Symbol: "N", MolName: "LIG", MolID: 1, Chain: "X"},
		{Name: "CA", Symbol: "C", MolName: "ALA", MolID: 10, Chain: "A"},
		{Name: "CB", Symbol: "C", MolName: "ALA", MolID: 10, Chain: "A"},
		{Name: "OD1", Symbol: "O", MolName: "ASP", MolID: 11, Chain: "A"},
	}
	top, err := NewTopology(atoms)
	if err != nil {
		Te.Fatal(err)
	}
	return top
}

func TestTopology(Te *testing.T) {
	top := testTopology(Te)
	if top.Len() != 5 || top.NResidues() != 3 {
		Te.Fatalf("expected 5 atoms in 3 residues, got %d in %d", top.Len(), top.NResidues())
	}
	res := top.Residues()
	if res[0].Name != "LIG" || res[1].Name != "ALA" || res[2].Name != "ASP" {
		Te.Errorf("residues out of first-appearance order: %v", res)
	}
	if sel := top.SelectChains("A"); len(sel) != 3 || sel[0] != 2 {
		Te.Errorf("chain selection failed: %v", sel)
	}
	if sel := top.SelectResNames("LIG"); len(sel) != 2 || sel[0] != 0 || sel[1] != 1 {
		Te.Errorf("name selection failed: %v", sel)
	}
	if ids := top.ResIDsIn([]int{4, 2, 3}); len(ids) != 2 || ids[0].Name != "ASP" {
		Te.Errorf("selection residues failed: %v", ids)
	}
	masses, err := top.Masses()
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(masses[1]-14.007) > 0.01 {
		Te.Errorf("wrong mass for nitrogen: %f", masses[1])
	}
}

func TestResidueBuilding(Te *testing.T) {
	top := testTopology(Te)
	coords, err := v3.NewMatrix([]float64{
		0, 0, 0,
		1.3, 0, 0,
		4, 0, 0,
		5, 0, 0,
		4, 3, 0,
	})
	if err != nil {
		Te.Fatal(err)
	}
	ala := ResID{Name: "ALA", Number: 10, Chain: "A"}
	R, err := top.Residue(ala, coords)
	if err != nil {
		Te.Fatal(err)
	}
	if R.Len() != 2 || R.Atom(0).Name != "CA" {
		Te.Fatalf("unexpected residue contents: %s", R.String())
	}
	if R.Coord(1).At(0, 0) != 5 {
		Te.Error("residue coordinates out of order")
	}
	if R.Local(3) != 1 || R.Local(4) != -1 {
		Te.Error("local index mapping failed")
	}
	//Restricting to a sub-selection drops the rest of the residue.
	S, err := top.SomeResidue(ala, []int{3, 4}, coords)
	if err != nil {
		Te.Fatal(err)
	}
	if S.Len() != 1 || S.Atom(0).Name != "CB" {
		Te.Errorf("sub-selection failed: %s", S.String())
	}
	if _, err := top.Residue(ResID{Name: "GLY", Number: 99}, coords); err == nil {
		Te.Error("a residue not in the topology should be an error")
	}
}

func TestMoleculeFrames(Te *testing.T) {
	top := testTopology(Te)
	mkframe := func(shift float64) *v3.Matrix {
		f := v3.Zeros(top.Len())
		for i := 0; i < top.Len(); i++ {
			f.Set(i, 0, float64(i)+shift)
		}
		return f
	}
	mol, err := NewMolecule(top, []*v3.Matrix{mkframe(0), mkframe(10)})
	if err != nil {
		Te.Fatal(err)
	}
	coords := v3.Zeros(top.Len())
	read := 0
	for {
		err := mol.Next(coords)
		if err != nil {
			if _, ok := err.(LastFrameError); !ok {
				Te.Fatal(err)
			}
			break
		}
		read++
	}
	if read != 2 {
		Te.Fatalf("expected to read 2 frames, read %d", read)
	}
	if coords.At(0, 0) != 10 {
		Te.Error("the last frame read back wrong")
	}
	if mol.Readable() {
		Te.Error("an exhausted molecule should not be readable")
	}
	//InitRead restarts the sequence.
	if err := mol.InitRead(); err != nil {
		Te.Fatal(err)
	}
	if !mol.Readable() || mol.Current() != 0 {
		Te.Error("InitRead should rewind to the first frame")
	}
	if err := mol.Next(coords); err != nil {
		Te.Fatal(err)
	}
	if coords.At(0, 0) != 0 {
		Te.Error("the first frame read back wrong after the restart")
	}
}

func TestGeometry(Te *testing.T) {
	x, _ := v3.NewMatrix([]float64{1, 0, 0})
	y, _ := v3.NewMatrix([]float64{0, 1, 0})
	if a := Angle(x, y) * Rad2Deg; math.Abs(a-90) > 0.001 {
		Te.Errorf("expected 90 degrees, got %f", a)
	}
	minusx, _ := v3.NewMatrix([]float64{-1, 0, 0})
	if a := AcuteAngle(x, minusx); math.Abs(a) > 0.001 {
		Te.Errorf("antiparallel vectors should have zero acute angle, got %f", a)
	}
	test, _ := v3.NewMatrix([]float64{0, 0, 0, 0, 1, 0})
	ref, _ := v3.NewMatrix([]float64{3, 0, 0, 0, 4, 0})
	i, j, d := ClosestPair(test, ref)
	if i != 0 || j != 0 || math.Abs(d-3) > 0.001 {
		Te.Errorf("expected pair (0,0) at 3, got (%d,%d) at %f", i, j, d)
	}
	//An exact tie goes to the first pair in enumeration order.
	tied, _ := v3.NewMatrix([]float64{3, 0, 0, -3, 0, 0})
	one, _ := v3.NewMatrix([]float64{0, 0, 0})
	if _, j, _ := ClosestPair(one, tied); j != 0 {
		Te.Errorf("tie should resolve to the first atom, got %d", j)
	}
	square, _ := v3.NewMatrix([]float64{1, 1, 0, -1, 1, 0, -1, -1, 0, 1, -1, 0})
	n := PlaneNormal(square)
	z, _ := v3.NewMatrix([]float64{0, 0, 1})
	if a := AcuteAngle(n, z); math.Abs(a) > 0.001 {
		Te.Errorf("the normal of an xy square should be along z, got angle %f", a)
	}
	if dev := PlaneDeviation(square, n); math.Abs(dev) > 0.001 {
		Te.Errorf("a flat square should have zero plane deviation, got %f", dev)
	}
}

//hexRes builds a hexagonal bonded ring, flat or with one atom pushed
//out of the plane.
func hexRes(Te *testing.T, pucker float64) *Residue {
	Te.Helper()
	atoms := make([]*Atom, 6)
	xyz := make([]float64, 0, 18)
	for i := 0; i < 6; i++ {
		atoms[i] = &Atom{Name: "C", Symbol: "C", Index: i, MolName: "BNZ", MolID: 1}
		ang := float64(i) * math.Pi / 3
		z := 0.0
		if i == 0 {
			z = pucker
		}
		xyz = append(xyz, 1.39*math.Cos(ang), 1.39*math.Sin(ang), z)
	}
	for i := 0; i < 6; i++ {
		NewBond(i, atoms[i], atoms[(i+1)%6], 1.5)
	}
	coords, err := v3.NewMatrix(xyz)
	if err != nil {
		Te.Fatal(err)
	}
	R, err := NewResidue(ResID{Name: "BNZ", Number: 1}, atoms, coords)
	if err != nil {
		Te.Fatal(err)
	}
	return R
}

func TestAromaticRings(Te *testing.T) {
	flat := hexRes(Te, 0)
	rings := flat.AromaticRings()
	if len(rings) != 1 || len(rings[0]) != 6 {
		Te.Fatalf("expected one 6-membered ring, got %v", rings)
	}
	if rings[0][0] != 0 {
		Te.Errorf("the ring should start at its lowest member, got %v", rings[0])
	}
	cent := flat.RingCentroid(rings[0])
	if math.Abs(cent.At(0, 0)) > 0.001 || math.Abs(cent.At(0, 1)) > 0.001 {
		Te.Errorf("the centroid of a centered hexagon should be the origin, got %v", cent)
	}
	z, _ := v3.NewMatrix([]float64{0, 0, 1})
	if a := AcuteAngle(flat.RingNormal(rings[0]), z); math.Abs(a) > 0.001 {
		Te.Errorf("the ring normal should be along z, got angle %f", a)
	}
	//A puckered ring is not planar, hence not aromatic.
	bent := hexRes(Te, 0.8)
	if rings := bent.AromaticRings(); len(rings) != 0 {
		Te.Errorf("a puckered ring should be rejected, got %v", rings)
	}
}
