/*
 * atomicdata.go, part of goProLIF.
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

//A map for assigning mass to elements.
//Note that just common "bio-elements" are present
var symbolMass = map[string]float64{
	"H":  1.0,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"Se": 78.96,
	"K":  39.1,
	"Ca": 40.08,
	"Mg": 24.30,
	"Cl": 35.45,
	"Na": 22.99,
	"Cu": 63.55,
	"Zn": 65.38,
	"Co": 58.93,
	"Fe": 55.84,
	"Mn": 54.94,
	"Si": 28.08,
	"F":  18.998,
	"Br": 79.904,
	"I":  126.90,
}

//A map for assigning van der Waals radii to elements,
//values from Bondi, 1964 (DOI:10.1021/j100785a001), with
//later additions by Mantina et al. (DOI:10.1021/jp8111556).
//Note that just common "bio-elements" are present
var symbolVdwRad = map[string]float64{
	"H":  1.20,
	"C":  1.70,
	"N":  1.55,
	"O":  1.52,
	"F":  1.47,
	"P":  1.80,
	"S":  1.80,
	"Cl": 1.75,
	"Br": 1.85,
	"I":  1.98,
	"Se": 1.90,
	"Na": 2.27,
	"K":  2.75,
	"Mg": 1.73,
	"Ca": 2.31,
	"Zn": 1.39,
	"Cu": 1.40,
	"Fe": 2.05, //these last 3 are rough values, transition-metal
	"Mn": 2.05, //vdW radii are poorly defined.
	"Co": 2.00,
}

//VdwRad returns the van der Waals radius for the element with the given
//symbol, and whether the element was found in the internal table.
func VdwRad(symbol string) (float64, bool) {
	r, ok := symbolVdwRad[symbol]
	return r, ok
}

//Mass returns the atomic mass for the element with the given symbol, and
//whether the element was found in the internal table.
func Mass(symbol string) (float64, bool) {
	m, ok := symbolMass[symbol]
	return m, ok
}

//Elements that can form hydrophobic contacts. Carbon and sulfur only count
//when not bonded to anything more electronegative than themselves, which is
//checked by the detector, not here.
var hydrophobicSymbol = map[string]bool{
	"C":  true,
	"S":  true,
	"Cl": true,
	"Br": true,
	"I":  true,
	"F":  true,
}

//Halogens that can act as halogen-bond donors when bonded to carbon.
var halogenSymbol = map[string]bool{
	"Cl": true,
	"Br": true,
	"I":  true,
	"F":  true,
}

//Elements with lone pairs that can accept hydrogen or halogen bonds.
var acceptorSymbol = map[string]bool{
	"N": true,
	"O": true,
	"F": true,
	"S": true, //marginal, but common enough in ligands (thioethers, thiones)
}

//Biologically relevant metals.
var metalSymbol = map[string]bool{
	"Na": true,
	"K":  true,
	"Mg": true,
	"Ca": true,
	"Mn": true,
	"Fe": true,
	"Co": true,
	"Cu": true,
	"Zn": true,
}

//Atom names carrying the positive charge in standard protonated residues.
//Used as a fallback when formal charges are not set on the atoms.
var posChargedAtom = map[string][]string{
	"ARG": {"NH1", "NH2", "NE"},
	"LYS": {"NZ"},
	"HIP": {"ND1", "NE2"}, //doubly-protonated histidine
}

//Atom names carrying the negative charge in standard deprotonated residues.
var negChargedAtom = map[string][]string{
	"ASP": {"OD1", "OD2"},
	"GLU": {"OE1", "OE2"},
	"CYM": {"SG"}, //deprotonated cysteine
	"TYM": {"OH"}, //deprotonated tyrosine
}
