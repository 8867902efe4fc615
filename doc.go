/*
 * doc.go, part of goProLIF.
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
Package prolif provides the chemical model for protein-ligand interaction
fingerprints: atoms grouped into residues, topologies with per-frame
coordinates, and the geometric helpers the interaction detectors are built
on.

The model separates what does not change in time (the Topology: atoms,
names, bonds, residue membership) from what does (the coordinates, kept in
v3.Matrix frames). A Molecule bundles a Topology with one or more frames
and acts as an in-memory, restartable sequence of poses.

Detection itself lives in the detect subpackage, aggregation and tabular
export in fp, and bit-vector similarity in bv.
*/
package prolif
