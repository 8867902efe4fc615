/*
 * rings.go, part of goProLIF.
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
	v3 "github.com/rochoa85/ProLIF/v3"
)

//Tolerance, in A, for the deviation of ring members from the mean ring
//plane. Aromatic rings are flat well within this; saturated rings in
//chair or envelope conformations deviate by several times more.
const ringPlanarTol = 0.1

const (
	minRingSize = 5
	maxRingSize = 6
)

//Ring is a cycle of atoms within one residue, given by their positions in
//the residue's atom list, in the order they are bonded around the cycle.
type Ring []int

//AromaticRings returns the flat 5- and 6-membered rings of the residue,
//found by walking the caller-provided bonds and keeping the cycles whose
//members lie within a small tolerance of their mean plane. Planarity is a
//geometric statement about this residue's current coordinates, which is
//what the aromatic interaction detectors need; no electronic-structure
//aromaticity model is implied. Atoms without bond information can never be
//part of a ring. The rings are returned in a deterministic order (by
//their lowest atom position).
func (R *Residue) AromaticRings() []Ring {
	//local adjacency, only between atoms of this residue
	adj := make([][]int, R.Len())
	for i := 0; i < R.Len(); i++ {
		for _, b := range R.Atom(i).Bonds {
			other := R.Local(b.Cross(R.Atom(i)).Index)
			if other >= 0 {
				adj[i] = append(adj[i], other)
			}
		}
	}
	rings := make([]Ring, 0, 2)
	for start := 0; start < R.Len(); start++ {
		path := []int{start}
		rings = findCycles(adj, start, path, rings)
	}
	planar := make([]Ring, 0, len(rings))
	for _, ring := range rings {
		coords := R.RingCoords(ring)
		if PlaneDeviation(coords, PlaneNormal(coords)) <= ringPlanarTol {
			planar = append(planar, ring)
		}
	}
	return planar
}

//findCycles extends path, whose first element is its smallest member, and
//appends to rings every cycle of admissible size that closes back on the
//first element. Only atoms with a position greater than the start are
//visited, so each cycle is found exactly once, anchored at its lowest
//member, with its second element smaller than its last; that gives every
//ring a unique, deterministic representation.
func findCycles(adj [][]int, start int, path []int, rings []Ring) []Ring {
	last := path[len(path)-1]
	for _, next := range adj[last] {
		if next == start && len(path) >= minRingSize {
			if path[1] < path[len(path)-1] {
				ring := make(Ring, len(path))
				copy(ring, path)
				rings = append(rings, ring)
			}
			continue
		}
		if next <= start || len(path) >= maxRingSize || isInInt(path, next) {
			continue
		}
		rings = findCycles(adj, start, append(path, next), rings)
	}
	return rings
}

//RingCoords returns a copy of the coordinates of the members of the given
//ring, one row per member, in ring order.
func (R *Residue) RingCoords(ring Ring) *v3.Matrix {
	c := v3.Zeros(len(ring))
	c.SomeVecs(R.coords, ring)
	return c
}

//RingCentroid returns the geometric center of the given ring.
func (R *Residue) RingCentroid(ring Ring) *v3.Matrix {
	return Centroid(R.RingCoords(ring))
}

//RingNormal returns the unit normal of the mean plane of the given ring.
//Its orientation is arbitrary.
func (R *Residue) RingNormal(ring Ring) *v3.Matrix {
	return PlaneNormal(R.RingCoords(ring))
}
