/*
 * geometric.go, part of goProLIF.
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

	v3 "github.com/rochoa85/ProLIF/v3"
)

const appzero float64 = 0.0000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

//Deg2Rad converts degrees to radians when multiplied by an angle.
const Deg2Rad = math.Pi / 180.0

//Rad2Deg converts radians to degrees when multiplied by an angle.
const Rad2Deg = 180.0 / math.Pi

//Angle takes 2 vectors and calculates the angle in radians between them.
//It does not check for correctness or return errors!
func Angle(v1, v2 *v3.Matrix) float64 {
	normproduct := v1.Norm(2) * v2.Norm(2)
	dotprod := v1.Dot(v2)
	argument := dotprod / normproduct
	//Take care of floating point math errors
	if math.Abs(argument-1) <= appzero {
		argument = 1
	} else if math.Abs(argument+1) <= appzero {
		argument = -1
	}
	angle := math.Acos(argument)
	if math.Abs(angle) <= appzero {
		return 0.00
	}
	return angle
}

//AcuteAngle returns the angle between the directions of v1 and v2,
//ignoring their orientation, i.e. always in [0, pi/2]. Useful when one of
//the vectors is a plane normal, whose sign is arbitrary.
func AcuteAngle(v1, v2 *v3.Matrix) float64 {
	a := Angle(v1, v2)
	if a > math.Pi/2 {
		a = math.Pi - a
	}
	return a
}

//Centroid returns the geometric center of the points in coords.
func Centroid(coords *v3.Matrix) *v3.Matrix {
	n := coords.NVecs()
	ret := v3.Zeros(1)
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			ret.Set(0, j, ret.At(0, j)+coords.At(i, j))
		}
	}
	ret.Scale(1.0/float64(n), ret)
	return ret
}

//ClosestPair returns the indexes of the vector of test and the vector of
//ref with the shortest distance between them, plus that distance. When
//several pairs are at the exact same distance, the first one in
//enumeration order (test index first, then ref index) wins, so the result
//is deterministic for a given input.
func ClosestPair(test, ref *v3.Matrix) (int, int, float64) {
	var d float64
	besti, bestj := 0, 0
	dclosest := math.Inf(1)
	for i := 0; i < test.NVecs(); i++ {
		vt := test.VecView(i)
		for j := 0; j < ref.NVecs(); j++ {
			d = v3.Dist(vt, ref.VecView(j))
			if d < dclosest {
				dclosest = d
				besti, bestj = i, j
			}
		}
	}
	return besti, bestj, dclosest
}

//MinDist returns the shortest distance between any point of test and any
//point of ref.
func MinDist(test, ref *v3.Matrix) float64 {
	_, _, d := ClosestPair(test, ref)
	return d
}

//PlaneNormal returns the unit normal of the plane that best contains the
//points in coords, using Newell's method over the cyclic sequence of
//points. The orientation of the returned vector is arbitrary, so callers
//comparing normals should use AcuteAngle. Panics if given less than 3
//points, as no plane is defined by them.
func PlaneNormal(coords *v3.Matrix) *v3.Matrix {
	n := coords.NVecs()
	if n < 3 {
		panic("PlaneNormal: Need at least 3 points to define a plane")
	}
	c := Centroid(coords)
	a := v3.Zeros(1)
	b := v3.Zeros(1)
	cross := v3.Zeros(1)
	normal := v3.Zeros(1)
	for i := 0; i < n; i++ {
		a.SubVec(coords.VecView(i), c)
		b.SubVec(coords.VecView((i+1)%n), c)
		cross.Cross(a, b)
		normal.Add(normal, cross)
	}
	normal.Unit(normal)
	return normal
}

//PlaneDeviation returns the largest distance from any of the points in
//coords to the plane through their centroid with the given unit normal.
func PlaneDeviation(coords, normal *v3.Matrix) float64 {
	c := Centroid(coords)
	tmp := v3.Zeros(1)
	max := 0.0
	for i := 0; i < coords.NVecs(); i++ {
		tmp.SubVec(coords.VecView(i), c)
		d := math.Abs(tmp.Dot(normal))
		if d > max {
			max = d
		}
	}
	return max
}
