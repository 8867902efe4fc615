/*
 * v3_test.go, part of goProLIF.
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

package v3

import (
	"math"
	"testing"
)

func TestNewMatrix(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 0, 0, 0, 1, 0})
	if err != nil {
		Te.Error(err)
	}
	if A.NVecs() != 2 {
		Te.Errorf("Wrong number of vectors: %d", A.NVecs())
	}
	_, err = NewMatrix([]float64{1, 0, 0, 0})
	if err == nil {
		Te.Error("Expected an error for a slice not divisible by 3")
	}
}

func TestCrossDot(Te *testing.T) {
	x, _ := NewMatrix([]float64{1, 0, 0})
	y, _ := NewMatrix([]float64{0, 1, 0})
	z := Zeros(1)
	z.Cross(x, y)
	if z.At(0, 2) != 1 || z.At(0, 0) != 0 || z.At(0, 1) != 0 {
		Te.Errorf("Wrong cross product: %v", z)
	}
	if x.Dot(y) != 0 {
		Te.Errorf("Wrong dot product: %f", x.Dot(y))
	}
	if math.Abs(x.Dot(x)-1) > appzero {
		Te.Errorf("Wrong dot product: %f", x.Dot(x))
	}
}

func TestSomeVecs(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 1, 1, 2, 2, 2, 3, 3, 3})
	B := Zeros(2)
	B.SomeVecs(A, []int{2, 0})
	if B.At(0, 0) != 3 || B.At(1, 0) != 1 {
		Te.Errorf("Wrong selection: %v", B)
	}
}

func TestDist(Te *testing.T) {
	a, _ := NewMatrix([]float64{0, 0, 0})
	b, _ := NewMatrix([]float64{3, 4, 0})
	if math.Abs(Dist(a, b)-5) > appzero {
		Te.Errorf("Wrong distance: %f", Dist(a, b))
	}
}

//The arithmetic wrappers must accept the receiver among their own
//arguments; the underlying library only allows that when handed the
//bare backing matrix, so in-place updates go through the wrappers.
func TestAliasedArithmetic(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 2, 3})
	A.Scale(2, A)
	if A.At(0, 0) != 2 || A.At(0, 2) != 6 {
		Te.Errorf("In-place scaling failed: %v", A)
	}
	B, _ := NewMatrix([]float64{1, 1, 1})
	A.Add(A, B)
	if A.At(0, 0) != 3 || A.At(0, 2) != 7 {
		Te.Errorf("In-place addition failed: %v", A)
	}
	A.Sub(A, B)
	if A.At(0, 0) != 2 || A.At(0, 2) != 6 {
		Te.Errorf("In-place subtraction failed: %v", A)
	}
	U, _ := NewMatrix([]float64{2, 0, 0})
	U.Unit(U)
	if math.Abs(U.At(0, 0)-1) > appzero || U.At(0, 1) != 0 {
		Te.Errorf("In-place normalization failed: %v", U)
	}
}

func TestSubAddVec(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 1, 1, 2, 2, 2})
	v, _ := NewMatrix([]float64{1, 1, 1})
	R := Zeros(2)
	R.SubVec(A, v)
	if R.At(0, 0) != 0 || R.At(1, 2) != 1 {
		Te.Errorf("Wrong subtraction: %v", R)
	}
	R.AddVec(R, v)
	if R.At(0, 0) != 1 || R.At(1, 2) != 2 {
		Te.Errorf("Wrong addition: %v", R)
	}
}
