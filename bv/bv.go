/*
 * bv.go, part of goProLIF.
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
Package bv implements fixed-length bit vectors and the similarity
coefficients used to compare interaction fingerprints. Bits are packed
eight to a byte, so a fingerprint of a few thousand interaction columns
fits in a few hundred bytes, and the similarity coefficients reduce to
popcounts.

Comparing vectors of different lengths is a programming error, not a
data condition, so the similarity functions panic on it; vectors are
only comparable when built over the same column universe, which callers
must establish first.
*/
package bv

import (
	"fmt"
	"math"
	"math/bits"
)

//Vector is a fixed-length, byte-packed bit vector. The fields are
//exported for serialization; use the methods to read and flip bits.
type Vector struct {
	Bits   []byte
	Length int
}

//New returns a zeroed Vector of the given length in bits.
func New(length int) *Vector {
	if length < 0 {
		panic("bv: Negative bit vector length")
	}
	return &Vector{Bits: make([]byte, (length+7)/8), Length: length}
}

//Len returns the length of the vector, in bits.
func (V *Vector) Len() int {
	return V.Length
}

func (V *Vector) check(i int) {
	if i < 0 || i >= V.Length {
		panic(fmt.Sprintf("bv: Bit index %d out of range for a %d-bit vector", i, V.Length))
	}
}

//Set sets the i-th bit to the given value.
func (V *Vector) Set(i int, on bool) {
	V.check(i)
	if on {
		V.Bits[i/8] |= 1 << (i % 8)
	} else {
		V.Bits[i/8] &^= 1 << (i % 8)
	}
}

//Get returns the i-th bit.
func (V *Vector) Get(i int) bool {
	V.check(i)
	return V.Bits[i/8]&(1<<(i%8)) != 0
}

//OnBits returns the number of set bits.
func (V *Vector) OnBits() int {
	on := 0
	for _, b := range V.Bits {
		on += bits.OnesCount8(b)
	}
	return on
}

//Equal returns whether the two vectors have the same length and the
//same bits set.
func (V *Vector) Equal(W *Vector) bool {
	if V.Length != W.Length {
		return false
	}
	for i, b := range V.Bits {
		if b != W.Bits[i] {
			return false
		}
	}
	return true
}

//lengthsMatch panics unless the two vectors are comparable.
func lengthsMatch(V, W *Vector) {
	if V.Length != W.Length {
		panic(fmt.Sprintf("bv: Comparing vectors of different lengths (%d and %d)", V.Length, W.Length))
	}
}

//common returns the popcounts needed by the similarity coefficients:
//bits on in V, bits on in W, and bits on in both.
func common(V, W *Vector) (int, int, int) {
	a, b, c := 0, 0, 0
	for i, vb := range V.Bits {
		wb := W.Bits[i]
		a += bits.OnesCount8(vb)
		b += bits.OnesCount8(wb)
		c += bits.OnesCount8(vb & wb)
	}
	return a, b, c
}

//Tanimoto returns the Tanimoto (Jaccard) coefficient between the two
//vectors: the ratio of shared on-bits to total on-bits. Two all-zero
//vectors are identical, so their similarity is 1. Panics if the
//lengths differ.
func Tanimoto(V, W *Vector) float64 {
	lengthsMatch(V, W)
	a, b, c := common(V, W)
	if a+b == 0 {
		return 1.0
	}
	return float64(c) / float64(a+b-c)
}

//Dice returns the Dice (Sorensen) coefficient between the two vectors.
//Two all-zero vectors have similarity 1. Panics if the lengths differ.
func Dice(V, W *Vector) float64 {
	lengthsMatch(V, W)
	a, b, c := common(V, W)
	if a+b == 0 {
		return 1.0
	}
	return 2 * float64(c) / float64(a+b)
}

//Cosine returns the cosine similarity between the two vectors. Two
//all-zero vectors have similarity 1; one empty vector against a
//non-empty one has similarity 0. Panics if the lengths differ.
func Cosine(V, W *Vector) float64 {
	lengthsMatch(V, W)
	a, b, c := common(V, W)
	if a+b == 0 {
		return 1.0
	}
	if a == 0 || b == 0 {
		return 0.0
	}
	return float64(c) / (math.Sqrt(float64(a)) * math.Sqrt(float64(b)))
}
