/*
 * serialize.go, part of goProLIF.
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

package fp

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/klauspost/compress/zstd"
	prolif "github.com/rochoa85/ProLIF"
	"github.com/rochoa85/ProLIF/detect"
)

//serialVersion guards the on-disk layout. Bump it on incompatible
//changes to the serial types below.
const serialVersion = 1

//serialResID stores the three fields of a residue identifier
//separately. The joined string form is ambiguous for names that end in
//a digit, so it is never what goes to disk.
type serialResID struct {
	Name   string `json:"name"`
	Number int    `json:"number"`
	Chain  string `json:"chain,omitempty"`
}

func toSerialResID(id prolif.ResID) serialResID {
	return serialResID{Name: id.Name, Number: id.Number, Chain: id.Chain}
}

func (s serialResID) resID() prolif.ResID {
	return prolif.ResID{Name: s.Name, Number: s.Number, Chain: s.Chain}
}

//serialHit is one detected interaction of one frame.
type serialHit struct {
	Ligand      serialResID `json:"lig"`
	Protein     serialResID `json:"prot"`
	Interaction string      `json:"int"`
	Atoms       [2]int      `json:"atoms"`
}

type serialFP struct {
	Version      int           `json:"version"`
	Interactions []string      `json:"interactions"`
	Cutoff       float64       `json:"cutoff"`
	Ligands      []serialResID `json:"ligands"`
	Proteins     []serialResID `json:"proteins"`
	Frames       [][]serialHit `json:"frames"`
}

func toSerialResIDs(ids []prolif.ResID) []serialResID {
	ret := make([]serialResID, len(ids))
	for i, id := range ids {
		ret[i] = toSerialResID(id)
	}
	return ret
}

func fromSerialResIDs(ss []serialResID) []prolif.ResID {
	ret := make([]prolif.ResID, len(ss))
	for i, s := range ss {
		ret[i] = s.resID()
	}
	return ret
}

func serialResIDLess(a, b serialResID) bool {
	if a.Chain != b.Chain {
		return a.Chain < b.Chain
	}
	if a.Number != b.Number {
		return a.Number < b.Number
	}
	return a.Name < b.Name
}

//Save writes the fingerprint, zstd-compressed JSON, to w. Everything
//needed to rebuild tables is included, so a loaded fingerprint serves
//them without recomputing any geometry. The detector set itself is not
//saved; only the interaction names are.
func (F *Fingerprint) Save(w io.Writer) error {
	s := serialFP{
		Version:      serialVersion,
		Interactions: F.Interactions(),
		Cutoff:       F.o.Cutoff(),
		Ligands:      toSerialResIDs(F.ligIDs),
		Proteins:     toSerialResIDs(F.protIDs),
		Frames:       make([][]serialHit, len(F.frames)),
	}
	for i, frame := range F.frames {
		hits := make([]serialHit, 0, len(frame))
		for k, atoms := range frame {
			hits = append(hits, serialHit{Ligand: toSerialResID(k.Ligand), Protein: toSerialResID(k.Protein), Interaction: k.Interaction, Atoms: atoms})
		}
		//map iteration order is random, so sort for reproducible files
		sort.Slice(hits, func(a, b int) bool {
			if hits[a].Ligand != hits[b].Ligand {
				return serialResIDLess(hits[a].Ligand, hits[b].Ligand)
			}
			if hits[a].Protein != hits[b].Protein {
				return serialResIDLess(hits[a].Protein, hits[b].Protein)
			}
			return hits[a].Interaction < hits[b].Interaction
		})
		s.Frames[i] = hits
	}
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return Error{message: err.Error(), deco: []string{"Save"}}
	}
	if err := json.NewEncoder(zw).Encode(&s); err != nil {
		zw.Close()
		return Error{message: err.Error(), deco: []string{"Save"}}
	}
	if err := zw.Close(); err != nil {
		return Error{message: err.Error(), deco: []string{"Save"}}
	}
	return nil
}

//Load reads a fingerprint saved by Save. The loaded fingerprint serves
//tables, frequencies and bit vectors without recomputation. If a
//detector set is given, it is bound to the loaded fingerprint so Run
//and Evaluate work again; the set must contain every interaction name
//of the file. Without a set, only the stored frames are available.
func Load(r io.Reader, set ...*detect.Set) (*Fingerprint, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, Error{message: err.Error(), deco: []string{"Load"}}
	}
	defer zr.Close()
	var s serialFP
	if err := json.NewDecoder(zr).Decode(&s); err != nil {
		return nil, Error{message: err.Error(), deco: []string{"Load"}}
	}
	if s.Version != serialVersion {
		return nil, Error{message: fmt.Sprintf("Can't read fingerprint files of version %d, only %d", s.Version, serialVersion), deco: []string{"Load"}}
	}
	F := &Fingerprint{names: s.Interactions, o: DefaultOptions()}
	F.o.Cutoff(s.Cutoff)
	F.ligIDs = fromSerialResIDs(s.Ligands)
	F.protIDs = fromSerialResIDs(s.Proteins)
	F.frames = make([]frameData, len(s.Frames))
	for i, hits := range s.Frames {
		frame := make(frameData, len(hits))
		for _, h := range hits {
			frame[PairKey{Ligand: h.Ligand.resID(), Protein: h.Protein.resID(), Interaction: h.Interaction}] = h.Atoms
		}
		F.frames[i] = frame
	}
	if len(set) > 0 && set[0] != nil {
		for _, name := range F.names {
			if _, ok := set[0].Get(name); !ok {
				return nil, Error{message: fmt.Sprintf("The detector set given lacks the interaction '%s' used by the file", name), deco: []string{"Load"}}
			}
		}
		F.set = set[0]
	}
	return F, nil
}
