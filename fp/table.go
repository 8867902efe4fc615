/*
 * table.go, part of goProLIF.
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
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	prolif "github.com/rochoa85/ProLIF"
	"github.com/rochoa85/ProLIF/bv"
)

//Table is a fingerprint flattened to a frames-by-columns boolean
//matrix. Rows are frames, in processing order; columns are (ligand
//residue, protein residue, interaction) combinations, in a fixed
//deterministic order. Atoms, when present, holds the interacting atom
//pair, as topology indexes, for every true cell, and {-1, -1}
//elsewhere.
type Table struct {
	Columns []PairKey
	Rows    [][]bool
	Atoms   [][][2]int //nil unless built by TableWithAtoms
}

//resIDLess orders residue identifiers by chain, then number, then name.
func resIDLess(a, b prolif.ResID) bool {
	if a.Chain != b.Chain {
		return a.Chain < b.Chain
	}
	if a.Number != b.Number {
		return a.Number < b.Number
	}
	return a.Name < b.Name
}

//columnSorter orders columns by ligand residue, then protein residue,
//then interaction, the latter in detector registration order so the
//columns of one residue pair stay grouped the way the detectors were
//registered.
func (F *Fingerprint) columnSorter(cols []PairKey) func(i, j int) bool {
	rank := make(map[string]int, len(F.names))
	for i, n := range F.names {
		rank[n] = i
	}
	return func(i, j int) bool {
		a, b := cols[i], cols[j]
		if a.Ligand != b.Ligand {
			return resIDLess(a.Ligand, b.Ligand)
		}
		if a.Protein != b.Protein {
			return resIDLess(a.Protein, b.Protein)
		}
		return rank[a.Interaction] < rank[b.Interaction]
	}
}

//columns builds the column list. With keepEmpty, every combination of
//seen ligand residue, seen protein residue and interaction name gets a
//column; otherwise only combinations detected in at least one frame do.
func (F *Fingerprint) columns(keepEmpty bool) []PairKey {
	var cols []PairKey
	if keepEmpty {
		cols = make([]PairKey, 0, len(F.ligIDs)*len(F.protIDs)*len(F.names))
		for _, l := range F.ligIDs {
			for _, p := range F.protIDs {
				for _, n := range F.names {
					cols = append(cols, PairKey{Ligand: l, Protein: p, Interaction: n})
				}
			}
		}
	} else {
		seen := make(map[PairKey]bool)
		for _, frame := range F.frames {
			for k := range frame {
				if !seen[k] {
					seen[k] = true
					cols = append(cols, k)
				}
			}
		}
	}
	sort.Slice(cols, F.columnSorter(cols))
	return cols
}

//Table flattens the accumulated frames into a boolean table. By
//default, columns that are false in every frame are dropped; pass true
//to keep them.
func (F *Fingerprint) Table(keepEmpty ...bool) (*Table, error) {
	return F.table(len(keepEmpty) > 0 && keepEmpty[0], false)
}

//TableWithAtoms is as Table, but the returned table also carries the
//interacting atom pair behind every true cell.
func (F *Fingerprint) TableWithAtoms(keepEmpty ...bool) (*Table, error) {
	return F.table(len(keepEmpty) > 0 && keepEmpty[0], true)
}

func (F *Fingerprint) table(keepEmpty, withAtoms bool) (*Table, error) {
	if len(F.frames) == 0 {
		return nil, Error{message: "The fingerprint has no frames, run it over a frame source first", deco: []string{"Table"}}
	}
	T := &Table{Columns: F.columns(keepEmpty)}
	T.Rows = make([][]bool, len(F.frames))
	if withAtoms {
		T.Atoms = make([][][2]int, len(F.frames))
	}
	for i, frame := range F.frames {
		row := make([]bool, len(T.Columns))
		var atoms [][2]int
		if withAtoms {
			atoms = make([][2]int, len(T.Columns))
		}
		for j, col := range T.Columns {
			pair, ok := frame[col]
			row[j] = ok
			if withAtoms {
				if ok {
					atoms[j] = pair
				} else {
					atoms[j] = [2]int{-1, -1}
				}
			}
		}
		T.Rows[i] = row
		if withAtoms {
			T.Atoms[i] = atoms
		}
	}
	return T, nil
}

//NFrames returns the number of rows of the table.
func (T *Table) NFrames() int {
	return len(T.Rows)
}

//EqualColumns returns whether the two tables are over the same column
//universe, i.e. whether their rows are comparable.
func (T *Table) EqualColumns(O *Table) bool {
	if len(T.Columns) != len(O.Columns) {
		return false
	}
	for i, c := range T.Columns {
		if c != O.Columns[i] {
			return false
		}
	}
	return true
}

//Frequencies returns, per column, the fraction of frames in which the
//interaction was detected.
func (T *Table) Frequencies() map[PairKey]float64 {
	ret := make(map[PairKey]float64, len(T.Columns))
	if len(T.Rows) == 0 {
		return ret
	}
	for j, col := range T.Columns {
		on := 0
		for _, row := range T.Rows {
			if row[j] {
				on++
			}
		}
		ret[col] = float64(on) / float64(len(T.Rows))
	}
	return ret
}

//GroupPairs collapses the interaction axis of the table: it returns the
//distinct (ligand residue, protein residue) pairs, in column order, and
//a frames-by-pairs matrix that is true wherever any interaction of the
//pair is, i.e. the OR of the pair's columns.
func (T *Table) GroupPairs() ([][2]prolif.ResID, [][]bool) {
	pairs := make([][2]prolif.ResID, 0, len(T.Columns))
	where := make(map[[2]prolif.ResID]int)
	cols := make([]int, len(T.Columns)) //column -> pair position
	for j, col := range T.Columns {
		k := [2]prolif.ResID{col.Ligand, col.Protein}
		p, ok := where[k]
		if !ok {
			p = len(pairs)
			where[k] = p
			pairs = append(pairs, k)
		}
		cols[j] = p
	}
	rows := make([][]bool, len(T.Rows))
	for i, row := range T.Rows {
		grouped := make([]bool, len(pairs))
		for j, on := range row {
			if on {
				grouped[cols[j]] = true
			}
		}
		rows[i] = grouped
	}
	return pairs, rows
}

//BitVectors returns one bit vector per frame, over the columns of the
//table. Vectors from tables with equal columns are comparable with the
//bv similarity coefficients.
func (T *Table) BitVectors() []*bv.Vector {
	ret := make([]*bv.Vector, len(T.Rows))
	for i, row := range T.Rows {
		v := bv.New(len(T.Columns))
		for j, on := range row {
			if on {
				v.Set(j, true)
			}
		}
		ret[i] = v
	}
	return ret
}

//Tanimoto returns the Tanimoto similarity between one frame of T and
//one frame of O. It returns an error, rather than a misleading number,
//when the two tables are over different column universes.
func (T *Table) Tanimoto(O *Table, frame, oframe int) (float64, error) {
	if !T.EqualColumns(O) {
		return 0, Error{message: "Can't compare fingerprints over different column universes", deco: []string{"Tanimoto"}}
	}
	if frame < 0 || frame >= len(T.Rows) || oframe < 0 || oframe >= len(O.Rows) {
		return 0, Error{message: fmt.Sprintf("Frame out of range: %d and %d requested, %d and %d available", frame, oframe, len(T.Rows), len(O.Rows)), deco: []string{"Tanimoto"}}
	}
	vs := T.BitVectors()
	os := O.BitVectors()
	return bv.Tanimoto(vs[frame], os[oframe]), nil
}

//CSV writes the table in CSV form: a header with one
//ligand:protein:interaction label per column, then one row per frame
//with the frame number first and cells as 0 or 1.
func (T *Table) CSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := make([]string, 0, len(T.Columns)+1)
	header = append(header, "Frame")
	for _, col := range T.Columns {
		header = append(header, col.String())
	}
	if err := cw.Write(header); err != nil {
		return Error{message: err.Error(), deco: []string{"CSV"}}
	}
	record := make([]string, len(T.Columns)+1)
	for i, row := range T.Rows {
		record[0] = strconv.Itoa(i)
		for j, on := range row {
			if on {
				record[j+1] = "1"
			} else {
				record[j+1] = "0"
			}
		}
		if err := cw.Write(record); err != nil {
			return Error{message: err.Error(), deco: []string{"CSV"}}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return Error{message: err.Error(), deco: []string{"CSV"}}
	}
	return nil
}
