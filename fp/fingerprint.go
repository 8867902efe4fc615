/*
 * fingerprint.go, part of goProLIF.
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
Package fp aggregates interaction detections over the frames of a
trajectory, or the poses of a docking run, into an interaction
fingerprint: per frame, which (ligand residue, protein residue,
interaction) combinations hold, and through which atoms. The
fingerprint is then flattened into tables, bit vectors and CSV through
its Table method, and survives round trips through Save and Load
without recomputation.
*/
package fp

import (
	"fmt"
	"log"
	"runtime"
	"sync"

	prolif "github.com/rochoa85/ProLIF"
	"github.com/rochoa85/ProLIF/detect"
	v3 "github.com/rochoa85/ProLIF/v3"
)

//Options holds the tunable parameters of a fingerprint run.
type Options struct {
	cutoff float64
	cpus   int
}

//DefaultOptions returns sensible defaults: residue pairs whose closest
//atoms are over 6 Angstrom apart are not examined at all, and
//concurrent runs use all the available cores.
func DefaultOptions() *Options {
	O := new(Options)
	O.cutoff = 6.0
	O.cpus = runtime.NumCPU()
	return O
}

//Cutoff sets the residue-pair prescreen distance in Angstrom, if given,
//and returns the current value. Pairs farther apart than this are
//skipped without running any detector; set it to a negative value to
//disable the prescreen.
func (O *Options) Cutoff(c ...float64) float64 {
	if len(c) > 0 {
		O.cutoff = c[0]
	}
	return O.cutoff
}

//Cpus sets the number of workers used by RunConc, if given, and returns
//the current value.
func (O *Options) Cpus(n ...int) int {
	if len(n) > 0 {
		O.cpus = n[0]
	}
	return O.cpus
}

//PairKey identifies one fingerprint column: an interaction between one
//ligand-side residue and one protein-side residue. It is comparable and
//used as a map key.
type PairKey struct {
	Ligand      prolif.ResID
	Protein     prolif.ResID
	Interaction string
}

func (k PairKey) String() string {
	return fmt.Sprintf("%s:%s:%s", k.Ligand.String(), k.Protein.String(), k.Interaction)
}

//frameData holds the hits of one frame: the atom pair, as topology
//indexes, for each detected interaction. A key absent from the map
//means the interaction was not detected in that frame.
type frameData map[PairKey][2]int

//Fingerprint accumulates interaction detections frame by frame. The
//set of interaction names is fixed when the Fingerprint is created;
//re-registering a name on the detector Set afterwards changes the
//criterion but not the columns.
type Fingerprint struct {
	names   []string
	set     *detect.Set
	o       *Options
	ligIDs  []prolif.ResID
	protIDs []prolif.ResID
	frames  []frameData
}

//New returns an empty Fingerprint over the given detector set. A nil
//set gets the standard detectors, a nil options pointer the defaults.
func New(set *detect.Set, o *Options) (*Fingerprint, error) {
	if set == nil {
		set = detect.DefaultSet()
	}
	if set.Len() == 0 {
		return nil, Error{message: "Can't build a fingerprint without detectors", deco: []string{"New"}}
	}
	if o == nil {
		o = DefaultOptions()
	}
	return &Fingerprint{names: set.Names(), set: set, o: o}, nil
}

//Interactions returns the interaction names of the fingerprint, in
//detector registration order.
func (F *Fingerprint) Interactions() []string {
	ret := make([]string, len(F.names))
	copy(ret, F.names)
	return ret
}

//NFrames returns the number of frames processed so far.
func (F *Fingerprint) NFrames() int {
	return len(F.frames)
}

//LigandResidues and ProteinResidues return the residues seen on each
//side of the fingerprint, in topology order. They are only filled after
//a Run.
func (F *Fingerprint) LigandResidues() []prolif.ResID {
	ret := make([]prolif.ResID, len(F.ligIDs))
	copy(ret, F.ligIDs)
	return ret
}

func (F *Fingerprint) ProteinResidues() []prolif.ResID {
	ret := make([]prolif.ResID, len(F.protIDs))
	copy(ret, F.protIDs)
	return ret
}

//Evaluate runs every detector of the fingerprint on a single residue
//pair and returns the results by interaction name. It does not touch
//the accumulated frames, and does not apply the distance prescreen.
func (F *Fingerprint) Evaluate(lig, prot *prolif.Residue) (map[string]detect.Result, error) {
	if F.set == nil {
		return nil, Error{message: "This fingerprint has no detector set bound, only its stored frames are available", deco: []string{"Evaluate"}}
	}
	ret := make(map[string]detect.Result, len(F.names))
	for _, name := range F.names {
		d, ok := F.set.Get(name)
		if !ok {
			return nil, Error{message: fmt.Sprintf("Interaction '%s' is missing from the detector set", name), deco: []string{"Evaluate"}}
		}
		r, err := d.Detect(lig, prot)
		if err != nil {
			return nil, errDecorate(err, "Evaluate "+name)
		}
		ret[name] = r
	}
	return ret, nil
}

//EvaluateBool is as Evaluate, but reduces each result to its Hit flag.
func (F *Fingerprint) EvaluateBool(lig, prot *prolif.Residue) (map[string]bool, error) {
	full, err := F.Evaluate(lig, prot)
	if err != nil {
		return nil, err
	}
	ret := make(map[string]bool, len(full))
	for k, v := range full {
		ret[k] = v.Hit
	}
	return ret, nil
}

//setSelections records the residues covered by the two atom selections.
//It rejects selections that share a residue, as a residue acting as
//both ligand and protein would interact with itself.
func (F *Fingerprint) setSelections(top *prolif.Topology, ligSel, protSel []int, caller string) error {
	if len(ligSel) == 0 || len(protSel) == 0 {
		return Error{message: "Empty atom selection", deco: []string{caller}}
	}
	ligIDs := top.ResIDsIn(ligSel)
	protIDs := top.ResIDsIn(protSel)
	for _, l := range ligIDs {
		for _, p := range protIDs {
			if l == p {
				return Error{message: fmt.Sprintf("Residue %s is in both selections", l.String()), deco: []string{caller}}
			}
		}
	}
	//frames already accumulated are keyed on the old residue lists, so
	//a different selection can't just take their place
	if len(F.frames) > 0 && (!sameResIDs(ligIDs, F.ligIDs) || !sameResIDs(protIDs, F.protIDs)) {
		return Error{message: "Can't accumulate frames over a different residue selection", deco: []string{caller}}
	}
	F.ligIDs = ligIDs
	F.protIDs = protIDs
	return nil
}

func sameResIDs(a, b []prolif.ResID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

//processFrame detects the interactions of one frame. The returned map
//only holds the hits, with the atoms as topology indexes.
func (F *Fingerprint) processFrame(top *prolif.Topology, coords *v3.Matrix, ligSel, protSel []int) (frameData, error) {
	data := make(frameData)
	for _, lid := range F.ligIDs {
		lig, err := top.SomeResidue(lid, ligSel, coords)
		if err != nil {
			return nil, errDecorate(err, "processFrame")
		}
		for _, pid := range F.protIDs {
			prot, err := top.SomeResidue(pid, protSel, coords)
			if err != nil {
				return nil, errDecorate(err, "processFrame")
			}
			if F.o.cutoff >= 0 && prolif.MinDist(lig.Coords(), prot.Coords()) > F.o.cutoff {
				continue
			}
			results, err := F.Evaluate(lig, prot)
			if err != nil {
				return nil, err
			}
			for _, name := range F.names {
				r := results[name]
				if !r.Hit {
					continue
				}
				key := PairKey{Ligand: lid, Protein: pid, Interaction: name}
				data[key] = [2]int{lig.Atom(r.First).Index, prot.Atom(r.Second).Index}
			}
		}
	}
	return data, nil
}

//Run reads every frame from src and accumulates the interactions
//between the residues of the two atom selections, the first selection
//taking the ligand role. Frames already accumulated are kept, so
//several sources of the same system can be concatenated by calling Run
//repeatedly; a selection covering different residues than the
//accumulated frames is an error.
func (F *Fingerprint) Run(src prolif.FrameSource, top *prolif.Topology, ligSel, protSel []int) error {
	if err := F.setSelections(top, ligSel, protSel, "Run"); err != nil {
		return err
	}
	if !src.Readable() {
		return Error{message: "The frame source given is not readable", deco: []string{"Run"}}
	}
	if src.Len() != top.Len() {
		return Error{message: fmt.Sprintf("The frame source supplies %d atoms but the topology has %d", src.Len(), top.Len()), deco: []string{"Run"}}
	}
	coords := v3.Zeros(top.Len())
	for {
		err := src.Next(coords)
		if err != nil {
			switch err := err.(type) {
			case prolif.LastFrameError:
				return nil
			case prolif.Error:
				return errDecorate(err, "Run")
			default:
				return Error{message: err.Error(), deco: []string{"Run"}}
			}
		}
		data, err := F.processFrame(top, coords, ligSel, protSel)
		if err != nil {
			return err
		}
		F.frames = append(F.frames, data)
	}
}

//RunFrames accumulates the interactions over an explicit slice of
//frames, e.g. docking poses, in the order given.
func (F *Fingerprint) RunFrames(top *prolif.Topology, frames []*v3.Matrix, ligSel, protSel []int) error {
	if err := F.setSelections(top, ligSel, protSel, "RunFrames"); err != nil {
		return err
	}
	for i, coords := range F.checkFrames(top, frames) {
		if coords == nil {
			return Error{message: fmt.Sprintf("Frame %d does not match the topology", i), deco: []string{"RunFrames"}}
		}
		data, err := F.processFrame(top, coords, ligSel, protSel)
		if err != nil {
			return err
		}
		F.frames = append(F.frames, data)
	}
	return nil
}

//checkFrames replaces mismatched frames with nil so the caller can
//report the offending index.
func (F *Fingerprint) checkFrames(top *prolif.Topology, frames []*v3.Matrix) []*v3.Matrix {
	ret := make([]*v3.Matrix, len(frames))
	for i, f := range frames {
		if f != nil && f.NVecs() == top.Len() {
			ret[i] = f
		}
	}
	return ret
}

//concJob is one frame handed to a worker, with its position in the
//sequence.
type concJob struct {
	idx    int
	coords *v3.Matrix
}

type concResult struct {
	idx  int
	data frameData
	err  error
}

//RunConc is as Run, but processes frames concurrently with the number
//of workers set in the options. Frames are still read sequentially from
//the source, and the accumulated result is identical to a sequential
//Run over the same source, whatever the number of workers.
func (F *Fingerprint) RunConc(src prolif.FrameSource, top *prolif.Topology, ligSel, protSel []int) error {
	if err := F.setSelections(top, ligSel, protSel, "RunConc"); err != nil {
		return err
	}
	if !src.Readable() {
		return Error{message: "The frame source given is not readable", deco: []string{"RunConc"}}
	}
	if src.Len() != top.Len() {
		return Error{message: fmt.Sprintf("The frame source supplies %d atoms but the topology has %d", src.Len(), top.Len()), deco: []string{"RunConc"}}
	}
	cpus := F.o.cpus
	if cpus < 1 {
		cpus = 1
	}
	jobs := make(chan concJob, cpus)
	results := make(chan concResult, cpus)
	var wg sync.WaitGroup
	for w := 0; w < cpus; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				data, err := F.processFrame(top, j.coords, ligSel, protSel)
				results <- concResult{idx: j.idx, data: data, err: err}
			}
		}()
	}
	collected := make(map[int]frameData)
	var firsterr error
	done := make(chan bool)
	go func() {
		for r := range results {
			if r.err != nil && firsterr == nil {
				firsterr = r.err
			}
			collected[r.idx] = r.data
		}
		done <- true
	}()
	nframes := 0
	var readerr error
	for {
		coords := v3.Zeros(top.Len()) //each worker keeps its own frame
		err := src.Next(coords)
		if err != nil {
			switch err := err.(type) {
			case prolif.LastFrameError:
			case prolif.Error:
				readerr = errDecorate(err, "RunConc")
			default:
				readerr = Error{message: err.Error(), deco: []string{"RunConc"}}
			}
			break
		}
		jobs <- concJob{idx: nframes, coords: coords}
		nframes++
	}
	close(jobs)
	wg.Wait()
	close(results)
	<-done
	if readerr != nil {
		return readerr
	}
	if firsterr != nil {
		return firsterr
	}
	for i := 0; i < nframes; i++ {
		data, ok := collected[i]
		if !ok {
			//can't happen unless a worker died, but better loud than wrong
			log.Printf("RunConc: frame %d was never processed", i)
			data = make(frameData)
		}
		F.frames = append(F.frames, data)
	}
	return nil
}

//Errors

//errDecorate asserts that err implements prolif.Error and decorates it
//with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(prolif.Error)
	err2.Decorate(caller)
	return err2
}

//Error is the concrete error type of the package.
type Error struct {
	message string
	deco    []string
}

func (err Error) Error() string { return err.message }

//Decorate adds the dec string to the decoration slice of strings of the
//error, and returns the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}
