/*
 * adf.go, part of rdfadf.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

// Package adf computes angle distribution functions at the atoms of a periodic structure:
// histograms of the angles formed at a center atom by pairs of its neighbors, each
// atom subset selected with a label (see package label).
package adf

import (
	"math"

	chem "github.com/rmera/rdfadf"
	"github.com/rmera/rdfadf/histo"
	"github.com/rmera/rdfadf/label"
	"github.com/rmera/rdfadf/pbc"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/spatial/r3"
	"golang.org/x/sync/errgroup"
)

// Curves contains the result of an ADF calculation. All slices have one element per bin.
type Curves struct {
	Theta   []float64 `json:"theta"`        //bin centers, in radians
	Counts  []float64 `json:"counts"`       //raw histogram, not normalized
	Raw     []float64 `json:"adf_raw_norm"` //counts per center atom
	Smooth  []float64 `json:"adf_smooth"`   //Raw, smoothed if requested, else a copy
	Centers int       `json:"center_atoms"`
	Events  int       `json:"triplets"` //number of angles counted
}

// Len returns the number of bins in the curves.
func (C *Curves) Len() int {
	return len(C.Theta)
}

// General computes the ADF with the given labels, cutoff, number of bins, smoothing and
// distance window. If rmax is not given, the window extends to the cutoff.
func General(S *chem.Structure, center, neigh1, neigh2 string, rcut float64, bins int, sigma histo.Smoothing, rmin float64, rmax ...float64) (*Curves, error) {
	o := DefaultOptions()
	o.Labels(center, neigh1, neigh2)
	o.Rcut(rcut)
	o.Bins(bins)
	o.Smoothing(sigma)
	o.RMin(rmin)
	if len(rmax) > 0 {
		o.RMax(rmax[0])
	}
	C, err := ADF(S, o)
	return C, chem.ErrDecorate(err, "adf.General")
}

// ADF computes the angle distribution function for the structure S. For each center atom,
// every unordered pair of entries (a, b), with a before b in the neighbor list of the center,
// is considered, where a must be selected by the first neighbor label and b by the second one,
// and both must be at a distance from the center within [RMin, RMax]. The result thus depends
// on the order of the neighbor labels when they select different atoms.
// The calculation is always done with full periodicity, on a copy of S, which is not modified.
func ADF(S *chem.Structure, options ...*Options) (*Curves, error) {
	o := DefaultOptions()
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	}
	if err := o.Validate(); err != nil {
		return nil, chem.ErrDecorate(err, "adf.ADF")
	}
	if S == nil {
		return nil, chem.NewError(chem.ErrInvalidParameter, "nil structure").Decorated("adf.ADF")
	}
	if err := S.Validate(); err != nil {
		return nil, chem.ErrDecorate(err, "adf.ADF")
	}
	P := S.WithPBC()
	symbols := P.Symbols()
	var sets [3]chem.SymbolSet
	for i, l := range []string{o.center, o.neigh1, o.neigh2} {
		s, err := label.Classify(l, symbols, o.table)
		if err != nil {
			return nil, chem.ErrDecorate(err, "adf.ADF")
		}
		sets[i] = s
	}
	centers := chem.Indexes(P, sets[0].Has)
	if len(centers) == 0 {
		return nil, chem.NewError(chem.ErrNoMatchingAtoms, "no atoms match center label %q", o.center).Decorated("adf.ADF")
	}
	in1 := make([]bool, len(symbols))
	in2 := make([]bool, len(symbols))
	for i, s := range symbols {
		in1[i] = sets[1].Has(s)
		in2[i] = sets[2].Has(s)
	}
	L, err := pbc.NeighborsOf(P, o.rcut)
	if err != nil {
		return nil, chem.ErrDecorate(err, "adf.ADF")
	}
	dividers, err := histo.Uniform(o.bins, 0, math.Pi)
	if err != nil {
		return nil, chem.NewError(chem.ErrInvalidParameter, "bad histogram").Wrap(err).Decorated("adf.ADF")
	}
	w := window{in1: in1, in2: in2, rmin: o.rmin, rmax: o.RMax()}
	h, err := accumulate(P, L, centers, w, dividers, o.cpus)
	if err != nil {
		return nil, chem.ErrDecorate(err, "adf.ADF")
	}
	C := &Curves{
		Theta:   h.Centers(),
		Counts:  h.Copy(),
		Centers: len(centers),
		Events:  h.Total(),
	}
	n := float64(len(centers))
	C.Raw = make([]float64, len(C.Counts))
	for i, v := range C.Counts {
		C.Raw[i] = v / n
	}
	C.Smooth = o.sigma.Apply(nil, C.Raw)

	logger := o.logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	log := logger.WithFields(logrus.Fields{
		"center":       o.center,
		"neigh1":       o.neigh1,
		"neigh2":       o.neigh2,
		"center_atoms": C.Centers,
		"triplets":     C.Events,
		"rcut":         o.rcut,
		"bins":         o.bins,
		"smoothing":    o.sigma.String(),
	})
	log.Debug("adf: histogram computed")
	if rmax := o.RMax(); rmax > o.rcut {
		log.WithField("r_max", rmax).Warn("adf: r_max is larger than the cutoff, neighbors are only searched up to the cutoff")
	}
	if C.Events == 0 {
		log.Warn("adf: no neighbor pairs found in the distance window, the ADF is zero")
	}
	return C, nil
}

// window filters the neighbors of a center.
type window struct {
	in1, in2   []bool //atoms selected by each neighbor label
	rmin, rmax float64
}

// angles appends to dst the angles at the center atom i formed by the pairs of
// its neighbors ns that pass the window, and returns the extended slice.
// vecs and ok are scratch space.
func (w window) angles(dst []float64, S *chem.Structure, i int, ns []pbc.Neighbor, vecs []r3.Vec, ok []bool) []float64 {
	for a, n := range ns {
		vecs[a] = pbc.Separation(S.Coords, S.Cell, i, n)
		d := r3.Norm(vecs[a])
		ok[a] = d >= w.rmin && d <= w.rmax
	}
	for a, na := range ns {
		if !ok[a] || !w.in1[na.Index] {
			continue
		}
		for b := a + 1; b < len(ns); b++ {
			if !ok[b] || !w.in2[ns[b].Index] {
				continue
			}
			dst = append(dst, chem.Angle(vecs[a], vecs[b]))
		}
	}
	return dst
}

// accumulate returns the closed histogram over dividers of all the angles at the given
// centers. The centers are split among cpus goroutines.
func accumulate(S *chem.Structure, L *pbc.List, centers []int, w window, dividers []float64, cpus int) (*histo.Data, error) {
	workers := cpus
	if workers > len(centers) {
		workers = len(centers)
	}
	if workers < 1 {
		workers = 1
	}
	parts := make([]*histo.Data, workers)
	chunk := (len(centers) + workers - 1) / workers
	g := &errgroup.Group{}
	for k := 0; k < workers; k++ {
		k := k
		g.Go(func() error {
			from := k * chunk
			to := from + chunk
			if to > len(centers) {
				to = len(centers)
			}
			if from > to {
				from = to
			}
			var vecs []r3.Vec
			var ok []bool
			angles := make([]float64, 0, 64)
			for _, i := range centers[from:to] {
				ns := L.Neighbors(i)
				if len(ns) > len(vecs) {
					vecs = make([]r3.Vec, len(ns))
					ok = make([]bool, len(ns))
				}
				angles = w.angles(angles, S, i, ns, vecs, ok)
			}
			parts[k] = histo.NewClosedData(dividers, angles, k)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	h := histo.NewClosedData(dividers, nil)
	for _, p := range parts {
		if p != nil {
			h.Add(h, p)
		}
	}
	return h, nil
}
