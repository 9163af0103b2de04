/*
 * rdf.go, part of rdfadf.
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

// Package rdf computes radial distribution functions between subsets of the atoms
// of a periodic structure. The subsets are given as labels (see package label).
package rdf

import (
	"math"

	chem "github.com/rmera/rdfadf"
	"github.com/rmera/rdfadf/histo"
	"github.com/rmera/rdfadf/label"
	"github.com/rmera/rdfadf/pbc"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
	"golang.org/x/sync/errgroup"
)

// ShellEps regularizes the shell normalization of the first bin.
const ShellEps = 1e-8

// Curves contains the result of an RDF calculation. All slices have one element per bin.
type Curves struct {
	R           []float64 `json:"r"`                  //bin centers
	Counts      []float64 `json:"counts"`             //raw histogram, not normalized
	Raw         []float64 `json:"g_raw_norm"`         //counts per center atom
	Smooth      []float64 `json:"g_smooth"`           //Raw, smoothed
	RawShell    []float64 `json:"g_raw_shellnorm"`    //Raw over 4π(r+ShellEps)²
	SmoothShell []float64 `json:"g_smooth_shellnorm"` //Smooth over 4π(r+ShellEps)²
	CumRaw      []float64 `json:"cumulative_raw"`     //running sum of Raw
	CumSmooth   []float64 `json:"cumulative_smooth"`  //running sum of Smooth
	Centers     int       `json:"center_atoms"`
	Events      int       `json:"pairs"` //number of distances counted
}

// Len returns the number of bins in the curves.
func (C *Curves) Len() int {
	return len(C.R)
}

// General computes the RDF between the atoms selected by center and those selected
// by neighbor, with the given cutoff, number of bins and smoothing sigma (in bin
// units), and the default values for everything else.
func General(S *chem.Structure, center, neighbor string, rcut float64, bins int, sigma float64) (*Curves, error) {
	o := DefaultOptions()
	o.Rcut(rcut)
	o.Bins(bins)
	o.Smoothing(histo.Sigma(sigma))
	C, err := RDF(S, center, neighbor, o)
	return C, chem.ErrDecorate(err, "rdf.General")
}

// RDF computes the radial distribution function of the atoms selected by the neighbor label
// around those selected by the center label. Only distances strictly smaller than the cutoff
// are counted, and all the periodic images within the cutoff are considered.
// The calculation is always done with full periodicity, on a copy of S, which is not
// modified.
func RDF(S *chem.Structure, center, neighbor string, options ...*Options) (*Curves, error) {
	o := DefaultOptions()
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	}
	if err := o.Validate(); err != nil {
		return nil, chem.ErrDecorate(err, "rdf.RDF")
	}
	if S == nil {
		return nil, chem.NewError(chem.ErrInvalidParameter, "nil structure").Decorated("rdf.RDF")
	}
	if err := S.Validate(); err != nil {
		return nil, chem.ErrDecorate(err, "rdf.RDF")
	}
	P := S.WithPBC()
	symbols := P.Symbols()
	cset, err := label.Classify(center, symbols, o.table)
	if err != nil {
		return nil, chem.ErrDecorate(err, "rdf.RDF")
	}
	nset, err := label.Classify(neighbor, symbols, o.table)
	if err != nil {
		return nil, chem.ErrDecorate(err, "rdf.RDF")
	}
	centers := chem.Indexes(P, cset.Has)
	if len(centers) == 0 {
		return nil, chem.NewError(chem.ErrNoMatchingAtoms, "no atoms match center label %q", center).Decorated("rdf.RDF")
	}
	isneigh := make([]bool, len(symbols))
	for i, s := range symbols {
		isneigh[i] = nset.Has(s)
	}
	L, err := pbc.NeighborsOf(P, o.rcut)
	if err != nil {
		return nil, chem.ErrDecorate(err, "rdf.RDF")
	}
	dividers, err := histo.Uniform(o.bins, 0, o.rcut)
	if err != nil {
		return nil, chem.NewError(chem.ErrInvalidParameter, "bad histogram").Wrap(err).Decorated("rdf.RDF")
	}
	h, err := accumulate(P, L, centers, isneigh, dividers, o)
	if err != nil {
		return nil, chem.ErrDecorate(err, "rdf.RDF")
	}
	C := curves(h, len(centers), o.sigma)
	logger := o.logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	log := logger.WithFields(logrus.Fields{
		"center":       center,
		"neighbor":     neighbor,
		"center_atoms": C.Centers,
		"pairs":        C.Events,
		"rcut":         o.rcut,
		"bins":         o.bins,
	})
	log.Debug("rdf: histogram computed")
	if C.Events == 0 {
		log.Warn("rdf: no neighbors found within the cutoff, the RDF is zero")
	}
	return C, nil
}

// accumulate returns the histogram of the distances, smaller than the cutoff, between
// each atom in centers and its neighbors in L marked in isneigh. The centers are
// split among o.Cpus() goroutines, each filling its own histogram.
func accumulate(S *chem.Structure, L *pbc.List, centers []int, isneigh []bool, dividers []float64, o *Options) (*histo.Data, error) {
	workers := o.cpus
	if workers > len(centers) {
		workers = len(centers)
	}
	if workers < 1 {
		workers = 1
	}
	parts := make([]*histo.Data, workers)
	chunk := (len(centers) + workers - 1) / workers
	g := &errgroup.Group{}
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			from := w * chunk
			to := from + chunk
			if to > len(centers) {
				to = len(centers)
			}
			if from > to {
				from = to
			}
			dists := make([]float64, 0, 64)
			for _, i := range centers[from:to] {
				for _, n := range L.Neighbors(i) {
					if !isneigh[n.Index] {
						continue
					}
					r := r3.Norm(pbc.Separation(S.Coords, S.Cell, i, n))
					if r < o.rcut {
						dists = append(dists, r)
					}
				}
			}
			parts[w] = histo.NewData(dividers, dists, w)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	h := histo.NewData(dividers, nil)
	for _, p := range parts {
		if p != nil {
			h.Add(h, p)
		}
	}
	return h, nil
}

// curves builds the normalized, smoothed and cumulative curves from the histogram h.
func curves(h *histo.Data, ncenters int, s histo.Smoothing) *Curves {
	C := &Curves{
		R:       h.Centers(),
		Counts:  h.Copy(),
		Centers: ncenters,
		Events:  h.Total(),
	}
	n := float64(ncenters)
	C.Raw = make([]float64, len(C.Counts))
	for i, v := range C.Counts {
		C.Raw[i] = v / n
	}
	C.Smooth = s.Apply(nil, C.Raw)
	C.RawShell = make([]float64, len(C.R))
	C.SmoothShell = make([]float64, len(C.R))
	for i, r := range C.R {
		d := ShellArea(r)
		C.RawShell[i] = C.Raw[i] / d
		C.SmoothShell[i] = C.Smooth[i] / d
	}
	C.CumRaw = floats.CumSum(make([]float64, len(C.Raw)), C.Raw)
	C.CumSmooth = floats.CumSum(make([]float64, len(C.Smooth)), C.Smooth)
	return C
}

// ShellArea returns 4π(r+ShellEps)², the factor used in the shell normalization.
func ShellArea(r float64) float64 {
	x := r + ShellEps
	return 4 * math.Pi * (x * x)
}
