/*
 * partials.go, part of rdfadf.
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

package rdf

import (
	chem "github.com/rmera/rdfadf"
	"github.com/rmera/rdfadf/histo"
	"github.com/rmera/rdfadf/label"
	"github.com/rmera/rdfadf/pbc"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// Partials returns the partial RDFs of S for every ordered pair of elements present in it.
// Rows of the returned matrix are the center elements and columns the neighbor elements,
// both sorted and accessible through the matrix labels. Each histogram contains the
// distance counts divided by the number of atoms of the row element, i.e. the
// g_raw_norm curve of RDF(S, row, col). Smoothing options are not used.
func Partials(S *chem.Structure, options ...*Options) (*histo.Matrix, error) {
	o := DefaultOptions()
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	}
	if err := o.Validate(); err != nil {
		return nil, chem.ErrDecorate(err, "rdf.Partials")
	}
	if S == nil {
		return nil, chem.NewError(chem.ErrInvalidParameter, "nil structure").Decorated("rdf.Partials")
	}
	if err := S.Validate(); err != nil {
		return nil, chem.ErrDecorate(err, "rdf.Partials")
	}
	P := S.WithPBC()
	elems := chem.DistinctSymbols(P)
	//only to make sure all elements are in the table.
	if _, err := label.Classify(label.All, elems, o.table); err != nil {
		return nil, chem.ErrDecorate(err, "rdf.Partials")
	}
	if len(elems) == 0 {
		return nil, chem.NewError(chem.ErrNoMatchingAtoms, "empty structure").Decorated("rdf.Partials")
	}
	ne := len(elems)
	index := make(map[string]int, ne)
	for i, v := range elems {
		index[v] = i
	}
	of := make([]int, P.Len())
	natoms := make([]int, ne)
	for i := range of {
		of[i] = index[P.Atom(i).Symbol]
		natoms[of[i]]++
	}
	L, err := pbc.NeighborsOf(P, o.rcut)
	if err != nil {
		return nil, chem.ErrDecorate(err, "rdf.Partials")
	}
	dividers, err := histo.Uniform(o.bins, 0, o.rcut)
	if err != nil {
		return nil, chem.NewError(chem.ErrInvalidParameter, "bad histogram").Wrap(err).Decorated("rdf.Partials")
	}
	pools := make([][]float64, ne*ne)
	var pairs int
	for i := 0; i < P.Len(); i++ {
		for _, n := range L.Neighbors(i) {
			r := r3.Norm(pbc.Separation(P.Coords, P.Cell, i, n))
			if r >= o.rcut {
				continue
			}
			k := of[i]*ne + of[n.Index]
			pools[k] = append(pools[k], r)
			pairs++
		}
	}
	M := histo.NewLabeledMatrix(elems, elems, dividers, false)
	for r := 0; r < ne; r++ {
		for c := 0; c < ne; c++ {
			M.NewHisto(r, c, nil, pools[r*ne+c], r*ne+c)
			floats.Scale(1/float64(natoms[r]), M.View(r, c).View())
		}
	}
	logger := o.logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	logger.WithFields(logrus.Fields{
		"elements": elems,
		"pairs":    pairs,
		"rcut":     o.rcut,
		"bins":     o.bins,
	}).Debug("rdf: partial histograms computed")
	return M, nil
}
