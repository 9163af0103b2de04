/*
 * structure.go, part of rdfadf.
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

package chem

import (
	"math"

	v3 "github.com/rmera/rdfadf/v3"
)

// Structure is an atomic configuration in a cell. Each row of Cell is a lattice
// vector, each row of Coords the cartesian position of the atom with the same index
// in the Topology.
type Structure struct {
	*Topology
	Coords *v3.Matrix
	Cell   *v3.Matrix
	pbc    [3]bool
}

// NewStructure builds a Structure from a topology, coordinates and a cell. Periodicity
// is set per axis from pbc; if pbc is not given the structure is periodic on all axes.
// The matrices are not copied.
func NewStructure(top *Topology, coords, cell *v3.Matrix, pbc ...bool) (*Structure, error) {
	S := &Structure{Topology: top, Coords: coords, Cell: cell, pbc: [3]bool{true, true, true}}
	if len(pbc) > 0 {
		S.SetPBC(pbc...)
	}
	if err := S.Validate(); err != nil {
		return nil, ErrDecorate(err, "NewStructure")
	}
	return S, nil
}

// NewStructureFromSymbols builds a fully periodic Structure from a list of symbols,
// a flat slice with 3 coordinates per atom, and the 9 components of the cell,
// given row by row.
func NewStructureFromSymbols(symbols []string, coords []float64, cell [9]float64) (*Structure, error) {
	c, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, NewError(ErrInvalidParameter, "bad coordinates").Wrap(err).Decorated("NewStructureFromSymbols")
	}
	cellslice := make([]float64, 9)
	copy(cellslice, cell[:])
	l, _ := v3.NewMatrix(cellslice)
	return NewStructure(TopologyFromSymbols(symbols), c, l)
}

// Positions returns the coordinates of the structure.
func (S *Structure) Positions() *v3.Matrix { return S.Coords }

// Lattice returns the cell of the structure.
func (S *Structure) Lattice() *v3.Matrix { return S.Cell }

// PBC returns the periodicity of each cell axis.
func (S *Structure) PBC() [3]bool { return S.pbc }

// SetPBC sets the periodicity of the cell axes. A single value is applied to
// all three axes, three values are applied one per axis. Other lengths are ignored.
func (S *Structure) SetPBC(pbc ...bool) {
	switch len(pbc) {
	case 1:
		S.pbc = [3]bool{pbc[0], pbc[0], pbc[0]}
	case 3:
		S.pbc = [3]bool{pbc[0], pbc[1], pbc[2]}
	}
}

// WithPBC returns a copy of the structure, periodic on all three axes.
// The receiver is not modified, and the copy shares no memory with it.
func (S *Structure) WithPBC() *Structure {
	return &Structure{
		Topology: S.Topology.CopyAtoms(),
		Coords:   S.Coords.Copy3(),
		Cell:     S.Cell.Copy3(),
		pbc:      [3]bool{true, true, true},
	}
}

// Validate checks that the structure is consistent: as many positions as atoms and
// a 3x3 non-singular cell with finite components.
func (S *Structure) Validate() error {
	if S.Topology == nil || S.Coords == nil || S.Cell == nil {
		return NewError(ErrInvalidParameter, "structure with nil topology, coordinates or cell").Decorated("Structure.Validate")
	}
	if S.Coords.NVecs() != S.Len() {
		return NewError(ErrInvalidParameter, "%d atoms but %d positions", S.Len(), S.Coords.NVecs()).Decorated("Structure.Validate")
	}
	if S.Cell.NVecs() != 3 {
		return NewError(ErrInvalidParameter, "cell must have 3 lattice vectors, got %d", S.Cell.NVecs()).Decorated("Structure.Validate")
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if v := S.Cell.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return NewError(ErrInvalidParameter, "non-finite cell component (%d,%d)", i, j).Decorated("Structure.Validate")
			}
		}
	}
	if math.Abs(v3.Det(S.Cell)) <= appzero {
		return NewError(ErrInvalidParameter, "singular cell").Decorated("Structure.Validate")
	}
	return nil
}

// Volume returns the volume of the cell.
func (S *Structure) Volume() float64 {
	return math.Abs(v3.Det(S.Cell))
}
