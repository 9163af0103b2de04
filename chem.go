/*
 * chem.go, part of rdfadf.
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
	"fmt"
	"sort"
)

// Atom contains the per-atom information of a structure, except for the coordinates,
// which will be in a matrix.
type Atom struct {
	Name   string
	ID     int
	Symbol string
}

// Copy returns a copy of the Atom object.
func (N *Atom) Copy() *Atom {
	if N == nil {
		panic("Attempted to copy a nil atom")
	}
	A := new(Atom)
	*A = *N
	return A
}

/*****Topology type***/

// Topology contains the atoms of a structure, i.e. everything except for the coordinates
// and the cell.
type Topology struct {
	Atoms []*Atom
}

// NewTopology returns a topology with the atoms in ats, if given. The atoms are not copied.
func NewTopology(ats ...[]*Atom) *Topology {
	top := new(Topology)
	if len(ats) > 0 && ats[0] != nil {
		top.Atoms = ats[0]
	} else {
		top.Atoms = make([]*Atom, 0, 10)
	}
	return top
}

// TopologyFromSymbols returns a topology with one atom per symbol,
// named after its symbol and numbered from 1.
func TopologyFromSymbols(symbols []string) *Topology {
	ats := make([]*Atom, len(symbols))
	for i, v := range symbols {
		ats[i] = &Atom{Name: v, ID: i + 1, Symbol: v}
	}
	return NewTopology(ats)
}

// Atom returns the Atom corresponding to the index i
// of the Atom slice in the Topology. Panics if
// out of range.
func (T *Topology) Atom(i int) *Atom {
	if i >= T.Len() || i < 0 {
		panic(fmt.Sprintf("Topology: Requested Atom %d out of bounds", i))
	}
	return T.Atoms[i]
}

// CopyAtoms returns a Topology with copies of the atoms of the receiver.
func (T *Topology) CopyAtoms() *Topology {
	ats := make([]*Atom, T.Len())
	for key, val := range T.Atoms {
		ats[key] = val.Copy()
	}
	return NewTopology(ats)
}

// Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.Atoms)
}

// Symbols returns the chemical symbols of all atoms, in order.
func (T *Topology) Symbols() []string {
	return Symbols(T)
}

// Symbols returns the chemical symbols of all atoms in mol, in order.
func Symbols(mol Atomer) []string {
	ret := make([]string, mol.Len())
	for i := range ret {
		ret[i] = mol.Atom(i).Symbol
	}
	return ret
}

// DistinctSymbols returns the symbols present in mol, each once, sorted.
func DistinctSymbols(mol Atomer) []string {
	seen := make(map[string]bool)
	ret := make([]string, 0, 4)
	for i := 0; i < mol.Len(); i++ {
		s := mol.Atom(i).Symbol
		if !seen[s] {
			seen[s] = true
			ret = append(ret, s)
		}
	}
	sort.Strings(ret)
	return ret
}

// Indexes returns the indexes of the atoms in mol whose symbol satisfies f.
func Indexes(mol Atomer, f func(symbol string) bool) []int {
	ret := make([]int, 0, mol.Len()/2+1)
	for i := 0; i < mol.Len(); i++ {
		if f(mol.Atom(i).Symbol) {
			ret = append(ret, i)
		}
	}
	return ret
}
