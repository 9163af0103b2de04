/*
 * atomicdata.go, part of rdfadf.
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

import "sort"

// Element holds the periodic-table classification of a chemical element.
// Block is one of "s", "p", "d", "f". Lanthanides and actinides (except Lu and Lr,
// which are d-block) are assigned to the f block and to group 3.
type Element struct {
	Symbol string
	Z      int
	Block  string
	Group  int
	Period int
}

// PeriodicTable maps element symbols to their classification.
// It is a read-only lookup once built.
type PeriodicTable map[string]Element

// NewPeriodicTable builds a table from the given elements. Later elements override
// earlier ones with the same symbol.
func NewPeriodicTable(elements ...Element) PeriodicTable {
	ret := make(PeriodicTable, len(elements))
	for _, v := range elements {
		ret[v.Symbol] = v
	}
	return ret
}

// Lookup returns the element with the given symbol. The returned error
// is of kind ErrUnknownSymbol if the symbol is not in the table.
func (P PeriodicTable) Lookup(symbol string) (Element, error) {
	e, ok := P[symbol]
	if !ok {
		return Element{}, NewError(ErrUnknownSymbol, "symbol %q not in the periodic table", symbol).Decorated("PeriodicTable.Lookup")
	}
	return e, nil
}

// Has returns true if the symbol is present in the table.
func (P PeriodicTable) Has(symbol string) bool {
	_, ok := P[symbol]
	return ok
}

// Symbols returns the symbols in the table sorted by atomic number.
func (P PeriodicTable) Symbols() []string {
	els := make([]Element, 0, len(P))
	for _, v := range P {
		els = append(els, v)
	}
	sort.Slice(els, func(i, j int) bool { return els[i].Z < els[j].Z })
	ret := make([]string, len(els))
	for i, v := range els {
		ret[i] = v.Symbol
	}
	return ret
}

var defaultTable = NewPeriodicTable(elements...)

// DefaultTable returns the built-in periodic table, covering Z=1 to Z=118.
// The returned map is shared and must not be modified.
func DefaultTable() PeriodicTable {
	return defaultTable
}

var elements = []Element{
	{Symbol: "H", Z: 1, Block: "s", Group: 1, Period: 1},
	{Symbol: "He", Z: 2, Block: "s", Group: 18, Period: 1},
	{Symbol: "Li", Z: 3, Block: "s", Group: 1, Period: 2},
	{Symbol: "Be", Z: 4, Block: "s", Group: 2, Period: 2},
	{Symbol: "B", Z: 5, Block: "p", Group: 13, Period: 2},
	{Symbol: "C", Z: 6, Block: "p", Group: 14, Period: 2},
	{Symbol: "N", Z: 7, Block: "p", Group: 15, Period: 2},
	{Symbol: "O", Z: 8, Block: "p", Group: 16, Period: 2},
	{Symbol: "F", Z: 9, Block: "p", Group: 17, Period: 2},
	{Symbol: "Ne", Z: 10, Block: "p", Group: 18, Period: 2},
	{Symbol: "Na", Z: 11, Block: "s", Group: 1, Period: 3},
	{Symbol: "Mg", Z: 12, Block: "s", Group: 2, Period: 3},
	{Symbol: "Al", Z: 13, Block: "p", Group: 13, Period: 3},
	{Symbol: "Si", Z: 14, Block: "p", Group: 14, Period: 3},
	{Symbol: "P", Z: 15, Block: "p", Group: 15, Period: 3},
	{Symbol: "S", Z: 16, Block: "p", Group: 16, Period: 3},
	{Symbol: "Cl", Z: 17, Block: "p", Group: 17, Period: 3},
	{Symbol: "Ar", Z: 18, Block: "p", Group: 18, Period: 3},
	{Symbol: "K", Z: 19, Block: "s", Group: 1, Period: 4},
	{Symbol: "Ca", Z: 20, Block: "s", Group: 2, Period: 4},
	{Symbol: "Sc", Z: 21, Block: "d", Group: 3, Period: 4},
	{Symbol: "Ti", Z: 22, Block: "d", Group: 4, Period: 4},
	{Symbol: "V", Z: 23, Block: "d", Group: 5, Period: 4},
	{Symbol: "Cr", Z: 24, Block: "d", Group: 6, Period: 4},
	{Symbol: "Mn", Z: 25, Block: "d", Group: 7, Period: 4},
	{Symbol: "Fe", Z: 26, Block: "d", Group: 8, Period: 4},
	{Symbol: "Co", Z: 27, Block: "d", Group: 9, Period: 4},
	{Symbol: "Ni", Z: 28, Block: "d", Group: 10, Period: 4},
	{Symbol: "Cu", Z: 29, Block: "d", Group: 11, Period: 4},
	{Symbol: "Zn", Z: 30, Block: "d", Group: 12, Period: 4},
	{Symbol: "Ga", Z: 31, Block: "p", Group: 13, Period: 4},
	{Symbol: "Ge", Z: 32, Block: "p", Group: 14, Period: 4},
	{Symbol: "As", Z: 33, Block: "p", Group: 15, Period: 4},
	{Symbol: "Se", Z: 34, Block: "p", Group: 16, Period: 4},
	{Symbol: "Br", Z: 35, Block: "p", Group: 17, Period: 4},
	{Symbol: "Kr", Z: 36, Block: "p", Group: 18, Period: 4},
	{Symbol: "Rb", Z: 37, Block: "s", Group: 1, Period: 5},
	{Symbol: "Sr", Z: 38, Block: "s", Group: 2, Period: 5},
	{Symbol: "Y", Z: 39, Block: "d", Group: 3, Period: 5},
	{Symbol: "Zr", Z: 40, Block: "d", Group: 4, Period: 5},
	{Symbol: "Nb", Z: 41, Block: "d", Group: 5, Period: 5},
	{Symbol: "Mo", Z: 42, Block: "d", Group: 6, Period: 5},
	{Symbol: "Tc", Z: 43, Block: "d", Group: 7, Period: 5},
	{Symbol: "Ru", Z: 44, Block: "d", Group: 8, Period: 5},
	{Symbol: "Rh", Z: 45, Block: "d", Group: 9, Period: 5},
	{Symbol: "Pd", Z: 46, Block: "d", Group: 10, Period: 5},
	{Symbol: "Ag", Z: 47, Block: "d", Group: 11, Period: 5},
	{Symbol: "Cd", Z: 48, Block: "d", Group: 12, Period: 5},
	{Symbol: "In", Z: 49, Block: "p", Group: 13, Period: 5},
	{Symbol: "Sn", Z: 50, Block: "p", Group: 14, Period: 5},
	{Symbol: "Sb", Z: 51, Block: "p", Group: 15, Period: 5},
	{Symbol: "Te", Z: 52, Block: "p", Group: 16, Period: 5},
	{Symbol: "I", Z: 53, Block: "p", Group: 17, Period: 5},
	{Symbol: "Xe", Z: 54, Block: "p", Group: 18, Period: 5},
	{Symbol: "Cs", Z: 55, Block: "s", Group: 1, Period: 6},
	{Symbol: "Ba", Z: 56, Block: "s", Group: 2, Period: 6},
	{Symbol: "La", Z: 57, Block: "f", Group: 3, Period: 6},
	{Symbol: "Ce", Z: 58, Block: "f", Group: 3, Period: 6},
	{Symbol: "Pr", Z: 59, Block: "f", Group: 3, Period: 6},
	{Symbol: "Nd", Z: 60, Block: "f", Group: 3, Period: 6},
	{Symbol: "Pm", Z: 61, Block: "f", Group: 3, Period: 6},
	{Symbol: "Sm", Z: 62, Block: "f", Group: 3, Period: 6},
	{Symbol: "Eu", Z: 63, Block: "f", Group: 3, Period: 6},
	{Symbol: "Gd", Z: 64, Block: "f", Group: 3, Period: 6},
	{Symbol: "Tb", Z: 65, Block: "f", Group: 3, Period: 6},
	{Symbol: "Dy", Z: 66, Block: "f", Group: 3, Period: 6},
	{Symbol: "Ho", Z: 67, Block: "f", Group: 3, Period: 6},
	{Symbol: "Er", Z: 68, Block: "f", Group: 3, Period: 6},
	{Symbol: "Tm", Z: 69, Block: "f", Group: 3, Period: 6},
	{Symbol: "Yb", Z: 70, Block: "f", Group: 3, Period: 6},
	{Symbol: "Lu", Z: 71, Block: "d", Group: 3, Period: 6},
	{Symbol: "Hf", Z: 72, Block: "d", Group: 4, Period: 6},
	{Symbol: "Ta", Z: 73, Block: "d", Group: 5, Period: 6},
	{Symbol: "W", Z: 74, Block: "d", Group: 6, Period: 6},
	{Symbol: "Re", Z: 75, Block: "d", Group: 7, Period: 6},
	{Symbol: "Os", Z: 76, Block: "d", Group: 8, Period: 6},
	{Symbol: "Ir", Z: 77, Block: "d", Group: 9, Period: 6},
	{Symbol: "Pt", Z: 78, Block: "d", Group: 10, Period: 6},
	{Symbol: "Au", Z: 79, Block: "d", Group: 11, Period: 6},
	{Symbol: "Hg", Z: 80, Block: "d", Group: 12, Period: 6},
	{Symbol: "Tl", Z: 81, Block: "p", Group: 13, Period: 6},
	{Symbol: "Pb", Z: 82, Block: "p", Group: 14, Period: 6},
	{Symbol: "Bi", Z: 83, Block: "p", Group: 15, Period: 6},
	{Symbol: "Po", Z: 84, Block: "p", Group: 16, Period: 6},
	{Symbol: "At", Z: 85, Block: "p", Group: 17, Period: 6},
	{Symbol: "Rn", Z: 86, Block: "p", Group: 18, Period: 6},
	{Symbol: "Fr", Z: 87, Block: "s", Group: 1, Period: 7},
	{Symbol: "Ra", Z: 88, Block: "s", Group: 2, Period: 7},
	{Symbol: "Ac", Z: 89, Block: "f", Group: 3, Period: 7},
	{Symbol: "Th", Z: 90, Block: "f", Group: 3, Period: 7},
	{Symbol: "Pa", Z: 91, Block: "f", Group: 3, Period: 7},
	{Symbol: "U", Z: 92, Block: "f", Group: 3, Period: 7},
	{Symbol: "Np", Z: 93, Block: "f", Group: 3, Period: 7},
	{Symbol: "Pu", Z: 94, Block: "f", Group: 3, Period: 7},
	{Symbol: "Am", Z: 95, Block: "f", Group: 3, Period: 7},
	{Symbol: "Cm", Z: 96, Block: "f", Group: 3, Period: 7},
	{Symbol: "Bk", Z: 97, Block: "f", Group: 3, Period: 7},
	{Symbol: "Cf", Z: 98, Block: "f", Group: 3, Period: 7},
	{Symbol: "Es", Z: 99, Block: "f", Group: 3, Period: 7},
	{Symbol: "Fm", Z: 100, Block: "f", Group: 3, Period: 7},
	{Symbol: "Md", Z: 101, Block: "f", Group: 3, Period: 7},
	{Symbol: "No", Z: 102, Block: "f", Group: 3, Period: 7},
	{Symbol: "Lr", Z: 103, Block: "d", Group: 3, Period: 7},
	{Symbol: "Rf", Z: 104, Block: "d", Group: 4, Period: 7},
	{Symbol: "Db", Z: 105, Block: "d", Group: 5, Period: 7},
	{Symbol: "Sg", Z: 106, Block: "d", Group: 6, Period: 7},
	{Symbol: "Bh", Z: 107, Block: "d", Group: 7, Period: 7},
	{Symbol: "Hs", Z: 108, Block: "d", Group: 8, Period: 7},
	{Symbol: "Mt", Z: 109, Block: "d", Group: 9, Period: 7},
	{Symbol: "Ds", Z: 110, Block: "d", Group: 10, Period: 7},
	{Symbol: "Rg", Z: 111, Block: "d", Group: 11, Period: 7},
	{Symbol: "Cn", Z: 112, Block: "d", Group: 12, Period: 7},
	{Symbol: "Nh", Z: 113, Block: "p", Group: 13, Period: 7},
	{Symbol: "Fl", Z: 114, Block: "p", Group: 14, Period: 7},
	{Symbol: "Mc", Z: 115, Block: "p", Group: 15, Period: 7},
	{Symbol: "Lv", Z: 116, Block: "p", Group: 16, Period: 7},
	{Symbol: "Ts", Z: 117, Block: "p", Group: 17, Period: 7},
	{Symbol: "Og", Z: 118, Block: "p", Group: 18, Period: 7},
}
