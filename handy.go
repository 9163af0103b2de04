/*
 * handy.go, part of rdfadf.
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

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

// SymbolSet is a set of chemical symbols.
type SymbolSet map[string]struct{}

// NewSymbolSet returns a set with the given symbols.
func NewSymbolSet(symbols ...string) SymbolSet {
	ret := make(SymbolSet, len(symbols))
	for _, v := range symbols {
		ret[v] = struct{}{}
	}
	return ret
}

// Has returns true if s is in the set.
func (S SymbolSet) Has(s string) bool {
	_, ok := S[s]
	return ok
}

// Len returns the number of symbols in the set.
func (S SymbolSet) Len() int {
	return len(S)
}

// Sorted returns the symbols in the set in lexicographic order.
func (S SymbolSet) Sorted() []string {
	ret := make([]string, 0, len(S))
	for k := range S {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

// Equal returns true if both sets contain exactly the same symbols.
func (S SymbolSet) Equal(O SymbolSet) bool {
	if len(S) != len(O) {
		return false
	}
	for k := range S {
		if !O.Has(k) {
			return false
		}
	}
	return true
}
