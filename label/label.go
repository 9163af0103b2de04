/*
 * label.go, part of rdfadf.
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

// Package label maps textual selectors to the sets of chemical elements they
// stand for. A selector is one of:
//
//	"All"             every element present in the structure
//	an element symbol  e.g. "Li", "O", "Co" (case-sensitive)
//	a block            "s", "p", "d" or "f"
//	a group            "G1" to "G18"
//	a period           "P1" to "P7"
//
// Block, group and period selectors only return elements present in the structure.
// An element symbol is returned even if absent from it.
package label

import (
	"fmt"
	"strconv"
	"strings"

	chem "github.com/rmera/rdfadf"
)

// All is the selector for every element present.
const All = "All"

// Kind is the classification axis a selector refers to.
type Kind int

const (
	KindAll Kind = iota
	KindElement
	KindBlock
	KindGroup
	KindPeriod
)

func (k Kind) String() string {
	switch k {
	case KindAll:
		return "all"
	case KindElement:
		return "element"
	case KindBlock:
		return "block"
	case KindGroup:
		return "group"
	case KindPeriod:
		return "period"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Selector is a parsed label.
type Selector struct {
	Label string
	Kind  Kind
	//Value holds the symbol or block for KindElement and KindBlock, and it is empty otherwise.
	Value string
	//Number holds the group or period for KindGroup and KindPeriod and it is 0 otherwise.
	Number int
}

// Parse interprets label against the periodic table. Element symbols take
// precedence over the other patterns, which only matters for "P", phosphorus.
func Parse(label string, table chem.PeriodicTable) (Selector, error) {
	S := Selector{Label: label}
	switch {
	case label == All:
		S.Kind = KindAll
		return S, nil
	case table.Has(label):
		S.Kind = KindElement
		S.Value = label
		return S, nil
	case label == "s" || label == "p" || label == "d" || label == "f":
		S.Kind = KindBlock
		S.Value = label
		return S, nil
	case strings.HasPrefix(label, "G"):
		n, err := number(label, 18)
		if err != nil {
			return S, chem.NewError(chem.ErrInvalidLabel, "bad group selector %q", label).Wrap(err).Decorated("label.Parse")
		}
		S.Kind = KindGroup
		S.Number = n
		return S, nil
	case strings.HasPrefix(label, "P"):
		n, err := number(label, 7)
		if err != nil {
			return S, chem.NewError(chem.ErrInvalidLabel, "bad period selector %q", label).Wrap(err).Decorated("label.Parse")
		}
		S.Kind = KindPeriod
		S.Number = n
		return S, nil
	}
	return S, chem.NewError(chem.ErrInvalidLabel, "unknown label %q", label).Decorated("label.Parse")
}

// number reads the decimal integer after the first byte of label, which must be
// in [1, max]. Signs and spaces are not accepted.
func number(label string, max int) (int, error) {
	digits := label[1:]
	if digits == "" {
		return 0, fmt.Errorf("missing number")
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%q is not a decimal number", digits)
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > max {
		return 0, fmt.Errorf("%d out of range [1,%d]", n, max)
	}
	return n, nil
}

// Matches returns true if the element e is selected by S.
func (S Selector) Matches(e chem.Element) bool {
	switch S.Kind {
	case KindAll:
		return true
	case KindElement:
		return e.Symbol == S.Value
	case KindBlock:
		return e.Block == S.Value
	case KindGroup:
		return e.Group == S.Number
	case KindPeriod:
		return e.Period == S.Number
	}
	return false
}

// Expand returns the set of symbols selected by S, given the symbols present in a
// structure. Every present symbol must be in the table, or an error of kind
// chem.ErrUnknownSymbol is returned.
func (S Selector) Expand(present []string, table chem.PeriodicTable) (chem.SymbolSet, error) {
	ret := chem.NewSymbolSet()
	for _, s := range present {
		e, err := table.Lookup(s)
		if err != nil {
			return nil, chem.ErrDecorate(err, "label.Selector.Expand")
		}
		if S.Kind != KindElement && S.Matches(e) {
			ret[s] = struct{}{}
		}
	}
	if S.Kind == KindElement {
		ret[S.Value] = struct{}{}
	}
	return ret, nil
}

// Classify returns the set of element symbols selected by label, among the symbols present in
// a structure (which can contain repetitions). An element symbol
// is always returned as a one-element set, even if the element is absent from the structure.
// A nil table means chem.DefaultTable().
func Classify(label string, present []string, table chem.PeriodicTable) (chem.SymbolSet, error) {
	if table == nil {
		table = chem.DefaultTable()
	}
	S, err := Parse(label, table)
	if err != nil {
		return nil, err
	}
	return S.Expand(present, table)
}

// Mode is the classification axis used by ElementLabel.
type Mode string

const (
	ModeElement Mode = "element"
	ModeBlock   Mode = "block"
	ModeGroup   Mode = "group"
	ModePeriod  Mode = "period"
)

// ElementLabel returns the selector that stands for the element symbol on the
// given classification axis, e.g. "Na", "s", "G1" or "P3" for sodium. It is the inverse of
// Classify, in the sense that the symbol is always selected by the returned label.
// A nil table means chem.DefaultTable().
func ElementLabel(symbol string, mode Mode, table chem.PeriodicTable) (string, error) {
	if table == nil {
		table = chem.DefaultTable()
	}
	e, err := table.Lookup(symbol)
	if err != nil {
		return "", chem.ErrDecorate(err, "label.ElementLabel")
	}
	switch mode {
	case ModeElement:
		return e.Symbol, nil
	case ModeBlock:
		return e.Block, nil
	case ModeGroup:
		return fmt.Sprintf("G%d", e.Group), nil
	case ModePeriod:
		return fmt.Sprintf("P%d", e.Period), nil
	}
	return "", chem.NewError(chem.ErrInvalidParameter, "invalid mode %q", string(mode)).Decorated("label.ElementLabel")
}
