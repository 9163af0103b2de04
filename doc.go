/*
 * doc.go, part of rdfadf.
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

/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*
Package chem is the main package of the rdfadf library. It provides the atom, topology and
periodic structure types, a periodic-table reference and the error types shared by the
structural descriptors implemented in the sub-packages.

	**Capabilities**

    Classifies atoms by element, block (s, p, d, f), group (G1 to G18) and
	period (P1 to P7) (package label).

    Finds all neighbors within a cutoff under periodic boundary conditions, for
	orthorhombic and triclinic cells, with a cell-list search, including all the
	periodic images reachable within the cutoff (package pbc).

    Computes radial distribution functions between any two selections, normalized
	per center atom, with Gaussian smoothing, shell-volume normalization and
	cumulative counts. Also all the partial RDFs of a structure at once (package rdf).

    Computes angle distribution functions for triplets of selections, with a
	distance window for the neighbors, normalized per center atom and optionally
	smoothed (package adf).

The coordinates and the cell are kept in v3.Matrix objects (package v3), based on gonum's
Dense type. Each row of a v3.Matrix represents one point, or one lattice vector, in space.

The computations never modify the structures given to them. Periodicity is forced on an
internal copy (see Structure.WithPBC).
*/
package chem
