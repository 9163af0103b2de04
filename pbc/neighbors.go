/*
 * neighbors.go, part of rdfadf.
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

// Package pbc finds all the neighbors of the atoms of a structure within a cutoff,
// under periodic boundary conditions, for any (also triclinic) cell.
//
// The search uses a cell list: the cell is split in bins at least as thick as the
// cutoff (or as close to that as the number of atoms allows) and only the bins
// around each atom, and their periodic images, are searched. Every periodic image
// within the cutoff is found, so the cutoff can be larger than the cell.
package pbc

import (
	"math"

	chem "github.com/rmera/rdfadf"
	v3 "github.com/rmera/rdfadf/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Neighbor is a neighbor of a center atom i: the atom with index Index, translated by Offset
// lattice vectors. The separation vector from i is position[Index] + Offset·cell - position[i].
type Neighbor struct {
	Index  int
	Offset [3]int
}

// List holds the neighbors of every atom of a structure in a single flat slice.
// Neighbors of atom i are stored contiguously. The list is bothways: if j (with offset o)
// is a neighbor of i, i (with offset -o) is a neighbor of j.
type List struct {
	start     []int
	neighbors []Neighbor
	cutoff    float64
}

// Len returns the number of atoms in the list.
func (L *List) Len() int {
	return len(L.start) - 1
}

// Neighbors returns the neighbors of atom i. The returned slice must not be modified.
func (L *List) Neighbors(i int) []Neighbor {
	return L.neighbors[L.start[i]:L.start[i+1]]
}

// Total returns the total number of (center, neighbor) entries in the list, i.e.
// twice the number of pairs.
func (L *List) Total() int {
	return len(L.neighbors)
}

// Cutoff returns the cutoff used to build the list.
func (L *List) Cutoff() float64 {
	return L.cutoff
}

// Shift returns the cartesian translation o·cell.
func Shift(cell *v3.Matrix, o [3]int) r3.Vec {
	var ret r3.Vec
	for k := 0; k < 3; k++ {
		if o[k] == 0 {
			continue
		}
		ret = r3.Add(ret, r3.Scale(float64(o[k]), cell.Vec(k)))
	}
	return ret
}

// Separation returns the vector from atom i to its neighbor n.
func Separation(coords, cell *v3.Matrix, i int, n Neighbor) r3.Vec {
	return r3.Add(r3.Sub(coords.Vec(n.Index), coords.Vec(i)), Shift(cell, n.Offset))
}

// NeighborsOf is Neighbors for a chem.Periodic object.
func NeighborsOf(S chem.Periodic, cutoff float64) (*List, error) {
	L, err := Neighbors(S.Positions(), S.Lattice(), S.PBC(), cutoff)
	return L, chem.ErrDecorate(err, "pbc.NeighborsOf")
}

// binning holds the bin decomposition of the cell along one axis.
type binning struct {
	n        int     //number of bins
	reach    int     //how many bins, in each direction, can hold neighbors
	min, max float64 //fractional range covered, only for non-periodic axes
	periodic bool
}

// bin returns the bin of the fractional coordinate f. f must be already wrapped
// into [0,1) for periodic axes.
func (b binning) bin(f float64) int {
	var x float64
	if b.periodic {
		x = f
	} else if b.max > b.min {
		x = (f - b.min) / (b.max - b.min)
	}
	i := int(math.Floor(x * float64(b.n)))
	if i >= b.n {
		i = b.n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// Neighbors returns, for each atom in coords, all the atoms (including its own periodic images)
// at a distance equal or smaller than cutoff, given the cell (one lattice vector per row) and
// the periodicity of each cell axis. Non-periodic axes get no periodic images.
// The trivial pair of an atom with itself, without translation, is not included.
func Neighbors(coords, cell *v3.Matrix, pbc [3]bool, cutoff float64) (*List, error) {
	if !(cutoff > 0) || math.IsInf(cutoff, 0) {
		return nil, chem.NewError(chem.ErrInvalidParameter, "cutoff must be a positive finite number, got %g", cutoff).Decorated("pbc.Neighbors")
	}
	if cell.NVecs() != 3 {
		return nil, chem.NewError(chem.ErrInvalidParameter, "the cell must have 3 lattice vectors").Decorated("pbc.Neighbors")
	}
	inv := v3.Zeros(3)
	if err := inv.Inverse(cell); err != nil {
		return nil, chem.NewError(chem.ErrInvalidParameter, "bad cell").Wrap(err).Decorated("pbc.Neighbors")
	}
	N := coords.NVecs()
	L := &List{start: make([]int, N+1), cutoff: cutoff}
	if N == 0 {
		return L, nil
	}

	//fractional coordinates, wrapped into the cell along the periodic axes.
	//wrapped positions are r - shifts·cell.
	frac := make([][3]float64, N)
	shifts := make([][3]int, N)
	wrapped := make([]r3.Vec, N)
	for i := 0; i < N; i++ {
		r := coords.Vec(i)
		for k := 0; k < 3; k++ {
			f := r.X*inv.At(0, k) + r.Y*inv.At(1, k) + r.Z*inv.At(2, k)
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return nil, chem.NewError(chem.ErrInvalidParameter, "non-finite coordinates for atom %d", i).Decorated("pbc.Neighbors")
			}
			if pbc[k] {
				s := math.Floor(f)
				f -= s
				if f >= 1 { //floating point
					f = 0
					s++
				}
				shifts[i][k] = int(s)
			}
			frac[i][k] = f
		}
		wrapped[i] = r3.Sub(r, Shift(cell, shifts[i]))
	}

	var bins [3]binning
	heights := Heights(cell)
	perAxis := int(math.Cbrt(float64(N))) + 1
	for k := 0; k < 3; k++ {
		b := binning{periodic: pbc[k]}
		extent := 1.0
		if !b.periodic {
			b.min, b.max = frac[0][k], frac[0][k]
			for i := 1; i < N; i++ {
				b.min = math.Min(b.min, frac[i][k])
				b.max = math.Max(b.max, frac[i][k])
			}
			extent = b.max - b.min
		}
		thick := extent * heights[k] //perpendicular thickness of the binned region
		b.n = int(math.Floor(thick / cutoff))
		if b.n > perAxis {
			b.n = perAxis
		}
		if b.n < 1 {
			b.n = 1
		}
		if thick > 0 {
			b.reach = int(math.Ceil(cutoff * float64(b.n) / thick))
		}
		if !b.periodic && b.reach > b.n-1 {
			b.reach = b.n - 1
		}
		bins[k] = b
	}

	//counting sort of the atoms by bin.
	nb := bins[0].n * bins[1].n * bins[2].n
	binof := make([]int, N)
	binxyz := make([][3]int, N)
	counts := make([]int, nb+1)
	for i := 0; i < N; i++ {
		for k := 0; k < 3; k++ {
			binxyz[i][k] = bins[k].bin(frac[i][k])
		}
		binof[i] = flat(binxyz[i], bins)
		counts[binof[i]+1]++
	}
	for i := 1; i <= nb; i++ {
		counts[i] += counts[i-1]
	}
	sorted := make([]int, N)
	fill := make([]int, nb)
	copy(fill, counts[:nb])
	for i := 0; i < N; i++ {
		sorted[fill[binof[i]]] = i
		fill[binof[i]]++
	}

	c2 := cutoff * cutoff
	L.neighbors = make([]Neighbor, 0, 16*N)
	var nbin, image [3]int
	for i := 0; i < N; i++ {
		L.start[i] = len(L.neighbors)
		bi := binxyz[i]
		for dx := -bins[0].reach; dx <= bins[0].reach; dx++ {
			if !neighborBin(bins[0], bi[0]+dx, &nbin[0], &image[0]) {
				continue
			}
			for dy := -bins[1].reach; dy <= bins[1].reach; dy++ {
				if !neighborBin(bins[1], bi[1]+dy, &nbin[1], &image[1]) {
					continue
				}
				for dz := -bins[2].reach; dz <= bins[2].reach; dz++ {
					if !neighborBin(bins[2], bi[2]+dz, &nbin[2], &image[2]) {
						continue
					}
					shift := Shift(cell, image)
					b := flat(nbin, bins)
					for _, j := range sorted[counts[b]:counts[b+1]] {
						if j == i && image == [3]int{} {
							continue
						}
						//(rj-ri)+shift is exactly the negative of the reverse pair's,
						//so both directions agree at the cutoff.
						d := r3.Add(r3.Sub(wrapped[j], wrapped[i]), shift)
						if r3.Norm2(d) > c2 {
							continue
						}
						var o [3]int
						for k := 0; k < 3; k++ {
							o[k] = image[k] - shifts[j][k] + shifts[i][k]
						}
						L.neighbors = append(L.neighbors, Neighbor{Index: j, Offset: o})
					}
				}
			}
		}
	}
	L.start[N] = len(L.neighbors)
	return L, nil
}

// neighborBin puts in bin and image the actual bin and the periodic image for
// the (possibly out of range) bin index b. It returns false if there is no such
// bin, which can only happen along non-periodic axes.
func neighborBin(B binning, b int, bin, image *int) bool {
	if !B.periodic {
		if b < 0 || b >= B.n {
			return false
		}
		*bin, *image = b, 0
		return true
	}
	im := b / B.n
	r := b % B.n
	if r < 0 {
		r += B.n
		im--
	}
	*bin, *image = r, im
	return true
}

func flat(b [3]int, bins [3]binning) int {
	return (b[0]*bins[1].n+b[1])*bins[2].n + b[2]
}

// Heights returns the distances between opposite faces of the cell, i.e. the
// thickness of the cell perpendicular to the plane of the other two lattice vectors,
// for each lattice vector.
func Heights(cell *v3.Matrix) [3]float64 {
	a := [3]r3.Vec{cell.Vec(0), cell.Vec(1), cell.Vec(2)}
	vol := math.Abs(r3.Dot(a[0], r3.Cross(a[1], a[2])))
	var h [3]float64
	for k := 0; k < 3; k++ {
		h[k] = vol / r3.Norm(r3.Cross(a[(k+1)%3], a[(k+2)%3]))
	}
	return h
}
