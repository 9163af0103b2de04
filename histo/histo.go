/*
 * histo.go, part of rdfadf.
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

// Package histo implements equal-width and general histograms on top of gonum's
// stat.Histogram, matrices of histograms, and the 1-D Gaussian filter used to smooth them.
package histo

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Uniform returns the bins+1 dividers of bins equal-width bins spanning [low, high].
func Uniform(bins int, low, high float64) ([]float64, error) {
	if bins <= 0 {
		return nil, fmt.Errorf("rdfadf/histo.Uniform: number of bins must be positive, got %d", bins)
	}
	if !(high > low) || math.IsInf(high-low, 0) {
		return nil, fmt.Errorf("rdfadf/histo.Uniform: invalid range [%g, %g]", low, high)
	}
	return floats.Span(make([]float64, bins+1), low, high), nil
}

// Data is a histogram. Bins are half-open, [d_i, d_i+1), except for the last one
// when the histogram is closed, in which case the last divider is itself counted
// in the last bin. Values outside the dividers are omitted but still reported by Omitted.
type Data struct {
	id         int
	normalized bool
	closed     bool
	total      int
	omitted    int
	dividers   []float64
	histo      []float64
}

func (D *Data) MarshalJSON() ([]byte, error) {
	j, err := json.Marshal(struct {
		ID         int       `json:"id"`
		Normalized bool      `json:"normalized"`
		Closed     bool      `json:"closed"`
		Total      int       `json:"total"`
		Dividers   []float64 `json:"dividers"`
		Histo      []float64 `json:"histo"`
	}{
		ID:         D.id,
		Normalized: D.normalized,
		Closed:     D.closed,
		Total:      D.total,
		Dividers:   D.dividers,
		Histo:      D.histo,
	})
	if err != nil {
		return nil, err
	}
	return j, nil
}

func (D *Data) UnmarshalJSON(b []byte) error {
	var a struct {
		ID         int       `json:"id"`
		Normalized bool      `json:"normalized"`
		Closed     bool      `json:"closed"`
		Total      int       `json:"total"`
		Dividers   []float64 `json:"dividers"`
		Histo      []float64 `json:"histo"`
	}

	err := json.Unmarshal(b, &a)
	if err != nil {
		return err
	}
	if len(a.Dividers) != len(a.Histo)+1 {
		return fmt.Errorf("rdfadf/histo.Data.UnmarshalJSON: %d dividers for %d bins", len(a.Dividers), len(a.Histo))
	}
	D.id = a.ID
	D.normalized = a.Normalized
	D.closed = a.Closed
	D.total = a.Total
	D.dividers = a.Dividers
	D.histo = a.Histo
	return nil
}

// ID returns the ID of the histogram
func (D *Data) ID() int {
	return D.id
}

// String prints a -hopefully- pretty string representation of
// the histogram. The representation uses 3 lines of text
func (D *Data) String() string {
	ret := fmt.Sprintf("ID: %d, Normalized: %v, TotalData: %d\n", D.id, D.normalized, D.total)
	d := make([]string, 0, len(D.dividers)-1)
	h := make([]string, 0, len(D.dividers)-1)
	for i, v := range D.histo {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", D.dividers[i], D.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return ret + fmt.Sprintf("%s\n%s", strings.Join(d, " "), strings.Join(h, " "))

}

// NewData returns a new histogram from the dividers and rawdata given.
// rawdata can be nil. In that case, an empty histogram is created.
// if an ID for the histogram is given, it will be set. If not, the ID will
// be set to -1. The dividers must be sorted; they and rawdata are copied.
func NewData(dividers []float64, rawdata []float64, ID ...int) *Data {
	return newData(false, dividers, rawdata, ID...)
}

// NewClosedData is like NewData but the returned histogram counts values
// equal to the last divider in the last bin.
func NewClosedData(dividers []float64, rawdata []float64, ID ...int) *Data {
	return newData(true, dividers, rawdata, ID...)
}

func newData(closed bool, dividers []float64, rawdata []float64, ID ...int) *Data {
	if len(dividers) < 2 || !sort.Float64sAreSorted(dividers) {
		panic("rdfadf/histo.NewData: need at least 2 sorted dividers")
	}
	d := new(Data)
	d.closed = closed
	//I prefer to copy the slice to avoid somebody changing it from outside
	d.dividers = make([]float64, len(dividers))
	copy(d.dividers, dividers)
	d.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		d.ReHisto(d.dividers, rawdata)
	}
	d.id = -1
	if len(ID) > 0 {
		d.id = ID[0]
	}
	return d

}

// bin returns the bin for v, or -1 if v is out of range.
func (D *Data) bin(v float64) int {
	last := len(D.dividers) - 1
	if math.IsNaN(v) || v < D.dividers[0] || v > D.dividers[last] {
		return -1
	}
	if v == D.dividers[last] {
		if D.closed {
			return last - 1
		}
		return -1
	}
	//the first divider larger than v closes v's bin
	return sort.Search(len(D.dividers), func(i int) bool { return D.dividers[i] > v }) - 1
}

// AddData adds the given data point(s) to the histogram. Points out of range
// are omitted.
func (D *Data) AddData(point ...float64) {
	var norma bool
	if D.normalized {
		norma = true
		D.UnNormalize()
	}
	for _, v := range point {
		if b := D.bin(v); b >= 0 {
			D.histo[b]++
			D.total++
		} else {
			D.omitted++
		}
	}
	//if it was normalized, we should return it to that state
	if norma {
		D.Normalize()
	}
}

// Normalized Returns true if the histogram is normalized
func (D *Data) Normalized() bool {
	return D.normalized
}

// Closed returns true if the last bin of the histogram is right-closed.
func (D *Data) Closed() bool {
	return D.closed
}

// Normalize normalizes the histogram so its counts sum to 1.
func (D *Data) Normalize() {
	D.normaunnorma(true)
}

// UnNormalize un-normalizes the histogram
func (D *Data) UnNormalize() {
	D.normaunnorma(false)
}

// normalizes or un-normalizes the histogram depending
// on whether normalize is true
func (D *Data) normaunnorma(normalize bool) {
	if D.total <= 0 || D.normalized == normalize {
		return
	}
	n := float64(D.total)
	D.normalized = false
	if normalize {
		n = 1 / float64(D.total)
		D.normalized = true
	}

	floats.Scale(n, D.histo)

}

// Total returns the number of data points counted in the histogram.
func (D *Data) Total() int {
	return D.total
}

// Omitted returns the number of data points that fell out of range and were not counted.
func (D *Data) Omitted() int {
	return D.omitted
}

// Len returns the number of bins.
func (D *Data) Len() int {
	return len(D.histo)
}

// CopyDividers copies the dividers of the histogram
func (D *Data) CopyDividers(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.dividers), dest...)
	copy(d, D.dividers)
	return d
}

// Centers returns the midpoints of the bins.
func (D *Data) Centers(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.histo), dest...)
	for i := range d {
		d[i] = 0.5 * (D.dividers[i] + D.dividers[i+1])
	}
	return d
}

// Copy returns a copy of the counts of the histogram.
func (D *Data) Copy(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.histo), dest...)
	copy(d, D.histo)
	return d
}

// View returns the counts of the histogram. Changes to the returned slice
// are reflected in the histogram.
func (D *Data) View() []float64 {
	return D.histo
}

// Scaled returns a copy of the counts of the histogram, each multiplied by f.
func (D *Data) Scaled(f float64, dest ...[]float64) []float64 {
	d := D.Copy(dest...)
	floats.Scale(f, d)
	return d
}

// Add adds the histograms a and b putting the result in the receiver.
func (D *Data) Add(a, b *Data) {
	if !floats.Equal(a.dividers, b.dividers) {
		panic("rdfadf/histo.Data.Add: Dividers must match in added histograms")
	}
	D.dividers = a.CopyDividers(D.dividers)
	D.histo = getCopySlice(len(a.histo), D.histo)
	floats.AddTo(D.histo, a.histo, b.histo)
	D.total = a.total + b.total
	D.omitted = a.omitted + b.omitted
	D.closed = a.closed
}

// Sum returns the sum of all counts.
func (D *Data) Sum() float64 {
	return floats.Sum(D.histo)
}

// ReHisto replaces the content of the histogram with the histogram of rawdata
// over dividers. rawdata is not modified.
func (D *Data) ReHisto(dividers, rawdata []float64) {
	data := make([]float64, 0, len(rawdata))
	var atlast int
	last := dividers[len(dividers)-1]
	//stat.Histogram just panics instead of omitting the values that are off limits
	//so we remove them here before the call.
	for _, v := range rawdata {
		switch {
		case v >= dividers[0] && v < last:
			data = append(data, v)
		case v == last && D.closed:
			atlast++
		}
	}
	sort.Float64s(data)
	D.dividers = append([]float64(nil), dividers...)
	D.histo = stat.Histogram(nil, D.dividers, data, nil)
	D.histo[len(D.histo)-1] += float64(atlast)
	D.total = len(data) + atlast
	D.omitted = len(rawdata) - D.total
	D.normalized = false
}

func getCopySlice(N int, dest ...[]float64) []float64 {
	var d []float64
	if len(dest) > 0 && len(dest[0]) >= N {
		d = dest[0][:N]
	} else {
		d = make([]float64, N)
	}
	return d

}
