/*
 * matrix.go, part of rdfadf.
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

package histo

import (
	"encoding/json"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Matrix is a matrix of histograms, optionally with labels for rows and columns.
type Matrix struct {
	rows, cols int       //total
	d          []*Data   //row-major
	dividers   []float64 //if not nil, all histograms have the same dividers
	closed     bool
	rowlabels  []string
	collabels  []string
}

// NewMatrix returns a new matrix of *Data with r and c rows and column
// and dividers dividers. Dividers can be nil, in which case, elements
// of the matrix will not be forced to have the same dividers
func NewMatrix(r, c int, dividers []float64) *Matrix {
	ret := new(Matrix)
	ret.rows = r
	ret.cols = c
	ret.d = make([]*Data, r*c)
	if dividers != nil {
		ret.dividers = append([]float64(nil), dividers...)
	}
	return ret
}

// NewLabeledMatrix returns a filled matrix with one row per element of rows and
// one column per element of cols, where all histograms share the given dividers.
// If closed is true, the histograms count values at the last divider.
func NewLabeledMatrix(rows, cols []string, dividers []float64, closed bool) *Matrix {
	M := NewMatrix(len(rows), len(cols), dividers)
	M.closed = closed
	M.rowlabels = append([]string(nil), rows...)
	M.collabels = append([]string(nil), cols...)
	M.Fill()
	return M
}

// Dims returns the number of rows and columns of the matrix.
func (M *Matrix) Dims() (int, int) {
	return M.rows, M.cols
}

// Labels returns the row and column labels of the matrix, if any.
func (M *Matrix) Labels() ([]string, []string) {
	return M.rowlabels, M.collabels
}

// Index returns the row and column indexes for the given labels. The last
// value is false if either label is not in the matrix.
func (M *Matrix) Index(row, col string) (int, int, bool) {
	r, c := -1, -1
	for i, v := range M.rowlabels {
		if v == row {
			r = i
			break
		}
	}
	for i, v := range M.collabels {
		if v == col {
			c = i
			break
		}
	}
	return r, c, r >= 0 && c >= 0
}

// CopyDividers copies the dividers of the histograms
func (M *Matrix) CopyDividers(dest ...[]float64) []float64 {
	if M.dividers == nil {
		return nil
	}
	d := getCopySlice(len(M.dividers), dest...)
	copy(d, M.dividers)
	return d
}

func (M *Matrix) String() string {
	ret := fmt.Sprintf("rows:%d cols:%d | Data:\n", M.rows, M.cols)
	t := make([]string, 0, len(M.d))
	for _, v := range M.d {
		t = append(t, v.String())
	}
	return ret + strings.Join(t, "\n\n")
}

func (M *Matrix) MarshalJSON() ([]byte, error) {
	j, err := json.Marshal(struct {
		Rows      int       `json:"rows"`
		Cols      int       `json:"cols"`
		D         []*Data   `json:"data"`
		Dividers  []float64 `json:"dividers"`
		RowLabels []string  `json:"row_labels,omitempty"`
		ColLabels []string  `json:"col_labels,omitempty"`
	}{
		Rows:      M.rows,
		Cols:      M.cols,
		D:         M.d,
		Dividers:  M.dividers,
		RowLabels: M.rowlabels,
		ColLabels: M.collabels,
	})
	if err != nil {
		return nil, err
	}
	return j, nil
}

// returns the index in the []*Data slice of a matrix given
// the row and column indexes.
func (M *Matrix) rc2i(r, c int) int {
	M.Check(r, c, true)
	return M.cols*r + c
}

// Fill fills the matrix with empty histograms
// If the matrix has a non-nil delimiters slice,
// that slice is used for all the histograms created
func (M *Matrix) Fill() {
	for i := 0; i < M.rows; i++ {
		for j := 0; j < M.cols; j++ {
			M.NewHisto(i, j, M.dividers, nil, M.rc2i(i, j))
		}

	}
}

// Check checks if the given row and column indexes are within range.
// if pan is given and true, it panics if either is out of range,
// otherwise, it returns an error.
func (M *Matrix) Check(r, c int, pan ...bool) error {
	var err error
	if r >= M.rows || r < 0 {
		err = fmt.Errorf("rdfadf/histo: Row %d out of range", r)
	}
	if c >= M.cols || c < 0 {
		err = fmt.Errorf("rdfadf/histo: Column %d out of range", c)
	}
	if err != nil && len(pan) > 0 && pan[0] {
		panic(err.Error())
	}
	return err
}

// NewHisto Puts a new histogram in the r,c position in the matrix. Dividers can be nil, in which case, the matrix
// should have its dividers. If there are no dividers, the function will panic. If they
// don't match, the matrix's dividers win.
// rawdata can also be nil, in which case, an empty histogram will be put in the position.
func (M *Matrix) NewHisto(r, c int, dividers []float64, rawdata []float64, ID ...int) {
	if dividers == nil {
		if M.dividers == nil {
			panic("rdfadf/histo.Matrix.NewHisto: dividers not given, and the matrix has none")
		}
		dividers = M.dividers
	} else if M.dividers != nil && !floats.Equal(M.dividers, dividers) {
		dividers = M.dividers
	}
	M.d[M.rc2i(r, c)] = newData(M.closed, dividers, rawdata, ID...)
}

// View Returns a view of the histogram in the r,c position in the matrix
func (M *Matrix) View(r, c int) *Data {
	return M.d[M.rc2i(r, c)]
}

// AddData adds one or more data points to the histogram in the r,c position in the matrix
func (M *Matrix) AddData(r, c int, point ...float64) {
	M.d[M.rc2i(r, c)].AddData(point...)
}

// FromAll applies the f function to each element in the matrix, the results are returned as
// a [][]float64. Also returns error upon failure, or nil.
func (M *Matrix) FromAll(f func(D *Data) (float64, error)) ([][]float64, error) {
	r := make([][]float64, M.rows)
	var err error
	for i := 0; i < M.rows; i++ {
		r[i] = make([]float64, M.cols)
		for j := 0; j < M.cols; j++ {
			r[i][j], err = f(M.d[M.rc2i(i, j)])
			if err != nil {
				return nil, fmt.Errorf("rdfadf/histo.Matrix.FromAll: Error at %d, %d: %v", i, j, err)
			}
		}
	}
	return r, nil
}
