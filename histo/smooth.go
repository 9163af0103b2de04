/*
 * smooth.go, part of rdfadf.
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
	"math"

	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"
)

// Truncate is the width, in standard deviations, at which the Gaussian kernel is cut.
const Truncate = 4.0

// Smoothing tells whether a curve is to be smoothed and, if so, the standard
// deviation, in bin units, of the Gaussian used. The zero value means no smoothing.
type Smoothing struct {
	sigma float64
	on    bool
}

// NoSmoothing returns a Smoothing that leaves curves untouched.
func NoSmoothing() Smoothing {
	return Smoothing{}
}

// Sigma returns a Smoothing with a Gaussian of standard deviation s, in bin units.
func Sigma(s float64) Smoothing {
	return Smoothing{sigma: s, on: true}
}

// Value returns the standard deviation and whether smoothing is enabled.
func (S Smoothing) Value() (float64, bool) {
	return S.sigma, S.on
}

// Enabled returns true if the Smoothing does smooth.
func (S Smoothing) Enabled() bool {
	return S.on
}

// Validate returns an error if the standard deviation is negative or not finite.
func (S Smoothing) Validate() error {
	if S.on && (S.sigma < 0 || math.IsNaN(S.sigma) || math.IsInf(S.sigma, 0)) {
		return fmt.Errorf("sigma must be a finite non-negative number, got %g", S.sigma)
	}
	return nil
}

// Apply puts in dst, and returns, src smoothed according to S. If S
// is disabled, dst is a copy of src. dst can be nil or src itself.
func (S Smoothing) Apply(dst, src []float64) []float64 {
	if !S.on {
		d := getCopySlice(len(src), dst)
		copy(d, src)
		return d
	}
	return GaussianFilter1D(dst, src, S.sigma)
}

func (S Smoothing) String() string {
	if !S.on {
		return "none"
	}
	return fmt.Sprintf("sigma=%g", S.sigma)
}

// UnmarshalYAML reads a null (no smoothing) or a number (sigma).
func (S *Smoothing) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!null" {
		*S = NoSmoothing()
		return nil
	}
	var s float64
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("rdfadf/histo.Smoothing: %w", err)
	}
	*S = Sigma(s)
	return nil
}

// MarshalYAML writes null for no smoothing and the sigma otherwise.
func (S Smoothing) MarshalYAML() (interface{}, error) {
	if !S.on {
		return nil, nil
	}
	return S.sigma, nil
}

// MarshalJSON writes null for no smoothing and the sigma otherwise.
func (S Smoothing) MarshalJSON() ([]byte, error) {
	if !S.on {
		return []byte("null"), nil
	}
	return json.Marshal(S.sigma)
}

// GaussianKernel1D returns the normalized weights of a Gaussian of standard deviation
// sigma, cut at Truncate standard deviations. The kernel has 2r+1 elements with
// r = int(Truncate*sigma+0.5). A sigma of 0 gives the identity kernel {1}.
func GaussianKernel1D(sigma float64) []float64 {
	if sigma <= 0 {
		return []float64{1}
	}
	r := int(Truncate*sigma + 0.5)
	w := make([]float64, 2*r+1)
	s2 := sigma * sigma
	for i := range w {
		x := float64(i - r)
		w[i] = math.Exp(-0.5 * x * x / s2)
	}
	floats.Scale(1/floats.Sum(w), w)
	return w
}

// reflect maps any index to [0,n) by reflecting about the edges,
// with the edge sample repeated: (d c b a | a b c d | d c b a)
func reflect(i, n int) int {
	p := 2 * n
	m := i % p
	if m < 0 {
		m += p
	}
	if m >= n {
		m = p - 1 - m
	}
	return m
}

// GaussianFilter1D puts in dst, and returns, the convolution of src with a Gaussian of standard
// deviation sigma (in units of samples), with reflecting boundaries. dst can be nil,
// in which case a new slice is allocated, or src itself. A sigma of 0 returns a copy of src.
func GaussianFilter1D(dst, src []float64, sigma float64) []float64 {
	n := len(src)
	d := getCopySlice(n, dst)
	if n == 0 {
		return d
	}
	w := GaussianKernel1D(sigma)
	r := len(w) / 2
	ext := make([]float64, n+2*r)
	for i := range ext {
		ext[i] = src[reflect(i-r, n)]
	}
	for i := 0; i < n; i++ {
		d[i] = floats.Dot(w, ext[i:i+len(w)])
	}
	return d
}
