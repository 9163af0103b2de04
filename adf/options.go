/*
 * options.go, part of rdfadf.
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

package adf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"runtime"

	"github.com/hashicorp/go-multierror"
	chem "github.com/rmera/rdfadf"
	"github.com/rmera/rdfadf/histo"
	"github.com/rmera/rdfadf/label"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Options contains the parameters of an ADF calculation.
type Options struct {
	center string
	neigh1 string
	neigh2 string
	rcut   float64
	bins   int
	sigma  histo.Smoothing
	rmin   float64
	rmax   float64
	rmaxok bool //if false, rmax is rcut
	cpus   int
	table  chem.PeriodicTable
	logger logrus.FieldLogger
}

// DefaultOptions returns an Options with the default values: all atoms as centers and
// neighbors, a cutoff of 6, 180 bins, no smoothing, and a distance window from 0 to the cutoff.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.center = label.All
	ret.neigh1 = label.All
	ret.neigh2 = label.All
	ret.rcut = 6
	ret.bins = 180
	ret.sigma = histo.NoSmoothing()
	ret.cpus = runtime.NumCPU()
	ret.table = chem.DefaultTable()
	ret.logger = logrus.StandardLogger()
	return ret
}

// Labels returns the labels selecting the center atoms, the first neighbors and
// the second neighbors, in that order. If given, the labels are set, in the same order.
// Empty strings leave the corresponding label unchanged.
func (o *Options) Labels(labels ...string) (string, string, string) {
	c, n1, n2 := o.center, o.neigh1, o.neigh2
	ptrs := []*string{&o.center, &o.neigh1, &o.neigh2}
	for i, v := range labels {
		if i < len(ptrs) && v != "" {
			*ptrs[i] = v
		}
	}
	return c, n1, n2
}

// Rcut returns the cutoff of the neighbor search and sets it, if given.
func (o *Options) Rcut(rcut ...float64) float64 {
	ret := o.rcut
	if len(rcut) > 0 {
		o.rcut = rcut[0]
	}
	return ret
}

// Bins returns the number of angle bins between 0 and π and sets it, if given.
func (o *Options) Bins(bins ...int) int {
	ret := o.bins
	if len(bins) > 0 {
		o.bins = bins[0]
	}
	return ret
}

// Smoothing returns the smoothing applied to the curve, and sets it, if given.
func (o *Options) Smoothing(s ...histo.Smoothing) histo.Smoothing {
	ret := o.sigma
	if len(s) > 0 {
		o.sigma = s[0]
	}
	return ret
}

// RMin returns the smallest center-neighbor distance considered, and sets it, if given.
func (o *Options) RMin(rmin ...float64) float64 {
	ret := o.rmin
	if len(rmin) > 0 {
		o.rmin = rmin[0]
	}
	return ret
}

// RMax returns the largest center-neighbor distance considered, which is the cutoff
// unless it has been set. If a value is given, it is set.
func (o *Options) RMax(rmax ...float64) float64 {
	ret := o.rmax
	if !o.rmaxok {
		ret = o.rcut
	}
	if len(rmax) > 0 {
		o.rmax = rmax[0]
		o.rmaxok = true
	}
	return ret
}

// UnsetRMax makes the largest center-neighbor distance follow the cutoff again.
func (o *Options) UnsetRMax() {
	o.rmax = 0
	o.rmaxok = false
}

// Cpus returns the number of goroutines used to enumerate the angles
// and sets it, if a valid value is given.
func (o *Options) Cpus(cpus ...int) int {
	ret := o.cpus
	if len(cpus) > 0 && cpus[0] > 0 {
		o.cpus = cpus[0]
	}
	return ret
}

// Table returns the periodic table used to classify the atoms and sets it,
// if a non-nil one is given.
func (o *Options) Table(table ...chem.PeriodicTable) chem.PeriodicTable {
	ret := o.table
	if len(table) > 0 && table[0] != nil {
		o.table = table[0]
	}
	return ret
}

// Logger returns the logger used and sets it, if a non-nil one is given.
func (o *Options) Logger(l ...logrus.FieldLogger) logrus.FieldLogger {
	ret := o.logger
	if len(l) > 0 && l[0] != nil {
		o.logger = l[0]
	}
	return ret
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Validate returns an error of kind chem.ErrInvalidParameter listing every
// invalid parameter in o, or nil if all are fine.
func (o *Options) Validate() error {
	var result *multierror.Error
	if !(o.rcut > 0) || !finite(o.rcut) {
		result = multierror.Append(result, fmt.Errorf("rcut must be a positive finite number, got %g", o.rcut))
	}
	if o.bins <= 0 {
		result = multierror.Append(result, fmt.Errorf("bins must be positive, got %d", o.bins))
	}
	if err := o.sigma.Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	rmax := o.RMax()
	if !(o.rmin >= 0) || !finite(o.rmin) {
		result = multierror.Append(result, fmt.Errorf("r_min must be a non-negative finite number, got %g", o.rmin))
	} else if !finite(rmax) || o.rmin > rmax {
		result = multierror.Append(result, fmt.Errorf("r_max (%g) must be finite and not smaller than r_min (%g)", rmax, o.rmin))
	}
	if err := result.ErrorOrNil(); err != nil {
		return chem.NewError(chem.ErrInvalidParameter, "bad ADF options").Wrap(err).Decorated("adf.Options.Validate")
	}
	return nil
}

// yamlOptions is the YAML document read by OptionsFromYAML.
type yamlOptions struct {
	Center string    `yaml:"center"`
	Neigh1 string    `yaml:"neigh1"`
	Neigh2 string    `yaml:"neigh2"`
	Rcut   *float64  `yaml:"rcut"`
	Bins   *int      `yaml:"bins"`
	Sigma  yaml.Node `yaml:"sigma"`
	RMin   *float64  `yaml:"r_min"`
	RMax   *float64  `yaml:"r_max"`
	Cpus   *int      `yaml:"cpus"`
}

// OptionsFromYAML returns the default Options, modified by the values in the YAML
// document b. The recognized keys are center, neigh1, neigh2, rcut, bins, sigma
// (a number, or null for no smoothing), r_min, r_max (null or absent means the cutoff)
// and cpus. Unknown keys are an error. The returned options are validated.
func OptionsFromYAML(b []byte) (*Options, error) {
	o := DefaultOptions()
	var y yamlOptions
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&y); err != nil && !errors.Is(err, io.EOF) {
		return nil, chem.NewError(chem.ErrInvalidParameter, "can't decode options").Wrap(err).Decorated("adf.OptionsFromYAML")
	}
	o.Labels(y.Center, y.Neigh1, y.Neigh2)
	if y.Rcut != nil {
		o.Rcut(*y.Rcut)
	}
	if y.Bins != nil {
		o.Bins(*y.Bins)
	}
	if y.Sigma.Kind != 0 {
		var s histo.Smoothing
		if err := y.Sigma.Decode(&s); err != nil {
			return nil, chem.NewError(chem.ErrInvalidParameter, "bad sigma").Wrap(err).Decorated("adf.OptionsFromYAML")
		}
		o.Smoothing(s)
	}
	if y.RMin != nil {
		o.RMin(*y.RMin)
	}
	if y.RMax != nil {
		o.RMax(*y.RMax)
	}
	if y.Cpus != nil {
		o.Cpus(*y.Cpus)
	}
	if err := o.Validate(); err != nil {
		return nil, chem.ErrDecorate(err, "adf.OptionsFromYAML")
	}
	return o, nil
}
