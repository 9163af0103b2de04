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

package rdf

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
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Options contains the parameters of an RDF calculation.
type Options struct {
	rcut   float64
	bins   int
	sigma  histo.Smoothing
	cpus   int
	table  chem.PeriodicTable
	logger logrus.FieldLogger
}

// DefaultOptions returns an Options with the default values: a cutoff of 10, 200 bins,
// Gaussian smoothing with a sigma of 2 bins, and as many goroutines as logical CPUs.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.rcut = 10
	ret.bins = 200
	ret.sigma = histo.Sigma(2)
	ret.cpus = runtime.NumCPU()
	ret.table = chem.DefaultTable()
	ret.logger = logrus.StandardLogger()
	return ret
}

// Rcut returns the cutoff radius, and sets it to the value given, if any.
// Invalid values are reported when the calculation is run.
func (o *Options) Rcut(rcut ...float64) float64 {
	ret := o.rcut
	if len(rcut) > 0 {
		o.rcut = rcut[0]
	}
	return ret
}

// Bins returns the number of distance bins, and sets it to the value given, if any.
// Invalid values are reported when the calculation is run.
func (o *Options) Bins(bins ...int) int {
	ret := o.bins
	if len(bins) > 0 {
		o.bins = bins[0]
	}
	return ret
}

// Smoothing returns the smoothing applied to the per-center curve, and sets it, if given.
// A disabled Smoothing behaves as a sigma of 0.
func (o *Options) Smoothing(s ...histo.Smoothing) histo.Smoothing {
	ret := o.sigma
	if len(s) > 0 {
		o.sigma = s[0]
	}
	return ret
}

// Cpus returns the number of goroutines used in the accumulation of the histogram
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

// Validate returns an error of kind chem.ErrInvalidParameter listing every
// invalid parameter in o, or nil if all are fine.
func (o *Options) Validate() error {
	var result *multierror.Error
	if !(o.rcut > 0) || math.IsInf(o.rcut, 0) {
		result = multierror.Append(result, fmt.Errorf("rcut must be a positive finite number, got %g", o.rcut))
	}
	if o.bins <= 0 {
		result = multierror.Append(result, fmt.Errorf("bins must be positive, got %d", o.bins))
	}
	if err := o.sigma.Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := result.ErrorOrNil(); err != nil {
		return chem.NewError(chem.ErrInvalidParameter, "bad RDF options").Wrap(err).Decorated("rdf.Options.Validate")
	}
	return nil
}

// yamlOptions is the YAML document read by OptionsFromYAML.
type yamlOptions struct {
	Rcut  *float64  `yaml:"rcut"`
	Bins  *int      `yaml:"bins"`
	Sigma yaml.Node `yaml:"sigma"`
	Cpus  *int      `yaml:"cpus"`
}

// OptionsFromYAML returns the default Options, modified by the values in the YAML
// document b. The recognized keys are rcut, bins, sigma (a number, or null to
// disable smoothing) and cpus. Unknown keys are an error. The returned options are validated.
func OptionsFromYAML(b []byte) (*Options, error) {
	o := DefaultOptions()
	var y yamlOptions
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&y); err != nil && !errors.Is(err, io.EOF) {
		return nil, chem.NewError(chem.ErrInvalidParameter, "can't decode options").Wrap(err).Decorated("rdf.OptionsFromYAML")
	}
	if y.Rcut != nil {
		o.Rcut(*y.Rcut)
	}
	if y.Bins != nil {
		o.Bins(*y.Bins)
	}
	if y.Sigma.Kind != 0 {
		var s histo.Smoothing
		if err := y.Sigma.Decode(&s); err != nil {
			return nil, chem.NewError(chem.ErrInvalidParameter, "bad sigma").Wrap(err).Decorated("rdf.OptionsFromYAML")
		}
		o.Smoothing(s)
	}
	if y.Cpus != nil {
		o.Cpus(*y.Cpus)
	}
	if err := o.Validate(); err != nil {
		return nil, chem.ErrDecorate(err, "rdf.OptionsFromYAML")
	}
	return o, nil
}
