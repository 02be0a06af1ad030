/*
 * errors.go, part of netsuriki.
 *
 *
 * Copyright 2024 mizu-bai
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

package netsuriki

import (
	"gonum.org/v1/gonum/unit"

	"github.com/mizu-bai/Netsuriki/chemunit"
)

//Errors in this package come in two flavors. Constructors and parsers,
//which take data from the outside world, return a regular error. The
//thermodynamic functions themselves are considered fundamental: once a
//contribution exists they only fail on conditions that make the model
//meaningless (a quantity of the wrong dimension, the logarithm of a
//non-positive partition function, an evaluation with no normal modes),
//and then they panic with one of the messages below. A dimension
//mismatch means a unit bookkeeping slip; the remaining messages mean a
//logically invalid model input. Neither is ever masked by returning NaN.

//PanicMsg is a message used for panics. It satisfies the error
//interface, but is only ever thrown, never returned.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrDimension    = PanicMsg("netsuriki: Dimension mismatch")
	ErrNonPositiveQ = PanicMsg("netsuriki: logarithm of a non-positive partition function")
	ErrNoModes      = PanicMsg("netsuriki: vibrational contribution evaluated with no normal modes")
	ErrMultiplicity = PanicMsg("netsuriki: spin multiplicity is not a positive integer")
	ErrMass         = PanicMsg("netsuriki: translational contribution without a positive molecular mass")
	ErrTemperature  = PanicMsg("netsuriki: temperature must be positive")
	ErrPointGroup   = PanicMsg("netsuriki: invalid or unset point group")
	ErrMoment       = PanicMsg("netsuriki: moment of inertia must be positive")
	ErrWavenumber   = PanicMsg("netsuriki: wavenumber must be positive")
)

//decorated appends the offending call site to a panic message.
func decorated(msg PanicMsg, caller string) PanicMsg {
	return PanicMsg(string(msg) + " in " + caller)
}

//mustDimless checks that u carries no dimensions and returns its bare
//value. Every partition function goes through here, which is what
//enforces that all unit factors cancel exactly.
func mustDimless(u *unit.Unit, caller string) float64 {
	var d unit.Dimless
	if err := d.From(u); err != nil {
		panic(decorated(ErrDimension, caller))
	}
	return float64(d)
}

//mustTemperature converts u to a temperature or panics.
func mustTemperature(u *unit.Unit, caller string) unit.Temperature {
	var t unit.Temperature
	if err := t.From(u); err != nil {
		panic(decorated(ErrDimension, caller))
	}
	return t
}

//mustMolarEnergy converts u to a molar energy or panics.
func mustMolarEnergy(u *unit.Unit, caller string) chemunit.MolarEnergy {
	var e chemunit.MolarEnergy
	if err := e.From(u); err != nil {
		panic(decorated(ErrDimension, caller))
	}
	return e
}

//mustMolarEntropy converts u to a molar entropy or panics.
func mustMolarEntropy(u *unit.Unit, caller string) chemunit.MolarEntropy {
	var s chemunit.MolarEntropy
	if err := s.From(u); err != nil {
		panic(decorated(ErrDimension, caller))
	}
	return s
}

//mustMolarHeatCapacity converts u to a molar heat capacity or panics.
func mustMolarHeatCapacity(u *unit.Unit, caller string) chemunit.MolarHeatCapacity {
	var c chemunit.MolarHeatCapacity
	if err := c.From(u); err != nil {
		panic(decorated(ErrDimension, caller))
	}
	return c
}

//checkQ panics unless q is inside the domain of the logarithm. The
//comparison is written so that NaN fails too.
func checkQ(q unit.Dimless, caller string) {
	if !(float64(q) > 0) {
		panic(decorated(ErrNonPositiveQ, caller))
	}
}
