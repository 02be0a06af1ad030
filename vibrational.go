/*
 * vibrational.go, part of netsuriki.
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
	"fmt"
	"math"

	"gonum.org/v1/gonum/unit"
	"gonum.org/v1/gonum/unit/constant"

	"github.com/mizu-bai/Netsuriki/chemunit"
)

//Vibrational is the harmonic oscillator vibrational contribution, a sum
//over independent normal modes given as wavenumbers.
//
//Two energy references coexist here on purpose. The partition function
//takes the vibrational ground state as its energy zero, which removes
//the exp(-Θ/2T) numerator factor. InternalEnergy and Enthalpy instead
//count from the bottom of the potential well and keep the zero point
//1/2 term. This is the standard textbook convention; the two references
//must not be harmonized.
type Vibrational struct {
	modes []chemunit.Wavenumber
}

//NewVibrational builds the vibrational contribution for the given
//normal modes. The list must hold at least one mode; there is no such
//thing as a product over zero oscillators. Non-positive wavenumbers
//(imaginary frequencies from an unconverged geometry) fail too.
func NewVibrational(modes []chemunit.Wavenumber) (*Vibrational, error) {
	ei := "NewVibrational"
	if len(modes) == 0 {
		return nil, fmt.Errorf("%s: empty normal mode list", ei)
	}
	ms := make([]chemunit.Wavenumber, len(modes))
	copy(ms, modes)
	for i, nu := range ms {
		if nu <= 0 {
			return nil, fmt.Errorf("%s: mode %d has non-positive wavenumber %v; imaginary frequencies have no thermochemistry", ei, i, nu)
		}
	}
	return &Vibrational{modes: ms}, nil
}

func (V *Vibrational) check() {
	if len(V.modes) == 0 {
		panic(ErrNoModes)
	}
}

//VibrationalTemperature returns the characteristic temperature
//Θ = h c₀ ν̃ / k_B of one normal mode.
func VibrationalTemperature(nu chemunit.Wavenumber) unit.Temperature {
	ei := "VibrationalTemperature"
	if nu <= 0 {
		panic(ErrWavenumber)
	}
	th := constant.Planck.Unit().Mul(constant.LightSpeedInVacuum.Unit()).Mul(nu.Unit())
	th.Div(constant.Boltzmann.Unit())
	return mustTemperature(th, ei)
}

//Name returns "Vibrational".
func (V *Vibrational) Name() string { return "Vibrational" }

//Modes returns a copy of the normal mode list.
func (V *Vibrational) Modes() []chemunit.Wavenumber {
	ms := make([]chemunit.Wavenumber, len(V.modes))
	copy(ms, V.modes)
	return ms
}

//ratio returns Θ/T for one mode, dimension checked.
func (V *Vibrational) ratio(nu chemunit.Wavenumber, t unit.Temperature) float64 {
	r := VibrationalTemperature(nu).Unit().Div(t.Unit())
	return mustDimless(r, "Vibrational/ratio")
}

//PartitionFunction returns q = Π 1/(1 - exp(-Θi/T)) over all modes,
//with the vibrational ground state as energy zero.
func (V *Vibrational) PartitionFunction(T ...unit.Temperature) unit.Dimless {
	V.check()
	t := defaultT(T)
	q := 1.0
	for _, nu := range V.modes {
		x := V.ratio(nu, t)
		q *= 1 / -math.Expm1(-x)
	}
	return unit.Dimless(q)
}

//Helmholtz returns Am = -RT ln(q).
func (V *Vibrational) Helmholtz(q unit.Dimless, T ...unit.Temperature) chemunit.MolarEnergy {
	return freeEnergy(q, defaultT(T), "Vibrational/Helmholtz")
}

//Gibbs forwards to Helmholtz: vibration contributes no pressure-volume
//term.
func (V *Vibrational) Gibbs(q unit.Dimless, T ...unit.Temperature) chemunit.MolarEnergy {
	return V.Helmholtz(q, T...)
}

//InternalEnergy returns Um = Σ R Θi (1/2 + 1/(exp(Θi/T)-1)). Unlike
//the partition function it counts from the well bottom and keeps the
//zero point term.
func (V *Vibrational) InternalEnergy(T ...unit.Temperature) chemunit.MolarEnergy {
	ei := "Vibrational/InternalEnergy"
	V.check()
	t := defaultT(T)
	var acc unit.Temperature
	for _, nu := range V.modes {
		th := VibrationalTemperature(nu)
		x := mustDimless(th.Unit().Div(t.Unit()), ei)
		acc += th * unit.Temperature(0.5+1/math.Expm1(x))
	}
	u := gasConstant().Mul(acc.Unit())
	return mustMolarEnergy(u, ei)
}

//Enthalpy forwards to InternalEnergy: Hm and Um coincide for this
//contribution.
func (V *Vibrational) Enthalpy(T ...unit.Temperature) chemunit.MolarEnergy {
	return V.InternalEnergy(T...)
}

//ZeroPointEnergy returns Σ R Θi / 2, the molar energy of the modes'
//ground states above the well bottom. It is the T → 0 limit of
//InternalEnergy.
func (V *Vibrational) ZeroPointEnergy() chemunit.MolarEnergy {
	ei := "Vibrational/ZeroPointEnergy"
	V.check()
	var acc unit.Temperature
	for _, nu := range V.modes {
		acc += VibrationalTemperature(nu) / 2
	}
	u := gasConstant().Mul(acc.Unit())
	return mustMolarEnergy(u, ei)
}

//Entropy returns Sm = Σ R (Θi/T/(exp(Θi/T)-1) - ln(1 - exp(-Θi/T))).
//The mode list alone determines the vibrational entropy; the q argument
//is ignored.
func (V *Vibrational) Entropy(q unit.Dimless, T ...unit.Temperature) chemunit.MolarEntropy {
	ei := "Vibrational/Entropy"
	V.check()
	t := defaultT(T)
	sum := 0.0
	for _, nu := range V.modes {
		x := V.ratio(nu, t)
		sum += x/math.Expm1(x) - math.Log(-math.Expm1(-x))
	}
	s := gasConstant().Mul(scalar(sum))
	return mustMolarEntropy(s, ei)
}

//HeatCapacityV returns CVm = Σ R (Θi/T)² exp(Θi/T)/(exp(Θi/T)-1)².
//Each term is computed as x² exp(-x)/(1-exp(-x))², which is the same
//number but stays finite when exp(Θi/T) overflows at low temperature;
//there the term underflows to its correct limit 0.
func (V *Vibrational) HeatCapacityV(T ...unit.Temperature) chemunit.MolarHeatCapacity {
	ei := "Vibrational/HeatCapacityV"
	V.check()
	t := defaultT(T)
	sum := 0.0
	for _, nu := range V.modes {
		x := V.ratio(nu, t)
		den := math.Expm1(-x)
		sum += x * x * math.Exp(-x) / (den * den)
	}
	cv := gasConstant().Mul(scalar(sum))
	return mustMolarHeatCapacity(cv, ei)
}

//HeatCapacityP forwards to HeatCapacityV: the model draws no
//pressure-volume distinction for vibration.
func (V *Vibrational) HeatCapacityP(T ...unit.Temperature) chemunit.MolarHeatCapacity {
	return V.HeatCapacityV(T...)
}
