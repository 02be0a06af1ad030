/*
 * contribution.go, part of netsuriki.
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

	"github.com/mizu-bai/Netsuriki/chemunit"
)

//Contribution is one additive piece of the thermochemistry of a mole of
//ideal gas molecules: translational, rotational, vibrational or
//electronic. All four expose the same surface. The usual call pattern
//computes the partition function once and feeds it to the q-taking
//methods:
//
//	q := c.PartitionFunction(T)
//	a := c.Helmholtz(q, T)
//
//The trailing temperature is optional everywhere and defaults to
//298.15 K. The q-taking methods accept any positive q, not only the
//one the same contribution computed; a method that actually reads q
//panics when it is not positive.
type Contribution interface {
	//Name identifies the contribution in reports.
	Name() string
	//PartitionFunction returns the dimensionless q at temperature T.
	PartitionFunction(T ...unit.Temperature) unit.Dimless
	//Helmholtz returns the molar Helmholtz free energy built from q at
	//temperature T.
	Helmholtz(q unit.Dimless, T ...unit.Temperature) chemunit.MolarEnergy
	//Gibbs returns the molar Gibbs free energy built from q at
	//temperature T.
	Gibbs(q unit.Dimless, T ...unit.Temperature) chemunit.MolarEnergy
	//InternalEnergy returns the molar internal energy at T.
	InternalEnergy(T ...unit.Temperature) chemunit.MolarEnergy
	//Enthalpy returns the molar enthalpy at T.
	Enthalpy(T ...unit.Temperature) chemunit.MolarEnergy
	//Entropy returns the molar entropy. Which of q and T enter depends
	//on the contribution.
	Entropy(q unit.Dimless, T ...unit.Temperature) chemunit.MolarEntropy
	//HeatCapacityV returns the molar heat capacity at constant volume.
	HeatCapacityV(T ...unit.Temperature) chemunit.MolarHeatCapacity
	//HeatCapacityP returns the molar heat capacity at constant
	//pressure.
	HeatCapacityP(T ...unit.Temperature) chemunit.MolarHeatCapacity
}

//Multiplet is satisfied by anything with a ground state spin
//multiplicity, such as mol.Molecule.
type Multiplet interface {
	Multi() int
}

//Masser provides the absolute masses of the atoms of one molecule.
type Masser interface {
	Masses() ([]unit.Mass, error)
}

//Rotor describes a molecule as a rigid rotor: how many atoms it has,
//its point group symbol, and its principal moments of inertia in
//ascending order (for a linear molecule the first is zero and the
//middle one carries the perpendicular rotation).
type Rotor interface {
	Len() int
	Group() string
	Moments() ([3]chemunit.MomentOfInertia, error)
}

//Molecule is the full descriptor the aggregator needs. mol.Molecule
//satisfies it.
type Molecule interface {
	Multiplet
	Masser
	Rotor
}

//freeEnergy is the -RT ln(q) all four contributions share.
func freeEnergy(q unit.Dimless, t unit.Temperature, caller string) chemunit.MolarEnergy {
	checkQ(q, caller)
	a := gasConstant().Mul(t.Unit())
	a.Mul(scalar(-math.Log(float64(q))))
	return mustMolarEnergy(a, caller)
}

//Properties collects the partition function and the seven state
//functions of one contribution, or their totals.
type Properties struct {
	Q              float64
	Helmholtz      chemunit.MolarEnergy
	Gibbs          chemunit.MolarEnergy
	InternalEnergy chemunit.MolarEnergy
	Enthalpy       chemunit.MolarEnergy
	Entropy        chemunit.MolarEntropy
	HeatCapacityV  chemunit.MolarHeatCapacity
	HeatCapacityP  chemunit.MolarHeatCapacity
}

//Evaluate computes the partition function of c at temperature T
//(298.15 K if omitted) and derives every state function from it. Do not
//call it on a rotational contribution of a single atom: its q is the
//degenerate 0 and the free energies panic on it. Contributions never
//returns such a set.
func Evaluate(c Contribution, T ...unit.Temperature) Properties {
	q := c.PartitionFunction(T...)
	return Properties{
		Q:              float64(q),
		Helmholtz:      c.Helmholtz(q, T...),
		Gibbs:          c.Gibbs(q, T...),
		InternalEnergy: c.InternalEnergy(T...),
		Enthalpy:       c.Enthalpy(T...),
		Entropy:        c.Entropy(q, T...),
		HeatCapacityV:  c.HeatCapacityV(T...),
		HeatCapacityP:  c.HeatCapacityP(T...),
	}
}

//Totals evaluates every contribution at the same temperature and
//combines them: partition functions multiply, state functions add.
func Totals(cs []Contribution, T ...unit.Temperature) Properties {
	tot := Properties{Q: 1}
	for _, c := range cs {
		p := Evaluate(c, T...)
		tot.Q *= p.Q
		tot.Helmholtz += p.Helmholtz
		tot.Gibbs += p.Gibbs
		tot.InternalEnergy += p.InternalEnergy
		tot.Enthalpy += p.Enthalpy
		tot.Entropy += p.Entropy
		tot.HeatCapacityV += p.HeatCapacityV
		tot.HeatCapacityP += p.HeatCapacityP
	}
	return tot
}

//Contributions assembles the contribution set that applies to molecule
//m with the given vibrational modes, at pressure p (1 atm if omitted).
//A single atom gets no rotational contribution (its rotational q is the
//degenerate 0, which must not reach a logarithm) and can have no
//vibrational modes; a polyatomic molecule without modes simply goes
//without the vibrational part.
func Contributions(m Molecule, modes []chemunit.Wavenumber, p ...unit.Pressure) ([]Contribution, error) {
	ei := "netsuriki/Contributions"
	single := m.Len() == 1
	if single && len(modes) > 0 {
		return nil, fmt.Errorf("%s: a single atom has no vibrational modes, got %d", ei, len(modes))
	}
	tr, err := NewTranslational(m, p...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ei, err)
	}
	cs := []Contribution{tr}
	if !single {
		ro, err := NewRotational(m)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ei, err)
		}
		cs = append(cs, ro)
	}
	if len(modes) > 0 {
		vib, err := NewVibrational(modes)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ei, err)
		}
		cs = append(cs, vib)
	}
	el, err := NewElectronic(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ei, err)
	}
	cs = append(cs, el)
	return cs, nil
}
