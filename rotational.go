/*
 * rotational.go, part of netsuriki.
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

//Rotational is the rigid rotor rotational contribution. The shape of
//the molecule decides the formula: a single atom does not rotate, a
//linear molecule has one rotational constant, and a nonlinear one has
//three.
type Rotational struct {
	single  bool
	moments [3]chemunit.MomentOfInertia
	group   Group
	sigma   int
}

//NewRotational builds the rotational contribution of molecule m. The
//point group symbol must belong to the supported enumeration and the
//principal moments must be positive where the shape requires them (the
//middle one for a linear molecule, all three otherwise).
func NewRotational(m Rotor) (*Rotational, error) {
	ei := "NewRotational"
	if m.Len() < 1 {
		return nil, fmt.Errorf("%s: molecule has no atoms", ei)
	}
	g, err := ParseGroup(m.Group())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ei, err)
	}
	Ro := &Rotational{group: g, sigma: g.SymmetryNumber()}
	if m.Len() == 1 {
		Ro.single = true
		return Ro, nil
	}
	Ro.moments, err = m.Moments()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ei, err)
	}
	if g.Linear() {
		if Ro.moments[1] <= 0 {
			return nil, fmt.Errorf("%s: linear molecule needs a positive middle principal moment, got %v", ei, Ro.moments[1])
		}
	} else {
		for i, I := range Ro.moments {
			if I <= 0 {
				return nil, fmt.Errorf("%s: nonlinear molecule needs three positive principal moments, moment %d is %v", ei, i, I)
			}
		}
	}
	return Ro, nil
}

//RotationalTemperature returns the characteristic temperature
//Θ = h² / (8π² I k_B) of one principal moment of inertia.
func RotationalTemperature(I chemunit.MomentOfInertia) unit.Temperature {
	ei := "RotationalTemperature"
	if I <= 0 {
		panic(ErrMoment)
	}
	th := constant.Planck.Unit().Mul(constant.Planck.Unit())
	th.Div(scalar(8 * math.Pi * math.Pi)).Div(I.Unit()).Div(constant.Boltzmann.Unit())
	return mustTemperature(th, ei)
}

//Name returns "Rotational".
func (Ro *Rotational) Name() string { return "Rotational" }

//Group returns the parsed point group.
func (Ro *Rotational) Group() Group { return Ro.group }

//SymmetryNumber returns the rotational symmetry number σ.
func (Ro *Rotational) SymmetryNumber() int { return Ro.sigma }

//CharacteristicTemperatures returns the Θ values the partition function
//uses: three for a nonlinear molecule, one for a linear molecule, none
//for a single atom.
func (Ro *Rotational) CharacteristicTemperatures() []unit.Temperature {
	switch {
	case Ro.single:
		return nil
	case Ro.group.Linear():
		return []unit.Temperature{RotationalTemperature(Ro.moments[1])}
	}
	ths := make([]unit.Temperature, 3)
	for i, I := range Ro.moments {
		ths[i] = RotationalTemperature(I)
	}
	return ths
}

//PartitionFunction branches on molecular shape. A single atom has no
//rotational degrees of freedom; by convention its partition function
//degenerates to 0 rather than being undefined. That zero is a sentinel,
//not an error: it must never reach Helmholtz, Gibbs or Entropy, which
//panic on it. A linear molecule uses q = T/(σΘ) on the middle principal
//moment; a nonlinear one uses q = √π/σ T^{3/2}/√(Θa Θb Θc), assembled
//as its square so the dimension bookkeeping stays integer until the
//final root.
func (Ro *Rotational) PartitionFunction(T ...unit.Temperature) unit.Dimless {
	ei := "Rotational/PartitionFunction"
	t := defaultT(T)
	if Ro.single {
		return 0
	}
	if Ro.group.Linear() {
		den := scalar(float64(Ro.sigma))
		den.Mul(RotationalTemperature(Ro.moments[1]).Unit())
		q := t.Unit().Div(den)
		return unit.Dimless(mustDimless(q, ei))
	}
	q2 := scalar(math.Pi / float64(Ro.sigma*Ro.sigma))
	q2.Mul(t.Unit()).Mul(t.Unit()).Mul(t.Unit())
	q2.Div(RotationalTemperature(Ro.moments[0]).Unit())
	q2.Div(RotationalTemperature(Ro.moments[1]).Unit())
	q2.Div(RotationalTemperature(Ro.moments[2]).Unit())
	return unit.Dimless(math.Sqrt(mustDimless(q2, ei)))
}

//Helmholtz returns Am = -RT ln(q).
func (Ro *Rotational) Helmholtz(q unit.Dimless, T ...unit.Temperature) chemunit.MolarEnergy {
	return freeEnergy(q, defaultT(T), "Rotational/Helmholtz")
}

//Gibbs forwards to Helmholtz: rotation contributes no pressure-volume
//term.
func (Ro *Rotational) Gibbs(q unit.Dimless, T ...unit.Temperature) chemunit.MolarEnergy {
	return Ro.Helmholtz(q, T...)
}

//InternalEnergy returns Um = 3/2 RT, the equipartition energy of the
//rigid rotor.
func (Ro *Rotational) InternalEnergy(T ...unit.Temperature) chemunit.MolarEnergy {
	ei := "Rotational/InternalEnergy"
	t := defaultT(T)
	u := gasConstant().Mul(t.Unit()).Mul(scalar(1.5))
	return mustMolarEnergy(u, ei)
}

//Enthalpy forwards to InternalEnergy: Hm and Um coincide for this
//contribution.
func (Ro *Rotational) Enthalpy(T ...unit.Temperature) chemunit.MolarEnergy {
	return Ro.InternalEnergy(T...)
}

//Entropy returns Sm = R (3/2 + ln(q)).
func (Ro *Rotational) Entropy(q unit.Dimless, T ...unit.Temperature) chemunit.MolarEntropy {
	ei := "Rotational/Entropy"
	checkQ(q, ei)
	s := gasConstant().Mul(scalar(1.5 + math.Log(float64(q))))
	return mustMolarEntropy(s, ei)
}

//HeatCapacityV returns CVm = 3/2 R regardless of its arguments.
func (Ro *Rotational) HeatCapacityV(T ...unit.Temperature) chemunit.MolarHeatCapacity {
	cv := gasConstant().Mul(scalar(1.5))
	return mustMolarHeatCapacity(cv, "Rotational/HeatCapacityV")
}

//HeatCapacityP forwards to HeatCapacityV: the model draws no
//pressure-volume distinction for rotation.
func (Ro *Rotational) HeatCapacityP(T ...unit.Temperature) chemunit.MolarHeatCapacity {
	return Ro.HeatCapacityV(T...)
}
