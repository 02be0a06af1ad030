/*
 * electronic.go, part of netsuriki.
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

//Electronic is the ground state electronic contribution. Only the
//ground state is assumed populated, so its partition function is the
//spin degeneracy and nothing depends on temperature. A singlet
//(multiplicity 1) contributes exactly zero free energy and entropy.
type Electronic struct {
	multi int
}

//NewElectronic builds the electronic contribution for a molecule with
//the given ground state spin multiplicity. A degeneracy below 1 is
//meaningless and fails.
func NewElectronic(m Multiplet) (*Electronic, error) {
	ei := "NewElectronic"
	g := m.Multi()
	if g < 1 {
		return nil, fmt.Errorf("%s: spin multiplicity must be a positive integer, got %d", ei, g)
	}
	return &Electronic{multi: g}, nil
}

func (E *Electronic) check() {
	if E.multi < 1 {
		panic(ErrMultiplicity)
	}
}

//Name returns "Electronic".
func (E *Electronic) Name() string { return "Electronic" }

//Multi returns the spin multiplicity.
func (E *Electronic) Multi() int { return E.multi }

//PartitionFunction returns the ground state spin degeneracy. The
//temperature argument is accepted and ignored; with only the ground
//state populated there is nothing for T to weight.
func (E *Electronic) PartitionFunction(T ...unit.Temperature) unit.Dimless {
	E.check()
	return unit.Dimless(E.multi)
}

//Helmholtz returns Am = -RT ln(q).
func (E *Electronic) Helmholtz(q unit.Dimless, T ...unit.Temperature) chemunit.MolarEnergy {
	return freeEnergy(q, defaultT(T), "Electronic/Helmholtz")
}

//Gibbs forwards to Helmholtz: the electronic contribution has no
//pressure-volume term, so Gm and Am coincide.
func (E *Electronic) Gibbs(q unit.Dimless, T ...unit.Temperature) chemunit.MolarEnergy {
	return E.Helmholtz(q, T...)
}

//InternalEnergy is identically zero: an exclusively populated ground
//state stores no thermal energy.
func (E *Electronic) InternalEnergy(T ...unit.Temperature) chemunit.MolarEnergy {
	return 0
}

//Enthalpy is identically zero, like InternalEnergy.
func (E *Electronic) Enthalpy(T ...unit.Temperature) chemunit.MolarEnergy {
	return 0
}

//Entropy returns Sm = R ln(q), the degeneracy entropy.
func (E *Electronic) Entropy(q unit.Dimless, T ...unit.Temperature) chemunit.MolarEntropy {
	ei := "Electronic/Entropy"
	checkQ(q, ei)
	s := gasConstant().Mul(scalar(math.Log(float64(q))))
	return mustMolarEntropy(s, ei)
}

//HeatCapacityV is identically zero.
func (E *Electronic) HeatCapacityV(T ...unit.Temperature) chemunit.MolarHeatCapacity {
	return 0
}

//HeatCapacityP is identically zero.
func (E *Electronic) HeatCapacityP(T ...unit.Temperature) chemunit.MolarHeatCapacity {
	return 0
}
