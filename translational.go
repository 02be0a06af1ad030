/*
 * translational.go, part of netsuriki.
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

//Translational is the ideal gas translational contribution of one mole
//of molecules in a box of molar volume V = RT/p. The pressure is fixed
//when the contribution is built; the temperature stays a per-call
//argument like everywhere else.
type Translational struct {
	mass unit.Mass //one molecule, kg
	p    unit.Pressure
}

//NewTranslational builds the translational contribution of the molecule
//whose atom masses m provides, at pressure p (1 atm if omitted).
func NewTranslational(m Masser, p ...unit.Pressure) (*Translational, error) {
	ei := "NewTranslational"
	masses, err := m.Masses()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ei, err)
	}
	if len(masses) == 0 {
		return nil, fmt.Errorf("%s: molecule has no atoms", ei)
	}
	var tot unit.Mass
	for i, mi := range masses {
		if mi <= 0 {
			return nil, fmt.Errorf("%s: atom %d has non-positive mass %v", ei, i, mi)
		}
		tot += mi
	}
	pr := StandardPressure
	if len(p) > 0 {
		pr = p[0]
	}
	if pr <= 0 {
		return nil, fmt.Errorf("%s: non-positive pressure %v", ei, pr)
	}
	return &Translational{mass: tot, p: pr}, nil
}

func (Tr *Translational) check() {
	if Tr.mass <= 0 {
		panic(ErrMass)
	}
}

//Name returns "Translational".
func (Tr *Translational) Name() string { return "Translational" }

//Mass returns the mass of one molecule.
func (Tr *Translational) Mass() unit.Mass { return Tr.mass }

//Pressure returns the pressure the contribution was built for.
func (Tr *Translational) Pressure() unit.Pressure { return Tr.p }

//thermalFactor returns 2π m k_B T / h², the squared reciprocal thermal
//de Broglie wavelength, freshly built.
func (Tr *Translational) thermalFactor(t unit.Temperature) *unit.Unit {
	x := scalar(2 * math.Pi)
	x.Mul(Tr.mass.Unit()).Mul(constant.Boltzmann.Unit()).Mul(t.Unit())
	x.Div(constant.Planck.Unit().Mul(constant.Planck.Unit()))
	return x
}

//molarVolume returns the volume V = RT/p taken by one mole of ideal
//gas.
func molarVolume(t unit.Temperature, p unit.Pressure) *unit.Unit {
	v := gasConstant().Mul(t.Unit()).Mul(moles(1))
	v.Div(p.Unit())
	return v
}

//PartitionFunction returns q = (2π m k_B T / h²)^{3/2} V. Fractional
//powers have no place in dimensioned arithmetic, so the quantity is
//assembled as its square q² = (2π m k_B T/h²)³ V², which carries
//integer dimensions throughout, is verified dimensionless, and only
//then rooted.
func (Tr *Translational) PartitionFunction(T ...unit.Temperature) unit.Dimless {
	ei := "Translational/PartitionFunction"
	Tr.check()
	t := defaultT(T)
	q2 := Tr.thermalFactor(t)
	q2.Mul(Tr.thermalFactor(t)).Mul(Tr.thermalFactor(t))
	q2.Mul(molarVolume(t, Tr.p)).Mul(molarVolume(t, Tr.p))
	return unit.Dimless(math.Sqrt(mustDimless(q2, ei)))
}

//Helmholtz returns Am = -RT (ln(q) - ln(N_A) + 1). The ln(N_A) is the
//Stirling correction for one mole of indistinguishable molecules.
func (Tr *Translational) Helmholtz(q unit.Dimless, T ...unit.Temperature) chemunit.MolarEnergy {
	ei := "Translational/Helmholtz"
	checkQ(q, ei)
	t := defaultT(T)
	a := gasConstant().Mul(t.Unit())
	a.Mul(scalar(-(math.Log(float64(q)) - lnAvogadro() + 1)))
	return mustMolarEnergy(a, ei)
}

//Gibbs returns Gm = Am + RT, adding the pV work of one mole of ideal
//gas. The identity with Helmholtz is algebraic, not approximate.
func (Tr *Translational) Gibbs(q unit.Dimless, T ...unit.Temperature) chemunit.MolarEnergy {
	ei := "Translational/Gibbs"
	t := defaultT(T)
	g := gasConstant().Mul(t.Unit())
	g.Add(Tr.Helmholtz(q, T...).Unit())
	return mustMolarEnergy(g, ei)
}

//InternalEnergy returns Um = 3/2 RT, the equipartition energy of three
//translational degrees of freedom.
func (Tr *Translational) InternalEnergy(T ...unit.Temperature) chemunit.MolarEnergy {
	ei := "Translational/InternalEnergy"
	t := defaultT(T)
	u := gasConstant().Mul(t.Unit()).Mul(scalar(1.5))
	return mustMolarEnergy(u, ei)
}

//Enthalpy returns Hm = Um + RT = 5/2 RT.
func (Tr *Translational) Enthalpy(T ...unit.Temperature) chemunit.MolarEnergy {
	ei := "Translational/Enthalpy"
	t := defaultT(T)
	h := gasConstant().Mul(t.Unit()).Mul(scalar(2.5))
	return mustMolarEnergy(h, ei)
}

//Entropy returns the Sackur-Tetrode entropy Sm = R (ln(q) - ln(N_A) +
//5/2). The temperature enters only through q, which the caller already
//evaluated.
func (Tr *Translational) Entropy(q unit.Dimless, T ...unit.Temperature) chemunit.MolarEntropy {
	ei := "Translational/Entropy"
	checkQ(q, ei)
	s := gasConstant().Mul(scalar(math.Log(float64(q)) - lnAvogadro() + 2.5))
	return mustMolarEntropy(s, ei)
}

//HeatCapacityV returns CVm = 3/2 R regardless of its arguments.
func (Tr *Translational) HeatCapacityV(T ...unit.Temperature) chemunit.MolarHeatCapacity {
	cv := gasConstant().Mul(scalar(1.5))
	return mustMolarHeatCapacity(cv, "Translational/HeatCapacityV")
}

//HeatCapacityP returns Cpm = CVm + R = 5/2 R regardless of its
//arguments.
func (Tr *Translational) HeatCapacityP(T ...unit.Temperature) chemunit.MolarHeatCapacity {
	cp := gasConstant().Mul(scalar(2.5))
	return mustMolarHeatCapacity(cp, "Translational/HeatCapacityP")
}
