/*
 * constants.go, part of netsuriki.
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
	"math"

	"gonum.org/v1/gonum/unit"
	"gonum.org/v1/gonum/unit/constant"
)

//The physical constants come from gonum's unit/constant package (2019 SI
//exact values). gonum unit arithmetic modifies its receiver in place, so
//none of these may live in a package variable; each helper builds a
//fresh quantity per call.

//scalar wraps a bare number as a dimensionless quantity so it can enter
//dimensioned arithmetic.
func scalar(v float64) *unit.Unit {
	return unit.New(v, unit.Dimensions{})
}

//moles returns an amount of substance of n moles.
func moles(n float64) *unit.Unit {
	return unit.New(n, unit.Dimensions{unit.MoleDim: 1})
}

//gasConstant returns the molar gas constant R = k_B N_A in J/(K mol).
func gasConstant() *unit.Unit {
	return constant.Boltzmann.Unit().Mul(constant.Avogadro.Unit())
}

//avogadroNumber returns N_A stripped to a bare count, the number of
//molecules whose translational states one mole shares.
func avogadroNumber() float64 {
	return mustDimless(constant.Avogadro.Unit().Mul(moles(1)), "avogadroNumber")
}

//lnAvogadro returns ln(N_A), the Stirling correction term for the
//indistinguishability of one mole of identical molecules.
func lnAvogadro() float64 {
	return math.Log(avogadroNumber())
}
