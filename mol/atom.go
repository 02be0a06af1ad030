/*
 * atom.go, part of netsuriki.
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

package mol

import (
	"fmt"

	"gonum.org/v1/gonum/unit"
	"gonum.org/v1/gonum/unit/constant"
)

//A map for assigning standard atomic weights (g/mol) to element
//symbols. Main group and common transition and heavy elements are
//present; isotopic composition is the terrestrial standard.
var symbolWeight = map[string]float64{
	"H":  1.008,
	"He": 4.0026,
	"Li": 6.94,
	"Be": 9.0122,
	"B":  10.81,
	"C":  12.011,
	"N":  14.007,
	"O":  15.999,
	"F":  18.998,
	"Ne": 20.180,
	"Na": 22.990,
	"Mg": 24.305,
	"Al": 26.982,
	"Si": 28.085,
	"P":  30.974,
	"S":  32.06,
	"Cl": 35.45,
	"Ar": 39.948,
	"K":  39.098,
	"Ca": 40.078,
	"Sc": 44.956,
	"Ti": 47.867,
	"V":  50.942,
	"Cr": 51.996,
	"Mn": 54.938,
	"Fe": 55.845,
	"Co": 58.933,
	"Ni": 58.693,
	"Cu": 63.546,
	"Zn": 65.38,
	"Ga": 69.723,
	"Ge": 72.630,
	"As": 74.922,
	"Se": 78.971,
	"Br": 79.904,
	"Kr": 83.798,
	"Rb": 85.468,
	"Sr": 87.62,
	"Y":  88.906,
	"Zr": 91.224,
	"Nb": 92.906,
	"Mo": 95.95,
	"Ru": 101.07,
	"Rh": 102.91,
	"Pd": 106.42,
	"Ag": 107.87,
	"Cd": 112.41,
	"In": 114.82,
	"Sn": 118.71,
	"Sb": 121.76,
	"Te": 127.60,
	"I":  126.90,
	"Xe": 131.29,
	"Cs": 132.91,
	"Ba": 137.33,
	"W":  183.84,
	"Pt": 195.08,
	"Au": 196.97,
	"Hg": 200.59,
	"Pb": 207.2,
}

//Atom is one atom of a molecule: its element symbol and the absolute
//mass of a single atom. A zero Mass marks an element the library does
//not know; Molecule.Masses refuses to hand such an atom to the
//thermochemistry.
type Atom struct {
	Symbol string
	Mass   unit.Mass
}

//NewAtom builds an atom of the given element with its standard atomic
//weight. Unknown element symbols fail.
func NewAtom(symbol string) (Atom, error) {
	w, ok := symbolWeight[symbol]
	if !ok {
		return Atom{}, fmt.Errorf("mol/NewAtom: unknown element %q", symbol)
	}
	return Atom{Symbol: symbol, Mass: massOf(w)}, nil
}

//AtomicWeight returns the standard atomic weight of an element in
//g/mol, or false if the element is not in the table.
func AtomicWeight(symbol string) (float64, bool) {
	w, ok := symbolWeight[symbol]
	return w, ok
}

//massOf converts a standard atomic weight in g/mol to the mass of one
//atom, spreading a mole's worth of kilograms over Avogadro's number of
//atoms.
func massOf(weight float64) unit.Mass {
	molar := unit.New(weight*1e-3, unit.Dimensions{unit.MassDim: 1, unit.MoleDim: -1})
	molar.Div(constant.Avogadro.Unit())
	var m unit.Mass
	if err := m.From(molar); err != nil {
		panic(err)
	}
	return m
}
