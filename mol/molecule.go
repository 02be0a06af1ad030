/*
 * molecule.go, part of netsuriki.
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

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/unit"
	"gonum.org/v1/gonum/unit/constant"
)

//Molecule is a rigid molecule: atoms, one set of Cartesian coordinates
//in Å (one row per atom), and the electronic bookkeeping the
//thermochemistry asks about. It satisfies the netsuriki Molecule
//interface.
type Molecule struct {
	atoms  []Atom
	coords *mat.Dense
	charge int
	multi  int
	group  string
}

//New builds a molecule from its atoms and an len(atoms)x3 coordinate
//matrix in Å. Both are copied. The spin multiplicity must be at least
//1; the point group symbol is kept as given and only parsed when the
//rotational contribution needs it.
func New(atoms []Atom, coords *mat.Dense, charge, multi int, group string) (*Molecule, error) {
	ei := "mol/New"
	if len(atoms) == 0 {
		return nil, fmt.Errorf("%s: no atoms", ei)
	}
	if coords == nil {
		return nil, fmt.Errorf("%s: nil coordinates", ei)
	}
	r, c := coords.Dims()
	if r != len(atoms) || c != 3 {
		return nil, fmt.Errorf("%s: coordinates are %dx%d, want %dx3", ei, r, c, len(atoms))
	}
	if multi < 1 {
		return nil, fmt.Errorf("%s: spin multiplicity must be a positive integer, got %d", ei, multi)
	}
	M := new(Molecule)
	M.atoms = make([]Atom, len(atoms))
	copy(M.atoms, atoms)
	M.coords = mat.DenseCopyOf(coords)
	M.charge = charge
	M.multi = multi
	M.group = group
	return M, nil
}

//Len returns the number of atoms.
func (M *Molecule) Len() int {
	return len(M.atoms)
}

//Atom returns the i-th atom.
func (M *Molecule) Atom(i int) Atom {
	return M.atoms[i]
}

//Coords returns a copy of the coordinate matrix, in Å.
func (M *Molecule) Coords() *mat.Dense {
	return mat.DenseCopyOf(M.coords)
}

//Charge gets the total charge.
func (M *Molecule) Charge() int {
	return M.charge
}

//SetCharge sets the total charge.
func (M *Molecule) SetCharge(q int) {
	M.charge = q
}

//Multi gets the ground state spin multiplicity.
func (M *Molecule) Multi() int {
	return M.multi
}

//SetMulti sets the ground state spin multiplicity. Values below 1 are
//rejected downstream, not here.
func (M *Molecule) SetMulti(g int) {
	M.multi = g
}

//Group gets the point group symbol.
func (M *Molecule) Group() string {
	return M.group
}

//SetGroup sets the point group symbol. Like SetMulti it stores the
//value as given; the rotational contribution validates it.
func (M *Molecule) SetGroup(s string) {
	M.group = s
}

//Masses returns the absolute mass of every atom. An atom whose mass is
//not positive, typically an element the XYZ reader did not recognize,
//fails the whole molecule.
func (M *Molecule) Masses() ([]unit.Mass, error) {
	ms := make([]unit.Mass, len(M.atoms))
	for i, a := range M.atoms {
		if a.Mass <= 0 {
			return nil, fmt.Errorf("mol/Masses: atom %d (%s) has non-positive mass %v", i, a.Symbol, a.Mass)
		}
		ms[i] = a.Mass
	}
	return ms, nil
}

//MolarMass returns the molar mass in g/mol.
func (M *Molecule) MolarMass() (float64, error) {
	ms, err := M.Masses()
	if err != nil {
		return 0, fmt.Errorf("mol/MolarMass: %w", err)
	}
	var tot unit.Mass
	for _, m := range ms {
		tot += m
	}
	molar := tot.Unit().Mul(constant.Avogadro.Unit())
	return molar.Value() * 1e3, nil
}

//CenterOfMass returns the mass weighted mean position, in Å.
func (M *Molecule) CenterOfMass() ([3]float64, error) {
	var com [3]float64
	ms, err := M.Masses()
	if err != nil {
		return com, fmt.Errorf("mol/CenterOfMass: %w", err)
	}
	var tot float64
	for i, m := range ms {
		w := float64(m)
		tot += w
		for k := 0; k < 3; k++ {
			com[k] += w * M.coords.At(i, k)
		}
	}
	for k := 0; k < 3; k++ {
		com[k] /= tot
	}
	return com, nil
}
