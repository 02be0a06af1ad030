/*
 * molarenergy.go, part of netsuriki.
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

package chemunit

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/unit"
)

//MolarEnergy represents an energy per amount of substance in J/mol.
//Helmholtz and Gibbs free energies, internal energies and enthalpies of
//one mole of molecules are MolarEnergy values.
type MolarEnergy float64

const (
	JoulePerMole       MolarEnergy = 1
	KilojoulePerMole   MolarEnergy = 1e3
	KilocaloriePerMole MolarEnergy = 4184
)

//Unit converts the MolarEnergy to a *unit.Unit.
func (e MolarEnergy) Unit() *unit.Unit {
	return unit.New(float64(e), unit.Dimensions{
		unit.MassDim:   1,
		unit.LengthDim: 2,
		unit.TimeDim:   -2,
		unit.MoleDim:   -1,
	})
}

//MolarEnergy allows MolarEnergy to implement a MolarEnergyer interface.
func (e MolarEnergy) MolarEnergy() MolarEnergy {
	return e
}

//From converts the unit into the receiver. From returns an error if there
//is a mismatch in dimension.
func (e *MolarEnergy) From(u unit.Uniter) error {
	if !unit.DimensionsMatch(u, JoulePerMole) {
		*e = MolarEnergy(math.NaN())
		return errors.New("Dimension mismatch")
	}
	*e = MolarEnergy(u.Unit().Value())
	return nil
}

func (e MolarEnergy) Format(fs fmt.State, c rune) {
	switch c {
	case 'v':
		if fs.Flag('#') {
			fmt.Fprintf(fs, "%T(%v)", e, float64(e))
			return
		}
		fallthrough
	case 'e', 'E', 'f', 'F', 'g', 'G':
		p, pOk := fs.Precision()
		if pOk {
			fmt.Fprintf(fs, "%.*"+string(c), p, float64(e))
		} else {
			fmt.Fprintf(fs, "%"+string(c), float64(e))
		}
		fmt.Fprint(fs, " J mol^-1")
	default:
		fmt.Fprintf(fs, "%%!%c(%T=%g J mol^-1)", c, e, float64(e))
	}
}
