/*
 * inertia.go, part of netsuriki.
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

//MomentOfInertia represents a moment of inertia in kg m².
//Quantum chemistry programs usually print principal moments in amu Å²;
//AmuSquareAngstrom converts from that convention.
type MomentOfInertia float64

const (
	KilogramSquareMetre MomentOfInertia = 1
	AmuSquareAngstrom   MomentOfInertia = 1.66053906660e-47
)

//Unit converts the MomentOfInertia to a *unit.Unit.
func (i MomentOfInertia) Unit() *unit.Unit {
	return unit.New(float64(i), unit.Dimensions{
		unit.MassDim:   1,
		unit.LengthDim: 2,
	})
}

//MomentOfInertia allows MomentOfInertia to implement a MomentOfInertiaer
//interface.
func (i MomentOfInertia) MomentOfInertia() MomentOfInertia {
	return i
}

//From converts the unit into the receiver. From returns an error if there
//is a mismatch in dimension.
func (i *MomentOfInertia) From(u unit.Uniter) error {
	if !unit.DimensionsMatch(u, KilogramSquareMetre) {
		*i = MomentOfInertia(math.NaN())
		return errors.New("Dimension mismatch")
	}
	*i = MomentOfInertia(u.Unit().Value())
	return nil
}

func (i MomentOfInertia) Format(fs fmt.State, c rune) {
	switch c {
	case 'v':
		if fs.Flag('#') {
			fmt.Fprintf(fs, "%T(%v)", i, float64(i))
			return
		}
		fallthrough
	case 'e', 'E', 'f', 'F', 'g', 'G':
		p, pOk := fs.Precision()
		if pOk {
			fmt.Fprintf(fs, "%.*"+string(c), p, float64(i))
		} else {
			fmt.Fprintf(fs, "%"+string(c), float64(i))
		}
		fmt.Fprint(fs, " kg m^2")
	default:
		fmt.Fprintf(fs, "%%!%c(%T=%g kg m^2)", c, i, float64(i))
	}
}
