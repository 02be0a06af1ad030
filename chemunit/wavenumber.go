/*
 * wavenumber.go, part of netsuriki.
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

//Wavenumber represents a spectroscopic wavenumber (reciprocal wavelength)
//in reciprocal metres. Vibrational mode positions are conventionally
//reported in cm^-1; use PerCentimetre to build them:
//
//	nu := 1595 * chemunit.PerCentimetre
type Wavenumber float64

const (
	PerMetre      Wavenumber = 1
	PerCentimetre Wavenumber = 100
)

//Unit converts the Wavenumber to a *unit.Unit.
func (w Wavenumber) Unit() *unit.Unit {
	return unit.New(float64(w), unit.Dimensions{
		unit.LengthDim: -1,
	})
}

//Wavenumber allows Wavenumber to implement a Wavenumberer interface.
func (w Wavenumber) Wavenumber() Wavenumber {
	return w
}

//From converts the unit into the receiver. From returns an error if there
//is a mismatch in dimension.
func (w *Wavenumber) From(u unit.Uniter) error {
	if !unit.DimensionsMatch(u, PerMetre) {
		*w = Wavenumber(math.NaN())
		return errors.New("Dimension mismatch")
	}
	*w = Wavenumber(u.Unit().Value())
	return nil
}

func (w Wavenumber) Format(fs fmt.State, c rune) {
	switch c {
	case 'v':
		if fs.Flag('#') {
			fmt.Fprintf(fs, "%T(%v)", w, float64(w))
			return
		}
		fallthrough
	case 'e', 'E', 'f', 'F', 'g', 'G':
		p, pOk := fs.Precision()
		if pOk {
			fmt.Fprintf(fs, "%.*"+string(c), p, float64(w))
		} else {
			fmt.Fprintf(fs, "%"+string(c), float64(w))
		}
		fmt.Fprint(fs, " m^-1")
	default:
		fmt.Fprintf(fs, "%%!%c(%T=%g m^-1)", c, w, float64(w))
	}
}
