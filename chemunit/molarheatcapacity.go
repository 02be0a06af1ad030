/*
 * molarheatcapacity.go, part of netsuriki.
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

//MolarHeatCapacity represents a heat capacity per amount of substance in
//J/(K mol), dimensionally identical to MolarEntropy but a distinct kind.
type MolarHeatCapacity float64

const (
	JoulePerKelvinMole MolarHeatCapacity = 1
)

//Unit converts the MolarHeatCapacity to a *unit.Unit.
func (c MolarHeatCapacity) Unit() *unit.Unit {
	return unit.New(float64(c), unit.Dimensions{
		unit.MassDim:        1,
		unit.LengthDim:      2,
		unit.TimeDim:        -2,
		unit.TemperatureDim: -1,
		unit.MoleDim:        -1,
	})
}

//MolarHeatCapacity allows MolarHeatCapacity to implement a
//MolarHeatCapacityer interface.
func (c MolarHeatCapacity) MolarHeatCapacity() MolarHeatCapacity {
	return c
}

//From converts the unit into the receiver. From returns an error if there
//is a mismatch in dimension.
func (c *MolarHeatCapacity) From(u unit.Uniter) error {
	if !unit.DimensionsMatch(u, JoulePerKelvinMole) {
		*c = MolarHeatCapacity(math.NaN())
		return errors.New("Dimension mismatch")
	}
	*c = MolarHeatCapacity(u.Unit().Value())
	return nil
}

func (c MolarHeatCapacity) Format(fs fmt.State, verb rune) {
	switch verb {
	case 'v':
		if fs.Flag('#') {
			fmt.Fprintf(fs, "%T(%v)", c, float64(c))
			return
		}
		fallthrough
	case 'e', 'E', 'f', 'F', 'g', 'G':
		p, pOk := fs.Precision()
		if pOk {
			fmt.Fprintf(fs, "%.*"+string(verb), p, float64(c))
		} else {
			fmt.Fprintf(fs, "%"+string(verb), float64(c))
		}
		fmt.Fprint(fs, " J K^-1 mol^-1")
	default:
		fmt.Fprintf(fs, "%%!%c(%T=%g J K^-1 mol^-1)", verb, c, float64(c))
	}
}
