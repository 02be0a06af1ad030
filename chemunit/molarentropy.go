/*
 * molarentropy.go, part of netsuriki.
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

//MolarEntropy represents an entropy per amount of substance in
//J/(K mol). It shares dimensions with MolarHeatCapacity; the two are
//kept as distinct kinds the way gonum's unit package keeps Energy and
//Torque apart.
type MolarEntropy float64

const (
	JoulePerMoleKelvin MolarEntropy = 1
)

//Unit converts the MolarEntropy to a *unit.Unit.
func (s MolarEntropy) Unit() *unit.Unit {
	return unit.New(float64(s), unit.Dimensions{
		unit.MassDim:        1,
		unit.LengthDim:      2,
		unit.TimeDim:        -2,
		unit.TemperatureDim: -1,
		unit.MoleDim:        -1,
	})
}

//MolarEntropy allows MolarEntropy to implement a MolarEntropyer
//interface.
func (s MolarEntropy) MolarEntropy() MolarEntropy {
	return s
}

//From converts the unit into the receiver. From returns an error if there
//is a mismatch in dimension.
func (s *MolarEntropy) From(u unit.Uniter) error {
	if !unit.DimensionsMatch(u, JoulePerMoleKelvin) {
		*s = MolarEntropy(math.NaN())
		return errors.New("Dimension mismatch")
	}
	*s = MolarEntropy(u.Unit().Value())
	return nil
}

func (s MolarEntropy) Format(fs fmt.State, c rune) {
	switch c {
	case 'v':
		if fs.Flag('#') {
			fmt.Fprintf(fs, "%T(%v)", s, float64(s))
			return
		}
		fallthrough
	case 'e', 'E', 'f', 'F', 'g', 'G':
		p, pOk := fs.Precision()
		if pOk {
			fmt.Fprintf(fs, "%.*"+string(c), p, float64(s))
		} else {
			fmt.Fprintf(fs, "%"+string(c), float64(s))
		}
		fmt.Fprint(fs, " J K^-1 mol^-1")
	default:
		fmt.Fprintf(fs, "%%!%c(%T=%g J K^-1 mol^-1)", c, s, float64(s))
	}
}
