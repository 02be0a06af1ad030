/*
 * conditions.go, part of netsuriki.
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

import "gonum.org/v1/gonum/unit"

//Ambient conditions used whenever the caller does not supply their own.
const (
	StandardTemperature unit.Temperature = 298.15 //K
	StandardPressure    unit.Pressure    = 101325 //Pa, 1 atm
)

//Conditions holds the temperature and pressure at which thermochemical
//properties are evaluated. The zero value is usable after SetDefaults.
type Conditions struct {
	Temperature unit.Temperature
	Pressure    unit.Pressure
}

//SetDefaults replaces unset (non-positive) fields with the standard
//298.15 K and 1 atm.
func (C *Conditions) SetDefaults() {
	if C.Temperature <= 0 {
		C.Temperature = StandardTemperature
	}
	if C.Pressure <= 0 {
		C.Pressure = StandardPressure
	}
}

//defaultT resolves the optional trailing temperature argument every
//temperature-taking function in this package carries: the first given
//value wins, no value means 298.15 K. A non-positive temperature would
//poison the formulas downstream, so it panics here, before any
//arithmetic runs.
func defaultT(T []unit.Temperature) unit.Temperature {
	if len(T) == 0 {
		return StandardTemperature
	}
	if T[0] <= 0 {
		panic(ErrTemperature)
	}
	return T[0]
}
