/*
 * chemunit_test.go, part of netsuriki.
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
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/unit"
)

func TestWavenumberConversion(Te *testing.T) {
	nu := 1595 * PerCentimetre
	if float64(nu) != 159500 {
		Te.Errorf("1595 cm^-1 should be 159500 m^-1, got %v", float64(nu))
	}
	fmt.Println("wavenumber:", nu)
}

func TestInertiaConversion(Te *testing.T) {
	//CO has about 8.73 amu A^2
	I := 8.729253301669974 * AmuSquareAngstrom
	want := 8.729253301669974 * 1.66053906660e-47
	if math.Abs(float64(I)-want)/want > 1e-12 {
		Te.Errorf("amu A^2 conversion off: got %v want %v", float64(I), want)
	}
	fmt.Println("moment of inertia:", I)
}

func TestFromRoundTrips(Te *testing.T) {
	nu := 250 * PerCentimetre
	var nu2 Wavenumber
	if err := nu2.From(nu.Unit()); err != nil {
		Te.Error(err)
	}
	if nu2 != nu {
		Te.Errorf("wavenumber round trip: got %v want %v", nu2, nu)
	}
	e := 1 * KilocaloriePerMole
	var e2 MolarEnergy
	if err := e2.From(e.Unit()); err != nil {
		Te.Error(err)
	}
	if e2 != 4184 {
		Te.Errorf("kcal/mol should be 4184 J/mol, got %v", float64(e2))
	}
}

func TestFromRejectsWrongDimension(Te *testing.T) {
	var e MolarEnergy
	if err := e.From(unit.Kilogram.Unit()); err == nil {
		Te.Error("MolarEnergy.From accepted a mass")
	}
	if !math.IsNaN(float64(e)) {
		Te.Errorf("failed From should leave NaN, got %v", float64(e))
	}
	var s MolarEntropy
	if err := s.From(MolarEnergy(1).Unit()); err == nil {
		Te.Error("MolarEntropy.From accepted a molar energy")
	}
	var i MomentOfInertia
	if err := i.From(Wavenumber(1).Unit()); err == nil {
		Te.Error("MomentOfInertia.From accepted a wavenumber")
	}
}

func TestEntropyAndHeatCapacityDimensionsAgree(Te *testing.T) {
	var c MolarHeatCapacity
	//same dimensions, distinct kinds: From must accept across the two
	if err := c.From(MolarEntropy(5).Unit()); err != nil {
		Te.Error(err)
	}
	if c != 5 {
		Te.Errorf("got %v want 5", float64(c))
	}
}

func TestFormat(Te *testing.T) {
	got := fmt.Sprintf("%.2f", 3.14159*JoulePerMole)
	if got != "3.14 J mol^-1" {
		Te.Errorf("format: got %q", got)
	}
	got = fmt.Sprintf("%v", 2*PerMetre)
	if got != "2 m^-1" {
		Te.Errorf("format: got %q", got)
	}
}
