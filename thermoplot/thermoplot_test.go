/*
 * thermoplot_test.go, part of netsuriki.
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

package thermoplot

import (
	"fmt"
	"os"
	"testing"

	netsuriki "github.com/mizu-bai/Netsuriki"
	"github.com/mizu-bai/Netsuriki/chemunit"
	"github.com/mizu-bai/Netsuriki/mol"
)

func waterContributions(Te *testing.T) []netsuriki.Contribution {
	M, err := mol.XYZFileRead("../mol/test/water.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	M.SetGroup("C2v")
	modes := []chemunit.Wavenumber{
		3657 * chemunit.PerCentimetre,
		1595 * chemunit.PerCentimetre,
		3756 * chemunit.PerCentimetre,
	}
	cs, err := netsuriki.Contributions(M, modes)
	if err != nil {
		Te.Fatal(err)
	}
	return cs
}

func TestSweep(Te *testing.T) {
	cs := waterContributions(Te)
	xys, err := Sweep(cs, Entropy, 200, 400, 21)
	if err != nil {
		Te.Fatal(err)
	}
	if len(xys) != 21 {
		Te.Fatalf("swept %d points, want 21", len(xys))
	}
	if xys[0].X != 200 || xys[20].X != 400 {
		Te.Errorf("sweep ends at %v and %v, want 200 and 400", xys[0].X, xys[20].X)
	}
	for i := 1; i < len(xys); i++ {
		if xys[i].X <= xys[i-1].X {
			Te.Fatalf("temperatures not increasing at point %d", i)
		}
		//entropy grows monotonically with temperature
		if xys[i].Y <= xys[i-1].Y {
			Te.Errorf("entropy fell from %v to %v at T=%v", xys[i-1].Y, xys[i].Y, xys[i].X)
		}
	}
	//the 298.15 K literature value should sit inside the swept band
	if xys[0].Y > 188.544 || xys[20].Y < 188.544 {
		Te.Errorf("sweep brackets [%v, %v] miss the standard entropy", xys[0].Y, xys[20].Y)
	}
	fmt.Println("entropy endpoints:", xys[0].Y, xys[20].Y)
}

func TestSweepRejects(Te *testing.T) {
	cs := waterContributions(Te)
	if _, err := Sweep(nil, Entropy, 200, 400, 5); err == nil {
		Te.Error("no contributions should fail")
	}
	if _, err := Sweep(cs, Entropy, 0, 400, 5); err == nil {
		Te.Error("a zero lower bound should fail")
	}
	if _, err := Sweep(cs, Entropy, 400, 200, 5); err == nil {
		Te.Error("a reversed interval should fail")
	}
	if _, err := Sweep(cs, Entropy, 200, 400, 1); err == nil {
		Te.Error("a single step should fail")
	}
	if _, err := Sweep(cs, Property(99), 200, 400, 5); err == nil {
		Te.Error("an unknown property should fail")
	}
}

func TestPropertyNames(Te *testing.T) {
	if Entropy.String() != "Sm" || HeatCapacityP.String() != "Cpm" || LnQ.String() != "ln q" {
		Te.Error("property names changed")
	}
	if Property(99).String() != "unknown property" {
		Te.Error("out of range properties should say so")
	}
}

func TestCurvePlot(Te *testing.T) {
	if err := os.MkdirAll("test", 0755); err != nil {
		Te.Fatal(err)
	}
	cs := waterContributions(Te)
	if err := CurvePlot(cs, HeatCapacityP, 100, 1000, 46, "Water heat capacity", "test/cp"); err != nil {
		Te.Error(err)
	}
	fi, err := os.Stat("test/cp.png")
	if err != nil {
		Te.Fatal(err)
	}
	if fi.Size() == 0 {
		Te.Error("an empty plot file was written")
	}
}
