/*
 * vibrational_test.go, part of netsuriki.
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

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/unit"

	"github.com/mizu-bai/Netsuriki/chemunit"
)

//gas phase fundamentals of water
var waterModes = []chemunit.Wavenumber{
	3657 * chemunit.PerCentimetre,
	1595 * chemunit.PerCentimetre,
	3756 * chemunit.PerCentimetre,
}

func TestVibrationalTemperatures(Te *testing.T) {
	want := []float64{5261.607041031885, 2294.8491196187742, 5404.0459519047745}
	for i, nu := range waterModes {
		th := float64(VibrationalTemperature(nu))
		if !approx(th, want[i], 1e-12) {
			Te.Errorf("theta(%v) = %v, want %v", nu, th, want[i])
		}
	}
}

func TestVibrationalPartitionFunction(Te *testing.T) {
	vib, err := NewVibrational(waterModes)
	if err != nil {
		Te.Fatal(err)
	}
	q := float64(vib.PartitionFunction())
	if !approx(q, 1.0004544466320648, 1e-12) {
		Te.Errorf("water qvib = %v, want 1.000454", q)
	}
	//a single stiff mode at middling temperature, against the closed form
	one, err := NewVibrational([]chemunit.Wavenumber{500 * chemunit.PerCentimetre})
	if err != nil {
		Te.Fatal(err)
	}
	x := hPlanck * cLight * 500 * 100 / (kBoltz * 1000)
	want := 1 / (1 - math.Exp(-x))
	if q1 := float64(one.PartitionFunction(1000)); !approx(q1, want, 1e-12) {
		Te.Errorf("q(500 cm⁻¹, 1000 K) = %v, want %v", q1, want)
	}
	fmt.Println("single mode q at 1000 K:", one.PartitionFunction(1000))
}

func TestVibrationalFactorizes(Te *testing.T) {
	//independent oscillators: the joint q is the product of the
	//single-mode ones
	joint, err := NewVibrational(waterModes)
	if err != nil {
		Te.Fatal(err)
	}
	T := unit.Temperature(350)
	prod := 1.0
	for _, nu := range waterModes {
		one, err := NewVibrational([]chemunit.Wavenumber{nu})
		if err != nil {
			Te.Fatal(err)
		}
		prod *= float64(one.PartitionFunction(T))
	}
	if q := float64(joint.PartitionFunction(T)); !approx(q, prod, 1e-12) {
		Te.Errorf("joint q = %v, product of single-mode q = %v", q, prod)
	}
}

func TestVibrationalEnergy(Te *testing.T) {
	vib, err := NewVibrational(waterModes)
	if err != nil {
		Te.Fatal(err)
	}
	u := float64(vib.InternalEnergy())
	if !approx(u, 53888.47708559749, 1e-9) {
		Te.Errorf("water Uvib = %v, want 53888.48", u)
	}
	if h := float64(vib.Enthalpy()); h != u {
		Te.Errorf("Hm = %v, want exactly Um = %v", h, u)
	}
	z := float64(vib.ZeroPointEnergy())
	if !approx(z, 53879.80516366912, 1e-9) {
		Te.Errorf("water ZPE = %v, want 53879.81", z)
	}
	if u <= z {
		Te.Errorf("Um = %v should exceed the zero point energy %v", u, z)
	}
	//at 1 K every mode is frozen out and only the zero point term is left
	if u1 := float64(vib.InternalEnergy(1)); u1 != z {
		Te.Errorf("Um(1 K) = %v, want exactly the ZPE %v", u1, z)
	}
	fmt.Println("water vibrational Um and ZPE:", u, z)
}

func TestVibrationalEntropyAndHeatCapacity(Te *testing.T) {
	vib, err := NewVibrational(waterModes)
	if err != nil {
		Te.Fatal(err)
	}
	q := vib.PartitionFunction()
	s := float64(vib.Entropy(q))
	if !approx(s, 0.03286338990363014, 1e-9) {
		Te.Errorf("water Svib = %v, want 0.0329", s)
	}
	//the modes alone fix the entropy; the q argument never enters
	if s2 := float64(vib.Entropy(77)); s2 != s {
		Te.Errorf("Entropy(77) = %v, want %v", s2, s)
	}
	cv := float64(vib.HeatCapacityV())
	if !approx(cv, 0.22402650858867318, 1e-9) {
		Te.Errorf("water CVvib = %v, want 0.224", cv)
	}
	if cp := float64(vib.HeatCapacityP()); cp != cv {
		Te.Errorf("Cpm = %v, want exactly CVm = %v", cp, cv)
	}
}

func TestVibrationalGibbsIdentity(Te *testing.T) {
	vib, err := NewVibrational(waterModes)
	if err != nil {
		Te.Fatal(err)
	}
	T := unit.Temperature(298.15)
	q := vib.PartitionFunction(T)
	if a, g := vib.Helmholtz(q, T), vib.Gibbs(q, T); a != g {
		Te.Errorf("Am = %v but Gm = %v, they must coincide", a, g)
	}
}

func TestVibrationalRejects(Te *testing.T) {
	for _, modes := range [][]chemunit.Wavenumber{
		{},
		nil,
		{3657 * chemunit.PerCentimetre, 0, 3756 * chemunit.PerCentimetre},
		{-1610 * chemunit.PerCentimetre},
	} {
		if _, err := NewVibrational(modes); err == nil {
			Te.Errorf("NewVibrational(%v) should have failed", modes)
		}
	}
}

func TestVibrationalCopiesModes(Te *testing.T) {
	in := []chemunit.Wavenumber{
		3657 * chemunit.PerCentimetre,
		1595 * chemunit.PerCentimetre,
		3756 * chemunit.PerCentimetre,
	}
	vib, err := NewVibrational(in)
	if err != nil {
		Te.Fatal(err)
	}
	before := vib.PartitionFunction()
	in[0] = 1
	if vib.PartitionFunction() != before {
		Te.Error("mutating the input slice should not reach the contribution")
	}
	out := vib.Modes()
	out[0] = 1
	if vib.PartitionFunction() != before {
		Te.Error("mutating the returned mode list should not reach the contribution")
	}
}
