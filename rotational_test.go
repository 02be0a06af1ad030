/*
 * rotational_test.go, part of netsuriki.
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
	"errors"
	"fmt"
	"testing"

	"gonum.org/v1/gonum/unit"

	"github.com/mizu-bai/Netsuriki/chemunit"
)

//rigidBody hands NewRotational a shape without dragging a full molecule
//into the formula tests. Moments are in kg m², ascending.
type rigidBody struct {
	n     int
	group string
	mom   [3]float64
}

func (r rigidBody) Len() int      { return r.n }
func (r rigidBody) Group() string { return r.group }

func (r rigidBody) Moments() ([3]chemunit.MomentOfInertia, error) {
	var I [3]chemunit.MomentOfInertia
	for i, m := range r.mom {
		I[i] = chemunit.MomentOfInertia(m)
	}
	return I, nil
}

type brokenRotor struct{ rigidBody }

func (brokenRotor) Moments() ([3]chemunit.MomentOfInertia, error) {
	return [3]chemunit.MomentOfInertia{}, errors.New("no geometry")
}

//principal moments of water (r = 0.9572 Å, 104.52°) and CO (r = 1.128 Å)
var (
	waterBody = rigidBody{n: 3, group: "C2v",
		mom: [3]float64{1.0205138855092551e-47, 1.918113877923107e-47, 2.938627763432362e-47}}
	coBody = rigidBody{n: 2, group: "C∞v",
		mom: [3]float64{0, 1.4495266134679279e-46, 1.4495266134679279e-46}}
)

func TestRotationalSingleAtom(Te *testing.T) {
	ro, err := NewRotational(rigidBody{n: 1, group: "C1"})
	if err != nil {
		Te.Fatal(err)
	}
	for _, T := range []unit.Temperature{1, 298.15, 5000} {
		if q := ro.PartitionFunction(T); float64(q) != 0 {
			Te.Errorf("single atom q(%v) = %v, want the 0 sentinel", T, q)
		}
	}
	if q := ro.PartitionFunction(); float64(q) != 0 {
		Te.Error("single atom q at the default T should be 0 too")
	}
	if ths := ro.CharacteristicTemperatures(); ths != nil {
		Te.Errorf("single atom should have no rotational temperatures, got %v", ths)
	}
}

func TestRotationalNonlinear(Te *testing.T) {
	ro, err := NewRotational(waterBody)
	if err != nil {
		Te.Fatal(err)
	}
	if ro.SymmetryNumber() != 2 {
		Te.Fatalf("C2v sigma = %d, want 2", ro.SymmetryNumber())
	}
	ths := ro.CharacteristicTemperatures()
	if len(ths) != 3 {
		Te.Fatalf("want three rotational temperatures, got %d", len(ths))
	}
	for i, want := range []float64{39.465728650306474, 20.997358161543282, 13.705486822984343} {
		if !approx(float64(ths[i]), want, 1e-12) {
			Te.Errorf("theta[%d] = %v, want %v", i, ths[i], want)
		}
	}
	q := float64(ro.PartitionFunction())
	if !approx(q, 42.81121338675302, 1e-9) {
		Te.Errorf("water q = %v, want 42.811", q)
	}
	if q500 := float64(ro.PartitionFunction(500)); !approx(q500, 92.97374463762979, 1e-9) {
		Te.Errorf("water q(500) = %v, want 92.974", q500)
	}
	s := float64(ro.Entropy(ro.PartitionFunction()))
	if !approx(s, 43.707467617335645, 1e-9) {
		Te.Errorf("water rotational Sm = %v, want 43.707", s)
	}
	fmt.Println("water rotational q and Sm:", q, s)
}

func TestRotationalLinear(Te *testing.T) {
	ro, err := NewRotational(coBody)
	if err != nil {
		Te.Fatal(err)
	}
	th := float64(ro.CharacteristicTemperatures()[0])
	if !approx(th, 2.7785156695413313, 1e-12) {
		Te.Errorf("CO theta = %v, want 2.7785", th)
	}
	q := float64(ro.PartitionFunction())
	if !approx(q, 107.30549525719164, 1e-9) {
		Te.Errorf("CO q = %v, want 107.305", q)
	}
	if !approx(q, 298.15/th, 1e-12) {
		Te.Errorf("linear q should be T/(sigma theta), got %v and %v", q, 298.15/th)
	}
	//a homonuclear rotor under D∞h counts every orientation twice
	n2 := coBody
	n2.group = "D∞h"
	ro2, err := NewRotational(n2)
	if err != nil {
		Te.Fatal(err)
	}
	if q2 := float64(ro2.PartitionFunction()); !approx(q/q2, 2, 1e-12) {
		Te.Errorf("sigma 2 should halve q: %v vs %v", q, q2)
	}
}

func TestRotationalStateFunctions(Te *testing.T) {
	ro, err := NewRotational(waterBody)
	if err != nil {
		Te.Fatal(err)
	}
	T := unit.Temperature(350)
	q := ro.PartitionFunction(T)
	if a, g := ro.Helmholtz(q, T), ro.Gibbs(q, T); a != g {
		Te.Errorf("Am = %v but Gm = %v, they must coincide", a, g)
	}
	u := float64(ro.InternalEnergy(T))
	if !approx(u, 1.5*rGas*350, 1e-12) {
		Te.Errorf("Um = %v, want 3/2 RT", u)
	}
	if h := float64(ro.Enthalpy(T)); h != u {
		Te.Errorf("Hm = %v, want exactly Um = %v", h, u)
	}
	cv := float64(ro.HeatCapacityV(T))
	if !approx(cv, 1.5*rGas, 1e-12) {
		Te.Errorf("CVm = %v, want 3/2 R", cv)
	}
	if cp := float64(ro.HeatCapacityP(T)); cp != cv {
		Te.Errorf("Cpm = %v, want exactly CVm = %v", cp, cv)
	}
}

func TestRotationalRejects(Te *testing.T) {
	bad := []rigidBody{
		{n: 3, group: "Z9", mom: waterBody.mom},
		{n: 0, group: "C2v"},
		{n: 1, group: "Z9"},
		{n: 2, group: "C∞v", mom: [3]float64{0, 0, 0}},
		{n: 3, group: "C2v", mom: [3]float64{0, 1e-47, 2e-47}},
	}
	for _, b := range bad {
		if _, err := NewRotational(b); err == nil {
			Te.Errorf("NewRotational(%+v) should have failed", b)
		}
	}
	if _, err := NewRotational(brokenRotor{rigidBody{n: 2, group: "C∞v"}}); err == nil {
		Te.Error("a failing Moments should propagate its error")
	}
}

func TestRotationalSentinelPanics(Te *testing.T) {
	ro, err := NewRotational(rigidBody{n: 1, group: "C1"})
	if err != nil {
		Te.Fatal(err)
	}
	q := ro.PartitionFunction()
	for name, f := range map[string]func(){
		"Helmholtz": func() { ro.Helmholtz(q) },
		"Gibbs":     func() { ro.Gibbs(q) },
		"Entropy":   func() { ro.Entropy(q) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					Te.Errorf("%s on the 0 sentinel should panic", name)
				}
			}()
			f()
		}()
	}
}
