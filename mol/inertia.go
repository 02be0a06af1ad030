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

package mol

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/mizu-bai/Netsuriki/chemunit"
)

//metres per Å
const angstrom = 1e-10

//InertiaTensor returns the inertia tensor about the center of mass,
//I_ab = Σ m (r² δ_ab - r_a r_b), in kg m². Coordinates come in Å and
//leave converted.
func (M *Molecule) InertiaTensor() (*mat.SymDense, error) {
	ms, err := M.Masses()
	if err != nil {
		return nil, fmt.Errorf("mol/InertiaTensor: %w", err)
	}
	com, err := M.CenterOfMass()
	if err != nil {
		return nil, fmt.Errorf("mol/InertiaTensor: %w", err)
	}
	var acc [3][3]float64
	for i, m := range ms {
		w := float64(m)
		var d [3]float64
		for k := 0; k < 3; k++ {
			d[k] = (M.coords.At(i, k) - com[k]) * angstrom
		}
		r2 := d[0]*d[0] + d[1]*d[1] + d[2]*d[2]
		for a := 0; a < 3; a++ {
			for b := a; b < 3; b++ {
				v := -w * d[a] * d[b]
				if a == b {
					v += w * r2
				}
				acc[a][b] += v
			}
		}
	}
	t := mat.NewSymDense(3, nil)
	for a := 0; a < 3; a++ {
		for b := a; b < 3; b++ {
			t.SetSym(a, b, acc[a][b])
		}
	}
	return t, nil
}

//Moments returns the three principal moments of inertia in ascending
//order. Eigenvalue roundoff can leave the smallest moment of a linear
//or planar molecule a hair below zero; such values are clamped to 0,
//while a genuinely negative moment fails.
func (M *Molecule) Moments() ([3]chemunit.MomentOfInertia, error) {
	ei := "mol/Moments"
	var out [3]chemunit.MomentOfInertia
	t, err := M.InertiaTensor()
	if err != nil {
		return out, fmt.Errorf("%s: %w", ei, err)
	}
	var eig mat.EigenSym
	if ok := eig.Factorize(t, false); !ok {
		return out, fmt.Errorf("%s: eigendecomposition of the inertia tensor failed", ei)
	}
	vals := eig.Values(nil)
	//the lightest atom displaced by a rounding error gives moments many
	//orders below this; the lightest physical moment sits many above
	const floor = 1e-55
	tol := 1e-9 * vals[2]
	for i, v := range vals {
		if v < 0 {
			if -v > tol && -v > floor {
				return out, fmt.Errorf("%s: negative principal moment %v", ei, v)
			}
			v = 0
		}
		out[i] = chemunit.MomentOfInertia(v)
	}
	return out, nil
}

//PrincipalAxes returns the principal axes of inertia as the columns of
//a 3x3 matrix, ordered like the ascending moments of Moments.
func (M *Molecule) PrincipalAxes() (*mat.Dense, error) {
	ei := "mol/PrincipalAxes"
	t, err := M.InertiaTensor()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ei, err)
	}
	var eig mat.EigenSym
	if ok := eig.Factorize(t, true); !ok {
		return nil, fmt.Errorf("%s: eigendecomposition of the inertia tensor failed", ei)
	}
	var axes mat.Dense
	eig.VectorsTo(&axes)
	return &axes, nil
}
