/*
 * doc.go, part of netsuriki.
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

/*Package netsuriki computes molecular partition functions and the
thermochemical state functions derived from them, under the rigid rotor,
harmonic oscillator, ideal gas approximation. It turns an optimized
geometry plus a vibrational frequency list into Helmholtz and Gibbs free
energies, internal energy, enthalpy, entropy and heat capacities at a
given temperature and pressure.


	**Capabilities**

    Four statistical-mechanics contributions behind one Contribution
	interface: Translational, Rotational, Vibrational, Electronic.

    Each contribution exposes its partition function, both free
	energies, internal energy, enthalpy, entropy and both heat
	capacities; an aggregator multiplies the q's and sums the rest.

    Point group parsing and rotational symmetry numbers for the whole
	Schoenflies enumeration thermochemistry needs (C1 through Ih),
	with linear and single-atom molecules handled by their own
	branches of the rotational formula.

    Characteristic rotational and vibrational temperatures from
	principal moments of inertia and mode wavenumbers.

    Harmonic zero point energy.

    All formulas run on gonum's dimensioned quantities; a unit slip
	does not produce a wrong number, it panics.

Temperatures are optional trailing arguments defaulting to 298.15 K;
the translational pressure defaults to 1 atm:

	m, _ := mol.XYZFileRead("water.xyz")
	m.SetGroup("C2v")
	modes := []chemunit.Wavenumber{
		1595 * chemunit.PerCentimetre,
		3657 * chemunit.PerCentimetre,
		3756 * chemunit.PerCentimetre,
	}
	cs, err := netsuriki.Contributions(m, modes)
	if err != nil {
		...
	}
	tot := netsuriki.Totals(cs)	//standard conditions
	fmt.Printf("S = %v\n", tot.Entropy)

The sibling packages supply the collaborators: chemunit the dimensioned
quantities gonum does not define, mol the molecule descriptors read from
XYZ files, thermoplot temperature sweeps, and cmd/netsuriki a command
line front end.

Constructors and parsers return errors. The thermodynamic functions
themselves are fundamental in the sense that, once a contribution is
built, calling them wrong is a programming error: they panic on mixed-up
dimensions, on the logarithm of a non-positive q, and on evaluation over
zero modes. See errors.go.
*/
package netsuriki
