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

//Package chemunit defines the dimensioned quantities of molecular
//thermochemistry that gonum's unit package does not provide: spectroscopic
//wavenumbers, moments of inertia, and the molar (per amount of substance)
//energy, entropy and heat capacity.
//
//The types follow the conventions of gonum.org/v1/gonum/unit: each is a
//float64 kind holding an SI magnitude, with unit constants for common
//multiples, a Unit method lifting it into dimensioned arithmetic, a From
//method converting back with a dimension check, and a Format method
//printing the SI suffix. Mixing dimensions is therefore caught either at
//compile time (distinct types) or at run time (From returns an error).
package chemunit
