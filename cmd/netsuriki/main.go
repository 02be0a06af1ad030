/*
 * main.go, part of netsuriki.
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

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

//conditions shared by every subcommand
var (
	flagTemperature float64
	flagPressure    float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "netsuriki",
		Short: "Ideal gas thermochemistry from molecular data",
		Long: `netsuriki computes partition functions and the state functions built
from them (Helmholtz and Gibbs energies, internal energy, enthalpy,
entropy and heat capacities) for one mole of ideal gas, out of a
geometry in XYZ format, a point group, a spin multiplicity and, when
available, a list of harmonic frequencies.`,
		Version: version,
	}
	rootCmd.PersistentFlags().Float64VarP(&flagTemperature, "temperature", "T", 298.15, "temperature in K")
	rootCmd.PersistentFlags().Float64VarP(&flagPressure, "pressure", "P", 101325, "pressure in Pa")

	rootCmd.AddCommand(versionCmd())
	rootCmd.AddCommand(calcCmd())
	rootCmd.AddCommand(sweepCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println("netsuriki", version)
		},
	}
}
