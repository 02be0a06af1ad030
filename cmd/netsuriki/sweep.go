/*
 * sweep.go, part of netsuriki.
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
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/unit"

	netsuriki "github.com/mizu-bai/Netsuriki"
	"github.com/mizu-bai/Netsuriki/thermoplot"
)

var (
	sweepXYZ      string
	sweepFreqs    string
	sweepGroup    string
	sweepMulti    int
	sweepFrom     float64
	sweepTo       float64
	sweepSteps    int
	sweepProperty string
	sweepPlot     string
	sweepTitle    string
)

func sweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Tabulate or plot a property over a temperature range",
		Long: `Sweep evaluates one thermodynamic property on an evenly spaced
temperature grid and either prints the table or, with --plot, renders
the per-contribution curves and their total to a PNG file.`,
		Example: `  netsuriki sweep -x water.xyz -g C2v -f modes.txt --property Cpm --from 100 --to 1000
  netsuriki sweep -x water.xyz -g C2v -f modes.txt --property Sm --plot entropy`,
		RunE: runSweep,
	}
	cmd.Flags().StringVarP(&sweepXYZ, "xyz", "x", "", "geometry in XYZ format, .gz and .zst understood")
	cmd.Flags().StringVarP(&sweepFreqs, "freqs", "f", "", "file with harmonic frequencies in cm-1")
	cmd.Flags().StringVarP(&sweepGroup, "group", "g", "C1", "point group symbol")
	cmd.Flags().IntVarP(&sweepMulti, "multiplicity", "m", 1, "spin multiplicity of the ground state")
	cmd.Flags().Float64Var(&sweepFrom, "from", 100, "first temperature in K")
	cmd.Flags().Float64Var(&sweepTo, "to", 1000, "last temperature in K")
	cmd.Flags().IntVar(&sweepSteps, "steps", 46, "number of grid points")
	cmd.Flags().StringVar(&sweepProperty, "property", "Sm", "property to sweep: lnq, Am, Gm, Um, Hm, Sm, CVm or Cpm")
	cmd.Flags().StringVar(&sweepPlot, "plot", "", "write <name>.png instead of printing the table")
	cmd.Flags().StringVar(&sweepTitle, "title", "", "plot title, defaults to property and file name")
	cmd.MarkFlagRequired("xyz")
	return cmd
}

//parseProperty resolves the spellings accepted on the command line.
func parseProperty(name string) (thermoplot.Property, error) {
	ei := "parseProperty"
	switch strings.ReplaceAll(strings.ToLower(name), " ", "") {
	case "lnq", "q":
		return thermoplot.LnQ, nil
	case "am", "a", "helmholtz":
		return thermoplot.Helmholtz, nil
	case "gm", "g", "gibbs":
		return thermoplot.Gibbs, nil
	case "um", "u", "internalenergy":
		return thermoplot.InternalEnergy, nil
	case "hm", "h", "enthalpy":
		return thermoplot.Enthalpy, nil
	case "sm", "s", "entropy":
		return thermoplot.Entropy, nil
	case "cvm", "cv":
		return thermoplot.HeatCapacityV, nil
	case "cpm", "cp":
		return thermoplot.HeatCapacityP, nil
	}
	return 0, fmt.Errorf("%s: unknown property %q, want lnq, Am, Gm, Um, Hm, Sm, CVm or Cpm", ei, name)
}

func runSweep(_ *cobra.Command, _ []string) error {
	if flagPressure <= 0 {
		return fmt.Errorf("runSweep: pressure must be positive, got %.6g Pa", flagPressure)
	}
	P, err := parseProperty(sweepProperty)
	if err != nil {
		return err
	}
	M, err := loadMolecule(sweepXYZ, sweepGroup, sweepMulti, 0)
	if err != nil {
		return err
	}
	modes, err := loadModes(sweepFreqs)
	if err != nil {
		return err
	}
	cs, err := netsuriki.Contributions(M, modes, unit.Pressure(flagPressure))
	if err != nil {
		return err
	}
	from := unit.Temperature(sweepFrom)
	to := unit.Temperature(sweepTo)
	if sweepPlot != "" {
		title := sweepTitle
		if title == "" {
			title = fmt.Sprintf("%v of %s", P, filepath.Base(sweepXYZ))
		}
		if err := thermoplot.CurvePlot(cs, P, from, to, sweepSteps, title, sweepPlot); err != nil {
			return err
		}
		fmt.Printf("wrote %s.png\n", sweepPlot)
		return nil
	}
	xys, err := thermoplot.Sweep(cs, P, from, to, sweepSteps)
	if err != nil {
		return err
	}
	fmt.Printf("%10s  %14v\n", "T (K)", P)
	for _, xy := range xys {
		fmt.Printf("%10.2f  %14.6g\n", xy.X, xy.Y)
	}
	return nil
}
