/*
 * calc.go, part of netsuriki.
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
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/unit"

	netsuriki "github.com/mizu-bai/Netsuriki"
	"github.com/mizu-bai/Netsuriki/chemunit"
	"github.com/mizu-bai/Netsuriki/mol"
)

var (
	calcXYZ    string
	calcFreqs  string
	calcGroup  string
	calcMulti  int
	calcCharge int
	calcJSON   bool
)

func calcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute the thermochemistry of one molecule",
		Long: `Calc reads a geometry in XYZ format (plain, gzipped or
zstd-compressed) and reports the per-contribution and total partition
functions and state functions at the given temperature and pressure.
Harmonic frequencies, in cm-1, come from a separate text file; without
one the vibrational contribution is simply left out.`,
		Example: `  netsuriki calc -x water.xyz -g C2v -f modes.txt
  netsuriki calc -x o2.xyz -g Dooh -m 3 -T 500 --json`,
		RunE: runCalc,
	}
	cmd.Flags().StringVarP(&calcXYZ, "xyz", "x", "", "geometry in XYZ format, .gz and .zst understood")
	cmd.Flags().StringVarP(&calcFreqs, "freqs", "f", "", "file with harmonic frequencies in cm-1")
	cmd.Flags().StringVarP(&calcGroup, "group", "g", "C1", "point group symbol")
	cmd.Flags().IntVarP(&calcMulti, "multiplicity", "m", 1, "spin multiplicity of the ground state")
	cmd.Flags().IntVarP(&calcCharge, "charge", "c", 0, "total charge")
	cmd.Flags().BoolVar(&calcJSON, "json", false, "machine readable output")
	cmd.MarkFlagRequired("xyz")
	return cmd
}

//loadMolecule reads an XYZ file and stamps the electronic and symmetry
//data the file format itself does not carry.
func loadMolecule(name, group string, multi, charge int) (*mol.Molecule, error) {
	M, err := mol.XYZFileRead(name)
	if err != nil {
		return nil, err
	}
	M.SetGroup(group)
	M.SetMulti(multi)
	M.SetCharge(charge)
	return M, nil
}

func loadModes(name string) ([]chemunit.Wavenumber, error) {
	if name == "" {
		return nil, nil
	}
	return mol.ReadWavenumbers(name)
}

func checkConditions() error {
	ei := "checkConditions"
	if flagTemperature <= 0 {
		return fmt.Errorf("%s: temperature must be positive, got %.6g K", ei, flagTemperature)
	}
	if flagPressure <= 0 {
		return fmt.Errorf("%s: pressure must be positive, got %.6g Pa", ei, flagPressure)
	}
	return nil
}

type propertiesJSON struct {
	Name           string  `json:"name"`
	Q              float64 `json:"q"`
	Helmholtz      float64 `json:"helmholtz_J_mol"`
	Gibbs          float64 `json:"gibbs_J_mol"`
	InternalEnergy float64 `json:"internal_energy_J_mol"`
	Enthalpy       float64 `json:"enthalpy_J_mol"`
	Entropy        float64 `json:"entropy_J_K_mol"`
	HeatCapacityV  float64 `json:"cv_J_K_mol"`
	HeatCapacityP  float64 `json:"cp_J_K_mol"`
}

type calcReport struct {
	File            string           `json:"file"`
	Temperature     float64          `json:"temperature_K"`
	Pressure        float64          `json:"pressure_Pa"`
	Group           string           `json:"point_group"`
	Multiplicity    int              `json:"multiplicity"`
	Charge          int              `json:"charge"`
	MolarMass       float64          `json:"molar_mass_g_mol,omitempty"`
	Contributions   []propertiesJSON `json:"contributions"`
	Total           propertiesJSON   `json:"total"`
	ZeroPointEnergy *float64         `json:"zero_point_energy_J_mol,omitempty"`
}

func toJSON(name string, p netsuriki.Properties) propertiesJSON {
	return propertiesJSON{
		Name:           name,
		Q:              p.Q,
		Helmholtz:      float64(p.Helmholtz),
		Gibbs:          float64(p.Gibbs),
		InternalEnergy: float64(p.InternalEnergy),
		Enthalpy:       float64(p.Enthalpy),
		Entropy:        float64(p.Entropy),
		HeatCapacityV:  float64(p.HeatCapacityV),
		HeatCapacityP:  float64(p.HeatCapacityP),
	}
}

func runCalc(_ *cobra.Command, _ []string) error {
	if err := checkConditions(); err != nil {
		return err
	}
	M, err := loadMolecule(calcXYZ, calcGroup, calcMulti, calcCharge)
	if err != nil {
		return err
	}
	modes, err := loadModes(calcFreqs)
	if err != nil {
		return err
	}
	T := unit.Temperature(flagTemperature)
	cs, err := netsuriki.Contributions(M, modes, unit.Pressure(flagPressure))
	if err != nil {
		return err
	}
	tot := netsuriki.Totals(cs, T)
	var zpe *float64
	for _, c := range cs {
		if v, ok := c.(*netsuriki.Vibrational); ok {
			z := float64(v.ZeroPointEnergy())
			zpe = &z
		}
	}
	if calcJSON {
		rep := calcReport{
			File:            calcXYZ,
			Temperature:     flagTemperature,
			Pressure:        flagPressure,
			Group:           calcGroup,
			Multiplicity:    calcMulti,
			Charge:          calcCharge,
			Contributions:   make([]propertiesJSON, 0, len(cs)),
			Total:           toJSON("Total", tot),
			ZeroPointEnergy: zpe,
		}
		if w, err := M.MolarMass(); err == nil {
			rep.MolarMass = w
		}
		for _, c := range cs {
			rep.Contributions = append(rep.Contributions, toJSON(c.Name(), netsuriki.Evaluate(c, T)))
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	if w, err := M.MolarMass(); err == nil {
		fmt.Printf("%s: %d atoms, %.3f g/mol, %s, multiplicity %d\n", calcXYZ, M.Len(), w, calcGroup, calcMulti)
	} else {
		fmt.Printf("%s: %d atoms, %s, multiplicity %d\n", calcXYZ, M.Len(), calcGroup, calcMulti)
	}
	fmt.Printf("T = %g K, p = %g Pa\n\n", flagTemperature, flagPressure)
	fmt.Printf("%-14s %12s %12s %12s %12s %12s %12s %12s %12s\n",
		"Contribution", "q", "Am", "Gm", "Um", "Hm", "Sm", "CVm", "Cpm")
	fmt.Printf("%-14s %12s %12s %12s %12s %12s %12s %12s %12s\n",
		"", "", "J/mol", "J/mol", "J/mol", "J/mol", "J/(K mol)", "J/(K mol)", "J/(K mol)")
	for _, c := range cs {
		printProperties(c.Name(), netsuriki.Evaluate(c, T))
	}
	printProperties("Total", tot)
	if zpe != nil {
		fmt.Printf("\nZero point vibrational energy: %.4f J/mol\n", *zpe)
	}
	return nil
}

func printProperties(name string, p netsuriki.Properties) {
	fmt.Printf("%-14s %12.6g %12.6g %12.6g %12.6g %12.6g %12.6g %12.6g %12.6g\n",
		name, p.Q, float64(p.Helmholtz), float64(p.Gibbs), float64(p.InternalEnergy),
		float64(p.Enthalpy), float64(p.Entropy), float64(p.HeatCapacityV), float64(p.HeatCapacityP))
}
